package repository

import (
	"context"

	"voyagebj-service/internal/domain/entity"
)

// ReservationRepository defines the interface for reservation operations
type ReservationRepository interface {
	GetAll(ctx context.Context) ([]entity.Reservation, error)
	FindByID(ctx context.Context, id string) (*entity.Reservation, error)
	ListByClient(ctx context.Context, clientID string) ([]entity.Reservation, error)
	ListByCompany(ctx context.Context, companyID string) ([]entity.Reservation, error)
	Create(ctx context.Context, reservation entity.Reservation) error
	UpdateOne(ctx context.Context, reservation entity.Reservation) error
}
