package repository

import (
	"context"

	"voyagebj-service/internal/domain/entity"
)

// StationRepository defines the interface for station and route operations
type StationRepository interface {
	GetAll(ctx context.Context) ([]entity.Station, error)
	FindByID(ctx context.Context, id string) (*entity.Station, error)
	Upsert(ctx context.Context, node entity.Station) error
	// Delete removes exactly one node. Child routes are left in place.
	Delete(ctx context.Context, id string) error
}
