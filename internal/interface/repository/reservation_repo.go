package repository

import (
	"context"
	"fmt"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/internal/infrastructure/persistence"
)

// StoreReservationRepository implements ReservationRepository over the vb_reservations collection
type StoreReservationRepository struct {
	store *persistence.SafeStore
}

// NewStoreReservationRepository creates a new reservation repository
func NewStoreReservationRepository(store *persistence.SafeStore) repository.ReservationRepository {
	return &StoreReservationRepository{
		store: store,
	}
}

// GetAll returns every reservation in creation order
func (r *StoreReservationRepository) GetAll(ctx context.Context) ([]entity.Reservation, error) {
	return persistence.Read(ctx, r.store, repository.KeyReservations, []entity.Reservation{})
}

// FindByID finds a reservation by id
func (r *StoreReservationRepository) FindByID(ctx context.Context, id string) (*entity.Reservation, error) {
	reservations, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range reservations {
		if reservations[i].ID == id {
			return &reservations[i], nil
		}
	}
	return nil, fmt.Errorf("reservation %s: %w", id, entity.ErrNotFound)
}

// ListByClient returns the reservations made by a traveler
func (r *StoreReservationRepository) ListByClient(ctx context.Context, clientID string) ([]entity.Reservation, error) {
	return r.filter(ctx, func(res entity.Reservation) bool { return res.ClientID == clientID })
}

// ListByCompany returns the reservations on a company's routes
func (r *StoreReservationRepository) ListByCompany(ctx context.Context, companyID string) ([]entity.Reservation, error) {
	return r.filter(ctx, func(res entity.Reservation) bool { return res.CompanyID == companyID })
}

// Create appends a reservation
func (r *StoreReservationRepository) Create(ctx context.Context, reservation entity.Reservation) error {
	reservations, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	reservations = append(reservations, reservation)
	return r.store.Write(ctx, repository.KeyReservations, reservations)
}

// UpdateOne replaces the reservation with the same id
func (r *StoreReservationRepository) UpdateOne(ctx context.Context, reservation entity.Reservation) error {
	reservations, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range reservations {
		if reservations[i].ID == reservation.ID {
			reservations[i] = reservation
			return r.store.Write(ctx, repository.KeyReservations, reservations)
		}
	}
	return fmt.Errorf("reservation %s: %w", reservation.ID, entity.ErrNotFound)
}

func (r *StoreReservationRepository) filter(ctx context.Context, keep func(entity.Reservation) bool) ([]entity.Reservation, error) {
	reservations, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var result []entity.Reservation
	for _, res := range reservations {
		if keep(res) {
			result = append(result, res)
		}
	}
	return result, nil
}
