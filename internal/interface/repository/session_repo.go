package repository

import (
	"context"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/internal/infrastructure/persistence"
)

// StoreSessionRepository keeps the signed-in account under vb_current_user
type StoreSessionRepository struct {
	store *persistence.SafeStore
}

// NewStoreSessionRepository creates a new session repository
func NewStoreSessionRepository(store *persistence.SafeStore) repository.SessionRepository {
	return &StoreSessionRepository{
		store: store,
	}
}

// Get returns the stored session account or nil
func (r *StoreSessionRepository) Get(ctx context.Context) (*entity.Account, error) {
	return persistence.Read[*entity.Account](ctx, r.store, repository.KeyCurrentUser, nil)
}

// Set replaces the session account
func (r *StoreSessionRepository) Set(ctx context.Context, account entity.Account) error {
	return r.store.Write(ctx, repository.KeyCurrentUser, account)
}

// Clear removes the session
func (r *StoreSessionRepository) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, repository.KeyCurrentUser)
}
