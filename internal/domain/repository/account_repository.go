package repository

import (
	"context"

	"voyagebj-service/internal/domain/entity"
)

// AccountRepository defines the interface for account operations
type AccountRepository interface {
	GetAll(ctx context.Context) ([]entity.Account, error)
	FindByID(ctx context.Context, id string) (*entity.Account, error)
	FindByEmail(ctx context.Context, email string, role entity.Role) (*entity.Account, error)
	// Upsert replaces the account with the same id or appends it, then
	// refreshes the session mirror when it holds that account.
	Upsert(ctx context.Context, account entity.Account) error
}

// SessionRepository holds the currently signed-in account
type SessionRepository interface {
	Get(ctx context.Context) (*entity.Account, error)
	Set(ctx context.Context, account entity.Account) error
	Clear(ctx context.Context) error
}
