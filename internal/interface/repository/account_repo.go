package repository

import (
	"context"
	"fmt"
	"strings"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/internal/infrastructure/persistence"
)

// StoreAccountRepository implements AccountRepository over the vb_users collection
type StoreAccountRepository struct {
	store   *persistence.SafeStore
	session repository.SessionRepository
}

// NewStoreAccountRepository creates a new account repository. Writes to the
// account held by session are mirrored there.
func NewStoreAccountRepository(store *persistence.SafeStore, session repository.SessionRepository) repository.AccountRepository {
	return &StoreAccountRepository{
		store:   store,
		session: session,
	}
}

// GetAll returns every account
func (r *StoreAccountRepository) GetAll(ctx context.Context) ([]entity.Account, error) {
	return persistence.Read(ctx, r.store, repository.KeyUsers, []entity.Account{})
}

// FindByID finds an account by id
func (r *StoreAccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	accounts, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			return &accounts[i], nil
		}
	}
	return nil, fmt.Errorf("account %s: %w", id, entity.ErrNotFound)
}

// FindByEmail finds an account of the given role by case-insensitive email
func (r *StoreAccountRepository) FindByEmail(ctx context.Context, email string, role entity.Role) (*entity.Account, error) {
	accounts, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	for i := range accounts {
		if accounts[i].Role == role && strings.EqualFold(accounts[i].Email, email) {
			return &accounts[i], nil
		}
	}
	return nil, fmt.Errorf("%s account %s: %w", role, email, entity.ErrNotFound)
}

// Upsert replaces the account with the same id or appends it
func (r *StoreAccountRepository) Upsert(ctx context.Context, account entity.Account) error {
	accounts, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range accounts {
		if accounts[i].ID == account.ID {
			accounts[i] = account
			replaced = true
			break
		}
	}
	if !replaced {
		accounts = append(accounts, account)
	}

	if err := r.store.Write(ctx, repository.KeyUsers, accounts); err != nil {
		return err
	}

	current, err := r.session.Get(ctx)
	if err != nil {
		return err
	}
	if current != nil && current.ID == account.ID {
		return r.session.Set(ctx, account)
	}
	return nil
}
