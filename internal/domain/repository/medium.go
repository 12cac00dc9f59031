package repository

import (
	"context"
	"errors"
	"fmt"
)

// Persisted collection keys
const (
	KeyUsers        = "vb_users"
	KeyStations     = "vb_stations"
	KeyReservations = "vb_reservations"
	KeyCurrentUser  = "vb_current_user"
)

var (
	// ErrQuotaExceeded is returned by a Medium when a write does not fit
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrStoreFull is returned by the store once quota recovery is exhausted
	ErrStoreFull = errors.New("storage full")
)

// Medium is a string key-value store. Each call is atomic on its own;
// nothing serializes a read followed by a write.
type Medium interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// StoreError wraps a medium or serialization failure for a key
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
