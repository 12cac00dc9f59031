package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/pkg/logger"
	"voyagebj-service/pkg/metrics"
)

// SafeStore serializes values as JSON over a Medium. Corrupted values are
// discarded on read and quota failures are recovered once for selected keys.
type SafeStore struct {
	medium    repository.Medium
	retryKeys map[string]bool
	logger    logger.Logger
	metrics   *metrics.Metrics
}

// NewSafeStore creates a store over medium. retryKeys lists the keys that are
// cleared and rewritten once when the medium runs out of space; nil selects
// the accounts collection only.
func NewSafeStore(medium repository.Medium, logger logger.Logger, m *metrics.Metrics, retryKeys []string) *SafeStore {
	if retryKeys == nil {
		retryKeys = []string{repository.KeyUsers}
	}
	keys := make(map[string]bool, len(retryKeys))
	for _, k := range retryKeys {
		keys[k] = true
	}
	return &SafeStore{
		medium:    medium,
		retryKeys: keys,
		logger:    logger,
		metrics:   m,
	}
}

// Read decodes the value stored under key. An absent, empty or undecodable
// value yields fallback; an undecodable one is also removed. The error is
// non-nil only when the medium itself fails.
func Read[T any](ctx context.Context, s *SafeStore, key string, fallback T) (T, error) {
	defer s.observe("read", time.Now())

	raw, ok, err := s.medium.Get(ctx, key)
	if err != nil {
		s.countError("store_read")
		return fallback, &repository.StoreError{Op: "read", Key: key, Err: err}
	}
	if !ok || raw == "" {
		return fallback, nil
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		s.logger.Warn("Corrupted value, resetting key", "key", key, "error", err)
		if rmErr := s.medium.Remove(ctx, key); rmErr != nil {
			s.logger.Error("Failed to remove corrupted key", "key", key, "error", rmErr)
		}
		if s.metrics != nil {
			s.metrics.StoreParseRecoveries.WithLabelValues(key).Inc()
		}
		return fallback, nil
	}
	return value, nil
}

// Write serializes value and stores it under key
func (s *SafeStore) Write(ctx context.Context, key string, value any) error {
	defer s.observe("write", time.Now())

	data, err := json.Marshal(value)
	if err != nil {
		s.countError("store_write")
		return &repository.StoreError{Op: "encode", Key: key, Err: err}
	}

	err = s.medium.Set(ctx, key, string(data))
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrQuotaExceeded) {
		s.countError("store_write")
		return &repository.StoreError{Op: "write", Key: key, Err: err}
	}
	if !s.retryKeys[key] {
		s.countError("store_full")
		return fmt.Errorf("%w: cannot save %q, reduce image payloads", repository.ErrStoreFull, key)
	}

	s.logger.Warn("Storage quota exceeded, clearing key and retrying", "key", key, "bytes", len(data))
	if s.metrics != nil {
		s.metrics.StoreQuotaRetries.WithLabelValues(key).Inc()
	}
	if err := s.medium.Remove(ctx, key); err != nil {
		s.countError("store_write")
		return &repository.StoreError{Op: "remove", Key: key, Err: err}
	}
	if err := s.medium.Set(ctx, key, string(data)); err != nil {
		s.countError("store_full")
		if errors.Is(err, repository.ErrQuotaExceeded) {
			return fmt.Errorf("%w: cannot save %q even after clearing it", repository.ErrStoreFull, key)
		}
		return &repository.StoreError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// Has reports whether key holds a non-empty value, decodable or not
func (s *SafeStore) Has(ctx context.Context, key string) (bool, error) {
	raw, ok, err := s.medium.Get(ctx, key)
	if err != nil {
		return false, &repository.StoreError{Op: "read", Key: key, Err: err}
	}
	return ok && raw != "", nil
}

// Remove deletes key
func (s *SafeStore) Remove(ctx context.Context, key string) error {
	if err := s.medium.Remove(ctx, key); err != nil {
		return &repository.StoreError{Op: "remove", Key: key, Err: err}
	}
	return nil
}

func (s *SafeStore) observe(op string, start time.Time) {
	if s.metrics != nil {
		s.metrics.StoreOperationTime.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}

func (s *SafeStore) countError(op string) {
	if s.metrics != nil {
		s.metrics.ErrorsCount.WithLabelValues(op).Inc()
	}
}
