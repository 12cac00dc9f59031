package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voyagebj-service/internal/domain/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry GORM model for database mapping
type KVEntry struct {
	Key       string `gorm:"column:key;primaryKey"`
	Value     string `gorm:"column:value;type:text"`
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (KVEntry) TableName() string {
	return "kv_entries"
}

// NewPostgresDB opens a GORM connection and migrates the key-value table
func NewPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return db, nil
}

// GormMedium keeps each key as one row of kv_entries
type GormMedium struct {
	db            *gorm.DB
	maxValueBytes int64
}

// NewGormMedium creates a medium over db. Values larger than maxValueBytes
// are refused with a quota error; zero means no limit.
func NewGormMedium(db *gorm.DB, maxValueBytes int64) *GormMedium {
	return &GormMedium{
		db:            db,
		maxValueBytes: maxValueBytes,
	}
}

// Get finds the row for key
func (m *GormMedium) Get(ctx context.Context, key string) (string, bool, error) {
	var entry KVEntry
	result := m.db.WithContext(ctx).Where("key = ?", key).First(&entry)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if result.Error != nil {
		return "", false, result.Error
	}
	return entry.Value, true, nil
}

// Set upserts the row for key
func (m *GormMedium) Set(ctx context.Context, key, value string) error {
	if m.maxValueBytes > 0 && int64(len(value)) > m.maxValueBytes {
		return fmt.Errorf("value for %q is %d bytes, limit %d: %w", key, len(value), m.maxValueBytes, repository.ErrQuotaExceeded)
	}

	entry := KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return m.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Remove deletes the row for key
func (m *GormMedium) Remove(ctx context.Context, key string) error {
	return m.db.WithContext(ctx).Where("key = ?", key).Delete(&KVEntry{}).Error
}
