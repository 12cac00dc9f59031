package persistence

import (
	"context"
	"fmt"

	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/internal/infrastructure/config"
	"voyagebj-service/pkg/logger"
)

// CloseFunc releases the resources held by a medium
type CloseFunc func(ctx context.Context) error

func noopClose(context.Context) error { return nil }

// OpenMedium builds the medium selected by cfg.StorageDriver
func OpenMedium(ctx context.Context, cfg *config.Config, log logger.Logger) (repository.Medium, CloseFunc, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory, "":
		log.Info("Using in-memory storage", "quotaBytes", cfg.StorageQuota)
		return NewMemoryMedium(cfg.StorageQuota), noopClose, nil

	case config.DriverFile:
		log.Info("Using file storage", "dir", cfg.StorageFileDir, "quotaBytes", cfg.StorageQuota)
		medium, err := NewFileMedium(cfg.StorageFileDir, cfg.StorageQuota)
		if err != nil {
			return nil, nil, err
		}
		return medium, noopClose, nil

	case config.DriverMongo:
		log.Info("Connecting to MongoDB", "db", cfg.MongoDB, "collection", cfg.MongoCollection)
		client, err := NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		medium := NewMongoMedium(GetDatabase(client, cfg.MongoDB), cfg.MongoCollection, cfg.StorageQuota)
		return medium, client.Disconnect, nil

	case config.DriverPostgres:
		log.Info("Connecting to PostgreSQL")
		db, err := NewPostgresDB(cfg.PostgresURI)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		closeFn := func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return NewGormMedium(db, cfg.StorageQuota), closeFn, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
