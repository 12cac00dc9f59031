package repository

import (
	"context"
	"fmt"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/internal/infrastructure/persistence"
)

// StoreStationRepository implements StationRepository over the vb_stations collection
type StoreStationRepository struct {
	store *persistence.SafeStore
}

// NewStoreStationRepository creates a new station repository
func NewStoreStationRepository(store *persistence.SafeStore) repository.StationRepository {
	return &StoreStationRepository{
		store: store,
	}
}

// GetAll returns every station and route
func (r *StoreStationRepository) GetAll(ctx context.Context) ([]entity.Station, error) {
	return persistence.Read(ctx, r.store, repository.KeyStations, []entity.Station{})
}

// FindByID finds a node by id. Routes whose parent was deleted are still found.
func (r *StoreStationRepository) FindByID(ctx context.Context, id string) (*entity.Station, error) {
	nodes, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i], nil
		}
	}
	return nil, fmt.Errorf("station %s: %w", id, entity.ErrNotFound)
}

// Upsert replaces the node with the same id or appends it
func (r *StoreStationRepository) Upsert(ctx context.Context, node entity.Station) error {
	nodes, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range nodes {
		if nodes[i].ID == node.ID {
			nodes[i] = node
			replaced = true
			break
		}
	}
	if !replaced {
		nodes = append(nodes, node)
	}

	return r.store.Write(ctx, repository.KeyStations, nodes)
}

// Delete removes the node with id. Missing ids are ignored.
func (r *StoreStationRepository) Delete(ctx context.Context, id string) error {
	nodes, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := nodes[:0]
	for _, n := range nodes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}

	return r.store.Write(ctx, repository.KeyStations, kept)
}
