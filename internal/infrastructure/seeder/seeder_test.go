package seeder

import (
	"context"
	"testing"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/internal/infrastructure/persistence"
	"voyagebj-service/pkg/logger"
)

func newStore() (*persistence.SafeStore, *persistence.MemoryMedium) {
	medium := persistence.NewMemoryMedium(0)
	return persistence.NewSafeStore(medium, logger.NewNopLogger(), nil, nil), medium
}

func TestSeedFreshStore(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore()

	report, err := NewSeeder(store, logger.NewNopLogger()).Seed(ctx)
	if err != nil {
		t.Fatalf("Seed error: %v", err)
	}
	if !report.Users || !report.Stations || !report.Reservations {
		t.Fatalf("report=%+v, want everything seeded", report)
	}

	accounts, err := persistence.Read(ctx, store, repository.KeyUsers, []entity.Account{})
	if err != nil {
		t.Fatalf("Read users: %v", err)
	}
	byID := map[string]entity.Account{}
	for _, a := range accounts {
		byID[a.ID] = a
	}

	cases := []struct {
		id     string
		role   entity.Role
		status entity.CompanyStatus
	}{
		{entity.AdminID, entity.RoleAdmin, ""},
		{"comp1", entity.RoleCompany, entity.CompanyApproved},
		{"comp2", entity.RoleCompany, entity.CompanyPending},
		{"client1", entity.RoleClient, ""},
	}
	if len(accounts) != len(cases) {
		t.Fatalf("seeded %d accounts, want %d", len(accounts), len(cases))
	}
	for _, tt := range cases {
		a, ok := byID[tt.id]
		if !ok {
			t.Fatalf("account %s not seeded", tt.id)
		}
		if a.Role != tt.role || a.Status != tt.status {
			t.Fatalf("account %s = (%s, %s), want (%s, %s)", tt.id, a.Role, a.Status, tt.role, tt.status)
		}
	}

	for _, key := range []string{repository.KeyStations, repository.KeyReservations} {
		present, _ := store.Has(ctx, key)
		if !present {
			t.Fatalf("%s not seeded", key)
		}
	}
}

func TestSeedRespectsPresentKeys(t *testing.T) {
	ctx := context.Background()
	store, medium := newStore()

	// an emptied directory must stay empty
	medium.Set(ctx, repository.KeyUsers, "[]")
	medium.Set(ctx, repository.KeyStations, `[{"id":"s1","type":"STATION"}]`)

	report, err := NewSeeder(store, logger.NewNopLogger()).Seed(ctx)
	if err != nil {
		t.Fatalf("Seed error: %v", err)
	}
	if report.Users || report.Stations || !report.Reservations {
		t.Fatalf("report=%+v, want only reservations seeded", report)
	}

	users, _, _ := medium.Get(ctx, repository.KeyUsers)
	if users != "[]" {
		t.Fatalf("users=%q, want untouched", users)
	}
	stations, _, _ := medium.Get(ctx, repository.KeyStations)
	if stations != `[{"id":"s1","type":"STATION"}]` {
		t.Fatalf("stations=%q, want untouched", stations)
	}
}

func TestSeedRunsOnce(t *testing.T) {
	ctx := context.Background()
	store, medium := newStore()
	s := NewSeeder(store, logger.NewNopLogger())

	if _, err := s.Seed(ctx); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	medium.Remove(ctx, repository.KeyUsers)

	report, err := s.Seed(ctx)
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if !report.Users {
		t.Fatal("second call should return the first report")
	}
	if _, ok, _ := medium.Get(ctx, repository.KeyUsers); ok {
		t.Fatal("second call wrote the users key again")
	}

	// a new process over a populated store writes nothing
	store2 := persistence.NewSafeStore(medium, logger.NewNopLogger(), nil, nil)
	medium.Set(ctx, repository.KeyUsers, "[]")
	report, err = NewSeeder(store2, logger.NewNopLogger()).Seed(ctx)
	if err != nil {
		t.Fatalf("Seed on populated store: %v", err)
	}
	if report != (Report{}) {
		t.Fatalf("report=%+v, want nothing written", report)
	}
}
