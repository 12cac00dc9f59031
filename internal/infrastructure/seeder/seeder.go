package seeder

import (
	"context"
	"fmt"
	"sync"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/internal/infrastructure/persistence"
	"voyagebj-service/pkg/logger"
)

// Report tells which collections were written by a seeding run
type Report struct {
	Users        bool
	Stations     bool
	Reservations bool
}

// Seeder populates the store on first run. It only looks at key presence:
// a collection that exists, even empty, is never written again.
type Seeder struct {
	store  *persistence.SafeStore
	logger logger.Logger

	once   sync.Once
	report Report
	err    error
}

// NewSeeder creates a seeder over store
func NewSeeder(store *persistence.SafeStore, logger logger.Logger) *Seeder {
	return &Seeder{
		store:  store,
		logger: logger,
	}
}

// Seed runs at most once per Seeder. Later calls return the first result.
func (s *Seeder) Seed(ctx context.Context) (Report, error) {
	s.once.Do(func() {
		s.report, s.err = s.run(ctx)
	})
	return s.report, s.err
}

func (s *Seeder) run(ctx context.Context) (Report, error) {
	s.logger.Info("Checking bootstrap data")

	var report Report
	collections := []struct {
		key     string
		value   any
		written *bool
	}{
		{repository.KeyUsers, DefaultAccounts(), &report.Users},
		{repository.KeyStations, []entity.Station{}, &report.Stations},
		{repository.KeyReservations, []entity.Reservation{}, &report.Reservations},
	}

	for _, c := range collections {
		present, err := s.store.Has(ctx, c.key)
		if err != nil {
			return report, fmt.Errorf("failed to check %s: %w", c.key, err)
		}
		if present {
			continue
		}
		if err := s.store.Write(ctx, c.key, c.value); err != nil {
			return report, fmt.Errorf("failed to seed %s: %w", c.key, err)
		}
		*c.written = true
		s.logger.Info("Seeded collection", "key", c.key)
	}

	return report, nil
}

// DefaultAccounts returns the bootstrap account set: the administrator, one
// approved company, one company awaiting moderation and one traveler.
func DefaultAccounts() []entity.Account {
	return []entity.Account{
		{
			ID:    entity.AdminID,
			Name:  "Administrateur",
			Email: "admin@voyagebj.com",
			Role:  entity.RoleAdmin,
		},
		{
			ID:          "comp1",
			Name:        "Paul Manager",
			NPI:         "1234567890",
			CompanyName: "Global Trans Co.",
			Email:       "contact@global.com",
			Role:        entity.RoleCompany,
			AvatarURL:   "https://picsum.photos/id/1/200/200",
			BannerURL:   "https://picsum.photos/id/10/800/300",
			Status:      entity.CompanyApproved,
			IFU:         "1234567890123",
			RCCM:        "RB/COT/001",
			AnattURL:    "autorisation_anatt.pdf",
			Phone:       "97000001",
		},
		{
			ID:          "comp2",
			Name:        "Jean Directeur",
			NPI:         "0987654321",
			CompanyName: "Benin Express",
			Email:       "new@benin.com",
			Role:        entity.RoleCompany,
			AvatarURL:   "https://picsum.photos/id/3/200/200",
			BannerURL:   "https://picsum.photos/id/11/800/300",
			Status:      entity.CompanyPending,
			IFU:         "9876543210987",
			RCCM:        "RB/COT/002",
			AnattURL:    "demande_agrement.docx",
			Phone:       "66000002",
		},
		{
			ID:        "client1",
			Name:      "Amina Client",
			NPI:       "1122334455",
			Email:     "amina@mail.com",
			Phone:     "+229 97000000",
			Role:      entity.RoleClient,
			AvatarURL: "https://picsum.photos/id/2/200/200",
		},
	}
}
