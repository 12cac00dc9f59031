package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/internal/infrastructure/persistence"
	"voyagebj-service/internal/infrastructure/seeder"
	storeRepo "voyagebj-service/internal/interface/repository"
	"voyagebj-service/pkg/logger"
	"voyagebj-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

type testEnv struct {
	medium       *persistence.MemoryMedium
	metrics      *metrics.Metrics
	session      repository.SessionRepository
	accounts     repository.AccountRepository
	stations     repository.StationRepository
	reservations repository.ReservationRepository

	booking *BookingService
	status  *StatusWorkflow
	auth    *AuthService
	network *NetworkService
	catalog *CatalogService
}

var fixedNow = time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := logger.NewNopLogger()
	m := metrics.NewMetrics("test", prometheus.NewRegistry())

	medium := persistence.NewMemoryMedium(0)
	store := persistence.NewSafeStore(medium, log, m, nil)
	if _, err := seeder.NewSeeder(store, log).Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	session := storeRepo.NewStoreSessionRepository(store)
	accounts := storeRepo.NewStoreAccountRepository(store, session)
	stations := storeRepo.NewStoreStationRepository(store)
	reservations := storeRepo.NewStoreReservationRepository(store)

	env := &testEnv{
		medium:       medium,
		metrics:      m,
		session:      session,
		accounts:     accounts,
		stations:     stations,
		reservations: reservations,
		booking:      NewBookingService(reservations, log, m),
		status:       NewStatusWorkflow(accounts, reservations, log, m),
		auth:         NewAuthService(accounts, session, "admin-secret", log),
		network:      NewNetworkService(stations, log),
		catalog:      NewCatalogService(accounts, stations),
	}

	seq := 0
	env.booking.now = func() time.Time { return fixedNow }
	env.booking.newID = func() string {
		seq++
		return fmt.Sprintf("res-%d", seq)
	}
	return env
}
