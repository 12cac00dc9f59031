package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/internal/infrastructure/config"
	"voyagebj-service/internal/infrastructure/oauth"
	"voyagebj-service/internal/infrastructure/persistence"
	"voyagebj-service/internal/infrastructure/router"
	"voyagebj-service/internal/infrastructure/seeder"
	"voyagebj-service/internal/interface/gmail"
	storeRepo "voyagebj-service/internal/interface/repository"
	"voyagebj-service/internal/usecase"
	"voyagebj-service/pkg/logger"
	"voyagebj-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting VoyageBj Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics(cfg.MetricsNamespace, prometheus.DefaultRegisterer)

	// Set up storage
	medium, closeMedium, err := persistence.OpenMedium(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open storage", "driver", cfg.StorageDriver, "error", err)
	}
	store := persistence.NewSafeStore(medium, log.With("component", "store"), m, cfg.QuotaRetryKeys)

	report, err := seeder.NewSeeder(store, log).Seed(ctx)
	if err != nil {
		log.Fatal("Failed to seed storage", "error", err)
	}
	log.Info("Storage ready",
		"seededUsers", report.Users,
		"seededStations", report.Stations,
		"seededReservations", report.Reservations)

	// Set up repositories
	sessionRepo := storeRepo.NewStoreSessionRepository(store)
	accountRepo := storeRepo.NewStoreAccountRepository(store, sessionRepo)
	stationRepo := storeRepo.NewStoreStationRepository(store)
	reservationRepo := storeRepo.NewStoreReservationRepository(store)

	// Set up notification channels
	channels := router.NewChannelRouter(log)
	if cfg.WhatsAppEnabled() {
		whatsappRepo := storeRepo.NewWhatsappRepository(
			cfg.WhatsAppServiceURL,
			cfg.WhatsAppToken,
			cfg.WhatsAppCompanyID,
			cfg.WhatsAppAgentID,
			log.With("channel", "whatsapp"),
		)
		channels.Register(usecase.NewWhatsappChannel(whatsappRepo))
	}

	if cfg.GmailEnabled() {
		gmailOAuth := oauth.NewGmailOAuth(
			cfg.GmailClientID,
			cfg.GmailClientSecret,
			cfg.GmailRefreshToken,
			log,
		)
		mailRepo, err := gmail.NewGmailService(ctx, gmailOAuth.GetTokenSource(ctx), cfg.GmailSender, log.With("channel", "email"))
		if err != nil {
			log.Fatal("Failed to create Gmail service", "error", err)
		}
		channels.Register(usecase.NewMailChannel(mailRepo))
	}

	// Set up usecases
	notifier := usecase.NewReservationNotifier(channels, log, m)
	background := func(hook usecase.ReservationHook) usecase.ReservationHook {
		return func(ctx context.Context, r entity.Reservation) {
			go hook(context.WithoutCancel(ctx), r)
		}
	}

	bookingService := usecase.NewBookingService(reservationRepo, log, m)
	bookingService.OnBooked(background(notifier.Booked))

	statusWorkflow := usecase.NewStatusWorkflow(accountRepo, reservationRepo, log, m)
	statusWorkflow.OnCompleted(background(notifier.Completed))

	authService := usecase.NewAuthService(accountRepo, sessionRepo, cfg.AdminPassword, log)
	networkService := usecase.NewNetworkService(stationRepo, log)
	catalogService := usecase.NewCatalogService(accountRepo, stationRepo)

	app := &usecase.Services{
		Auth:     authService,
		Booking:  bookingService,
		Status:   statusWorkflow,
		Network:  networkService,
		Catalog:  catalogService,
		Notifier: notifier,
	}
	if orphans, err := app.Catalog.OrphanedRoutes(ctx); err == nil && len(orphans) > 0 {
		log.Warn("Routes without a parent station", "count", len(orphans))
	}

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if _, _, err := medium.Get(r.Context(), repository.KeyUsers); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Storage unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	if err := closeMedium(shutdownCtx); err != nil {
		log.Error("Storage close error", "error", err)
	}

	log.Info("VoyageBj Service stopped")
}
