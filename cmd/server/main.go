package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jetsetter-booking/internal/domain/repository"
	"jetsetter-booking/internal/infrastructure/config"
	"jetsetter-booking/internal/infrastructure/oauth"
	"jetsetter-booking/internal/infrastructure/persistence"
	"jetsetter-booking/internal/infrastructure/router"
	"jetsetter-booking/internal/interface/handler"
	"jetsetter-booking/internal/interface/mailer"
	bookingRepo "jetsetter-booking/internal/interface/repository"
	"jetsetter-booking/internal/usecase"
	"jetsetter-booking/pkg/clock"
	"jetsetter-booking/pkg/logger"
	"jetsetter-booking/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting Jetsetter Booking Service", "version", cfg.AppVersion)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection (booking slot store)
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up PostgreSQL connection (booking archive)
	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	appMetrics := metrics.NewMetrics("jetsetter_booking")
	clk := clock.NewSystem()

	// Set up repositories
	bookingStore := bookingRepo.NewMongoBookingRepository(db)
	bookingArchive := bookingRepo.NewGormBookingArchive(gormDB)
	gateway := bookingRepo.NewArcPayRepository(
		cfg.ArcPayBaseURL,
		cfg.ArcPayMerchantID,
		cfg.ArcPayUsername,
		cfg.ArcPayPassword,
		cfg.ArcPayTimeout,
		clk,
		log,
	)
	inventory := bookingRepo.NewInventoryRepository(cfg.InventoryBaseURL, cfg.InventoryToken, 30*time.Second, log)

	// Confirmation mailer is optional; the booking flow works without it
	var confirmationMailer repository.ConfirmationMailer
	if cfg.MailerEnabled() {
		gmailOAuth := oauth.NewGmailOAuth(cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRefreshToken, log)
		gm, err := mailer.NewGmailMailer(ctx, gmailOAuth.GetTokenSource(ctx), cfg.GmailFrom, log)
		if err != nil {
			log.Error("Failed to create Gmail mailer, confirmations disabled", "error", err)
		} else {
			confirmationMailer = gm
		}
	} else {
		log.Warn("Gmail credentials not set, confirmation emails disabled")
	}

	// Set up use cases
	orchestrator := usecase.NewBookingOrchestrator(
		gateway,
		bookingStore,
		bookingArchive,
		inventory,
		confirmationMailer,
		clk,
		appMetrics,
		log,
	)
	aggregator := usecase.NewTripAggregator(bookingStore, clk, log)
	productRouter := router.NewProductRouter(log)

	bookingHandler := handler.NewBookingHandler(productRouter, orchestrator, aggregator, log)

	// Set up HTTP server
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	mux.HandleFunc("/api/v1/checkout", bookingHandler.Checkout)
	mux.HandleFunc("/api/v1/trips", bookingHandler.Trips)

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

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Jetsetter Booking Service stopped")
}
