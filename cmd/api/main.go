package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"lawncare/internal/config"
	"lawncare/internal/database"
	"lawncare/internal/middleware"
	"lawncare/internal/modules/admin"
	"lawncare/internal/modules/booking"
	"lawncare/internal/modules/contact"
	"lawncare/internal/modules/payment"
	"lawncare/internal/notify"
	jwtsvc "lawncare/internal/pkg/jwt"
	"lawncare/internal/pricing"
	"lawncare/internal/repository"
	"lawncare/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is empty")
	}

	store, err := newStore(cfg)
	if err != nil {
		logger.Fatal("storage init failed", zap.Error(err))
	}

	calc := pricing.NewCalculator()
	paymentService := payment.NewService(cfg.StripeSecretKey, cfg.Currency, cfg.StripeTimeout, logger)

	exporter, err := notify.NewExporter(context.Background(), store, cfg.SpreadsheetID, cfg.GoogleCredentialsFile, logger)
	if err != nil {
		logger.Fatal("sheets exporter init failed", zap.Error(err))
	}

	var channels []notify.Channel
	if cfg.EmailRelayURL != "" {
		channels = append(channels, notify.NewEmailChannel(cfg.EmailRelayURL, cfg.BusinessEmail, cfg.NotifyTimeout))
	} else {
		logger.Warn("email relay not configured, email notifications disabled")
	}
	if exporter.Configured() {
		channels = append(channels, exporter)
	}
	if cfg.AMQPURL != "" {
		relay, err := notify.NewEventRelay(cfg.AMQPURL)
		if err != nil {
			logger.Warn("amqp broker unavailable, event relay disabled", zap.Error(err))
		} else {
			defer relay.Close()
			channels = append(channels, relay)
		}
	}
	dispatcher := notify.NewDispatcher(logger, cfg.NotifyTimeout, channels...)

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.AdminTokenTTL)

	bookingService := booking.NewService(store, calc, paymentService, dispatcher)
	bookingHandler := booking.NewHandler(bookingService)

	contactService := contact.NewService(store, dispatcher)
	contactHandler := contact.NewHandler(contactService)

	adminService := admin.NewService(store, jwtService, exporter, cfg.AdminPasswordHash)
	adminHandler := admin.NewHandler(adminService)

	sched, err := scheduler.New(exporter, cfg.ExportDailySpec, cfg.ExportWeeklySpec, logger)
	if err != nil {
		logger.Fatal("scheduler init failed", zap.Error(err))
	}
	sched.Start()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		bookingHandler.RegisterRoutes(v1)
		contactHandler.RegisterRoutes(v1)
		adminHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(jwtService))
		{
			adminHandler.RegisterProtectedRoutes(protected)
		}
	}

	srv := &http.Server{Addr: cfg.Addr, Handler: r}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}

	dispatcher.Wait()
}

func newLogger(cfg *config.Config) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal(err)
	}
	return logger
}

// newStore picks the backend by DSN: "memory" keeps everything in process,
// anything else goes through gorm (postgres:// or a sqlite file path).
func newStore(cfg *config.Config) (repository.Store, error) {
	if cfg.DatabaseURL == "memory" {
		return repository.NewMemoryStore(), nil
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := repository.Migrate(db); err != nil {
		return nil, err
	}
	return repository.NewGormStore(db), nil
}
