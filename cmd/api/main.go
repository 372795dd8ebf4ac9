package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/wasimadildev/begded-planner/internal/cache"
	"github.com/wasimadildev/begded-planner/internal/config"
	"github.com/wasimadildev/begded-planner/internal/database"
	"github.com/wasimadildev/begded-planner/internal/events"
	"github.com/wasimadildev/begded-planner/internal/kvstore"
	"github.com/wasimadildev/begded-planner/internal/logger"
	"github.com/wasimadildev/begded-planner/internal/middleware"
	"github.com/wasimadildev/begded-planner/internal/server"
	"github.com/wasimadildev/begded-planner/internal/services"
	"github.com/wasimadildev/begded-planner/internal/validator"
)

// @title           Budget Planner API
// @version         1.0
// @description     Budget Planner tracks income and expense transactions and savings goals per user.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	kv, db, closeStore, err := openStore(appConfig)
	if err != nil {
		return err
	}
	defer closeStore()

	publisher, err := openPublisher(appConfig)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warnw("failed to close event publisher", "error", err)
		}
	}()

	authService, err := services.NewAuthService(appConfig.Users, bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}
	analyticsService := services.NewAnalyticsService(
		cache.NewLRU[services.Analytics](appConfig.AnalyticsCacheSize, appConfig.AnalyticsCacheTTL))
	sessionService := services.NewSessionService(kv, analyticsService, appConfig.PersistTransactions)
	auditService := services.NewAuditService(db, publisher)

	validator.Register()
	router := server.NewRouter(server.Dependencies{
		Auth:      authService,
		Sessions:  sessionService,
		Analytics: analyticsService,
		Audit:     auditService,
		Tokens:    middleware.NewTokenManager(appConfig.JWTSecret, appConfig.JWTExpirationDur),
	})

	srv := &http.Server{
		Addr:    ":" + appConfig.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting Budget Planner server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// openStore returns the key-value store the sessions persist to. The
// database backend also provides the audit log table; the memory backend
// runs without one.
func openStore(cfg *config.Config) (kvstore.Store, *gorm.DB, func(), error) {
	if cfg.KVBackend == "memory" {
		logger.Get().Warn("Using in-memory store; savings goals will not survive a restart")
		return kvstore.NewMemory(), nil, func() {}, nil
	}

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		_ = dbManager.Close()
		return nil, nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	closeFn := func() {
		if err := dbManager.Close(); err != nil {
			logger.Get().Warnw("failed to close database", "error", err)
		}
	}
	return kvstore.NewGormStore(dbManager.DB()), dbManager.DB(), closeFn, nil
}

func openPublisher(cfg *config.Config) (events.Publisher, error) {
	if cfg.AMQPURL == "" {
		return events.NopPublisher{}, nil
	}
	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to message broker: %w", err)
	}
	return publisher, nil
}
