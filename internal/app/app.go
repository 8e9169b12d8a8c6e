// Package app is the composition root: it builds the storage, cache,
// provider client and services once at startup and owns the HTTP server
// lifecycle. There is no other shared mutable state between requests.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/ahorraplan/finance-backend/internal/cache"
	"github.com/ahorraplan/finance-backend/internal/config"
	"github.com/ahorraplan/finance-backend/internal/lib/jwt"
	"github.com/ahorraplan/finance-backend/internal/migrations"
	"github.com/ahorraplan/finance-backend/internal/openai"
	adviceservice "github.com/ahorraplan/finance-backend/internal/services/advice"
	authservice "github.com/ahorraplan/finance-backend/internal/services/auth"
	debtservice "github.com/ahorraplan/finance-backend/internal/services/debt"
	"github.com/ahorraplan/finance-backend/internal/storage"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New validates the configuration, connects to the backing services and
// assembles the router. Missing secrets fail here, not per request.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg.StorageConnectionString == "" {
		return nil, fmt.Errorf("app.New: storage_connection_string is not set")
	}
	if cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("app.New: jwt_secret_key is not set")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("app.New: OPENAI_API_KEY is not set")
	}

	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	providerClient := openai.NewClient(cfg.APIKey, cfg.Model)

	authService := authservice.NewAuthService(db, db, cacheRedis, jwtMaker, logger)
	debtService := debtservice.NewDebtService()
	adviceService := adviceservice.NewAdviceService(providerClient, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, authService, debtService, adviceService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
