// Package journalservice собирает и запускает основное HTTP-приложение.
package journalservice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/journal-service/internal/cache"
	"github.com/magabrotheeeer/journal-service/internal/config"
	"github.com/magabrotheeeer/journal-service/internal/lib/jwt"
	"github.com/magabrotheeeer/journal-service/internal/lib/password"
	"github.com/magabrotheeeer/journal-service/internal/migrations"
	"github.com/magabrotheeeer/journal-service/internal/services"
	"github.com/magabrotheeeer/journal-service/internal/storage/repository"
)

// App объединяет HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New собирает приложение: подключает хранилище, применяет миграции,
// инициализирует кэш, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	hasher := password.NewHasher(cfg.BcryptCost)

	authService := services.NewAuthService(db, jwtMaker, hasher)
	journalService := services.NewJournalService(db, cacheRedis, logger)
	summaryService := services.NewSummaryService(db, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, jwtMaker, authService, journalService, summaryService)

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
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
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
