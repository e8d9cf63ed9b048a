package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/digimarket/internal/config"
	"github.com/GlebRadaev/digimarket/internal/handlers"
	"github.com/GlebRadaev/digimarket/internal/pg"
	"github.com/GlebRadaev/digimarket/internal/repo"
	"github.com/GlebRadaev/digimarket/internal/service"
	"github.com/GlebRadaev/digimarket/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	pool *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()
	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	if err := a.connectStore(ctx); err != nil {
		return err
	}
	a.repo = repo.New(pg.New(a.pool), pg.NewTXManager(a.pool))
	a.srv = service.New(a.repo)
	a.api = handlers.New(a.srv, cfg)

	if err := a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("digimarket started", zap.String("address", cfg.Address))
	return nil
}

// connectStore opens the pool and brings the schema up to date. The pool is
// closed again when migrations fail.
func (a *Application) connectStore(ctx context.Context) error {
	pool, err := getPgxpool(ctx, a.cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool
	return nil
}

func getPgxpool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := &http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.wg.Add(2)
	go func() {
		defer a.wg.Done()
		shutdownOnCancel(ctx, server)
	}()
	go func() {
		defer a.wg.Done()
		zap.L().Info("http server listening", zap.String("address", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func shutdownOnCancel(ctx context.Context, server *http.Server) {
	<-ctx.Done()

	sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(sCtx); err != nil {
		zap.L().Error("http server shutdown failed", zap.Error(err))
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var lastErr error
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for err := range a.errCh {
			zap.L().Error("component failed", zap.Error(err))
			lastErr = err
			cancel()
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	<-drained

	if a.pool != nil {
		a.pool.Close()
	}
	return lastErr
}
