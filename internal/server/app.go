// Package server wires configuration, storage, services, and the HTTP API
// together and runs the application with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"calendard/internal/logging"
	"calendard/internal/server/config"
	"calendard/internal/server/events"
	"calendard/internal/server/httpapi"
	"calendard/internal/server/shared/db"
	"calendard/internal/server/users"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	repos        db.RepositoryManager
	userService  *users.Service
	eventService *events.Service
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewDefault()

	var repos db.RepositoryManager
	switch c.Storage {
	case config.StorageMemory:
		repos = db.NewInMemoryRepositoryManager()
	case config.StoragePostgres:
		m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		repos = m
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.Storage)
	}

	return &App{
		config:       c,
		logger:       logger,
		repos:        repos,
		userService:  users.NewService(repos.Users()),
		eventService: events.NewService(repos.Events()),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr, "storage", app.config.Storage)

	app.initSignalHandler(cancelFunc)

	srv := httpapi.NewServer(
		app.config.EndpointAddr,
		app.logger,
		app.userService,
		app.eventService,
		app.config.CookieSecure,
		app.config.ShutdownTimeout,
	)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing storage", "error", err.Error())
	}
}
