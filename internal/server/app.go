// Package server initializes and runs the duetdiary disclosure server.
// It opens the database, applies migrations, wires the reveal and checkpoint
// services, and serves them over gRPC until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/duetdiary/internal/logging"
	"github.com/dmitrijs2005/duetdiary/internal/server/config"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/duetdiary/internal/server/services"
	"github.com/dmitrijs2005/duetdiary/internal/server/storage"

	gs "github.com/dmitrijs2005/duetdiary/internal/server/grpc"
)

type App struct {
	config            *config.Config
	logger            logging.Logger
	db                *sql.DB
	revealService     *services.RevealService
	checkpointService *services.CheckpointService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	var presigner storage.Presigner
	if c.StorageEnabled() {
		p, err := storage.NewS3Presigner(ctx, storage.Options{
			Region:       c.S3Region,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			BaseEndpoint: c.S3BaseEndpoint,
			Bucket:       c.S3Bucket,
			Expiry:       c.PresignExpiry,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("storage init error: %w", err)
		}
		presigner = p
	} else {
		logger.Warn(ctx, "media storage disabled, checkpoint media links will be empty")
	}

	return &App{
		config:            c,
		logger:            logger,
		db:                db,
		revealService:     services.NewRevealService(db, rm, loc, logger),
		checkpointService: services.NewCheckpointService(db, rm, presigner, loc, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.revealService, app.checkpointService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "time_zone", app.config.TimeZone)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
