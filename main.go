package main

import (
	"context"
	"log"
	"time"

	"car-rental/cmd"
	"car-rental/internal/data/repository"
	"car-rental/internal/job"
	"car-rental/internal/notify"
	"car-rental/internal/store"
	"car-rental/internal/wire"
	"car-rental/pkg/database"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	loc, err := config.App.Location()
	if err != nil {
		logger.Fatal("Failed to resolve timezone", zap.Error(err))
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("storage", config.Storage.Driver),
		zap.String("timezone", loc.String()),
	)

	repos, closeStorage := openStorage(config, loc, logger)
	defer closeStorage()

	bookings := store.New(repos.Booking, logger)

	startupCtx, cancel := context.WithTimeout(context.Background(), config.Sync.Timeout)
	if err := bookings.Refresh(startupCtx); err != nil {
		// the resync job or POST /api/bookings/refresh retries
		logger.Warn("Initial booking load failed", zap.Error(err))
	}
	cancel()

	var resync *job.Resync
	if config.Sync.Schedule != "" {
		resync, err = job.NewResync(bookings, config.Sync.Schedule, config.Sync.Timeout, logger)
		if err != nil {
			logger.Fatal("Failed to schedule booking resync", zap.Error(err))
		}
		resync.Start()
	}

	notifier := notify.New(config.Email, config.SMS, loc, logger)
	app := wire.Wiring(bookings, notifier, config, loc, logger)

	err = cmd.APIServer(app.Router, config.App.Port, logger, func(ctx context.Context) {
		if resync != nil {
			resync.Stop(ctx)
		}
	})
	if err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}

// openStorage connects the configured bookings table.
func openStorage(config *utils.Config, loc *time.Location, logger *zap.Logger) (*repository.Repository, func()) {
	if config.Storage.Driver == utils.StorageDriverMemory {
		table := repository.NewTable()
		if config.Storage.SeedDemo {
			repository.SeedDemoBookings(table, time.Now())
			logger.Info("Demo bookings seeded")
		}
		return repository.NewMemoryRepository(table, loc, logger), func() {}
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("Database connected successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		db.Close()
		logger.Fatal("Failed to prepare database schema", zap.Error(err))
	}

	return repository.NewRepository(db, logger), db.Close
}
