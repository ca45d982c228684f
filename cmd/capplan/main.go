package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"

	"github.com/alexanderramin/capplan/internal/cli"
	"github.com/alexanderramin/capplan/internal/config"
	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/logging"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/alexanderramin/capplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var (
		database *db.DB
		logFile  io.Closer
	)
	defer func() {
		if database != nil {
			database.Close()
		}
		if logFile != nil {
			logFile.Close()
		}
	}()

	app := &cli.App{
		HTTPAddr: cfg.HTTPAddr,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	// Logging and the database are set up after flag parsing so --verbose
	// applies to connection retries too.
	app.Bootstrap = func(ctx context.Context, app *cli.App, verbose bool) error {
		closer, err := logging.Init(logging.Options{
			Level:   cfg.LogLevel,
			Verbose: verbose,
			File:    cfg.LogFile,
		})
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		logFile = closer
		app.Logger = log.Logger

		database, err = db.Connect(ctx, cfg.DB, db.RetryPolicy{
			MaxAttempts: cfg.DBRetryMaxAttempts,
			Initial:     cfg.DBRetryInitial,
			MaxInterval: cfg.DBRetryMaxInterval,
		})
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		log.Debug().Str("dialect", database.Dialect.String()).Msg("database ready")

		var observers []service.UseCaseObserver
		if cfg.UseCaseLog {
			observers = append(observers, service.NewLogUseCaseObserver(log.Logger))
		}

		// Wire repositories
		scenarioRepo := repository.NewScenarioRepo(database)
		itemRepo := repository.NewItemRepo(database)
		settingsRepo := repository.NewSettingsRepo(database)

		// Wire unit of work for transactional operations
		uow := db.NewUnitOfWork(database)

		// Wire services
		settingsSvc := service.NewSettingsService(settingsRepo, observers...)

		app.Scenarios = service.NewScenarioService(scenarioRepo, observers...)
		app.Items = service.NewItemService(itemRepo, scenarioRepo, settingsSvc, uow, observers...)
		app.Settings = settingsSvc
		app.Estimate = service.NewEstimateService(settingsSvc)
		app.Capacity = service.NewCapacityService(scenarioRepo, itemRepo, settingsSvc, observers...)
		app.Import = service.NewImportService(scenarioRepo, settingsSvc, uow, observers...)
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}
