package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"pinstack-publish-service/internal/infrastructure/config"
	"pinstack-publish-service/internal/infrastructure/logger"
	"pinstack-publish-service/internal/infrastructure/outbound/repository/postgres"

	"github.com/golang-migrate/migrate/v4"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up, down or version")
	steps := flag.Int("steps", 0, "number of steps; 0 applies all")
	flag.Parse()

	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	m, err := postgres.NewMigrator(cfg.Database.DSN(), cfg.Database.MigrationsPath)
	if err != nil {
		log.Error("Failed to open migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
			log.Warn("Failed to close migrator")
		}
	}()

	switch *direction {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Error("Failed to read migration version", slog.String("error", verr.Error()))
			os.Exit(1)
		}
		log.Info("Migration version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
		return
	default:
		log.Error("Unknown migration direction", slog.String("direction", *direction))
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error("Migration failed", slog.String("direction", *direction), slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("Migration finished", slog.String("direction", *direction))
}
