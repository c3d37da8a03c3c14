package postgres

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	ports "pinstack-publish-service/internal/domain/ports/output"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// NewMigrator opens a migrator for the postgresql:// DSN over the pgx/v5
// driver. The caller closes it.
func NewMigrator(dsn, migrationsPath string) (*migrate.Migrate, error) {
	databaseURL := "pgx5://" + strings.TrimPrefix(strings.TrimPrefix(dsn, "postgresql://"), "postgres://")
	m, err := migrate.New("file://"+migrationsPath, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending migration. No pending migrations is not an
// error.
func MigrateUp(dsn, migrationsPath string, log ports.Logger) error {
	m, err := NewMigrator(dsn, migrationsPath)
	if err != nil {
		return err
	}
	defer closeMigrator(m, log)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Database schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err == nil {
		log.Info("Migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	}
	return nil
}

func closeMigrator(m *migrate.Migrate, log ports.Logger) {
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		log.Warn("Failed to close migration source", slog.String("error", sourceErr.Error()))
	}
	if dbErr != nil {
		log.Warn("Failed to close migration database", slog.String("error", dbErr.Error()))
	}
}
