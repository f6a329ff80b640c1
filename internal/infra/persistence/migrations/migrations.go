// Package migrations embeds the schema and applies it with golang-migrate.
package migrations

import (
	"embed"
	"log/slog"

	"circlecheck/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed *.sql
var migrationsFS embed.FS

// NewMigrator creates a migrate instance bound to the connection pool behind db.
func NewMigrator(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	source, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration source")
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}

	return m, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func Up(db *gorm.DB, logger *slog.Logger) error {
	m, err := NewMigrator(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to run migrations")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "failed to read migration version")
	}

	logger.Info("Database schema is up to date", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}

// Down rolls back a single migration step.
func Down(db *gorm.DB, logger *slog.Logger) error {
	m, err := NewMigrator(db)
	if err != nil {
		return err
	}

	if err := m.Steps(-1); err != nil {
		return errors.Wrap(err, "failed to roll back migration")
	}

	logger.Info("Rolled back one migration")

	return nil
}
