package jobstore

import (
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Migrator applies print_jobs schema migrations, grounded directly on
// the teacher's internal/database/migration.go Migrator (same
// createMigrator → Up/Down/Version shape, same
// migrate.ErrNoChange handling).
type Migrator struct {
	db     *DB
	logger *zap.Logger
}

// NewMigrator returns a Migrator for db.
func NewMigrator(db *DB, logger *zap.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// Up applies all pending migrations.
func (m *Migrator) Up() error {
	migrator, err := m.create()
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration up failed: %w", err)
	}
	m.logger.Info("jobstore migrations applied")
	return nil
}

// Down rolls back all migrations.
func (m *Migrator) Down() error {
	migrator, err := m.create()
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Down(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration down failed: %w", err)
	}
	m.logger.Info("jobstore migrations rolled back")
	return nil
}

// Version reports the current schema version.
func (m *Migrator) Version() (uint, bool, error) {
	migrator, err := m.create()
	if err != nil {
		return 0, false, err
	}
	defer migrator.Close()
	return migrator.Version()
}

func (m *Migrator) create() (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(m.db.DB, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create postgres migration driver: %w", err)
	}

	migrationsPath, err := filepath.Abs("internal/jobstore/migrations")
	if err != nil {
		return nil, fmt.Errorf("resolve migrations path: %w", err)
	}

	migrator, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return migrator, nil
}
