// Package migrations применяет встроенные SQL миграции схемы через golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

var (
	// ErrLoadSource возвращается, если не удалось прочитать встроенные миграции
	ErrLoadSource = errors.New("migrations: failed to load source")

	// ErrDatabaseDriver возвращается, если не удалось инициализировать драйвер БД
	ErrDatabaseDriver = errors.New("migrations: failed to init database driver")

	// ErrApply возвращается при ошибке применения миграций
	ErrApply = errors.New("migrations: failed to apply")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Up применяет все недостающие миграции. Отсутствие изменений не считается ошибкой.
func Up(db *sql.DB, logger Logger) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("Migrations: schema is up to date")
			return nil
		}
		return fmt.Errorf("%w: Up: %w", ErrApply, err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("%w: Version: %w", ErrApply, err)
	}

	logger.Info("Migrations: applied, version=%d, dirty=%t", version, dirty)
	return nil
}

// Down откатывает все миграции
func Down(db *sql.DB) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: Down: %w", ErrApply, err)
	}

	return nil
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadSource, err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseDriver, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrApply, err)
	}

	return m, nil
}
