package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"stormy/db/migrations"
)

// ErrDirtySchema is returned when a previous migration stopped half way.
// The schema is left for an operator to repair rather than forced.
var ErrDirtySchema = errors.New("database is in dirty state")

// Migrate brings the schema at addr to migrations.Version. Cancelling ctx
// stops after the migration in flight.
func Migrate(ctx context.Context, logger *slog.Logger, addr string) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer mg.Close()

	from, err := schemaVersion(mg)
	if err != nil {
		return err
	}
	if from == migrations.Version {
		logger.Debug("schema up to date", slog.Uint64("version", uint64(from)))
		return nil
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			mg.GracefulStop <- true
		case <-done:
		}
	}()

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %d -> %d: %w", from, migrations.Version, err)
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	logger.Info("schema migrated",
		slog.Uint64("from", uint64(from)),
		slog.Uint64("to", uint64(migrations.Version)),
	)
	return nil
}

// schemaVersion reports the applied version, zero for an empty database.
func schemaVersion(mg *migrate.Migrate) (uint, error) {
	v, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("read schema version: %w", err)
	case dirty:
		return v, fmt.Errorf("%w at version %d", ErrDirtySchema, v)
	}
	return v, nil
}
