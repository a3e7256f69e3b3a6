package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-deliveries/internal/app"
	"github.com/MKhiriev/go-deliveries/internal/config"
	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/migrations"
)

// DB is an open connection pool together with the driver-specific pieces the
// repositories need: the driver name, the error classifier and the per
// operation timeout.
type DB struct {
	*sql.DB
	driver             string
	queryTimeout       time.Duration
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Up(ctx, db.DB, db.driver)
}

// withTimeout bounds ctx by the configured query timeout.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.queryTimeout)
}

// wrapError wraps err with the failed step and the category it belongs to:
// [app.ErrBackendUnavailable] for transient or connection-level failures,
// [app.ErrInternal] otherwise.
func (db *DB) wrapError(step error, err error) error {
	return fmt.Errorf("%w: %w: %w", db.categoryOf(err), step, err)
}

func (db *DB) categoryOf(err error) error {
	if isUnavailable(err) {
		return app.ErrBackendUnavailable
	}
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return app.ErrBackendUnavailable
	}
	return app.ErrInternal
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
