// Package migrations embeds the deliveries schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var schema embed.FS

var (
	ErrNilDB          = errors.New("migrations: nil database handle")
	ErrDialect        = errors.New("migrations: unsupported dialect")
	ErrApplyMigration = errors.New("migrations: apply failed")
)

// Up applies every pending migration. dialect names the goose dialect that
// matches the database/sql driver ("pgx" or "sqlite3").
func Up(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	goose.SetBaseFS(schema)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("%w %q: %w", ErrDialect, dialect, err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("%w: %w", ErrApplyMigration, err)
	}

	return nil
}
