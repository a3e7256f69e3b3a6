// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUp_Failures(t *testing.T) {
	tests := []struct {
		name    string
		nilDB   bool
		dialect string
		wantErr error
	}{
		{name: "nil handle", nilDB: true, dialect: "pgx", wantErr: ErrNilDB},
		{name: "unknown dialect", dialect: "oracle", wantErr: ErrDialect},
		// sqlmock has no expectations, so goose's version query fails
		{name: "query failure", dialect: "pgx", wantErr: ErrApplyMigration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var db *sql.DB
			if !tt.nilDB {
				var err error
				db, _, err = sqlmock.New()
				require.NoError(t, err)
				defer db.Close()
			}

			err := Up(context.Background(), db, tt.dialect)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUp_SQLiteIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Up(ctx, db, "sqlite3"))
	require.NoError(t, Up(ctx, db, "sqlite3"))

	_, err = db.Exec(`INSERT INTO deliveries (id, food, address, status) VALUES ('d1', 'pizza', 'Main St', 'CREATED')`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM deliveries`).Scan(&count))
	assert.Equal(t, 1, count)
}
