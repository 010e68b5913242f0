// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	for _, dialect := range []Dialect{Postgres, SQLite} {
		t.Run(string(dialect), func(t *testing.T) {
			db, _, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			// no expectations: goose fails on its first query
			err = Migrate(db, dialect)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), "migration error"), "got: %v", err)
		})
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, Postgres)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, Dialect("mysql"))
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestEmbeddedMigrations(t *testing.T) {
	for _, dialect := range []Dialect{Postgres, SQLite} {
		entries, err := embedMigrations.ReadDir(string(dialect))
		require.NoError(t, err)

		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		assert.Equal(t, []string{"00001_create_users.sql", "00002_create_posts.sql"}, names)
	}
}
