// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
)

const (
	postgresScheme   = "postgres://"
	postgresqlScheme = "postgresql://"
	sqliteScheme     = "sqlite://"
)

// DB is a database handle together with the dialect-specific pieces the
// repositories need: a statement builder with the right placeholder format
// and a driver error classifier.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database named by cfg.DSN.
//
// A DSN starting with postgres:// or postgresql:// is opened with pgx.
// A DSN of the form sqlite://<path> opens the SQLite file at path
// (":memory:" for an in-memory database).
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, postgresScheme), strings.HasPrefix(cfg.DSN, postgresqlScheme):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, sqliteScheme):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: expected %s or %s", ErrUnsupportedDSN, postgresScheme, sqliteScheme)
	}
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect reports which database db talks to.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator.Classify(err) == UniqueViolation
}
