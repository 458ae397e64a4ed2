// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fit-journal/internal/config"
	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/migrations"
)

// DB wraps *sql.DB with everything the repositories need to speak the
// connected dialect: a squirrel statement builder with the right placeholder
// format and an error classifier for driver errors.
type DB struct {
	*sql.DB
	dialect         string
	builder         sq.StatementBuilderType
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// NewConnect opens the database named by cfg.DSN. postgres:// and
// postgresql:// DSNs are served by pgx, sqlite:// and file: DSNs by sqlite3.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"), strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: expected postgres://, postgresql://, sqlite:// or file: scheme", ErrUnsupportedDSN)
	}
}

// newDB assembles a DB for an already opened connection.
func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassifier = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassifier = NewPostgresErrorClassifier()
	}

	return db
}

// Dialect reports the database/sql driver name in use.
func (db *DB) Dialect() string {
	return db.dialect
}

// supportsReturning reports whether writes can return the stored row with
// a RETURNING clause. mattn/go-sqlite3 does not report column types for
// RETURNING results, so timestamps would come back as plain strings.
func (db *DB) supportsReturning() bool {
	return db.dialect == migrations.DialectPostgres
}

// Migrate applies the embedded schema migrations for the connected dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}
