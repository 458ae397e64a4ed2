// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/models"
)

// metaColumns are shared by every journal table and precede the entity
// specific columns in every SELECT and RETURNING list.
var metaColumns = []string{"id", "user_id", "created_at"}

// journalRepository implements [JournalRepository] for any journal entity.
// P is the pointer type of T that knows its table and columns.
type journalRepository[T any, P models.RecordPtr[T]] struct {
	db     *DB
	logger *logger.Logger

	table   string
	fields  []string
	columns []string
}

// NewJournalRepository builds a repository for T using the table and column
// metadata declared by *T.
func NewJournalRepository[T any, P models.RecordPtr[T]](db *DB, log *logger.Logger) JournalRepository[T] {
	var zero T
	record := P(&zero)

	fields := record.Fields()
	columns := make([]string, 0, len(metaColumns)+len(fields))
	columns = append(columns, metaColumns...)
	columns = append(columns, fields...)

	log.Debug().Str("table", record.TableName()).Msg("creating journal repository")

	return &journalRepository[T, P]{
		db:      db,
		logger:  log,
		table:   record.TableName(),
		fields:  fields,
		columns: columns,
	}
}

// List returns the records of userID ordered by id. The result is never nil.
func (r *journalRepository[T, P]) List(ctx context.Context, userID int64) ([]T, error) {
	query, args, err := r.db.builder.
		Select(r.columns...).
		From(r.table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.fail(ctx, "List", err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		var record T
		if err = rows.Scan(r.targets(P(&record))...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, r.fail(ctx, "List", err)
	}

	return records, nil
}

// Get returns the record id of userID or [ErrNotFound].
func (r *journalRepository[T, P]) Get(ctx context.Context, userID, id int64) (T, error) {
	var record T

	query, args, err := r.db.builder.
		Select(r.columns...).
		From(r.table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return record, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(r.targets(P(&record))...); err != nil {
		return record, r.fail(ctx, "Get", err)
	}

	return record, nil
}

// Create inserts record for its UserID and returns the stored row.
func (r *journalRepository[T, P]) Create(ctx context.Context, record T) (T, error) {
	var zero T
	p := P(&record)

	columns := append([]string{"user_id"}, r.fields...)
	values := append([]any{p.Meta().UserID}, p.Values()...)

	insert := r.db.builder.
		Insert(r.table).
		Columns(columns...).
		Values(values...)

	if !r.db.supportsReturning() {
		query, args, err := insert.ToSql()
		if err != nil {
			return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return zero, r.fail(ctx, "Create", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return zero, r.fail(ctx, "Create", err)
		}

		return r.Get(ctx, p.Meta().UserID, id)
	}

	query, args, err := insert.Suffix(r.returning()).ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created T
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(r.targets(P(&created))...); err != nil {
		return zero, r.fail(ctx, "Create", err)
	}

	return created, nil
}

// Update overwrites every entity column of the row identified by the
// record's ID and UserID and returns the stored row.
func (r *journalRepository[T, P]) Update(ctx context.Context, record T) (T, error) {
	var zero T
	p := P(&record)
	meta := p.Meta()

	update := r.db.builder.Update(r.table)
	for i, value := range p.Values() {
		update = update.Set(r.fields[i], value)
	}
	update = update.Where(sq.Eq{"id": meta.ID, "user_id": meta.UserID})

	if !r.db.supportsReturning() {
		query, args, err := update.ToSql()
		if err != nil {
			return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return zero, r.fail(ctx, "Update", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return zero, r.fail(ctx, "Update", err)
		}
		if affected == 0 {
			return zero, ErrNotFound
		}

		return r.Get(ctx, meta.UserID, meta.ID)
	}

	query, args, err := update.Suffix(r.returning()).ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated T
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(r.targets(P(&updated))...); err != nil {
		return zero, r.fail(ctx, "Update", err)
	}

	return updated, nil
}

// Delete removes the record id of userID or returns [ErrNotFound].
func (r *journalRepository[T, P]) Delete(ctx context.Context, userID, id int64) error {
	query, args, err := r.db.builder.
		Delete(r.table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.fail(ctx, "Delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.fail(ctx, "Delete", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *journalRepository[T, P]) returning() string {
	return "RETURNING " + strings.Join(r.columns, ", ")
}

func (r *journalRepository[T, P]) targets(p P) []any {
	meta := p.Meta()
	return append([]any{&meta.ID, &meta.UserID, &meta.CreatedAt}, p.Targets()...)
}

// fail maps a driver error to a sentinel error and logs the unexpected ones.
func (r *journalRepository[T, P]) fail(ctx context.Context, op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	classified := r.db.errorClassifier.Classify(err)
	if errors.Is(classified, ErrExecutingQuery) {
		logger.FromContext(ctx).Err(err).
			Str("func", "*journalRepository."+op).
			Str("table", r.table).
			Msg("unexpected database error")
	}

	return classified
}
