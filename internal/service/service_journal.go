// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/internal/store"
	"github.com/MKhiriev/fit-journal/internal/validators"
	"github.com/MKhiriev/fit-journal/models"
)

// journalService validates journal records before handing them to the
// repository and translates storage errors into service errors.
type journalService[T any, P models.RecordPtr[T]] struct {
	repository store.JournalRepository[T]
	validator  validators.Validator
	logger     *logger.Logger
}

// NewJournalService builds a JournalService for T on top of repository.
func NewJournalService[T any, P models.RecordPtr[T]](repository store.JournalRepository[T], validator validators.Validator, logger *logger.Logger) JournalService[T] {
	return &journalService[T, P]{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

func (s *journalService[T, P]) List(ctx context.Context, userID int64) ([]T, error) {
	records, err := s.repository.List(ctx, userID)
	if err != nil {
		return nil, s.translate(err)
	}
	return records, nil
}

func (s *journalService[T, P]) Get(ctx context.Context, userID, id int64) (T, error) {
	record, err := s.repository.Get(ctx, userID, id)
	if err != nil {
		return record, s.translate(err)
	}
	return record, nil
}

// Create validates record and stores it. The owner must already be set.
func (s *journalService[T, P]) Create(ctx context.Context, record T) (T, error) {
	if err := s.validator.Validate(ctx, P(&record)); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.repository.Create(ctx, record)
	if err != nil {
		return created, s.translate(err)
	}

	logger.FromContext(ctx).Debug().
		Int64("id", P(&created).Meta().ID).
		Str("table", P(&created).TableName()).
		Msg("journal record created")

	return created, nil
}

// Update validates the complete record and overwrites the stored one.
func (s *journalService[T, P]) Update(ctx context.Context, record T) (T, error) {
	if err := s.validator.Validate(ctx, P(&record)); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated, err := s.repository.Update(ctx, record)
	if err != nil {
		return updated, s.translate(err)
	}
	return updated, nil
}

func (s *journalService[T, P]) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repository.Delete(ctx, userID, id); err != nil {
		return s.translate(err)
	}
	return nil
}

func (s *journalService[T, P]) translate(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrReferenceNotFound):
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	default:
		return err
	}
}
