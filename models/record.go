// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Owned holds the columns shared by every journal record: the primary key,
// the owning user and the creation timestamp.
type Owned struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Meta returns a pointer to the shared columns so storage code can fill
// them without knowing the concrete record type.
func (o *Owned) Meta() *Owned {
	return o
}

// Record is implemented by pointers to journal entities (exercises, meals,
// ...). Fields, Values and Targets must list the same columns in the same
// order.
type Record interface {
	// Meta exposes the shared id/user_id/created_at columns.
	Meta() *Owned

	// TableName is the table the record is stored in.
	TableName() string

	// Fields are the entity specific column names.
	Fields() []string

	// Values returns the values to write for Fields.
	Values() []any

	// Targets returns scan destinations for Fields.
	Targets() []any
}

// RecordPtr constrains a type parameter to a pointer to T implementing
// [Record], so generic code can allocate a T and use it as a Record.
type RecordPtr[T any] interface {
	*T
	Record
}
