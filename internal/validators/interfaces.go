// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks users and journal records before they reach
// storage.
//
// [UserValidator] covers registration and login input. [JournalValidator]
// covers exercises, body parts, muscle groups, meals and body compositions.
// The services wrap every failure in their validation error, which the HTTP
// layer answers with 400.
package validators

import "context"

// Validator checks obj. When fields are given, only the named checks run,
// for example [FieldCredentials] during login or [FieldDate] for a meal.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
