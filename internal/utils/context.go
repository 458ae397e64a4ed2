// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the HTTP layer and the
// services: typed context keys, JSON response writing, JWT handling and
// trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so values stored by this
// package never collide with string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authentication gate stores the
// caller's user id (int64).
var UserIDCtxKey = contextKey("userID")

// JSONBodyCtxKey is the key under which the JSON body stage stores the raw,
// already validated request body ([]byte).
var JSONBodyCtxKey = contextKey("jsonBody")

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithJSONBody returns a copy of ctx carrying the parsed request body.
func WithJSONBody(ctx context.Context, body []byte) context.Context {
	return context.WithValue(ctx, JSONBodyCtxKey, body)
}

// JSONBodyFromContext returns the body stored by WithJSONBody.
func JSONBodyFromContext(ctx context.Context) ([]byte, bool) {
	body, ok := ctx.Value(JSONBodyCtxKey).([]byte)
	return body, ok
}
