// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the handlers themselves, before the service layer
// is involved. Callers can match against them with [errors.Is].
var (
	// ErrBadRequest is wrapped around request decoding failures: a missing
	// or mistyped JSON body, or a malformed path parameter.
	ErrBadRequest = errors.New("bad request")

	// ErrMissingBody is returned when a handler expects a JSON body and the
	// body stage did not store one.
	ErrMissingBody = errors.New("request body must be a JSON document")

	// ErrInvalidID is returned for path ids that are not positive integers.
	ErrInvalidID = errors.New("id must be a positive integer")

	// ErrNoUserID is returned when a protected handler runs without the
	// user id the authentication gate stores.
	ErrNoUserID = errors.New("no user ID in request context")
)
