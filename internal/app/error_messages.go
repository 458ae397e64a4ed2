// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// fit-journal HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgHelloWorld is the body of GET /.
	MsgHelloWorld = "Hello, world!"

	// MsgServerError is the only message production clients see for 5xx
	// responses.
	MsgServerError = "server error"

	// MsgNotFound is returned when no route or static file matches.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed is returned when the path exists but does not
	// accept the request method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgInvalidJSONBody is returned by the body stage for malformed JSON.
	MsgInvalidJSONBody = "invalid JSON body"

	// MsgRequestEntityTooLarge is returned when a JSON body exceeds the
	// configured limit.
	MsgRequestEntityTooLarge = "request entity too large"

	// MsgInvalidGzipBody is returned when a request declares gzip encoding
	// but the body cannot be decompressed.
	MsgInvalidGzipBody = "invalid gzip body"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgMissingAuthorization is returned by the authentication gate when
	// the request carries no Authorization header.
	MsgMissingAuthorization = "missing authorization header"

	// MsgInvalidAuthorization is returned when the Authorization header is
	// not of the form "Bearer <token>".
	MsgInvalidAuthorization = "invalid authorization header"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"
)
