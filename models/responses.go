// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AuthToken string `json:"authToken"`
}

// ErrorMessage is the inner object of every client-facing error body.
type ErrorMessage struct {
	Message string `json:"message"`
}

// ErrorResponse is the body written for client errors and for server
// errors in production mode: {"error":{"message":"..."}}.
type ErrorResponse struct {
	Error ErrorMessage `json:"error"`
}

// ErrorDetail describes a server error in non-production modes.
type ErrorDetail struct {
	// Type is the dynamic Go type of the outermost error.
	Type string `json:"type"`

	// Chain lists the messages of the error and every error it wraps.
	Chain []string `json:"chain,omitempty"`

	// Stack is set when the error originates from a recovered panic.
	Stack string `json:"stack,omitempty"`
}

// DebugErrorResponse is the body written for server errors outside
// production: {"message":"...","error":{...}}.
type DebugErrorResponse struct {
	Message string      `json:"message"`
	Error   ErrorDetail `json:"error"`
}
