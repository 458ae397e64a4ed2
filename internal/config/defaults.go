// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/http"
	"time"
)

// DefaultAllowedOrigin is the web client allowed by the default CORS policy.
const DefaultAllowedOrigin = "https://fit-journal-client-yefenny.vercel.app"

// Defaults returns the values used for every field no source provided.
func Defaults() *StructuredConfig {
	allowCredentials := true

	return &StructuredConfig{
		App: App{
			Env:              Development,
			TokenIssuer:      "fit-journal",
			TokenDuration:    24 * time.Hour,
			PasswordHashCost: 12,
		},
		Server: Server{
			HTTPAddress:       "localhost:8000",
			RequestTimeout:    30 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			StaticDir:         "public",
		},
		CORS: CORS{
			AllowedOrigin: DefaultAllowedOrigin,
			AllowedMethods: []string{
				http.MethodGet,
				http.MethodPost,
				http.MethodOptions,
				http.MethodPut,
				http.MethodPatch,
				http.MethodDelete,
			},
			AllowedHeaders:   []string{"X-Requested-With", "content-type", "Authorization"},
			AllowCredentials: &allowCredentials,
		},
	}
}
