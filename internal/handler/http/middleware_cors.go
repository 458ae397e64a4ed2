// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// withCORS builds the single CORS stage from the configured policy.
//
// Every response carries the configured Access-Control-Allow-* values no
// matter which Origin the request came from. rs/cors inspects preflights
// first and adds the Vary headers caches need; the configured values are
// written afterwards so they always win. OPTIONS requests are answered here
// with 200 and never reach the router or the authentication gate.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	policy := cors.New(cors.Options{
		AllowedOrigins:     []string{h.cors.AllowedOrigin},
		AllowedMethods:     h.cors.AllowedMethods,
		AllowedHeaders:     h.cors.AllowedHeaders,
		AllowCredentials:   h.cors.CredentialsAllowed(),
		OptionsPassthrough: true,
		Debug:              !h.mode.IsProduction(),
		Logger:             h.logger,
	})

	origin := h.cors.AllowedOrigin
	methods := strings.Join(h.cors.AllowedMethods, ", ")
	headers := strings.Join(h.cors.AllowedHeaders, ", ")
	credentials := h.cors.CredentialsAllowed()

	return func(next http.Handler) http.Handler {
		return policy.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := w.Header()
			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Access-Control-Allow-Methods", methods)
			header.Set("Access-Control-Allow-Headers", headers)
			if credentials {
				header.Set("Access-Control-Allow-Credentials", "true")
			} else {
				header.Del("Access-Control-Allow-Credentials")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		}))
	}
}
