// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// Stage names, in pipeline order.
const (
	StageRealIP          = "real_ip"
	StageTraceID         = "trace_id"
	StageAccessLog       = "access_log"
	StageRecover         = "recover"
	StageGzip            = "gzip"
	StageRateLimit       = "rate_limit"
	StageCORS            = "cors"
	StageSecurityHeaders = "security_headers"
	StageStatic          = "static"
	StageJSONBody        = "json_body"
)

// Stage is one named middleware of the request pipeline.
type Stage struct {
	Name       string
	Middleware func(http.Handler) http.Handler
}

// Pipeline returns the stages every request passes through before routing,
// outermost first. The real IP stage is present only when proxy headers are
// trusted, the rate limit stage only when a rate is configured.
func (h *Handler) Pipeline() []Stage {
	var stages []Stage
	if h.server.TrustProxy {
		stages = append(stages, Stage{Name: StageRealIP, Middleware: middleware.RealIP})
	}

	stages = append(stages,
		Stage{Name: StageTraceID, Middleware: h.withTraceID},
		Stage{Name: StageAccessLog, Middleware: h.withLogging},
		Stage{Name: StageRecover, Middleware: h.withRecover},
		Stage{Name: StageGzip, Middleware: h.withGZip},
	)

	if h.server.RateLimit > 0 {
		limiter := newIPRateLimiter(h.server.RateLimit, h.server.RateBurst)
		stages = append(stages, Stage{Name: StageRateLimit, Middleware: limiter.middleware})
	}

	return append(stages,
		Stage{Name: StageCORS, Middleware: h.withCORS()},
		Stage{Name: StageSecurityHeaders, Middleware: withSecurityHeaders},
		Stage{Name: StageStatic, Middleware: h.withStatic()},
		Stage{Name: StageJSONBody, Middleware: h.withJSONBody},
	)
}

// StageNames lists the names of stages in order.
func StageNames(stages []Stage) []string {
	names := make([]string, 0, len(stages))
	for _, s := range stages {
		names = append(names, s.Name)
	}
	return names
}
