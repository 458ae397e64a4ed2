package http

import (
	"slices"
	"testing"

	"github.com/MKhiriev/fit-journal/internal/config"
	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestPipeline_Order(t *testing.T) {
	h := newTestHandler(config.Test)

	assert.Equal(t, []string{
		StageTraceID,
		StageAccessLog,
		StageRecover,
		StageGzip,
		StageCORS,
		StageSecurityHeaders,
		StageStatic,
		StageJSONBody,
	}, StageNames(h.Pipeline()))
}

func TestPipeline_RateLimitWhenConfigured(t *testing.T) {
	cfg := testConfig(config.Test)
	cfg.Server.RateLimit = 5
	cfg.Server.RateBurst = 10
	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	names := StageNames(h.Pipeline())

	assert.Equal(t, []string{
		StageTraceID,
		StageAccessLog,
		StageRecover,
		StageGzip,
		StageRateLimit,
		StageCORS,
		StageSecurityHeaders,
		StageStatic,
		StageJSONBody,
	}, names)
}

func TestPipeline_RealIPFirstWhenProxyTrusted(t *testing.T) {
	cfg := testConfig(config.Test)
	cfg.Server.TrustProxy = true
	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	names := StageNames(h.Pipeline())

	assert.Equal(t, StageRealIP, names[0])
	assert.NotContains(t, StageNames(newTestHandler(config.Test).Pipeline()), StageRealIP)
}

func TestPipeline_CORSPrecedesBodyParsing(t *testing.T) {
	names := StageNames(newTestHandler(config.Production).Pipeline())

	assert.Less(t, slices.Index(names, StageCORS), slices.Index(names, StageJSONBody))
	assert.Less(t, slices.Index(names, StageSecurityHeaders), slices.Index(names, StageStatic))
	assert.Less(t, slices.Index(names, StageRecover), slices.Index(names, StageCORS))
}

func TestPipeline_EveryStageHasMiddleware(t *testing.T) {
	for _, stage := range newTestHandler(config.Test).Pipeline() {
		assert.NotEmpty(t, stage.Name)
		assert.NotNil(t, stage.Middleware, stage.Name)
	}
}
