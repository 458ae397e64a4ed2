package http

import (
	"testing"

	"github.com/MKhiriev/fit-journal/internal/config"
	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, testConfig(config.Test), logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServicesAndLogger(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, testConfig(config.Test), log)

	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}

func TestNewHandler_ThreadsModeAndPolicy(t *testing.T) {
	cfg := testConfig(config.Production)
	cfg.CORS.AllowedOrigin = "https://client.example"

	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	assert.Equal(t, config.Production, h.mode)
	assert.Equal(t, "https://client.example", h.cors.AllowedOrigin)
	assert.Equal(t, cfg.Server, h.server)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, testConfig(config.Test), logger.Nop())
	h2 := NewHandler(&service.Services{}, testConfig(config.Production), logger.Nop())

	assert.NotSame(t, h1, h2)
	assert.NotEqual(t, h1.mode, h2.mode)
}
