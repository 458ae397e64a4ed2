package http

import (
	"github.com/MKhiriev/fit-journal/internal/config"
	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/internal/service"
)

// Handler owns the HTTP pipeline. The environment mode and the CORS policy
// are fixed at construction; nothing in this package reads them from
// process-wide state.
type Handler struct {
	services *service.Services

	mode   config.Mode
	cors   config.CORS
	server config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Str("mode", cfg.App.Env.String()).Msg("http handler created")
	return &Handler{
		services: services,
		mode:     cfg.App.Env,
		cors:     cfg.CORS,
		server:   cfg.Server,
		logger:   logger,
	}
}
