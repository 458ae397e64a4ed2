package handler

import (
	"github.com/MKhiriev/fit-journal/internal/config"
	"github.com/MKhiriev/fit-journal/internal/handler/http"
	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}
	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
