package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/fit-journal/internal/config"
	"github.com/MKhiriev/fit-journal/internal/handler"
	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/internal/server"
	"github.com/MKhiriev/fit-journal/internal/service"
	"github.com/MKhiriev/fit-journal/internal/store"
	"github.com/MKhiriev/fit-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log := logger.NewLogger("fit-journal-server", config.Production)
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("fit-journal-server", cfg.App.Env)
	log.Debug().
		Str("mode", cfg.App.Env.String()).
		Str("address", cfg.Server.HTTPAddress).
		Str("static_dir", cfg.Server.StaticDir).
		Str("allowed_origin", cfg.CORS.AllowedOrigin).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		db.Close()
		os.Exit(1)
	}
}
