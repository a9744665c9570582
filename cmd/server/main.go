package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/avatar-dashboard/internal/adapter"
	"github.com/MKhiriev/avatar-dashboard/internal/config"
	"github.com/MKhiriev/avatar-dashboard/internal/handler"
	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/server"
	"github.com/MKhiriev/avatar-dashboard/internal/service"
	"github.com/MKhiriev/avatar-dashboard/internal/store"
	"github.com/MKhiriev/avatar-dashboard/internal/workers"
	"github.com/MKhiriev/avatar-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("avatar-dashboard")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	adapters, err := newAdapters(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}

	storages, err := newStorages(ctx, cfg.Storage, adapters.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, adapters, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	go workers.NewWorkers(services, cfg.Workers, log).Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func newAdapters(cfg config.Adapter, log *logger.Logger) (service.Adapters, error) {
	backend, err := adapter.NewBackendAdapter(cfg, log)
	if err != nil {
		return service.Adapters{}, err
	}

	gateway, err := adapter.NewCredentialsGateway(cfg, log)
	if err != nil {
		return service.Adapters{}, err
	}

	remover, err := adapter.NewBackgroundRemover(cfg, log)
	if err != nil {
		return service.Adapters{}, err
	}

	return service.Adapters{
		Backend:            backend,
		CredentialsGateway: gateway,
		BackgroundRemover:  remover,
	}, nil
}

// newStorages reads records straight from SQL when a DSN is configured and
// through the backend REST interface otherwise.
func newStorages(ctx context.Context, cfg config.Storage, backend adapter.Backend, log *logger.Logger) (*store.Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("no database DSN, reading records through the backend")
		return adapter.NewBackendStorages(backend, log), nil
	}

	db, err := store.NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(); err != nil {
		return nil, err
	}

	log.Info().Str("dialect", db.Dialect()).Msg("reading records from the database")

	return store.NewDBStorages(db, log), nil
}
