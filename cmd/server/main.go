package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deliveries/internal/adapter"
	"github.com/MKhiriev/go-deliveries/internal/config"
	"github.com/MKhiriev/go-deliveries/internal/crypto"
	"github.com/MKhiriev/go-deliveries/internal/handler"
	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/internal/messaging"
	"github.com/MKhiriev/go-deliveries/internal/server"
	"github.com/MKhiriev/go-deliveries/internal/service"
	"github.com/MKhiriev/go-deliveries/internal/store"
	"github.com/MKhiriev/go-deliveries/internal/workers"
	"github.com/MKhiriev/go-deliveries/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-deliveries")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", redacted(*cfg)).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	transit, err := adapter.NewTransitAdapter(cfg.Vault, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating transit adapter")
	}

	// activation runs in the background; requests are served meanwhile
	gateway := crypto.NewTransitGateway(transit, cfg.Vault, log)

	broker := messaging.NewBroker(cfg.Messaging, log)
	defer broker.Close()

	notifier := workers.NewNotifierWorker(gateway, broker, cfg.Messaging, cfg.Workers, log)
	backgroundWorkers := workers.NewWorkers(notifier)
	backgroundWorkers.Run(ctx)

	services := service.NewServices(storages, gateway, notifier, broker, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	cancel()
	backgroundWorkers.Wait()
	log.Info().Msg("background workers stopped")
}

func redacted(cfg config.StructuredConfig) config.StructuredConfig {
	if cfg.Vault.Token != "" {
		cfg.Vault.Token = "***"
	}
	if cfg.Messaging.RedisPassword != "" {
		cfg.Messaging.RedisPassword = "***"
	}
	return cfg
}

func printBuildInfo(info models.AppBuildInfo) {
	info = info.OrPlaceholder("N/A")

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
