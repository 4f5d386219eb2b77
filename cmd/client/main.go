package main

import (
	"fmt"

	"github.com/ndurmanov/medirates/internal/adapter"
	"github.com/ndurmanov/medirates/internal/client"
	"github.com/ndurmanov/medirates/internal/config"
	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/internal/service"
	"github.com/ndurmanov/medirates/internal/store"
	"github.com/ndurmanov/medirates/internal/tui"
	"github.com/ndurmanov/medirates/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("medirates-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	gateway, err := adapter.NewHTTPRemoteGateway(cfg.API, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote gateway")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	watcher := workers.NewConnectivityWatcher(
		workers.NewDialProbe(cfg.Workers.ProbeAddress),
		cfg.Workers.ProbeInterval,
		log,
	)

	services := service.NewClientServices(storages, gateway, watcher, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, watcher, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
