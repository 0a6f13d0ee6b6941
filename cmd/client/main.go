// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GifCamp Authors

package main

import (
	"context"
	"fmt"

	"github.com/gifcamp/gifcamp/internal/adapter"
	"github.com/gifcamp/gifcamp/internal/client"
	"github.com/gifcamp/gifcamp/internal/config"
	"github.com/gifcamp/gifcamp/internal/logger"
	"github.com/gifcamp/gifcamp/internal/service"
	"github.com/gifcamp/gifcamp/internal/store"
	"github.com/gifcamp/gifcamp/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("gifcamp", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("gifcamp", cfg.App.Debug)

	backend := adapter.NewHTTPBackendAdapter(cfg.Endpoints, cfg.App, log)

	auth, err := adapter.NewGoogleAuthenticator(context.Background(), cfg.OAuth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create google authenticator")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, backend, log)

	ui, err := tui.New(services, auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
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
