// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/course-hub/internal/config"
	"github.com/MKhiriev/course-hub/internal/handler"
	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/server"
	"github.com/MKhiriev/course-hub/internal/service"
	"github.com/MKhiriev/course-hub/internal/store"
	"github.com/MKhiriev/course-hub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const storageTimeout = 30 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("course-hub-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("driver", cfg.Storage.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Dur("token_duration", cfg.App.TokenDuration).
		Bool("enforce_admin", cfg.App.EnforceAdmin).
		Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), storageTimeout)
	defer closeCancel()
	if err = storages.Close(closeCtx); err != nil {
		log.Err(err).Msg("error closing storages")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
