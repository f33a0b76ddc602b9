// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// applyDefaults fills fields that no source has set, first from the legacy
// variables and then from the built-in defaults.
func (cfg *StructuredConfig) applyDefaults() {
	legacy := cfg.Legacy

	if cfg.Server.HTTPAddress == "" {
		port := legacy.Port
		if port == "" {
			port = defaultPort
		}
		cfg.Server.HTTPAddress = ":" + port
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{defaultAllowedOrigin}
	}

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = legacy.TokenSecret
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.Storage.Mongo.URI == "" && legacy.DBHost != "" {
		cfg.Storage.Mongo.URI = legacyMongoURI(legacy)
	}
	if cfg.Storage.Mongo.Database == "" {
		cfg.Storage.Mongo.Database = legacy.DBName
	}

	if cfg.Storage.Driver == "" {
		switch {
		case cfg.Storage.DB.DSN != "":
			cfg.Storage.Driver = DriverPostgres
		case cfg.Storage.Mongo.URI != "":
			cfg.Storage.Driver = DriverMongo
		}
	}
}

// legacyMongoURI assembles the Atlas connection string of the first
// deployment from its DB_* parts.
func legacyMongoURI(legacy Legacy) string {
	u := url.URL{
		Scheme:   "mongodb+srv",
		Host:     legacy.DBHost,
		Path:     "/" + legacy.DBName,
		RawQuery: "retryWrites=true&w=majority",
	}
	if legacy.DBUser != "" {
		u.User = url.UserPassword(legacy.DBUser, legacy.DBPass)
	}
	return u.String()
}

// validate checks that the merged [StructuredConfig] can start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	switch cfg.Storage.Driver {
	case DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: empty postgres DSN", ErrInvalidStorageConfigs)
		}
	case DriverMongo:
		if cfg.Storage.Mongo.URI == "" || cfg.Storage.Mongo.Database == "" {
			return fmt.Errorf("%w: mongo URI and database are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	return nil
}
