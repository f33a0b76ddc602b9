// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/course-hub/internal/config"
	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/service"
)

// Handler serves the course API. All business decisions are delegated to
// services; Handler only decodes requests and shapes responses.
type Handler struct {
	services *service.Services

	// enforceAdmin puts addCourse and course deletion behind the admin check.
	enforceAdmin bool

	// allowedOrigins is passed to the CORS middleware. Empty means any origin.
	allowedOrigins []string

	// requestTimeout bounds request handling when positive.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, serverCfg config.Server, appCfg config.App, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("enforce_admin", appCfg.EnforceAdmin).
		Strs("allowed_origins", serverCfg.AllowedOrigins).
		Msg("http handler created")

	return &Handler{
		services:       services,
		enforceAdmin:   appCfg.EnforceAdmin,
		allowedOrigins: serverCfg.AllowedOrigins,
		requestTimeout: serverCfg.RequestTimeout,
		logger:         logger,
	}
}
