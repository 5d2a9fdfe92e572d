// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/service"
)

type Handler struct {
	services *service.Services

	// accessToken is the only bearer token accepted. Empty disables auth.
	accessToken    string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", cfg.AccessToken != "").Msg("http handler created")
	return &Handler{
		services:       services,
		accessToken:    cfg.AccessToken,
		requestTimeout: cfg.HTTP.RequestTimeout,
		logger:         logger,
	}
}
