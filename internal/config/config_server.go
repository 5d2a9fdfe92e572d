// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// DefaultServerRequestTimeout is used when no server request timeout is set.
const DefaultServerRequestTimeout = 30 * time.Second

// ServerHTTP holds the listen settings of the reference table server.
type ServerHTTP struct {
	// Address is the "host:port" the server listens on.
	Address string
	// RequestTimeout bounds the handling of a single inbound request.
	RequestTimeout time.Duration
}

// ServerConfig is the reference table server configuration.
type ServerConfig struct {
	// HTTP contains listen settings.
	HTTP ServerHTTP
	// AccessToken, when set, is the only bearer token the server accepts.
	AccessToken string
}

// GetServerConfig builds and validates the reference server config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		HTTP: ServerHTTP{
			Address:        cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		AccessToken: cfg.App.AccessToken,
	}

	if serverCfg.HTTP.RequestTimeout == 0 {
		serverCfg.HTTP.RequestTimeout = DefaultServerRequestTimeout
	}

	return serverCfg
}
