// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Wire formats accepted by [ClientAdapter.Format].
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// Defaults applied by [GetClientConfig] to optional adapter settings.
const (
	DefaultPushWorkers = 1
	DefaultRetryCount  = 2
)

// ClientAdapter holds settings used by the remote table synchronizer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the remote table service.
	HTTPAddress string
	// RequestTimeout bounds every single outbound HTTP call.
	RequestTimeout time.Duration
	// AccessToken is the bearer credential sent with every call.
	AccessToken string
	// TokenInfoURL is the optional identity provider check endpoint.
	TokenInfoURL string
	// Format is the wire format, [FormatJSON] or [FormatXML].
	Format string
	// PushWorkers bounds the number of rows pushed in parallel.
	PushWorkers int
	// RetryCount is the number of transport retries per call.
	RetryCount int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often all local tables are synchronized.
	SyncInterval time.Duration
}

// ClientConfig is the top-level sync agent configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains remote service address, credential and transport settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// LogPath is the agent log file.
	LogPath string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the sync agent, fills the optional adapter defaults and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			AccessToken:    cfg.App.AccessToken,
			TokenInfoURL:   cfg.App.TokenInfoURL,
			Format:         cfg.Adapter.Format,
			PushWorkers:    cfg.Adapter.PushWorkers,
			RetryCount:     cfg.Adapter.RetryCount,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		LogPath: cfg.App.LogPath,
	}

	if clientCfg.Adapter.Format == "" {
		clientCfg.Adapter.Format = FormatJSON
	}
	if clientCfg.Adapter.PushWorkers == 0 {
		clientCfg.Adapter.PushWorkers = DefaultPushWorkers
	}
	if clientCfg.Adapter.RetryCount == 0 {
		clientCfg.Adapter.RetryCount = DefaultRetryCount
	}

	return clientCfg
}
