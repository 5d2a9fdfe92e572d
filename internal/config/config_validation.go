// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged [StructuredConfig] is internally
// consistent. Consumer-specific requirements are checked by the config views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.PushWorkers < 0 {
		return fmt.Errorf("%w: push workers must not be negative", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RetryCount < 0 {
		return fmt.Errorf("%w: retry count must not be negative", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.Format != FormatJSON && cfg.Adapter.Format != FormatXML {
		return fmt.Errorf("%w: unsupported format %q", ErrInvalidAdapterConfigs, cfg.Adapter.Format)
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Adapter.AccessToken == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTP.Address == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
