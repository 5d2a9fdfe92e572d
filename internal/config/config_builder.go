// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder collects partial configs from several sources and merges
// them in the order they were added.
type configBuilder struct {
	args    []string
	environ map[string]string

	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		args:    os.Args[1:],
		configs: make([]*StructuredConfig, 0, 3),
	}
}

// withArgs replaces the command line read by withFlags.
func (b *configBuilder) withArgs(args []string) *configBuilder {
	b.args = args
	return b
}

// withEnviron replaces the environment read by withEnv.
func (b *configBuilder) withEnviron(environ map[string]string) *configBuilder {
	b.environ = environ
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add("env", func() (*StructuredConfig, error) { return parseEnv(b.environ) })
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add("flags", func() (*StructuredConfig, error) { return parseFlags(b.args) })
}

// withJSON reads the file named by the last source that set a JSON path.
// It is a no-op when no source did.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	return b.add("json "+jsonPath, func() (*StructuredConfig, error) { return parseJSON(jsonPath) })
}

func (b *configBuilder) add(source string, parse func() (*StructuredConfig, error)) *configBuilder {
	cfg, err := parse()
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}
