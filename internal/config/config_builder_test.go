// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build merges the accumulated sources with earlier sources taking
// precedence for any field they set.
func TestConfigBuilder_Build_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			API: API{BaseURL: "https://api.resin.io"},
		},
		&StructuredConfig{
			API:    API{BaseURL: "https://ignored.example", Token: "flag-token"},
			Server: Server{HTTPAddress: "localhost:8080"},
		},
		&StructuredConfig{
			Server:  Server{HTTPAddress: "ignored:9090", RequestTimeout: 30 * time.Second},
			Storage: Storage{HistoryDBPath: "history.db"},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "https://api.resin.io", cfg.API.BaseURL)
	assert.Equal(t, "flag-token", cfg.API.Token)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "history.db", cfg.Storage.HistoryDBPath)
}

func TestConfigBuilder_Build_EmptySources(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// An accumulated source error surfaces from build, not from the chained
// with* calls.
func TestConfigBuilder_Build_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("bad source")

	cfg, err := b.build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad source")
	assert.Nil(t, cfg)
}

func TestConfigBuilder_Build_ValidatesResult(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		API: API{BaseURL: "not-an-absolute-url"},
	})

	_, err := b.build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAPIConfigs)
}

func TestConfigBuilder_WithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestConfigBuilder_WithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()

	require.Error(t, b.err)
}
