// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"app": {"version": "1.2.3"},
		"api": {"url": "https://api.resin.io", "token": "jwt", "request_timeout": "30s"},
		"server": {"http_address": "localhost:8080", "request_timeout": "1m"},
		"storage": {"history_db": "provision.db"},
		"workers": {"prune_interval": "24h", "retention": "2160h"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "https://api.resin.io", cfg.API.BaseURL)
	assert.Equal(t, "jwt", cfg.API.Token)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "provision.db", cfg.Storage.HistoryDBPath)
	assert.Equal(t, 24*time.Hour, cfg.Workers.PruneInterval)
	assert.Equal(t, 2160*time.Hour, cfg.Workers.Retention)
}

// The file-path field never survives the JSON source itself, so a config
// file cannot chain-load another config file.
func TestParseJSON_DoesNotCarryFilePath(t *testing.T) {
	path := writeConfigFile(t, `{"app": {"version": "1.0.0"}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	cfg, err := parseJSON("/does/not/exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{broken`)

	cfg, err := parseJSON(path)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

// ── Duration ────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "duration string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "seconds string", input: `"45s"`, want: 45 * time.Second},
		{name: "raw nanoseconds", input: `1000000000`, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_UnmarshalJSON_BadString(t *testing.T) {
	var d Duration
	err := json.Unmarshal([]byte(`"not-a-duration"`), &d)

	require.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Minute)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1h30m0s"`, string(data))

	var back Duration
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}
