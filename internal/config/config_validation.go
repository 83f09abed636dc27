// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "net/url"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.API.BaseURL != "" {
		parsed, err := url.Parse(cfg.API.BaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return ErrInvalidAPIConfigs
		}
	}

	if cfg.Workers.PruneInterval < 0 || cfg.Workers.Retention < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
