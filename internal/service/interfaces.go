// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the provisioning orchestration layer.
//
// It resolves application, user, endpoint, and service-key data from the
// remote management API, joins the independent lookups concurrently, and
// delegates record construction and validation to the deviceconfig core.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/device-provision/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/provision_service_mock.go -package=mock

// ProvisionService resolves provisioning inputs and produces validated
// device configuration records.
type ProvisionService interface {
	// GetByApplication generates a configuration record for the named
	// application using the current user session. Fails with
	// ErrNotAuthenticated when no session user can be resolved. All remote
	// lookups are fail-fast: any failure aborts the whole resolution with
	// no partial record.
	GetByApplication(ctx context.Context, appName string, params models.NetworkParams) (models.DeviceConfig, error)

	// GetByDevice generates a configuration record for the device with the
	// given uuid: it resolves the device's owning application, delegates to
	// GetByApplication, stamps registered_at (Unix seconds), deviceId, and
	// uuid onto the record, and re-validates it.
	GetByDevice(ctx context.Context, uuid string, params models.NetworkParams) (models.DeviceConfig, error)
}

// HistoryService exposes the local provisioning history.
type HistoryService interface {
	// List returns the most recent history entries, newest first.
	List(ctx context.Context, limit int) ([]models.HistoryEntry, error)
}

// HistoryJob prunes aged provisioning-history entries in the background.
// Run satisfies the workers.Worker contract.
type HistoryJob interface {
	// Run launches the background pruning loop. It stops any previously
	// running loop first and returns immediately.
	Run(ctx context.Context)

	// Stop cancels the loop and blocks until it has exited. Safe to call
	// when the job is not running.
	Stop()
}

// RetentionPolicy bounds the background history pruning loop.
type RetentionPolicy struct {
	// Interval is how often the prune pass runs.
	Interval time.Duration

	// Retention is how long entries are kept before pruning.
	Retention time.Duration
}
