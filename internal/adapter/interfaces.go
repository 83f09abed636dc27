// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client for the remote
// management API.
//
// The primary abstraction is [ManagementAPI], which decouples the
// provisioning service from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewManagementAPI]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/device-provision/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/management_api_mock.go -package=mock

// ManagementAPI defines the read-only operations the provisioning service
// needs from the remote management API. Implementations are responsible for
// serialisation, session-token management, and mapping transport-level
// errors to the sentinel values defined in this package.
type ManagementAPI interface {
	// SetToken stores the session token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the session token currently stored in the adapter, or
	// an empty string if none has been set.
	Token() string

	// GetApplication fetches the application registered under the given
	// name. Returns ErrNotFound (wrapped) when no such application exists.
	GetApplication(ctx context.Context, name string) (models.Application, error)

	// GetAPIKey issues (or fetches) the provisioning API key scoped to the
	// named application.
	GetAPIKey(ctx context.Context, appName string) (string, error)

	// GetRemoteConfig fetches the environment configuration document:
	// service endpoints, pub/sub keys, and the analytics token.
	GetRemoteConfig(ctx context.Context) (models.RemoteConfig, error)

	// GetDevice fetches the device registered under the given uuid,
	// including its owning application.
	GetDevice(ctx context.Context, uuid string) (models.Device, error)

	// UserID resolves the numeric identifier of the session user.
	// Returns ErrNotLoggedIn (wrapped) when no session exists.
	UserID(ctx context.Context) (int64, error)

	// Username resolves the login of the session user.
	// Returns ErrNotLoggedIn (wrapped) when no session exists.
	Username(ctx context.Context) (string, error)
}
