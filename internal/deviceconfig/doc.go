// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package deviceconfig generates and validates the flat device configuration
// record (config.json) consumed by the device agent.
//
// Core concepts:
//   - Builder: projects application, user, endpoint, and service-key inputs
//     into the canonical record and validates it before returning.
//   - Schema: declarative description of every allowed record key, its
//     required/optional status, and its expected type.
//
// The builder never mutates caller-owned inputs and keeps no shared state;
// both the schema and the network-files collaborator are injected through
// [NewBuilder], so the core is testable without process-wide setup.
package deviceconfig
