// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package netfiles renders the network configuration files embedded in the
// device configuration record under the `files` key.
//
// The file names are logical paths understood by the device agent; the
// content is opaque to the rest of the system and is generated in the
// connman settings format the agent's OS image consumes.
package netfiles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/device-provision/models"
)

// Logical file names emitted by Files. Fixed contract with the device agent.
const (
	SettingsFile      = "network/settings"
	NetworkConfigFile = "network/network.config"
)

// ErrUnknownNetwork is returned when params.Network is neither empty,
// "ethernet", nor "wifi".
var ErrUnknownNetwork = errors.New("unknown network mode")

// Files renders the two network files for the given parameters.
// An empty params.Network is treated as ethernet.
func Files(params models.NetworkParams) (map[string]any, error) {
	if err := validateNetwork(params.Network); err != nil {
		return nil, err
	}

	return map[string]any{
		SettingsFile:      settingsContent(),
		NetworkConfigFile: networkConfigContent(params),
	}, nil
}

func validateNetwork(network string) error {
	switch network {
	case "", models.NetworkEthernet, models.NetworkWifi:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownNetwork, network)
	}
}

func settingsContent() string {
	var b strings.Builder
	b.WriteString("[global]\n")
	b.WriteString("OfflineMode=false\n")
	b.WriteString("TimeUpdates=manual\n")
	b.WriteString("\n")
	b.WriteString("[WiFi]\n")
	b.WriteString("Enable=true\n")
	b.WriteString("Tethering=false\n")
	b.WriteString("\n")
	b.WriteString("[Wired]\n")
	b.WriteString("Enable=true\n")
	b.WriteString("Tethering=false\n")
	return b.String()
}

func networkConfigContent(params models.NetworkParams) string {
	var b strings.Builder

	if params.Network == models.NetworkWifi {
		b.WriteString("[service_home_wifi]\n")
		b.WriteString("Type = wifi\n")
		b.WriteString("Name = " + params.WifiSSID + "\n")
		b.WriteString("Passphrase = " + params.WifiKey + "\n")
		b.WriteString("Nameservers = 8.8.8.8,8.8.4.4\n")
		return b.String()
	}

	b.WriteString("[service_home_ethernet]\n")
	b.WriteString("Type = ethernet\n")
	b.WriteString("Nameservers = 8.8.8.8,8.8.4.4\n")
	return b.String()
}
