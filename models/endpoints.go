package models

// Endpoints groups the named service addresses a provisioned device will
// contact. API and Delta are full URLs; VPN and Registry are bare hostnames.
type Endpoints struct {
	// API is the base URL of the management API
	// (e.g. "https://api.resin.io").
	API string `json:"api"`

	// VPN is the hostname of the VPN gateway (e.g. "vpn.resin.io").
	VPN string `json:"vpn"`

	// Registry is the hostname of the container image registry
	// (e.g. "registry.resin.io").
	Registry string `json:"registry"`

	// Delta is the optional URL of the binary delta server. Empty when the
	// environment does not offer delta updates.
	Delta string `json:"delta,omitempty"`
}
