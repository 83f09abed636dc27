package models

// BuildOptions aggregates every input the configuration builder projects
// into the flat device configuration record. All sub-objects are required
// except VPNPort, which is defaulted by the builder when zero.
//
// BuildOptions is always passed by value: the builder applies its defaults
// to a local copy and never mutates caller-owned data.
type BuildOptions struct {
	// Application describes the application the device will run.
	Application Application `json:"application"`

	// User identifies the provisioning account.
	User User `json:"user"`

	// PubNub holds the pub/sub messaging credentials.
	PubNub PubNubKeys `json:"pubnub"`

	// Mixpanel holds the analytics credentials.
	Mixpanel MixpanelKeys `json:"mixpanel"`

	// APIKey is the application-scoped provisioning key the device uses to
	// authenticate against the management API.
	APIKey string `json:"apiKey"`

	// VPNPort is the VPN gateway port. Defaulted to 1723 when zero.
	VPNPort int64 `json:"vpnPort,omitempty"`

	// Endpoints are the service addresses the device will contact.
	Endpoints Endpoints `json:"endpoints"`
}
