package models

// Network connection modes accepted in NetworkParams.Network.
const (
	NetworkEthernet = "ethernet"
	NetworkWifi     = "wifi"
)

// NetworkParams carries the optional, device-side network choices supplied
// by the caller of generate. The zero value means "ethernet, defaults".
//
// WifiSSID and WifiKey are meaningful only when Network is NetworkWifi;
// for ethernet (or when Network is empty) they never reach the output record.
type NetworkParams struct {
	// Network selects the connection mode: "ethernet" or "wifi".
	Network string `json:"network,omitempty"`

	// WifiSSID is the wireless network name. Used only when Network is "wifi".
	WifiSSID string `json:"wifiSsid,omitempty"`

	// WifiKey is the wireless passphrase. Used only when Network is "wifi".
	WifiKey string `json:"wifiKey,omitempty"`

	// AppUpdatePollInterval is the agent's update poll interval in
	// milliseconds. A zero value is treated as "not supplied" and the
	// builder substitutes its default. This mirrors the historical
	// truthiness-based defaulting and is a documented policy, not a bug.
	AppUpdatePollInterval int64 `json:"appUpdatePollInterval,omitempty"`
}
