package models

// RemoteConfig is the environment configuration document served by the
// management API's GET /config operation. It bundles the service endpoints
// and third-party service keys a newly provisioned device needs.
type RemoteConfig struct {
	// Endpoints are the service addresses for this environment.
	Endpoints Endpoints `json:"endpoints"`

	// PubNub holds the environment's pub/sub messaging keys.
	PubNub PubNubKeys `json:"pubnub"`

	// Mixpanel holds the environment's analytics token.
	Mixpanel MixpanelKeys `json:"mixpanel"`
}
