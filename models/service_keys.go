package models

// PubNubKeys holds the publish/subscribe credentials for the pub/sub
// messaging channel embedded in the device configuration.
type PubNubKeys struct {
	// SubscribeKey authorizes the device to subscribe to its channels.
	SubscribeKey string `json:"subscribe_key"`

	// PublishKey authorizes the device to publish log and state events.
	PublishKey string `json:"publish_key"`
}

// MixpanelKeys holds the analytics credentials embedded in the device
// configuration.
type MixpanelKeys struct {
	// Token is the analytics project token.
	Token string `json:"token"`
}
