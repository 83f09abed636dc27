package models

// Device represents a device registered on the management API.
// It carries the identity fields that device-scoped provisioning stamps onto
// an otherwise application-scoped configuration record.
type Device struct {
	// ID is the numeric device identifier assigned at registration time.
	ID int64 `json:"id"`

	// UUID is the globally unique device identifier (32 hex characters).
	UUID string `json:"uuid"`

	// DeviceType identifies the hardware family of the device.
	DeviceType string `json:"device_type"`

	// Application is the owning application. Only AppName is guaranteed to
	// be populated by device-by-uuid lookups.
	Application Application `json:"application"`
}
