package models

// Application represents an application registered on the management API.
// Devices are provisioned against exactly one application, whose name and
// device type are projected into the device configuration record.
type Application struct {
	// ID is the numeric application identifier assigned by the management API.
	ID int64 `json:"id"`

	// AppName is the unique, user-visible application name
	// (e.g. "HelloWorldApp").
	AppName string `json:"app_name"`

	// DeviceType identifies the hardware family the application targets
	// (e.g. "raspberry-pi").
	DeviceType string `json:"device_type"`
}
