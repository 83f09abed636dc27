package models

import "time"

// Provisioning targets recorded in HistoryEntry.TargetKind.
const (
	TargetApplication = "application"
	TargetDevice      = "device"
)

// HistoryEntry is one row of the local provisioning history: a record of a
// configuration that was generated, what it was generated for, and when.
type HistoryEntry struct {
	// ID is the local database identifier.
	ID int64 `json:"id"`

	// TargetKind is TargetApplication or TargetDevice.
	TargetKind string `json:"target_kind"`

	// Target is the application name or device uuid the configuration was
	// generated for.
	Target string `json:"target"`

	// Payload is the generated configuration record serialized as JSON.
	Payload []byte `json:"payload"`

	// CreatedAt is the time the configuration was generated.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the HistoryEntry model.
func (e HistoryEntry) TableName() string {
	return "provision_history"
}
