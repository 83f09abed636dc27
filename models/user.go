package models

// User represents the account on whose behalf a device is provisioned.
// Both fields come from the session user resolved on the management API.
type User struct {
	// ID is the numeric user identifier.
	ID int64 `json:"id"`

	// Username is the unique account login.
	Username string `json:"username"`
}
