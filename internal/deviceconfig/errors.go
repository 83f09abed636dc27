package deviceconfig

import "errors"

var (
	// ErrSchemaViolation indicates that a record field is missing, has the
	// wrong type, or breaks a schema constraint. The wrapped message names
	// the offending property and the reason.
	ErrSchemaViolation = errors.New("invalid device configuration")

	// ErrUnknownField indicates that the record carries a top-level key the
	// schema does not declare. The wrapped message names the key.
	ErrUnknownField = errors.New("unrecognized configuration field")
)
