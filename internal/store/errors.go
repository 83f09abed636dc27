package store

import "errors"

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned into
	// the destination model.
	ErrScanningRow = errors.New("error scanning row")

	// ErrHistoryNotSaved is returned when an INSERT completes without error
	// but affects zero rows.
	ErrHistoryNotSaved = errors.New("history entry was not saved")
)
