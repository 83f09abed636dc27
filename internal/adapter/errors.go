package adapter

import "errors"

var (
	// ErrNotLoggedIn indicates that no user session token is available.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrBadRequest maps HTTP 400 responses.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized maps HTTP 401 responses.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden maps HTTP 403 responses.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound maps HTTP 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrBadGateway maps HTTP 502 responses.
	ErrBadGateway = errors.New("bad gateway")
	// ErrInternalServerError maps HTTP 500 responses.
	ErrInternalServerError = errors.New("internal server error")
)
