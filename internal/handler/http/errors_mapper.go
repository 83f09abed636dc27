package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/device-provision/internal/adapter"
	"github.com/MKhiriev/device-provision/internal/deviceconfig"
	"github.com/MKhiriev/device-provision/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrNotAuthenticated:  http.StatusUnauthorized,
	service.ErrNoApplicationName: http.StatusBadRequest,
	service.ErrNoDeviceUUID:      http.StatusBadRequest,

	deviceconfig.ErrSchemaViolation: http.StatusUnprocessableEntity,
	deviceconfig.ErrUnknownField:    http.StatusUnprocessableEntity,

	adapter.ErrNotLoggedIn:  http.StatusUnauthorized,
	adapter.ErrUnauthorized: http.StatusUnauthorized,
	adapter.ErrForbidden:    http.StatusForbidden,
	adapter.ErrNotFound:     http.StatusNotFound,
	adapter.ErrBadRequest:   http.StatusBadRequest,
	adapter.ErrBadGateway:   http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
