package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-deliveries/internal/app"
	"github.com/MKhiriev/go-deliveries/internal/service"
	"github.com/MKhiriev/go-deliveries/models"
)

// errorStatusMap lists the errors answered with something other than 500.
// Every other failure, whatever its category, is a 500.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	models.ErrUnknownDeliveryStatus: http.StatusBadRequest,
	ErrInvalidJSON:                  http.StatusBadRequest,
	ErrReadingBody:                  http.StatusBadRequest,
	ErrEmptyBody:                    http.StatusBadRequest,

	app.ErrNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
