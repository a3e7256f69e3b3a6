package service

import (
	"errors"

	"github.com/MKhiriev/go-deliveries/internal/app"
)

var (
	// ErrInvalidDataProvided wraps every validation failure. The HTTP layer
	// answers it with 400.
	ErrInvalidDataProvided = errors.New(app.MsgInvalidDataProvided)
)
