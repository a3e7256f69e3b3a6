package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID        = errors.New("delivery id is required")
	ErrIDTooLong      = errors.New("delivery id is too long")
	ErrFoodTooLong    = errors.New("food is too long")
	ErrAddressTooLong = errors.New("address is too long")
	ErrInvalidStatus  = errors.New("invalid delivery status")
)
