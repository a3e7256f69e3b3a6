package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-deliveries/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the natural key of a delivery.
	FieldID = "id"

	// FieldFood targets the ordered food description.
	FieldFood = "food"

	// FieldAddress targets the destination address.
	FieldAddress = "address"

	// FieldStatus targets the delivery status.
	FieldStatus = "status"
)

// Column widths of the deliveries table, in characters.
const (
	MaxIDLength      = 64
	MaxFoodLength    = 255
	MaxAddressLength = 255
)

// DeliveryValidator implements [Validator] for [models.Delivery]. Both value
// and pointer forms are accepted.
type DeliveryValidator struct {
}

// NewDeliveryValidator constructs a new DeliveryValidator and returns it as
// the Validator interface.
func NewDeliveryValidator() Validator {
	return &DeliveryValidator{}
}

// Validate checks the named fields of a delivery, or all of them when no
// field is named. Returns ErrUnsupportedType for anything but a delivery.
func (v *DeliveryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Delivery:
		return v.validateDelivery(ctx, value, fields...)
	case *models.Delivery:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDelivery(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateDelivery returns the first encountered validation error or nil.
func (v *DeliveryValidator) validateDelivery(_ context.Context, d models.Delivery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldFood, FieldAddress, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if d.ID == "" {
				return ErrEmptyID
			}
			if utf8.RuneCountInString(d.ID) > MaxIDLength {
				return ErrIDTooLong
			}
		case FieldFood:
			if utf8.RuneCountInString(d.Food) > MaxFoodLength {
				return ErrFoodTooLong
			}
		case FieldAddress:
			if utf8.RuneCountInString(d.Address) > MaxAddressLength {
				return ErrAddressTooLong
			}
		case FieldStatus:
			if !d.Status.IsValid() {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
