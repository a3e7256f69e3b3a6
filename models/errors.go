package models

import "errors"

// ErrUnknownDeliveryStatus is returned when a status string is not one of
// [DeliveryStatuses].
var ErrUnknownDeliveryStatus = errors.New("unknown delivery status")
