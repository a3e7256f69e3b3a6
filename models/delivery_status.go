// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// DeliveryStatus is a closed enumeration of delivery states.
type DeliveryStatus string

const (
	DeliveryStatusCreated    DeliveryStatus = "CREATED"
	DeliveryStatusInProgress DeliveryStatus = "IN_PROGRESS"
	DeliveryStatusDelivered  DeliveryStatus = "DELIVERED"
	DeliveryStatusCancelled  DeliveryStatus = "CANCELLED"
)

// DeliveryStatuses lists every valid status in declaration order.
var DeliveryStatuses = []DeliveryStatus{
	DeliveryStatusCreated,
	DeliveryStatusInProgress,
	DeliveryStatusDelivered,
	DeliveryStatusCancelled,
}

// ParseDeliveryStatus converts s into a [DeliveryStatus].
// Matching is exact (case-sensitive). Unknown values yield
// [ErrUnknownDeliveryStatus].
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	status := DeliveryStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDeliveryStatus, s)
	}

	return status, nil
}

// IsValid reports whether s is one of [DeliveryStatuses].
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusCreated, DeliveryStatusInProgress, DeliveryStatusDelivered, DeliveryStatusCancelled:
		return true
	}
	return false
}

func (s DeliveryStatus) String() string {
	return string(s)
}

// UnmarshalJSON rejects unknown statuses so that request bodies are validated
// at decode time.
func (s *DeliveryStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	parsed, err := ParseDeliveryStatus(raw)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}
