// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Delivery is the persisted record managed by the service.
//
// ID is the natural key: it is assigned by the caller on insert and is never
// modified by any update statement afterwards.
type Delivery struct {
	// ID uniquely identifies the delivery.
	ID string `json:"id"`

	// Food is a free-text description of what is being delivered.
	Food string `json:"food"`

	// Address is a free-text destination.
	Address string `json:"address"`

	// Status is the current state of the delivery.
	Status DeliveryStatus `json:"deliveryStatus"`
}

// NewDelivery builds a Delivery from raw string values, parsing status.
// Returns [ErrUnknownDeliveryStatus] if status is not one of the known values.
func NewDelivery(id, food, address, status string) (Delivery, error) {
	parsed, err := ParseDeliveryStatus(status)
	if err != nil {
		return Delivery{}, err
	}

	return Delivery{
		ID:      id,
		Food:    food,
		Address: address,
		Status:  parsed,
	}, nil
}

// String renders the delivery in the form used for notification payloads:
//
//	Delivery{id='d1', food='pizza', address='Main St', deliveryStatus=CREATED}
func (d Delivery) String() string {
	return fmt.Sprintf("Delivery{id='%s', food='%s', address='%s', deliveryStatus=%s}",
		d.ID, d.Food, d.Address, d.Status)
}
