// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-deliveries/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validDelivery() models.Delivery {
	return models.Delivery{ID: "d1", Food: "pizza", Address: "Main St", Status: models.DeliveryStatusCreated}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestDeliveryValidator_Valid(t *testing.T) {
	v := NewDeliveryValidator()
	d := validDelivery()

	assert.NoError(t, v.Validate(context.Background(), d))
	assert.NoError(t, v.Validate(context.Background(), &d))
}

func TestDeliveryValidator_EmptyFoodAndAddressAllowed(t *testing.T) {
	d := validDelivery()
	d.Food, d.Address = "", ""

	assert.NoError(t, NewDeliveryValidator().Validate(context.Background(), d))
}

func TestDeliveryValidator_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Delivery)
		want   error
	}{
		{"empty id", func(d *models.Delivery) { d.ID = "" }, ErrEmptyID},
		{"long id", func(d *models.Delivery) { d.ID = strings.Repeat("x", MaxIDLength+1) }, ErrIDTooLong},
		{"long food", func(d *models.Delivery) { d.Food = strings.Repeat("f", MaxFoodLength+1) }, ErrFoodTooLong},
		{"long address", func(d *models.Delivery) { d.Address = strings.Repeat("a", MaxAddressLength+1) }, ErrAddressTooLong},
		{"unknown status", func(d *models.Delivery) { d.Status = "LOST" }, ErrInvalidStatus},
		{"zero status", func(d *models.Delivery) { d.Status = "" }, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDelivery()
			tt.mutate(&d)
			assert.ErrorIs(t, NewDeliveryValidator().Validate(context.Background(), d), tt.want)
		})
	}
}

func TestDeliveryValidator_IDLengthCountsRunes(t *testing.T) {
	d := validDelivery()
	d.ID = strings.Repeat("ж", MaxIDLength)

	assert.NoError(t, NewDeliveryValidator().Validate(context.Background(), d))
}

func TestDeliveryValidator_FieldScoping(t *testing.T) {
	d := validDelivery()
	d.Status = "LOST"

	v := NewDeliveryValidator()
	assert.NoError(t, v.Validate(context.Background(), d, FieldID))
	assert.ErrorIs(t, v.Validate(context.Background(), d, FieldID, FieldStatus), ErrInvalidStatus)
	assert.ErrorIs(t, v.Validate(context.Background(), d, "weight"), ErrUnknownField)
}

func TestDeliveryValidator_UnsupportedType(t *testing.T) {
	v := NewDeliveryValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "d1"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.Delivery)(nil)), ErrUnsupportedType)
}
