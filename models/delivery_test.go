package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ParseDeliveryStatus ──────────────────────────────────────────────────────

func TestParseDeliveryStatus_KnownValues(t *testing.T) {
	for _, s := range DeliveryStatuses {
		t.Run(string(s), func(t *testing.T) {
			got, err := ParseDeliveryStatus(string(s))
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
}

func TestParseDeliveryStatus_Unknown(t *testing.T) {
	tests := []string{"", "created", "LOST", " CREATED"}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			_, err := ParseDeliveryStatus(tt)
			assert.ErrorIs(t, err, ErrUnknownDeliveryStatus)
		})
	}
}

// ── NewDelivery ──────────────────────────────────────────────────────────────

func TestNewDelivery_Success(t *testing.T) {
	d, err := NewDelivery("d1", "pizza", "Main St", "CREATED")
	require.NoError(t, err)
	assert.Equal(t, Delivery{ID: "d1", Food: "pizza", Address: "Main St", Status: DeliveryStatusCreated}, d)
}

func TestNewDelivery_InvalidStatus(t *testing.T) {
	_, err := NewDelivery("d1", "pizza", "Main St", "Main St")
	assert.ErrorIs(t, err, ErrUnknownDeliveryStatus)
}

// ── String ───────────────────────────────────────────────────────────────────

func TestDelivery_String(t *testing.T) {
	d := Delivery{ID: "d1", Food: "pizza", Address: "Main St", Status: DeliveryStatusCreated}
	assert.Equal(t, "Delivery{id='d1', food='pizza', address='Main St', deliveryStatus=CREATED}", d.String())
}

// ── JSON ─────────────────────────────────────────────────────────────────────

func TestDelivery_UnmarshalJSON(t *testing.T) {
	var d Delivery
	err := json.Unmarshal([]byte(`{"id":"d1","food":"pizza","address":"Main St","deliveryStatus":"DELIVERED"}`), &d)
	require.NoError(t, err)
	assert.Equal(t, DeliveryStatusDelivered, d.Status)
	assert.Equal(t, "Main St", d.Address)
}

func TestDelivery_UnmarshalJSON_UnknownStatus(t *testing.T) {
	var d Delivery
	err := json.Unmarshal([]byte(`{"id":"d1","deliveryStatus":"LOST"}`), &d)
	assert.ErrorIs(t, err, ErrUnknownDeliveryStatus)
}

func TestDelivery_MarshalJSON_FieldNames(t *testing.T) {
	b, err := json.Marshal(Delivery{ID: "d1", Food: "pizza", Address: "Main St", Status: DeliveryStatusCancelled})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"d1","food":"pizza","address":"Main St","deliveryStatus":"CANCELLED"}`, string(b))
}
