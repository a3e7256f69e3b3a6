package models

// DeliveryNotice is an encrypted notification about a created delivery,
// published to subscribers of the messaging channel as JSON.
type DeliveryNotice struct {
	// DeliveryID is the key of the delivery the notice refers to.
	DeliveryID string `json:"deliveryId"`

	// Payload is the ciphertext of [Delivery.String].
	Payload CipherText `json:"payload"`
}
