package messaging

import "errors"

var (
	// ErrMessagingDisabled is returned by Subscribe when no broker is configured.
	ErrMessagingDisabled = errors.New("messaging is disabled")

	// ErrPublishing is returned when a notice cannot be published.
	ErrPublishing = errors.New("failed to publish notice")

	// ErrSubscribing is returned when the broker refuses a subscription.
	ErrSubscribing = errors.New("failed to subscribe")

	// ErrEncodingNotice is returned when a notice cannot be marshalled.
	ErrEncodingNotice = errors.New("failed to encode notice")
)
