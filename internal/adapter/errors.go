package adapter

import "errors"

var (
	// ErrTransitRequest is returned when a request to the transit engine
	// cannot be sent or no response arrives.
	ErrTransitRequest = errors.New("transit request failed")

	// ErrTransitResponse is returned when the transit engine answers with a
	// non-2xx status.
	ErrTransitResponse = errors.New("transit engine rejected request")

	// ErrDecodingResponse is returned when a 2xx body cannot be decoded.
	ErrDecodingResponse = errors.New("failed to decode transit response")

	// ErrInvalidAddress is returned by [NewTransitAdapter] for an empty or
	// malformed engine address.
	ErrInvalidAddress = errors.New("invalid transit address")
)
