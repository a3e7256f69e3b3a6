// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants and the error
// taxonomy used across the go-deliveries store, crypto gateway and HTTP
// handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. an unknown delivery status).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgFailedToProcessRequest prefixes every internal-error response body:
	// "Failed to process request: <ErrorKind>(<message>)".
	MsgFailedToProcessRequest = "Failed to process request"

	// MsgDeliveryNotFoundFormat is the 404 body of a keyed lookup miss.
	MsgDeliveryNotFoundFormat = "Delivery %s not found"

	// MsgInsertedFormat reports the affected count of an insert.
	MsgInsertedFormat = "Inserted: %d values"

	// MsgUpdatedFormat reports the affected count of a field update.
	MsgUpdatedFormat = "Updated: %d values"

	// MsgDeletedFormat reports the affected count of a delete.
	MsgDeletedFormat = "Deleted: %d values"

	// MsgTransactionalUpdatedFormat reports the result of the transactional update.
	MsgTransactionalUpdatedFormat = "Updated %d records"
)
