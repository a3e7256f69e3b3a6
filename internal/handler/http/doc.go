// Package http implements the HTTP transport layer of the deliveries service.
//
// It wires the chi routes for the record store, the crypto endpoints, the
// websocket notice relay and the health probe. Request tracing, access
// logging and panic recovery are applied here before requests reach the
// service layer. Every failure leaves this package as a plain-text body in
// the form "Failed to process request: Kind(message)".
package http
