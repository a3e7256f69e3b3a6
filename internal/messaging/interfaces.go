// Package messaging carries delivery notices over redis pub/sub.
//
// Publishing and subscribing are separate interfaces so the notifier worker
// and the websocket relay depend only on the half they use. When no broker
// address is configured [NewBroker] returns a broker that accepts and drops
// every notice and refuses subscriptions.
package messaging

import (
	"context"

	"github.com/MKhiriev/go-deliveries/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/messaging_mock.go -package=mock

// Publisher sends notices to every current subscriber of the channel.
type Publisher interface {
	Publish(ctx context.Context, notice models.DeliveryNotice) error
}

// Subscriber opens independent subscriptions to the channel.
type Subscriber interface {
	// Subscribe returns a live subscription. Notices published before the
	// call returns are not delivered.
	Subscribe(ctx context.Context) (Subscription, error)
}

// Subscription is one subscriber's view of the channel.
type Subscription interface {
	// Notices is closed when the subscription is closed or its context ends.
	Notices() <-chan models.DeliveryNotice

	Close() error
}

// Broker is both halves plus lifecycle.
type Broker interface {
	Publisher
	Subscriber

	Ping(ctx context.Context) error
	Close() error
}
