package messaging

import (
	"context"

	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/models"
)

// nopBroker drops published notices and refuses subscriptions.
type nopBroker struct {
	logger *logger.Logger
}

func (b *nopBroker) Publish(ctx context.Context, notice models.DeliveryNotice) error {
	logger.FromContext(ctx).Debug().
		Str("func", "nopBroker.Publish").
		Str("delivery_id", notice.DeliveryID).
		Msg("messaging disabled, notice dropped")
	return nil
}

func (b *nopBroker) Subscribe(context.Context) (Subscription, error) {
	return nil, ErrMessagingDisabled
}

func (b *nopBroker) Ping(context.Context) error {
	return nil
}

func (b *nopBroker) Close() error {
	return nil
}
