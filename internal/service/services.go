package service

import (
	"github.com/MKhiriev/go-deliveries/internal/config"
	"github.com/MKhiriev/go-deliveries/internal/crypto"
	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/internal/messaging"
	"github.com/MKhiriev/go-deliveries/internal/store"
	"github.com/MKhiriev/go-deliveries/internal/workers"
)

type Services struct {
	DeliveryService DeliveryService
	CryptoService   CryptoService
	HealthService   HealthService
	NoticeService   NoticeService
}

// NewServices wires the services. gateway is used both for encryption and
// for its activation state.
func NewServices(storages *store.Storages, gateway *crypto.TransitGateway, notifier workers.Notifier, subscriber messaging.Subscriber, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	deliveryService := NewDeliveryValidationService().
		Wrap(NewDeliveryService(storages.DeliveryStorage, notifier, logger))

	return &Services{
		DeliveryService: deliveryService,
		CryptoService:   NewCryptoService(gateway, logger),
		HealthService:   NewHealthService(storages.DeliveryStorage, gateway, cfg.App.Version, logger),
		NoticeService:   NewNoticeService(subscriber, logger),
	}
}
