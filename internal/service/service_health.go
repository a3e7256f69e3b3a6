package service

import (
	"context"

	"github.com/MKhiriev/go-deliveries/internal/crypto"
	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/internal/store"
	"github.com/MKhiriev/go-deliveries/models"
)

type healthService struct {
	deliveryStorage store.DeliveryStorage
	activation      crypto.ActivationState
	version         string

	logger *logger.Logger
}

func NewHealthService(deliveryStorage store.DeliveryStorage, activation crypto.ActivationState, version string, logger *logger.Logger) HealthService {
	return &healthService{
		deliveryStorage: deliveryStorage,
		activation:      activation,
		version:         version,
		logger:          logger,
	}
}

// Check pings the record store and reads the crypto activation state. Only
// the record store decides the overall status: a degraded crypto gateway
// still serves delivery records.
func (s *healthService) Check(ctx context.Context) models.HealthReport {
	report := models.HealthReport{
		Status:   models.HealthUp,
		Database: models.HealthUp,
		Crypto:   cryptoState(s.activation),
		Version:  s.version,
	}

	if err := s.deliveryStorage.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "healthService.Check").
			Msg("record store is unreachable")
		report.Status = models.HealthDown
		report.Database = models.HealthDown
	}

	return report
}

func cryptoState(activation crypto.ActivationState) string {
	switch {
	case activation == nil || !activation.Activated():
		return models.CryptoActivating
	case activation.Degraded():
		return models.CryptoDegraded
	default:
		return models.CryptoActive
	}
}
