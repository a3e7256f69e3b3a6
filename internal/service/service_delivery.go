package service

import (
	"context"

	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/internal/store"
	"github.com/MKhiriev/go-deliveries/internal/workers"
	"github.com/MKhiriev/go-deliveries/models"
)

type deliveryService struct {
	deliveryStorage store.DeliveryStorage
	notifier        workers.Notifier

	logger *logger.Logger
}

func NewDeliveryService(deliveryStorage store.DeliveryStorage, notifier workers.Notifier, logger *logger.Logger) DeliveryService {
	return &deliveryService{
		deliveryStorage: deliveryStorage,
		notifier:        notifier,
		logger:          logger,
	}
}

func (s *deliveryService) UpdateTransactional(ctx context.Context, d models.Delivery) (int64, error) {
	return s.deliveryStorage.InTransaction(ctx, func(ctx context.Context, tx store.DeliveryTx) (int64, error) {
		_, found, err := tx.SelectForUpdate(ctx, d.ID)
		if err != nil {
			return 0, err
		}
		if !found {
			logger.FromContext(ctx).Debug().
				Str("func", "deliveryService.UpdateTransactional").
				Str("id", d.ID).
				Msg("delivery not found, nothing to update")
			return 0, nil
		}

		return tx.Update(ctx, d)
	})
}

func (s *deliveryService) Insert(ctx context.Context, d models.Delivery) (int64, error) {
	return s.deliveryStorage.Insert(ctx, d)
}

func (s *deliveryService) InsertAndNotify(ctx context.Context, d models.Delivery) (int64, error) {
	count, err := s.deliveryStorage.Insert(ctx, d)
	if err != nil {
		return 0, err
	}

	if s.notifier != nil {
		s.notifier.Enqueue(ctx, d)
	}

	return count, nil
}

func (s *deliveryService) Update(ctx context.Context, d models.Delivery) (int64, error) {
	return s.deliveryStorage.Update(ctx, d)
}

func (s *deliveryService) Delete(ctx context.Context, id string) (int64, error) {
	return s.deliveryStorage.Delete(ctx, id)
}

func (s *deliveryService) DeleteAll(ctx context.Context) (int64, error) {
	return s.deliveryStorage.DeleteAll(ctx)
}

func (s *deliveryService) List(ctx context.Context) ([]models.Delivery, error) {
	return s.deliveryStorage.SelectAll(ctx)
}

func (s *deliveryService) ListFunc(ctx context.Context, fn func(models.Delivery) error) error {
	return s.deliveryStorage.SelectAllFunc(ctx, fn)
}

func (s *deliveryService) Get(ctx context.Context, id string) (models.Delivery, bool, error) {
	return s.deliveryStorage.SelectByID(ctx, id)
}
