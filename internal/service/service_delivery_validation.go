package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deliveries/internal/validators"
	"github.com/MKhiriev/go-deliveries/models"
)

// DeliveryValidationService rejects malformed deliveries before they reach
// the wrapped service. Reads and deletes pass through unchanged.
type DeliveryValidationService struct {
	inner     DeliveryService
	validator validators.Validator
}

func NewDeliveryValidationService() DeliveryServiceWrapper {
	return &DeliveryValidationService{
		validator: validators.NewDeliveryValidator(),
	}
}

func (v *DeliveryValidationService) UpdateTransactional(ctx context.Context, d models.Delivery) (int64, error) {
	if err := v.validate(ctx, d); err != nil {
		return 0, err
	}
	return v.inner.UpdateTransactional(ctx, d)
}

func (v *DeliveryValidationService) Insert(ctx context.Context, d models.Delivery) (int64, error) {
	if err := v.validate(ctx, d); err != nil {
		return 0, err
	}
	return v.inner.Insert(ctx, d)
}

func (v *DeliveryValidationService) InsertAndNotify(ctx context.Context, d models.Delivery) (int64, error) {
	if err := v.validate(ctx, d); err != nil {
		return 0, err
	}
	return v.inner.InsertAndNotify(ctx, d)
}

func (v *DeliveryValidationService) Update(ctx context.Context, d models.Delivery) (int64, error) {
	if err := v.validate(ctx, d); err != nil {
		return 0, err
	}
	return v.inner.Update(ctx, d)
}

func (v *DeliveryValidationService) Delete(ctx context.Context, id string) (int64, error) {
	return v.inner.Delete(ctx, id)
}

func (v *DeliveryValidationService) DeleteAll(ctx context.Context) (int64, error) {
	return v.inner.DeleteAll(ctx)
}

func (v *DeliveryValidationService) List(ctx context.Context) ([]models.Delivery, error) {
	return v.inner.List(ctx)
}

func (v *DeliveryValidationService) ListFunc(ctx context.Context, fn func(models.Delivery) error) error {
	return v.inner.ListFunc(ctx, fn)
}

func (v *DeliveryValidationService) Get(ctx context.Context, id string) (models.Delivery, bool, error) {
	return v.inner.Get(ctx, id)
}

func (v *DeliveryValidationService) Wrap(wrapped DeliveryService) DeliveryService {
	v.inner = wrapped
	return v
}

func (v *DeliveryValidationService) validate(ctx context.Context, d models.Delivery) error {
	if err := v.validator.Validate(ctx, d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
