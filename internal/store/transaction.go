package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-deliveries/internal/app"
	"github.com/MKhiriev/go-deliveries/models"
)

// deliveryTx implements [DeliveryTx] over an open *sql.Tx. It is only valid
// inside the [UnitOfWork] it was handed to.
type deliveryTx struct {
	tx   *sql.Tx
	repo *deliveryRepository
}

// SelectForUpdate implements [DeliveryTx].
func (t *deliveryTx) SelectForUpdate(ctx context.Context, id string) (models.Delivery, bool, error) {
	query, args, err := t.repo.queries.selectDeliveryForUpdate(id)
	if err != nil {
		return models.Delivery{}, false, t.repo.buildError(ctx, "deliveryTx.SelectForUpdate", err)
	}

	return t.repo.queryOne(ctx, t.tx, "deliveryTx.SelectForUpdate", id, query, args)
}

// Update implements [DeliveryTx].
func (t *deliveryTx) Update(ctx context.Context, delivery models.Delivery) (int64, error) {
	query, args, err := t.repo.queries.updateDelivery(delivery)
	if err != nil {
		return 0, t.repo.buildError(ctx, "deliveryTx.Update", err)
	}

	return t.repo.exec(ctx, t.tx, "deliveryTx.Update", delivery.ID, query, args)
}

// transactionFailure marks err as [app.ErrTransactionFailure] unless it
// already is one.
func transactionFailure(err error) error {
	if errors.Is(err, app.ErrTransactionFailure) {
		return err
	}
	return fmt.Errorf("%w: %w", app.ErrTransactionFailure, err)
}
