package store

import (
	"context"

	"github.com/MKhiriev/go-deliveries/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UnitOfWork is a sequence of statements executed inside one transaction.
// Its result is reported by [DeliveryStorage.InTransaction] only if the
// transaction commits.
type UnitOfWork func(ctx context.Context, tx DeliveryTx) (int64, error)

// DeliveryStorage is the transactional data-access surface over the
// deliveries table. Implementations must be safe for concurrent use.
type DeliveryStorage interface {
	// InTransaction begins a transaction, runs unit inside it and commits.
	// Any error from unit or from commit rolls the transaction back; in that
	// case no count is returned.
	InTransaction(ctx context.Context, unit UnitOfWork) (int64, error)

	// Insert stores a new delivery and returns the affected row count.
	Insert(ctx context.Context, delivery models.Delivery) (int64, error)

	// Update overwrites food, address and status of the delivery with
	// delivery.ID and returns the affected row count (0 when absent).
	Update(ctx context.Context, delivery models.Delivery) (int64, error)

	// Delete removes the delivery with id and returns the affected row count.
	Delete(ctx context.Context, id string) (int64, error)

	// DeleteAll removes every delivery and returns the affected row count.
	DeleteAll(ctx context.Context) (int64, error)

	// SelectAll returns every delivery ordered by id.
	SelectAll(ctx context.Context) ([]models.Delivery, error)

	// SelectAllFunc streams every delivery ordered by id into fn, stopping
	// at the first error fn returns.
	SelectAllFunc(ctx context.Context, fn func(models.Delivery) error) error

	// SelectByID returns the delivery with id. found is false when no row
	// matches; that is not an error.
	SelectByID(ctx context.Context, id string) (delivery models.Delivery, found bool, err error)

	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error
}

// DeliveryTx is the statement set available inside [UnitOfWork].
type DeliveryTx interface {
	// SelectForUpdate reads the delivery with id and locks its row until the
	// transaction ends. found is false when no row matches.
	SelectForUpdate(ctx context.Context, id string) (delivery models.Delivery, found bool, err error)

	// Update overwrites food, address and status of the delivery with
	// delivery.ID and returns the statement's own affected row count.
	Update(ctx context.Context, delivery models.Delivery) (int64, error)
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
