package service

import (
	"context"

	"github.com/MKhiriev/go-deliveries/internal/messaging"
	"github.com/MKhiriev/go-deliveries/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DeliveryService is the business surface over delivery records.
type DeliveryService interface {
	// UpdateTransactional locks the delivery with d.ID, overwrites its food,
	// address and status, and commits. It returns the update statement's
	// own affected count: 0 when no such delivery exists.
	UpdateTransactional(ctx context.Context, d models.Delivery) (int64, error)

	// Insert stores d.
	Insert(ctx context.Context, d models.Delivery) (int64, error)

	// InsertAndNotify stores d and schedules an encrypted notice about it.
	// The notice is best effort and never fails the insert.
	InsertAndNotify(ctx context.Context, d models.Delivery) (int64, error)

	// Update overwrites food, address and status of the delivery with d.ID.
	Update(ctx context.Context, d models.Delivery) (int64, error)

	Delete(ctx context.Context, id string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)

	// List returns every delivery ordered by id.
	List(ctx context.Context) ([]models.Delivery, error)

	// ListFunc streams every delivery ordered by id into fn.
	ListFunc(ctx context.Context, fn func(models.Delivery) error) error

	// Get returns the delivery with id; found is false when it does not exist.
	Get(ctx context.Context, id string) (d models.Delivery, found bool, err error)
}

// CryptoService encrypts and decrypts arbitrary text.
type CryptoService interface {
	Encrypt(ctx context.Context, plaintext string) (models.CipherText, error)
	Decrypt(ctx context.Context, cipher models.CipherText) (string, error)
}

// HealthService reports the state of the service's dependencies.
type HealthService interface {
	Check(ctx context.Context) models.HealthReport
}

// NoticeService gives access to the stream of delivery notices.
type NoticeService interface {
	Subscribe(ctx context.Context) (messaging.Subscription, error)
}

// DeliveryServiceWrapper defines middleware composition for DeliveryService.
// Implementations wrap an existing DeliveryService to add behavior such as
// validating.
type DeliveryServiceWrapper interface {
	Wrap(DeliveryService) DeliveryService
}
