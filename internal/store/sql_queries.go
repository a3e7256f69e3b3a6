package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-deliveries/internal/config"
	"github.com/MKhiriev/go-deliveries/models"
)

const deliveriesTable = "deliveries"

var deliveryColumns = []string{"id", "food", "address", "status"}

// queryBuilder renders the deliveries statements for one SQL dialect.
type queryBuilder struct {
	sb sq.StatementBuilderType

	// lockRows appends FOR UPDATE to locking reads. SQLite has no row locks;
	// there the whole database is locked by BEGIN IMMEDIATE instead.
	lockRows bool
}

func newQueryBuilder(driver string) queryBuilder {
	if driver == config.DriverSQLite {
		return queryBuilder{sb: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
	}

	return queryBuilder{
		sb:       sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		lockRows: true,
	}
}

func (q queryBuilder) insertDelivery(d models.Delivery) (string, []any, error) {
	return q.sb.
		Insert(deliveriesTable).
		Columns(deliveryColumns...).
		Values(d.ID, d.Food, d.Address, string(d.Status)).
		ToSql()
}

func (q queryBuilder) updateDelivery(d models.Delivery) (string, []any, error) {
	return q.sb.
		Update(deliveriesTable).
		Set("food", d.Food).
		Set("address", d.Address).
		Set("status", string(d.Status)).
		Where(sq.Eq{"id": d.ID}).
		ToSql()
}

func (q queryBuilder) deleteDelivery(id string) (string, []any, error) {
	return q.sb.
		Delete(deliveriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (q queryBuilder) deleteAllDeliveries() (string, []any, error) {
	return q.sb.
		Delete(deliveriesTable).
		ToSql()
}

func (q queryBuilder) selectAllDeliveries() (string, []any, error) {
	return q.sb.
		Select(deliveryColumns...).
		From(deliveriesTable).
		OrderBy("id").
		ToSql()
}

func (q queryBuilder) selectDeliveryByID(id string) (string, []any, error) {
	return q.sb.
		Select(deliveryColumns...).
		From(deliveriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (q queryBuilder) selectDeliveryForUpdate(id string) (string, []any, error) {
	builder := q.sb.
		Select(deliveryColumns...).
		From(deliveriesTable).
		Where(sq.Eq{"id": id})

	if q.lockRows {
		builder = builder.Suffix("FOR UPDATE")
	}

	return builder.ToSql()
}
