package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-deliveries/internal/config"
	"github.com/MKhiriev/go-deliveries/models"
)

func Test_selectDeliveryForUpdate_Postgres(t *testing.T) {
	q := newQueryBuilder(config.DriverPostgres)

	query, args, err := q.selectDeliveryForUpdate("d1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, food, address, status FROM deliveries WHERE id = $1 FOR UPDATE", query)
	assert.Equal(t, []any{"d1"}, args)
}

func Test_selectDeliveryForUpdate_SQLiteHasNoRowLock(t *testing.T) {
	q := newQueryBuilder(config.DriverSQLite)

	query, _, err := q.selectDeliveryForUpdate("d1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, food, address, status FROM deliveries WHERE id = ?", query)
}

func Test_updateDelivery_ArgumentOrder(t *testing.T) {
	q := newQueryBuilder(config.DriverPostgres)

	query, args, err := q.updateDelivery(models.Delivery{
		ID: "d2", Food: "sushi", Address: "Side St", Status: models.DeliveryStatusCancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE deliveries SET food = $1, address = $2, status = $3 WHERE id = $4", query)
	assert.Equal(t, []any{"sushi", "Side St", "CANCELLED", "d2"}, args)
}

func Test_insertDelivery_SQLitePlaceholders(t *testing.T) {
	q := newQueryBuilder(config.DriverSQLite)

	query, args, err := q.insertDelivery(models.Delivery{ID: "d1", Food: "f", Address: "a", Status: models.DeliveryStatusCreated})
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO deliveries")
	assert.Contains(t, query, "(?,?,?,?)")
	assert.Equal(t, []any{"d1", "f", "a", "CREATED"}, args)
}

func Test_selectAllDeliveries_Ordered(t *testing.T) {
	query, args, err := newQueryBuilder(config.DriverPostgres).selectAllDeliveries()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, food, address, status FROM deliveries ORDER BY id", query)
	assert.Empty(t, args)
}

func Test_deleteAllDeliveries_NoWhere(t *testing.T) {
	query, _, err := newQueryBuilder(config.DriverPostgres).deleteAllDeliveries()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM deliveries", query)
}
