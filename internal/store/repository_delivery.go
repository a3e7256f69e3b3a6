package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/models"
)

// deliveryRepository is the database/sql implementation of [DeliveryStorage]
// over the "deliveries" table. It works with both the pgx and the sqlite3
// drivers; the dialect differences live in [queryBuilder].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] and bounds the call with the configured query timeout.
type deliveryRepository struct {
	*DB
	queries queryBuilder
	logger  *logger.Logger
}

// NewDeliveryRepository constructs a [DeliveryStorage] backed by db.
func NewDeliveryRepository(db *DB, logger *logger.Logger) DeliveryStorage {
	logger.Debug().Str("driver", db.driver).Msg("creating delivery repository")
	return &deliveryRepository{
		DB:      db,
		queries: newQueryBuilder(db.driver),
		logger:  logger,
	}
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InTransaction runs unit inside one transaction.
//
// The deferred Rollback is a no-op after a successful Commit. When unit or
// Commit fails, the error is wrapped with [app.ErrTransactionFailure] and no
// count is returned.
func (r *deliveryRepository) InTransaction(ctx context.Context, unit UnitOfWork) (int64, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "deliveryRepository.InTransaction").
			Msg("failed to begin transaction")
		return 0, r.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	count, err := unit(ctx, &deliveryTx{tx: tx, repo: r})
	if err != nil {
		log.Err(err).
			Str("func", "deliveryRepository.InTransaction").
			Msg("unit of work failed, rolling back")
		return 0, transactionFailure(err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "deliveryRepository.InTransaction").
			Msg("failed to commit transaction")
		return 0, transactionFailure(fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}

	log.Debug().
		Str("func", "deliveryRepository.InTransaction").
		Int64("affected", count).
		Msg("transaction committed")

	return count, nil
}

// Insert implements [DeliveryStorage].
func (r *deliveryRepository) Insert(ctx context.Context, delivery models.Delivery) (int64, error) {
	query, args, err := r.queries.insertDelivery(delivery)
	if err != nil {
		return 0, r.buildError(ctx, "deliveryRepository.Insert", err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.exec(ctx, r.DB.DB, "deliveryRepository.Insert", delivery.ID, query, args)
}

// Update implements [DeliveryStorage].
func (r *deliveryRepository) Update(ctx context.Context, delivery models.Delivery) (int64, error) {
	query, args, err := r.queries.updateDelivery(delivery)
	if err != nil {
		return 0, r.buildError(ctx, "deliveryRepository.Update", err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.exec(ctx, r.DB.DB, "deliveryRepository.Update", delivery.ID, query, args)
}

// Delete implements [DeliveryStorage].
func (r *deliveryRepository) Delete(ctx context.Context, id string) (int64, error) {
	query, args, err := r.queries.deleteDelivery(id)
	if err != nil {
		return 0, r.buildError(ctx, "deliveryRepository.Delete", err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.exec(ctx, r.DB.DB, "deliveryRepository.Delete", id, query, args)
}

// DeleteAll implements [DeliveryStorage].
func (r *deliveryRepository) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := r.queries.deleteAllDeliveries()
	if err != nil {
		return 0, r.buildError(ctx, "deliveryRepository.DeleteAll", err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.exec(ctx, r.DB.DB, "deliveryRepository.DeleteAll", "", query, args)
}

// SelectAll implements [DeliveryStorage].
func (r *deliveryRepository) SelectAll(ctx context.Context) ([]models.Delivery, error) {
	deliveries := make([]models.Delivery, 0, 16)
	err := r.SelectAllFunc(ctx, func(d models.Delivery) error {
		deliveries = append(deliveries, d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deliveries, nil
}

// SelectAllFunc implements [DeliveryStorage]. Rows are handed to fn one at a
// time while the result set is still open.
func (r *deliveryRepository) SelectAllFunc(ctx context.Context, fn func(models.Delivery) error) error {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectAllDeliveries()
	if err != nil {
		return r.buildError(ctx, "deliveryRepository.SelectAllFunc", err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "deliveryRepository.SelectAllFunc").
			Msg("failed to execute query for selecting all deliveries")
		return r.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		delivery, scanErr := scanDelivery(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "deliveryRepository.SelectAllFunc").
				Int("row", count).
				Msg("failed to scan delivery row")
			return r.wrapError(ErrScanningRow, scanErr)
		}

		if err = fn(delivery); err != nil {
			return err
		}
		count++
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "deliveryRepository.SelectAllFunc").
			Msg("error occurred during rows iteration")
		return r.wrapError(ErrScanningRows, rowsErr)
	}

	return nil
}

// SelectByID implements [DeliveryStorage].
func (r *deliveryRepository) SelectByID(ctx context.Context, id string) (models.Delivery, bool, error) {
	query, args, err := r.queries.selectDeliveryByID(id)
	if err != nil {
		return models.Delivery{}, false, r.buildError(ctx, "deliveryRepository.SelectByID", err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.queryOne(ctx, r.DB.DB, "deliveryRepository.SelectByID", id, query, args)
}

// Ping implements [DeliveryStorage].
func (r *deliveryRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.DB.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "deliveryRepository.Ping").
			Msg("database ping failed")
		return r.wrapError(ErrPingingDatabase, err)
	}

	return nil
}

func (r *deliveryRepository) exec(ctx context.Context, e execer, fn, id, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Str("id", id).Msg("failed to execute statement")
		return 0, r.wrapError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Str("id", id).Msg("failed to read affected rows")
		return 0, r.wrapError(ErrExecutingStatement, err)
	}

	log.Debug().Str("func", fn).Str("id", id).Int64("affected", affected).Msg("statement executed")
	return affected, nil
}

func (r *deliveryRepository) queryOne(ctx context.Context, q queryRower, fn, id, query string, args []any) (models.Delivery, bool, error) {
	delivery, err := scanDelivery(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Delivery{}, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Str("id", id).Msg("failed to read delivery")
		return models.Delivery{}, false, r.wrapError(ErrExecutingQuery, err)
	}

	return delivery, true, nil
}

func (r *deliveryRepository) buildError(ctx context.Context, fn string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to create query")
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDelivery(s scanner) (models.Delivery, error) {
	var delivery models.Delivery
	var status string

	if err := s.Scan(&delivery.ID, &delivery.Food, &delivery.Address, &status); err != nil {
		return models.Delivery{}, err
	}

	parsed, err := models.ParseDeliveryStatus(status)
	if err != nil {
		return models.Delivery{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	delivery.Status = parsed

	return delivery, nil
}
