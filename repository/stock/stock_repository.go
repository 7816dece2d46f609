package stock

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms-fulfillment/constant"
	"github.com/muhammadheryan/wms-fulfillment/model"
)

// StockRepository is the inventory ledger. Every mutating call expects the row to
// have been locked by one of the Lock* reads in the same transaction.
type StockRepository interface {
	LockAvailableByProductTx(ctx context.Context, tx *sqlx.Tx, productID uint64) ([]model.StockRecord, error)
	MarkAllocatedTx(ctx context.Context, tx *sqlx.Tx, recordID uint64, res model.Reservation) error
	SplitAllocatedTx(ctx context.Context, tx *sqlx.Tx, source model.StockRecord, take int64, res model.Reservation) (uint64, error)
	ListAllocatedByLineTx(ctx context.Context, tx *sqlx.Tx, waveID, orderLineID uint64) ([]model.StockRecord, error)
	LockAllocatedForConsumeTx(ctx context.Context, tx *sqlx.Tx, filter model.ConsumeFilter) ([]model.StockRecord, error)
	DecrementTx(ctx context.Context, tx *sqlx.Tx, recordID uint64, quantity int64) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, recordID uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

const (
	stockColumns = "id, product_id, location_id, quantity, lot, expires_at, status, wave_id, order_line_id"

	// FEFO: earliest expiry first, undated stock last, then lot, then insertion order.
	lockAvailableQuery = "SELECT " + stockColumns + " FROM stock_record WHERE product_id = ? AND status = ? AND quantity > 0 " +
		"ORDER BY expires_at IS NULL, expires_at, lot IS NULL, lot, id FOR UPDATE"

	markAllocatedQuery = "UPDATE stock_record SET status = ?, wave_id = ?, order_line_id = ? WHERE id = ? AND status = ?"

	shrinkAvailableQuery = "UPDATE stock_record SET quantity = quantity - ? WHERE id = ? AND status = ? AND quantity > ?"

	insertAllocatedQuery = "INSERT INTO stock_record (product_id, location_id, quantity, lot, expires_at, status, wave_id, order_line_id) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?)"

	listAllocatedByLineQuery = "SELECT " + stockColumns + " FROM stock_record WHERE wave_id = ? AND order_line_id = ? AND status = ? AND quantity > 0 ORDER BY id"

	lockConsumableQuery = "SELECT " + stockColumns + " FROM stock_record WHERE product_id = ? AND location_id = ? AND order_line_id = ? AND status = ? AND quantity > 0 " +
		"ORDER BY id = ? DESC, id FOR UPDATE"

	decrementQuery = "UPDATE stock_record SET quantity = quantity - ? WHERE id = ? AND status = ? AND quantity >= ?"

	deleteQuery = "DELETE FROM stock_record WHERE id = ?"
)

func (r *SQL) LockAvailableByProductTx(ctx context.Context, tx *sqlx.Tx, productID uint64) ([]model.StockRecord, error) {
	records := make([]model.StockRecord, 0)
	if err := tx.SelectContext(ctx, &records, lockAvailableQuery, productID, constant.StockStatusAvailable); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *SQL) MarkAllocatedTx(ctx context.Context, tx *sqlx.Tx, recordID uint64, res model.Reservation) error {
	result, err := tx.ExecContext(ctx, markAllocatedQuery, constant.StockStatusAllocated, res.WaveID, res.OrderLineID, recordID, constant.StockStatusAvailable)
	if err != nil {
		return err
	}
	return expectOneRow(result, "mark allocated", recordID)
}

// SplitAllocatedTx moves take units out of an AVAILABLE record into a new
// ALLOCATED record with the same product, location and lot.
func (r *SQL) SplitAllocatedTx(ctx context.Context, tx *sqlx.Tx, source model.StockRecord, take int64, res model.Reservation) (uint64, error) {
	result, err := tx.ExecContext(ctx, shrinkAvailableQuery, take, source.ID, constant.StockStatusAvailable, take)
	if err != nil {
		return 0, err
	}
	if err := expectOneRow(result, "split", source.ID); err != nil {
		return 0, err
	}

	result, err = tx.ExecContext(ctx, insertAllocatedQuery,
		source.ProductID, source.LocationID, take, source.Lot, source.ExpiresAt,
		constant.StockStatusAllocated, res.WaveID, res.OrderLineID)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) ListAllocatedByLineTx(ctx context.Context, tx *sqlx.Tx, waveID, orderLineID uint64) ([]model.StockRecord, error) {
	records := make([]model.StockRecord, 0)
	if err := tx.SelectContext(ctx, &records, listAllocatedByLineQuery, waveID, orderLineID, constant.StockStatusAllocated); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *SQL) LockAllocatedForConsumeTx(ctx context.Context, tx *sqlx.Tx, filter model.ConsumeFilter) ([]model.StockRecord, error) {
	records := make([]model.StockRecord, 0)
	err := tx.SelectContext(ctx, &records, lockConsumableQuery,
		filter.ProductID, filter.LocationID, filter.OrderLineID, constant.StockStatusAllocated, filter.PreferRecordID)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// DecrementTx refuses to drive a record below zero.
func (r *SQL) DecrementTx(ctx context.Context, tx *sqlx.Tx, recordID uint64, quantity int64) error {
	result, err := tx.ExecContext(ctx, decrementQuery, quantity, recordID, constant.StockStatusAllocated, quantity)
	if err != nil {
		return err
	}
	return expectOneRow(result, "decrement", recordID)
}

func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, recordID uint64) error {
	result, err := tx.ExecContext(ctx, deleteQuery, recordID)
	if err != nil {
		return err
	}
	return expectOneRow(result, "delete", recordID)
}

func expectOneRow(result interface{ RowsAffected() (int64, error) }, op string, id uint64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("stock record %d: %s affected %d rows", id, op, n)
	}
	return nil
}
