package wave

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms-fulfillment/constant"
	"github.com/muhammadheryan/wms-fulfillment/model"
)

type WaveRepository interface {
	InsertWave(ctx context.Context, wave *model.WaveEntity) (*model.WaveEntity, error)
	GetWave(ctx context.Context, waveID uint64) (*model.WaveEntity, error)
	LockWaveTx(ctx context.Context, tx *sqlx.Tx, waveID uint64) (*model.WaveEntity, error)
	UpdateWaveStatusTx(ctx context.Context, tx *sqlx.Tx, waveID uint64, from, to constant.WaveStatus, at time.Time) error
	GetOrderWaveTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (uint64, bool, error)
	InsertWaveOrderTx(ctx context.Context, tx *sqlx.Tx, waveID, orderID uint64) error
	IsWaveOrder(ctx context.Context, waveID, orderID uint64) (bool, error)
	ListWaveOrders(ctx context.Context, waveID uint64) ([]uint64, error)
	InsertShortageTx(ctx context.Context, tx *sqlx.Tx, shortage *model.Shortage) error
	ListShortages(ctx context.Context, waveID uint64) ([]model.Shortage, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewWaveRepository(conn *sqlx.DB) WaveRepository {
	return &SQL{conn: conn}
}

const (
	waveColumns = "id, name, status, created_by, created_at, cutoff_at, allocated_at, released_at"

	insertWaveQuery = "INSERT INTO wave (name, status, created_by, created_at, cutoff_at) VALUES (?, ?, ?, ?, ?)"
	getWaveQuery    = "SELECT " + waveColumns + " FROM wave WHERE id = ?"
	lockWaveQuery   = "SELECT " + waveColumns + " FROM wave WHERE id = ? FOR UPDATE"

	getOrderWaveQuery    = "SELECT wave_id FROM wave_order WHERE order_id = ?"
	insertWaveOrderQuery = "INSERT INTO wave_order (wave_id, order_id, allocated_at) VALUES (?, ?, ?)"
	isWaveOrderQuery     = "SELECT COUNT(*) FROM wave_order WHERE wave_id = ? AND order_id = ?"
	listWaveOrdersQuery  = "SELECT order_id FROM wave_order WHERE wave_id = ? ORDER BY order_id"

	insertShortageQuery = "INSERT INTO allocation_shortage (wave_id, order_id, order_line_id, product_id, quantity_ordered, quantity_allocated, quantity_short, created_at) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	listShortagesQuery = "SELECT id, wave_id, order_id, order_line_id, product_id, quantity_ordered, quantity_allocated, quantity_short, created_at " +
		"FROM allocation_shortage WHERE wave_id = ? ORDER BY id"
)

func (r *SQL) InsertWave(ctx context.Context, wave *model.WaveEntity) (*model.WaveEntity, error) {
	result, err := r.conn.ExecContext(ctx, insertWaveQuery, wave.Name, wave.Status, wave.CreatedBy, wave.CreatedAt, wave.CutoffAt)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	wave.ID = uint64(id)
	return wave, nil
}

func (r *SQL) GetWave(ctx context.Context, waveID uint64) (*model.WaveEntity, error) {
	var wave model.WaveEntity
	if err := r.conn.QueryRowxContext(ctx, getWaveQuery, waveID).StructScan(&wave); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &wave, nil
}

func (r *SQL) LockWaveTx(ctx context.Context, tx *sqlx.Tx, waveID uint64) (*model.WaveEntity, error) {
	var wave model.WaveEntity
	if err := tx.QueryRowxContext(ctx, lockWaveQuery, waveID).StructScan(&wave); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &wave, nil
}

// UpdateWaveStatusTx is a compare-and-set on the current status.
func (r *SQL) UpdateWaveStatusTx(ctx context.Context, tx *sqlx.Tx, waveID uint64, from, to constant.WaveStatus, at time.Time) error {
	var column string
	switch to {
	case constant.WaveStatusAllocated:
		column = "allocated_at"
	case constant.WaveStatusReleased:
		column = "released_at"
	default:
		return fmt.Errorf("wave %d: no timestamp column for status %s", waveID, to)
	}

	q := "UPDATE wave SET status = ?, " + column + " = ? WHERE id = ? AND status = ?"
	result, err := tx.ExecContext(ctx, q, to, at, waveID, from)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQL) GetOrderWaveTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (uint64, bool, error) {
	var waveID uint64
	if err := tx.GetContext(ctx, &waveID, getOrderWaveQuery, orderID); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return waveID, true, nil
}

func (r *SQL) InsertWaveOrderTx(ctx context.Context, tx *sqlx.Tx, waveID, orderID uint64) error {
	_, err := tx.ExecContext(ctx, insertWaveOrderQuery, waveID, orderID, time.Now().UTC())
	return err
}

func (r *SQL) IsWaveOrder(ctx context.Context, waveID, orderID uint64) (bool, error) {
	var n int
	if err := r.conn.GetContext(ctx, &n, isWaveOrderQuery, waveID, orderID); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQL) ListWaveOrders(ctx context.Context, waveID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	if err := r.conn.SelectContext(ctx, &ids, listWaveOrdersQuery, waveID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *SQL) InsertShortageTx(ctx context.Context, tx *sqlx.Tx, shortage *model.Shortage) error {
	result, err := tx.ExecContext(ctx, insertShortageQuery,
		shortage.WaveID, shortage.OrderID, shortage.OrderLineID, shortage.ProductID,
		shortage.Ordered, shortage.Allocated, shortage.Short, shortage.CreatedAt)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	shortage.ID = uint64(id)
	return nil
}

func (r *SQL) ListShortages(ctx context.Context, waveID uint64) ([]model.Shortage, error) {
	shortages := make([]model.Shortage, 0)
	if err := r.conn.SelectContext(ctx, &shortages, listShortagesQuery, waveID); err != nil {
		return nil, err
	}
	return shortages, nil
}
