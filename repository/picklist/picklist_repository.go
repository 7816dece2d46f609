package picklist

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms-fulfillment/constant"
	"github.com/muhammadheryan/wms-fulfillment/model"
)

type PickListRepository interface {
	InsertPickListTx(ctx context.Context, tx *sqlx.Tx, pickList *model.PickListEntity) (*model.PickListEntity, error)
	GetPickListByWaveOrderTx(ctx context.Context, tx *sqlx.Tx, waveID, orderID uint64) (*model.PickListEntity, error)
	InsertPickTasksTx(ctx context.Context, tx *sqlx.Tx, tasks []model.PickTask) ([]model.PickTask, error)
	GetPickList(ctx context.Context, pickListID uint64) (*model.PickListEntity, error)
	ListPickListsByOrder(ctx context.Context, orderID uint64) ([]model.PickListEntity, error)
	ListTasks(ctx context.Context, pickListIDs []uint64) ([]model.PickTask, error)
	LockTaskTx(ctx context.Context, tx *sqlx.Tx, taskID uint64) (*model.PickTask, error)
	MarkTaskPickedTx(ctx context.Context, tx *sqlx.Tx, taskID uint64, quantity int64, pickedBy *string, at time.Time) error
	LockPickListTx(ctx context.Context, tx *sqlx.Tx, pickListID uint64) (*model.PickListEntity, error)
	CountPendingTasksTx(ctx context.Context, tx *sqlx.Tx, pickListID uint64) (int, error)
	UpdatePickListStatusTx(ctx context.Context, tx *sqlx.Tx, pickListID uint64, status constant.PickListStatus, completedAt *time.Time) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewPickListRepository(conn *sqlx.DB) PickListRepository {
	return &SQL{conn: conn}
}

const (
	pickListColumns = "id, wave_id, order_id, status, created_at, completed_at"
	taskColumns     = "id, pick_list_id, order_line_id, stock_record_id, product_id, location_id, quantity_to_pick, quantity_picked, status, sequence, picked_by, picked_at"

	insertPickListQuery    = "INSERT INTO pick_list (wave_id, order_id, status, created_at) VALUES (?, ?, ?, ?)"
	getPickListByWaveOrder = "SELECT " + pickListColumns + " FROM pick_list WHERE wave_id = ? AND order_id = ?"
	getPickListQuery       = "SELECT " + pickListColumns + " FROM pick_list WHERE id = ?"
	lockPickListQuery      = "SELECT " + pickListColumns + " FROM pick_list WHERE id = ? FOR UPDATE"
	listPickListsByOrder   = "SELECT " + pickListColumns + " FROM pick_list WHERE order_id = ? ORDER BY id"
	updatePickListStatus   = "UPDATE pick_list SET status = ?, completed_at = ? WHERE id = ?"
	insertTaskQuery        = "INSERT INTO pick_task (pick_list_id, order_line_id, stock_record_id, product_id, location_id, quantity_to_pick, quantity_picked, status, sequence) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	listTasksQuery         = "SELECT " + taskColumns + " FROM pick_task WHERE pick_list_id IN (?) ORDER BY pick_list_id, sequence"
	lockTaskQuery          = "SELECT " + taskColumns + " FROM pick_task WHERE id = ? FOR UPDATE"
	markTaskPickedQuery    = "UPDATE pick_task SET status = ?, quantity_picked = ?, picked_by = ?, picked_at = ? WHERE id = ? AND status = ?"
	countPendingTasksQuery = "SELECT COUNT(*) FROM pick_task WHERE pick_list_id = ? AND status = ?"
)

func (r *SQL) InsertPickListTx(ctx context.Context, tx *sqlx.Tx, pickList *model.PickListEntity) (*model.PickListEntity, error) {
	result, err := tx.ExecContext(ctx, insertPickListQuery, pickList.WaveID, pickList.OrderID, pickList.Status, pickList.CreatedAt)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	pickList.ID = uint64(id)
	return pickList, nil
}

func (r *SQL) GetPickListByWaveOrderTx(ctx context.Context, tx *sqlx.Tx, waveID, orderID uint64) (*model.PickListEntity, error) {
	var pl model.PickListEntity
	if err := tx.QueryRowxContext(ctx, getPickListByWaveOrder, waveID, orderID).StructScan(&pl); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &pl, nil
}

// InsertPickTasksTx stores the tasks in slice order and returns them with ids set.
func (r *SQL) InsertPickTasksTx(ctx context.Context, tx *sqlx.Tx, tasks []model.PickTask) ([]model.PickTask, error) {
	out := make([]model.PickTask, 0, len(tasks))
	for _, t := range tasks {
		result, err := tx.ExecContext(ctx, insertTaskQuery,
			t.PickListID, t.OrderLineID, t.StockRecordID, t.ProductID, t.LocationID,
			t.QuantityToPick, t.QuantityPicked, t.Status, t.Sequence)
		if err != nil {
			return nil, err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, err
		}
		t.ID = uint64(id)
		out = append(out, t)
	}
	return out, nil
}

func (r *SQL) GetPickList(ctx context.Context, pickListID uint64) (*model.PickListEntity, error) {
	var pl model.PickListEntity
	if err := r.conn.QueryRowxContext(ctx, getPickListQuery, pickListID).StructScan(&pl); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &pl, nil
}

func (r *SQL) ListPickListsByOrder(ctx context.Context, orderID uint64) ([]model.PickListEntity, error) {
	lists := make([]model.PickListEntity, 0)
	if err := r.conn.SelectContext(ctx, &lists, listPickListsByOrder, orderID); err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *SQL) ListTasks(ctx context.Context, pickListIDs []uint64) ([]model.PickTask, error) {
	tasks := make([]model.PickTask, 0)
	if len(pickListIDs) == 0 {
		return tasks, nil
	}
	q, args, err := sqlx.In(listTasksQuery, pickListIDs)
	if err != nil {
		return nil, err
	}
	if err := r.conn.SelectContext(ctx, &tasks, r.conn.Rebind(q), args...); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *SQL) LockTaskTx(ctx context.Context, tx *sqlx.Tx, taskID uint64) (*model.PickTask, error) {
	var task model.PickTask
	if err := tx.QueryRowxContext(ctx, lockTaskQuery, taskID).StructScan(&task); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *SQL) MarkTaskPickedTx(ctx context.Context, tx *sqlx.Tx, taskID uint64, quantity int64, pickedBy *string, at time.Time) error {
	result, err := tx.ExecContext(ctx, markTaskPickedQuery,
		constant.PickTaskStatusPicked, quantity, pickedBy, at, taskID, constant.PickTaskStatusPending)
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

func (r *SQL) LockPickListTx(ctx context.Context, tx *sqlx.Tx, pickListID uint64) (*model.PickListEntity, error) {
	var pl model.PickListEntity
	if err := tx.QueryRowxContext(ctx, lockPickListQuery, pickListID).StructScan(&pl); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &pl, nil
}

func (r *SQL) CountPendingTasksTx(ctx context.Context, tx *sqlx.Tx, pickListID uint64) (int, error) {
	var n int
	if err := tx.GetContext(ctx, &n, countPendingTasksQuery, pickListID, constant.PickTaskStatusPending); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *SQL) UpdatePickListStatusTx(ctx context.Context, tx *sqlx.Tx, pickListID uint64, status constant.PickListStatus, completedAt *time.Time) error {
	_, err := tx.ExecContext(ctx, updatePickListStatus, status, completedAt, pickListID)
	return err
}
