package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms-fulfillment/model"
)

// OrderRepository reads the order service tables. The engine never writes them.
type OrderRepository interface {
	GetOrderDetail(ctx context.Context, orderID uint64) (*model.OrderDetail, error)
	GetOrderLinesTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderLine, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	getOrderDetailQuery = "SELECT id, status FROM `order` WHERE id = ?"
	getOrderLinesQuery  = "SELECT id, order_id, product_id, quantity FROM order_line WHERE order_id = ? ORDER BY id"
)

func (r *SQL) GetOrderDetail(ctx context.Context, orderID uint64) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	if err := r.conn.QueryRowxContext(ctx, getOrderDetailQuery, orderID).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) GetOrderLinesTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderLine, error) {
	lines := make([]model.OrderLine, 0)
	if err := tx.SelectContext(ctx, &lines, getOrderLinesQuery, orderID); err != nil {
		return nil, err
	}
	return lines, nil
}
