package model

import (
	"time"

	"github.com/muhammadheryan/wms-fulfillment/constant"
)

type WaveEntity struct {
	ID          uint64              `db:"id" json:"id"`
	Name        string              `db:"name" json:"name"`
	Status      constant.WaveStatus `db:"status" json:"status"`
	CreatedBy   string              `db:"created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time           `db:"created_at" json:"created_at"`
	CutoffAt    *time.Time          `db:"cutoff_at" json:"cutoff_at,omitempty"`
	AllocatedAt *time.Time          `db:"allocated_at" json:"allocated_at,omitempty"`
	ReleasedAt  *time.Time          `db:"released_at" json:"released_at,omitempty"`
}

// WaveOrder records that an order was allocated inside a wave.
type WaveOrder struct {
	WaveID      uint64    `db:"wave_id" json:"wave_id"`
	OrderID     uint64    `db:"order_id" json:"order_id"`
	AllocatedAt time.Time `db:"allocated_at" json:"allocated_at"`
}

// Shortage is the persisted audit row for a line that could not be fully allocated.
type Shortage struct {
	ID          uint64    `db:"id" json:"id"`
	WaveID      uint64    `db:"wave_id" json:"wave_id"`
	OrderID     uint64    `db:"order_id" json:"order_id"`
	OrderLineID uint64    `db:"order_line_id" json:"order_line_id"`
	ProductID   uint64    `db:"product_id" json:"product_id"`
	Ordered     int64     `db:"quantity_ordered" json:"quantity_ordered"`
	Allocated   int64     `db:"quantity_allocated" json:"quantity_allocated"`
	Short       int64     `db:"quantity_short" json:"quantity_short"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateWaveRequest struct {
	Name     string     `json:"name" validate:"required,max=128"`
	CutoffAt *time.Time `json:"cutoff_at"`
}

type WaveOrdersRequest struct {
	OrderIDs []uint64 `json:"order_ids" validate:"required,min=1,unique_ids,dive,gt=0"`
}

// LineAllocation is the outcome of allocating one order line.
type LineAllocation struct {
	OrderID     uint64 `json:"order_id"`
	OrderLineID uint64 `json:"order_line_id"`
	ProductID   uint64 `json:"product_id"`
	Ordered     int64  `json:"quantity_ordered"`
	Allocated   int64  `json:"quantity_allocated"`
	Short       int64  `json:"quantity_short"`
	Splits      int    `json:"-"`
}

type AllocationResult struct {
	WaveID        uint64              `json:"wave_id"`
	Status        constant.WaveStatus `json:"status"`
	Lines         []LineAllocation    `json:"lines"`
	SkippedOrders []uint64            `json:"skipped_orders,omitempty"`
	TotalShort    int64               `json:"total_short"`
}

type ReleaseResult struct {
	WaveID        uint64              `json:"wave_id"`
	Status        constant.WaveStatus `json:"status"`
	PickLists     []PickListDetail    `json:"pick_lists"`
	SkippedOrders []uint64            `json:"skipped_orders,omitempty"`
}

type WaveDetail struct {
	WaveEntity
	OrderIDs  []uint64   `json:"order_ids"`
	Shortages []Shortage `json:"shortages"`
}
