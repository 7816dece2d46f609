package model

import (
	"time"

	"github.com/muhammadheryan/wms-fulfillment/constant"
)

type PickListEntity struct {
	ID          uint64                  `db:"id" json:"id"`
	WaveID      uint64                  `db:"wave_id" json:"wave_id"`
	OrderID     uint64                  `db:"order_id" json:"order_id"`
	Status      constant.PickListStatus `db:"status" json:"status"`
	CreatedAt   time.Time               `db:"created_at" json:"created_at"`
	CompletedAt *time.Time              `db:"completed_at" json:"completed_at,omitempty"`
}

type PickTask struct {
	ID             uint64                  `db:"id" json:"id"`
	PickListID     uint64                  `db:"pick_list_id" json:"pick_list_id"`
	OrderLineID    uint64                  `db:"order_line_id" json:"order_line_id"`
	StockRecordID  uint64                  `db:"stock_record_id" json:"stock_record_id"`
	ProductID      uint64                  `db:"product_id" json:"product_id"`
	LocationID     uint64                  `db:"location_id" json:"location_id"`
	QuantityToPick int64                   `db:"quantity_to_pick" json:"quantity_to_pick"`
	QuantityPicked int64                   `db:"quantity_picked" json:"quantity_picked"`
	Status         constant.PickTaskStatus `db:"status" json:"status"`
	Sequence       int                     `db:"sequence" json:"sequence"`
	PickedBy       *string                 `db:"picked_by" json:"picked_by,omitempty"`
	PickedAt       *time.Time              `db:"picked_at" json:"picked_at,omitempty"`
}

type PickListDetail struct {
	PickListEntity
	Tasks []PickTask `json:"tasks"`
}

type ConfirmTaskRequest struct {
	QuantityPicked int64 `json:"quantity_picked" validate:"required,gt=0"`
}

type ConfirmTaskResponse struct {
	Task           PickTask                `json:"task"`
	PickListStatus constant.PickListStatus `json:"pick_list_status"`
	AlreadyPicked  bool                    `json:"already_picked"`
}
