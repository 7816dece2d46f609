package model

import (
	"time"

	"github.com/muhammadheryan/wms-fulfillment/constant"
)

// StockRecord is one discrete unit of inventory ownership. Allocated records carry
// the wave and order line they were reserved for.
type StockRecord struct {
	ID          uint64               `db:"id" json:"id"`
	ProductID   uint64               `db:"product_id" json:"product_id"`
	LocationID  uint64               `db:"location_id" json:"location_id"`
	Quantity    int64                `db:"quantity" json:"quantity"`
	Lot         *string              `db:"lot" json:"lot,omitempty"`
	ExpiresAt   *time.Time           `db:"expires_at" json:"expires_at,omitempty"`
	Status      constant.StockStatus `db:"status" json:"status"`
	WaveID      *uint64              `db:"wave_id" json:"wave_id,omitempty"`
	OrderLineID *uint64              `db:"order_line_id" json:"order_line_id,omitempty"`
}

// Reservation tags an allocated record with its origin.
type Reservation struct {
	WaveID      uint64
	OrderLineID uint64
}

// ConsumeFilter selects the allocated records a pick task may draw from.
type ConsumeFilter struct {
	ProductID      uint64
	LocationID     uint64
	OrderLineID    uint64
	PreferRecordID uint64
}
