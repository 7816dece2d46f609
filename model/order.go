package model

// OrderDetail is the read-only view of an externally owned order.
type OrderDetail struct {
	ID     uint64 `db:"id" json:"id"`
	Status string `db:"status" json:"status"`
}

type OrderLine struct {
	ID        uint64 `db:"id" json:"id"`
	OrderID   uint64 `db:"order_id" json:"order_id"`
	ProductID uint64 `db:"product_id" json:"product_id"`
	Quantity  int64  `db:"quantity" json:"quantity"`
}

type OrderWithLines struct {
	OrderDetail
	Lines []OrderLine `json:"lines"`
}

// OrderPickStatus is what packing polls before it starts on an order.
type OrderPickStatus struct {
	OrderID         uint64           `json:"order_id"`
	PickLists       []PickListEntity `json:"pick_lists"`
	TasksTotal      int              `json:"tasks_total"`
	TasksPicked     int              `json:"tasks_picked"`
	ReadyForPacking bool             `json:"ready_for_packing"`
}
