package allocation

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms-fulfillment/constant"
	"github.com/muhammadheryan/wms-fulfillment/model"
	stockrepo "github.com/muhammadheryan/wms-fulfillment/repository/stock"
)

// Allocator reserves AVAILABLE stock for order lines. It runs inside the caller's
// transaction; the product's AVAILABLE rows stay locked until that commits.
type Allocator interface {
	AllocateLineTx(ctx context.Context, tx *sqlx.Tx, waveID uint64, line model.OrderLine) (*model.LineAllocation, error)
}

type allocatorImpl struct {
	stockRepo stockrepo.StockRepository
}

func NewAllocator(stockRepo stockrepo.StockRepository) Allocator {
	return &allocatorImpl{stockRepo: stockRepo}
}

// step is the planned reservation against one AVAILABLE record.
type step struct {
	record model.StockRecord
	take   int64
}

// whole reports whether the record is consumed entirely, i.e. flipped rather than split.
func (s step) whole() bool {
	return s.take == s.record.Quantity
}

// plan walks records in the order given and takes greedily until needed is met.
// It returns the steps and the unmet quantity.
func plan(records []model.StockRecord, needed int64) ([]step, int64) {
	steps := make([]step, 0, len(records))
	remaining := needed
	for _, rec := range records {
		if remaining <= 0 {
			break
		}
		if rec.Status != constant.StockStatusAvailable || rec.Quantity <= 0 {
			continue
		}
		take := min(remaining, rec.Quantity)
		steps = append(steps, step{record: rec, take: take})
		remaining -= take
	}
	if remaining < 0 {
		remaining = 0
	}
	return steps, remaining
}

func (a *allocatorImpl) AllocateLineTx(ctx context.Context, tx *sqlx.Tx, waveID uint64, line model.OrderLine) (*model.LineAllocation, error) {
	result := &model.LineAllocation{
		OrderID:     line.OrderID,
		OrderLineID: line.ID,
		ProductID:   line.ProductID,
		Ordered:     line.Quantity,
	}
	if line.Quantity <= 0 {
		return result, nil
	}

	records, err := a.stockRepo.LockAvailableByProductTx(ctx, tx, line.ProductID)
	if err != nil {
		return nil, fmt.Errorf("lock available stock for product %d: %w", line.ProductID, err)
	}

	steps, short := plan(records, line.Quantity)
	res := model.Reservation{WaveID: waveID, OrderLineID: line.ID}

	for _, s := range steps {
		if s.whole() {
			if err := a.stockRepo.MarkAllocatedTx(ctx, tx, s.record.ID, res); err != nil {
				return nil, fmt.Errorf("allocate record %d: %w", s.record.ID, err)
			}
		} else {
			if _, err := a.stockRepo.SplitAllocatedTx(ctx, tx, s.record, s.take, res); err != nil {
				return nil, fmt.Errorf("split record %d: %w", s.record.ID, err)
			}
			result.Splits++
		}
		result.Allocated += s.take
	}
	result.Short = short

	return result, nil
}
