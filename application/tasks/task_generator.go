package tasks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms-fulfillment/constant"
	"github.com/muhammadheryan/wms-fulfillment/model"
	picklistrepo "github.com/muhammadheryan/wms-fulfillment/repository/picklist"
	stockrepo "github.com/muhammadheryan/wms-fulfillment/repository/stock"
)

// TaskGenerator turns the stock reserved for an order into pick tasks. It has no
// effect on inventory.
type TaskGenerator interface {
	GenerateTasksForOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderWithLines, pickList *model.PickListEntity) ([]model.PickTask, error)
}

type taskGeneratorImpl struct {
	stockRepo    stockrepo.StockRepository
	picklistRepo picklistrepo.PickListRepository
}

func NewTaskGenerator(stockRepo stockrepo.StockRepository, picklistRepo picklistrepo.PickListRepository) TaskGenerator {
	return &taskGeneratorImpl{
		stockRepo:    stockRepo,
		picklistRepo: picklistRepo,
	}
}

func (g *taskGeneratorImpl) GenerateTasksForOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderWithLines, pickList *model.PickListEntity) ([]model.PickTask, error) {
	reserved := make(map[uint64][]model.StockRecord, len(order.Lines))
	for _, line := range order.Lines {
		records, err := g.stockRepo.ListAllocatedByLineTx(ctx, tx, pickList.WaveID, line.ID)
		if err != nil {
			return nil, fmt.Errorf("list allocated stock for line %d: %w", line.ID, err)
		}
		reserved[line.ID] = records
	}

	tasks := buildTasks(pickList.ID, order.Lines, reserved)
	if len(tasks) == 0 {
		return tasks, nil
	}

	return g.picklistRepo.InsertPickTasksTx(ctx, tx, tasks)
}

// buildTasks emits one task per reserved record, in line order, until each line's
// ordered quantity is covered. Sequence starts at 1 and never repeats within the list.
func buildTasks(pickListID uint64, lines []model.OrderLine, reserved map[uint64][]model.StockRecord) []model.PickTask {
	tasks := make([]model.PickTask, 0, len(lines))
	seq := 0
	for _, line := range lines {
		needed := line.Quantity
		for _, rec := range reserved[line.ID] {
			if needed <= 0 {
				break
			}
			if rec.Quantity <= 0 {
				continue
			}
			qty := min(needed, rec.Quantity)
			seq++
			tasks = append(tasks, model.PickTask{
				PickListID:     pickListID,
				OrderLineID:    line.ID,
				StockRecordID:  rec.ID,
				ProductID:      line.ProductID,
				LocationID:     rec.LocationID,
				QuantityToPick: qty,
				Status:         constant.PickTaskStatusPending,
				Sequence:       seq,
			})
			needed -= qty
		}
	}
	return tasks
}
