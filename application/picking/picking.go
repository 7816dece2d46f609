package picking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms-fulfillment/constant"
	"github.com/muhammadheryan/wms-fulfillment/model"
	orderrepo "github.com/muhammadheryan/wms-fulfillment/repository/order"
	picklistrepo "github.com/muhammadheryan/wms-fulfillment/repository/picklist"
	redisrepo "github.com/muhammadheryan/wms-fulfillment/repository/redis"
	stockrepo "github.com/muhammadheryan/wms-fulfillment/repository/stock"
	txrepo "github.com/muhammadheryan/wms-fulfillment/repository/tx"
	"github.com/muhammadheryan/wms-fulfillment/thirdparty/rabbitmq"
	ctxutil "github.com/muhammadheryan/wms-fulfillment/utils/context"
	"github.com/muhammadheryan/wms-fulfillment/utils/errors"
	"github.com/muhammadheryan/wms-fulfillment/utils/logger"
	"github.com/muhammadheryan/wms-fulfillment/utils/metrics"
	"go.uber.org/zap"
)

// pick status is only cached once ready, after which it cannot change
const pickStatusCacheTTL = 24 * time.Hour

const (
	outcomePicked        = "picked"
	outcomeShortPick     = "short_pick"
	outcomeAlreadyPicked = "already_picked"
	outcomeIntegrity     = "integrity_fault"
)

type PickingApp interface {
	ConfirmTask(ctx context.Context, taskID uint64, quantityPicked int64) (*model.ConfirmTaskResponse, error)
	GetPickList(ctx context.Context, pickListID uint64) (*model.PickListDetail, error)
	GetOrderPickStatus(ctx context.Context, orderID uint64) (*model.OrderPickStatus, error)
}

type pickingAppImpl struct {
	txRepo       txrepo.TxRepository
	picklistRepo picklistrepo.PickListRepository
	stockRepo    stockrepo.StockRepository
	orderRepo    orderrepo.OrderRepository
	redisRepo    redisrepo.Repository
	publisher    rabbitmq.EventPublisher
	metrics      *metrics.Metrics
}

type Dependencies struct {
	TxRepo       txrepo.TxRepository
	PickListRepo picklistrepo.PickListRepository
	StockRepo    stockrepo.StockRepository
	OrderRepo    orderrepo.OrderRepository
	RedisRepo    redisrepo.Repository
	Publisher    rabbitmq.EventPublisher
	Metrics      *metrics.Metrics
}

func NewPickingApp(deps Dependencies) PickingApp {
	return &pickingAppImpl{
		txRepo:       deps.TxRepo,
		picklistRepo: deps.PickListRepo,
		stockRepo:    deps.StockRepo,
		orderRepo:    deps.OrderRepo,
		redisRepo:    deps.RedisRepo,
		publisher:    deps.Publisher,
		metrics:      deps.Metrics,
	}
}

// integrityFault describes a confirmation that found less reserved stock than picked.
type integrityFault struct {
	TaskID      uint64 `json:"task_id"`
	PickListID  uint64 `json:"pick_list_id"`
	OrderLineID uint64 `json:"order_line_id"`
	ProductID   uint64 `json:"product_id"`
	LocationID  uint64 `json:"location_id"`
	Picked      int64  `json:"quantity_picked"`
	Missing     int64  `json:"quantity_missing"`
}

// shortPick reports units left ALLOCATED to a line after its task closed short.
type shortPick struct {
	TaskID      uint64 `json:"task_id"`
	PickListID  uint64 `json:"pick_list_id"`
	OrderLineID uint64 `json:"order_line_id"`
	ProductID   uint64 `json:"product_id"`
	LocationID  uint64 `json:"location_id"`
	ToPick      int64  `json:"quantity_to_pick"`
	Picked      int64  `json:"quantity_picked"`
	Unpicked    int64  `json:"quantity_unpicked"`
}

// ConfirmTask closes a task and consumes the stock reserved for it in one
// transaction. Confirming an already picked task changes nothing.
func (s *pickingAppImpl) ConfirmTask(ctx context.Context, taskID uint64, quantityPicked int64) (*model.ConfirmTaskResponse, error) {
	if quantityPicked <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ConfirmTask] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	task, err := s.picklistRepo.LockTaskTx(ctx, tx, taskID)
	if err != nil {
		logger.Error("[ConfirmTask] lock task", zap.Uint64("task_id", taskID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if task == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	pickList, err := s.picklistRepo.LockPickListTx(ctx, tx, task.PickListID)
	if err != nil {
		logger.Error("[ConfirmTask] lock pick list", zap.Uint64("pick_list_id", task.PickListID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if pickList == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if task.Status == constant.PickTaskStatusPicked {
		s.metrics.RecordTaskConfirmed(outcomeAlreadyPicked, 0)
		logger.Info("[ConfirmTask] task already picked", zap.Uint64("task_id", taskID))
		return &model.ConfirmTaskResponse{Task: *task, PickListStatus: pickList.Status, AlreadyPicked: true}, nil
	}
	if quantityPicked > task.QuantityToPick {
		logger.Info("[ConfirmTask] over pick rejected", zap.Uint64("task_id", taskID), zap.Int64("to_pick", task.QuantityToPick), zap.Int64("picked", quantityPicked))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	now := time.Now().UTC()
	var pickedBy *string
	if operatorID, ok := ctxutil.GetOperatorID(ctx); ok {
		pickedBy = &operatorID
	}
	if err := s.picklistRepo.MarkTaskPickedTx(ctx, tx, taskID, quantityPicked, pickedBy, now); err != nil {
		logger.Error("[ConfirmTask] mark task picked", zap.Uint64("task_id", taskID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	missing, err := s.consumeTx(ctx, tx, task, quantityPicked)
	if err != nil {
		logger.Error("[ConfirmTask] consume stock", zap.Uint64("task_id", taskID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if missing > 0 {
		fault := integrityFault{
			TaskID:      task.ID,
			PickListID:  task.PickListID,
			OrderLineID: task.OrderLineID,
			ProductID:   task.ProductID,
			LocationID:  task.LocationID,
			Picked:      quantityPicked,
			Missing:     missing,
		}
		// nothing of this confirmation may persist
		_ = s.txRepo.RollbackTx(tx)
		committed = true

		logger.Error("integrity fault",
			zap.Uint64("task_id", fault.TaskID),
			zap.Uint64("order_line_id", fault.OrderLineID),
			zap.Uint64("product_id", fault.ProductID),
			zap.Uint64("location_id", fault.LocationID),
			zap.Int64("picked", fault.Picked),
			zap.Int64("missing", fault.Missing))
		s.metrics.RecordIntegrityFault()
		s.metrics.RecordTaskConfirmed(outcomeIntegrity, 0)
		s.publish(ctx, rabbitmq.NewEvent(rabbitmq.EventIntegrityFault, fault))
		return nil, errors.SetCustomError(constant.ErrIntegrityFault)
	}

	status, err := s.advancePickListTx(ctx, tx, pickList, now)
	if err != nil {
		logger.Error("[ConfirmTask] update pick list", zap.Uint64("pick_list_id", pickList.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ConfirmTask] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	outcome := outcomePicked
	if quantityPicked < task.QuantityToPick {
		outcome = outcomeShortPick
		short := shortPick{
			TaskID:      task.ID,
			PickListID:  task.PickListID,
			OrderLineID: task.OrderLineID,
			ProductID:   task.ProductID,
			LocationID:  task.LocationID,
			ToPick:      task.QuantityToPick,
			Picked:      quantityPicked,
			Unpicked:    task.QuantityToPick - quantityPicked,
		}
		logger.Warn("[ConfirmTask] short pick",
			zap.Uint64("task_id", taskID),
			zap.Uint64("order_line_id", short.OrderLineID),
			zap.Int64("to_pick", short.ToPick),
			zap.Int64("picked", short.Picked),
			zap.Int64("unpicked", short.Unpicked))
		// the unpicked units remain ALLOCATED to the line with no task
		s.metrics.RecordShortPick(short.Unpicked)
		s.publish(ctx, rabbitmq.NewEvent(rabbitmq.EventShortPick, short))
	}
	s.metrics.RecordTaskConfirmed(outcome, quantityPicked)

	task.Status = constant.PickTaskStatusPicked
	task.QuantityPicked = quantityPicked
	task.PickedBy = pickedBy
	task.PickedAt = &now
	return &model.ConfirmTaskResponse{Task: *task, PickListStatus: status}, nil
}

// consumeTx removes quantity units from the stock reserved for the task's line at
// the task's location, starting with the task's own record. It returns the units
// that could not be found.
func (s *pickingAppImpl) consumeTx(ctx context.Context, tx *sqlx.Tx, task *model.PickTask, quantity int64) (int64, error) {
	records, err := s.stockRepo.LockAllocatedForConsumeTx(ctx, tx, model.ConsumeFilter{
		ProductID:      task.ProductID,
		LocationID:     task.LocationID,
		OrderLineID:    task.OrderLineID,
		PreferRecordID: task.StockRecordID,
	})
	if err != nil {
		return 0, err
	}

	remaining := quantity
	for _, rec := range records {
		if remaining == 0 {
			break
		}
		if rec.Quantity <= remaining {
			if err := s.stockRepo.DeleteTx(ctx, tx, rec.ID); err != nil {
				return 0, fmt.Errorf("delete record %d: %w", rec.ID, err)
			}
			remaining -= rec.Quantity
			continue
		}
		if err := s.stockRepo.DecrementTx(ctx, tx, rec.ID, remaining); err != nil {
			return 0, fmt.Errorf("decrement record %d: %w", rec.ID, err)
		}
		remaining = 0
	}
	return remaining, nil
}

func (s *pickingAppImpl) advancePickListTx(ctx context.Context, tx *sqlx.Tx, pickList *model.PickListEntity, now time.Time) (constant.PickListStatus, error) {
	pending, err := s.picklistRepo.CountPendingTasksTx(ctx, tx, pickList.ID)
	if err != nil {
		return "", err
	}

	next := constant.PickListStatusInProgress
	var completedAt *time.Time
	if pending == 0 {
		next = constant.PickListStatusComplete
		completedAt = &now
	}
	if !pickList.Status.CanTransition(next) {
		return pickList.Status, nil
	}
	if err := s.picklistRepo.UpdatePickListStatusTx(ctx, tx, pickList.ID, next, completedAt); err != nil {
		return "", err
	}
	return next, nil
}

func (s *pickingAppImpl) GetPickList(ctx context.Context, pickListID uint64) (*model.PickListDetail, error) {
	pickList, err := s.picklistRepo.GetPickList(ctx, pickListID)
	if err != nil {
		logger.Error("[GetPickList] get pick list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if pickList == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tasks, err := s.picklistRepo.ListTasks(ctx, []uint64{pickListID})
	if err != nil {
		logger.Error("[GetPickList] list tasks", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.PickListDetail{PickListEntity: *pickList, Tasks: tasks}, nil
}

func pickStatusKey(orderID uint64) string {
	return fmt.Sprintf("pick_status:order:%d", orderID)
}

// GetOrderPickStatus answers the packing poll: an order is ready once it has pick
// work and every task of it is PICKED.
func (s *pickingAppImpl) GetOrderPickStatus(ctx context.Context, orderID uint64) (*model.OrderPickStatus, error) {
	key := pickStatusKey(orderID)
	cached, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		logger.Warn("[GetOrderPickStatus] read cache", zap.String("error", err.Error()))
	}
	if cached != "" {
		var status model.OrderPickStatus
		if err := json.Unmarshal([]byte(cached), &status); err == nil {
			return &status, nil
		}
	}

	order, err := s.orderRepo.GetOrderDetail(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrderPickStatus] get order detail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	pickLists, err := s.picklistRepo.ListPickListsByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrderPickStatus] list pick lists", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	ids := make([]uint64, 0, len(pickLists))
	for _, pl := range pickLists {
		ids = append(ids, pl.ID)
	}
	tasks, err := s.picklistRepo.ListTasks(ctx, ids)
	if err != nil {
		logger.Error("[GetOrderPickStatus] list tasks", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	status := &model.OrderPickStatus{OrderID: orderID, PickLists: pickLists, TasksTotal: len(tasks)}
	for _, t := range tasks {
		if t.Status == constant.PickTaskStatusPicked {
			status.TasksPicked++
		}
	}
	status.ReadyForPacking = status.TasksTotal > 0 && status.TasksPicked == status.TasksTotal

	if status.ReadyForPacking {
		if b, err := json.Marshal(status); err == nil {
			if err := s.redisRepo.SetWithTTL(ctx, key, string(b), pickStatusCacheTTL); err != nil {
				logger.Warn("[GetOrderPickStatus] write cache", zap.String("error", err.Error()))
			}
		}
	}
	return status, nil
}

func (s *pickingAppImpl) publish(ctx context.Context, event rabbitmq.Event) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishEvent(ctx, event)
	s.metrics.RecordEventPublished(event.Type, err == nil)
	if err != nil {
		logger.Error("[ConfirmTask] publish event", zap.String("event_type", event.Type), zap.String("error", err.Error()))
	}
}
