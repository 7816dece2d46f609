package wave

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms-fulfillment/application/allocation"
	"github.com/muhammadheryan/wms-fulfillment/application/tasks"
	"github.com/muhammadheryan/wms-fulfillment/cmd/config"
	"github.com/muhammadheryan/wms-fulfillment/constant"
	"github.com/muhammadheryan/wms-fulfillment/model"
	orderrepo "github.com/muhammadheryan/wms-fulfillment/repository/order"
	picklistrepo "github.com/muhammadheryan/wms-fulfillment/repository/picklist"
	redisrepo "github.com/muhammadheryan/wms-fulfillment/repository/redis"
	txrepo "github.com/muhammadheryan/wms-fulfillment/repository/tx"
	waverepo "github.com/muhammadheryan/wms-fulfillment/repository/wave"
	"github.com/muhammadheryan/wms-fulfillment/thirdparty/rabbitmq"
	ctxutil "github.com/muhammadheryan/wms-fulfillment/utils/context"
	"github.com/muhammadheryan/wms-fulfillment/utils/errors"
	"github.com/muhammadheryan/wms-fulfillment/utils/logger"
	"github.com/muhammadheryan/wms-fulfillment/utils/metrics"
	"go.uber.org/zap"
)

type WaveApp interface {
	CreateWave(ctx context.Context, req *model.CreateWaveRequest) (*model.WaveEntity, error)
	GetWave(ctx context.Context, waveID uint64) (*model.WaveDetail, error)
	Allocate(ctx context.Context, waveID uint64, orderIDs []uint64) (*model.AllocationResult, error)
	Release(ctx context.Context, waveID uint64, orderIDs []uint64) (*model.ReleaseResult, error)
}

type waveAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	waveRepo     waverepo.WaveRepository
	orderRepo    orderrepo.OrderRepository
	picklistRepo picklistrepo.PickListRepository
	redisRepo    redisrepo.Repository
	allocator    allocation.Allocator
	taskGen      tasks.TaskGenerator
	publisher    rabbitmq.EventPublisher
	metrics      *metrics.Metrics
}

type Dependencies struct {
	TxRepo       txrepo.TxRepository
	WaveRepo     waverepo.WaveRepository
	OrderRepo    orderrepo.OrderRepository
	PickListRepo picklistrepo.PickListRepository
	RedisRepo    redisrepo.Repository
	Allocator    allocation.Allocator
	TaskGen      tasks.TaskGenerator
	Publisher    rabbitmq.EventPublisher
	Metrics      *metrics.Metrics
}

func NewWaveApp(config *config.Config, deps Dependencies) WaveApp {
	return &waveAppImpl{
		config:       config,
		txRepo:       deps.TxRepo,
		waveRepo:     deps.WaveRepo,
		orderRepo:    deps.OrderRepo,
		picklistRepo: deps.PickListRepo,
		redisRepo:    deps.RedisRepo,
		allocator:    deps.Allocator,
		taskGen:      deps.TaskGen,
		publisher:    deps.Publisher,
		metrics:      deps.Metrics,
	}
}

func (s *waveAppImpl) CreateWave(ctx context.Context, req *model.CreateWaveRequest) (*model.WaveEntity, error) {
	now := time.Now().UTC()
	if req.CutoffAt != nil && !req.CutoffAt.After(now) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	operatorID, _ := ctxutil.GetOperatorID(ctx)
	wave, err := s.waveRepo.InsertWave(ctx, &model.WaveEntity{
		Name:      req.Name,
		Status:    constant.WaveStatusPlanned,
		CreatedBy: operatorID,
		CreatedAt: now,
		CutoffAt:  req.CutoffAt,
	})
	if err != nil {
		logger.Error("[CreateWave] insert wave", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.metrics.RecordWaveTransition(string(constant.WaveStatusPlanned))
	logger.Info("[CreateWave] wave created", zap.Uint64("wave_id", wave.ID), zap.String("created_by", operatorID))
	return wave, nil
}

func (s *waveAppImpl) GetWave(ctx context.Context, waveID uint64) (*model.WaveDetail, error) {
	wave, err := s.waveRepo.GetWave(ctx, waveID)
	if err != nil {
		logger.Error("[GetWave] get wave", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if wave == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	orderIDs, err := s.waveRepo.ListWaveOrders(ctx, waveID)
	if err != nil {
		logger.Error("[GetWave] list wave orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	shortages, err := s.waveRepo.ListShortages(ctx, waveID)
	if err != nil {
		logger.Error("[GetWave] list shortages", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.WaveDetail{WaveEntity: *wave, OrderIDs: orderIDs, Shortages: shortages}, nil
}

// Allocate reserves stock for every line of the given orders, one transaction per
// order, then moves the wave to ALLOCATED. Orders already allocated in this wave are
// skipped so a failed run can be repeated.
func (s *waveAppImpl) Allocate(ctx context.Context, waveID uint64, orderIDs []uint64) (*model.AllocationResult, error) {
	unlock, err := s.lockWave(ctx, "Allocate", waveID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	wave, err := s.requireWave(ctx, "Allocate", waveID, constant.WaveStatusPlanned)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireOrders(ctx, "Allocate", orderIDs); err != nil {
		return nil, err
	}

	result := &model.AllocationResult{WaveID: waveID, Lines: make([]model.LineAllocation, 0)}
	var shortages []model.Shortage
	for _, orderID := range orderIDs {
		lines, skipped, err := s.allocateOrder(ctx, waveID, orderID)
		if err != nil {
			return nil, err
		}
		if skipped {
			result.SkippedOrders = append(result.SkippedOrders, orderID)
			continue
		}
		for _, l := range lines {
			result.Lines = append(result.Lines, l.LineAllocation)
			result.TotalShort += l.Short
			if l.shortage != nil {
				shortages = append(shortages, *l.shortage)
			}
		}
	}

	updated, err := s.transition(ctx, "Allocate", waveID, constant.WaveStatusPlanned, constant.WaveStatusAllocated)
	if err != nil {
		return nil, err
	}
	result.Status = updated.Status

	s.publish(ctx, "Allocate", rabbitmq.NewEvent(rabbitmq.EventWaveAllocated, result))
	for _, sh := range shortages {
		s.publish(ctx, "Allocate", rabbitmq.NewEvent(rabbitmq.EventShortage, sh))
	}
	if wave.CutoffAt != nil {
		s.scheduleCutoff(ctx, waveID, *wave.CutoffAt)
	}

	return result, nil
}

type allocatedLine struct {
	model.LineAllocation
	shortage *model.Shortage
}

func (s *waveAppImpl) allocateOrder(ctx context.Context, waveID, orderID uint64) ([]allocatedLine, bool, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Allocate] begin tx", zap.String("error", err.Error()))
		return nil, false, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.lockWaveStateTx(ctx, tx, "Allocate", waveID, constant.WaveStatusPlanned); err != nil {
		return nil, false, err
	}

	// an order belongs to at most one wave
	currentWave, found, err := s.waveRepo.GetOrderWaveTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[Allocate] get order wave", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, false, errors.SetCustomError(constant.ErrInternal)
	}
	if found {
		if currentWave == waveID {
			logger.Info("[Allocate] order already allocated, skipping", zap.Uint64("wave_id", waveID), zap.Uint64("order_id", orderID))
			return nil, true, nil
		}
		logger.Info("[Allocate] order belongs to another wave", zap.Uint64("order_id", orderID), zap.Uint64("other_wave_id", currentWave))
		return nil, false, errors.SetCustomError(constant.ErrInvalidState)
	}

	lines, err := s.orderRepo.GetOrderLinesTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[Allocate] get order lines", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, false, errors.SetCustomError(constant.ErrInternal)
	}
	// product order keeps row locks acquired in the same sequence across concurrent waves
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].ProductID != lines[j].ProductID {
			return lines[i].ProductID < lines[j].ProductID
		}
		return lines[i].ID < lines[j].ID
	})

	now := time.Now().UTC()
	out := make([]allocatedLine, 0, len(lines))
	for _, line := range lines {
		alloc, err := s.allocator.AllocateLineTx(ctx, tx, waveID, line)
		if err != nil {
			logger.Error("[Allocate] allocate line", zap.Uint64("order_id", orderID), zap.Uint64("product_id", line.ProductID), zap.String("error", err.Error()))
			return nil, false, errors.SetCustomError(constant.ErrInternal)
		}

		al := allocatedLine{LineAllocation: *alloc}
		if alloc.Short > 0 {
			shortage := &model.Shortage{
				WaveID:      waveID,
				OrderID:     orderID,
				OrderLineID: line.ID,
				ProductID:   line.ProductID,
				Ordered:     alloc.Ordered,
				Allocated:   alloc.Allocated,
				Short:       alloc.Short,
				CreatedAt:   now,
			}
			if err := s.waveRepo.InsertShortageTx(ctx, tx, shortage); err != nil {
				logger.Error("[Allocate] insert shortage", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
				return nil, false, errors.SetCustomError(constant.ErrInternal)
			}
			al.shortage = shortage
		}
		out = append(out, al)
	}

	if err := s.waveRepo.InsertWaveOrderTx(ctx, tx, waveID, orderID); err != nil {
		logger.Error("[Allocate] insert wave order", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, false, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Allocate] commit tx", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, false, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	for _, l := range out {
		s.metrics.RecordAllocation(l.Allocated, l.Short, l.Splits)
		if l.Short > 0 {
			logger.Warn("[Allocate] shortage",
				zap.Uint64("wave_id", waveID),
				zap.Uint64("order_id", orderID),
				zap.Uint64("order_line_id", l.OrderLineID),
				zap.Uint64("product_id", l.ProductID),
				zap.Int64("ordered", l.Ordered),
				zap.Int64("short", l.Short))
		}
	}
	return out, false, nil
}

// Release creates one pick list per order with its tasks, one transaction per order,
// then moves the wave to RELEASED. Orders that already have a pick list are skipped.
func (s *waveAppImpl) Release(ctx context.Context, waveID uint64, orderIDs []uint64) (*model.ReleaseResult, error) {
	unlock, err := s.lockWave(ctx, "Release", waveID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, err := s.requireWave(ctx, "Release", waveID, constant.WaveStatusAllocated); err != nil {
		return nil, err
	}
	orders, err := s.requireOrders(ctx, "Release", orderIDs)
	if err != nil {
		return nil, err
	}
	for _, orderID := range orderIDs {
		member, err := s.waveRepo.IsWaveOrder(ctx, waveID, orderID)
		if err != nil {
			logger.Error("[Release] check wave order", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if !member {
			logger.Info("[Release] order not in wave", zap.Uint64("wave_id", waveID), zap.Uint64("order_id", orderID))
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
	}

	result := &model.ReleaseResult{WaveID: waveID, PickLists: make([]model.PickListDetail, 0, len(orderIDs))}
	for _, orderID := range orderIDs {
		detail, err := s.releaseOrder(ctx, waveID, orders[orderID])
		if err != nil {
			return nil, err
		}
		if detail == nil {
			result.SkippedOrders = append(result.SkippedOrders, orderID)
			continue
		}
		result.PickLists = append(result.PickLists, *detail)
	}

	updated, err := s.transition(ctx, "Release", waveID, constant.WaveStatusAllocated, constant.WaveStatusReleased)
	if err != nil {
		return nil, err
	}
	result.Status = updated.Status

	s.publish(ctx, "Release", rabbitmq.NewEvent(rabbitmq.EventWaveReleased, result))
	return result, nil
}

// releaseOrder returns nil when the order already has a pick list in this wave.
func (s *waveAppImpl) releaseOrder(ctx context.Context, waveID uint64, order *model.OrderDetail) (*model.PickListDetail, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Release] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.lockWaveStateTx(ctx, tx, "Release", waveID, constant.WaveStatusAllocated); err != nil {
		return nil, err
	}

	existing, err := s.picklistRepo.GetPickListByWaveOrderTx(ctx, tx, waveID, order.ID)
	if err != nil {
		logger.Error("[Release] get pick list", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		logger.Info("[Release] order already released, skipping", zap.Uint64("wave_id", waveID), zap.Uint64("order_id", order.ID))
		return nil, nil
	}

	lines, err := s.orderRepo.GetOrderLinesTx(ctx, tx, order.ID)
	if err != nil {
		logger.Error("[Release] get order lines", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	pickList, err := s.picklistRepo.InsertPickListTx(ctx, tx, &model.PickListEntity{
		WaveID:    waveID,
		OrderID:   order.ID,
		Status:    constant.PickListStatusPending,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		logger.Error("[Release] insert pick list", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	generated, err := s.taskGen.GenerateTasksForOrderTx(ctx, tx, &model.OrderWithLines{OrderDetail: *order, Lines: lines}, pickList)
	if err != nil {
		logger.Error("[Release] generate tasks", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Release] commit tx", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.metrics.RecordTasksGenerated(len(generated))
	return &model.PickListDetail{PickListEntity: *pickList, Tasks: generated}, nil
}

// requireWave loads the wave and checks it is in the expected state.
func (s *waveAppImpl) requireWave(ctx context.Context, op string, waveID uint64, want constant.WaveStatus) (*model.WaveEntity, error) {
	wave, err := s.waveRepo.GetWave(ctx, waveID)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] get wave", op), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if wave == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if wave.Status != want {
		logger.Info(fmt.Sprintf("[%s] wave in wrong state", op), zap.Uint64("wave_id", waveID), zap.String("status", string(wave.Status)))
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}
	return wave, nil
}

// lockWaveStateTx holds the wave row for the rest of tx and fails unless the wave
// is still in want. A concurrent transition cannot slip in before tx commits.
func (s *waveAppImpl) lockWaveStateTx(ctx context.Context, tx *sqlx.Tx, op string, waveID uint64, want constant.WaveStatus) error {
	wave, err := s.waveRepo.LockWaveTx(ctx, tx, waveID)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] lock wave", op), zap.Uint64("wave_id", waveID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if wave == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if wave.Status != want {
		logger.Info(fmt.Sprintf("[%s] wave left %s during operation", op, want), zap.Uint64("wave_id", waveID), zap.String("status", string(wave.Status)))
		return errors.SetCustomError(constant.ErrInvalidState)
	}
	return nil
}

// requireOrders fails with ErrNotFound before any mutation if one order is missing.
func (s *waveAppImpl) requireOrders(ctx context.Context, op string, orderIDs []uint64) (map[uint64]*model.OrderDetail, error) {
	if len(orderIDs) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	orders := make(map[uint64]*model.OrderDetail, len(orderIDs))
	for _, orderID := range orderIDs {
		order, err := s.orderRepo.GetOrderDetail(ctx, orderID)
		if err != nil {
			logger.Error(fmt.Sprintf("[%s] get order detail", op), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if order == nil {
			logger.Info(fmt.Sprintf("[%s] order not found", op), zap.Uint64("order_id", orderID))
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		orders[orderID] = order
	}
	return orders, nil
}

// transition moves the wave under a row lock; the update only applies if the
// status is still from.
func (s *waveAppImpl) transition(ctx context.Context, op string, waveID uint64, from, to constant.WaveStatus) (*model.WaveEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] begin tx", op), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	wave, err := s.waveRepo.LockWaveTx(ctx, tx, waveID)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] lock wave", op), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if wave == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if wave.Status != from || !wave.Status.CanTransition(to) {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	now := time.Now().UTC()
	if err := s.waveRepo.UpdateWaveStatusTx(ctx, tx, waveID, from, to, now); err != nil {
		logger.Error(fmt.Sprintf("[%s] update wave status", op), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error(fmt.Sprintf("[%s] commit tx", op), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	wave.Status = to
	switch to {
	case constant.WaveStatusAllocated:
		wave.AllocatedAt = &now
	case constant.WaveStatusReleased:
		wave.ReleasedAt = &now
	}
	s.metrics.RecordWaveTransition(string(to))
	logger.Info(fmt.Sprintf("[%s] wave transitioned", op), zap.Uint64("wave_id", waveID), zap.String("from", string(from)), zap.String("to", string(to)))
	return wave, nil
}

func waveLockKey(waveID uint64) string {
	return fmt.Sprintf("lock:wave:%d", waveID)
}

func (s *waveAppImpl) lockWave(ctx context.Context, op string, waveID uint64) (func(), error) {
	key := waveLockKey(waveID)
	token := uuid.NewString()
	ok, err := s.redisRepo.AcquireLock(ctx, key, token, s.config.Wave.LockTTL)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] acquire wave lock", op), zap.Uint64("wave_id", waveID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrOperationInProgress)
	}
	return func() {
		if err := s.redisRepo.ReleaseLock(context.WithoutCancel(ctx), key, token); err != nil {
			logger.Warn(fmt.Sprintf("[%s] release wave lock", op), zap.Uint64("wave_id", waveID), zap.String("error", err.Error()))
		}
	}, nil
}

// publish is best effort; state is already committed when it runs.
func (s *waveAppImpl) publish(ctx context.Context, op string, event rabbitmq.Event) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishEvent(ctx, event)
	s.metrics.RecordEventPublished(event.Type, err == nil)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] publish event", op), zap.String("event_type", event.Type), zap.String("error", err.Error()))
	}
}

func (s *waveAppImpl) scheduleCutoff(ctx context.Context, waveID uint64, cutoffAt time.Time) {
	if s.publisher == nil {
		return
	}
	orderIDs, err := s.waveRepo.ListWaveOrders(ctx, waveID)
	if err != nil {
		logger.Error("[Allocate] list wave orders for cutoff", zap.String("error", err.Error()))
		return
	}
	msg := rabbitmq.WaveCutoffMessage{WaveID: waveID, OrderIDs: orderIDs, CutoffAt: cutoffAt}
	if err := s.publisher.PublishWaveCutoff(ctx, msg); err != nil {
		logger.Error("[Allocate] publish wave cutoff", zap.Uint64("wave_id", waveID), zap.String("error", err.Error()))
	}
}
