package picking_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms-fulfillment/application/picking"
	"github.com/muhammadheryan/wms-fulfillment/constant"
	ordermocks "github.com/muhammadheryan/wms-fulfillment/mocks/repository/order"
	picklistmocks "github.com/muhammadheryan/wms-fulfillment/mocks/repository/picklist"
	redismocks "github.com/muhammadheryan/wms-fulfillment/mocks/repository/redis"
	stockmocks "github.com/muhammadheryan/wms-fulfillment/mocks/repository/stock"
	txmocks "github.com/muhammadheryan/wms-fulfillment/mocks/repository/tx"
	rabbitmocks "github.com/muhammadheryan/wms-fulfillment/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/wms-fulfillment/model"
	"github.com/muhammadheryan/wms-fulfillment/thirdparty/rabbitmq"
	ctxutil "github.com/muhammadheryan/wms-fulfillment/utils/context"
	cerr "github.com/muhammadheryan/wms-fulfillment/utils/errors"
	"github.com/muhammadheryan/wms-fulfillment/utils/logger"
	"github.com/muhammadheryan/wms-fulfillment/utils/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fields struct {
	txRepo       *txmocks.TxRepository
	picklistRepo *picklistmocks.PickListRepository
	stockRepo    *stockmocks.StockRepository
	orderRepo    *ordermocks.OrderRepository
	redisRepo    *redismocks.Repository
	publisher    *rabbitmocks.EventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:       txmocks.NewTxRepository(t),
		picklistRepo: picklistmocks.NewPickListRepository(t),
		stockRepo:    stockmocks.NewStockRepository(t),
		orderRepo:    ordermocks.NewOrderRepository(t),
		redisRepo:    redismocks.NewRepository(t),
		publisher:    rabbitmocks.NewEventPublisher(t),
	}
}

func (f fields) app(m *metrics.Metrics) picking.PickingApp {
	return picking.NewPickingApp(picking.Dependencies{
		TxRepo:       f.txRepo,
		PickListRepo: f.picklistRepo,
		StockRepo:    f.stockRepo,
		OrderRepo:    f.orderRepo,
		RedisRepo:    f.redisRepo,
		Publisher:    f.publisher,
		Metrics:      m,
	})
}

func pendingTask() *model.PickTask {
	return &model.PickTask{
		ID:             900,
		PickListID:     40,
		OrderLineID:    11,
		StockRecordID:  100,
		ProductID:      5,
		LocationID:     2,
		QuantityToPick: 10,
		Status:         constant.PickTaskStatusPending,
		Sequence:       1,
	}
}

func pendingPickList() *model.PickListEntity {
	return &model.PickListEntity{ID: 40, WaveID: 3, OrderID: 1, Status: constant.PickListStatusPending}
}

var consumeFilter = model.ConsumeFilter{ProductID: 5, LocationID: 2, OrderLineID: 11, PreferRecordID: 100}

func TestPickingApp_ConfirmTask(t *testing.T) {
	tests := []struct {
		name        string
		qty         int64
		mockCall    func(f fields, tx *sqlx.Tx)
		wantErr     bool
		errCode     constant.ErrorType
		wantStatus  constant.PickListStatus
		wantAlready bool
	}{
		{
			name: "success: whole record consumed, pick list complete",
			qty:  10,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.picklistRepo.On("LockTaskTx", mock.Anything, tx, uint64(900)).Return(pendingTask(), nil).Once()
				f.picklistRepo.On("LockPickListTx", mock.Anything, tx, uint64(40)).Return(pendingPickList(), nil).Once()
				f.picklistRepo.On("MarkTaskPickedTx", mock.Anything, tx, uint64(900), int64(10), mock.MatchedBy(func(by *string) bool {
					return by != nil && *by == "op-1"
				}), mock.Anything).Return(nil).Once()
				f.stockRepo.On("LockAllocatedForConsumeTx", mock.Anything, tx, consumeFilter).Return([]model.StockRecord{
					{ID: 100, ProductID: 5, LocationID: 2, Quantity: 10, Status: constant.StockStatusAllocated},
				}, nil).Once()
				f.stockRepo.On("DeleteTx", mock.Anything, tx, uint64(100)).Return(nil).Once()
				f.picklistRepo.On("CountPendingTasksTx", mock.Anything, tx, uint64(40)).Return(0, nil).Once()
				f.picklistRepo.On("UpdatePickListStatusTx", mock.Anything, tx, uint64(40), constant.PickListStatusComplete, mock.AnythingOfType("*time.Time")).Return(nil).Once()
			},
			wantStatus: constant.PickListStatusComplete,
		},
		{
			name: "success: spans records, last one decremented, list in progress",
			qty:  8,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.picklistRepo.On("LockTaskTx", mock.Anything, tx, uint64(900)).Return(pendingTask(), nil).Once()
				f.picklistRepo.On("LockPickListTx", mock.Anything, tx, uint64(40)).Return(pendingPickList(), nil).Once()
				f.picklistRepo.On("MarkTaskPickedTx", mock.Anything, tx, uint64(900), int64(8), mock.Anything, mock.Anything).Return(nil).Once()
				f.stockRepo.On("LockAllocatedForConsumeTx", mock.Anything, tx, consumeFilter).Return([]model.StockRecord{
					{ID: 100, Quantity: 5, Status: constant.StockStatusAllocated},
					{ID: 101, Quantity: 6, Status: constant.StockStatusAllocated},
				}, nil).Once()
				f.stockRepo.On("DeleteTx", mock.Anything, tx, uint64(100)).Return(nil).Once()
				f.stockRepo.On("DecrementTx", mock.Anything, tx, uint64(101), int64(3)).Return(nil).Once()
				f.picklistRepo.On("CountPendingTasksTx", mock.Anything, tx, uint64(40)).Return(2, nil).Once()
				f.picklistRepo.On("UpdatePickListStatusTx", mock.Anything, tx, uint64(40), constant.PickListStatusInProgress, (*time.Time)(nil)).Return(nil).Once()
				f.publisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(e rabbitmq.Event) bool {
					return e.Type == rabbitmq.EventShortPick
				})).Return(nil).Once()
			},
			wantStatus: constant.PickListStatusInProgress,
		},
		{
			name: "success: already picked is a no-op",
			qty:  10,
			mockCall: func(f fields, tx *sqlx.Tx) {
				task := pendingTask()
				task.Status = constant.PickTaskStatusPicked
				task.QuantityPicked = 10
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.picklistRepo.On("LockTaskTx", mock.Anything, tx, uint64(900)).Return(task, nil).Once()
				f.picklistRepo.On("LockPickListTx", mock.Anything, tx, uint64(40)).Return(&model.PickListEntity{ID: 40, Status: constant.PickListStatusComplete}, nil).Once()
			},
			wantStatus:  constant.PickListStatusComplete,
			wantAlready: true,
		},
		{
			name: "success: list already in progress stays in progress",
			qty:  10,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.picklistRepo.On("LockTaskTx", mock.Anything, tx, uint64(900)).Return(pendingTask(), nil).Once()
				f.picklistRepo.On("LockPickListTx", mock.Anything, tx, uint64(40)).Return(&model.PickListEntity{ID: 40, Status: constant.PickListStatusInProgress}, nil).Once()
				f.picklistRepo.On("MarkTaskPickedTx", mock.Anything, tx, uint64(900), int64(10), mock.Anything, mock.Anything).Return(nil).Once()
				f.stockRepo.On("LockAllocatedForConsumeTx", mock.Anything, tx, consumeFilter).Return([]model.StockRecord{{ID: 100, Quantity: 10}}, nil).Once()
				f.stockRepo.On("DeleteTx", mock.Anything, tx, uint64(100)).Return(nil).Once()
				f.picklistRepo.On("CountPendingTasksTx", mock.Anything, tx, uint64(40)).Return(1, nil).Once()
			},
			wantStatus: constant.PickListStatusInProgress,
		},
		{
			name:    "error: zero quantity",
			qty:     0,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: over pick",
			qty:  11,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.picklistRepo.On("LockTaskTx", mock.Anything, tx, uint64(900)).Return(pendingTask(), nil).Once()
				f.picklistRepo.On("LockPickListTx", mock.Anything, tx, uint64(40)).Return(pendingPickList(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: task not found",
			qty:  1,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.picklistRepo.On("LockTaskTx", mock.Anything, tx, uint64(900)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: decrement fails, rolled back",
			qty:  4,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.picklistRepo.On("LockTaskTx", mock.Anything, tx, uint64(900)).Return(pendingTask(), nil).Once()
				f.picklistRepo.On("LockPickListTx", mock.Anything, tx, uint64(40)).Return(pendingPickList(), nil).Once()
				f.picklistRepo.On("MarkTaskPickedTx", mock.Anything, tx, uint64(900), int64(4), mock.Anything, mock.Anything).Return(nil).Once()
				f.stockRepo.On("LockAllocatedForConsumeTx", mock.Anything, tx, consumeFilter).Return([]model.StockRecord{{ID: 100, Quantity: 10}}, nil).Once()
				f.stockRepo.On("DecrementTx", mock.Anything, tx, uint64(100), int64(4)).Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tx := &sqlx.Tx{}
			if tt.mockCall != nil {
				tt.mockCall(f, tx)
			}
			ctx := ctxutil.WithOperatorID(context.Background(), "op-1")

			got, err := f.app(nil).ConfirmTask(ctx, 900, tt.qty)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ConfirmTask() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Task.Status != constant.PickTaskStatusPicked {
				t.Fatalf("ConfirmTask() task status = %s, want PICKED", got.Task.Status)
			}
			if got.PickListStatus != tt.wantStatus {
				t.Fatalf("ConfirmTask() pick list status = %s, want %s", got.PickListStatus, tt.wantStatus)
			}
			if got.AlreadyPicked != tt.wantAlready {
				t.Fatalf("ConfirmTask() already picked = %v, want %v", got.AlreadyPicked, tt.wantAlready)
			}
		})
	}
}

func TestPickingApp_ConfirmTask_IntegrityFault(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.Replace(zap.New(core))
	t.Cleanup(func() { logger.Replace(nil) })

	f := newFields(t)
	tx := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.txRepo.On("RollbackTx", tx).Return(nil).Once()
	f.picklistRepo.On("LockTaskTx", mock.Anything, tx, uint64(900)).Return(pendingTask(), nil).Once()
	f.picklistRepo.On("LockPickListTx", mock.Anything, tx, uint64(40)).Return(pendingPickList(), nil).Once()
	f.picklistRepo.On("MarkTaskPickedTx", mock.Anything, tx, uint64(900), int64(10), mock.Anything, mock.Anything).Return(nil).Once()
	f.stockRepo.On("LockAllocatedForConsumeTx", mock.Anything, tx, consumeFilter).Return([]model.StockRecord{
		{ID: 100, Quantity: 7, Status: constant.StockStatusAllocated},
	}, nil).Once()
	f.stockRepo.On("DeleteTx", mock.Anything, tx, uint64(100)).Return(nil).Once()
	f.publisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(e rabbitmq.Event) bool {
		return e.Type == rabbitmq.EventIntegrityFault
	})).Return(nil).Once()

	m := metrics.New("test")
	_, err := f.app(m).ConfirmTask(context.Background(), 900, 10)

	require.Error(t, err)
	assert.True(t, cerr.IsType(err, constant.ErrIntegrityFault))
	f.txRepo.AssertNotCalled(t, "CommitTx", mock.Anything)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.IntegrityFaults))

	faults := logs.FilterMessage("integrity fault").All()
	require.Len(t, faults, 1)
	assert.Equal(t, zapcore.ErrorLevel, faults[0].Level)
	assert.Equal(t, int64(3), faults[0].ContextMap()["missing"])
	assert.Empty(t, logs.FilterMessageSnippet("shortage").All())
}

func TestPickingApp_ConfirmTask_ShortPick(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.Replace(zap.New(core))
	t.Cleanup(func() { logger.Replace(nil) })

	f := newFields(t)
	tx := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()
	f.picklistRepo.On("LockTaskTx", mock.Anything, tx, uint64(900)).Return(pendingTask(), nil).Once()
	f.picklistRepo.On("LockPickListTx", mock.Anything, tx, uint64(40)).Return(pendingPickList(), nil).Once()
	f.picklistRepo.On("MarkTaskPickedTx", mock.Anything, tx, uint64(900), int64(6), mock.Anything, mock.Anything).Return(nil).Once()
	f.stockRepo.On("LockAllocatedForConsumeTx", mock.Anything, tx, consumeFilter).Return([]model.StockRecord{
		{ID: 100, Quantity: 10, Status: constant.StockStatusAllocated},
	}, nil).Once()
	f.stockRepo.On("DecrementTx", mock.Anything, tx, uint64(100), int64(6)).Return(nil).Once()
	f.picklistRepo.On("CountPendingTasksTx", mock.Anything, tx, uint64(40)).Return(0, nil).Once()
	f.picklistRepo.On("UpdatePickListStatusTx", mock.Anything, tx, uint64(40), constant.PickListStatusComplete, mock.AnythingOfType("*time.Time")).Return(nil).Once()

	var published rabbitmq.Event
	f.publisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(e rabbitmq.Event) bool {
		return e.Type == rabbitmq.EventShortPick
	})).Run(func(args mock.Arguments) {
		published = args.Get(1).(rabbitmq.Event)
	}).Return(nil).Once()

	m := metrics.New("test")
	got, err := f.app(m).ConfirmTask(context.Background(), 900, 6)

	require.NoError(t, err)
	assert.Equal(t, int64(6), got.Task.QuantityPicked)
	assert.Equal(t, constant.PickListStatusComplete, got.PickListStatus)
	assert.Equal(t, float64(4), testutil.ToFloat64(m.UnitsUnpicked))
	assert.Equal(t, float64(6), testutil.ToFloat64(m.UnitsPicked))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TasksConfirmed.WithLabelValues("short_pick")))

	raw, err := json.Marshal(published.Data)
	require.NoError(t, err)
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Equal(t, float64(11), data["order_line_id"])
	assert.Equal(t, float64(10), data["quantity_to_pick"])
	assert.Equal(t, float64(6), data["quantity_picked"])
	assert.Equal(t, float64(4), data["quantity_unpicked"])

	warns := logs.FilterMessage("[ConfirmTask] short pick").All()
	require.Len(t, warns, 1)
	assert.Equal(t, zapcore.WarnLevel, warns[0].Level)
	assert.Equal(t, int64(4), warns[0].ContextMap()["unpicked"])
}

func TestPickingApp_GetPickList(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFields(t)
		f.picklistRepo.On("GetPickList", mock.Anything, uint64(40)).Return(pendingPickList(), nil).Once()
		f.picklistRepo.On("ListTasks", mock.Anything, []uint64{40}).Return([]model.PickTask{*pendingTask()}, nil).Once()

		got, err := f.app(nil).GetPickList(context.Background(), 40)
		require.NoError(t, err)
		assert.Equal(t, uint64(40), got.ID)
		assert.Len(t, got.Tasks, 1)
	})

	t.Run("error: not found", func(t *testing.T) {
		f := newFields(t)
		f.picklistRepo.On("GetPickList", mock.Anything, uint64(40)).Return(nil, nil).Once()

		_, err := f.app(nil).GetPickList(context.Background(), 40)
		assert.True(t, cerr.IsType(err, constant.ErrNotFound))
	})
}

func TestPickingApp_GetOrderPickStatus(t *testing.T) {
	t.Run("ready status is computed and cached", func(t *testing.T) {
		f := newFields(t)
		picked := *pendingTask()
		picked.Status = constant.PickTaskStatusPicked
		f.redisRepo.On("Get", mock.Anything, "pick_status:order:1").Return("", nil).Once()
		f.orderRepo.On("GetOrderDetail", mock.Anything, uint64(1)).Return(&model.OrderDetail{ID: 1}, nil).Once()
		f.picklistRepo.On("ListPickListsByOrder", mock.Anything, uint64(1)).Return([]model.PickListEntity{{ID: 40, OrderID: 1}}, nil).Once()
		f.picklistRepo.On("ListTasks", mock.Anything, []uint64{40}).Return([]model.PickTask{picked}, nil).Once()
		f.redisRepo.On("SetWithTTL", mock.Anything, "pick_status:order:1", mock.Anything, mock.Anything).Return(nil).Once()

		got, err := f.app(nil).GetOrderPickStatus(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, got.ReadyForPacking)
		assert.Equal(t, 1, got.TasksPicked)
	})

	t.Run("pending work is not cached", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("Get", mock.Anything, "pick_status:order:1").Return("", nil).Once()
		f.orderRepo.On("GetOrderDetail", mock.Anything, uint64(1)).Return(&model.OrderDetail{ID: 1}, nil).Once()
		f.picklistRepo.On("ListPickListsByOrder", mock.Anything, uint64(1)).Return([]model.PickListEntity{{ID: 40, OrderID: 1}}, nil).Once()
		f.picklistRepo.On("ListTasks", mock.Anything, []uint64{40}).Return([]model.PickTask{*pendingTask()}, nil).Once()

		got, err := f.app(nil).GetOrderPickStatus(context.Background(), 1)
		require.NoError(t, err)
		assert.False(t, got.ReadyForPacking)
		assert.Equal(t, 1, got.TasksTotal)
	})

	t.Run("served from cache", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("Get", mock.Anything, "pick_status:order:1").
			Return(`{"order_id":1,"pick_lists":[],"tasks_total":2,"tasks_picked":2,"ready_for_packing":true}`, nil).Once()

		got, err := f.app(nil).GetOrderPickStatus(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, got.ReadyForPacking)
		assert.Equal(t, 2, got.TasksTotal)
	})

	t.Run("error: unknown order", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("Get", mock.Anything, "pick_status:order:1").Return("", nil).Once()
		f.orderRepo.On("GetOrderDetail", mock.Anything, uint64(1)).Return(nil, nil).Once()

		_, err := f.app(nil).GetOrderPickStatus(context.Background(), 1)
		assert.True(t, cerr.IsType(err, constant.ErrNotFound))
	})
}
