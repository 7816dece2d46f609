package wave_test

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms-fulfillment/application/allocation"
	"github.com/muhammadheryan/wms-fulfillment/application/picking"
	"github.com/muhammadheryan/wms-fulfillment/application/tasks"
	appwave "github.com/muhammadheryan/wms-fulfillment/application/wave"
	"github.com/muhammadheryan/wms-fulfillment/cmd/config"
	"github.com/muhammadheryan/wms-fulfillment/constant"
	"github.com/muhammadheryan/wms-fulfillment/model"
	redisrepo "github.com/muhammadheryan/wms-fulfillment/repository/redis"
	cerr "github.com/muhammadheryan/wms-fulfillment/utils/errors"
	"github.com/muhammadheryan/wms-fulfillment/utils/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories for running allocation, release and picking together.
// Seed stock carries no expiry or lot, so FEFO order is id order.

func u64(v uint64) *uint64 { return &v }

type memTx struct{}

func (memTx) BeginTx(ctx context.Context) (*sqlx.Tx, error) { return &sqlx.Tx{}, nil }
func (memTx) CommitTx(tx *sqlx.Tx) error                   { return nil }
func (memTx) RollbackTx(tx *sqlx.Tx) error                 { return nil }

type memStock struct {
	nextID  uint64
	records map[uint64]*model.StockRecord
}

func newMemStock(records ...model.StockRecord) *memStock {
	m := &memStock{records: make(map[uint64]*model.StockRecord)}
	for i := range records {
		rec := records[i]
		m.records[rec.ID] = &rec
		if rec.ID > m.nextID {
			m.nextID = rec.ID
		}
	}
	return m
}

func (m *memStock) filter(keep func(model.StockRecord) bool) []model.StockRecord {
	out := make([]model.StockRecord, 0)
	for _, rec := range m.records {
		if keep(*rec) {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memStock) all() []model.StockRecord {
	return m.filter(func(model.StockRecord) bool { return true })
}

func (m *memStock) total(productID uint64) int64 {
	var sum int64
	for _, rec := range m.records {
		if rec.ProductID == productID {
			sum += rec.Quantity
		}
	}
	return sum
}

func (m *memStock) LockAvailableByProductTx(ctx context.Context, tx *sqlx.Tx, productID uint64) ([]model.StockRecord, error) {
	return m.filter(func(r model.StockRecord) bool {
		return r.ProductID == productID && r.Status == constant.StockStatusAvailable && r.Quantity > 0
	}), nil
}

func (m *memStock) MarkAllocatedTx(ctx context.Context, tx *sqlx.Tx, recordID uint64, res model.Reservation) error {
	rec, ok := m.records[recordID]
	if !ok || rec.Status != constant.StockStatusAvailable {
		return fmt.Errorf("mark allocated: record %d not available", recordID)
	}
	rec.Status = constant.StockStatusAllocated
	rec.WaveID = u64(res.WaveID)
	rec.OrderLineID = u64(res.OrderLineID)
	return nil
}

func (m *memStock) SplitAllocatedTx(ctx context.Context, tx *sqlx.Tx, source model.StockRecord, take int64, res model.Reservation) (uint64, error) {
	rec, ok := m.records[source.ID]
	if !ok || rec.Status != constant.StockStatusAvailable || rec.Quantity <= take {
		return 0, fmt.Errorf("split: record %d cannot give %d", source.ID, take)
	}
	rec.Quantity -= take
	m.nextID++
	m.records[m.nextID] = &model.StockRecord{
		ID:          m.nextID,
		ProductID:   rec.ProductID,
		LocationID:  rec.LocationID,
		Quantity:    take,
		Lot:         rec.Lot,
		ExpiresAt:   rec.ExpiresAt,
		Status:      constant.StockStatusAllocated,
		WaveID:      u64(res.WaveID),
		OrderLineID: u64(res.OrderLineID),
	}
	return m.nextID, nil
}

func (m *memStock) ListAllocatedByLineTx(ctx context.Context, tx *sqlx.Tx, waveID, orderLineID uint64) ([]model.StockRecord, error) {
	return m.filter(func(r model.StockRecord) bool {
		return r.Status == constant.StockStatusAllocated && r.Quantity > 0 &&
			r.WaveID != nil && *r.WaveID == waveID && r.OrderLineID != nil && *r.OrderLineID == orderLineID
	}), nil
}

func (m *memStock) LockAllocatedForConsumeTx(ctx context.Context, tx *sqlx.Tx, f model.ConsumeFilter) ([]model.StockRecord, error) {
	out := m.filter(func(r model.StockRecord) bool {
		return r.Status == constant.StockStatusAllocated && r.Quantity > 0 &&
			r.ProductID == f.ProductID && r.LocationID == f.LocationID &&
			r.OrderLineID != nil && *r.OrderLineID == f.OrderLineID
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID == f.PreferRecordID && out[j].ID != f.PreferRecordID
	})
	return out, nil
}

func (m *memStock) DecrementTx(ctx context.Context, tx *sqlx.Tx, recordID uint64, quantity int64) error {
	rec, ok := m.records[recordID]
	if !ok || rec.Status != constant.StockStatusAllocated || rec.Quantity < quantity {
		return fmt.Errorf("decrement: record %d cannot give %d", recordID, quantity)
	}
	rec.Quantity -= quantity
	return nil
}

func (m *memStock) DeleteTx(ctx context.Context, tx *sqlx.Tx, recordID uint64) error {
	delete(m.records, recordID)
	return nil
}

type memWaves struct {
	nextID    uint64
	waves     map[uint64]*model.WaveEntity
	orderWave map[uint64]uint64
	shortages []model.Shortage
	// afterGet runs after each non-locking read, standing in for another caller
	afterGet func(w *model.WaveEntity)
}

func newMemWaves() *memWaves {
	return &memWaves{waves: make(map[uint64]*model.WaveEntity), orderWave: make(map[uint64]uint64)}
}

func (m *memWaves) InsertWave(ctx context.Context, w *model.WaveEntity) (*model.WaveEntity, error) {
	m.nextID++
	stored := *w
	stored.ID = m.nextID
	m.waves[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *memWaves) GetWave(ctx context.Context, waveID uint64) (*model.WaveEntity, error) {
	w, ok := m.waves[waveID]
	if !ok {
		return nil, nil
	}
	out := *w
	if m.afterGet != nil {
		m.afterGet(w)
	}
	return &out, nil
}

func (m *memWaves) LockWaveTx(ctx context.Context, tx *sqlx.Tx, waveID uint64) (*model.WaveEntity, error) {
	w, ok := m.waves[waveID]
	if !ok {
		return nil, nil
	}
	out := *w
	return &out, nil
}

func (m *memWaves) UpdateWaveStatusTx(ctx context.Context, tx *sqlx.Tx, waveID uint64, from, to constant.WaveStatus, at time.Time) error {
	w, ok := m.waves[waveID]
	if !ok || w.Status != from {
		return fmt.Errorf("update wave %d: not %s", waveID, from)
	}
	w.Status = to
	switch to {
	case constant.WaveStatusAllocated:
		w.AllocatedAt = &at
	case constant.WaveStatusReleased:
		w.ReleasedAt = &at
	}
	return nil
}

func (m *memWaves) GetOrderWaveTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (uint64, bool, error) {
	waveID, ok := m.orderWave[orderID]
	return waveID, ok, nil
}

func (m *memWaves) InsertWaveOrderTx(ctx context.Context, tx *sqlx.Tx, waveID, orderID uint64) error {
	if _, ok := m.orderWave[orderID]; ok {
		return fmt.Errorf("order %d already in a wave", orderID)
	}
	m.orderWave[orderID] = waveID
	return nil
}

func (m *memWaves) IsWaveOrder(ctx context.Context, waveID, orderID uint64) (bool, error) {
	got, ok := m.orderWave[orderID]
	return ok && got == waveID, nil
}

func (m *memWaves) ListWaveOrders(ctx context.Context, waveID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	for orderID, w := range m.orderWave {
		if w == waveID {
			ids = append(ids, orderID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *memWaves) InsertShortageTx(ctx context.Context, tx *sqlx.Tx, s *model.Shortage) error {
	s.ID = uint64(len(m.shortages) + 1)
	m.shortages = append(m.shortages, *s)
	return nil
}

func (m *memWaves) ListShortages(ctx context.Context, waveID uint64) ([]model.Shortage, error) {
	out := make([]model.Shortage, 0)
	for _, s := range m.shortages {
		if s.WaveID == waveID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memOrders struct {
	lines map[uint64][]model.OrderLine
}

func (m *memOrders) GetOrderDetail(ctx context.Context, orderID uint64) (*model.OrderDetail, error) {
	if _, ok := m.lines[orderID]; !ok {
		return nil, nil
	}
	return &model.OrderDetail{ID: orderID, Status: "CONFIRMED"}, nil
}

func (m *memOrders) GetOrderLinesTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderLine, error) {
	return append([]model.OrderLine(nil), m.lines[orderID]...), nil
}

type memPickLists struct {
	nextListID uint64
	nextTaskID uint64
	lists      map[uint64]*model.PickListEntity
	tasks      map[uint64]*model.PickTask
}

func newMemPickLists() *memPickLists {
	return &memPickLists{lists: make(map[uint64]*model.PickListEntity), tasks: make(map[uint64]*model.PickTask)}
}

func (m *memPickLists) InsertPickListTx(ctx context.Context, tx *sqlx.Tx, pl *model.PickListEntity) (*model.PickListEntity, error) {
	m.nextListID++
	stored := *pl
	stored.ID = m.nextListID
	m.lists[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *memPickLists) GetPickListByWaveOrderTx(ctx context.Context, tx *sqlx.Tx, waveID, orderID uint64) (*model.PickListEntity, error) {
	for _, pl := range m.lists {
		if pl.WaveID == waveID && pl.OrderID == orderID {
			out := *pl
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memPickLists) InsertPickTasksTx(ctx context.Context, tx *sqlx.Tx, tasks []model.PickTask) ([]model.PickTask, error) {
	out := make([]model.PickTask, 0, len(tasks))
	for _, t := range tasks {
		m.nextTaskID++
		t.ID = m.nextTaskID
		stored := t
		m.tasks[t.ID] = &stored
		out = append(out, t)
	}
	return out, nil
}

func (m *memPickLists) GetPickList(ctx context.Context, pickListID uint64) (*model.PickListEntity, error) {
	pl, ok := m.lists[pickListID]
	if !ok {
		return nil, nil
	}
	out := *pl
	return &out, nil
}

func (m *memPickLists) ListPickListsByOrder(ctx context.Context, orderID uint64) ([]model.PickListEntity, error) {
	out := make([]model.PickListEntity, 0)
	for _, pl := range m.lists {
		if pl.OrderID == orderID {
			out = append(out, *pl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memPickLists) ListTasks(ctx context.Context, pickListIDs []uint64) ([]model.PickTask, error) {
	want := make(map[uint64]bool, len(pickListIDs))
	for _, id := range pickListIDs {
		want[id] = true
	}
	out := make([]model.PickTask, 0)
	for _, t := range m.tasks {
		if want[t.PickListID] {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PickListID != out[j].PickListID {
			return out[i].PickListID < out[j].PickListID
		}
		return out[i].Sequence < out[j].Sequence
	})
	return out, nil
}

func (m *memPickLists) LockTaskTx(ctx context.Context, tx *sqlx.Tx, taskID uint64) (*model.PickTask, error) {
	t, ok := m.tasks[taskID]
	if !ok {
		return nil, nil
	}
	out := *t
	return &out, nil
}

func (m *memPickLists) MarkTaskPickedTx(ctx context.Context, tx *sqlx.Tx, taskID uint64, quantity int64, pickedBy *string, at time.Time) error {
	t, ok := m.tasks[taskID]
	if !ok || t.Status != constant.PickTaskStatusPending {
		return fmt.Errorf("mark picked: task %d not pending", taskID)
	}
	t.Status = constant.PickTaskStatusPicked
	t.QuantityPicked = quantity
	t.PickedBy = pickedBy
	t.PickedAt = &at
	return nil
}

func (m *memPickLists) LockPickListTx(ctx context.Context, tx *sqlx.Tx, pickListID uint64) (*model.PickListEntity, error) {
	return m.GetPickList(ctx, pickListID)
}

func (m *memPickLists) CountPendingTasksTx(ctx context.Context, tx *sqlx.Tx, pickListID uint64) (int, error) {
	n := 0
	for _, t := range m.tasks {
		if t.PickListID == pickListID && t.Status == constant.PickTaskStatusPending {
			n++
		}
	}
	return n, nil
}

func (m *memPickLists) UpdatePickListStatusTx(ctx context.Context, tx *sqlx.Tx, pickListID uint64, status constant.PickListStatus, completedAt *time.Time) error {
	pl, ok := m.lists[pickListID]
	if !ok {
		return fmt.Errorf("update pick list %d: not found", pickListID)
	}
	pl.Status = status
	pl.CompletedAt = completedAt
	return nil
}

type warehouse struct {
	stock     *memStock
	waves     *memWaves
	orders    *memOrders
	pickLists *memPickLists
	redis     *miniredis.Miniredis
	metrics   *metrics.Metrics
	waveApp   appwave.WaveApp
	picking   picking.PickingApp
}

func newWarehouse(t *testing.T, lines map[uint64][]model.OrderLine, stock ...model.StockRecord) *warehouse {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	w := &warehouse{
		stock:     newMemStock(stock...),
		waves:     newMemWaves(),
		orders:    &memOrders{lines: lines},
		pickLists: newMemPickLists(),
		redis:     mr,
		metrics:   metrics.New("test"),
	}
	redisRepo := redisrepo.NewRepository(client)
	w.waveApp = appwave.NewWaveApp(&config.Config{Wave: config.WaveConfig{LockTTL: time.Minute}}, appwave.Dependencies{
		TxRepo:       memTx{},
		WaveRepo:     w.waves,
		OrderRepo:    w.orders,
		PickListRepo: w.pickLists,
		RedisRepo:    redisRepo,
		Allocator:    allocation.NewAllocator(w.stock),
		TaskGen:      tasks.NewTaskGenerator(w.stock, w.pickLists),
		Metrics:      w.metrics,
	})
	w.picking = picking.NewPickingApp(picking.Dependencies{
		TxRepo:       memTx{},
		PickListRepo: w.pickLists,
		StockRepo:    w.stock,
		OrderRepo:    w.orders,
		RedisRepo:    redisRepo,
		Metrics:      w.metrics,
	})
	return w
}

func TestFulfillment_AllocateReleasePick(t *testing.T) {
	ctx := context.Background()
	w := newWarehouse(t,
		map[uint64][]model.OrderLine{1: {{ID: 11, OrderID: 1, ProductID: 5, Quantity: 10}}},
		model.StockRecord{ID: 1, ProductID: 5, LocationID: 2, Quantity: 10, Status: constant.StockStatusAvailable},
	)

	created, err := w.waveApp.CreateWave(ctx, &model.CreateWaveRequest{Name: "morning"})
	require.NoError(t, err)

	allocated, err := w.waveApp.Allocate(ctx, created.ID, []uint64{1})
	require.NoError(t, err)
	assert.Equal(t, constant.WaveStatusAllocated, allocated.Status)
	assert.Equal(t, int64(0), allocated.TotalShort)
	require.Len(t, allocated.Lines, 1)
	assert.Equal(t, int64(10), allocated.Lines[0].Allocated)

	// whole record flipped in place, no split
	records := w.stock.all()
	require.Len(t, records, 1)
	assert.Equal(t, uint64(1), records[0].ID)
	assert.Equal(t, constant.StockStatusAllocated, records[0].Status)
	assert.Equal(t, uint64(11), *records[0].OrderLineID)
	assert.Equal(t, float64(0), testutil.ToFloat64(w.metrics.RecordsSplit))
	assert.False(t, w.redis.Exists("lock:wave:1"))

	released, err := w.waveApp.Release(ctx, created.ID, []uint64{1})
	require.NoError(t, err)
	assert.Equal(t, constant.WaveStatusReleased, released.Status)
	require.Len(t, released.PickLists, 1)
	pickList := released.PickLists[0]
	require.Len(t, pickList.Tasks, 1)
	task := pickList.Tasks[0]
	assert.Equal(t, int64(10), task.QuantityToPick)
	assert.Equal(t, uint64(1), task.StockRecordID)
	assert.Equal(t, constant.PickTaskStatusPending, task.Status)
	// releasing reserves nothing new
	assert.Equal(t, int64(10), w.stock.total(5))

	status, err := w.picking.GetOrderPickStatus(ctx, 1)
	require.NoError(t, err)
	assert.False(t, status.ReadyForPacking)

	confirmed, err := w.picking.ConfirmTask(ctx, task.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, constant.PickTaskStatusPicked, confirmed.Task.Status)
	assert.Equal(t, constant.PickListStatusComplete, confirmed.PickListStatus)

	assert.Empty(t, w.stock.all())
	assert.Equal(t, int64(0), w.stock.total(5))

	status, err = w.picking.GetOrderPickStatus(ctx, 1)
	require.NoError(t, err)
	assert.True(t, status.ReadyForPacking)
	assert.Equal(t, 1, status.TasksPicked)
	assert.True(t, w.redis.Exists("pick_status:order:1"))

	again, err := w.picking.ConfirmTask(ctx, task.ID, 10)
	require.NoError(t, err)
	assert.True(t, again.AlreadyPicked)
}

func TestFulfillment_CompetingLinesStaySeparate(t *testing.T) {
	ctx := context.Background()
	w := newWarehouse(t,
		map[uint64][]model.OrderLine{
			1: {{ID: 11, OrderID: 1, ProductID: 5, Quantity: 4}},
			2: {{ID: 21, OrderID: 2, ProductID: 5, Quantity: 8}},
		},
		model.StockRecord{ID: 1, ProductID: 5, LocationID: 2, Quantity: 6, Status: constant.StockStatusAvailable},
		model.StockRecord{ID: 2, ProductID: 5, LocationID: 2, Quantity: 10, Status: constant.StockStatusAvailable},
	)

	created, err := w.waveApp.CreateWave(ctx, &model.CreateWaveRequest{Name: "competing"})
	require.NoError(t, err)

	allocated, err := w.waveApp.Allocate(ctx, created.ID, []uint64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(0), allocated.TotalShort)
	assert.Equal(t, int64(16), w.stock.total(5))
	assert.Equal(t, float64(2), testutil.ToFloat64(w.metrics.RecordsSplit))

	line11, err := w.stock.ListAllocatedByLineTx(ctx, nil, created.ID, 11)
	require.NoError(t, err)
	line21, err := w.stock.ListAllocatedByLineTx(ctx, nil, created.ID, 21)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3}, recordIDs(line11))
	assert.Equal(t, []uint64{1, 4}, recordIDs(line21))
	assert.Equal(t, int64(4), sumQuantity(line11))
	assert.Equal(t, int64(8), sumQuantity(line21))

	released, err := w.waveApp.Release(ctx, created.ID, []uint64{1, 2})
	require.NoError(t, err)
	require.Len(t, released.PickLists, 2)

	tasksA := released.PickLists[0].Tasks
	require.Len(t, tasksA, 1)
	assert.Equal(t, uint64(3), tasksA[0].StockRecordID)
	assert.Equal(t, int64(4), tasksA[0].QuantityToPick)

	tasksB := released.PickLists[1].Tasks
	require.Len(t, tasksB, 2)
	assert.Equal(t, uint64(1), tasksB[0].StockRecordID)
	assert.Equal(t, int64(2), tasksB[0].QuantityToPick)
	assert.Equal(t, 1, tasksB[0].Sequence)
	assert.Equal(t, uint64(4), tasksB[1].StockRecordID)
	assert.Equal(t, int64(6), tasksB[1].QuantityToPick)
	assert.Equal(t, 2, tasksB[1].Sequence)

	// picking order 1 only draws from its own line's stock
	_, err = w.picking.ConfirmTask(ctx, tasksA[0].ID, 4)
	require.NoError(t, err)
	line21After, err := w.stock.ListAllocatedByLineTx(ctx, nil, created.ID, 21)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 4}, recordIDs(line21After))
	assert.Equal(t, int64(8), sumQuantity(line21After))

	for _, task := range tasksB {
		_, err := w.picking.ConfirmTask(ctx, task.ID, task.QuantityToPick)
		require.NoError(t, err)
	}

	remaining := w.stock.all()
	require.Len(t, remaining, 1)
	assert.Equal(t, uint64(2), remaining[0].ID)
	assert.Equal(t, int64(4), remaining[0].Quantity)
	assert.Equal(t, constant.StockStatusAvailable, remaining[0].Status)
	assert.Equal(t, float64(12), testutil.ToFloat64(w.metrics.UnitsPicked))
}

func TestFulfillment_AllocateIntoWaveThatMovedOn(t *testing.T) {
	ctx := context.Background()
	w := newWarehouse(t,
		map[uint64][]model.OrderLine{1: {{ID: 11, OrderID: 1, ProductID: 5, Quantity: 4}}},
		model.StockRecord{ID: 1, ProductID: 5, LocationID: 2, Quantity: 10, Status: constant.StockStatusAvailable},
	)

	created, err := w.waveApp.CreateWave(ctx, &model.CreateWaveRequest{Name: "late"})
	require.NoError(t, err)

	// the wave is released by another caller right after Allocate's first read
	w.waves.afterGet = func(wv *model.WaveEntity) {
		wv.Status = constant.WaveStatusReleased
	}

	_, err = w.waveApp.Allocate(ctx, created.ID, []uint64{1})
	require.Error(t, err)
	assert.True(t, cerr.IsType(err, constant.ErrInvalidState))

	records := w.stock.all()
	require.Len(t, records, 1)
	assert.Equal(t, constant.StockStatusAvailable, records[0].Status)
	assert.Equal(t, int64(10), records[0].Quantity)
	member, err := w.waves.IsWaveOrder(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.False(t, member)
}

func recordIDs(records []model.StockRecord) []uint64 {
	ids := make([]uint64, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}

func sumQuantity(records []model.StockRecord) int64 {
	var sum int64
	for _, r := range records {
		sum += r.Quantity
	}
	return sum
}
