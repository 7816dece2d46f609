package allocation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms-fulfillment/application/allocation"
	"github.com/muhammadheryan/wms-fulfillment/constant"
	stockmocks "github.com/muhammadheryan/wms-fulfillment/mocks/repository/stock"
	"github.com/muhammadheryan/wms-fulfillment/model"
	"github.com/stretchr/testify/mock"
)

func TestAllocator_AllocateLineTx(t *testing.T) {
	type fields struct {
		stockRepo *stockmocks.StockRepository
	}
	type args struct {
		waveID uint64
		line   model.OrderLine
	}
	res := model.Reservation{WaveID: 3, OrderLineID: 11}
	tests := []struct {
		name          string
		args          args
		mockCall      func(f fields, tx *sqlx.Tx)
		wantAllocated int64
		wantShort     int64
		wantSplits    int
		wantErr       bool
	}{
		{
			name: "success: whole record flipped",
			args: args{waveID: 3, line: model.OrderLine{ID: 11, OrderID: 1, ProductID: 5, Quantity: 10}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.stockRepo.On("LockAvailableByProductTx", mock.Anything, tx, uint64(5)).Return([]model.StockRecord{
					{ID: 100, ProductID: 5, LocationID: 1, Quantity: 10, Status: constant.StockStatusAvailable},
				}, nil).Once()
				f.stockRepo.On("MarkAllocatedTx", mock.Anything, tx, uint64(100), res).Return(nil).Once()
			},
			wantAllocated: 10,
		},
		{
			name: "success: record split, remainder stays available",
			args: args{waveID: 3, line: model.OrderLine{ID: 11, OrderID: 1, ProductID: 5, Quantity: 12}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				src := model.StockRecord{ID: 100, ProductID: 5, LocationID: 1, Quantity: 20, Status: constant.StockStatusAvailable}
				f.stockRepo.On("LockAvailableByProductTx", mock.Anything, tx, uint64(5)).Return([]model.StockRecord{src}, nil).Once()
				f.stockRepo.On("SplitAllocatedTx", mock.Anything, tx, src, int64(12), res).Return(uint64(101), nil).Once()
			},
			wantAllocated: 12,
			wantSplits:    1,
		},
		{
			name: "success: shortage reported, not an error",
			args: args{waveID: 3, line: model.OrderLine{ID: 11, OrderID: 1, ProductID: 5, Quantity: 15}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.stockRepo.On("LockAvailableByProductTx", mock.Anything, tx, uint64(5)).Return([]model.StockRecord{
					{ID: 100, ProductID: 5, Quantity: 4, Status: constant.StockStatusAvailable},
					{ID: 101, ProductID: 5, Quantity: 6, Status: constant.StockStatusAvailable},
				}, nil).Once()
				f.stockRepo.On("MarkAllocatedTx", mock.Anything, tx, uint64(100), res).Return(nil).Once()
				f.stockRepo.On("MarkAllocatedTx", mock.Anything, tx, uint64(101), res).Return(nil).Once()
			},
			wantAllocated: 10,
			wantShort:     5,
		},
		{
			name: "success: zero quantity line touches nothing",
			args: args{waveID: 3, line: model.OrderLine{ID: 11, OrderID: 1, ProductID: 5, Quantity: 0}},
		},
		{
			name: "error: lock fails",
			args: args{waveID: 3, line: model.OrderLine{ID: 11, OrderID: 1, ProductID: 5, Quantity: 1}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.stockRepo.On("LockAvailableByProductTx", mock.Anything, tx, uint64(5)).Return(nil, errors.New("deadlock")).Once()
			},
			wantErr: true,
		},
		{
			name: "error: split fails",
			args: args{waveID: 3, line: model.OrderLine{ID: 11, OrderID: 1, ProductID: 5, Quantity: 1}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.stockRepo.On("LockAvailableByProductTx", mock.Anything, tx, uint64(5)).Return([]model.StockRecord{
					{ID: 100, ProductID: 5, Quantity: 2, Status: constant.StockStatusAvailable},
				}, nil).Once()
				f.stockRepo.On("SplitAllocatedTx", mock.Anything, tx, mock.Anything, int64(1), res).Return(uint64(0), errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{stockRepo: stockmocks.NewStockRepository(t)}
			tx := &sqlx.Tx{}
			if tt.mockCall != nil {
				tt.mockCall(f, tx)
			}

			got, err := allocation.NewAllocator(f.stockRepo).AllocateLineTx(context.Background(), tx, tt.args.waveID, tt.args.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AllocateLineTx() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Allocated != tt.wantAllocated || got.Short != tt.wantShort || got.Splits != tt.wantSplits {
				t.Fatalf("AllocateLineTx() = allocated %d short %d splits %d, want %d %d %d",
					got.Allocated, got.Short, got.Splits, tt.wantAllocated, tt.wantShort, tt.wantSplits)
			}
			if got.Allocated+got.Short != tt.args.line.Quantity {
				t.Fatalf("allocated + short = %d, want %d", got.Allocated+got.Short, tt.args.line.Quantity)
			}
		})
	}
}
