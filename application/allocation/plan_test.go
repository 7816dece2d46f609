package allocation

import (
	"testing"

	"github.com/muhammadheryan/wms-fulfillment/constant"
	"github.com/muhammadheryan/wms-fulfillment/model"
)

func available(id uint64, qty int64) model.StockRecord {
	return model.StockRecord{ID: id, ProductID: 1, LocationID: 10, Quantity: qty, Status: constant.StockStatusAvailable}
}

func TestPlan(t *testing.T) {
	tests := []struct {
		name      string
		records   []model.StockRecord
		needed    int64
		wantTakes []int64
		wantWhole []bool
		wantShort int64
	}{
		{
			name:      "split single record",
			records:   []model.StockRecord{available(1, 20)},
			needed:    12,
			wantTakes: []int64{12},
			wantWhole: []bool{false},
		},
		{
			name:      "exact match flips whole record",
			records:   []model.StockRecord{available(1, 10)},
			needed:    10,
			wantTakes: []int64{10},
			wantWhole: []bool{true},
		},
		{
			name:      "shortage across records",
			records:   []model.StockRecord{available(1, 4), available(2, 6)},
			needed:    15,
			wantTakes: []int64{4, 6},
			wantWhole: []bool{true, true},
			wantShort: 5,
		},
		{
			name:      "stops once satisfied",
			records:   []model.StockRecord{available(1, 5), available(2, 5), available(3, 5)},
			needed:    7,
			wantTakes: []int64{5, 2},
			wantWhole: []bool{true, false},
		},
		{
			name: "skips empty and allocated records",
			records: []model.StockRecord{
				available(1, 0),
				{ID: 2, Quantity: 9, Status: constant.StockStatusAllocated},
				available(3, 3),
			},
			needed:    3,
			wantTakes: []int64{3},
			wantWhole: []bool{true},
		},
		{
			name:      "no stock at all",
			records:   nil,
			needed:    8,
			wantShort: 8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, short := plan(tt.records, tt.needed)
			if short != tt.wantShort {
				t.Fatalf("short = %d, want %d", short, tt.wantShort)
			}
			if len(steps) != len(tt.wantTakes) {
				t.Fatalf("steps = %d, want %d", len(steps), len(tt.wantTakes))
			}
			var taken int64
			for i, s := range steps {
				if s.take != tt.wantTakes[i] {
					t.Fatalf("step %d take = %d, want %d", i, s.take, tt.wantTakes[i])
				}
				if s.whole() != tt.wantWhole[i] {
					t.Fatalf("step %d whole = %v, want %v", i, s.whole(), tt.wantWhole[i])
				}
				if s.take > s.record.Quantity {
					t.Fatalf("step %d takes %d from a record of %d", i, s.take, s.record.Quantity)
				}
				taken += s.take
			}
			if taken+short != tt.needed {
				t.Fatalf("taken %d + short %d != needed %d", taken, short, tt.needed)
			}
		})
	}
}

// Allocation only moves units between statuses, so for any input the units left
// available plus the units taken equal what was available before.
func TestPlan_Conservation(t *testing.T) {
	records := []model.StockRecord{available(1, 7), available(2, 3), available(3, 11)}
	var before int64
	for _, r := range records {
		before += r.Quantity
	}

	for needed := int64(0); needed <= 25; needed++ {
		steps, short := plan(records, needed)
		var taken int64
		for _, s := range steps {
			taken += s.take
		}
		if left := before - taken; left < 0 {
			t.Fatalf("needed %d: negative remainder %d", needed, left)
		}
		if taken > needed {
			t.Fatalf("needed %d: took %d", needed, taken)
		}
		want := needed - before
		if want < 0 {
			want = 0
		}
		if short != want {
			t.Fatalf("needed %d: short = %d, want %d", needed, short, want)
		}
	}
}
