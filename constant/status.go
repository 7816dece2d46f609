package constant

// WaveStatus is the lifecycle of a wave. Transitions only move forward.
type WaveStatus string

const (
	WaveStatusPlanned   WaveStatus = "PLANNED"
	WaveStatusAllocated WaveStatus = "ALLOCATED"
	WaveStatusReleased  WaveStatus = "RELEASED"
)

var waveTransitions = map[WaveStatus]WaveStatus{
	WaveStatusPlanned:   WaveStatusAllocated,
	WaveStatusAllocated: WaveStatusReleased,
}

// CanTransition reports whether the wave may move from s to next.
func (s WaveStatus) CanTransition(next WaveStatus) bool {
	to, ok := waveTransitions[s]
	return ok && to == next
}

// PickListStatus tracks picking progress of a single order inside a wave.
type PickListStatus string

const (
	PickListStatusPending    PickListStatus = "PENDING"
	PickListStatusInProgress PickListStatus = "IN_PROGRESS"
	PickListStatusComplete   PickListStatus = "COMPLETE"
)

var pickListTransitions = map[PickListStatus][]PickListStatus{
	PickListStatusPending:    {PickListStatusInProgress, PickListStatusComplete},
	PickListStatusInProgress: {PickListStatusComplete},
}

func (s PickListStatus) CanTransition(next PickListStatus) bool {
	for _, to := range pickListTransitions[s] {
		if to == next {
			return true
		}
	}
	return false
}

type PickTaskStatus string

const (
	PickTaskStatusPending PickTaskStatus = "PENDING"
	PickTaskStatusPicked  PickTaskStatus = "PICKED"
)

func (s PickTaskStatus) CanTransition(next PickTaskStatus) bool {
	return s == PickTaskStatusPending && next == PickTaskStatusPicked
}

// StockStatus marks whether a stock record is free or reserved for an order line.
type StockStatus string

const (
	StockStatusAvailable StockStatus = "AVAILABLE"
	StockStatusAllocated StockStatus = "ALLOCATED"
)

func (s StockStatus) CanTransition(next StockStatus) bool {
	return s == StockStatusAvailable && next == StockStatusAllocated
}
