// File: services/planner/history.go
package planner

import "sync"

// DefaultHistoryCapacity bounds the per-category rolling cost window.
const DefaultHistoryCapacity = 120

// CostHistory keeps a process-wide rolling window of recently observed costs
// per category. Categories are created lazily on first observation and never
// destroyed; the window is bounded by capacity, not TTL. Concurrent pipelines
// share one instance; interleaved appends are accepted (the values are
// advisory heuristics, not a ledger).
type CostHistory struct {
	mu       sync.Mutex
	capacity int
	values   map[string][]int
}

// NewCostHistory returns a history with the given per-category capacity.
// Non-positive capacities fall back to DefaultHistoryCapacity.
func NewCostHistory(capacity int) *CostHistory {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &CostHistory{
		capacity: capacity,
		values:   make(map[string][]int),
	}
}

// Record appends an observed cost to the category's window, evicting the
// oldest value at capacity. Non-positive costs are ignored so zero-cost
// injected entries never pollute the averages.
func (h *CostHistory) Record(category string, value int) {
	if value <= 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	window := append(h.values[category], value)
	if len(window) > h.capacity {
		window = window[len(window)-h.capacity:]
	}
	h.values[category] = window
}

// Average returns the category's current rolling average, 0 with no history.
func (h *CostHistory) Average(category string) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	window := h.values[category]
	if len(window) == 0 {
		return 0
	}
	sum := 0
	for _, v := range window {
		sum += v
	}
	return float64(sum) / float64(len(window))
}

// Len reports the number of values currently held for a category.
func (h *CostHistory) Len(category string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.values[category])
}
