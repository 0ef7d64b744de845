package alert

import "sync"

// Key identifies one alert: a market plus an alert kind. Setting the same
// key again overwrites the stored threshold.
type Key struct {
	MarketID string
	Type     Type
}

// Registry is an in-memory threshold store, safe for concurrent readers and
// writers. Thresholds live for the process lifetime only; the stored value
// is the caller's original string, parsed at evaluation time.
type Registry struct {
	mu         sync.RWMutex
	thresholds map[Key]string
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{thresholds: make(map[Key]string)}
}

// Set stores or overwrites the threshold for (marketID, typ).
func (r *Registry) Set(marketID string, typ Type, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.thresholds[Key{MarketID: marketID, Type: typ}] = value
}

// Get returns the stored threshold for (marketID, typ), if any.
func (r *Registry) Get(marketID string, typ Type) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.thresholds[Key{MarketID: marketID, Type: typ}]
	return value, ok
}

// Len reports the number of stored alerts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.thresholds)
}
