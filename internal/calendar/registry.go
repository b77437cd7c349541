package calendar

import "sync"

// Registry is a process-wide store of finalized calendar configurations.
//
// Writes (Register, SetMonthMapping) replace a calendar's configuration
// wholesale under an exclusive lock; reads return the immutable published
// snapshot, so a reader always observes either the fully-old or fully-new
// configuration. Tests construct isolated registries instead of sharing a
// package-level singleton.
type Registry struct {
	mu    sync.RWMutex
	items map[string]*Config
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*Config)}
}

// Register validates cfg and publishes it under cfg.ID, replacing any prior
// configuration for that id. The registry stores a private finalized copy;
// the caller's value is never retained.
func (r *Registry) Register(cfg *Config) error {
	cp := cfg.clone()
	if err := cp.Finalize(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[cp.ID]; !exists {
		r.order = append(r.order, cp.ID)
	}
	r.items[cp.ID] = cp
	return nil
}

// Get returns the published configuration for id.
func (r *Registry) Get(id string) (*Config, error) {
	r.mu.RLock()
	cfg, ok := r.items[id]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownCalendarError{ID: id}
	}
	return cfg, nil
}

// Validate re-runs the structural checks for id and reports its ambiguous
// months as non-fatal diagnostics. Registered configurations always pass
// the structural checks; the diagnostics are the useful part.
func (r *Registry) Validate(id string) ([]Diagnostic, error) {
	cfg, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if err := cfg.clone().Finalize(); err != nil {
		return nil, err
	}
	return cfg.AmbiguousMonths(), nil
}

// SetMonthMapping adds or overwrites one explicit month resolution entry
// and atomically republishes the calendar.
func (r *Registry) SetMonthMapping(id string, month int, periodName string) error {
	cfg, err := r.Get(id)
	if err != nil {
		return err
	}

	cp := cfg.clone()
	if cp.MonthMap == nil {
		cp.MonthMap = make(map[int]string)
	}
	cp.MonthMap[month] = periodName
	if err := cp.Finalize(); err != nil {
		return err
	}

	r.mu.Lock()
	r.items[id] = cp
	r.mu.Unlock()
	return nil
}

// List returns all registered calendar ids in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}
