package registry

import "sync"

// Registry is a thread-safe key-value store with per-key locking.
// Extension registries (cmd, cron, api) write during init() and lock on Apply,
// so reads after startup need no synchronization at the call site.
type Registry struct {
	mu     sync.RWMutex
	values map[string]interface{}
	locked map[string]bool
}

// GlobalRegistry is the process-wide registry instance.
var GlobalRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		values: make(map[string]interface{}),
		locked: make(map[string]bool),
	}
}

// SetGlobal stores a value. Panics if the key has been locked.
func (r *Registry) SetGlobal(key string, value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locked[key] {
		panic("registry: set on locked key " + key)
	}
	r.values[key] = value
}

// GetGlobal returns the value for a key and whether it exists.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// Lock makes a key immutable. Further SetGlobal calls panic.
func (r *Registry) Lock(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = true
}

// IsLocked reports whether a key is locked.
func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked[key]
}

// UnlockForTesting reopens a locked key (for tests).
func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = false
}
