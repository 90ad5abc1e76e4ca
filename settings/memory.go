package settings

import (
	"sort"
	"sync"
)

// Memory is an in-process Store that tracks unsaved modification
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	dirty  bool
}

// NewMemory creates an empty store
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// GetSetting returns the stored value, recording def when absent
func (m *Memory) GetSetting(key, def string) string {
	m.mu.RLock()
	v, ok := m.values[key]
	m.mu.RUnlock()
	if ok {
		return v
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		return v
	}
	m.values[key] = def
	m.dirty = true
	return def
}

// SetSetting stores value, marking the store dirty when it changed
func (m *Memory) SetSetting(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.values[key]; ok && old == value {
		return
	}
	m.values[key] = value
	m.dirty = true
}

// Lookup returns the stored value without recording a default
func (m *Memory) Lookup(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Dirty reports whether the store changed since the last MarkClean
func (m *Memory) Dirty() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirty
}

// MarkClean clears the dirty flag
func (m *Memory) MarkClean() {
	m.mu.Lock()
	m.dirty = false
	m.mu.Unlock()
}

// Keys returns all keys in sorted order
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of all values
func (m *Memory) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// replace swaps in loaded values and clears the dirty flag
func (m *Memory) replace(values map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if values == nil {
		values = make(map[string]string)
	}
	m.values = values
	m.dirty = false
}
