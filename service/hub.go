package service

import (
	"fmt"
	"log"
	"sync"

	"github.com/lixenwraith/cadet/config"
)

// Hub owns the services of one session
type Hub struct {
	mu          sync.RWMutex
	services    map[string]Service
	registered  []string // Registration order, tie-break for the topological sort
	sorted      []string // Topological order, computed on InitAll
	initialized []string // Services that completed Init, for teardown
	started     []string // Services that completed Start, for rollback
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		services: make(map[string]Service),
	}
}

// Register adds a service
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}

	h.services[name] = svc
	h.registered = append(h.registered, name)
	h.sorted = nil
	return nil
}

// Get retrieves a service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// MustGet retrieves a service and casts to type T
// Panics if service not found or type mismatch
func MustGet[T any](h *Hub, name string) T {
	h.mu.RLock()
	svc, ok := h.services[name]
	h.mu.RUnlock()

	if !ok {
		panic(fmt.Sprintf("service not found: %s", name))
	}

	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("service %s: type mismatch, got %T", name, svc))
	}
	return typed
}

// InitAll initializes services in dependency order
// On failure already-initialized services are stopped in reverse order
func (h *Hub) InitAll(cfg *config.Config) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sorted == nil {
		order, err := h.topologicalSort()
		if err != nil {
			return err
		}
		h.sorted = order
	}

	h.initialized = nil
	for _, name := range h.sorted {
		if err := h.services[name].Init(cfg); err != nil {
			h.stopReverse(h.initialized)
			h.initialized = nil
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
		h.initialized = append(h.initialized, name)
	}

	return nil
}

// StartAll starts services in dependency order
// On failure every initialized service is stopped in reverse order
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = nil
	for _, name := range h.initialized {
		if err := h.services[name].Start(); err != nil {
			h.stopReverse(h.initialized)
			h.started = nil
			h.initialized = nil
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.started = append(h.started, name)
	}

	return nil
}

// StopAll stops every initialized service in reverse dependency order
// Errors are logged; all services get Stop called
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stopReverse(h.initialized)
	h.initialized = nil
	h.started = nil
}

func (h *Hub) stopReverse(names []string) {
	for i := len(names) - 1; i >= 0; i-- {
		if svc, ok := h.services[names[i]]; ok {
			if err := svc.Stop(); err != nil {
				log.Printf("service %s stop: %v", names[i], err)
			}
		}
	}
}

// topologicalSort computes initialization order using Kahn's algorithm
// Independent services keep registration order
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string) // dep -> services that depend on it

	for _, name := range h.registered {
		inDegree[name] = 0
	}

	for _, name := range h.registered {
		for _, dep := range h.services[name].Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for _, name := range h.registered {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	result := make([]string, 0, len(h.services))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, name)

		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(result) != len(h.services) {
		return nil, fmt.Errorf("circular dependency detected in services")
	}

	return result, nil
}

// Names returns registered service names in registration order
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, len(h.registered))
	copy(out, h.registered)
	return out
}
