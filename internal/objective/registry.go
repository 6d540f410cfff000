package objective

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps objective names to implementations. The zero value is not
// usable; construct with NewRegistry.
type Registry struct {
	mu         sync.RWMutex
	objectives map[string]Objective
}

func NewRegistry() *Registry {
	return &Registry{objectives: make(map[string]Objective)}
}

func (r *Registry) Register(obj Objective) error {
	if obj == nil {
		return fmt.Errorf("nil objective")
	}
	name := obj.Name()
	if name == "" {
		return fmt.Errorf("objective name is empty")
	}
	lower, upper := obj.Bounds()
	if len(lower) == 0 || len(lower) != len(upper) {
		return fmt.Errorf("objective %q has malformed bounds", name)
	}
	for k := range lower {
		if !(lower[k] < upper[k]) {
			return fmt.Errorf("objective %q: lower bound %d not below upper", name, k)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.objectives[name]; ok {
		return fmt.Errorf("objective %q already registered", name)
	}
	r.objectives[name] = obj
	return nil
}

func (r *Registry) Resolve(name string) (Objective, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	obj, ok := r.objectives[name]
	if !ok {
		return nil, fmt.Errorf("unknown objective: %q", name)
	}
	return obj, nil
}

// Names returns the registered objective names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.objectives))
	for name := range r.objectives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
