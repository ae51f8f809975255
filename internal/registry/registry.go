// Package registry holds the process-wide, insertion-ordered list of test
// descriptors populated by self-registration at package initialization.
package registry

import (
	"fmt"
	"sync"

	"squall/internal/records"
	"squall/pkg/squall/core"
)

type Registry struct {
	mu     sync.Mutex
	tests  *records.Store[core.Descriptor]
	frozen bool
}

// New returns an empty registry with room for capacity descriptors.
func New(capacity int) *Registry {
	return &Registry{
		tests: records.New[core.Descriptor](capacity),
	}
}

// Register appends a descriptor. Registration order is execution order; no
// deduplication is performed. Registering into a frozen registry panics.
func (r *Registry) Register(d core.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		panic(fmt.Sprintf("cannot register test '%s' at %s: a run has already started", d.FullName(), d.Location()))
	}

	r.tests.PushBack(d)
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tests.Len()
}

// Snapshot freezes the registry and returns its descriptors in registration
// order. The returned slice is a copy and stays stable for the whole run.
func (r *Registry) Snapshot() []core.Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frozen = true
	return r.tests.Snapshot()
}

// Frozen reports whether a snapshot has been taken.
func (r *Registry) Frozen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frozen
}

var (
	global     *Registry // singleton, initialized on first use
	globalOnce sync.Once
)

// Global returns the process-wide registry, creating it on first use.
// Subsequent calls return the same instance without side effects.
func Global() *Registry {
	globalOnce.Do(func() {
		global = New(records.DefaultCapacity)
	})
	return global
}
