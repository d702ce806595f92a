package registry

import (
	"bytes"
	"runtime"
	"sort"
	"sync"

	"github.com/voquill/voquill/pkg/provider"
)

// Descriptor is the immutable display metadata of one registered provider.
// Identity is the ID, unique within a capability family.
type Descriptor struct {
	ID   string
	Name string

	Description string

	RequiresAPIKey bool

	Capability provider.Capability
}

const (
	initIdle = iota
	initRunning
	initDone
)

// Registry maps provider ids to clients of one capability family. It is
// initialized lazily, at most once per process: the first public call runs
// the init function. Registration logic calling back into the registry
// proceeds without recursing; every other goroutine blocks until
// initialization finishes, so a lookup never observes a half-built map.
type Registry[P any] struct {
	mu sync.Mutex

	init      func(*Registry[P])
	initState int
	initOwner string
	done      chan struct{}

	providers   map[string]P
	descriptors map[string]Descriptor
}

func New[P any](init func(*Registry[P])) *Registry[P] {
	return &Registry[P]{
		init: init,

		done: make(chan struct{}),

		providers:   make(map[string]P),
		descriptors: make(map[string]Descriptor),
	}
}

func (r *Registry[P]) ensure() {
	r.mu.Lock()

	switch r.initState {
	case initDone:
		r.mu.Unlock()

		return

	case initRunning:
		owner := r.initOwner
		r.mu.Unlock()

		// the init function calling back into the registry must not
		// deadlock on its own initialization
		if owner == goroutineID() {
			return
		}

		<-r.done

		return
	}

	r.initState = initRunning
	r.initOwner = goroutineID()
	r.mu.Unlock()

	if r.init != nil {
		r.init(r)
	}

	r.mu.Lock()
	r.initState = initDone
	r.initOwner = ""
	r.mu.Unlock()

	close(r.done)
}

// goroutineID parses the current goroutine's id from its stack header,
// "goroutine N [running]:". There is no supported API for this.
func goroutineID() string {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]

	fields := bytes.Fields(buf)

	if len(fields) < 2 {
		return ""
	}

	return string(fields[1])
}

// Register inserts or overwrites the entry keyed by the descriptor id.
// Used at bootstrap and by tests swapping in doubles.
func (r *Registry[P]) Register(desc Descriptor, p P) {
	r.ensure()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers[desc.ID] = p
	r.descriptors[desc.ID] = desc
}

// Get never panics on an unknown id: absence is a user-facing state, not a
// crash.
func (r *Registry[P]) Get(id string) (P, bool) {
	r.ensure()

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.providers[id]

	return p, ok
}

// All returns the registered clients sorted by id. The slice is a copy,
// mutating it does not affect the registry.
func (r *Registry[P]) All() []P {
	r.ensure()

	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.ids()

	result := make([]P, 0, len(ids))

	for _, id := range ids {
		result = append(result, r.providers[id])
	}

	return result
}

func (r *Registry[P]) Descriptor(id string) (Descriptor, bool) {
	r.ensure()

	r.mu.Lock()
	defer r.mu.Unlock()

	desc, ok := r.descriptors[id]

	return desc, ok
}

func (r *Registry[P]) Descriptors() []Descriptor {
	r.ensure()

	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.ids()

	result := make([]Descriptor, 0, len(ids))

	for _, id := range ids {
		result = append(result, r.descriptors[id])
	}

	return result
}

func (r *Registry[P]) ids() []string {
	ids := make([]string, 0, len(r.providers))

	for id := range r.providers {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}
