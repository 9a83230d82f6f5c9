package lantern

import "fmt"

// Handle is a generation-checked reference into a Registry. A Handle
// outlives the object it names; Lookup reports false once the slot has
// been released, even if the slot was reused.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h was never issued.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

func (h Handle) String() string {
	if h.IsZero() {
		return "handle(nil)"
	}
	return fmt.Sprintf("handle(%d#%d)", h.index, h.gen)
}

type slot struct {
	gen uint32
	ent Entity
}

// Registry is a slot map from Handles to entities. One registry is shared
// by every cast of a Stage.
type Registry struct {
	slots []slot
	free  []uint32
	live  int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register issues a handle for e and stores it on e. Registering an
// entity that already holds a live handle returns that handle.
func (r *Registry) Register(e Entity) Handle {
	o := e.object()
	if _, ok := r.Lookup(o.handle); ok {
		return o.handle
	}
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{})
	}
	s := &r.slots[idx]
	s.gen++
	if s.gen == 0 {
		// generation wrapped; zero is reserved for "never issued"
		s.gen = 1
	}
	s.ent = e
	r.live++
	o.handle = Handle{index: idx, gen: s.gen}
	o.registry = r
	return o.handle
}

// Lookup resolves h. It reports false for zero, released or reused handles.
func (r *Registry) Lookup(h Handle) (Entity, bool) {
	if h.IsZero() || int(h.index) >= len(r.slots) {
		return nil, false
	}
	s := &r.slots[h.index]
	if s.gen != h.gen || s.ent == nil {
		return nil, false
	}
	return s.ent, true
}

// Release frees the slot named by h. Releasing a stale handle is a no-op
// and returns false.
func (r *Registry) Release(h Handle) bool {
	if _, ok := r.Lookup(h); !ok {
		return false
	}
	s := &r.slots[h.index]
	s.ent = nil
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	r.free = append(r.free, h.index)
	r.live--
	return true
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return r.live
}
