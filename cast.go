package lantern

// handleSet is an insertion-ordered set of handles.
type handleSet struct {
	order []Handle
	set   map[Handle]struct{}
}

func (s *handleSet) add(h Handle) bool {
	if s.set == nil {
		s.set = make(map[Handle]struct{})
	}
	if _, ok := s.set[h]; ok {
		return false
	}
	s.set[h] = struct{}{}
	s.order = append(s.order, h)
	return true
}

// remove uses copy+zero to avoid retaining the handle in the backing array.
func (s *handleSet) remove(h Handle) bool {
	if _, ok := s.set[h]; !ok {
		return false
	}
	delete(s.set, h)
	for i, x := range s.order {
		if x == h {
			copy(s.order[i:], s.order[i+1:])
			s.order[len(s.order)-1] = Handle{}
			s.order = s.order[:len(s.order)-1]
			break
		}
	}
	return true
}

func (s *handleSet) has(h Handle) bool {
	_, ok := s.set[h]
	return ok
}

func (s *handleSet) len() int {
	return len(s.order)
}

// snapshot copies the current order into buf.
func (s *handleSet) snapshot(buf []Handle) []Handle {
	return append(buf[:0], s.order...)
}

// Cast is a plane's registry of objects needing per-frame update, event
// dispatch and rendering. Each list is ordered by insertion; insertion
// order is hit-test priority for event handlers.
//
// Sweeps iterate a snapshot and re-check membership before every visit:
// a member removed during a sweep is skipped for the rest of it, and a
// member added during a sweep is first visited on the next one.
type Cast struct {
	name     string
	registry *Registry
	contract *contract

	members handleSet
	doIts   handleSet
	events  handleSet
	items   handleSet

	doItBuf    []Handle
	eventBuf   []Handle
	sweeping   int
	warnedSize bool
}

func newCast(name string, reg *Registry, c *contract) *Cast {
	return &Cast{name: name, registry: reg, contract: c}
}

// Add registers e and appends it to every list its flags ask for. Adding
// an object that is already a member is a contract violation; in release
// mode the second add is ignored.
func (c *Cast) Add(e Entity) {
	o := e.object()
	if o.disposed {
		c.contract.violated("Cast.Add", "object %q is disposed", o.Name)
		return
	}
	if o.cast != nil && o.cast != c {
		c.contract.violated("Cast.Add", "object %q already belongs to cast %q", o.Name, o.cast.name)
		return
	}
	h := c.registry.Register(e)
	if !c.members.add(h) {
		c.contract.violated("Cast.Add", "object %q added twice to cast %q", o.Name, c.name)
		return
	}
	o.cast = c
	if o.flags.Has(FlagDoIt) {
		if _, ok := e.(Updater); ok {
			c.doIts.add(h)
		} else {
			c.contract.violated("Cast.Add", "object %q has FlagDoIt but no DoIt method", o.Name)
		}
	}
	if o.flags.Has(FlagEvents) {
		if _, ok := e.(EventHandler); ok {
			c.events.add(h)
		} else {
			c.contract.violated("Cast.Add", "object %q has FlagEvents but no HandleEvent method", o.Name)
		}
	}
	if o.flags.Has(FlagScreenItem) {
		c.items.add(h)
	}
	c.debugCheckSize()
}

// Remove takes e out of every list. Removing a non-member is a no-op.
// The handle stays valid; use Dispose on the object to release it.
func (c *Cast) Remove(e Entity) {
	c.removeObject(e.object())
}

func (c *Cast) removeObject(o *Object) {
	if o.cast != c || !c.members.remove(o.handle) {
		return
	}
	c.doIts.remove(o.handle)
	c.events.remove(o.handle)
	c.items.remove(o.handle)
	o.cast = nil
}

// Contains reports whether e is a member.
func (c *Cast) Contains(e Entity) bool {
	o := e.object()
	return o.cast == c && c.members.has(o.handle)
}

// AddEventHandler sets FlagEvents on e and puts it in the event list.
// Calling it on an object that is already registered for events is a
// no-op. Non-members are added to the cast first.
func (c *Cast) AddEventHandler(e Entity) {
	o := e.object()
	if o.flags.Has(FlagEvents) && c.events.has(o.handle) {
		return
	}
	o.flags |= FlagEvents
	if !c.Contains(e) {
		c.Add(e)
		return
	}
	if _, ok := e.(EventHandler); !ok {
		c.contract.violated("Cast.AddEventHandler", "object %q has no HandleEvent method", o.Name)
		return
	}
	c.events.add(o.handle)
}

// RemoveEventHandler clears FlagEvents on e and drops it from the event
// list. The object stays in the cast's other lists.
func (c *Cast) RemoveEventHandler(e Entity) {
	o := e.object()
	if !o.flags.Has(FlagEvents) {
		return
	}
	o.flags &^= FlagEvents
	if o.cast == c {
		c.events.remove(o.handle)
	}
}

// DoIt calls DoIt on every doIt member in list order and returns the number
// of members visited.
func (c *Cast) DoIt() int {
	buf := c.snapshot(&c.doItBuf, &c.doIts)
	visited := 0
	c.sweeping++
	for _, h := range buf {
		if !c.doIts.has(h) {
			continue
		}
		ent, ok := c.registry.Lookup(h)
		if !ok {
			continue
		}
		visited++
		ent.(Updater).DoIt()
	}
	c.sweeping--
	c.release(&c.doItBuf, buf)
	return visited
}

// HandleEvent offers ev to each event handler in list order and stops at
// the first that claims it.
func (c *Cast) HandleEvent(ev *Event) bool {
	buf := c.snapshot(&c.eventBuf, &c.events)
	claimed := false
	c.sweeping++
	for _, h := range buf {
		if !c.events.has(h) {
			continue
		}
		ent, ok := c.registry.Lookup(h)
		if !ok {
			continue
		}
		if ent.(EventHandler).HandleEvent(ev) || ev.Claimed {
			ev.Claim()
			claimed = true
			break
		}
	}
	c.sweeping--
	c.release(&c.eventBuf, buf)
	return claimed
}

// snapshot returns a copy of set's order. Nested sweeps get a fresh slice
// so they do not clobber the outer sweep's buffer.
func (c *Cast) snapshot(buf *[]Handle, set *handleSet) []Handle {
	if c.sweeping > 0 {
		return set.snapshot(nil)
	}
	return set.snapshot(*buf)
}

func (c *Cast) release(buf *[]Handle, used []Handle) {
	if c.sweeping == 0 {
		*buf = used[:0]
	}
}

// ScreenItems returns the renderable members in insertion order.
func (c *Cast) ScreenItems() []Entity {
	out := make([]Entity, 0, c.items.len())
	for _, h := range c.items.order {
		if ent, ok := c.registry.Lookup(h); ok {
			out = append(out, ent)
		}
	}
	return out
}

// Len returns the number of members.
func (c *Cast) Len() int {
	return c.members.len()
}

// NumDoIts returns the number of doIt members.
func (c *Cast) NumDoIts() int {
	return c.doIts.len()
}

// NumEventHandlers returns the number of event handlers.
func (c *Cast) NumEventHandlers() int {
	return c.events.len()
}

// NumScreenItems returns the number of screen items.
func (c *Cast) NumScreenItems() int {
	return c.items.len()
}

// evictAll disposes every member, so movers, cyclers and scripts cue their
// callers. A cued caller may add to the cast while it is being emptied;
// those late members are disposed on a following pass.
func (c *Cast) evictAll() {
	for pass := 0; c.members.len() > 0; pass++ {
		if pass == maxEvictPasses {
			c.contract.violated("Plane.Dispose", "cast %q still refilling after %d passes", c.name, pass)
			for _, h := range c.members.snapshot(nil) {
				if ent, ok := c.registry.Lookup(h); ok {
					ent.object().release()
				} else {
					c.dropHandle(h)
				}
			}
			return
		}
		for _, h := range c.members.snapshot(nil) {
			if !c.members.has(h) {
				continue
			}
			ent, ok := c.registry.Lookup(h)
			if !ok {
				c.dropHandle(h)
				continue
			}
			if d, ok := ent.(interface{ Dispose() }); ok {
				d.Dispose()
			}
			ent.object().release()
		}
	}
}

const maxEvictPasses = 8

// dropHandle forgets h without touching the entity.
func (c *Cast) dropHandle(h Handle) {
	c.members.remove(h)
	c.doIts.remove(h)
	c.events.remove(h)
	c.items.remove(h)
	c.registry.Release(h)
}
