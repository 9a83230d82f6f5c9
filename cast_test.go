package lantern

import (
	"strings"
	"testing"
)

func TestCastAddRoutesByFlags(t *testing.T) {
	s, _, _ := testStage(t)
	p := s.NewPlane("p", R(0, 0, 100, 100), 0, PlaneColored)
	c := p.Cast()

	c.Add(newCounter("doit", FlagDoIt, nil))
	c.Add(newCounter("events", FlagEvents, nil))
	c.Add(newCounter("both", FlagDoIt|FlagEvents, nil))
	item := NewScreenItem("item", CelInfo{}, Pt(0, 0), 0)
	p.Add(item)

	if c.Len() != 4 {
		t.Errorf("Len = %d, want 4", c.Len())
	}
	if c.NumDoIts() != 2 {
		t.Errorf("NumDoIts = %d, want 2", c.NumDoIts())
	}
	if c.NumEventHandlers() != 2 {
		t.Errorf("NumEventHandlers = %d, want 2", c.NumEventHandlers())
	}
	if c.NumScreenItems() != 1 || c.ScreenItems()[0] != Entity(item) {
		t.Errorf("ScreenItems = %v", c.ScreenItems())
	}
}

func TestCastDoubleAddIgnoredInRelease(t *testing.T) {
	s, _, _ := testStage(t)
	p := s.NewPlane("p", R(0, 0, 10, 10), 0, PlaneColored)
	c := p.Cast()
	var log []string
	obj := newCounter("c", FlagDoIt|FlagEvents|FlagScreenItem, &log)
	p.Add(obj)
	p.Add(obj)
	p.DoIt()
	if len(log) != 1 {
		t.Errorf("DoIt ran %d times, want 1", len(log))
	}

	p.Remove(obj)
	if c.Contains(obj) {
		t.Error("one Remove should undo a doubled Add")
	}
	if c.NumDoIts() != 0 || c.NumEventHandlers() != 0 || c.NumScreenItems() != 0 {
		t.Errorf("lists = %d doIts, %d handlers, %d items, want all empty",
			c.NumDoIts(), c.NumEventHandlers(), c.NumScreenItems())
	}
}

func TestCastRemoveThenDisposeReleasesHandle(t *testing.T) {
	s, _, _ := testStage(t)
	p := s.NewPlane("p", R(0, 0, 10, 10), 0, PlaneColored)
	obj := newCounter("c", FlagDoIt, nil)
	p.Add(obj)
	h := obj.Handle()

	p.Remove(obj)
	if _, ok := s.Registry().Lookup(h); !ok {
		t.Fatal("Remove should keep the handle live")
	}
	obj.Dispose()
	if _, ok := s.Registry().Lookup(h); ok {
		t.Error("Dispose after Remove should release the handle")
	}
	if s.Registry().Len() != 0 {
		t.Errorf("registry Len = %d, want 0", s.Registry().Len())
	}
}

func TestCastRemoveThenReAddKeepsHandle(t *testing.T) {
	s, _, _ := testStage(t)
	p := s.NewPlane("p", R(0, 0, 10, 10), 0, PlaneColored)
	obj := newCounter("c", FlagDoIt, nil)
	p.Add(obj)
	h := obj.Handle()
	p.Remove(obj)
	p.Add(obj)
	if obj.Handle() != h || s.Registry().Len() != 1 {
		t.Errorf("handle %v, registry Len %d", obj.Handle(), s.Registry().Len())
	}
}

func TestCastRemoveNonMember(t *testing.T) {
	s, _, _ := testStage(t)
	p := s.NewPlane("p", R(0, 0, 10, 10), 0, PlaneColored)
	q := s.NewPlane("q", R(0, 0, 10, 10), 0, PlaneColored)
	c := newCounter("c", FlagDoIt, nil)
	q.Add(c)

	p.Remove(c)
	p.Remove(newCounter("stranger", FlagDoIt, nil))
	if !q.Cast().Contains(c) {
		t.Error("removing from another cast should not touch membership")
	}
}

func TestCastCrossCastAddViolates(t *testing.T) {
	s, _, _ := testStage(t)
	s.SetDebugMode(true)
	p := s.NewPlane("p", R(0, 0, 10, 10), 0, PlaneColored)
	q := s.NewPlane("q", R(0, 0, 10, 10), 0, PlaneColored)
	c := newCounter("c", FlagDoIt, nil)
	p.Add(c)
	expectPanic(t, "already belongs", func() { q.Add(c) })
}

func TestCastDoItMutationDuringSweep(t *testing.T) {
	s, _, _ := testStage(t)
	p := s.NewPlane("p", R(0, 0, 10, 10), 0, PlaneColored)
	var log []string
	a := newCounter("a", FlagDoIt, &log)
	b := newCounter("b", FlagDoIt, &log)
	late := newCounter("late", FlagDoIt, &log)

	// the first member removes b and adds late; b must be skipped and
	// late must wait for the next sweep
	done := false
	remover := &hook{fn: func() {
		if done {
			return
		}
		done = true
		p.Remove(b)
		p.Add(late)
	}}
	remover.Name = "remover"
	remover.flags = FlagDoIt
	p.Add(remover)
	p.Add(a)
	p.Add(b)

	if n := p.DoIt(); n != 2 {
		t.Errorf("visited %d, want 2", n)
	}
	if strings.Join(log, ",") != "a" {
		t.Errorf("first sweep = %v, want [a]", log)
	}
	log = nil
	p.DoIt()
	if strings.Join(log, ",") != "a,late" {
		t.Errorf("second sweep = %v, want [a late]", log)
	}
}

// hook runs fn on DoIt.
type hook struct {
	Object
	fn func()
}

func (h *hook) DoIt() { h.fn() }

func TestCastHandleEventStopsAtClaim(t *testing.T) {
	s, _, _ := testStage(t)
	p := s.NewPlane("p", R(0, 0, 10, 10), 0, PlaneColored)
	var log []string
	first := newCounter("first", FlagEvents, &log)
	second := newCounter("second", FlagEvents, &log)
	third := newCounter("third", FlagEvents, &log)
	second.claim = true
	p.Add(first)
	p.Add(second)
	p.Add(third)

	ev := Event{Type: EventMousePress}
	if !p.HandleEvent(&ev) || !ev.Claimed {
		t.Fatal("event should be claimed")
	}
	if strings.Join(log, ",") != "first,second" {
		t.Errorf("offered to %v", log)
	}
}

func TestCastAddEventHandlerLate(t *testing.T) {
	s, _, _ := testStage(t)
	p := s.NewPlane("p", R(0, 0, 10, 10), 0, PlaneColored)
	c := newCounter("c", FlagDoIt, nil)
	p.Add(c)

	p.Cast().AddEventHandler(c)
	p.Cast().AddEventHandler(c)
	if p.Cast().NumEventHandlers() != 1 || !c.Flags().Has(FlagEvents) {
		t.Error("AddEventHandler should register once and set the flag")
	}
	p.Cast().RemoveEventHandler(c)
	if p.Cast().NumEventHandlers() != 0 || c.Flags().Has(FlagEvents) {
		t.Error("RemoveEventHandler should clear")
	}
	if p.Cast().NumDoIts() != 1 {
		t.Error("doIt membership should survive")
	}
}

func TestObjectDisposeReleasesHandle(t *testing.T) {
	s, _, _ := testStage(t)
	p := s.NewPlane("p", R(0, 0, 10, 10), 0, PlaneColored)
	c := newCounter("c", FlagDoIt, nil)
	p.Add(c)
	h := c.Handle()

	c.Dispose()
	if !c.IsDisposed() || c.Cast() != nil {
		t.Error("Dispose should leave the cast")
	}
	if _, ok := s.Registry().Lookup(h); ok {
		t.Error("handle should be released")
	}
	c.Dispose()
}
