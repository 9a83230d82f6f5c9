package lantern

import (
	"strings"
	"testing"
)

type recordStore struct {
	recs []DispatchRecord
}

func (r *recordStore) EmitEvent(rec DispatchRecord) { r.recs = append(r.recs, rec) }

func named(log *[]string, name string, claim bool) EventHandler {
	return EventHandlerFunc(func(ev *Event) bool {
		*log = append(*log, name)
		return claim
	})
}

func TestUserDispatchOrder(t *testing.T) {
	s, _, _ := testStage(t)
	var log []string
	store := &recordStore{}
	s.SetEntityStore(store)

	top := s.NewPlane("top", R(0, 0, 50, 50), 10, PlaneTransparent)
	elsewhere := s.NewPlane("elsewhere", R(200, 200, 300, 300), 5, PlaneTransparent)
	bottom := s.NewPlane("bottom", R(0, 0, 100, 100), 0, PlaneColored)
	top.Add(newCounter("top", FlagEvents, &log))
	elsewhere.Add(newCounter("elsewhere", FlagEvents, &log))
	bottom.Add(newCounter("bottom", FlagEvents, &log))
	s.User().AddPrimaDonna(named(&log, "prima", false))
	s.User().AddOrphan(named(&log, "orphan", false))

	s.Inject().InjectPress(10, 10)
	s.Update()

	want := "prima,top,bottom,orphan"
	if got := strings.Join(log, ","); got != want {
		t.Errorf("order = %s, want %s", got, want)
	}
	if len(store.recs) != 1 || store.recs[0].Route != RouteUnclaimed || store.recs[0].Frame != 1 {
		t.Errorf("records = %+v", store.recs)
	}
}

func TestUserPlaneClaimAndLocalPosition(t *testing.T) {
	s, _, _ := testStage(t)
	store := &recordStore{}
	s.SetEntityStore(store)
	p := s.NewPlane("panel", R(100, 100, 200, 200), 0, PlaneColored)

	var seen Point
	h := NewHotspot("zone", R(0, 0, 20, 20), EventHandlerFunc(func(ev *Event) bool {
		seen = ev.Pos
		return true
	}))
	p.Add(h)
	h.Enable()

	s.Inject().InjectPress(105, 106)
	s.Update()
	if seen != Pt(5, 6) {
		t.Errorf("handler saw %v, want plane-local (5,6)", seen)
	}
	rec := store.recs[0]
	if rec.Route != RoutePlane || rec.PlaneName != "panel" {
		t.Errorf("record = %+v", rec)
	}
	if rec.Event.Pos != Pt(105, 106) || !rec.Event.Claimed {
		t.Errorf("recorded event = %+v, want global and claimed", rec.Event)
	}
}

func TestUserHogsAreExclusive(t *testing.T) {
	s, _, _ := testStage(t)
	var log []string
	p := s.NewPlane("p", R(0, 0, 100, 100), 0, PlaneColored)
	p.Add(newCounter("plane", FlagEvents, &log))
	s.User().AddPrimaDonna(named(&log, "prima", false))
	s.User().AddOrphan(named(&log, "orphan", false))

	lower := s.User().AddHog(named(&log, "lower", true), false)
	upper := s.User().AddHog(named(&log, "upper", false), false)
	if s.User().NumHogs() != 2 {
		t.Fatalf("NumHogs = %d", s.User().NumHogs())
	}

	s.Inject().InjectPress(10, 10)
	s.Update()
	if got := strings.Join(log, ","); got != "upper,lower" {
		t.Errorf("hogs: %s, want upper,lower", got)
	}

	log = nil
	lower.Remove()
	upper.Remove()
	upper.Remove()
	s.Inject().InjectPress(10, 10)
	s.Update()
	if got := strings.Join(log, ","); got != "prima,plane,orphan" {
		t.Errorf("after removing hogs: %s", got)
	}
}

func TestUserModalHogRepolls(t *testing.T) {
	s, _, _ := testStage(t)
	var keys []int
	s.User().AddHog(EventHandlerFunc(func(ev *Event) bool {
		if ev.Type != EventKeyDown {
			return false
		}
		keys = append(keys, ev.Key)
		return ev.Key == 13
	}), true)

	s.Inject().InjectMove(1, 1)
	s.Inject().InjectMove(2, 2)
	s.Inject().Inject(Event{Type: EventKeyDown, Key: 13})
	s.Inject().InjectMove(3, 3)

	if n := s.User().DoIt(); n != 3 {
		t.Errorf("dispatched %d, want 3 (stop at the claim)", n)
	}
	if len(keys) != 1 || s.Inject().Len() != 1 {
		t.Errorf("keys = %v, queued = %d", keys, s.Inject().Len())
	}
}

func TestUserHandsOff(t *testing.T) {
	s, _, _ := testStage(t)
	var log []string
	store := &recordStore{}
	s.SetEntityStore(store)
	s.User().AddOrphan(named(&log, "orphan", false))

	s.User().SetHandsOn(false)
	s.Inject().InjectPress(1, 1)
	s.Update()
	if len(log) != 0 || store.recs[0].Route != RouteDropped {
		t.Errorf("hands off should drop: log %v, route %v", log, store.recs[0].Route)
	}

	s.User().SetHandsOffFilter(func(ev *Event) bool { return ev.Type == EventKeyDown })
	s.Inject().Inject(Event{Type: EventKeyDown, Key: 1})
	s.Update()
	if len(log) != 1 {
		t.Error("filtered event should be dispatched with hands off")
	}

	s.User().SetHandsOn(true)
	if !s.User().IsHandsOn() {
		t.Error("hands should be back on")
	}
}

func TestUserQuitPassesHandsOff(t *testing.T) {
	s, _, _ := testStage(t)
	store := &recordStore{}
	s.SetEntityStore(store)
	s.User().SetHandsOn(false)

	s.Inject().InjectQuit()
	s.Update()
	if !s.QuitRequested() {
		t.Error("quit should be honoured with hands off")
	}
	if len(store.recs) != 1 || store.recs[0].Route != RouteUnclaimed {
		t.Errorf("records = %+v, want one unclaimed quit", store.recs)
	}
}

func TestUserKeyEventsUseLastPointer(t *testing.T) {
	s, _, _ := testStage(t)
	var pos Point
	s.User().AddOrphan(EventHandlerFunc(func(ev *Event) bool {
		pos = ev.Pos
		return false
	}))
	s.Inject().InjectMove(40, 30)
	s.Update()
	s.Inject().InjectKey(65, ModShift)
	s.Update()
	if pos != Pt(40, 30) || s.User().LastPosition() != Pt(40, 30) {
		t.Errorf("key event at %v, last %v", pos, s.User().LastPosition())
	}
}

func TestUserNullEvents(t *testing.T) {
	s, _, _ := testStage(t)
	nulls := 0
	s.User().AddOrphan(EventHandlerFunc(func(ev *Event) bool {
		if ev.Type == EventNone {
			nulls++
		}
		return false
	}))
	s.Update()
	if nulls != 0 {
		t.Error("nulls dispatched without SetHandlesNulls")
	}
	s.User().SetHandlesNulls(true)
	s.Update()
	if nulls != 1 {
		t.Errorf("nulls = %d, want 1", nulls)
	}
}

func TestUserHandlerRemovedDuringDispatch(t *testing.T) {
	s, _, _ := testStage(t)
	var log []string
	var second HandlerHandle
	s.User().AddPrimaDonna(EventHandlerFunc(func(ev *Event) bool {
		log = append(log, "first")
		second.Remove()
		return false
	}))
	second = s.User().AddPrimaDonna(named(&log, "second", true))

	s.Inject().InjectPress(1, 1)
	s.Update()
	if got := strings.Join(log, ","); got != "first" {
		t.Errorf("removed handler still ran: %s", got)
	}
}
