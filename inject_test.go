package lantern

import "testing"

type sliceInput struct {
	events []Event
}

func (s *sliceInput) Poll() (Event, bool) {
	if len(s.events) == 0 {
		return Event{}, false
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true
}

func drain(q *QueueInput) []Event {
	var out []Event
	for {
		ev, ok := q.Poll()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func TestInjectClick(t *testing.T) {
	q := NewQueueInput(nil)
	q.InjectClick(50, 60)
	if q.Len() != 2 {
		t.Fatalf("expected 2 queued events, got %d", q.Len())
	}
	evs := drain(q)
	if evs[0].Type != EventMousePress || evs[1].Type != EventMouseRelease {
		t.Errorf("types = %v, %v", evs[0].Type, evs[1].Type)
	}
	if evs[0].Pos != Pt(50, 60) || evs[1].Pos != Pt(50, 60) {
		t.Error("click should press and release at the same point")
	}
}

func TestInjectDrag(t *testing.T) {
	q := NewQueueInput(nil)
	q.InjectDrag(Pt(0, 0), Pt(30, 60), 4)
	evs := drain(q)
	want := []Event{
		{Type: EventMousePress, Pos: Pt(0, 0)},
		{Type: EventMouseMove, Pos: Pt(10, 20)},
		{Type: EventMouseMove, Pos: Pt(20, 40)},
		{Type: EventMouseRelease, Pos: Pt(30, 60)},
	}
	if len(evs) != len(want) {
		t.Fatalf("got %d events, want %d", len(evs), len(want))
	}
	for i := range want {
		if evs[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, evs[i], want[i])
		}
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	q := NewQueueInput(nil)
	q.InjectDrag(Pt(0, 0), Pt(5, 5), 0)
	if q.Len() != 2 {
		t.Errorf("Len = %d, want press and release only", q.Len())
	}
}

func TestInjectKeyAndQuit(t *testing.T) {
	q := NewQueueInput(nil)
	q.InjectKey(32, ModCtrl)
	q.InjectQuit()
	evs := drain(q)
	if len(evs) != 3 {
		t.Fatalf("got %d events", len(evs))
	}
	if evs[0].Type != EventKeyDown || evs[1].Type != EventKeyUp || evs[0].Key != 32 || evs[1].Modifiers != ModCtrl {
		t.Errorf("key events = %+v %+v", evs[0], evs[1])
	}
	if evs[2].Type != EventQuit {
		t.Errorf("last = %v, want quit", evs[2].Type)
	}
}

func TestInjectClearsClaim(t *testing.T) {
	q := NewQueueInput(nil)
	q.Inject(Event{Type: EventMouseMove, Claimed: true})
	ev, _ := q.Poll()
	if ev.Claimed {
		t.Error("queued events should start unclaimed")
	}
}

func TestQueueInputFallback(t *testing.T) {
	host := &sliceInput{events: []Event{
		{Type: EventMouseMove, Pos: Pt(1, 1)},
	}}
	q := NewQueueInput(host)
	q.InjectPress(9, 9)

	ev, ok := q.Poll()
	if !ok || ev.Type != EventMousePress {
		t.Fatal("queued events come before the fallback")
	}
	ev, ok = q.Poll()
	if !ok || ev.Pos != Pt(1, 1) {
		t.Fatal("empty queue should poll the fallback")
	}
	if _, ok := q.Poll(); ok {
		t.Error("both sources are empty")
	}
}

func TestInjectClear(t *testing.T) {
	q := NewQueueInput(nil)
	q.InjectClick(1, 1)
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len = %d after Clear", q.Len())
	}
}

func TestInjectThroughStage(t *testing.T) {
	s, _, _ := testStage(t)
	p := s.NewPlane("p", R(0, 0, 100, 100), 0, PlaneTransparent)
	clicked := false
	p.Add(NewButton("b", R(0, 0, 100, 100), EventHandlerFunc(func(*Event) bool {
		clicked = true
		return true
	})))

	s.Inject().InjectClick(50, 50)
	s.Update()
	if clicked {
		t.Error("click should not fire on the press frame")
	}
	s.Update()
	if !clicked {
		t.Error("click should fire on the release frame")
	}
}
