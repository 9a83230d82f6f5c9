package ebitenhost

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/phanxgames/lantern"
)

func TestInputPollOrder(t *testing.T) {
	in := NewInput()
	if _, ok := in.Poll(); ok {
		t.Fatal("empty input should not yield an event")
	}
	in.push(lantern.Event{Type: lantern.EventMouseMove, Pos: lantern.Pt(1, 2)})
	in.push(lantern.Event{Type: lantern.EventMousePress, Pos: lantern.Pt(1, 2)})
	in.push(lantern.Event{Type: lantern.EventKeyDown, Key: 7})

	if in.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", in.Pending())
	}
	want := []lantern.EventType{lantern.EventMouseMove, lantern.EventMousePress, lantern.EventKeyDown}
	for i, w := range want {
		ev, ok := in.Poll()
		if !ok || ev.Type != w {
			t.Fatalf("event %d = %v (%v), want %v", i, ev.Type, ok, w)
		}
	}
	if in.Pending() != 0 {
		t.Errorf("Pending = %d after draining", in.Pending())
	}
}

func TestInputCoalescesTrailingMoves(t *testing.T) {
	in := NewInput()
	in.push(lantern.Event{Type: lantern.EventMouseMove, Pos: lantern.Pt(1, 1)})
	in.push(lantern.Event{Type: lantern.EventMousePress, Pos: lantern.Pt(1, 1)})
	in.push(lantern.Event{Type: lantern.EventMouseRelease, Pos: lantern.Pt(1, 1)})

	// one event is polled per frame while the pointer keeps moving
	for f := 2; f <= 6; f++ {
		in.Poll()
		in.push(lantern.Event{Type: lantern.EventMouseMove, Pos: lantern.Pt(int16(f), 1)})
	}
	if in.Pending() != 1 {
		t.Fatalf("Pending = %d, want only the latest move", in.Pending())
	}
	ev, _ := in.Poll()
	if ev.Type != lantern.EventMouseMove || ev.Pos != lantern.Pt(6, 1) {
		t.Errorf("last event = %+v, want move to (6,1)", ev)
	}
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock()
	base := c.start
	now := base
	c.now = func() time.Time { return now }

	c.Tick()
	c.Tick()
	if c.Ticks() != 2 {
		t.Errorf("Ticks = %d, want 2", c.Ticks())
	}
	if c.Seconds() != 0 {
		t.Errorf("Seconds = %d, want 0", c.Seconds())
	}
	now = base.Add(2500 * time.Millisecond)
	if c.Seconds() != 2 {
		t.Errorf("Seconds = %d, want 2", c.Seconds())
	}
}

func TestRGBATableConvert(t *testing.T) {
	pal := color.Palette{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{10, 20, 30, 255},
	}
	tab := newRGBATable(pal)

	got := tab.convert([]byte{1, 0, 200}, nil)
	want := []byte{10, 20, 30, 255, 0, 0, 0, 255, 0, 0, 0, 255}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, got[i], want[i])
		}
	}

	// dst is reused when large enough
	again := tab.convert([]byte{1}, got)
	if &again[0] != &got[0] {
		t.Error("convert should reuse dst")
	}
	if c := tab.color(1); c != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("color(1) = %v", c)
	}
}

func TestStatsOverlayRefresh(t *testing.T) {
	s := lantern.NewStage(lantern.Options{})
	p := s.NewPlane("p", lantern.R(0, 0, 10, 10), 0, lantern.PlaneColored)
	p.Add(lantern.NewScreenItem("a", lantern.CelInfo{}, lantern.Pt(0, 0), 0))

	o := newStatsOverlay(4)
	if !o.update(s, 59.5, 60) {
		t.Fatal("first update should render the text")
	}
	if !strings.Contains(o.text, "FPS: 59.5") || !strings.Contains(o.text, "planes 1  items 1") {
		t.Errorf("text = %q", o.text)
	}
	if o.update(s, 1, 1) {
		t.Error("refreshed again after one quarter-second tick")
	}
	if !o.update(s, 1, 1) {
		t.Error("should refresh after half a second")
	}
}
