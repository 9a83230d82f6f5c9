// Package ebitenhost runs a lantern Stage inside an ebiten game: it
// supplies the compositor, input source, clock and cursor, and drives
// Stage.Update from ebiten's fixed-rate Update.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/lantern"
)

// Input turns ebiten's per-frame input state into discrete lantern events.
// Collect runs once per ebiten Update; the stage then polls the events one
// at a time.
type Input struct {
	queue   []lantern.Event
	keyBuf  []ebiten.Key
	lastPos lantern.Point
	hasPos  bool
}

// NewInput creates an empty input source.
func NewInput() *Input {
	return &Input{}
}

// Poll pops the oldest collected event.
func (in *Input) Poll() (lantern.Event, bool) {
	if len(in.queue) == 0 {
		return lantern.Event{}, false
	}
	ev := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]
	return ev, true
}

// Pending returns the number of collected events not yet polled.
func (in *Input) Pending() int {
	return len(in.queue)
}

// push queues ev. A move replaces a move still waiting at the tail, so a
// backlog left by clicks drains while the pointer keeps moving.
func (in *Input) push(ev lantern.Event) {
	if n := len(in.queue); n > 0 && ev.Type == lantern.EventMouseMove && in.queue[n-1].Type == lantern.EventMouseMove {
		in.queue[n-1] = ev
		return
	}
	in.queue = append(in.queue, ev)
}

// Collect samples ebiten input for this frame: pointer movement, button
// edges, key edges and window close.
func (in *Input) Collect() {
	mods := readModifiers()
	mx, my := ebiten.CursorPosition()
	pos := lantern.Pt(int16(mx), int16(my))

	if !in.hasPos || pos != in.lastPos {
		in.hasPos = true
		in.lastPos = pos
		in.push(lantern.Event{Type: lantern.EventMouseMove, Pos: pos, Modifiers: mods})
	}
	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight} {
		if inpututil.IsMouseButtonJustPressed(b) {
			in.push(lantern.Event{Type: lantern.EventMousePress, Pos: pos, Key: int(b), Modifiers: mods})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			in.push(lantern.Event{Type: lantern.EventMouseRelease, Pos: pos, Key: int(b), Modifiers: mods})
		}
	}

	in.keyBuf = inpututil.AppendJustPressedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		in.push(lantern.Event{Type: lantern.EventKeyDown, Key: int(k), Modifiers: mods})
	}
	in.keyBuf = inpututil.AppendJustReleasedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		in.push(lantern.Event{Type: lantern.EventKeyUp, Key: int(k), Modifiers: mods})
	}

	if ebiten.IsWindowBeingClosed() {
		in.push(lantern.Event{Type: lantern.EventQuit})
	}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() lantern.KeyModifiers {
	var mods lantern.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= lantern.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= lantern.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= lantern.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= lantern.ModMeta
	}
	return mods
}
