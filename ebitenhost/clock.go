package ebitenhost

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameClock counts ebiten updates as ticks and measures seconds from its
// creation.
type FrameClock struct {
	ticks uint64
	start time.Time
	now   func() time.Time
}

// NewFrameClock creates a clock starting now.
func NewFrameClock() *FrameClock {
	return &FrameClock{start: time.Now(), now: time.Now}
}

// Tick advances the tick counter. Game.Update calls it once per frame.
func (c *FrameClock) Tick() {
	c.ticks++
}

func (c *FrameClock) Ticks() uint64 {
	return c.ticks
}

func (c *FrameClock) Seconds() int64 {
	return int64(c.now().Sub(c.start) / time.Second)
}

// Cursor switches the system cursor to a pointer while an exit is
// highlighted.
type Cursor struct {
	cel    int
	active bool
}

// Highlight shows the hover cursor for cel.
func (c *Cursor) Highlight(cel int) {
	c.cel = cel
	c.active = true
	ebiten.SetCursorShape(ebiten.CursorShapePointer)
}

// EndHighlight restores the default cursor.
func (c *Cursor) EndHighlight() {
	c.active = false
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}

// Active returns the highlighted cel and whether a highlight is shown.
func (c *Cursor) Active() (int, bool) {
	return c.cel, c.active
}
