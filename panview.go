package lantern

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PanView is the window onto a panorama. Offset is the pan coordinate of
// the view's left screen edge and always lies in [0, Extent).
type PanView struct {
	// Width is the view width in screen pixels.
	Width int
	// Extent is the length of the pan axis, normally PanoramaHeight.
	Extent int

	// EdgeZone is the width in pixels of the hot strips at the left and
	// right screen edges that pan the view.
	EdgeZone int
	// EdgeSpeed is the pan distance per frame while the pointer is in an
	// edge zone.
	EdgeSpeed float64

	offset float64
	scroll *gween.Tween
}

// NewPanView creates a view of the given width over a pan axis of extent.
func NewPanView(width, extent int) *PanView {
	return &PanView{
		Width:     width,
		Extent:    extent,
		EdgeZone:  16,
		EdgeSpeed: 8,
	}
}

// Offset returns the pan coordinate at the left edge.
func (v *PanView) Offset() int {
	return int(math.Floor(v.offset))
}

// SetOffset jumps to off, wrapped into [0, Extent), and stops any scroll.
func (v *PanView) SetOffset(off float64) {
	v.scroll = nil
	v.offset = v.wrap(off)
}

// Pan moves the view by d, wrapping around the pan axis.
func (v *PanView) Pan(d float64) {
	v.offset = v.wrap(v.offset + d)
}

func (v *PanView) wrap(off float64) float64 {
	if v.Extent <= 0 {
		return 0
	}
	ext := float64(v.Extent)
	off = math.Mod(off, ext)
	if off < 0 {
		off += ext
	}
	return off
}

// ScrollTo eases the view to off over duration seconds, going the short
// way round.
func (v *PanView) ScrollTo(off float64, duration float32, easeFn ease.TweenFunc) {
	target := v.wrap(off)
	ext := float64(v.Extent)
	d := target - v.offset
	if d > ext/2 {
		d -= ext
	} else if d < -ext/2 {
		d += ext
	}
	v.scroll = gween.New(float32(v.offset), float32(v.offset+d), duration, easeFn)
}

// Scrolling reports whether a ScrollTo is in progress.
func (v *PanView) Scrolling() bool {
	return v.scroll != nil
}

// Update advances any scroll by dt seconds.
func (v *PanView) Update(dt float32) {
	if v.scroll == nil {
		return
	}
	val, done := v.scroll.Update(dt)
	v.offset = v.wrap(float64(val))
	if done {
		v.scroll = nil
	}
}

// EdgePan pans when the screen x of the pointer is inside an edge zone.
// It returns true if the view moved. Scrolls in progress win.
func (v *PanView) EdgePan(screenX int) bool {
	if v.scroll != nil || v.EdgeZone <= 0 {
		return false
	}
	switch {
	case screenX < v.EdgeZone:
		v.Pan(-v.EdgeSpeed)
		return true
	case screenX >= v.Width-v.EdgeZone:
		v.Pan(v.EdgeSpeed)
		return true
	}
	return false
}

// ToPanorama maps a view-local screen point to panorama coordinates.
func (v *PanView) ToPanorama(pt Point) Point {
	return Point{X: int16(mod(v.Offset()+int(pt.X), max(v.Extent, 1))), Y: pt.Y}
}

// ToScreen maps a panorama point to view-local screen coordinates, taking
// the nearest copy of the point around the wrap.
func (v *PanView) ToScreen(pt Point) Point {
	ext := max(v.Extent, 1)
	x := mod(int(pt.X)-v.Offset(), ext)
	if x > ext/2 {
		x -= ext
	}
	return Point{X: int16(x), Y: pt.Y}
}

// Render un-rotates the visible slice of backdrop into dst, a row-major
// Width×backdrop.Width screen buffer.
func (v *PanView) Render(backdrop *Image, dst []byte) {
	h := backdrop.Height
	if h == 0 {
		return
	}
	rows := backdrop.Width
	off := v.Offset()
	for x := 0; x < v.Width; x++ {
		src := (h - 1 - mod(off+x, h)) * backdrop.Width
		for y := 0; y < rows; y++ {
			dst[y*v.Width+x] = backdrop.pixels[src+y]
		}
	}
}
