package lantern

import "fmt"

// MemoryCompositor is a Compositor that keeps everything in memory. It is
// the default for stages without a host and is handy in tests: it counts
// calls and computes now-seen rectangles from item positions and sizes.
type MemoryCompositor struct {
	// CelSize reports the pixel size of a cel. The default uses the
	// bitmap size for raw bitmaps and Sizes for view cels.
	CelSize func(c CelInfo) (w, h int16)
	// Sizes maps CelInfo.Resource names to cel sizes.
	Sizes map[string]Point

	planes []*Plane
	items  map[*ScreenItem]struct{}

	Adds, Updates, Deletes, Repaints int
}

// NewMemoryCompositor creates an empty compositor.
func NewMemoryCompositor() *MemoryCompositor {
	return &MemoryCompositor{
		Sizes: make(map[string]Point),
		items: make(map[*ScreenItem]struct{}),
	}
}

func (m *MemoryCompositor) AddPlane(p *Plane) {
	m.planes = append(m.planes, p)
}

func (m *MemoryCompositor) UpdatePlane(p *Plane) {
	m.Updates++
}

func (m *MemoryCompositor) DeletePlane(p *Plane) {
	for i, q := range m.planes {
		if q == p {
			m.planes = append(m.planes[:i], m.planes[i+1:]...)
			return
		}
	}
}

func (m *MemoryCompositor) RepaintPlane(p *Plane) {
	m.Repaints++
}

func (m *MemoryCompositor) AddScreenItem(si *ScreenItem) {
	m.items[si] = struct{}{}
	m.Adds++
}

func (m *MemoryCompositor) UpdateScreenItem(si *ScreenItem) {
	m.Updates++
}

func (m *MemoryCompositor) DeleteScreenItem(si *ScreenItem) {
	delete(m.items, si)
	m.Deletes++
}

// NowSeenRect places the cel at its plane's global position and clips it
// to the plane rect.
func (m *MemoryCompositor) NowSeenRect(si *ScreenItem) (Rect, bool) {
	if _, ok := m.items[si]; !ok || si.plane == nil {
		return Rect{}, false
	}
	w, h := m.size(si.cel)
	origin := si.plane.ToGlobal(si.position)
	r := Rect{origin.X, origin.Y, origin.X + w, origin.Y + h}.Intersect(si.plane.rect)
	if r.Empty() {
		return Rect{}, false
	}
	return r, true
}

func (m *MemoryCompositor) size(c CelInfo) (int16, int16) {
	if m.CelSize != nil {
		return m.CelSize(c)
	}
	if c.Bitmap != nil {
		return int16(c.Bitmap.Width), int16(c.Bitmap.Height)
	}
	sz := m.Sizes[c.Resource()]
	return sz.X, sz.Y
}

// NumPlanes returns the number of registered planes.
func (m *MemoryCompositor) NumPlanes() int {
	return len(m.planes)
}

// Shown reports whether si is currently added.
func (m *MemoryCompositor) Shown(si *ScreenItem) bool {
	_, ok := m.items[si]
	return ok
}

// MapLoader is a ResourceLoader backed by a map.
type MapLoader map[string]Bitmap

// Bitmap returns the named bitmap or an error wrapping
// ErrResourceNotFound.
func (l MapLoader) Bitmap(name string) (Bitmap, error) {
	b, ok := l[name]
	if !ok {
		return Bitmap{}, fmt.Errorf("bitmap %q: %w", name, ErrResourceNotFound)
	}
	return b, nil
}

// ManualClock is a Clock advanced by hand.
type ManualClock struct {
	ticks   uint64
	seconds int64
}

// NewManualClock creates a clock at zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) Ticks() uint64 {
	return c.ticks
}

func (c *ManualClock) Seconds() int64 {
	return c.seconds
}

// Advance moves the tick counter forward by n.
func (c *ManualClock) Advance(n uint64) {
	c.ticks += n
}

// AdvanceSeconds moves the second counter forward by n.
func (c *ManualClock) AdvanceSeconds(n int64) {
	c.seconds += n
}
