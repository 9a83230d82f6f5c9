package lantern

// Point is a 2D integer position. Arithmetic is component-wise.
type Point struct {
	X, Y int16
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int16) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Rect is a half-open axis-aligned rectangle: Left and Top are inside,
// Right and Bottom are not. Y increases downward.
type Rect struct {
	Left, Top, Right, Bottom int16
}

// R is shorthand for Rect{left, top, right, bottom}.
func R(left, top, right, bottom int16) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns Right-Left.
func (r Rect) Width() int16 {
	return r.Right - r.Left
}

// Height returns Bottom-Top.
func (r Rect) Height() int16 {
	return r.Bottom - r.Top
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies inside r. Right and Bottom edges are
// outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right &&
		p.Y >= r.Top && p.Y < r.Bottom
}

// Extend returns the smallest rectangle containing both r and o.
// An empty operand is ignored.
func (r Rect) Extend(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

// Intersect returns the overlap of r and o, or the zero Rect when they do
// not overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{r.Left + d.X, r.Top + d.Y, r.Right + d.X, r.Bottom + d.Y}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{r.Left, r.Top}
}

// PlaneType selects how a plane is composited.
type PlaneType uint8

const (
	PlaneColored     PlaneType = iota // filled with Plane.Color
	PlaneTransparent                  // shows planes beneath
	PlanePicture                      // shows a background picture resource
	PlaneOpaque                       // opaque, contents fully owned by screen items
)

func (t PlaneType) String() string {
	switch t {
	case PlaneColored:
		return "colored"
	case PlaneTransparent:
		return "transparent"
	case PlanePicture:
		return "picture"
	case PlaneOpaque:
		return "opaque"
	}
	return "unknown"
}

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventNone         EventType = iota // null event (no input this frame)
	EventMousePress                    // a mouse button went down
	EventMouseRelease                  // a mouse button went up
	EventMouseMove                     // the pointer moved with no button change
	EventKeyDown                       // a key was pressed
	EventKeyUp                         // a key was released
	EventQuit                          // the host asked the game to quit
)

func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventMousePress:
		return "mouse-press"
	case EventMouseRelease:
		return "mouse-release"
	case EventMouseMove:
		return "mouse-move"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventQuit:
		return "quit"
	}
	return "unknown"
}

// IsMouse reports whether t carries a meaningful pointer position.
func (t EventType) IsMouse() bool {
	return t == EventMousePress || t == EventMouseRelease || t == EventMouseMove
}

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Event is a single polled input event. Pos is in global screen coordinates
// except while a plane is handling it, when it is plane-local.
type Event struct {
	Type      EventType
	Pos       Point
	Key       int
	Modifiers KeyModifiers
	Claimed   bool
}

// Claim marks the event as handled.
func (e *Event) Claim() {
	e.Claimed = true
}
