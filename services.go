package lantern

// Compositor draws planes and screen items. The stage calls it from the
// simulation goroutine only.
type Compositor interface {
	AddPlane(p *Plane)
	UpdatePlane(p *Plane)
	DeletePlane(p *Plane)
	RepaintPlane(p *Plane)

	AddScreenItem(si *ScreenItem)
	UpdateScreenItem(si *ScreenItem)
	DeleteScreenItem(si *ScreenItem)

	// NowSeenRect returns the global on-screen rectangle of si after
	// clipping and scaling, or false when nothing of it is visible.
	NowSeenRect(si *ScreenItem) (Rect, bool)
}

// Bitmap is a decoded 8-bit color-indexed image, row-major.
type Bitmap struct {
	Width, Height int
	Pixels        []byte
}

// Valid reports whether the pixel slice matches the dimensions.
func (b Bitmap) Valid() bool {
	return b.Width > 0 && b.Height > 0 && len(b.Pixels) == b.Width*b.Height
}

// ResourceLoader fetches decoded bitmaps by resource name. Missing
// resources are reported with an error wrapping ErrResourceNotFound.
type ResourceLoader interface {
	Bitmap(name string) (Bitmap, error)
}

// InputSource yields at most one input event per call.
type InputSource interface {
	Poll() (Event, bool)
}

// Clock provides a monotonic tick counter and wall-clock seconds.
type Clock interface {
	Ticks() uint64
	Seconds() int64
}

// Cursor is the host cursor. Highlight switches to the hover cel for an
// interactive zone; EndHighlight restores the normal cursor.
type Cursor interface {
	Highlight(cel int)
	EndHighlight()
}

// RoomChanger receives room-transition requests.
type RoomChanger interface {
	NewRoom(room int)
}

// EntityStore is the interface for optional ECS integration. When set on a
// Stage, every dispatched event is forwarded as a DispatchRecord.
type EntityStore interface {
	EmitEvent(rec DispatchRecord)
}

// DispatchRoute names who ended up with an event.
type DispatchRoute uint8

const (
	RouteDropped    DispatchRoute = iota // hands-off filter dropped it
	RouteHog                             // claimed by a hog
	RoutePrimaDonna                      // claimed by a prima donna
	RoutePlane                           // claimed inside a plane
	RouteOrphan                          // claimed by an orphan
	RouteUnclaimed                       // nobody claimed it
)

func (r DispatchRoute) String() string {
	switch r {
	case RouteDropped:
		return "dropped"
	case RouteHog:
		return "hog"
	case RoutePrimaDonna:
		return "prima-donna"
	case RoutePlane:
		return "plane"
	case RouteOrphan:
		return "orphan"
	case RouteUnclaimed:
		return "unclaimed"
	}
	return "unknown"
}

// DispatchRecord describes one dispatched event for the ECS bridge.
type DispatchRecord struct {
	Frame     uint64
	Event     Event
	Route     DispatchRoute
	PlaneName string
}

type nopCursor struct{}

func (nopCursor) Highlight(int) {}
func (nopCursor) EndHighlight() {}

type nopRooms struct{}

func (nopRooms) NewRoom(int) {}
