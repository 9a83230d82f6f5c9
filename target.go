package lantern

// Target is an object that can be hit-tested and receive input events.
// Points are plane-local.
type Target interface {
	Entity
	EventHandler
	CheckIsOnMe(pt Point) bool
}

var (
	_ Target = (*Poly)(nil)
	_ Target = (*Hotspot)(nil)
	_ Target = (*Exit)(nil)
	_ Target = (*Button)(nil)
	_ Target = (*Cel)(nil)
)

// Hotspot is an axis-aligned interactive zone. It registers itself with
// its plane's event list on Enable and leaves it on Disable or Dispose.
type Hotspot struct {
	Object

	Rect    Rect
	Handler EventHandler

	self    Entity
	plane   *Plane
	enabled bool
}

// NewHotspot creates a disabled hotspot. Add it to a plane, then Enable.
func NewHotspot(name string, rect Rect, handler EventHandler) *Hotspot {
	h := &Hotspot{}
	h.init(h, name, rect, handler)
	return h
}

// init wires self so that cast registration stores the outermost type.
func (h *Hotspot) init(self Entity, name string, rect Rect, handler EventHandler) {
	h.self = self
	h.Name = name
	h.Rect = rect
	h.Handler = handler
}

func (h *Hotspot) bindPlane(p *Plane) {
	h.plane = p
}

// Plane returns the owning plane, or nil.
func (h *Hotspot) Plane() *Plane {
	return h.plane
}

// IsEnabled reports whether the hotspot takes events.
func (h *Hotspot) IsEnabled() bool {
	return h.enabled
}

// Enable joins the plane's event list. No-op when already enabled.
func (h *Hotspot) Enable() {
	if h.enabled {
		return
	}
	h.enabled = true
	h.flags |= FlagEvents
	if h.plane != nil && !h.disposed {
		h.plane.cast.AddEventHandler(h.self)
	}
}

// Disable leaves the plane's event list. No-op when already disabled.
func (h *Hotspot) Disable() {
	if !h.enabled {
		return
	}
	h.enabled = false
	if h.plane != nil {
		h.plane.cast.RemoveEventHandler(h.self)
	}
	h.flags &^= FlagEvents
}

// CheckIsOnMe reports whether pt is inside Rect.
func (h *Hotspot) CheckIsOnMe(pt Point) bool {
	return h.Rect.Contains(pt)
}

// HandleEvent passes mouse events inside Rect to Handler.
func (h *Hotspot) HandleEvent(ev *Event) bool {
	if !h.enabled || h.Handler == nil || !ev.Type.IsMouse() || !h.CheckIsOnMe(ev.Pos) {
		return false
	}
	return h.Handler.HandleEvent(ev)
}

// Dispose disables the hotspot if needed and releases it.
func (h *Hotspot) Dispose() {
	h.Disable()
	h.release()
}

// Exit is a room-transition zone. While enabled, a mouse release inside it
// ends any cursor highlight, requests the target room and claims the
// event. Hovering shows the highlight cel.
type Exit struct {
	Hotspot

	Room         int
	HighlightCel int
}

// NewExit creates an enabled-on-add exit to room.
func NewExit(rect Rect, room int) *Exit {
	e := &Exit{Room: room, HighlightCel: -1}
	e.init(e, "exit", rect, nil)
	e.enabled = true
	e.flags = FlagEvents
	return e
}

// HandleEvent implements the exit state machine.
func (e *Exit) HandleEvent(ev *Event) bool {
	if !e.enabled || e.plane == nil {
		return false
	}
	stage := e.plane.stage
	switch ev.Type {
	case EventMouseMove:
		if e.CheckIsOnMe(ev.Pos) {
			if e.HighlightCel >= 0 {
				stage.cursor.Highlight(e, e.HighlightCel)
			}
		} else {
			stage.cursor.End(e)
		}
		return false
	case EventMouseRelease:
		if !e.CheckIsOnMe(ev.Pos) {
			return false
		}
		stage.cursor.EndAll()
		stage.rooms.NewRoom(e.Room)
		ev.Claim()
		return true
	}
	return false
}

// Dispose ends a highlight this exit owns, then disposes the hotspot.
func (e *Exit) Dispose() {
	if e.plane != nil {
		e.plane.stage.cursor.End(e)
	}
	e.Hotspot.Dispose()
}

// Button fires Handler on a press followed by a release inside its rect.
type Button struct {
	Hotspot

	pressed bool
}

// NewButton creates an enabled-on-add button.
func NewButton(name string, rect Rect, handler EventHandler) *Button {
	b := &Button{}
	b.init(b, name, rect, handler)
	b.enabled = true
	b.flags = FlagEvents
	return b
}

// IsPressed reports whether a press started inside the button.
func (b *Button) IsPressed() bool {
	return b.pressed
}

// HandleEvent tracks press/release and fires on release inside.
func (b *Button) HandleEvent(ev *Event) bool {
	if !b.enabled {
		return false
	}
	switch ev.Type {
	case EventMousePress:
		if b.CheckIsOnMe(ev.Pos) {
			b.pressed = true
			ev.Claim()
			return true
		}
	case EventMouseRelease:
		if !b.pressed {
			return false
		}
		b.pressed = false
		if b.CheckIsOnMe(ev.Pos) && b.Handler != nil {
			b.Handler.HandleEvent(ev)
		}
		ev.Claim()
		return true
	}
	return false
}
