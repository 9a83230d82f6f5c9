package lantern

// Cel is a screen item that is also a hit target. Its hit-test bounds are
// plane-local and recomputed from the compositor's now-seen rectangle
// after every update. When the compositor reports nothing visible the
// previous bounds are kept.
type Cel struct {
	ScreenItem

	Handler EventHandler

	// CycleSpeed is the number of ticks between cel advances for cyclers.
	CycleSpeed int
	// MoveSpeed is the number of ticks between mover steps.
	MoveSpeed int
	// StepSize is the distance per mover step on each axis.
	StepSize Point

	bounds Rect
}

// NewCel creates a hidden cel. Add it to a plane, then Show.
func NewCel(name string, cel CelInfo, pos Point, priority int16) *Cel {
	c := &Cel{
		CycleSpeed: 6,
		MoveSpeed:  6,
		StepSize:   Pt(3, 2),
	}
	c.init(name, cel, pos, priority)
	return c
}

// Bounds returns the plane-local hit-test rectangle.
func (c *Cel) Bounds() Rect {
	return c.bounds
}

// SetHandler installs h and joins the plane's event list when h is
// non-nil. A nil h leaves the event list.
func (c *Cel) SetHandler(h EventHandler) {
	c.Handler = h
	if c.cast == nil {
		if h != nil {
			c.flags |= FlagEvents
		} else {
			c.flags &^= FlagEvents
		}
		return
	}
	if h != nil {
		c.cast.AddEventHandler(c)
	} else {
		c.cast.RemoveEventHandler(c)
	}
}

// Show materializes the cel and refreshes its bounds.
func (c *Cel) Show() {
	c.ScreenItem.Show()
	c.refreshBounds()
}

// Update pushes pending changes and refreshes bounds.
func (c *Cel) Update() {
	if !c.visible || !c.dirty {
		return
	}
	c.ScreenItem.Update()
	c.refreshBounds()
}

// ForceUpdate pushes the current state and refreshes bounds.
func (c *Cel) ForceUpdate() {
	c.ScreenItem.ForceUpdate()
	c.refreshBounds()
}

func (c *Cel) refreshBounds() {
	if !c.visible || c.plane == nil {
		return
	}
	r, ok := c.NowSeenRect()
	if !ok {
		if log := c.plane.stage.log; log != nil {
			log.Warn("cel bounds stale", "cel", c.Name, "bounds", c.bounds)
		}
		return
	}
	c.bounds = r.Translate(Point{}.Sub(c.plane.rect.Origin()))
}

// CheckIsOnMe reports whether pt is inside the last known bounds.
func (c *Cel) CheckIsOnMe(pt Point) bool {
	return c.bounds.Contains(pt)
}

// HandleEvent passes mouse events on the cel to Handler.
func (c *Cel) HandleEvent(ev *Event) bool {
	if c.Handler == nil || !c.visible || !ev.Type.IsMouse() || !c.CheckIsOnMe(ev.Pos) {
		return false
	}
	return c.Handler.HandleEvent(ev)
}

// Dispose hides and releases the cel.
func (c *Cel) Dispose() {
	c.Hide()
	c.release()
}
