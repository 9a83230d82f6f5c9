package lantern

// Plane is a rectangular compositing surface. It owns exactly one Cast,
// created and destroyed with it. Rect is in global screen coordinates.
type Plane struct {
	Name string

	// Color is the fill palette index for PlaneColored planes.
	Color uint8
	// Picture names the background resource for PlanePicture planes.
	Picture string

	stage        *Stage
	cast         *Cast
	rect         Rect
	priority     int16
	typ          PlaneType
	dirty        bool
	shouldUpdate bool
	disposed     bool
}

// NewPlane creates a plane, registers it with the compositor and inserts
// it into the stage's plane list by descending priority. A new plane goes
// after existing planes of equal priority.
func (s *Stage) NewPlane(name string, rect Rect, priority int16, typ PlaneType) *Plane {
	p := &Plane{
		Name:         name,
		stage:        s,
		rect:         rect,
		priority:     priority,
		typ:          typ,
		shouldUpdate: true,
	}
	p.cast = newCast(name, s.registry, s.contract)
	s.planes.insert(p)
	s.compositor.AddPlane(p)
	return p
}

// Cast returns the plane's cast.
func (p *Plane) Cast() *Cast {
	return p.cast
}

// Stage returns the owning stage.
func (p *Plane) Stage() *Stage {
	return p.stage
}

// Rect returns the plane rectangle in global coordinates.
func (p *Plane) Rect() Rect {
	return p.rect
}

// Priority returns the stacking priority; higher is nearer the viewer.
func (p *Plane) Priority() int16 {
	return p.priority
}

// Type returns the plane type.
func (p *Plane) Type() PlaneType {
	return p.typ
}

// IsDirty reports whether changes are waiting for Update.
func (p *Plane) IsDirty() bool {
	return p.dirty
}

// IsDisposed reports whether Dispose has run.
func (p *Plane) IsDisposed() bool {
	return p.disposed
}

// ToLocal converts a global point to plane-local coordinates.
func (p *Plane) ToLocal(pt Point) Point {
	return pt.Sub(p.rect.Origin())
}

// ToGlobal converts a plane-local point to global coordinates.
func (p *Plane) ToGlobal(pt Point) Point {
	return pt.Add(p.rect.Origin())
}

// SetShouldUpdate controls whether SetPriority and SetRect push their
// change to the compositor immediately.
func (p *Plane) SetShouldUpdate(v bool) {
	p.shouldUpdate = v
}

// SetPriority changes the stacking priority and re-sorts the plane list.
func (p *Plane) SetPriority(priority int16) {
	if p.priority == priority {
		return
	}
	p.priority = priority
	p.stage.planes.reposition(p)
	p.markDirty()
}

// SetRect moves or resizes the plane.
func (p *Plane) SetRect(r Rect) {
	if p.rect == r {
		return
	}
	p.rect = r
	p.markDirty()
}

func (p *Plane) markDirty() {
	p.dirty = true
	if p.shouldUpdate {
		p.Update()
	}
}

// Update pushes pending changes to the compositor.
func (p *Plane) Update() {
	if !p.dirty || p.disposed {
		return
	}
	p.dirty = false
	p.stage.compositor.UpdatePlane(p)
}

// Repaint asks the compositor to redraw the whole plane.
func (p *Plane) Repaint() {
	if p.disposed {
		return
	}
	p.stage.compositor.RepaintPlane(p)
}

// Add adds e to the plane's cast.
func (p *Plane) Add(e Entity) {
	if p.disposed {
		p.stage.contract.violated("Plane.Add", "plane %q is disposed", p.Name)
		return
	}
	if b, ok := e.(planeBinder); ok {
		b.bindPlane(p)
	}
	p.cast.Add(e)
}

// Remove removes e from the plane's cast.
func (p *Plane) Remove(e Entity) {
	p.cast.Remove(e)
}

// HandleEvent offers a plane-local event to the cast.
func (p *Plane) HandleEvent(ev *Event) bool {
	return p.cast.HandleEvent(ev)
}

// DoIt runs the cast's per-frame sweep.
func (p *Plane) DoIt() int {
	return p.cast.DoIt()
}

// Dispose evicts every cast member, deletes the plane from the compositor
// and removes it from the plane list.
func (p *Plane) Dispose() {
	if p.disposed {
		return
	}
	p.cast.evictAll()
	p.disposed = true
	p.stage.compositor.DeletePlane(p)
	p.stage.planes.remove(p)
}

// planeBinder is implemented by objects that need to know their plane
// (screen items, hotspots) before joining its cast.
type planeBinder interface {
	bindPlane(p *Plane)
}

// PlaneList keeps planes ordered by descending priority.
type PlaneList struct {
	planes []*Plane
}

// insert places p before the first plane of strictly lower priority.
func (l *PlaneList) insert(p *Plane) {
	i := len(l.planes)
	for j, q := range l.planes {
		if q.priority < p.priority {
			i = j
			break
		}
	}
	l.planes = append(l.planes, nil)
	copy(l.planes[i+1:], l.planes[i:])
	l.planes[i] = p
}

func (l *PlaneList) remove(p *Plane) {
	for i, q := range l.planes {
		if q == p {
			copy(l.planes[i:], l.planes[i+1:])
			l.planes[len(l.planes)-1] = nil
			l.planes = l.planes[:len(l.planes)-1]
			return
		}
	}
}

func (l *PlaneList) reposition(p *Plane) {
	l.remove(p)
	l.insert(p)
}

// Planes returns a copy of the list, top priority first.
func (l *PlaneList) Planes() []*Plane {
	out := make([]*Plane, len(l.planes))
	copy(out, l.planes)
	return out
}

// Len returns the number of planes.
func (l *PlaneList) Len() int {
	return len(l.planes)
}

// Find returns the plane with the given name, or nil.
func (l *PlaneList) Find(name string) *Plane {
	for _, p := range l.planes {
		if p.Name == name {
			return p
		}
	}
	return nil
}
