package lantern

// Panorama ties a backdrop, its sprites and exits, and a view together. It
// is a plane cast member: DoIt advances scrolling, edge panning and exit
// hover; HandleEvent turns a release over an exit into a room change.
type Panorama struct {
	Object

	backdrop *Image
	view     *PanView
	sprites  []*Sprite
	exits    []*PanoramaExit
	plane    *Plane
	pointer  Point
	hasPtr   bool
	hover    *PanoramaExit
}

// NewPanorama creates a panorama over backdrop. Add it to a plane whose
// rect matches the view.
func NewPanorama(name string, backdrop *Image, view *PanView) *Panorama {
	p := &Panorama{backdrop: backdrop, view: view}
	p.Name = name
	p.flags = FlagDoIt | FlagEvents
	return p
}

func (p *Panorama) bindPlane(pl *Plane) {
	p.plane = pl
}

// Plane returns the owning plane, or nil.
func (p *Panorama) Plane() *Plane {
	return p.plane
}

// Backdrop returns the backdrop image.
func (p *Panorama) Backdrop() *Image {
	return p.backdrop
}

// View returns the pan view.
func (p *Panorama) View() *PanView {
	return p.view
}

// AddSprite draws s on top of every sprite already present. Adding a
// sprite twice does nothing.
func (p *Panorama) AddSprite(s *Sprite) {
	if p.HasSprite(s) {
		return
	}
	p.sprites = append(p.sprites, s)
	p.backdrop.Draw(s)
}

// RemoveSprite erases s and drops it. Sprites drawn after s are lifted
// and redrawn so their saved pixels stay correct.
func (p *Panorama) RemoveSprite(s *Sprite) {
	i := p.indexOf(s)
	if i < 0 {
		return
	}
	p.lift(i)
	copy(p.sprites[i:], p.sprites[i+1:])
	p.sprites[len(p.sprites)-1] = nil
	p.sprites = p.sprites[:len(p.sprites)-1]
	p.restack(i)
}

// SetSpriteCel switches s to frame n without breaking the draw order:
// s and every sprite above it are erased, then redrawn bottom up.
func (p *Panorama) SetSpriteCel(s *Sprite, n int) {
	i := p.indexOf(s)
	if i < 0 {
		s.SetCelNo(n)
		return
	}
	p.lift(i)
	s.SetCelNo(n)
	p.restack(i)
}

// lift erases sprites[i:] from the top down.
func (p *Panorama) lift(i int) {
	for j := len(p.sprites) - 1; j >= i; j-- {
		p.backdrop.Erase(p.sprites[j])
	}
}

func (p *Panorama) restack(i int) {
	for _, s := range p.sprites[i:] {
		p.backdrop.Draw(s)
	}
}

// HasSprite reports whether s is on the panorama.
func (p *Panorama) HasSprite(s *Sprite) bool {
	return p.indexOf(s) >= 0
}

func (p *Panorama) indexOf(s *Sprite) int {
	for i, x := range p.sprites {
		if x == s {
			return i
		}
	}
	return -1
}

// Sprites returns the sprites in draw order.
func (p *Panorama) Sprites() []*Sprite {
	out := make([]*Sprite, len(p.sprites))
	copy(out, p.sprites)
	return out
}

// AddExit adds a room exit.
func (p *Panorama) AddExit(e *PanoramaExit) {
	p.exits = append(p.exits, e)
}

// RemoveExit drops e, ending its cursor highlight.
func (p *Panorama) RemoveExit(e *PanoramaExit) {
	for i, x := range p.exits {
		if x == e {
			p.exits = append(p.exits[:i], p.exits[i+1:]...)
			break
		}
	}
	if p.hover == e {
		p.setHover(nil)
	}
}

// ClearExits drops every exit.
func (p *Panorama) ClearExits() {
	p.setHover(nil)
	p.exits = nil
}

// Exits returns the exits in insertion order.
func (p *Panorama) Exits() []*PanoramaExit {
	out := make([]*PanoramaExit, len(p.exits))
	copy(out, p.exits)
	return out
}

// ExitAt returns the first exit under the view-local point pt, or nil.
func (p *Panorama) ExitAt(pt Point) *PanoramaExit {
	pp := p.view.ToPanorama(pt)
	for _, e := range p.exits {
		if e.Contains(pp, p.view.Extent) {
			return e
		}
	}
	return nil
}

// DoIt advances scrolling and edge panning, then refreshes the hover.
func (p *Panorama) DoIt() {
	if p.plane != nil {
		p.view.Update(p.plane.stage.frameDt)
	}
	if !p.hasPtr {
		return
	}
	if p.view.EdgePan(int(p.pointer.X)) {
		p.setHover(p.ExitAt(p.pointer))
	}
}

// HandleEvent tracks the pointer and fires exits on mouse release.
func (p *Panorama) HandleEvent(ev *Event) bool {
	if !ev.Type.IsMouse() {
		return false
	}
	p.pointer = ev.Pos
	p.hasPtr = true
	e := p.ExitAt(ev.Pos)
	switch ev.Type {
	case EventMouseMove:
		p.setHover(e)
	case EventMouseRelease:
		if e == nil || p.plane == nil {
			return false
		}
		p.hover = nil
		p.plane.stage.cursor.EndAll()
		p.plane.stage.rooms.NewRoom(e.Room)
		ev.Claim()
		return true
	}
	return false
}

func (p *Panorama) setHover(e *PanoramaExit) {
	if p.plane == nil {
		p.hover = e
		return
	}
	cur := p.plane.stage.cursor
	if p.hover != nil && p.hover != e {
		cur.End(p.hover)
	}
	p.hover = e
	if e != nil {
		cur.Highlight(e, e.CursorCel)
	}
}

// Render draws the visible slice into dst, a row-major screen buffer of
// View().Width × Backdrop().Width pixels.
func (p *Panorama) Render(dst []byte) {
	p.view.Render(p.backdrop, dst)
}

// Dispose erases every sprite, drops the exits and releases the panorama.
func (p *Panorama) Dispose() {
	if p.disposed {
		return
	}
	for i := len(p.sprites) - 1; i >= 0; i-- {
		p.backdrop.Erase(p.sprites[i])
	}
	p.sprites = nil
	p.ClearExits()
	p.release()
}
