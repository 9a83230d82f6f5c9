package lantern

// Mover walks a cel to a destination along a Bresenham path, one step every
// MoveSpeed ticks. It lives in the cel's plane cast while moving and
// removes itself when done. The caller is cued once, on arrival or on
// Dispose, whichever comes first.
type Mover struct {
	Object

	cel    *Cel
	path   *Bresenham
	caller Cuer
	clock  Clock
	last   uint64
	cued   bool
}

// NewMover starts moving cel to dest. The cel must be on a plane.
func NewMover(cel *Cel, dest Point, caller Cuer) *Mover {
	m := &Mover{
		cel:    cel,
		path:   NewBresenham(cel.Position(), dest, cel.StepSize),
		caller: caller,
	}
	m.Name = cel.Name + ".mover"
	m.flags = FlagDoIt
	p := cel.Plane()
	if p == nil {
		m.disposed = true
		m.finish()
		return m
	}
	m.clock = p.stage.clock
	m.last = m.clock.Ticks()
	p.Add(m)
	return m
}

// Cel returns the cel being moved.
func (m *Mover) Cel() *Cel {
	return m.cel
}

// Path returns the underlying stepper.
func (m *Mover) Path() *Bresenham {
	return m.path
}

// DoIt takes one step when MoveSpeed ticks have elapsed.
func (m *Mover) DoIt() {
	if m.disposed {
		return
	}
	now := m.clock.Ticks()
	if now-m.last < uint64(max(m.cel.MoveSpeed, 0)) {
		return
	}
	m.last = now
	pt, done := m.path.DoMove()
	m.cel.SetPosition(pt)
	m.cel.Update()
	if done {
		m.Dispose()
	}
}

// Dispose stops the mover, leaves the cast and cues the caller once.
func (m *Mover) Dispose() {
	if m.disposed {
		return
	}
	m.release()
	m.finish()
}

func (m *Mover) finish() {
	if m.cued || m.caller == nil {
		return
	}
	m.cued = true
	m.caller.Cue()
}
