package lantern

// cycler is the shared cadence for cel animation: it fires every speed
// ticks while it is in a cast.
type cycler struct {
	Object

	clock  Clock
	last   uint64
	caller Cuer
	cued   bool
}

func (c *cycler) due(speed int) bool {
	now := c.clock.Ticks()
	if now-c.last < uint64(max(speed, 0)) {
		return false
	}
	c.last = now
	return true
}

func (c *cycler) finish() {
	c.release()
	if c.cued || c.caller == nil {
		return
	}
	c.cued = true
	c.caller.Cue()
}

// ForwardCycler loops a cel through its loop's cels forever, one cel every
// CycleSpeed ticks.
type ForwardCycler struct {
	cycler

	cel     *Cel
	numCels int16
}

// NewForwardCycler starts cycling cel, which must be on a plane, through
// numCels cels.
func NewForwardCycler(cel *Cel, numCels int16) *ForwardCycler {
	fc := &ForwardCycler{cel: cel, numCels: max(numCels, 1)}
	fc.Name = cel.Name + ".cycler"
	fc.flags = FlagDoIt
	startCycler(&fc.cycler, fc, cel.Plane())
	return fc
}

// DoIt advances the cel when due.
func (fc *ForwardCycler) DoIt() {
	if fc.disposed || !fc.due(fc.cel.CycleSpeed) {
		return
	}
	fc.cel.SetCel((fc.cel.CelInfo().Cel + 1) % fc.numCels)
	fc.cel.Update()
}

// Dispose stops cycling.
func (fc *ForwardCycler) Dispose() {
	fc.finish()
}

// EndCycler runs a cel forward to the last cel of its loop, then removes
// itself and cues the caller once.
type EndCycler struct {
	cycler

	cel     *Cel
	lastCel int16
}

// NewEndCycler cycles cel, which must be on a plane, up to numCels-1.
func NewEndCycler(cel *Cel, numCels int16, caller Cuer) *EndCycler {
	ec := &EndCycler{cel: cel, lastCel: max(numCels, 1) - 1}
	ec.Name = cel.Name + ".endcycler"
	ec.flags = FlagDoIt
	ec.caller = caller
	startCycler(&ec.cycler, ec, cel.Plane())
	return ec
}

// DoIt advances the cel when due and finishes on the last cel.
func (ec *EndCycler) DoIt() {
	if ec.disposed || !ec.due(ec.cel.CycleSpeed) {
		return
	}
	cur := ec.cel.CelInfo().Cel
	if cur < ec.lastCel {
		ec.cel.SetCel(cur + 1)
		ec.cel.Update()
		cur++
	}
	if cur >= ec.lastCel {
		ec.finish()
	}
}

// Dispose stops cycling and cues the caller if it has not been cued.
func (ec *EndCycler) Dispose() {
	ec.finish()
}

// SpriteCycler animates a panorama sprite through its frames, advancing
// one frame every Speed ticks. Sprites drawn above it stay on top.
type SpriteCycler struct {
	cycler

	Speed int

	pano   *Panorama
	sprite *Sprite
}

// NewSpriteCycler starts animating sprite, which must already be added to
// pano. The cycler runs from pano's plane cast.
func NewSpriteCycler(pano *Panorama, sprite *Sprite, speed int) *SpriteCycler {
	sc := &SpriteCycler{Speed: speed, pano: pano, sprite: sprite}
	sc.Name = "sprite.cycler"
	sc.flags = FlagDoIt
	startCycler(&sc.cycler, sc, pano.Plane())
	return sc
}

// DoIt advances the sprite frame when due.
func (sc *SpriteCycler) DoIt() {
	if sc.disposed || !sc.due(sc.Speed) {
		return
	}
	if !sc.pano.HasSprite(sc.sprite) {
		sc.finish()
		return
	}
	sc.pano.SetSpriteCel(sc.sprite, sc.sprite.CelNo()+1)
}

// Dispose stops animating; the sprite keeps its current frame.
func (sc *SpriteCycler) Dispose() {
	sc.finish()
}

func startCycler(c *cycler, self Entity, p *Plane) {
	if p == nil {
		c.disposed = true
		return
	}
	c.clock = p.stage.clock
	c.last = c.clock.Ticks()
	p.Add(self)
}
