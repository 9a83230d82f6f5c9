package lantern

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CelTween moves a cel along an eased path. Unlike Mover it is time based:
// as a cast member it advances by the stage's frame duration every DoIt,
// and Update can drive it directly with any dt. It stops immediately when
// the cel is disposed.
type CelTween struct {
	Object

	Done bool

	cel    *Cel
	tx, ty *gween.Tween
	caller Cuer
	frame  float32
	cued   bool
}

// TweenCel starts easing cel to dest over duration seconds. When the cel
// is on a plane the tween joins its cast and runs itself.
func TweenCel(cel *Cel, dest Point, duration float32, fn ease.TweenFunc, caller Cuer) *CelTween {
	pos := cel.Position()
	tw := &CelTween{
		cel:    cel,
		tx:     gween.New(float32(pos.X), float32(dest.X), duration, fn),
		ty:     gween.New(float32(pos.Y), float32(dest.Y), duration, fn),
		caller: caller,
	}
	tw.Name = cel.Name + ".tween"
	tw.flags = FlagDoIt
	if p := cel.Plane(); p != nil {
		tw.frame = p.stage.frameDt
		p.Add(tw)
	}
	return tw
}

// DoIt advances by one frame.
func (tw *CelTween) DoIt() {
	tw.Update(tw.frame)
}

// Update advances by dt seconds and writes the rounded position to the
// cel.
func (tw *CelTween) Update(dt float32) {
	if tw.Done {
		return
	}
	if tw.cel.IsDisposed() {
		tw.stop()
		return
	}
	x, fx := tw.tx.Update(dt)
	y, fy := tw.ty.Update(dt)
	tw.cel.SetPosition(Pt(round16(x), round16(y)))
	tw.cel.Update()
	if fx && fy {
		tw.stop()
	}
}

// Dispose stops the tween where it is.
func (tw *CelTween) Dispose() {
	tw.stop()
}

func (tw *CelTween) stop() {
	tw.Done = true
	tw.release()
	if tw.cued || tw.caller == nil {
		return
	}
	tw.cued = true
	tw.caller.Cue()
}

func round16(v float32) int16 {
	if v < 0 {
		return int16(v - 0.5)
	}
	return int16(v + 0.5)
}
