package lantern

// Bresenham steps a point from start to end in fixed increments. The axis
// needing more steps at its step size is the major axis and advances by
// its full step each call; the minor axis is spread over the same number
// of steps with an integer error term. The final step lands exactly on
// end.
type Bresenham struct {
	cur, end Point
	xMajor   bool
	steps    int
	taken    int

	majorStep int16 // signed step on the major axis
	minorBase int16 // signed whole units per step on the minor axis
	minorSign int16
	rem       int // minor remainder spread by err
	err       int
}

// NewBresenham plans the path from start to end. Non-positive step
// components are treated as 1.
func NewBresenham(start, end, step Point) *Bresenham {
	b := &Bresenham{cur: start, end: end}
	xStep, yStep := int(max(step.X, 1)), int(max(step.Y, 1))
	dx, dy := int(end.X)-int(start.X), int(end.Y)-int(start.Y)
	adx, ady := abs(dx), abs(dy)

	// compare adx/xStep against ady/yStep without division
	b.xMajor = adx*yStep >= ady*xStep
	major, minor, majorStep := adx, dy, xStep
	if !b.xMajor {
		major, minor, majorStep = ady, dx, yStep
	}
	b.steps = (major + majorStep - 1) / majorStep
	if b.steps == 0 {
		return b
	}
	b.majorStep = int16(majorStep * sign(dx))
	if !b.xMajor {
		b.majorStep = int16(majorStep * sign(dy))
	}
	b.minorSign = int16(sign(minor))
	b.minorBase = int16(minor / b.steps)
	b.rem = abs(minor % b.steps)
	b.err = 2*b.rem - b.steps
	return b
}

// Steps returns the total number of DoMove calls the path needs.
func (b *Bresenham) Steps() int {
	return b.steps
}

// Current returns the current point.
func (b *Bresenham) Current() Point {
	return b.cur
}

// Done reports whether the end has been reached.
func (b *Bresenham) Done() bool {
	return b.taken >= b.steps
}

// DoMove advances one step and returns the new point and whether it is the
// end. Calling it after the end returns the end again.
func (b *Bresenham) DoMove() (Point, bool) {
	if b.taken >= b.steps {
		b.cur = b.end
		return b.cur, true
	}
	b.taken++
	if b.taken == b.steps {
		b.cur = b.end
		return b.cur, true
	}
	minor := b.minorBase
	if b.err >= 0 {
		minor += b.minorSign
		b.err -= 2 * b.steps
	}
	b.err += 2 * b.rem
	if b.xMajor {
		b.cur.X += b.majorStep
		b.cur.Y += minor
	} else {
		b.cur.Y += b.majorStep
		b.cur.X += minor
	}
	return b.cur, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
