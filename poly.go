package lantern

// Containment is the result of a polygon point test.
type Containment uint8

const (
	Outside Containment = iota
	Inside
	OnEdge
)

func (c Containment) String() string {
	switch c {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case OnEdge:
		return "on-edge"
	}
	return "unknown"
}

// PolyContains classifies pt against the polygon described by points
// (any winding, convex or not, closed implicitly).
//
// A horizontal ray is cast both right and left of pt. An edge counts for
// the right ray when it straddles pt.Y from below/at and its crossing lies
// strictly right of pt, and for the left ray when it straddles from
// above/at and its crossing lies strictly left. Using half-open straddle
// tests on opposite sides makes vertex and horizontal-edge touches count
// consistently: a point on the boundary crosses an odd total, an interior
// point an odd number on the right. Vertices themselves are on the edge.
//
// Fewer than three points never contain anything.
func PolyContains(points []Point, pt Point) Containment {
	n := len(points)
	if n < 3 {
		return Outside
	}
	var lcross, rcross int
	px, py := int64(pt.X), int64(pt.Y)
	for i := 0; i < n; i++ {
		v1 := points[i]
		v2 := points[(i+1)%n]
		if v1 == pt {
			return OnEdge
		}
		x1, y1 := int64(v1.X), int64(v1.Y)
		x2, y2 := int64(v2.X), int64(v2.Y)

		rstrad := (y1 < py) != (y2 < py)
		lstrad := (y1 > py) != (y2 > py)
		if !rstrad && !lstrad {
			continue
		}
		// crossing x = num/den, compared without division
		num := x2*y1 - x1*y2 + (x1-x2)*py
		den := y1 - y2
		if den < 0 {
			num, den = -num, -den
		}
		if rstrad && num > den*px {
			rcross++
		} else if lstrad && num < den*px {
			lcross++
		}
	}
	if (lcross+rcross)%2 == 1 {
		return OnEdge
	}
	if rcross%2 == 1 {
		return Inside
	}
	return Outside
}

// Poly is a polygonal hit target in plane-local coordinates.
type Poly struct {
	Object

	Points  []Point
	Handler EventHandler

	plane *Plane
}

// NewPoly creates a polygon target. Add it to a plane to receive events.
func NewPoly(name string, handler EventHandler, points ...Point) *Poly {
	p := &Poly{Points: points, Handler: handler}
	p.Name = name
	p.flags = FlagEvents
	return p
}

func (p *Poly) bindPlane(pl *Plane) {
	p.plane = pl
	if len(p.Points) < 3 {
		pl.stage.contract.violated("NewPoly", "polygon %q has %d points, need at least 3", p.Name, len(p.Points))
	}
}

// CheckIsOnMe reports whether pt is inside the polygon or on its boundary.
func (p *Poly) CheckIsOnMe(pt Point) bool {
	if len(p.Points) < 3 {
		if p.plane != nil {
			p.plane.stage.contract.violated("Poly.CheckIsOnMe", "polygon %q has %d points", p.Name, len(p.Points))
		}
		return false
	}
	return PolyContains(p.Points, pt) != Outside
}

// Bounds returns the bounding rectangle of the vertices.
func (p *Poly) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	r := Rect{p.Points[0].X, p.Points[0].Y, p.Points[0].X + 1, p.Points[0].Y + 1}
	for _, v := range p.Points[1:] {
		r = r.Extend(Rect{v.X, v.Y, v.X + 1, v.Y + 1})
	}
	return r
}

// HandleEvent passes mouse events on the polygon to Handler.
func (p *Poly) HandleEvent(ev *Event) bool {
	if p.Handler == nil || !ev.Type.IsMouse() || !p.CheckIsOnMe(ev.Pos) {
		return false
	}
	return p.Handler.HandleEvent(ev)
}
