package lantern

// PanoramaExit is a room-transition zone over a panorama. Rect is in
// panorama coordinates and may extend past the end of the pan axis, in
// which case it wraps to the start.
type PanoramaExit struct {
	Rect      Rect
	Room      int
	CursorCel int
}

// Contains reports whether pt, in panorama coordinates, is inside the exit
// on a pan axis of the given extent.
func (e *PanoramaExit) Contains(pt Point, extent int) bool {
	if e.Rect.Contains(pt) {
		return true
	}
	if extent <= 0 {
		return false
	}
	// compare against the copy one lap further along
	x := int(pt.X) + extent
	return pt.Y >= e.Rect.Top && pt.Y < e.Rect.Bottom &&
		x >= int(e.Rect.Left) && x < int(e.Rect.Right)
}
