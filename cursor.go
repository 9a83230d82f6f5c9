package lantern

// HighlightCursor remembers which zone owns the current cursor highlight
// so that repeated hovers do not re-issue host calls and a zone can only
// end its own highlight.
type HighlightCursor struct {
	cursor Cursor
	owner  any
	cel    int
}

// NewHighlightCursor wraps c. A nil c discards all calls.
func NewHighlightCursor(c Cursor) *HighlightCursor {
	if c == nil {
		c = nopCursor{}
	}
	return &HighlightCursor{cursor: c}
}

// Highlight shows cel on behalf of owner. Re-highlighting with the same
// owner and cel does nothing.
func (h *HighlightCursor) Highlight(owner any, cel int) {
	if h.owner == owner && h.cel == cel {
		return
	}
	h.owner = owner
	h.cel = cel
	h.cursor.Highlight(cel)
}

// End clears the highlight if owner holds it.
func (h *HighlightCursor) End(owner any) {
	if h.owner == nil || h.owner != owner {
		return
	}
	h.EndAll()
}

// EndAll clears any highlight.
func (h *HighlightCursor) EndAll() {
	if h.owner == nil {
		return
	}
	h.owner = nil
	h.cel = 0
	h.cursor.EndHighlight()
}

// Active reports whether a highlight is shown and which cel.
func (h *HighlightCursor) Active() (int, bool) {
	return h.cel, h.owner != nil
}
