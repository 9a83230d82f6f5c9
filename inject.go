package lantern

// QueueInput is an InputSource that hands out queued synthetic events
// first, one per Poll, and falls back to another source when the queue is
// empty. Positions are global screen coordinates, the same as real input.
type QueueInput struct {
	queue    []Event
	fallback InputSource
}

// NewQueueInput creates a queue over fallback, which may be nil.
func NewQueueInput(fallback InputSource) *QueueInput {
	return &QueueInput{fallback: fallback}
}

// Poll pops the oldest queued event, or polls the fallback.
func (q *QueueInput) Poll() (Event, bool) {
	if len(q.queue) > 0 {
		ev := q.queue[0]
		copy(q.queue, q.queue[1:])
		q.queue[len(q.queue)-1] = Event{}
		q.queue = q.queue[:len(q.queue)-1]
		return ev, true
	}
	if q.fallback == nil {
		return Event{}, false
	}
	return q.fallback.Poll()
}

// Len returns the number of queued events.
func (q *QueueInput) Len() int {
	return len(q.queue)
}

// Inject queues ev as is.
func (q *QueueInput) Inject(ev Event) {
	ev.Claimed = false
	q.queue = append(q.queue, ev)
}

// InjectPress queues a mouse press at (x, y).
func (q *QueueInput) InjectPress(x, y int16) {
	q.Inject(Event{Type: EventMousePress, Pos: Pt(x, y)})
}

// InjectRelease queues a mouse release at (x, y).
func (q *QueueInput) InjectRelease(x, y int16) {
	q.Inject(Event{Type: EventMouseRelease, Pos: Pt(x, y)})
}

// InjectMove queues a pointer move to (x, y).
func (q *QueueInput) InjectMove(x, y int16) {
	q.Inject(Event{Type: EventMouseMove, Pos: Pt(x, y)})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (q *QueueInput) InjectClick(x, y int16) {
	q.InjectPress(x, y)
	q.InjectRelease(x, y)
}

// InjectDrag queues a press at from, frames-2 interpolated moves and a
// release at to. Minimum frames is 2.
func (q *QueueInput) InjectDrag(from, to Point, frames int) {
	if frames < 2 {
		frames = 2
	}
	q.InjectPress(from.X, from.Y)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		x := int(from.X) + (int(to.X)-int(from.X))*i/(steps+1)
		y := int(from.Y) + (int(to.Y)-int(from.Y))*i/(steps+1)
		q.InjectMove(int16(x), int16(y))
	}
	q.InjectRelease(to.X, to.Y)
}

// InjectKey queues a key down and a key up.
func (q *QueueInput) InjectKey(key int, mods KeyModifiers) {
	q.Inject(Event{Type: EventKeyDown, Key: key, Modifiers: mods})
	q.Inject(Event{Type: EventKeyUp, Key: key, Modifiers: mods})
}

// InjectQuit queues a quit request.
func (q *QueueInput) InjectQuit() {
	q.Inject(Event{Type: EventQuit})
}

// Clear drops all queued events.
func (q *QueueInput) Clear() {
	q.queue = q.queue[:0]
}
