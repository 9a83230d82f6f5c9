package lantern

import "container/heap"

// WakeKind selects the unit a wake condition is measured in.
type WakeKind uint8

const (
	WakeCycles  WakeKind = iota // scheduler advances (one per frame)
	WakeTicks                   // Clock.Ticks
	WakeSeconds                 // Clock.Seconds
)

func (k WakeKind) String() string {
	switch k {
	case WakeCycles:
		return "cycles"
	case WakeTicks:
		return "ticks"
	case WakeSeconds:
		return "seconds"
	}
	return "unknown"
}

// Wake is a pending wake condition. Cancel it to drop it lazily from the
// queue.
type Wake struct {
	kind  WakeKind
	due   int64
	seq   uint64
	fn    func()
	state uint8 // wakePending, wakeFired or wakeCancelled
}

const (
	wakePending uint8 = iota
	wakeFired
	wakeCancelled
)

// Kind returns the unit the wake is measured in.
func (w *Wake) Kind() WakeKind {
	return w.kind
}

// Due returns the cycle, tick or second at which the wake fires.
func (w *Wake) Due() int64 {
	return w.due
}

// Pending reports whether the wake has neither fired nor been cancelled.
func (w *Wake) Pending() bool {
	return w != nil && w.state == wakePending
}

// Cancel prevents the wake from firing. Safe on nil and on fired wakes.
func (w *Wake) Cancel() {
	if w == nil || w.state != wakePending {
		return
	}
	w.state = wakeCancelled
	w.fn = nil
}

type wakeQueue []*Wake

func (q wakeQueue) Len() int { return len(q) }

func (q wakeQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q wakeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *wakeQueue) Push(x any) { *q = append(*q, x.(*Wake)) }

func (q *wakeQueue) Pop() any {
	old := *q
	n := len(old)
	w := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return w
}

// Scheduler holds pending wake conditions in one priority queue per kind.
// Advance runs once per frame and fires everything that has come due, in
// due order, cycles first. A wake scheduled while Advance is firing is
// never due in the same call.
type Scheduler struct {
	clock  Clock
	cycle  int64
	seq    uint64
	queues [3]wakeQueue
}

// NewScheduler creates a scheduler reading ticks and seconds from clock.
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// Cycle returns the number of Advance calls so far.
func (s *Scheduler) Cycle() int64 {
	return s.cycle
}

// After schedules fn to run once n units of kind from now. n < 1 is
// treated as 1.
func (s *Scheduler) After(kind WakeKind, n int64, fn func()) *Wake {
	if n < 1 {
		n = 1
	}
	s.seq++
	w := &Wake{kind: kind, due: s.now(kind) + n, seq: s.seq, fn: fn}
	heap.Push(&s.queues[kind], w)
	return w
}

func (s *Scheduler) now(kind WakeKind) int64 {
	switch kind {
	case WakeTicks:
		return int64(s.clock.Ticks())
	case WakeSeconds:
		return s.clock.Seconds()
	}
	return s.cycle
}

// Len returns the number of queued wakes, including cancelled ones not yet
// discarded.
func (s *Scheduler) Len() int {
	n := 0
	for i := range s.queues {
		n += s.queues[i].Len()
	}
	return n
}

// Advance moves the cycle counter forward by one and fires every due wake.
// It returns the number of wakes fired.
func (s *Scheduler) Advance() int {
	s.cycle++
	fired := 0
	for kind := WakeCycles; kind <= WakeSeconds; kind++ {
		fired += s.fire(kind, s.now(kind))
	}
	return fired
}

func (s *Scheduler) fire(kind WakeKind, now int64) int {
	q := &s.queues[kind]
	// Take the due set first so wakes added by callbacks wait for the
	// next Advance even when they are due immediately.
	var due []*Wake
	for q.Len() > 0 && (*q)[0].due <= now {
		w := heap.Pop(q).(*Wake)
		if w.state == wakePending {
			due = append(due, w)
		}
	}
	fired := 0
	for _, w := range due {
		if w.state != wakePending {
			continue
		}
		fn := w.fn
		w.state = wakeFired
		w.fn = nil
		if fn != nil {
			fn()
		}
		fired++
	}
	return fired
}

// Clear cancels every pending wake.
func (s *Scheduler) Clear() {
	for i := range s.queues {
		for _, w := range s.queues[i] {
			w.Cancel()
		}
		s.queues[i] = nil
	}
}
