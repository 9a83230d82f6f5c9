package lantern

// Timer cues its client once after a number of cycles, ticks or seconds.
// Setting a new condition replaces the pending one.
type Timer struct {
	Object

	client Cuer
	sched  *Scheduler
	wake   *Wake
}

// NewTimer creates an idle timer that will cue client.
func (s *Stage) NewTimer(name string, client Cuer) *Timer {
	t := &Timer{client: client, sched: s.sched}
	t.Name = name
	return t
}

// SetCycles cues the client after n frames.
func (t *Timer) SetCycles(n int) {
	t.set(WakeCycles, n)
}

// SetTicks cues the client after n clock ticks.
func (t *Timer) SetTicks(n int) {
	t.set(WakeTicks, n)
}

// SetSeconds cues the client after n seconds.
func (t *Timer) SetSeconds(n int) {
	t.set(WakeSeconds, n)
}

func (t *Timer) set(kind WakeKind, n int) {
	if t.disposed {
		return
	}
	t.wake.Cancel()
	t.wake = t.sched.After(kind, int64(n), t.fire)
}

func (t *Timer) fire() {
	t.wake = nil
	if t.client != nil {
		t.client.Cue()
	}
}

// Pending reports whether a condition is waiting to fire.
func (t *Timer) Pending() bool {
	return t.wake.Pending()
}

// Cancel drops the pending condition without cueing.
func (t *Timer) Cancel() {
	t.wake.Cancel()
	t.wake = nil
}

// Dispose cancels the timer and releases it.
func (t *Timer) Dispose() {
	t.Cancel()
	t.release()
}
