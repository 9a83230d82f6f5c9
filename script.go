package lantern

// StepFunc is a script's step function. It runs once per state and either
// schedules re-entry with SetCycles/SetTicks/SetSeconds, jumps with
// SetState, waits to be cued by something else, or disposes the script.
type StepFunc func(s *Script, state int)

// Script is a cooperative state machine. Each Cue advances State by one
// and calls the step function with the new state. At most one wake
// condition is pending at a time.
//
// Disposing a script cues its caller. The caller is cued at most once no
// matter how the script ends.
type Script struct {
	Object

	// Data and DataPointer are free for the step function's use.
	Data        int
	DataPointer any

	step   StepFunc
	state  int
	caller Cuer
	stage  *Stage
	wake   *Wake
	cued   bool
}

// NewScript creates a script and immediately runs step 0. caller may be
// nil.
func (s *Stage) NewScript(name string, step StepFunc, caller Cuer) *Script {
	sc := &Script{step: step, caller: caller, stage: s}
	sc.Name = name
	sc.enter(0)
	return sc
}

// State returns the current state.
func (sc *Script) State() int {
	return sc.state
}

// Stage returns the stage the script runs on.
func (sc *Script) Stage() *Stage {
	return sc.stage
}

// Pending reports whether a wake condition is waiting.
func (sc *Script) Pending() bool {
	return sc.wake.Pending()
}

// Cue advances to the next state. Cueing a disposed script does nothing.
func (sc *Script) Cue() {
	if sc.disposed {
		return
	}
	sc.enter(sc.state + 1)
}

// SetState cancels any pending wake and enters state k now.
func (sc *Script) SetState(k int) {
	if sc.disposed {
		return
	}
	sc.wake.Cancel()
	sc.wake = nil
	sc.enter(k)
}

func (sc *Script) enter(k int) {
	sc.state = k
	if sc.step != nil {
		sc.step(sc, k)
	}
}

// SetCycles re-enters the script with the next state after n frames.
func (sc *Script) SetCycles(n int) {
	sc.schedule("Script.SetCycles", WakeCycles, n)
}

// SetTicks re-enters the script with the next state after n clock ticks.
func (sc *Script) SetTicks(n int) {
	sc.schedule("Script.SetTicks", WakeTicks, n)
}

// SetSeconds re-enters the script with the next state after n seconds.
func (sc *Script) SetSeconds(n int) {
	sc.schedule("Script.SetSeconds", WakeSeconds, n)
}

// schedule registers the single wake. A second condition while one is
// pending is a contract violation; in release mode the first one stands.
func (sc *Script) schedule(op string, kind WakeKind, n int) {
	if sc.disposed {
		return
	}
	if sc.wake.Pending() {
		sc.stage.contract.violated(op, "script %q already waiting on %s", sc.Name, sc.wake.Kind())
		return
	}
	sc.wake = sc.stage.sched.After(kind, int64(n), sc.onWake)
}

func (sc *Script) onWake() {
	sc.wake = nil
	sc.Cue()
}

// Dispose cancels any pending wake, releases the script and cues the
// caller if it has not been cued yet.
func (sc *Script) Dispose() {
	if sc.disposed {
		return
	}
	sc.wake.Cancel()
	sc.wake = nil
	sc.release()
	sc.cueCaller()
}

func (sc *Script) cueCaller() {
	if sc.cued || sc.caller == nil {
		return
	}
	sc.cued = true
	sc.caller.Cue()
}
