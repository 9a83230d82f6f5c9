package lantern

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func movingCel(t *testing.T) (*Stage, *ManualClock, *Plane, *Cel) {
	t.Helper()
	s, comp, clock := testStage(t)
	comp.Sizes[CelInfo{View: 1}.Resource()] = Pt(4, 4)
	p := s.NewPlane("p", R(0, 0, 100, 100), 0, PlaneTransparent)
	c := NewCel("walker", CelInfo{View: 1}, Pt(0, 0), 0)
	p.Add(c)
	c.Show()
	return s, clock, p, c
}

func TestMoverStepsAtMoveSpeed(t *testing.T) {
	s, clock, p, c := movingCel(t)
	c.MoveSpeed = 2
	c.StepSize = Pt(3, 2)
	cues := 0
	m := NewMover(c, Pt(9, 0), CueFunc(func() { cues++ }))
	if p.Cast().NumDoIts() != 1 {
		t.Fatal("mover should join the plane's doIt list")
	}

	want := []Point{{0, 0}, {3, 0}, {6, 0}, {9, 0}}
	clock.Advance(1)
	s.Update()
	for i, pt := range want {
		if c.Position() != pt {
			t.Fatalf("step %d: Position = %v, want %v", i, c.Position(), pt)
		}
		if i < len(want)-1 {
			clock.Advance(2)
			s.Update()
		}
	}
	if cues != 1 || !m.IsDisposed() || p.Cast().NumDoIts() != 0 {
		t.Errorf("cues %d, disposed %v, doIts %d", cues, m.IsDisposed(), p.Cast().NumDoIts())
	}
	if c.Bounds() != R(9, 0, 13, 4) {
		t.Errorf("Bounds = %v, want the cel's final rect", c.Bounds())
	}

	m.Dispose()
	if cues != 1 {
		t.Error("caller cued twice")
	}
}

func TestMoverDisposeCuesOnce(t *testing.T) {
	_, _, _, c := movingCel(t)
	cues := 0
	m := NewMover(c, Pt(50, 50), CueFunc(func() { cues++ }))
	m.Dispose()
	m.Dispose()
	if cues != 1 {
		t.Errorf("cues = %d, want 1", cues)
	}
}

func TestMoverWithoutPlane(t *testing.T) {
	c := NewCel("loose", CelInfo{}, Pt(0, 0), 0)
	cues := 0
	m := NewMover(c, Pt(10, 10), CueFunc(func() { cues++ }))
	if cues != 1 || !m.IsDisposed() {
		t.Errorf("cues %d, disposed %v", cues, m.IsDisposed())
	}
	m.DoIt()
	if c.Position() != Pt(0, 0) {
		t.Error("a mover with no plane should not move the cel")
	}
}

func TestForwardCycler(t *testing.T) {
	s, clock, _, c := movingCel(t)
	c.CycleSpeed = 1
	fc := NewForwardCycler(c, 3)

	var cels []int16
	for range 4 {
		clock.Advance(1)
		s.Update()
		cels = append(cels, c.CelInfo().Cel)
	}
	want := []int16{1, 2, 0, 1}
	for i := range want {
		if cels[i] != want[i] {
			t.Fatalf("cels = %v, want %v", cels, want)
		}
	}

	fc.Dispose()
	clock.Advance(1)
	s.Update()
	if c.CelInfo().Cel != 1 {
		t.Error("disposed cycler kept cycling")
	}
}

func TestEndCyclerCuesOnce(t *testing.T) {
	s, clock, p, c := movingCel(t)
	c.CycleSpeed = 1
	cues := 0
	ec := NewEndCycler(c, 3, CueFunc(func() { cues++ }))

	for range 4 {
		clock.Advance(1)
		s.Update()
	}
	if c.CelInfo().Cel != 2 {
		t.Errorf("Cel = %d, want the last cel", c.CelInfo().Cel)
	}
	if cues != 1 || !ec.IsDisposed() || p.Cast().NumDoIts() != 0 {
		t.Errorf("cues %d, disposed %v", cues, ec.IsDisposed())
	}
	ec.Dispose()
	if cues != 1 {
		t.Error("Dispose after finishing cued again")
	}
}

func TestCelTween(t *testing.T) {
	_, _, _, c := movingCel(t)
	cues := 0
	tw := TweenCel(c, Pt(10, 20), 1, ease.Linear, CueFunc(func() { cues++ }))

	tw.Update(0.5)
	if c.Position() != Pt(5, 10) {
		t.Errorf("halfway Position = %v, want (5,10)", c.Position())
	}
	tw.Update(0.5)
	if c.Position() != Pt(10, 20) || !tw.Done || cues != 1 {
		t.Errorf("Position %v, done %v, cues %d", c.Position(), tw.Done, cues)
	}
	tw.Update(0.5)
	if cues != 1 {
		t.Error("finished tween cued again")
	}
}

func TestCelTweenRunsFromCast(t *testing.T) {
	s := NewStage(Options{TicksPerSecond: 2, Logger: testStageLogger()})
	p := s.NewPlane("p", R(0, 0, 100, 100), 0, PlaneTransparent)
	c := NewCel("c", CelInfo{}, Pt(0, 0), 0)
	p.Add(c)
	tw := TweenCel(c, Pt(20, 0), 1, ease.Linear, nil)

	s.Update()
	if c.Position() != Pt(10, 0) {
		t.Errorf("after one frame Position = %v, want (10,0)", c.Position())
	}
	s.Update()
	if !tw.Done || p.Cast().NumDoIts() != 0 {
		t.Error("tween should finish and leave the cast after two frames")
	}
}

func TestCelTweenStopsWhenCelDisposed(t *testing.T) {
	_, _, _, c := movingCel(t)
	cues := 0
	tw := TweenCel(c, Pt(10, 10), 1, ease.Linear, CueFunc(func() { cues++ }))
	c.Dispose()
	tw.Update(0.5)
	if !tw.Done || cues != 1 || c.Position() != Pt(0, 0) {
		t.Errorf("done %v, cues %d, Position %v", tw.Done, cues, c.Position())
	}
}
