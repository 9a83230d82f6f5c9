package lantern

import (
	"fmt"
	"log/slog"
	"time"
)

// Options configures a Stage. Every field is optional.
type Options struct {
	// Compositor draws planes and screen items. Default: a
	// MemoryCompositor.
	Compositor Compositor
	// Loader fetches bitmaps. Default: an empty MapLoader.
	Loader ResourceLoader
	// Input is polled once per frame, behind the stage's inject queue.
	Input InputSource
	// Clock drives tick and second wakes. Default: a ManualClock.
	Clock Clock
	// Cursor receives exit highlights.
	Cursor Cursor
	// Rooms receives room-change requests. Default: a RoomManager owned
	// by the stage.
	Rooms RoomChanger
	// Store, when set, receives a DispatchRecord per dispatched event.
	Store EntityStore
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Debug turns contract violations into panics and logs frame stats.
	Debug bool
	// ErasePolicy is applied to backdrops loaded through the stage.
	ErasePolicy ErasePolicy
	// TicksPerSecond sets the frame duration used by tweens. Default 60.
	TicksPerSecond int
	// ScreenshotDir is where FlushScreenshots writes. Default
	// "screenshots".
	ScreenshotDir string
}

// Stage owns everything one running game needs: the plane list, the
// registry shared by all casts, the wake scheduler, the user input
// dispatcher and the injected services. Call Update once per frame from a
// single goroutine.
type Stage struct {
	// ScreenshotDir is the directory screenshots are written to.
	ScreenshotDir string

	registry   *Registry
	planes     PlaneList
	compositor Compositor
	loader     ResourceLoader
	clock      Clock
	sched      *Scheduler
	cursor     *HighlightCursor
	rooms      RoomChanger
	user       *User
	inject     *QueueInput
	store      EntityStore
	log        *slog.Logger
	contract   *contract

	erasePolicy ErasePolicy
	frame       uint64
	frameDt     float32
	quit        bool

	testRunner      *TestRunner
	screenshotQueue []string
}

// NewStage creates a stage from opts.
func NewStage(opts Options) *Stage {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	tps := opts.TicksPerSecond
	if tps <= 0 {
		tps = 60
	}
	s := &Stage{
		ScreenshotDir: opts.ScreenshotDir,
		registry:      NewRegistry(),
		compositor:    opts.Compositor,
		loader:        opts.Loader,
		clock:         opts.Clock,
		store:         opts.Store,
		log:           log,
		contract:      &contract{debug: opts.Debug, log: log},
		erasePolicy:   opts.ErasePolicy,
		frameDt:       1 / float32(tps),
	}
	if s.ScreenshotDir == "" {
		s.ScreenshotDir = "screenshots"
	}
	if s.compositor == nil {
		s.compositor = NewMemoryCompositor()
	}
	if s.loader == nil {
		s.loader = MapLoader{}
	}
	if s.clock == nil {
		s.clock = NewManualClock()
	}
	s.sched = NewScheduler(s.clock)
	s.cursor = NewHighlightCursor(opts.Cursor)
	s.rooms = opts.Rooms
	if s.rooms == nil {
		s.rooms = NewRoomManager(s)
	}
	s.inject = NewQueueInput(opts.Input)
	s.user = newUser(s, s.inject)
	return s
}

// Update runs one frame: input dispatch, every plane's doIt sweep from the
// top plane down, due wakes, then any requested room change.
func (s *Stage) Update() {
	s.frame++
	var stats frameStats
	var t0 time.Time
	if s.contract.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.user.DoIt()

	if s.contract.debug {
		stats.dispatchTime = time.Since(t0)
		t0 = time.Now()
	}

	for _, p := range s.planes.Planes() {
		if p.disposed {
			continue
		}
		stats.doIts += p.DoIt()
		stats.planes++
	}

	if s.contract.debug {
		stats.doItTime = time.Since(t0)
		t0 = time.Now()
	}

	stats.woken = s.sched.Advance()

	if s.contract.debug {
		stats.wakeTime = time.Since(t0)
	}

	if rm, ok := s.rooms.(*RoomManager); ok {
		if err := rm.apply(); err != nil {
			s.log.Error("room change failed", "err", err)
		}
	}
	s.debugLog(stats)
}

// Frame returns the number of Update calls so far.
func (s *Stage) Frame() uint64 {
	return s.frame
}

// SetDebugMode toggles debug checks and frame statistics.
func (s *Stage) SetDebugMode(v bool) {
	s.contract.debug = v
}

// IsDebug reports whether debug mode is on.
func (s *Stage) IsDebug() bool {
	return s.contract.debug
}

// SetEntityStore sets or clears the ECS bridge.
func (s *Stage) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetTestRunner attaches a scripted input runner, stepped before input is
// polled each frame.
func (s *Stage) SetTestRunner(r *TestRunner) {
	s.testRunner = r
}

// Planes returns the planes, top priority first.
func (s *Stage) Planes() []*Plane {
	return s.planes.Planes()
}

// FindPlane returns the plane with the given name, or nil.
func (s *Stage) FindPlane(name string) *Plane {
	return s.planes.Find(name)
}

// User returns the input dispatcher.
func (s *Stage) User() *User {
	return s.user
}

// Inject returns the synthetic input queue in front of the real input.
func (s *Stage) Inject() *QueueInput {
	return s.inject
}

// Scheduler returns the wake scheduler.
func (s *Stage) Scheduler() *Scheduler {
	return s.sched
}

// Clock returns the clock.
func (s *Stage) Clock() Clock {
	return s.clock
}

// Registry returns the handle registry shared by all casts.
func (s *Stage) Registry() *Registry {
	return s.registry
}

// Compositor returns the compositor.
func (s *Stage) Compositor() Compositor {
	return s.compositor
}

// Cursor returns the highlight tracker.
func (s *Stage) Cursor() *HighlightCursor {
	return s.cursor
}

// Rooms returns the room-change receiver.
func (s *Stage) Rooms() RoomChanger {
	return s.rooms
}

// Logger returns the stage logger.
func (s *Stage) Logger() *slog.Logger {
	return s.log
}

// RequestQuit marks the stage as finished.
func (s *Stage) RequestQuit() {
	s.quit = true
}

// QuitRequested reports whether an unclaimed quit event arrived or
// RequestQuit was called.
func (s *Stage) QuitRequested() bool {
	return s.quit
}

// LoadBackdrop loads a panorama backdrop and applies the stage's erase
// policy to it.
func (s *Stage) LoadBackdrop(name string) (*Image, error) {
	img, err := LoadImage(s.loader, name)
	if err != nil {
		return nil, err
	}
	img.ErasePolicy = s.erasePolicy
	return img, nil
}

// LoadSprite loads a sprite strip of numCels frames. A missing resource is
// logged; callers skip the sprite.
func (s *Stage) LoadSprite(name string, numCels int) (*Sprite, error) {
	sp, err := LoadSprite(s.loader, name, numCels)
	if err != nil {
		s.log.Warn("sprite skipped", "name", name, "err", err)
		return nil, fmt.Errorf("stage: %w", err)
	}
	return sp, nil
}

// Dispose tears down the current room, every plane and all pending wakes.
func (s *Stage) Dispose() {
	if rm, ok := s.rooms.(*RoomManager); ok {
		rm.disposeCurrent()
	}
	for _, p := range s.planes.Planes() {
		p.Dispose()
	}
	s.sched.Clear()
	s.cursor.EndAll()
}
