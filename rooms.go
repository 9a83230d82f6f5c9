package lantern

import "fmt"

// Room is a built room. Dispose tears down everything the room added to
// the stage.
type Room interface {
	Dispose()
}

// RoomFunc adapts a teardown function to Room.
type RoomFunc func()

// Dispose calls f.
func (f RoomFunc) Dispose() {
	if f != nil {
		f()
	}
}

// RoomFactory builds room number n on s.
type RoomFactory func(s *Stage) (Room, error)

// RoomManager is the default RoomChanger. NewRoom only records the
// request; the change happens at the end of the frame, after every sweep,
// so that nothing runs against a half-torn-down room.
type RoomManager struct {
	// OnChange, when set, is called after a room has been built.
	OnChange func(from, to int)

	stage     *Stage
	factories map[int]RoomFactory
	current   Room
	number    int
	pending   int
	requested bool
}

// NewRoomManager creates a room manager for s with no rooms registered.
func NewRoomManager(s *Stage) *RoomManager {
	return &RoomManager{stage: s, factories: make(map[int]RoomFactory), number: -1}
}

// Register installs the factory for room n, replacing any previous one.
func (rm *RoomManager) Register(n int, f RoomFactory) {
	rm.factories[n] = f
}

// NewRoom requests a change to room n at the end of the frame. The last
// request in a frame wins.
func (rm *RoomManager) NewRoom(n int) {
	rm.pending = n
	rm.requested = true
}

// Current returns the current room number, or -1 when no room is live.
func (rm *RoomManager) Current() int {
	return rm.number
}

// Pending returns the requested room, if any.
func (rm *RoomManager) Pending() (int, bool) {
	return rm.pending, rm.requested
}

// Start builds room n immediately.
func (rm *RoomManager) Start(n int) error {
	rm.NewRoom(n)
	return rm.apply()
}

func (rm *RoomManager) apply() error {
	if !rm.requested {
		return nil
	}
	rm.requested = false
	n := rm.pending
	f, ok := rm.factories[n]
	if !ok {
		return fmt.Errorf("room %d: %w", n, ErrNoRoom)
	}
	from := rm.number
	rm.disposeCurrent()
	rm.stage.log.Info("room change", "from", from, "to", n)
	room, err := f(rm.stage)
	if err != nil {
		rm.number = -1
		return fmt.Errorf("build room %d: %w", n, err)
	}
	rm.current = room
	rm.number = n
	if rm.OnChange != nil {
		rm.OnChange(from, n)
	}
	return nil
}

func (rm *RoomManager) disposeCurrent() {
	if rm.current == nil {
		return
	}
	rm.current.Dispose()
	rm.current = nil
	rm.stage.cursor.EndAll()
}
