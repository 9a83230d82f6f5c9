package lantern

// HandlerHandle allows removing a handler registered with the User.
type HandlerHandle struct {
	id   uint32
	list *handlerList
}

// Remove unregisters the handler. Safe to call more than once.
func (h HandlerHandle) Remove() {
	if h.list == nil {
		return
	}
	h.list.remove(h.id)
}

type handlerEntry struct {
	id    uint32
	h     EventHandler
	modal bool
}

type handlerList struct {
	nextID  *uint32
	entries []handlerEntry
}

func (l *handlerList) add(h EventHandler, modal bool) HandlerHandle {
	*l.nextID++
	id := *l.nextID
	l.entries = append(l.entries, handlerEntry{id: id, h: h, modal: modal})
	return HandlerHandle{id: id, list: l}
}

func (l *handlerList) remove(id uint32) {
	for i, e := range l.entries {
		if e.id == id {
			copy(l.entries[i:], l.entries[i+1:])
			l.entries[len(l.entries)-1] = handlerEntry{}
			l.entries = l.entries[:len(l.entries)-1]
			return
		}
	}
}

func (l *handlerList) has(id uint32) bool {
	for _, e := range l.entries {
		if e.id == id {
			return true
		}
	}
	return false
}

// snapshot returns a copy so handlers may register or remove during a
// dispatch.
func (l *handlerList) snapshot() []handlerEntry {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]handlerEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// User polls input once per frame and routes each event. With hands off,
// events the hands-off filter does not want are dropped; quit events are
// never dropped. Otherwise hogs,
// when any are registered, get the event exclusively (top of the stack
// first). Without hogs the event goes to prima donnas, then to planes from
// the top down (only those under the pointer, with the position made
// plane-local for the call), then to orphans. The first claim wins.
type User struct {
	stage *Stage
	input InputSource

	handsOn      bool
	handsOff     func(ev *Event) bool
	handlesNulls bool
	lastPos      Point

	nextID      uint32
	hogs        handlerList
	primaDonnas handlerList
	orphans     handlerList
}

func newUser(s *Stage, input InputSource) *User {
	u := &User{stage: s, input: input, handsOn: true}
	u.hogs.nextID = &u.nextID
	u.primaDonnas.nextID = &u.nextID
	u.orphans.nextID = &u.nextID
	return u
}

// IsHandsOn reports whether input reaches the game normally.
func (u *User) IsHandsOn() bool {
	return u.handsOn
}

// SetHandsOn enables or disables normal input.
func (u *User) SetHandsOn(on bool) {
	u.handsOn = on
}

// SetHandsOffFilter installs the function that decides, while hands are
// off, which events are still dispatched. A nil filter drops everything
// except EventQuit.
func (u *User) SetHandsOffFilter(fn func(ev *Event) bool) {
	u.handsOff = fn
}

// SetHandlesNulls makes frames with no input dispatch an EventNone at the
// last known pointer position.
func (u *User) SetHandlesNulls(v bool) {
	u.handlesNulls = v
}

// LastPosition returns the last pointer position seen, in global
// coordinates.
func (u *User) LastPosition() Point {
	return u.lastPos
}

// AddHog pushes h on the hog stack. While any hog is registered, only hogs
// see events. A modal hog makes DoIt keep polling within the frame until a
// hog claims an event or input runs dry.
func (u *User) AddHog(h EventHandler, modal bool) HandlerHandle {
	return u.hogs.add(h, modal)
}

// AddPrimaDonna registers h to see events before any plane.
func (u *User) AddPrimaDonna(h EventHandler) HandlerHandle {
	return u.primaDonnas.add(h, false)
}

// AddOrphan registers h to see events no plane claimed.
func (u *User) AddOrphan(h EventHandler) HandlerHandle {
	return u.orphans.add(h, false)
}

// NumHogs returns the depth of the hog stack.
func (u *User) NumHogs() int {
	return len(u.hogs.entries)
}

// DoIt polls one event and dispatches it. It returns the number of events
// dispatched this frame.
func (u *User) DoIt() int {
	ev, ok := u.poll()
	if !ok {
		if !u.handlesNulls {
			return 0
		}
		ev = Event{Type: EventNone, Pos: u.lastPos}
	}
	rec := u.Dispatch(&ev)
	n := 1
	for rec.Route != RouteHog && rec.Route != RouteDropped && u.modalHog() {
		ev, ok = u.poll()
		if !ok {
			break
		}
		rec = u.Dispatch(&ev)
		n++
	}
	return n
}

func (u *User) poll() (Event, bool) {
	if u.input == nil {
		return Event{}, false
	}
	ev, ok := u.input.Poll()
	if !ok {
		return Event{}, false
	}
	if ev.Type.IsMouse() {
		u.lastPos = ev.Pos
	} else {
		ev.Pos = u.lastPos
	}
	return ev, true
}

func (u *User) modalHog() bool {
	for _, e := range u.hogs.entries {
		if e.modal {
			return true
		}
	}
	return false
}

// Dispatch routes ev and reports where it ended up. ev.Pos is global on
// entry and on return.
func (u *User) Dispatch(ev *Event) DispatchRecord {
	rec := u.route(ev)
	rec.Frame = u.stage.frame
	rec.Event = *ev
	if ev.Type == EventQuit && rec.Route == RouteUnclaimed {
		u.stage.quit = true
	}
	if u.stage.store != nil {
		u.stage.store.EmitEvent(rec)
	}
	return rec
}

func (u *User) route(ev *Event) DispatchRecord {
	if !u.handsOn && ev.Type != EventQuit && (u.handsOff == nil || !u.handsOff(ev)) {
		ev.Claim()
		return DispatchRecord{Route: RouteDropped}
	}

	if len(u.hogs.entries) > 0 {
		hogs := u.hogs.snapshot()
		for i := len(hogs) - 1; i >= 0; i-- {
			if !u.hogs.has(hogs[i].id) {
				continue
			}
			if claim(hogs[i].h, ev) {
				return DispatchRecord{Route: RouteHog}
			}
		}
		return DispatchRecord{Route: RouteUnclaimed}
	}

	for _, e := range u.primaDonnas.snapshot() {
		if u.primaDonnas.has(e.id) && claim(e.h, ev) {
			return DispatchRecord{Route: RoutePrimaDonna}
		}
	}

	global := ev.Pos
	for _, p := range u.stage.planes.Planes() {
		if p.disposed || !p.rect.Contains(global) {
			continue
		}
		ev.Pos = p.ToLocal(global)
		ok := p.HandleEvent(ev)
		ev.Pos = global
		if ok {
			return DispatchRecord{Route: RoutePlane, PlaneName: p.Name}
		}
	}

	for _, e := range u.orphans.snapshot() {
		if u.orphans.has(e.id) && claim(e.h, ev) {
			return DispatchRecord{Route: RouteOrphan}
		}
	}
	return DispatchRecord{Route: RouteUnclaimed}
}

func claim(h EventHandler, ev *Event) bool {
	if h.HandleEvent(ev) || ev.Claimed {
		ev.Claim()
		return true
	}
	return false
}
