package lantern

// Flags are the capability bits an object advertises to a Cast.
type Flags uint8

const (
	FlagScreenItem Flags = 1 << iota // rendered through the compositor
	FlagDoIt                         // wants DoIt once per frame
	FlagEvents                       // wants HandleEvent during dispatch
)

// Has reports whether all bits in mask are set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Updater is implemented by objects that advance once per frame.
type Updater interface {
	DoIt()
}

// EventHandler is implemented by objects that take part in event dispatch.
// HandleEvent returns true when the event is claimed.
type EventHandler interface {
	HandleEvent(ev *Event) bool
}

// EventHandlerFunc adapts a function to EventHandler.
type EventHandlerFunc func(ev *Event) bool

// HandleEvent calls f(ev).
func (f EventHandlerFunc) HandleEvent(ev *Event) bool {
	return f(ev)
}

// Cuer receives one-shot completion notifications.
type Cuer interface {
	Cue()
}

// CueFunc adapts a function to Cuer.
type CueFunc func()

// Cue calls f.
func (f CueFunc) Cue() {
	f()
}

// Entity is anything that embeds Object.
type Entity interface {
	object() *Object
}

// Object is the base of every cast member. It carries the capability
// flags, the registry handle and a back-reference to the owning cast.
type Object struct {
	Name string

	handle   Handle
	registry *Registry
	flags    Flags
	cast     *Cast
	disposed bool
}

func (o *Object) object() *Object { return o }

// Handle returns the registry handle, or the zero Handle when the object
// has never been added to a cast.
func (o *Object) Handle() Handle {
	return o.handle
}

// Flags returns the capability flags.
func (o *Object) Flags() Flags {
	return o.flags
}

// SetFlags replaces the capability flags. Flags are read when the object
// is added to a cast; change them before Add.
func (o *Object) SetFlags(f Flags) {
	o.flags = f
}

// Cast returns the cast the object belongs to, or nil.
func (o *Object) Cast() *Cast {
	return o.cast
}

// IsDisposed reports whether the object has been released.
func (o *Object) IsDisposed() bool {
	return o.disposed
}

// release removes the object from its cast and frees its handle.
// Safe to call more than once.
func (o *Object) release() {
	if o.disposed {
		return
	}
	o.disposed = true
	if o.cast != nil {
		o.cast.removeObject(o)
	}
	if o.registry != nil {
		o.registry.Release(o.handle)
	}
	o.cast = nil
}

// Dispose removes a plain object from its cast and releases its handle.
// Types with their own teardown (scripts, movers, screen items) provide a
// Dispose method that ends up here.
func (o *Object) Dispose() {
	o.release()
}
