// Package lantern is the interpreter layer of a panoramic adventure game:
// prioritized planes with casts of updatable and clickable objects,
// polygon and rectangle hit targets, cooperative scripts woken by cycle,
// tick and second conditions, Bresenham movers, and a wraparound
// panorama backdrop with sprite overlays and exit zones.
//
// # Frame model
//
// Everything runs on one goroutine. [Stage.Update] is called once per
// frame and performs, in order:
//
//	test runner step      // queue scripted input, if a runner is attached
//	User().DoIt()         // poll one input event and dispatch it
//	plane casts DoIt()    // movers, cyclers, panorama, animated cels
//	Scheduler().Advance() // wake scripts and timers whose condition is met
//	room change           // build a room requested with NewRoom
//
// The host (see package ebitenhost) supplies the compositor, input source,
// clock and cursor. Tests use [MemoryCompositor], [QueueInput] and
// [ManualClock] instead.
//
// # Objects and casts
//
// Objects embed [Object] and are addressed through generation-checked
// [Handle]s issued by the stage [Registry]. A [Cast] keeps three ordered
// handle sets (doIts, event handlers, screen items) over its members. Sweeps iterate a
// snapshot and skip members removed mid-sweep, so an object may dispose
// itself or a sibling from inside DoIt or HandleEvent.
//
//	plane := stage.NewPlane("room", lantern.R(0, 0, 640, 480), 10, lantern.PlanePicture)
//	exit := lantern.NewExit(lantern.R(600, 0, 640, 480), 120)
//	plane.Add(exit)
//
// # Panorama
//
// The backdrop is stored rotated: buffer rows run along the pan axis and
// wrap modulo the pan extent (2048 by default). [Panorama] owns the
// backdrop, its sprites, exits and the [PanView] that scrolls it.
package lantern
