package lantern

import "fmt"

// CelInfo selects what a screen item draws: a view/loop/cel triple from
// the resource loader, or a raw bitmap when Bitmap is set.
type CelInfo struct {
	View, Loop, Cel int16
	Bitmap          *Image
}

// Resource returns the loader name for the view/loop/cel triple.
func (c CelInfo) Resource() string {
	return fmt.Sprintf("view.%d.%d.%d", c.View, c.Loop, c.Cel)
}

// ScreenItem is a positioned, prioritized cel owned by one plane. Changes
// made through the setters mark the item dirty and reach the compositor on
// Update, ForceUpdate or Show.
type ScreenItem struct {
	Object

	plane    *Plane
	position Point
	priority int16
	cel      CelInfo
	visible  bool
	dirty    bool
}

// NewScreenItem creates a hidden screen item. Add it to a plane, then Show.
func NewScreenItem(name string, cel CelInfo, pos Point, priority int16) *ScreenItem {
	si := &ScreenItem{}
	si.init(name, cel, pos, priority)
	return si
}

func (si *ScreenItem) init(name string, cel CelInfo, pos Point, priority int16) {
	si.Name = name
	si.flags = FlagScreenItem
	si.cel = cel
	si.position = pos
	si.priority = priority
}

func (si *ScreenItem) bindPlane(p *Plane) {
	si.plane = p
}

// Plane returns the owning plane, or nil before Add.
func (si *ScreenItem) Plane() *Plane {
	return si.plane
}

// Position returns the plane-local position.
func (si *ScreenItem) Position() Point {
	return si.position
}

// SetPosition moves the item. Takes effect on the next update.
func (si *ScreenItem) SetPosition(pt Point) {
	if si.position == pt {
		return
	}
	si.position = pt
	si.dirty = true
}

// Priority returns the draw priority within the plane.
func (si *ScreenItem) Priority() int16 {
	return si.priority
}

// SetPriority changes the draw priority.
func (si *ScreenItem) SetPriority(pr int16) {
	if si.priority == pr {
		return
	}
	si.priority = pr
	si.dirty = true
}

// CelInfo returns the current cel selection.
func (si *ScreenItem) CelInfo() CelInfo {
	return si.cel
}

// SetCel selects a cel within the current loop.
func (si *ScreenItem) SetCel(cel int16) {
	si.cel.Cel = cel
	si.dirty = true
}

// SetLoop selects a loop and resets to its first cel.
func (si *ScreenItem) SetLoop(loop int16) {
	si.cel.Loop = loop
	si.cel.Cel = 0
	si.dirty = true
}

// Load replaces the whole view/loop/cel selection.
func (si *ScreenItem) Load(view, loop, cel int16) {
	si.cel = CelInfo{View: view, Loop: loop, Cel: cel}
	si.dirty = true
}

// SetBitmap draws img instead of a view resource.
func (si *ScreenItem) SetBitmap(img *Image) {
	si.cel = CelInfo{Bitmap: img}
	si.dirty = true
}

// IsVisible reports whether the item is materialized in the compositor.
func (si *ScreenItem) IsVisible() bool {
	return si.visible
}

// IsDirty reports whether changes are waiting for an update.
func (si *ScreenItem) IsDirty() bool {
	return si.dirty
}

// Show materializes the item with its current state. No-op when visible.
func (si *ScreenItem) Show() {
	if si.visible {
		return
	}
	if si.plane == nil {
		// not on a plane yet; nothing to show into
		return
	}
	si.visible = true
	si.dirty = false
	si.plane.stage.compositor.AddScreenItem(si)
}

// Hide removes the item from the compositor. No-op when hidden.
func (si *ScreenItem) Hide() {
	if !si.visible {
		return
	}
	si.visible = false
	if si.plane != nil {
		si.plane.stage.compositor.DeleteScreenItem(si)
	}
}

// Update pushes pending changes of a visible item.
func (si *ScreenItem) Update() {
	if !si.visible || !si.dirty {
		return
	}
	si.dirty = false
	si.plane.stage.compositor.UpdateScreenItem(si)
}

// ForceUpdate pushes the item's state even when nothing is pending.
func (si *ScreenItem) ForceUpdate() {
	if !si.visible {
		return
	}
	si.dirty = false
	si.plane.stage.compositor.UpdateScreenItem(si)
}

// NowSeenRect returns the global on-screen rectangle reported by the
// compositor, or false when the item is hidden or fully clipped.
func (si *ScreenItem) NowSeenRect() (Rect, bool) {
	if !si.visible || si.plane == nil {
		return Rect{}, false
	}
	return si.plane.stage.compositor.NowSeenRect(si)
}

// Dispose hides the item and releases it.
func (si *ScreenItem) Dispose() {
	si.Hide()
	si.release()
}
