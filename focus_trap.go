package interact

// FocusTrapBegin starts confining Tab navigation to the focusables registered
// from here until FocusTrapEnd. layer is the overlay the trap belongs to.
//
// The trap stays active across frames until FocusTrapRelease. Beginning it
// again re-bases the range on the current frame's registrations.
func (ctx *Context) FocusTrapBegin(layer LayerID) {
	r := &ctx.focus
	if r.trap.Active && r.trap.LayerID != layer {
		logger.Debug("FocusTrapBegin: replacing trap", "old", r.trap.LayerID, "new", layer)
	}
	r.trap = FocusTrapState{
		LayerID: layer,
		First:   r.count,
		Last:    r.count - 1,
		Active:  true,
		open:    true,
	}
}

// FocusTrapEnd closes the trap's index range. If focus currently lies
// outside the trap, it moves to the trap's first focusable.
func (ctx *Context) FocusTrapEnd() {
	r := &ctx.focus
	if !r.trap.open {
		return
	}
	r.trap.open = false
	r.trap.Last = r.count - 1

	if r.trap.First > r.trap.Last {
		return
	}
	if !inRange(r.focusIndex, r.trap.First, r.trap.Last) {
		r.focusAt(r.trap.First)
	}
}

// FocusTrapRelease drops the trap immediately.
func (ctx *Context) FocusTrapRelease() {
	ctx.focus.trap = FocusTrapState{}
}

// FocusTrapStatus returns a copy of the current trap state.
func (ctx *Context) FocusTrapStatus() FocusTrapState {
	return ctx.focus.trap
}

// LayerIsFocused returns true if the focused widget was registered while
// layer was the current layer.
func (ctx *Context) LayerIsFocused(layer LayerID) bool {
	return ctx.focus.focusedID != 0 && ctx.focus.focusedLayer == layer
}
