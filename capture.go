package interact

// InputCaptureState is the single global drag lock. While Active, only the
// widget whose bounds hash to OwnerID may process input.
type InputCaptureState struct {
	OwnerID      WidgetID
	Bounds       Rect
	Active       bool
	RequireStart bool
}

// BeginInputCapture asks for exclusive pointer ownership for the widget at
// bounds. Call it every frame of a drag.
//
// If a capture is already active, returns true only for its owner. Otherwise a
// capture starts only on a left-button press inside bounds; the press that
// begins a drag must land on the widget regardless of requireStartInBounds,
// which is recorded for callers that inspect it.
func (ctx *Context) BeginInputCapture(bounds Rect, requireStartInBounds bool) bool {
	id := HashBounds(bounds)
	c := &ctx.capture
	if c.Active {
		return c.OwnerID == id
	}
	if ctx.input == nil || !ctx.input.MouseClicked(MouseButtonLeft) {
		return false
	}
	if !bounds.Contains(ctx.input.MousePos()) {
		return false
	}

	*c = InputCaptureState{
		OwnerID:      id,
		Bounds:       bounds,
		Active:       true,
		RequireStart: requireStartInBounds,
	}
	logger.Debug("input capture started", "owner", id, "frame", ctx.frame)
	return true
}

// IsInputCaptured returns true while a widget holds the drag lock.
func (ctx *Context) IsInputCaptured() bool {
	return ctx.capture.Active
}

// CaptureOwner returns the ID of the capturing widget, or 0.
func (ctx *Context) CaptureOwner() WidgetID {
	return ctx.capture.OwnerID
}

// IsCaptureOwner returns true if the widget at bounds holds the drag lock.
func (ctx *Context) IsCaptureOwner(bounds Rect) bool {
	return ctx.capture.Active && ctx.capture.OwnerID == HashBounds(bounds)
}

// ReleaseCapture frees the drag lock. It must be called explicitly, typically
// when the mouse button is released.
func (ctx *Context) ReleaseCapture() {
	if ctx.capture.Active {
		logger.Debug("input capture released", "owner", ctx.capture.OwnerID, "frame", ctx.frame)
	}
	ctx.capture = InputCaptureState{}
}
