package interact

// Scoped wrappers around the begin/end pairs. Each one closes what it opened
// on every exit path, including early returns and panics inside contents.
//
// Usage:
//
//	ctx.Overlay(interact.ZMenu, menuRect)(func(layer interact.LayerID) {
//	    ctx.FocusTrap(layer)(func() {
//	        drawMenuItems(ctx)
//	    })
//	})

// Layer pushes a layer with the given z-order for the duration of contents.
// contents is skipped when the layer stack is full.
func (ctx *Context) Layer(z int) func(contents func(LayerID)) {
	return func(contents func(LayerID)) {
		id := ctx.PushLayer(z)
		if id == 0 {
			return
		}
		defer ctx.PopLayer()
		contents(id)
	}
}

// Overlay is Layer plus a blocking region covering bounds, the usual shape of
// a menu, dialog or sheet.
func (ctx *Context) Overlay(z int, bounds Rect) func(contents func(LayerID)) {
	return func(contents func(LayerID)) {
		ctx.Layer(z)(func(id LayerID) {
			ctx.RegisterBlockingRegion(bounds)
			contents(id)
		})
	}
}

// Modal wraps contents in BeginModal/EndModal.
func (ctx *Context) Modal(id WidgetID, bounds Rect) func(contents func()) {
	return func(contents func()) {
		ctx.BeginModal(id, bounds)
		defer ctx.EndModal()
		contents()
	}
}

// FocusTrap wraps contents in FocusTrapBegin/FocusTrapEnd.
func (ctx *Context) FocusTrap(layer LayerID) func(contents func()) {
	return func(contents func()) {
		ctx.FocusTrapBegin(layer)
		defer ctx.FocusTrapEnd()
		contents()
	}
}

// CaptureDrag runs one frame of a drag gesture. It acquires (or keeps) the
// input capture for bounds and, if this widget owns it, runs contents. The
// capture is released on the way out once the left button is no longer held.
// Returns whether contents ran.
func (ctx *Context) CaptureDrag(bounds Rect, requireStartInBounds bool, contents func()) bool {
	if !ctx.BeginInputCapture(bounds, requireStartInBounds) {
		return false
	}
	defer func() {
		if ctx.input == nil || !ctx.input.MouseDown(MouseButtonLeft) {
			ctx.ReleaseCapture()
		}
	}()
	contents()
	return true
}
