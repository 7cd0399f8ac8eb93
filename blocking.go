package interact

// ShouldProcessInput reports whether a widget occupying bounds may react to
// pointer or keyboard input this frame.
//
// Resolution order:
//  1. Nothing open (no layer, no committed region, no modal, no capture): allowed.
//  2. Input capture active: only the widget whose bounds hash owns the capture.
//  3. Legacy modal active and the caller is outside BeginModal/EndModal: blocked.
//  4. Among last frame's regions overlapping bounds, the one with the greatest
//     (z-order, registration order) decides: allowed only for its own layer,
//     which this frame is the current layer or its predecessor (see
//     PreviousLayer). No overlapping region: allowed.
func (ctx *Context) ShouldProcessInput(bounds Rect) bool {
	committed := ctx.layers.committed()

	if ctx.layers.depth == 0 && len(committed) == 0 &&
		!ctx.modal.Active && !ctx.capture.Active {
		return true
	}

	if ctx.capture.Active {
		return HashBounds(bounds) == ctx.capture.OwnerID
	}

	if ctx.modal.Active && !ctx.modal.Rendering {
		return false
	}

	top := topRegion(committed, bounds)
	if top == nil {
		return true
	}
	return ctx.layers.owns(top.LayerID)
}

// topRegion returns the highest-ranked blocking region overlapping bounds, or nil.
func topRegion(regions []BlockingRegion, bounds Rect) *BlockingRegion {
	var top *BlockingRegion
	for i := range regions {
		r := &regions[i]
		if !r.BlocksInput || !r.Bounds.Intersects(bounds) {
			continue
		}
		if top == nil || r.outranks(top) {
			top = r
		}
	}
	return top
}

// IsPointBlocked reports whether a 1x1 widget at p would be denied input.
// Handy for hover checks that only have a cursor position.
func (ctx *Context) IsPointBlocked(p Vec2) bool {
	return !ctx.ShouldProcessInput(Rect{X: p.X, Y: p.Y, W: 1, H: 1})
}

// IsHovered returns true if the mouse is over bounds and the widget may
// process input.
func (ctx *Context) IsHovered(bounds Rect) bool {
	if ctx.input == nil {
		return false
	}
	return bounds.Contains(ctx.input.MousePos()) && ctx.ShouldProcessInput(bounds)
}

// IsClicked returns true if the left button was pressed over bounds this
// frame and the widget may process input.
func (ctx *Context) IsClicked(bounds Rect) bool {
	if ctx.input == nil || !ctx.input.MouseClicked(MouseButtonLeft) {
		return false
	}
	return ctx.IsHovered(bounds)
}
