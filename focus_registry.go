package interact

// focusRegistry tracks the focusable widgets of one frame and which one owns
// keyboard focus.
//
// In an immediate-mode UI, widgets don't persist between frames. The registry
// bridges that gap by matching IDs:
//  1. Widgets call RegisterFocusable every frame, in draw order
//  2. The focused widget is remembered by ID, its index is rediscovered on registration
//  3. FocusNext/FocusPrev only record a request
//  4. EndFrame resolves the request once every widget has registered
type focusRegistry struct {
	items []FocusableItem // Fixed length, count tracks the live prefix
	count int

	focusedID    WidgetID
	focusedLayer LayerID
	focusIndex   int // Index into items, -1 if the focused widget hasn't registered

	pending FocusDirection
	trap    FocusTrapState
}

func newFocusRegistry(capacity int) focusRegistry {
	return focusRegistry{
		items:      make([]FocusableItem, capacity),
		focusIndex: -1,
	}
}

func (r *focusRegistry) beginFrame() {
	r.count = 0
	r.focusIndex = -1
}

func (r *focusRegistry) register(id WidgetID, bounds Rect, corner float32, layer LayerID) bool {
	if r.count >= len(r.items) {
		logger.Debug("RegisterFocusable: list full", "capacity", len(r.items), "id", id)
		return false
	}
	r.items[r.count] = FocusableItem{ID: id, Bounds: bounds, Corner: corner, Layer: layer}
	if id != 0 && id == r.focusedID {
		r.focusIndex = r.count
		r.focusedLayer = layer
	}
	r.count++
	return true
}

func (r *focusRegistry) setFocus(id WidgetID) {
	r.focusedID = id
	r.focusIndex = -1
	for i := 0; i < r.count; i++ {
		if r.items[i].ID == id {
			r.focusIndex = i
			r.focusedLayer = r.items[i].Layer
			return
		}
	}
}

func (r *focusRegistry) focusAt(idx int) {
	r.focusIndex = idx
	r.focusedID = r.items[idx].ID
	r.focusedLayer = r.items[idx].Layer
}

func (r *focusRegistry) clear() {
	r.focusedID = 0
	r.focusedLayer = 0
	r.focusIndex = -1
}

// bounds returns the index range navigation may visit: the trap's range when
// one is active, else the whole list. ok is false when the range is empty.
func (r *focusRegistry) bounds() (lo, hi int, ok bool) {
	lo, hi = 0, r.count-1
	if r.trap.Active {
		lo = r.trap.First
		hi = r.trap.Last
		if r.trap.open {
			hi = r.count - 1
		}
		hi = min(hi, r.count-1)
	}
	return lo, hi, lo <= hi && r.count > 0
}

// resolve applies the pending navigation request.
func (r *focusRegistry) resolve() {
	dir := r.pending
	r.pending = FocusNone
	if dir == FocusNone {
		return
	}

	lo, hi, ok := r.bounds()
	if !ok {
		return
	}

	idx := r.focusIndex
	switch {
	case !inRange(idx, lo, hi) && dir == FocusForward:
		idx = lo
	case !inRange(idx, lo, hi):
		idx = hi
	default:
		idx = wrapIndex(idx+int(dir), lo, hi)
	}
	r.focusAt(idx)
	logger.Debug("focus navigation", "dir", dir, "index", idx, "id", r.focusedID)
}

// RegisterFocusable adds a widget to this frame's Tab order. corner is the
// corner radius a backend should use when drawing the focus ring.
//
// Returns false (and registers nothing) when the list is full, or when a
// legacy modal is active and the caller is drawn outside it: widgets hidden
// behind a modal must not be reachable with Tab.
func (ctx *Context) RegisterFocusable(id WidgetID, bounds Rect, corner float32) bool {
	if ctx.modal.Active && !ctx.modal.Rendering {
		return false
	}
	return ctx.focus.register(id, bounds, corner, ctx.layers.current)
}

// SetFocus gives keyboard focus to the widget with the given ID.
func (ctx *Context) SetFocus(id WidgetID) {
	ctx.focus.setFocus(id)
}

// HasFocus returns true if the widget with the given ID has keyboard focus.
func (ctx *Context) HasFocus(id WidgetID) bool {
	return id != 0 && ctx.focus.focusedID == id
}

// ClearFocus removes keyboard focus from every widget.
func (ctx *Context) ClearFocus() {
	ctx.focus.clear()
}

// FocusedID returns the ID of the focused widget, or 0.
func (ctx *Context) FocusedID() WidgetID {
	return ctx.focus.focusedID
}

// HasAnyFocus returns true if some widget has keyboard focus.
func (ctx *Context) HasAnyFocus() bool {
	return ctx.focus.focusedID != 0
}

// FocusIndex returns the Tab-order index of the focused widget in this
// frame's list, or -1 if it hasn't registered (yet).
func (ctx *Context) FocusIndex() int {
	return ctx.focus.focusIndex
}

// FocusCount returns how many focusables registered so far this frame.
func (ctx *Context) FocusCount() int {
	return ctx.focus.count
}

// FocusedItem returns the focused widget's registration, for drawing a focus ring.
func (ctx *Context) FocusedItem() (FocusableItem, bool) {
	r := &ctx.focus
	if r.focusIndex < 0 || r.focusIndex >= r.count {
		return FocusableItem{}, false
	}
	return r.items[r.focusIndex], true
}

// FocusNext requests moving focus to the next widget in Tab order.
// The move happens in EndFrame, after every widget has registered.
func (ctx *Context) FocusNext() {
	ctx.focus.pending = FocusForward
}

// FocusPrev requests moving focus to the previous widget in Tab order.
// The move happens in EndFrame, after every widget has registered.
func (ctx *Context) FocusPrev() {
	ctx.focus.pending = FocusBackward
}

// PendingNavigation returns the navigation request EndFrame will resolve.
func (ctx *Context) PendingNavigation() FocusDirection {
	return ctx.focus.pending
}
