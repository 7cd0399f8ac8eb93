package interact

import "golang.org/x/exp/constraints"

const (
	// SliderIDMask keeps the 31 bits of a slider ID used as its key.
	SliderIDMask uint32 = 0x7FFFFFFF
	// SliderAnimatingBit marks the active slider as animating rather than dragging.
	SliderAnimatingBit uint32 = 1 << 31

	goldenRatio64 = 0x9E3779B97F4A7C15
)

// presenceTable is a fixed-size open-addressed set with linear probing.
// Zero is the empty slot, so a zero key is never stored.
type presenceTable[K constraints.Unsigned] struct {
	slots []K
	count int
	mask  uint64
	hash  func(K) uint64
}

func newPresenceTable[K constraints.Unsigned](size int, hash func(K) uint64) presenceTable[K] {
	size = nextPow2(size)
	return presenceTable[K]{
		slots: make([]K, size),
		mask:  uint64(size - 1),
		hash:  hash,
	}
}

func (t *presenceTable[K]) reset() {
	clear(t.slots)
	t.count = 0
}

// insert adds k unless present. Returns false if k is zero or the table is full.
func (t *presenceTable[K]) insert(k K) bool {
	if k == 0 {
		return false
	}
	start := t.hash(k)
	for i := range uint64(len(t.slots)) {
		j := (start + i) & t.mask
		switch t.slots[j] {
		case k:
			return true
		case 0:
			t.slots[j] = k
			t.count++
			return true
		}
	}
	return false
}

func (t *presenceTable[K]) contains(k K) bool {
	if k == 0 {
		return false
	}
	start := t.hash(k)
	for i := range uint64(len(t.slots)) {
		j := (start + i) & t.mask
		switch t.slots[j] {
		case k:
			return true
		case 0:
			return false
		}
	}
	return false
}

// hashFieldKey mixes a buffer address. Allocations are at least 8-byte aligned,
// so the low 3 bits carry nothing; the golden-ratio multiply spreads
// page-aligned buffers that a plain shift would cluster.
func hashFieldKey(k FieldKey) uint64 {
	return ((uint64(k) >> 3) * goldenRatio64) >> 32
}

func hashSliderID(id uint32) uint64 {
	return uint64(id)
}

// FieldTracking records which text fields and sliders were drawn this frame.
// Both tables are cleared at BeginFrame.
type FieldTracking struct {
	textFields presenceTable[FieldKey]
	sliders    presenceTable[uint32]
	frame      uint64
}

func newFieldTracking(size int) FieldTracking {
	return FieldTracking{
		textFields: newPresenceTable(size, hashFieldKey),
		sliders:    newPresenceTable(size, hashSliderID),
	}
}

func (f *FieldTracking) beginFrame(frame uint64) {
	f.textFields.reset()
	f.sliders.reset()
	f.frame = frame
}

// TextFieldCount returns how many distinct text fields registered this frame.
func (f *FieldTracking) TextFieldCount() int { return f.textFields.count }

// SliderCount returns how many distinct sliders registered this frame.
func (f *FieldTracking) SliderCount() int { return f.sliders.count }

// sliderInteraction is the transient state of the one slider being dragged
// or animated.
type sliderInteraction struct {
	id         uint32 // Masked ID, SliderAnimatingBit set while animating
	dragOffset float32
	progress   float32
}

// RegisterTextField marks the text field backed by key as drawn this frame.
// Registering the same key twice is harmless.
func (ctx *Context) RegisterTextField(key FieldKey) {
	if !ctx.fields.textFields.insert(key) && key != 0 {
		logger.Debug("RegisterTextField: table full", "size", len(ctx.fields.textFields.slots))
	}
}

// RegisterSlider marks the slider as drawn this frame. Bit 31 of id is ignored.
func (ctx *Context) RegisterSlider(id uint32) {
	id &= SliderIDMask
	if !ctx.fields.sliders.insert(id) && id != 0 {
		logger.Debug("RegisterSlider: table full", "size", len(ctx.fields.sliders.slots))
	}
}

// TextFieldIsRegistered returns true if the text field was drawn this frame.
func (ctx *Context) TextFieldIsRegistered(key FieldKey) bool {
	return ctx.fields.textFields.contains(key)
}

// SliderIsRegistered returns true if the slider was drawn this frame.
func (ctx *Context) SliderIsRegistered(id uint32) bool {
	return ctx.fields.sliders.contains(id & SliderIDMask)
}

// Fields exposes the presence tables' counters.
func (ctx *Context) Fields() *FieldTracking {
	return &ctx.fields
}

// SetFocusedEdit makes key the text field receiving typed characters.
func (ctx *Context) SetFocusedEdit(key FieldKey) {
	ctx.focusedEdit = key
}

// FocusedEdit returns the text field receiving typed characters, or 0.
func (ctx *Context) FocusedEdit() FieldKey {
	return ctx.focusedEdit
}

// ClearFocusedEdit stops text editing.
func (ctx *Context) ClearFocusedEdit() {
	ctx.focusedEdit = 0
}

// SetActiveSlider marks the slider as being dragged, remembering the grab
// offset between the pointer and the thumb.
func (ctx *Context) SetActiveSlider(id uint32, dragOffset float32) {
	ctx.slider = sliderInteraction{id: id & SliderIDMask, dragOffset: dragOffset}
}

// StartSliderAnimation marks the slider as animating toward a new value.
func (ctx *Context) StartSliderAnimation(id uint32) {
	ctx.slider = sliderInteraction{id: (id & SliderIDMask) | SliderAnimatingBit}
}

// SetSliderAnimationProgress updates the animating slider's progress in [0, 1].
func (ctx *Context) SetSliderAnimationProgress(p float32) {
	if ctx.slider.id&SliderAnimatingBit != 0 {
		ctx.slider.progress = max(0, min(p, 1))
	}
}

// ActiveSlider returns the dragged or animating slider, or 0.
func (ctx *Context) ActiveSlider() (id uint32, animating bool) {
	return ctx.slider.id & SliderIDMask, ctx.slider.id&SliderAnimatingBit != 0
}

// SliderDragOffset returns the active slider's grab offset.
func (ctx *Context) SliderDragOffset() float32 {
	return ctx.slider.dragOffset
}

// SliderAnimationProgress returns the active slider's animation progress.
func (ctx *Context) SliderAnimationProgress() float32 {
	return ctx.slider.progress
}

// ClearActiveSlider drops the slider's drag or animation state.
func (ctx *Context) ClearActiveSlider() {
	ctx.slider = sliderInteraction{}
}

// pruneStaleFields clears interaction state that refers to a text field or
// slider nobody drew this frame.
func (ctx *Context) pruneStaleFields() {
	if ctx.focusedEdit != 0 && !ctx.fields.textFields.contains(ctx.focusedEdit) {
		logger.Debug("pruning stale text field focus", "frame", ctx.frame)
		ctx.focusedEdit = 0
	}
	if id := ctx.slider.id & SliderIDMask; id != 0 && !ctx.fields.sliders.contains(id) {
		logger.Debug("pruning stale slider state", "slider", id, "frame", ctx.frame)
		ctx.slider = sliderInteraction{}
	}
}
