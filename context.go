package interact

// Context holds all interaction state for an immediate-mode UI.
// This is NOT context.Context - it's a dedicated UI context type.
//
// One Context lives as long as the UI. Every frame runs
// BeginFrame -> widget calls -> EndFrame on a single goroutine; nothing in
// here is safe for concurrent use.
type Context struct {
	cfg config

	// Input (read-only during frame)
	input *InputState

	// Frame info
	frame   uint64
	inFrame bool

	// IDs
	idStack []WidgetID

	layers  layerState
	modal   ModalState
	focus   focusRegistry
	capture InputCaptureState
	fields  FieldTracking

	// Transient widget state, pruned when its widget isn't drawn
	focusedEdit FieldKey
	slider      sliderInteraction
}

// NewContext creates a Context. All registries are allocated here at their
// configured capacity and never grow.
func NewContext(opts ...Option) *Context {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	lim := cfg.limits

	return &Context{
		cfg:     cfg,
		idStack: make([]WidgetID, 0, 32),
		layers:  newLayerState(lim.MaxBlockingRegions, lim.MaxLayerDepth),
		focus:   newFocusRegistry(lim.MaxFocusables),
		fields:  newFieldTracking(lim.FieldTableSize),
	}
}

// Limits returns the capacities this Context was built with.
func (ctx *Context) Limits() Limits {
	return ctx.cfg.limits
}

// Frame returns the number of the current (or last) frame. The first frame is 1.
func (ctx *Context) Frame() uint64 {
	return ctx.frame
}

// Input returns the input state of the current frame, or nil.
func (ctx *Context) Input() *InputState {
	return ctx.input
}

// BeginFrame starts a new frame:
//   - last frame's blocking regions become the ones ShouldProcessInput reads
//   - the field-presence tables and the focus list are cleared
//   - Tab / Shift+Tab in input become FocusNext / FocusPrev requests
//
// input may be nil, meaning no input this frame. Calling BeginFrame twice
// without EndFrame in between ends the open frame first.
func (ctx *Context) BeginFrame(input *InputState) {
	if ctx.inFrame {
		logger.Debug("BeginFrame: previous frame not ended", "frame", ctx.frame)
		ctx.EndFrame()
	}
	ctx.frame++
	ctx.inFrame = true
	ctx.input = input

	if ctx.layers.depth != 0 {
		logger.Debug("BeginFrame: layer stack not empty", "depth", ctx.layers.depth,
			"current", ctx.layers.current)
	}
	ctx.idStack = ctx.idStack[:0]

	ctx.layers.swap()
	ctx.fields.beginFrame(ctx.frame)
	ctx.focus.beginFrame()
	ctx.modal.beginFrame()

	if ctx.cfg.tabNavigation && input != nil && input.KeyPressed(KeyTab) {
		if input.ModShift {
			ctx.FocusPrev()
		} else {
			ctx.FocusNext()
		}
	}
}

// EndFrame finishes the frame: the pending Tab navigation is resolved against
// the complete focus list, then transient state of text fields and sliders
// that were not drawn this frame is cleared.
func (ctx *Context) EndFrame() {
	if !ctx.inFrame {
		return
	}
	ctx.inFrame = false

	ctx.focus.resolve()
	ctx.pruneStaleFields()

	if verbose() {
		logger.Debug("EndFrame",
			"frame", ctx.frame,
			"regions", ctx.layers.count[ctx.layers.writeBuf],
			"focusables", ctx.focus.count,
			"textFields", ctx.fields.textFields.count,
			"sliders", ctx.fields.sliders.count)
	}
}

// InFrame returns true between BeginFrame and EndFrame.
func (ctx *Context) InFrame() bool {
	return ctx.inFrame
}
