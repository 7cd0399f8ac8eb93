package interact

// Renderer draws a debug overlay of the routing state. It is optional: the
// core works headless with a nil Renderer.
type Renderer interface {
	RenderOverlay(frame OverlayFrame) error
	Resize(width, height int)
}

// OverlayFrame is the routing state handed to a Renderer at the end of a frame.
type OverlayFrame struct {
	DisplaySize Vec2
	Regions     []BlockingRegion // Regions in effect this frame (aliases Context storage)
	Focus       FocusableItem
	HasFocus    bool
	Capture     InputCaptureState
	ModalBounds Rect
	ModalActive bool
}

// GUI owns a Context and drives its frame lifecycle.
type GUI struct {
	renderer    Renderer
	ctx         *Context
	ctxOpts     []Option
	displaySize Vec2
	overlay     bool
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithContextOptions passes options through to NewContext.
func WithContextOptions(opts ...Option) GUIOption {
	return func(g *GUI) { g.ctxOpts = append(g.ctxOpts, opts...) }
}

// WithOverlay enables or disables the debug overlay (enabled by default when
// a renderer is given).
func WithOverlay(enabled bool) GUIOption {
	return func(g *GUI) { g.overlay = enabled }
}

// New creates a new GUI instance. renderer may be nil.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		overlay:  renderer != nil,
	}

	for _, opt := range opts {
		opt(g)
	}
	g.ctx = NewContext(g.ctxOpts...)

	return g
}

// Begin starts a new frame and returns the Context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2) *Context {
	g.displaySize = displaySize
	g.ctx.BeginFrame(input)
	return g.ctx
}

// End finishes the frame and renders the overlay if enabled.
// Call this after all UI drawing is complete.
func (g *GUI) End() error {
	g.ctx.EndFrame()

	if g.renderer == nil || !g.overlay {
		return nil
	}

	focus, hasFocus := g.ctx.FocusedItem()
	return g.renderer.RenderOverlay(OverlayFrame{
		DisplaySize: g.displaySize,
		Regions:     g.ctx.CommittedRegions(),
		Focus:       focus,
		HasFocus:    hasFocus,
		Capture:     g.ctx.capture,
		ModalBounds: g.ctx.modal.Bounds,
		ModalActive: g.ctx.modal.Active,
	})
}

// Context returns the GUI's context.
func (g *GUI) Context() *Context {
	return g.ctx
}

// SetOverlay toggles the debug overlay at runtime.
func (g *GUI) SetOverlay(enabled bool) {
	g.overlay = enabled
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}
