package interact

// ModalState is the legacy single-modal mechanism. It predates layers and
// blocks every widget drawn outside BeginModal/EndModal, independently of
// blocking regions. Call sites that never migrated to layers still rely on it.
type ModalState struct {
	Active          bool     // A modal is open
	Rendering       bool     // Between BeginModal and EndModal this frame
	ClickedInside   bool     // Left press landed inside Bounds this frame
	FramesSinceOpen int      // 0 on the frame the modal opened
	ID              WidgetID // Owner of the modal
	LayerID         LayerID  // Layer current at BeginModal
	Bounds          Rect
}

// BeginModal opens (or continues) the legacy modal identified by id. Widgets
// drawn before the matching EndModal are treated as inside the modal.
func (ctx *Context) BeginModal(id WidgetID, bounds Rect) {
	m := &ctx.modal
	if !m.Active || m.ID != id {
		m.FramesSinceOpen = 0
		logger.Debug("BeginModal: opened", "id", id, "frame", ctx.frame)
	}
	m.Active = true
	m.Rendering = true
	m.ID = id
	m.LayerID = ctx.layers.current
	m.Bounds = bounds
	if ctx.input != nil && ctx.input.MouseClicked(MouseButtonLeft) &&
		bounds.Contains(ctx.input.MousePos()) {
		m.ClickedInside = true
	}
}

// EndModal marks the end of the modal's content for this frame. The modal
// stays active (and keeps blocking) until CloseModal.
func (ctx *Context) EndModal() {
	ctx.modal.Rendering = false
}

// CloseModal deactivates the legacy modal.
func (ctx *Context) CloseModal() {
	if ctx.modal.Active {
		logger.Debug("CloseModal", "id", ctx.modal.ID, "frames", ctx.modal.FramesSinceOpen)
	}
	ctx.modal = ModalState{}
}

// ModalStatus returns a copy of the legacy modal state.
func (ctx *Context) ModalStatus() ModalState {
	return ctx.modal
}

// IsModalActive returns true while a legacy modal is open.
func (ctx *Context) IsModalActive() bool {
	return ctx.modal.Active
}

// ModalJustOpened returns true during the frame the modal was opened. Callers
// use it to ignore the click that opened the modal.
func (ctx *Context) ModalJustOpened() bool {
	return ctx.modal.Active && ctx.modal.FramesSinceOpen == 0
}

// ModalClickedOutside returns true if the left button was pressed outside an
// open modal this frame, excluding the frame it opened. Call after EndModal.
func (ctx *Context) ModalClickedOutside() bool {
	m := &ctx.modal
	if !m.Active || m.FramesSinceOpen == 0 || ctx.input == nil {
		return false
	}
	return ctx.input.MouseClicked(MouseButtonLeft) && !m.ClickedInside &&
		!m.Bounds.Contains(ctx.input.MousePos())
}

// beginFrame ages the modal and clears per-frame flags.
func (m *ModalState) beginFrame() {
	if !m.Active {
		return
	}
	m.FramesSinceOpen++
	m.Rendering = false
	m.ClickedInside = false
}
