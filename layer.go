package interact

// LayerID identifies one overlay (menu, dialog, sheet) for the lifetime of the
// process. IDs are handed out in increasing order and never reused.
// 0 is the base layer: no overlay.
type LayerID uint32

// Z-order presets for common overlay classes. Higher values win when
// blocking regions overlap. Callers may use any int.
const (
	ZBase     = 0
	ZDropdown = 100
	ZMenu     = 200
	ZSheet    = 300
	ZDialog   = 400
	ZTooltip  = 500
)

// BlockingRegion is a rectangle that intercepts input for widgets outside its
// layer. One is registered per overlay rectangle per frame.
type BlockingRegion struct {
	Bounds            Rect
	LayerID           LayerID
	ZOrder            int
	RegistrationOrder uint32 // Per-frame counter, breaks z-order ties
	BlocksInput       bool
}

// outranks reports whether r sorts above other by (z-order, registration order).
func (r *BlockingRegion) outranks(other *BlockingRegion) bool {
	if r.ZOrder != other.ZOrder {
		return r.ZOrder > other.ZOrder
	}
	return r.RegistrationOrder > other.RegistrationOrder
}

// LayerStackEntry is one frame of the layer stack.
type LayerStackEntry struct {
	ID     LayerID
	ZOrder int

	prev LayerID // Same overlay's layer last frame
}

// lineageEntry records one PushLayer of a frame.
type lineageEntry struct {
	z  int
	id LayerID
}

// layerState holds the double-buffered blocking regions and the layer stack.
//
// regions[writeBuf] collects this frame's registrations. ShouldProcessInput
// only ever reads regions[1-writeBuf], which holds what the previous frame
// committed. swap() flips the two at frame start.
//
// Layer IDs are never reused, so an overlay drawn again this frame gets a new
// ID while its committed region still carries last frame's. lineage records
// every push per frame (same double-buffering). The n-th push at z-order z
// inherits the ID of last frame's n-th push at z as prev, and
// ShouldProcessInput treats the two as the same overlay.
type layerState struct {
	regions  [2][]BlockingRegion // Fixed length, count tracks the live prefix
	count    [2]int
	writeBuf int
	nextReg  uint32

	lineage [2][]lineageEntry // Fixed length, lineLen tracks the live prefix
	lineLen [2]int

	stack   []LayerStackEntry // Fixed length, depth tracks the live prefix
	depth   int
	nextID  LayerID
	current LayerID
	prev    LayerID
	z       int
}

func newLayerState(maxRegions, maxDepth int) layerState {
	return layerState{
		regions: [2][]BlockingRegion{
			make([]BlockingRegion, maxRegions),
			make([]BlockingRegion, maxRegions),
		},
		lineage: [2][]lineageEntry{
			make([]lineageEntry, maxRegions),
			make([]lineageEntry, maxRegions),
		},
		stack: make([]LayerStackEntry, maxDepth),
	}
}

// swap makes last frame's write buffer readable and clears the new write buffer.
func (s *layerState) swap() {
	s.writeBuf = 1 - s.writeBuf
	s.count[s.writeBuf] = 0
	s.nextReg = 0
	s.lineLen[s.writeBuf] = 0
}

// committed returns the regions registered during the previous frame.
func (s *layerState) committed() []BlockingRegion {
	rb := 1 - s.writeBuf
	return s.regions[rb][:s.count[rb]]
}

// pending returns the regions registered so far this frame.
func (s *layerState) pending() []BlockingRegion {
	return s.regions[s.writeBuf][:s.count[s.writeBuf]]
}

func (s *layerState) register(bounds Rect) bool {
	wb := s.writeBuf
	if s.count[wb] >= len(s.regions[wb]) {
		logger.Debug("RegisterBlockingRegion: buffer full",
			"capacity", len(s.regions[wb]), "layer", s.current)
		return false
	}
	s.regions[wb][s.count[wb]] = BlockingRegion{
		Bounds:            bounds,
		LayerID:           s.current,
		ZOrder:            s.z,
		RegistrationOrder: s.nextReg,
		BlocksInput:       true,
	}
	s.count[wb]++
	s.nextReg++
	return true
}

func (s *layerState) push(z int) LayerID {
	if s.depth >= len(s.stack) {
		logger.Debug("PushLayer: stack full", "depth", s.depth, "z", z)
		return 0
	}
	s.nextID++
	id := s.nextID

	wb, rb := s.writeBuf, 1-s.writeBuf
	nth := countZ(s.lineage[wb][:s.lineLen[wb]], z)
	prev := nthAtZ(s.lineage[rb][:s.lineLen[rb]], z, nth)
	if n := s.lineLen[wb]; n < len(s.lineage[wb]) {
		s.lineage[wb][n] = lineageEntry{z: z, id: id}
		s.lineLen[wb]++
	}

	s.stack[s.depth] = LayerStackEntry{ID: id, ZOrder: z, prev: prev}
	s.depth++
	s.current, s.prev, s.z = id, prev, z
	return id
}

// countZ returns how many entries were pushed at z.
func countZ(entries []lineageEntry, z int) int {
	n := 0
	for _, e := range entries {
		if e.z == z {
			n++
		}
	}
	return n
}

// nthAtZ returns the ID of the n-th (0-based) entry pushed at z, or 0.
func nthAtZ(entries []lineageEntry, z, n int) LayerID {
	for _, e := range entries {
		if e.z != z {
			continue
		}
		if n == 0 {
			return e.id
		}
		n--
	}
	return 0
}

// owns reports whether a region tagged with layer belongs to the current layer,
// either directly or through the same overlay's layer last frame.
func (s *layerState) owns(layer LayerID) bool {
	return layer == s.current || (layer != 0 && layer == s.prev)
}

func (s *layerState) pop() {
	if s.depth == 0 {
		return
	}
	s.depth--
	s.stack[s.depth] = LayerStackEntry{}
	if s.depth == 0 {
		s.current, s.prev, s.z = 0, 0, 0
		return
	}
	top := s.stack[s.depth-1]
	s.current, s.prev, s.z = top.ID, top.prev, top.ZOrder
}

// PushLayer opens a new overlay layer with the given z-order and makes it
// current. Returns the new layer's ID, or 0 if the stack is full (in which case
// nothing changes). Every successful PushLayer must be matched by PopLayer.
func (ctx *Context) PushLayer(z int) LayerID {
	return ctx.layers.push(z)
}

// PopLayer closes the current layer and restores the one beneath it.
func (ctx *Context) PopLayer() {
	ctx.layers.pop()
}

// RegisterBlockingRegion records bounds as an input-blocking rectangle owned by
// the current layer. It takes effect for ShouldProcessInput from the next
// frame on. Returns false if this frame's region buffer is full.
func (ctx *Context) RegisterBlockingRegion(bounds Rect) bool {
	return ctx.layers.register(bounds)
}

// CurrentLayer returns the ID of the innermost open layer, or 0.
func (ctx *Context) CurrentLayer() LayerID {
	return ctx.layers.current
}

// PreviousLayer returns the ID the current layer's overlay had last frame,
// or 0 if it wasn't drawn (or the current layer is the base layer).
func (ctx *Context) PreviousLayer() LayerID {
	return ctx.layers.prev
}

// CurrentZOrder returns the z-order of the innermost open layer, or 0.
func (ctx *Context) CurrentZOrder() int {
	return ctx.layers.z
}

// HasActiveLayer returns true while any layer is pushed.
func (ctx *Context) HasActiveLayer() bool {
	return ctx.layers.depth > 0
}

// LayerDepth returns the number of currently pushed layers.
func (ctx *Context) LayerDepth() int {
	return ctx.layers.depth
}

// CommittedRegions returns the regions ShouldProcessInput consults this frame
// (those registered last frame). The slice aliases internal storage and is only
// valid until the next BeginFrame.
func (ctx *Context) CommittedRegions() []BlockingRegion {
	return ctx.layers.committed()
}

// PendingRegions returns the regions registered so far this frame.
// The slice aliases internal storage.
func (ctx *Context) PendingRegions() []BlockingRegion {
	return ctx.layers.pending()
}
