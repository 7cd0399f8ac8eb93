package interact

// FocusDirection is a pending Tab-order navigation request.
type FocusDirection int8

const (
	FocusNone     FocusDirection = 0
	FocusForward  FocusDirection = 1  // Tab
	FocusBackward FocusDirection = -1 // Shift+Tab
)

// String returns a human-readable name for the direction.
func (d FocusDirection) String() string {
	switch d {
	case FocusNone:
		return "None"
	case FocusForward:
		return "Forward"
	case FocusBackward:
		return "Backward"
	default:
		return "Unknown"
	}
}

// Opposite returns the reverse direction.
func (d FocusDirection) Opposite() FocusDirection {
	return -d
}

// FocusableItem is one widget that registered as focusable this frame.
type FocusableItem struct {
	ID     WidgetID
	Bounds Rect
	Corner float32 // Corner radius for drawing the focus ring
	Layer  LayerID // Layer current at registration
}

// FocusTrapState confines Tab navigation to the focusables registered between
// FocusTrapBegin and FocusTrapEnd on one layer.
type FocusTrapState struct {
	LayerID LayerID
	First   int // Index of the first focusable inside the trap
	Last    int // Index of the last focusable inside the trap
	Active  bool

	open bool // Between begin and end
}
