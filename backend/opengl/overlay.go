// Package opengl provides an OpenGL 4.1 / GLFW backend for the interact package.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/interact"
)

// Color is an RGBA color with float components in [0, 1].
type Color [4]float32

// OverlayStyle configures the debug overlay colors.
type OverlayStyle struct {
	Thickness float32
	Layers    []Color // Cycled by layer ID
	Focus     Color
	Capture   Color
	Modal     Color
}

// DefaultOverlayStyle returns the colors used by NewOverlayRenderer.
func DefaultOverlayStyle() OverlayStyle {
	return OverlayStyle{
		Thickness: 2,
		Layers: []Color{
			{0.9, 0.3, 0.3, 1},
			{0.3, 0.9, 0.4, 1},
			{0.3, 0.5, 1.0, 1},
			{0.9, 0.6, 0.2, 1},
			{0.7, 0.3, 0.9, 1},
		},
		Focus:   Color{0, 1, 1, 1},
		Capture: Color{1, 1, 0, 1},
		Modal:   Color{1, 0, 1, 1},
	}
}

// OverlayRenderer outlines blocking regions, the focused widget, the capture
// owner and the legacy modal. It draws with scissored clears only, so it needs
// no shaders or buffers and leaves the caller's pipeline untouched.
type OverlayRenderer struct {
	style  OverlayStyle
	width  int
	height int
}

// NewOverlayRenderer creates an overlay for a framebuffer of the given size.
// A GL context must be current.
func NewOverlayRenderer(width, height int) *OverlayRenderer {
	return &OverlayRenderer{
		style:  DefaultOverlayStyle(),
		width:  width,
		height: height,
	}
}

// SetStyle replaces the overlay colors.
func (r *OverlayRenderer) SetStyle(style OverlayStyle) {
	r.style = style
}

// Resize updates the framebuffer size.
func (r *OverlayRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// RenderOverlay draws one frame of routing state.
func (r *OverlayRenderer) RenderOverlay(f interact.OverlayFrame) error {
	// Save GL state
	var lastScissorBox [4]int32
	var lastClear [4]float32
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	gl.GetFloatv(gl.COLOR_CLEAR_VALUE, &lastClear[0])
	scissorEnabled := gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Enable(gl.SCISSOR_TEST)

	for _, region := range f.Regions {
		r.outline(region.Bounds, r.layerColor(region.LayerID))
	}
	if f.ModalActive {
		r.outline(f.ModalBounds, r.style.Modal)
	}
	if f.HasFocus {
		r.outline(f.Focus.Bounds, r.style.Focus)
	}
	if f.Capture.Active {
		r.outline(f.Capture.Bounds, r.style.Capture)
	}

	// Restore GL state
	if !scissorEnabled {
		gl.Disable(gl.SCISSOR_TEST)
	}
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])
	gl.ClearColor(lastClear[0], lastClear[1], lastClear[2], lastClear[3])

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("overlay: gl error 0x%x", code)
	}
	return nil
}

func (r *OverlayRenderer) layerColor(id interact.LayerID) Color {
	if len(r.style.Layers) == 0 {
		return r.style.Focus
	}
	return r.style.Layers[int(id)%len(r.style.Layers)]
}

// outline draws the four edges of rect as thin filled strips.
func (r *OverlayRenderer) outline(rect interact.Rect, c Color) {
	t := r.style.Thickness
	r.fill(rect.X, rect.Y, rect.W, t, c)
	r.fill(rect.X, rect.Y+rect.H-t, rect.W, t, c)
	r.fill(rect.X, rect.Y, t, rect.H, c)
	r.fill(rect.X+rect.W-t, rect.Y, t, rect.H, c)
}

// fill clears a screen-space rectangle (top-left origin) to c.
func (r *OverlayRenderer) fill(x, y, w, h float32, c Color) {
	// Convert to OpenGL coordinates - Y flipped
	sx := int32(x)
	sy := int32(float32(r.height) - (y + h))
	sw := int32(w)
	sh := int32(h)

	// Clamp to screen bounds
	if sx < 0 {
		sw += sx
		sx = 0
	}
	if sy < 0 {
		sh += sy
		sy = 0
	}
	if sw <= 0 || sh <= 0 {
		return
	}

	gl.Scissor(sx, sy, sw, sh)
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
