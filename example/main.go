// Example demonstrates input routing between a base panel, a menu with a
// nested submenu, a modal dialog with a focus trap, and a draggable slider.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Widgets are plain boxes: grey when idle, white when hovered and allowed to
// take input. The overlay outlines blocking regions per layer, the focused
// widget (Tab / Shift+Tab), and the capture owner while dragging.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/interact"
	"github.com/go-theft-auto/interact/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "interact example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "log routing decisions")
	flag.Parse()
	interact.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// demo is the application state that survives between frames.
type demo struct {
	menuOpen    bool
	subOpen     bool
	dialogOpen  bool
	sliderValue float32
	name        string // Backing buffer of the dialog's text field
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	w, h := window.GetFramebufferSize()
	overlay := opengl.NewOverlayRenderer(w, h)
	inputAdapter := opengl.NewGLFWInputAdapter(window)
	ui := interact.New(overlay)

	app := &demo{sliderValue: 0.5}

	// Main loop.
	for !window.ShouldClose() {
		inputAdapter.Update()
		glfw.PollEvents()
		input := inputAdapter.Sync()

		w, h := window.GetFramebufferSize()
		ui.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.Disable(gl.SCISSOR_TEST)
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input, interact.Vec2{X: float32(w), Y: float32(h)})
		app.frame(ctx, float32(h))
		if err := ui.End(); err != nil {
			return fmt.Errorf("overlay render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func (d *demo) frame(ctx *interact.Context, height float32) {
	// Base panel
	if d.button(ctx, "Menu", interact.R(20, 20, 120, 32), height) {
		d.menuOpen = !d.menuOpen
	}
	if d.button(ctx, "Dialog", interact.R(160, 20, 120, 32), height) {
		d.dialogOpen = true
	}
	d.slider(ctx, interact.R(20, 300, 300, 24), height)

	if d.menuOpen {
		menu := interact.R(20, 56, 180, 120)
		ctx.Overlay(interact.ZMenu, menu)(func(layer interact.LayerID) {
			drawBox(menu, 0.22, height)
			if d.button(ctx, "Submenu", interact.R(30, 66, 160, 28), height) {
				d.subOpen = !d.subOpen
			}
			if d.button(ctx, "Close", interact.R(30, 100, 160, 28), height) {
				d.menuOpen, d.subOpen = false, false
			}
			if d.subOpen {
				sub := interact.R(190, 66, 160, 100)
				ctx.Overlay(interact.ZMenu+1, sub)(func(interact.LayerID) {
					drawBox(sub, 0.3, height)
					d.button(ctx, "Item A", interact.R(200, 76, 140, 28), height)
					d.button(ctx, "Item B", interact.R(200, 110, 140, 28), height)
				})
			}
		})
	}

	if d.dialogOpen {
		dlg := interact.R(250, 180, 300, 200)
		ctx.Overlay(interact.ZDialog, dlg)(func(layer interact.LayerID) {
			drawBox(dlg, 0.25, height)
			ctx.FocusTrap(layer)(func() {
				d.textField(ctx, interact.R(270, 200, 260, 28), height)
				if d.button(ctx, "OK", interact.R(270, 330, 120, 32), height) {
					d.closeDialog(ctx)
				}
				if d.button(ctx, "Cancel", interact.R(410, 330, 120, 32), height) {
					d.closeDialog(ctx)
				}
			})
		})
	}

	if in := ctx.Input(); in != nil && in.KeyPressed(interact.KeyEscape) {
		d.menuOpen, d.subOpen = false, false
		d.closeDialog(ctx)
	}
}

// closeDialog hides the dialog and hands Tab navigation back to the window.
func (d *demo) closeDialog(ctx *interact.Context) {
	if d.dialogOpen {
		ctx.FocusTrapRelease()
	}
	d.dialogOpen = false
}

func (d *demo) button(ctx *interact.Context, label string, r interact.Rect, height float32) bool {
	id := ctx.GetID(label)
	ctx.RegisterFocusable(id, r, 4)

	shade := float32(0.45)
	if ctx.IsHovered(r) {
		shade = 0.8
	}
	drawBox(r, shade, height)

	if ctx.IsClicked(r) {
		ctx.SetFocus(id)
		return true
	}
	in := ctx.Input()
	return ctx.HasFocus(id) && in != nil && in.KeyPressed(interact.KeyEnter)
}

func (d *demo) textField(ctx *interact.Context, r interact.Rect, height float32) {
	key := interact.KeyOf(&d.name)
	id := ctx.GetID("name")
	ctx.RegisterFocusable(id, r, 2)
	ctx.RegisterTextField(key)

	if ctx.IsClicked(r) {
		ctx.SetFocus(id)
	}
	if ctx.HasFocus(id) {
		ctx.SetFocusedEdit(key)
	}

	shade := float32(0.35)
	if ctx.FocusedEdit() == key {
		shade = 0.6
	}
	drawBox(r, shade, height)
}

func (d *demo) slider(ctx *interact.Context, r interact.Rect, height float32) {
	const sliderID = 1
	ctx.RegisterSlider(sliderID)
	drawBox(r, 0.3, height)

	ctx.CaptureDrag(r, true, func() {
		in := ctx.Input()
		if in.MouseClicked(interact.MouseButtonLeft) {
			thumbX := r.X + d.sliderValue*r.W
			ctx.SetActiveSlider(sliderID, in.MouseX-thumbX)
		}
		v := (in.MouseX - ctx.SliderDragOffset() - r.X) / r.W
		d.sliderValue = max(0, min(v, 1))
		if !in.MouseDown(interact.MouseButtonLeft) {
			ctx.ClearActiveSlider()
		}
	})

	thumb := interact.R(r.X+d.sliderValue*r.W-6, r.Y, 12, r.H)
	drawBox(thumb, 0.9, height)
}

// drawBox fills r with a grey shade using a scissored clear.
func drawBox(r interact.Rect, shade, height float32) {
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(r.X), int32(height-(r.Y+r.H)), int32(r.W), int32(r.H))
	gl.ClearColor(shade, shade, shade, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
