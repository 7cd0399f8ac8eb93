package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/interact"
)

// GLFWInputAdapter adapts GLFW input to interact.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *interact.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  interact.NewInputState(),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update prepares the input state for a new frame.
// Call this once per frame, before glfw.PollEvents, so the edges recorded
// by the callbacks belong to the frame that reads them.
func (a *GLFWInputAdapter) Update() *interact.InputState {
	a.input.Reset()
	return a.input
}

// Sync refreshes the cursor position and modifiers after glfw.PollEvents.
func (a *GLFWInputAdapter) Sync() *interact.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	// Update modifiers
	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press
	a.input.ModSuper = a.window.GetKey(glfw.KeyLeftSuper) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightSuper) == glfw.Press

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *interact.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == interact.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Repeat:
		// Auto-repeat counts as a fresh press so holding Tab keeps cycling.
		a.input.SetKey(k, false)
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToKey maps GLFW keys to interact keys.
func glfwKeyToKey(key glfw.Key) interact.Key {
	switch key {
	case glfw.KeyTab:
		return interact.KeyTab
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return interact.KeyEnter
	case glfw.KeyEscape:
		return interact.KeyEscape
	case glfw.KeySpace:
		return interact.KeySpace
	case glfw.KeyLeft:
		return interact.KeyLeft
	case glfw.KeyRight:
		return interact.KeyRight
	case glfw.KeyUp:
		return interact.KeyUp
	case glfw.KeyDown:
		return interact.KeyDown
	default:
		return interact.KeyNone
	}
}

// glfwMouseButtonToButton maps GLFW mouse buttons to interact mouse buttons.
func glfwMouseButtonToButton(button glfw.MouseButton) interact.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return interact.MouseButtonLeft
	case glfw.MouseButtonRight:
		return interact.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return interact.MouseButtonMiddle
	default:
		return -1
	}
}
