package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// runFrame runs one BeginFrame/EndFrame cycle around fn.
func runFrame(ctx *Context, in *InputState, fn func()) {
	ctx.BeginFrame(in)
	if fn != nil {
		fn()
	}
	ctx.EndFrame()
}

// press returns input with the left button going down at (x, y) this frame.
func press(x, y float32) *InputState {
	in := NewInputState()
	in.SetMousePos(x, y)
	in.SetMouseButton(MouseButtonLeft, true)
	return in
}

// hold returns input with the left button held (no press edge) at (x, y).
func hold(x, y float32) *InputState {
	in := press(x, y)
	in.Reset()
	return in
}

// keyPress returns input with key going down this frame.
func keyPress(k Key, shift bool) *InputState {
	in := NewInputState()
	in.SetKey(k, true)
	in.ModShift = shift
	return in
}

func TestContext_FrameLifecycle(t *testing.T) {
	ctx := NewContext()
	assert.False(t, ctx.InFrame())
	assert.Equal(t, uint64(0), ctx.Frame())

	ctx.BeginFrame(nil)
	assert.True(t, ctx.InFrame())
	assert.Equal(t, uint64(1), ctx.Frame())
	assert.Nil(t, ctx.Input())

	// A second BeginFrame ends the open frame first
	ctx.BeginFrame(nil)
	assert.Equal(t, uint64(2), ctx.Frame())

	ctx.EndFrame()
	ctx.EndFrame()
	assert.False(t, ctx.InFrame())
}

func TestContext_Limits(t *testing.T) {
	ctx := NewContext(
		WithMaxBlockingRegions(4),
		WithFieldTableSize(100),
		WithMaxLayerDepth(0), // ignored
	)
	lim := ctx.Limits()
	assert.Equal(t, 4, lim.MaxBlockingRegions)
	assert.Equal(t, 128, lim.FieldTableSize)
	assert.Equal(t, DefaultLimits().MaxLayerDepth, lim.MaxLayerDepth)
	assert.Equal(t, DefaultLimits().MaxFocusables, lim.MaxFocusables)
}

func TestContext_PushIDScopes(t *testing.T) {
	ctx := NewContext()
	runFrame(ctx, nil, func() {
		plain := ctx.GetID("ok")

		ctx.PushID("dialog")
		scoped := ctx.GetID("ok")
		assert.NotEqual(t, plain, scoped)
		assert.NotZero(t, ctx.CurrentID())
		ctx.PopID()

		assert.Equal(t, plain, ctx.GetID("ok"))
		assert.Zero(t, ctx.CurrentID())
		ctx.PopID() // no-op on empty stack
	})
}

func TestContext_IDStackResetsEachFrame(t *testing.T) {
	ctx := NewContext()
	runFrame(ctx, nil, func() { ctx.PushID("leaked") })
	runFrame(ctx, nil, func() {
		assert.Zero(t, ctx.CurrentID())
	})
}
