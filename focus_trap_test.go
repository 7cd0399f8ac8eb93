package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawDialog registers two background focusables and two inside a trapped
// dialog layer. Returns the dialog's layer.
func drawDialog(ctx *Context, trapped bool) LayerID {
	registerAll(ctx, "bg1", "bg2")
	var layer LayerID
	ctx.Overlay(ZDialog, R(200, 0, 200, 200))(func(l LayerID) {
		layer = l
		if trapped {
			ctx.FocusTrapBegin(l)
		}
		ctx.RegisterFocusable(HashLabel("ok"), R(210, 10, 50, 20), 0)
		ctx.RegisterFocusable(HashLabel("cancel"), R(270, 10, 50, 20), 0)
		if trapped {
			ctx.FocusTrapEnd()
		}
	})
	return layer
}

func TestFocusTrap_ConfinesNavigation(t *testing.T) {
	ctx := NewContext()

	runFrame(ctx, nil, func() { drawDialog(ctx, true) })
	assert.Equal(t, HashLabel("ok"), ctx.FocusedID(), "end snaps focus into the trap")

	for _, want := range []string{"cancel", "ok", "cancel"} {
		runFrame(ctx, nil, func() {
			drawDialog(ctx, true)
			ctx.FocusNext()
		})
		assert.Equal(t, HashLabel(want), ctx.FocusedID(), "want %s", want)
	}

	for _, want := range []string{"ok", "cancel"} {
		runFrame(ctx, nil, func() {
			drawDialog(ctx, true)
			ctx.FocusPrev()
		})
		assert.Equal(t, HashLabel(want), ctx.FocusedID(), "want %s", want)
	}
}

func TestFocusTrap_RecordsRange(t *testing.T) {
	ctx := NewContext()
	runFrame(ctx, nil, func() {
		layer := drawDialog(ctx, true)
		trap := ctx.FocusTrapStatus()
		require.True(t, trap.Active)
		assert.Equal(t, layer, trap.LayerID)
		assert.Equal(t, 2, trap.First)
		assert.Equal(t, 3, trap.Last)
	})
}

func TestFocusTrap_SnapsFocusFromOutside(t *testing.T) {
	ctx := NewContext()
	runFrame(ctx, nil, func() {
		registerAll(ctx, "bg1")
		ctx.SetFocus(HashLabel("bg1"))

		layer := ctx.PushLayer(ZDialog)
		ctx.FocusTrapBegin(layer)
		ctx.RegisterFocusable(HashLabel("ok"), Rect{}, 0)
		ctx.FocusTrapEnd()
		ctx.PopLayer()

		assert.True(t, ctx.HasFocus(HashLabel("ok")))
		assert.True(t, ctx.LayerIsFocused(layer))
		assert.False(t, ctx.LayerIsFocused(0))
	})
}

func TestFocusTrap_EmptyTrapLeavesFocus(t *testing.T) {
	ctx := NewContext()
	runFrame(ctx, nil, func() {
		registerAll(ctx, "bg1")
		ctx.SetFocus(HashLabel("bg1"))
		ctx.FocusTrapBegin(ctx.CurrentLayer())
		ctx.FocusTrapEnd()
		assert.True(t, ctx.HasFocus(HashLabel("bg1")))
		ctx.FocusNext()
	})
	assert.True(t, ctx.HasFocus(HashLabel("bg1")), "empty trap range, nothing to visit")
}

func TestFocusTrap_PersistsUntilReleased(t *testing.T) {
	ctx := NewContext()
	runFrame(ctx, nil, func() { drawDialog(ctx, true) })
	require.True(t, ctx.FocusTrapStatus().Active)
	require.Equal(t, HashLabel("ok"), ctx.FocusedID())

	// Same widgets, no trap calls: the trap from frame 1 still holds
	for _, want := range []string{"cancel", "ok"} {
		runFrame(ctx, nil, func() {
			drawDialog(ctx, false)
			ctx.FocusNext()
		})
		trap := ctx.FocusTrapStatus()
		assert.True(t, trap.Active)
		assert.Equal(t, 2, trap.First)
		assert.Equal(t, 3, trap.Last)
		assert.Equal(t, HashLabel(want), ctx.FocusedID(), "want %s", want)
	}

	ctx.FocusTrapRelease()
	runFrame(ctx, nil, func() {
		registerAll(ctx, "bg1", "bg2")
		ctx.FocusNext()
	})
	assert.False(t, ctx.FocusTrapStatus().Active)
	assert.Equal(t, HashLabel("bg1"), ctx.FocusedID(), "navigation covers the whole list again")
}

func TestFocusTrap_BeginRebasesRange(t *testing.T) {
	ctx := NewContext()
	runFrame(ctx, nil, func() { drawDialog(ctx, true) })

	// One background widget fewer: the re-begun trap starts at index 1
	runFrame(ctx, nil, func() {
		registerAll(ctx, "bg1")
		ctx.Overlay(ZDialog, R(200, 0, 200, 200))(func(l LayerID) {
			ctx.FocusTrap(l)(func() {
				registerAll(ctx, "ok", "cancel")
			})
		})
		ctx.FocusNext()
	})
	trap := ctx.FocusTrapStatus()
	assert.Equal(t, 1, trap.First)
	assert.Equal(t, 2, trap.Last)
	assert.Equal(t, HashLabel("cancel"), ctx.FocusedID())
}

func TestFocusTrap_Release(t *testing.T) {
	ctx := NewContext()
	runFrame(ctx, nil, func() {
		ctx.FocusTrapBegin(ctx.PushLayer(ZSheet))
		ctx.FocusTrapRelease()
		ctx.PopLayer()
		assert.False(t, ctx.FocusTrapStatus().Active)
	})
}

func TestFocusTrap_Scope(t *testing.T) {
	ctx := NewContext()
	runFrame(ctx, nil, func() {
		ctx.Layer(ZDialog)(func(l LayerID) {
			ctx.FocusTrap(l)(func() {
				ctx.RegisterFocusable(HashLabel("only"), Rect{}, 0)
			})
		})
		trap := ctx.FocusTrapStatus()
		assert.Equal(t, 0, trap.First)
		assert.Equal(t, 0, trap.Last)
	})
	assert.True(t, ctx.HasFocus(HashLabel("only")))
}
