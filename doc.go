/*
Package interact is the input-routing and interaction-state core of an
immediate-mode UI, designed as idiomatic Go with a dedicated Context type.

# Overview

The UI is rebuilt every frame and there is no retained widget tree. Widgets
still need answers that span frames: may I react to the pointer right now,
do I have keyboard focus, am I the one being dragged. The Context answers
those questions from a handful of small, fixed-capacity registries that every
widget feeds while it draws.

# Quick Start

	ctx := interact.NewContext()

	for !window.ShouldClose() {
	    input := pollInput(window)

	    ctx.BeginFrame(input)

	    if ctx.IsClicked(saveRect) {
	        save()
	    }

	    if menuOpen {
	        ctx.Overlay(interact.ZMenu, menuRect)(func(layer interact.LayerID) {
	            ctx.FocusTrap(layer)(func() {
	                drawMenuItems(ctx)
	            })
	        })
	    }

	    ctx.EndFrame()
	}

GUI wraps the same loop and hands the routing state to an optional Renderer
(see backend/opengl) that draws a debug overlay.

# Frame Lifecycle

	BeginFrame(input)
	    swap blocking-region buffers
	    clear text-field / slider presence tables
	    clear the focus list
	    Tab / Shift+Tab -> FocusNext / FocusPrev request
	widgets draw, query and register
	EndFrame()
	    resolve the pending focus navigation
	    prune text-field / slider state whose widget wasn't drawn

Everything runs on one goroutine, one frame at a time.

# Blocking Regions and Layers

An overlay pushes a layer, registers the rectangles it covers, draws its
widgets and pops the layer:

	layer := ctx.PushLayer(interact.ZDialog) // 0 when the stack is full
	ctx.RegisterBlockingRegion(dialogRect)
	drawDialog(ctx)
	ctx.PopLayer()

A region takes effect one frame after it is registered. ShouldProcessInput
reads only the regions committed by the previous frame, so the click that
opens a menu is never swallowed by that same menu, and the background is
blocked from the next frame on.

Among the committed regions overlapping a widget, the one with the highest
z-order (ties broken by registration order) decides: input is allowed only
for the layer that registered it. Layer IDs are never reused; an overlay
drawn again this frame is matched with last frame's ID by z-order and the
order of pushes at that z-order (see PreviousLayer). Regions that don't overlap the widget never affect it.

Z-order presets: ZBase, ZDropdown, ZMenu, ZSheet, ZDialog, ZTooltip.

# Legacy Modal

BeginModal/EndModal/CloseModal predate layers. While the modal is active,
everything drawn outside BeginModal..EndModal is denied input and cannot
register as focusable, independently of blocking regions.

	if ctx.ModalJustOpened() {
	    // ignore the click that opened it
	}
	if ctx.ModalClickedOutside() {
	    ctx.CloseModal()
	}

# Keyboard Focus

	id := ctx.GetID("OK")
	ctx.RegisterFocusable(id, rect, cornerRadius)
	if ctx.HasFocus(id) && input.KeyPressed(interact.KeyEnter) {
	    ...
	}

FocusNext and FocusPrev only record a request; EndFrame applies it once the
whole list is known, wrapping around at both ends. A focus trap confines
navigation to the focusables registered between FocusTrapBegin and
FocusTrapEnd. The trap stays active across frames until FocusTrapRelease;
beginning it again re-bases the range on that frame's registrations.

# Input Capture

	if ctx.BeginInputCapture(thumbRect, true) {
	    drag(input.MouseX)
	    if !input.MouseDown(interact.MouseButtonLeft) {
	        ctx.ReleaseCapture()
	    }
	}

A capture starts only on a left press inside the bounds. While it is active,
ShouldProcessInput returns true only for the owner, identified by the hash of
its bounds. CaptureDrag wraps the pattern above.

# Field Tracking

Text fields (keyed by the address of their buffer, see KeyOf) and sliders
register every frame they are drawn. If the focused text field or the active
slider was not registered by EndFrame, its transient state is cleared, so a
widget that stops being drawn mid-interaction can't leave the Context stuck.

# Scoped Helpers

Layer, Overlay, Modal and FocusTrap return a function that runs contents
between the begin and end calls and always runs the end call, including when
contents panics.

# Capacities

All registries are allocated by NewContext and never grow. Exceeding a
capacity makes the single call fail (false or 0) and leaves state untouched.

	ctx := interact.NewContext(
	    interact.WithMaxBlockingRegions(128),
	    interact.WithMaxLayerDepth(8),
	    interact.WithMaxFocusables(512),
	    interact.WithFieldTableSize(512),
	)

# Debug Logging

Routing decisions, capture start/release and pruning are logged
with log/slog at debug level. SetVerbose(true) turns them on.
*/
package interact
