package interact_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/interact"
)

// mockRenderer records the overlay frames it is handed.
type mockRenderer struct {
	frames  []interact.OverlayFrame
	err     error
	resized [2]int
}

func (m *mockRenderer) RenderOverlay(f interact.OverlayFrame) error {
	// Regions aliases Context storage
	f.Regions = append([]interact.BlockingRegion(nil), f.Regions...)
	m.frames = append(m.frames, f)
	return m.err
}

func (m *mockRenderer) Resize(width, height int) {
	m.resized = [2]int{width, height}
}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := interact.New(renderer)

	input := interact.NewInputState()
	displaySize := interact.Vec2{X: 1920, Y: 1080}

	ctx := ui.Begin(input, displaySize)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if ctx != ui.Context() {
		t.Error("Begin should return the GUI's context")
	}

	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	if len(renderer.frames) != 1 {
		t.Fatalf("expected 1 overlay render, got %d", len(renderer.frames))
	}
	if renderer.frames[0].DisplaySize != displaySize {
		t.Errorf("expected display size %v, got %v", displaySize, renderer.frames[0].DisplaySize)
	}
}

func TestGUIHeadless(t *testing.T) {
	ui := interact.New(nil)
	ui.Begin(nil, interact.Vec2{})
	if err := ui.End(); err != nil {
		t.Fatalf("End() without renderer returned error: %v", err)
	}
	ui.Resize(10, 10)
}

func TestGUIOverlayShowsCommittedRegions(t *testing.T) {
	renderer := &mockRenderer{}
	ui := interact.New(renderer)
	menu := interact.R(0, 0, 100, 100)

	for range 2 {
		ctx := ui.Begin(interact.NewInputState(), interact.Vec2{X: 800, Y: 600})
		ctx.Overlay(interact.ZMenu, menu)(func(interact.LayerID) {})
		if err := ui.End(); err != nil {
			t.Fatal(err)
		}
	}

	if n := len(renderer.frames[0].Regions); n != 0 {
		t.Errorf("frame 1: expected no regions in effect, got %d", n)
	}
	if n := len(renderer.frames[1].Regions); n != 1 {
		t.Fatalf("frame 2: expected 1 region in effect, got %d", n)
	}
	if got := renderer.frames[1].Regions[0]; got.Bounds != menu || got.ZOrder != interact.ZMenu {
		t.Errorf("unexpected region %+v", got)
	}
}

func TestGUIOverlayFocusAndCapture(t *testing.T) {
	renderer := &mockRenderer{}
	ui := interact.New(renderer)
	button := interact.R(10, 10, 50, 20)

	input := interact.NewInputState()
	input.SetMousePos(20, 20)
	input.SetMouseButton(interact.MouseButtonLeft, true)

	ctx := ui.Begin(input, interact.Vec2{X: 800, Y: 600})
	id := ctx.GetID("button")
	ctx.RegisterFocusable(id, button, 4)
	ctx.SetFocus(id)
	ctx.BeginInputCapture(button, true)
	if err := ui.End(); err != nil {
		t.Fatal(err)
	}

	f := renderer.frames[0]
	if !f.HasFocus || f.Focus.ID != id || f.Focus.Bounds != button {
		t.Errorf("expected focus ring on %v, got %+v", button, f.Focus)
	}
	if !f.Capture.Active || f.Capture.Bounds != button {
		t.Errorf("expected capture on %v, got %+v", button, f.Capture)
	}
}

func TestGUIOverlayToggle(t *testing.T) {
	renderer := &mockRenderer{}
	ui := interact.New(renderer, interact.WithOverlay(false))

	ui.Begin(nil, interact.Vec2{})
	_ = ui.End()
	if len(renderer.frames) != 0 {
		t.Errorf("overlay disabled, expected no renders, got %d", len(renderer.frames))
	}

	ui.SetOverlay(true)
	ui.Begin(nil, interact.Vec2{})
	_ = ui.End()
	if len(renderer.frames) != 1 {
		t.Errorf("expected 1 render after enabling overlay, got %d", len(renderer.frames))
	}
}

func TestGUIRenderError(t *testing.T) {
	want := errors.New("gl lost")
	ui := interact.New(&mockRenderer{err: want})
	ui.Begin(nil, interact.Vec2{})
	if err := ui.End(); !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
}

func TestGUIContextOptions(t *testing.T) {
	ui := interact.New(nil, interact.WithContextOptions(interact.WithMaxLayerDepth(3)))
	if got := ui.Context().Limits().MaxLayerDepth; got != 3 {
		t.Errorf("expected MaxLayerDepth=3, got %d", got)
	}
}

func TestGUIResize(t *testing.T) {
	renderer := &mockRenderer{}
	ui := interact.New(renderer)
	ui.Resize(640, 480)
	if renderer.resized != [2]int{640, 480} {
		t.Errorf("expected resize to 640x480, got %v", renderer.resized)
	}
}

func BenchmarkFullFrame(b *testing.B) {
	ui := interact.New(nil)
	input := interact.NewInputState()
	input.SetMousePos(120, 120)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := ui.Begin(input, interact.Vec2{X: 1920, Y: 1080})
		for j := range 50 {
			r := interact.R(0, float32(j)*24, 200, 20)
			ctx.RegisterFocusable(interact.HashBounds(r), r, 4)
			ctx.ShouldProcessInput(r)
		}
		ctx.Overlay(interact.ZMenu, interact.R(100, 100, 200, 300))(func(interact.LayerID) {
			for j := range 10 {
				r := interact.R(110, 110+float32(j)*24, 180, 20)
				ctx.RegisterFocusable(interact.HashBounds(r), r, 4)
				ctx.ShouldProcessInput(r)
			}
		})
		_ = ui.End()
	}
}
