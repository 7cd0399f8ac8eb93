package replay

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/go-theft-auto/interact"
)

// Logger receives one record per checked answer. Replace it to redirect output.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Result is one checked answer.
type Result struct {
	Frame int    // 1-based
	Step  string // Op name, or "after.<field>"
	Got   string
	Want  string
	OK    bool
}

func (r Result) String() string {
	status := "ok"
	if !r.OK {
		status = "FAIL"
	}
	return fmt.Sprintf("frame %d %-24s got=%-8s want=%-8s %s", r.Frame, r.Step, r.Got, r.Want, status)
}

// Report collects the results of a run.
type Report struct {
	Scenario string
	Frames   int
	Results  []Result
}

// Failures returns the results that did not match.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK {
			out = append(out, res)
		}
	}
	return out
}

// Err returns an ErrExpectation-wrapped error if any check failed.
func (r *Report) Err() error {
	failed := r.Failures()
	if len(failed) == 0 {
		return nil
	}
	msgs := make([]string, len(failed))
	for i, f := range failed {
		msgs[i] = f.String()
	}
	return fmt.Errorf("%w: %d of %d checks:\n%s", ErrExpectation,
		len(failed), len(r.Results), strings.Join(msgs, "\n"))
}

// runner carries the Context and input across frames.
type runner struct {
	ctx    *interact.Context
	input  *interact.InputState
	held   []interact.Key
	report *Report
	frame  int
}

// Run plays every frame of s against a fresh Context. The returned error is
// non-nil only for scripts that can't be executed; mismatched answers are
// reported in the Report (see Report.Err).
func Run(s *Scenario) (*Report, error) {
	r := &runner{
		ctx:    interact.NewContext(s.Options...),
		input:  interact.NewInputState(),
		report: &Report{Scenario: s.Name},
	}
	for i, f := range s.Frames {
		r.frame = i + 1
		if err := r.runFrame(f); err != nil {
			return r.report, fmt.Errorf("frame %d: %w", r.frame, err)
		}
		r.report.Frames++
	}
	return r.report, nil
}

func (r *runner) runFrame(f Frame) error {
	in := r.input
	in.Reset()
	for _, k := range r.held {
		in.SetKey(k, false)
	}
	r.held = r.held[:0]

	in.SetMousePos(f.Mouse.X, f.Mouse.Y)
	in.SetMouseButton(interact.MouseButtonLeft, f.Left)
	in.ModShift = f.Shift
	for _, k := range f.Keys {
		in.SetKey(k, true)
		r.held = append(r.held, k)
	}

	r.ctx.BeginFrame(in)
	for _, op := range f.Ops {
		got, err := r.apply(op)
		if err != nil {
			r.ctx.EndFrame()
			return err
		}
		if got != nil && op.Expect.Exists() {
			r.check(op.Name, got, op.Expect)
		}
	}
	r.ctx.EndFrame()

	if f.After != nil {
		r.checkAfter(f.After)
	}
	return nil
}

// apply performs one op and returns its answer, or nil for ops without one.
func (r *runner) apply(op Op) (any, error) {
	ctx := r.ctx
	switch op.Name {
	case "push_layer":
		return uint64(ctx.PushLayer(op.Z)), nil
	case "pop_layer":
		ctx.PopLayer()
	case "region":
		return ctx.RegisterBlockingRegion(op.Bounds), nil
	case "query":
		return ctx.ShouldProcessInput(op.Bounds), nil
	case "current_layer":
		return uint64(ctx.CurrentLayer()), nil
	case "depth":
		return int64(ctx.LayerDepth()), nil

	case "begin_modal":
		ctx.BeginModal(op.ID, op.Bounds)
	case "end_modal":
		ctx.EndModal()
	case "close_modal":
		ctx.CloseModal()

	case "focusable":
		return ctx.RegisterFocusable(op.ID, op.Bounds, op.Corner), nil
	case "set_focus":
		ctx.SetFocus(op.ID)
	case "clear_focus":
		ctx.ClearFocus()
	case "has_focus":
		return ctx.HasFocus(op.ID), nil
	case "focus_next":
		ctx.FocusNext()
	case "focus_prev":
		ctx.FocusPrev()

	case "trap_begin":
		ctx.FocusTrapBegin(r.layerOr(op.Layer))
	case "trap_end":
		ctx.FocusTrapEnd()
	case "trap_release":
		ctx.FocusTrapRelease()
	case "layer_is_focused":
		return ctx.LayerIsFocused(r.layerOr(op.Layer)), nil

	case "capture":
		return ctx.BeginInputCapture(op.Bounds, op.Require), nil
	case "release":
		ctx.ReleaseCapture()
	case "is_captured":
		return ctx.IsInputCaptured(), nil

	case "textfield":
		ctx.RegisterTextField(op.Key)
	case "slider":
		ctx.RegisterSlider(op.Slider)
	case "textfield_registered":
		return ctx.TextFieldIsRegistered(op.Key), nil
	case "slider_registered":
		return ctx.SliderIsRegistered(op.Slider), nil
	case "focus_edit":
		ctx.SetFocusedEdit(op.Key)
	case "active_slider":
		ctx.SetActiveSlider(op.Slider, 0)
	case "animate_slider":
		ctx.StartSliderAnimation(op.Slider)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op.Name)
	}
	return nil, nil
}

// layerOr returns l, or the current layer when l is 0.
func (r *runner) layerOr(l interact.LayerID) interact.LayerID {
	if l != 0 {
		return l
	}
	return r.ctx.CurrentLayer()
}

func (r *runner) check(step string, got any, want gjson.Result) {
	res := Result{Frame: r.frame, Step: step}
	switch g := got.(type) {
	case bool:
		w := want.Bool()
		res.Got, res.Want, res.OK = fmt.Sprint(g), fmt.Sprint(w), g == w
	case uint64:
		w := want.Uint()
		if want.Type == gjson.String {
			w = uint64(interact.HashLabel(want.String()))
		}
		res.Got, res.Want, res.OK = fmt.Sprint(g), fmt.Sprint(w), g == w
	case int64:
		w := want.Int()
		res.Got, res.Want, res.OK = fmt.Sprint(g), fmt.Sprint(w), g == w
	default:
		res.Got, res.Want = fmt.Sprint(g), want.Raw
	}

	r.report.Results = append(r.report.Results, res)
	if res.OK {
		Logger.Debug("check", "frame", res.Frame, "step", step, "got", res.Got)
	} else {
		Logger.Warn("check failed", "frame", res.Frame, "step", step, "got", res.Got, "want", res.Want)
	}
}

func (r *runner) checkAfter(a *After) {
	ctx := r.ctx
	if a.Focused != nil {
		r.checkValue("after.focused", uint64(ctx.FocusedID()), uint64(*a.Focused))
	}
	if a.FocusIndex != nil {
		r.check("after.focus_index", int64(ctx.FocusIndex()), gjson.Parse(fmt.Sprint(*a.FocusIndex)))
	}
	if a.Layer != nil {
		r.checkValue("after.layer", uint64(ctx.CurrentLayer()), uint64(*a.Layer))
	}
	if a.Depth != nil {
		r.check("after.depth", int64(ctx.LayerDepth()), gjson.Parse(fmt.Sprint(*a.Depth)))
	}
	if a.Captured != nil {
		r.check("after.captured", ctx.IsInputCaptured(), gjson.Parse(fmt.Sprint(*a.Captured)))
	}
	if a.FocusedEdit != nil {
		r.checkValue("after.focused_edit", uint64(ctx.FocusedEdit()), uint64(*a.FocusedEdit))
	}
	if a.Slider != nil {
		id, _ := ctx.ActiveSlider()
		r.checkValue("after.slider", uint64(id), uint64(*a.Slider))
	}
}

func (r *runner) checkValue(step string, got, want uint64) {
	r.check(step, got, gjson.Parse(fmt.Sprint(want)))
}
