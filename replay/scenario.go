// Package replay drives an interact.Context from a scripted JSON scenario and
// checks the routing answers, so routing bugs can be reproduced headless.
//
// A scenario looks like:
//
//	{
//	  "name": "menu blocks background",
//	  "limits": {"regions": 8, "depth": 4, "focusables": 32, "fields": 16},
//	  "frames": [
//	    {
//	      "mouse": [60, 60], "left": true, "keys": ["Tab"], "shift": false,
//	      "ops": [
//	        {"op": "push_layer", "z": 10, "expect": 1},
//	        {"op": "region", "bounds": [0, 0, 100, 100]},
//	        {"op": "pop_layer"},
//	        {"op": "query", "bounds": [60, 60, 10, 10], "expect": true}
//	      ],
//	      "after": {"focused": "ok-button", "captured": false}
//	    }
//	  ]
//	}
//
// IDs may be given as strings (hashed with interact.HashLabel) or numbers.
package replay

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/go-theft-auto/interact"
)

var (
	// ErrMalformed is returned for scenario documents that can't be parsed.
	ErrMalformed = errors.New("malformed scenario")
	// ErrUnknownOp is returned for an op name the runner doesn't know.
	ErrUnknownOp = errors.New("unknown op")
	// ErrExpectation is returned when a checked answer differs from the script.
	ErrExpectation = errors.New("expectation failed")
)

// Scenario is a parsed replay script.
type Scenario struct {
	Name    string
	Options []interact.Option
	Frames  []Frame
}

// Frame is the input and the calls of one UI frame.
type Frame struct {
	Mouse interact.Vec2
	Left  bool // Left button held
	Keys  []interact.Key
	Shift bool
	Ops   []Op
	After *After
}

// Op is one call into the Context. Expect is the raw expected answer, if any.
type Op struct {
	Name    string
	Bounds  interact.Rect
	Z       int
	ID      interact.WidgetID
	Layer   interact.LayerID
	Key     interact.FieldKey
	Slider  uint32
	Corner  float32
	Require bool
	Expect  gjson.Result
}

// After holds state checked once the frame has ended. Nil fields are skipped.
type After struct {
	Focused     *interact.WidgetID
	FocusIndex  *int
	Layer       *interact.LayerID
	Depth       *int
	Captured    *bool
	FocusedEdit *interact.FieldKey
	Slider      *uint32
}

// Parse reads a scenario document.
func Parse(data []byte) (*Scenario, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	doc := gjson.ParseBytes(data)

	s := &Scenario{
		Name:    doc.Get("name").String(),
		Options: parseLimits(doc.Get("limits")),
	}

	frames := doc.Get("frames")
	if !frames.IsArray() {
		return nil, fmt.Errorf("%w: \"frames\" must be an array", ErrMalformed)
	}

	var err error
	frames.ForEach(func(_, fr gjson.Result) bool {
		var f Frame
		f, err = parseFrame(fr)
		if err != nil {
			err = fmt.Errorf("frame %d: %w", len(s.Frames)+1, err)
			return false
		}
		s.Frames = append(s.Frames, f)
		return true
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func parseLimits(l gjson.Result) []interact.Option {
	var opts []interact.Option
	if v := l.Get("regions"); v.Exists() {
		opts = append(opts, interact.WithMaxBlockingRegions(int(v.Int())))
	}
	if v := l.Get("depth"); v.Exists() {
		opts = append(opts, interact.WithMaxLayerDepth(int(v.Int())))
	}
	if v := l.Get("focusables"); v.Exists() {
		opts = append(opts, interact.WithMaxFocusables(int(v.Int())))
	}
	if v := l.Get("fields"); v.Exists() {
		opts = append(opts, interact.WithFieldTableSize(int(v.Int())))
	}
	if v := l.Get("tab"); v.Exists() {
		opts = append(opts, interact.WithTabNavigation(v.Bool()))
	}
	return opts
}

func parseFrame(fr gjson.Result) (Frame, error) {
	f := Frame{
		Left:  fr.Get("left").Bool(),
		Shift: fr.Get("shift").Bool(),
	}
	if m := fr.Get("mouse"); m.Exists() {
		xy := m.Array()
		if len(xy) != 2 {
			return f, fmt.Errorf("%w: \"mouse\" needs [x, y]", ErrMalformed)
		}
		f.Mouse = interact.Vec2{X: float32(xy[0].Float()), Y: float32(xy[1].Float())}
	}
	for _, k := range fr.Get("keys").Array() {
		key := interact.KeyFromName(k.String())
		if key == interact.KeyNone {
			return f, fmt.Errorf("%w: unknown key %q", ErrMalformed, k.String())
		}
		f.Keys = append(f.Keys, key)
	}

	for i, o := range fr.Get("ops").Array() {
		op, err := parseOp(o)
		if err != nil {
			return f, fmt.Errorf("op %d: %w", i, err)
		}
		f.Ops = append(f.Ops, op)
	}

	if a := fr.Get("after"); a.Exists() {
		f.After = parseAfter(a)
	}
	return f, nil
}

func parseOp(o gjson.Result) (Op, error) {
	op := Op{
		Name:    o.Get("op").String(),
		Z:       int(o.Get("z").Int()),
		ID:      parseID(o.Get("id")),
		Layer:   interact.LayerID(o.Get("layer").Uint()),
		Key:     interact.FieldKey(o.Get("key").Uint()),
		Slider:  uint32(o.Get("slider").Uint()),
		Corner:  float32(o.Get("corner").Float()),
		Require: o.Get("require").Bool(),
		Expect:  o.Get("expect"),
	}
	if op.Name == "" {
		return op, fmt.Errorf("%w: missing \"op\"", ErrMalformed)
	}
	if b := o.Get("bounds"); b.Exists() {
		r, err := parseRect(b)
		if err != nil {
			return op, err
		}
		op.Bounds = r
	}
	return op, nil
}

func parseAfter(a gjson.Result) *After {
	after := &After{}
	if v := a.Get("focused"); v.Exists() {
		id := parseID(v)
		after.Focused = &id
	}
	if v := a.Get("focus_index"); v.Exists() {
		i := int(v.Int())
		after.FocusIndex = &i
	}
	if v := a.Get("layer"); v.Exists() {
		l := interact.LayerID(v.Uint())
		after.Layer = &l
	}
	if v := a.Get("depth"); v.Exists() {
		d := int(v.Int())
		after.Depth = &d
	}
	if v := a.Get("captured"); v.Exists() {
		c := v.Bool()
		after.Captured = &c
	}
	if v := a.Get("focused_edit"); v.Exists() {
		k := interact.FieldKey(v.Uint())
		after.FocusedEdit = &k
	}
	if v := a.Get("slider"); v.Exists() {
		s := uint32(v.Uint())
		after.Slider = &s
	}
	return after
}

// parseID accepts a label (hashed) or a raw number.
func parseID(v gjson.Result) interact.WidgetID {
	switch v.Type {
	case gjson.String:
		return interact.HashLabel(v.String())
	case gjson.Number:
		return interact.WidgetID(v.Uint())
	default:
		return 0
	}
}

func parseRect(v gjson.Result) (interact.Rect, error) {
	a := v.Array()
	if len(a) != 4 {
		return interact.Rect{}, fmt.Errorf("%w: bounds need [x, y, w, h]", ErrMalformed)
	}
	return interact.R(float32(a[0].Float()), float32(a[1].Float()),
		float32(a[2].Float()), float32(a[3].Float())), nil
}
