package replay

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/interact"
)

func TestMain(m *testing.M) {
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	os.Exit(m.Run())
}

func TestScenarios(t *testing.T) {
	files, err := filepath.Glob("testdata/*.json")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			require.NoError(t, err)

			s, err := Parse(data)
			require.NoError(t, err)
			assert.NotEmpty(t, s.Name)

			report, err := Run(s)
			require.NoError(t, err)
			assert.Equal(t, len(s.Frames), report.Frames)
			assert.NotEmpty(t, report.Results)
			assert.NoError(t, report.Err())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"frames": [`},
		{"no frames", `{"name": "x"}`},
		{"frames not array", `{"frames": 3}`},
		{"missing op", `{"frames": [{"ops": [{"bounds": [0, 0, 1, 1]}]}]}`},
		{"short bounds", `{"frames": [{"ops": [{"op": "query", "bounds": [0, 0, 1]}]}]}`},
		{"bad mouse", `{"frames": [{"mouse": [1]}]}`},
		{"unknown key", `{"frames": [{"keys": ["Hyper"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParse_Fields(t *testing.T) {
	s, err := Parse([]byte(`{
		"name": "fields",
		"limits": {"regions": 4, "fields": 10},
		"frames": [{
			"mouse": [1.5, 2],
			"left": true,
			"keys": ["tab", "Enter"],
			"shift": true,
			"ops": [
				{"op": "focusable", "id": "ok", "bounds": [1, 2, 3, 4], "corner": 2},
				{"op": "slider", "slider": 9},
				{"op": "has_focus", "id": 42, "expect": false}
			],
			"after": {"focused": "ok", "focus_index": -1, "slider": 9}
		}]
	}`))
	require.NoError(t, err)
	require.Len(t, s.Frames, 1)

	ctx := interact.NewContext(s.Options...)
	assert.Equal(t, 4, ctx.Limits().MaxBlockingRegions)
	assert.Equal(t, 16, ctx.Limits().FieldTableSize)

	f := s.Frames[0]
	assert.Equal(t, interact.Vec2{X: 1.5, Y: 2}, f.Mouse)
	assert.True(t, f.Left)
	assert.True(t, f.Shift)
	assert.Equal(t, []interact.Key{interact.KeyTab, interact.KeyEnter}, f.Keys)

	require.Len(t, f.Ops, 3)
	assert.Equal(t, interact.HashLabel("ok"), f.Ops[0].ID)
	assert.Equal(t, interact.R(1, 2, 3, 4), f.Ops[0].Bounds)
	assert.Equal(t, float32(2), f.Ops[0].Corner)
	assert.Equal(t, uint32(9), f.Ops[1].Slider)
	assert.Equal(t, interact.WidgetID(42), f.Ops[2].ID)
	assert.True(t, f.Ops[2].Expect.Exists())

	require.NotNil(t, f.After)
	assert.Equal(t, interact.HashLabel("ok"), *f.After.Focused)
	assert.Equal(t, -1, *f.After.FocusIndex)
	assert.Equal(t, uint32(9), *f.After.Slider)
	assert.Nil(t, f.After.Captured)
}

func TestRun_UnknownOp(t *testing.T) {
	s, err := Parse([]byte(`{"frames": [{"ops": [{"op": "teleport"}]}]}`))
	require.NoError(t, err)

	_, err = Run(s)
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestRun_ReportsMismatches(t *testing.T) {
	s, err := Parse([]byte(`{
		"name": "wrong",
		"frames": [
			{"ops": [
				{"op": "push_layer", "z": 5, "expect": 1},
				{"op": "region", "bounds": [0, 0, 10, 10]},
				{"op": "pop_layer"}
			]},
			{"ops": [
				{"op": "query", "bounds": [0, 0, 5, 5], "expect": true}
			], "after": {"depth": 1}}
		]
	}`))
	require.NoError(t, err)

	report, err := Run(s)
	require.NoError(t, err)

	failed := report.Failures()
	require.Len(t, failed, 2)
	assert.Equal(t, 2, failed[0].Frame)
	assert.Equal(t, "query", failed[0].Step)
	assert.Equal(t, "false", failed[0].Got)
	assert.Equal(t, "after.depth", failed[1].Step)
	assert.ErrorIs(t, report.Err(), ErrExpectation)
}

func TestRun_ModalAndFields(t *testing.T) {
	s, err := Parse([]byte(`{
		"name": "modal hides background, hidden field loses focus",
		"frames": [
			{"ops": [
				{"op": "begin_modal", "id": "dlg", "bounds": [0, 0, 50, 50]},
				{"op": "focusable", "id": "ok", "bounds": [5, 5, 10, 10], "expect": true},
				{"op": "end_modal"},
				{"op": "focusable", "id": "bg", "bounds": [100, 0, 10, 10], "expect": false},
				{"op": "query", "bounds": [100, 0, 10, 10], "expect": false},
				{"op": "textfield", "key": 4096},
				{"op": "focus_edit", "key": 4096},
				{"op": "textfield_registered", "key": 4096, "expect": true}
			], "after": {"focused_edit": 4096}},
			{"ops": [
				{"op": "close_modal"},
				{"op": "query", "bounds": [100, 0, 10, 10], "expect": true}
			], "after": {"focused_edit": 0}}
		]
	}`))
	require.NoError(t, err)

	report, err := Run(s)
	require.NoError(t, err)
	assert.NoError(t, report.Err())
	assert.Len(t, report.Results, 7)
}
