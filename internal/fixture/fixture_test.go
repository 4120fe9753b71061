package fixture

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/rtree"
	"github.com/gogpu/rtree/geom"
	"github.com/gogpu/rtree/text"
)

func TestLoad_Overlap(t *testing.T) {
	fx, err := Load(filepath.Join("testdata", "overlap.yaml"))
	require.NoError(t, err)

	want := rtree.Wrap(
		rtree.WithID(uuid.MustParse("6f1c2a4e-0000-4000-8000-000000000001"),
			rtree.Path(geom.NewPath().Rectangle(0, 0, 100, 100), geom.NewPaint())),
		rtree.WithID(uuid.MustParse("6f1c2a4e-0000-4000-8000-000000000002"),
			rtree.Path(geom.NewPath().Rectangle(50, 50, 100, 100), orangePaint())),
	)
	assert.True(t, rtree.Equal(want, fx.Scene), "scene = %#v", fx.Scene)
	assert.Equal(t, []geom.Point{geom.Pt(75, 75), geom.Pt(25, 25), geom.Pt(200, 200)}, fx.Points)
	assert.Empty(t, fx.Fonts)
}

func orangePaint() geom.Paint {
	p := geom.NewPaint()
	p.Color = geom.RGBA{R: 1, G: 0x88 / 255.0, B: 0, A: 1}
	return p
}

func TestLoad_Donut(t *testing.T) {
	fx, err := Load(filepath.Join("testdata", "donut.yaml"))
	require.NoError(t, err)

	clip, ok := fx.Scene.(rtree.ClipNode)
	require.True(t, ok, "scene is %T", fx.Scene)
	assert.Equal(t, rtree.ClipDifference, clip.Op)
	assert.True(t, clip.Path.Equal(geom.NewPath().Circle(50, 50, 50)))

	e := rtree.NewEngine()
	assert.False(t, e.Contains(fx.Scene, fx.Points[0]))
	assert.True(t, e.Contains(fx.Scene, fx.Points[1]))
}

func TestLoad_Kitchen(t *testing.T) {
	fx, err := Load(filepath.Join("testdata", "kitchen.yaml"))
	require.NoError(t, err)

	children, ok := fx.Scene.(rtree.Children)
	require.True(t, ok, "scene is %T", fx.Scene)
	require.Len(t, children, 5, "the empty node is dropped by Wrap")

	scale := children[0].(rtree.TranslateNode).Child.(rtree.ScaleNode)
	stroke := scale.Child.(rtree.Node).Command.(rtree.PathCommand).Paint
	assert.Equal(t, geom.Stroke, stroke.Style)
	assert.Equal(t, geom.LineJoinRound, stroke.StrokeJoin)
	assert.Equal(t, geom.LineCapRound, stroke.StrokeCap)

	rot := children[1].(rtree.RotateNode)
	assert.InDelta(t, math.Pi/2, rot.Angle, 1e-12)
	assert.Equal(t, geom.FillRuleEvenOdd, rot.Child.(rtree.Node).Command.(rtree.PathCommand).Paint.FillRule)

	tr := children[2].(rtree.TransformNode)
	assert.Equal(t, geom.Translate(5, 5), tr.Matrix)
	img := tr.Child.(rtree.Node).Command.(rtree.ImageCommand)
	assert.Equal(t, rtree.FitContain, img.Fit)
	require.NotNil(t, img.Paint)
	assert.InDelta(t, 1.5, img.Paint.Blur, 1e-12)

	abs := children[3].(rtree.AbsoluteNode)
	cursor := abs.Child.(rtree.OnTopNode).Child.(rtree.MouseCursorNode)
	assert.Equal(t, rtree.CursorPointer, cursor.Cursor)
	label := cursor.Child.(rtree.Node).Command.(rtree.TextCommand)
	assert.Equal(t, "Hello\nworld", label.Text)
	assert.Equal(t, text.Font{Family: text.DefaultFamily, Size: 12}, label.Font)
	assert.Equal(t, text.AlignCenter, label.Align)
	assert.Equal(t, text.BaselineMiddle, label.Baseline)

	assert.Equal(t, rtree.ClipIntersect, children[4].(rtree.ClipNode).Op)

	assert.Equal(t, filepath.Join("testdata", "fonts", "display.ttf"), fx.Fonts["Display"])
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		msg     string
	}{
		{"empty document", "", ErrInvalid, "empty document"},
		{"no scene", "points: [[1, 2]]", ErrInvalid, "no scene"},
		{"unknown kind", "scene: {kind: sprite}", ErrUnknownKind, `"sprite" at scene`},
		{
			"nested unknown kind",
			"scene: {kind: children, children: [{kind: path, rect: [0, 0, 1, 1]}, {kind: blob}]}",
			ErrUnknownKind, "scene.children[1]",
		},
		{"missing shape", "scene: {kind: path}", ErrInvalid, "no shape"},
		{"two shapes", "scene: {kind: path, rect: [0, 0, 1, 1], circle: [0, 0, 1]}", ErrInvalid, "more than one"},
		{"short rect", "scene: {kind: path, rect: [0, 0, 1]}", ErrInvalid, "rect"},
		{"unknown key", "scene: {kind: path, rect: [0, 0, 1, 1], colour: red}", ErrInvalid, "colour"},
		{"bad color", "scene: {kind: path, rect: [0, 0, 1, 1], paint: {color: '#zz'}}", geom.ErrInvalidHex, ""},
		{"bad cursor", "scene: {kind: cursor, cursor: hand, child: {kind: empty}}", ErrInvalid, "hand"},
		{"bad id", "scene: {kind: id, id: nope, child: {kind: empty}}", ErrInvalid, "scene (id)"},
		{"bad matrix", "scene: {kind: transform, matrix: [1, 0, 0]}", ErrInvalid, "matrix"},
		{"bad clip op", "scene: {kind: clip, op: union, rect: [0, 0, 1, 1]}", ErrInvalid, "union"},
		{"bad point", "scene: {kind: empty}\npoints: [[1, 2, 3]]", ErrInvalid, "points[0]"},
		{"bad yaml", "scene: [", nil, "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.msg != "" {
				assert.ErrorContains(t, err, tt.msg)
			}
		})
	}
}

func TestDecode_MissingChildIsEmpty(t *testing.T) {
	fx, err := Decode(strings.NewReader("scene: {kind: translate, x: 1, y: 2}"))
	require.NoError(t, err)
	assert.True(t, rtree.IsEmpty(fx.Scene))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.yaml"))
	assert.Error(t, err)
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("12.5, -3")
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(12.5, -3), p)

	for _, bad := range []string{"", "1", "a,2", "1,b"} {
		_, err := ParsePoint(bad)
		assert.Error(t, err, "ParsePoint(%q)", bad)
	}
}

func TestRegisterFonts_MissingFile(t *testing.T) {
	fx := &Fixture{Fonts: map[string]string{"Ghost": filepath.Join("testdata", "ghost.ttf")}}
	err := fx.RegisterFonts(text.NewLibrary())
	assert.ErrorContains(t, err, "Ghost")
}
