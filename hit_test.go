package rtree

import (
	"slices"
	"testing"

	"github.com/google/uuid"

	"github.com/gogpu/rtree/geom"
)

func TestTopmost_Overlap(t *testing.T) {
	lower, upper := uuid.New(), uuid.New()
	tree := Wrap(
		WithID(lower, rect(0, 0, 100, 100)),
		WithID(upper, rect(50, 50, 100, 100)),
	)
	e := newTestEngine()

	tests := []struct {
		name string
		p    geom.Point
		want []uuid.UUID
	}{
		{"overlap picks later child", geom.Pt(75, 75), []uuid.UUID{upper}},
		{"only lower", geom.Pt(25, 25), []uuid.UUID{lower}},
		{"only upper", geom.Pt(125, 125), []uuid.UUID{upper}},
		{"miss", geom.Pt(200, 200), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := e.Topmost(tree, tt.p)
			if ok != (tt.want != nil) {
				t.Fatalf("Topmost() ok = %v, want %v", ok, tt.want != nil)
			}
			if ok && !slices.Equal(hit.IDs(), tt.want) {
				t.Errorf("Topmost().IDs() = %v, want %v", hit.IDs(), tt.want)
			}
			if e.Contains(tree, tt.p) != ok {
				t.Error("Contains() disagrees with Topmost()")
			}
		})
	}

	if r, _ := e.BoundingBox(tree); r != geom.LTRB(0, 0, 150, 150) {
		t.Errorf("BoundingBox() = %v, want [0 0 150 150]", r)
	}
}

func TestContains_Clip(t *testing.T) {
	circle := geom.NewPath().Circle(50, 50, 50)
	square := geom.NewPath().Rectangle(0, 0, 50, 50)

	tests := []struct {
		name string
		tree Tree
		p    geom.Point
		want bool
	}{
		{"difference hole", Clip(circle, ClipDifference, rect(0, 0, 100, 100)), geom.Pt(50, 50), false},
		{"difference corner", Clip(circle, ClipDifference, rect(0, 0, 100, 100)), geom.Pt(5, 5), true},
		{"intersect inside", Clip(square, ClipIntersect, rect(0, 0, 100, 100)), geom.Pt(25, 25), true},
		{"intersect outside", Clip(square, ClipIntersect, rect(0, 0, 100, 100)), geom.Pt(75, 75), false},
		{"clip under translate", Translate(100, 0, Clip(square, ClipIntersect, rect(0, 0, 100, 100))), geom.Pt(125, 25), true},
		{"clip under translate outside", Translate(100, 0, Clip(square, ClipIntersect, rect(0, 0, 100, 100))), geom.Pt(175, 25), false},
		{"clip frame excludes inner transform", Clip(square, ClipIntersect, Translate(40, 40, rect(0, 0, 20, 20))), geom.Pt(55, 55), false},
		{"nested clips", Clip(square, ClipIntersect, Clip(circle, ClipDifference, rect(0, 0, 100, 100))), geom.Pt(5, 5), true},
		{"nested clips hole", Clip(square, ClipIntersect, Clip(circle, ClipDifference, rect(0, 0, 100, 100))), geom.Pt(40, 40), false},
		{"on top escapes clip", Clip(square, ClipIntersect, OnTop(rect(0, 0, 100, 100))), geom.Pt(75, 75), true},
		{
			"clip below on top still applies",
			Clip(square, ClipIntersect, OnTop(Clip(circle, ClipDifference, rect(0, 0, 100, 100)))),
			geom.Pt(50, 50), false,
		},
	}

	e := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Contains(tt.tree, tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestContains_Leaves(t *testing.T) {
	hairline := Path(geom.NewPath().Rectangle(0, 0, 10, 10), geom.NewStrokePaint(0))
	stroke := Path(geom.NewPath().Rectangle(0, 0, 10, 10), geom.NewStrokePaint(4))
	blurred := geom.NewPaint()
	blurred.Blur = 2
	label := Text(TextCommand{Text: "abc", X: 10, Y: 10})

	tests := []struct {
		name string
		tree Tree
		p    geom.Point
		want bool
	}{
		{"hairline never hit", hairline, geom.Pt(0, 5), false},
		{"stroke edge", stroke, geom.Pt(0, 5), true},
		{"stroke interior", stroke, geom.Pt(5, 5), false},
		{"text inside", label, geom.Pt(25, 15), true},
		{"text right edge inclusive", label, geom.Pt(40, 20), true},
		{"text outside", label, geom.Pt(45, 15), false},
		{"image", Image(geom.XYWH(0, 0, 10, 10), "a.png", FitNone, nil), geom.Pt(10, 10), true},
		{"image outside", Image(geom.XYWH(0, 0, 10, 10), "a.png", FitNone, nil), geom.Pt(11, 5), false},
		{"blurred image halo", Image(geom.XYWH(0, 0, 10, 10), "a.png", FitFill, &blurred), geom.Pt(-5, 5), true},
		{"scaled leaf", Scale(2, 2, rect(0, 0, 10, 10)), geom.Pt(19, 19), true},
		{"rotated leaf", Rotate(3.141592653589793, rect(0, 0, 10, 10)), geom.Pt(-5, -5), true},
		{"absolute leaf", Translate(50, 50, Absolute(0, 0, rect(0, 0, 10, 10))), geom.Pt(5, 5), true},
		{"empty", Empty{}, geom.Pt(0, 0), false},
	}

	e := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Contains(tt.tree, tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestContains_TinyTransform(t *testing.T) {
	leaf := rect(0, 0, 1e5, 1e5)
	e := newTestEngine()

	for _, tree := range []Tree{
		Transform(geom.Scale(1e-6, 1e-6), leaf),
		Scale(1e-6, 1e-6, leaf),
	} {
		if got, _ := e.BoundingBox(tree); !rectsNear(got, geom.LTRB(0, 0, 0.1, 0.1)) {
			t.Errorf("BoundingBox(%T) = %v, want [0 0 0.1 0.1]", tree, got)
		}
		if !e.Contains(tree, geom.Pt(0.05, 0.05)) {
			t.Errorf("%T: Contains(0.05, 0.05) = false, want true", tree)
		}
		if e.Contains(tree, geom.Pt(50, 50)) {
			t.Errorf("%T: Contains(50, 50) = true, want false", tree)
		}
	}
}

func TestContains_AgreesWithBoundingBox(t *testing.T) {
	tests := []struct {
		name string
		m    geom.Matrix
	}{
		{"identity", geom.Identity()},
		{"tiny scale", geom.Scale(1e-6, 1e-6)},
		{"huge scale", geom.Scale(1e6, 1e6)},
		{"anisotropic", geom.Scale(3, 0.25)},
		{"rotate and translate", geom.Translate(40, -20).Multiply(geom.Rotate(0.6))},
		{"skew", geom.Matrix{A: 1, B: 0.5, D: 0.2, E: 1}},
		{"mirror", geom.Scale(-2, 1)},
		{"tiny rotated", geom.Rotate(1.1).Multiply(geom.Scale(1e-7, 1e-5))},
	}

	e := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := Transform(tt.m, rect(0, 0, 100, 100))
			r, ok := e.BoundingBox(tree)
			if !ok {
				t.Fatal("BoundingBox() returned false")
			}
			if c := r.Center(); !e.Contains(tree, c) {
				t.Errorf("Contains(centre %v) = false, bounds %v", c, r)
			}
			far := geom.Pt(r.Max.X+r.Width()+1, r.Max.Y+r.Height()+1)
			if e.Contains(tree, far) {
				t.Errorf("Contains(%v) = true outside bounds %v", far, r)
			}
		})
	}
}

func TestTopmost_Details(t *testing.T) {
	outer, inner := uuid.New(), uuid.New()
	tree := WithID(outer, MouseCursor(CursorGrab, Translate(10, 10,
		WithID(inner, MouseCursor(CursorPointer, rect(0, 0, 20, 20))))))

	hit, ok := newTestEngine().Topmost(tree, geom.Pt(15, 17))
	if !ok {
		t.Fatal("Topmost() found nothing")
	}
	if !pointsNear(hit.Local, geom.Pt(5, 7)) {
		t.Errorf("Local = %v, want (5, 7)", hit.Local)
	}
	if got := hit.IDs(); !slices.Equal(got, []uuid.UUID{inner, outer}) {
		t.Errorf("IDs() = %v, want inner then outer", got)
	}
	if c, ok := hit.Cursor(); !ok || c != CursorPointer {
		t.Errorf("Cursor() = %v, %v; want pointer", c, ok)
	}
	if _, ok := hit.Node.Command.(PathCommand); !ok {
		t.Errorf("Node.Command = %T, want PathCommand", hit.Node.Command)
	}
	if len(hit.Ancestors) != 5 {
		t.Errorf("len(Ancestors) = %d, want 5", len(hit.Ancestors))
	}
}

func TestHit_NoCursor(t *testing.T) {
	hit, ok := newTestEngine().Topmost(rect(0, 0, 10, 10), geom.Pt(5, 5))
	if !ok {
		t.Fatal("Topmost() found nothing")
	}
	if c, ok := hit.Cursor(); ok || c != CursorDefault {
		t.Errorf("Cursor() = %v, %v; want default, false", c, ok)
	}
	if ids := hit.IDs(); len(ids) != 0 {
		t.Errorf("IDs() = %v, want none", ids)
	}
}

func TestLocalPoint(t *testing.T) {
	target := WithID(uuid.New(), rect(0, 0, 10, 10))
	tree := Wrap(
		rect(0, 0, 5, 5),
		Translate(10, 20, Scale(2, 2, target)),
	)

	got, ok := LocalPoint(tree, target, geom.Pt(30, 40))
	if !ok {
		t.Fatal("LocalPoint() did not find the target")
	}
	if !pointsNear(got, geom.Pt(10, 10)) {
		t.Errorf("LocalPoint() = %v, want (10, 10)", got)
	}

	if _, ok := LocalPoint(tree, rect(1, 1, 1, 1), geom.Pt(0, 0)); ok {
		t.Error("LocalPoint() found a node that is not in the tree")
	}
}
