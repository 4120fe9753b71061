package rtree

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/gogpu/rtree/geom"
)

func sampleTree(id uuid.UUID) Tree {
	clip := geom.NewPath().Circle(50, 50, 40)
	blurred := geom.NewPaint()
	blurred.Blur = 2
	return Wrap(
		Translate(10, 20, rect(0, 0, 100, 100)),
		Clip(clip, ClipDifference, Scale(2, 2, rect(0, 0, 10, 10))),
		OnTop(MouseCursor(CursorPointer, WithID(id, Text(TextCommand{
			Text: "hello",
			X:    5,
			Y:    5,
		})))),
		Absolute(1, 1, Image(geom.XYWH(0, 0, 8, 8), "a.png", FitCover, &blurred)),
		Rotate(math.Pi/4, Transform(geom.Scale(1, 2), rect(0, 0, 1, 1))),
	)
}

func TestEqual(t *testing.T) {
	id := uuid.New()
	a := sampleTree(id)
	b := sampleTree(id)

	if !Equal(a, b) {
		t.Error("identically built trees should be equal")
	}
	if Hash(a) != Hash(b) {
		t.Error("equal trees should hash alike")
	}
	if Equal(a, sampleTree(uuid.New())) {
		t.Error("trees with different ids should differ")
	}
}

func TestEqual_Differences(t *testing.T) {
	base := Translate(1, 2, rect(0, 0, 10, 10))
	tests := []struct {
		name  string
		other Tree
	}{
		{"offset", Translate(1, 3, rect(0, 0, 10, 10))},
		{"variant", Absolute(1, 2, rect(0, 0, 10, 10))},
		{"leaf", Translate(1, 2, rect(0, 0, 10, 11))},
		{"paint", Translate(1, 2, Path(geom.NewPath().Rectangle(0, 0, 10, 10), geom.NewStrokePaint(1)))},
		{"wrapped", Wrap(base, rect(0, 0, 1, 1))},
		{"empty", Empty{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Equal(base, tt.other) {
				t.Errorf("Equal(base, %#v) = true", tt.other)
			}
			if Hash(base) == Hash(tt.other) {
				t.Errorf("Hash(base) == Hash(%#v)", tt.other)
			}
		})
	}
}

func TestEqual_EmptyAndNil(t *testing.T) {
	if !Equal(nil, Empty{}) {
		t.Error("nil and Empty should be equal")
	}
	if Hash(nil) != Hash(Empty{}) {
		t.Error("nil and Empty should hash alike")
	}
}

func TestHash_NegativeZero(t *testing.T) {
	a := Translate(0, 0, rect(0, 0, 1, 1))
	b := Translate(math.Copysign(0, -1), 0, rect(0, 0, 1, 1))
	if !Equal(a, b) {
		t.Fatal("-0 and +0 offsets should be equal")
	}
	if Hash(a) != Hash(b) {
		t.Error("-0 and +0 offsets should hash alike")
	}
}

func TestEqual_ImagePaint(t *testing.T) {
	r := geom.XYWH(0, 0, 4, 4)
	p1 := geom.NewPaint()
	p2 := geom.NewPaint()

	if !Equal(Image(r, "x", FitFill, &p1), Image(r, "x", FitFill, &p2)) {
		t.Error("image paints should compare by value")
	}
	if Equal(Image(r, "x", FitFill, &p1), Image(r, "x", FitFill, nil)) {
		t.Error("nil paint should differ from a paint")
	}
}

func TestKey(t *testing.T) {
	id := uuid.New()
	k1 := NewKey(sampleTree(id))
	k2 := NewKey(sampleTree(id))
	if k1.Hash() != k2.Hash() || !k1.Equal(k2) {
		t.Error("keys of equal trees should match")
	}
	if k1.Equal(NewKey(rect(0, 0, 1, 1))) {
		t.Error("keys of different trees should not match")
	}
}
