package geom

import "testing"

func TestDefaultBackend_Bounds(t *testing.T) {
	b := NewDefaultBackend(0)
	rect := NewPath().Rectangle(0, 0, 10, 10)

	stroke := NewStrokePaint(4)
	stroke.StrokeJoin = LineJoinMiter

	blurred := NewPaint()
	blurred.Blur = 2

	tests := []struct {
		name  string
		paint *Paint
		want  Rect
	}{
		{"no paint", nil, XYWH(0, 0, 10, 10)},
		{"stroke", &stroke, LTRB(-2, -2, 12, 12)},
		{"blur", &blurred, LTRB(-6, -6, 16, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.Bounds(rect, tt.paint)
			if !ok {
				t.Fatal("Bounds() returned false")
			}
			if !rectsNear(got, tt.want) {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultBackend_EmptyPath(t *testing.T) {
	b := NewDefaultBackend(0)
	paint := NewStrokePaint(2)
	if _, ok := b.Bounds(NewPath(), &paint); ok {
		t.Error("empty path should have no bounds")
	}
	if b.Contains(nil, nil, Pt(0, 0)) {
		t.Error("nil path should contain nothing")
	}
}

func TestDefaultBackend_Contains(t *testing.T) {
	b := NewDefaultBackend(0.1)
	circle := NewPath().Circle(50, 50, 20)
	stroke := NewStrokePaint(4)

	if !b.Contains(circle, nil, Pt(50, 50)) {
		t.Error("filled circle should contain its center")
	}
	if b.Contains(circle, &stroke, Pt(50, 50)) {
		t.Error("stroked circle should not contain its center")
	}
	if !b.Contains(circle, &stroke, Pt(71.5, 50)) {
		t.Error("stroked circle should contain a point on the ring")
	}
	if b.Contains(circle, &stroke, Pt(73, 50)) {
		t.Error("stroked circle should not contain a point outside the ring")
	}
}

func TestDefaultBackend_Hairline(t *testing.T) {
	b := NewDefaultBackend(0)
	line := NewPath().MoveTo(0, 0).LineTo(10, 5)
	hair := NewStrokePaint(0)

	got, ok := b.Bounds(line, &hair)
	if !ok || got != LTRB(0, 0, 10, 5) {
		t.Errorf("hairline Bounds() = %v, %v", got, ok)
	}
	if b.Contains(line, &hair, Pt(0, 0)) {
		t.Error("hairline should not be hit")
	}
}
