package fixture

import (
	"errors"
	"fmt"

	"github.com/gogpu/rtree"
	"github.com/gogpu/rtree/geom"
	"github.com/gogpu/rtree/text"
)

// path builds the path described by whichever shape key is set.
func (s Shape) path() (*geom.Path, error) {
	p := geom.NewPath()
	set := 0

	if s.Rect != nil {
		set++
		if len(s.Rect) != 4 {
			return nil, fmt.Errorf("rect: want [x, y, w, h], got %d values", len(s.Rect))
		}
		p.Rectangle(s.Rect[0], s.Rect[1], s.Rect[2], s.Rect[3])
	}
	if s.Circle != nil {
		set++
		if len(s.Circle) != 3 {
			return nil, fmt.Errorf("circle: want [cx, cy, r], got %d values", len(s.Circle))
		}
		p.Circle(s.Circle[0], s.Circle[1], s.Circle[2])
	}
	if s.Ellipse != nil {
		set++
		if len(s.Ellipse) != 4 {
			return nil, fmt.Errorf("ellipse: want [cx, cy, rx, ry], got %d values", len(s.Ellipse))
		}
		p.Ellipse(s.Ellipse[0], s.Ellipse[1], s.Ellipse[2], s.Ellipse[3])
	}
	if s.RoundedRect != nil {
		set++
		if len(s.RoundedRect) != 5 {
			return nil, fmt.Errorf("rounded_rect: want [x, y, w, h, r], got %d values", len(s.RoundedRect))
		}
		r := s.RoundedRect
		p.RoundedRectangle(r[0], r[1], r[2], r[3], r[4])
	}
	if s.Points != nil {
		set++
		pts := make([]geom.Point, len(s.Points))
		for i, xy := range s.Points {
			if len(xy) != 2 {
				return nil, fmt.Errorf("points[%d]: want [x, y], got %d values", i, len(xy))
			}
			pts[i] = geom.Pt(xy[0], xy[1])
		}
		p.Polygon(pts...)
	}

	switch set {
	case 0:
		return nil, errors.New("no shape: set one of rect, circle, ellipse, rounded_rect or points")
	case 1:
		return p, nil
	default:
		return nil, errors.New("more than one shape key set")
	}
}

// paint converts a paint mapping. A nil mapping is the default fill.
func (d *paintDTO) paint() (geom.Paint, error) {
	p := geom.NewPaint()
	if d == nil {
		return p, nil
	}

	if d.Color != "" {
		c, err := geom.ParseHex(d.Color)
		if err != nil {
			return p, err
		}
		p.Color = c
	}

	switch d.Style {
	case "", "fill":
	case "stroke":
		p.Style = geom.Stroke
	default:
		return p, fmt.Errorf("paint style %q", d.Style)
	}
	if d.Width != nil {
		p.StrokeWidth = *d.Width
	}

	switch d.Cap {
	case "", "butt":
	case "round":
		p.StrokeCap = geom.LineCapRound
	case "square":
		p.StrokeCap = geom.LineCapSquare
	default:
		return p, fmt.Errorf("line cap %q", d.Cap)
	}

	switch d.Join {
	case "", "miter":
	case "round":
		p.StrokeJoin = geom.LineJoinRound
	case "bevel":
		p.StrokeJoin = geom.LineJoinBevel
	default:
		return p, fmt.Errorf("line join %q", d.Join)
	}

	switch d.FillRule {
	case "", "nonzero":
	case "evenodd":
		p.FillRule = geom.FillRuleEvenOdd
	default:
		return p, fmt.Errorf("fill rule %q", d.FillRule)
	}

	if d.Miter > 0 {
		p.StrokeMiter = d.Miter
	}
	if d.Blur < 0 {
		return p, fmt.Errorf("negative blur %g", d.Blur)
	}
	p.Blur = d.Blur
	return p, nil
}

func (d *textDTO) command() (rtree.TextCommand, error) {
	cmd := rtree.TextCommand{
		Text:       d.Text,
		Font:       text.Font{Family: d.Font.Family, Size: d.Font.Size},
		X:          d.X,
		Y:          d.Y,
		MaxWidth:   d.MaxWidth,
		LineHeight: d.LineHeight,
	}
	if cmd.Font.Family == "" {
		cmd.Font.Family = text.DefaultFamily
	}
	if cmd.Font.Size == 0 {
		cmd.Font.Size = 16
	}

	switch d.Align {
	case "", "left":
	case "center":
		cmd.Align = text.AlignCenter
	case "right":
		cmd.Align = text.AlignRight
	default:
		return cmd, fmt.Errorf("align %q", d.Align)
	}

	switch d.Baseline {
	case "", "top":
	case "middle":
		cmd.Baseline = text.BaselineMiddle
	case "bottom":
		cmd.Baseline = text.BaselineBottom
	default:
		return cmd, fmt.Errorf("baseline %q", d.Baseline)
	}

	paint, err := d.Paint.paint()
	if err != nil {
		return cmd, err
	}
	cmd.Paint = paint
	return cmd, nil
}

func (d *imageDTO) command() (rtree.ImageCommand, error) {
	var cmd rtree.ImageCommand
	if len(d.Rect) != 4 {
		return cmd, fmt.Errorf("rect: want [x, y, w, h], got %d values", len(d.Rect))
	}
	cmd.Rect = geom.XYWH(d.Rect[0], d.Rect[1], d.Rect[2], d.Rect[3])
	cmd.Source = d.Source

	if d.Fit != "" {
		fit, ok := rtree.ParseImageFit(d.Fit)
		if !ok {
			return cmd, fmt.Errorf("image fit %q", d.Fit)
		}
		cmd.Fit = fit
	}

	if d.Paint != nil {
		paint, err := d.Paint.paint()
		if err != nil {
			return cmd, err
		}
		cmd.Paint = &paint
	}
	return cmd, nil
}

func parseClipOp(s string) (rtree.ClipOp, error) {
	switch s {
	case "", "intersect":
		return rtree.ClipIntersect, nil
	case "difference":
		return rtree.ClipDifference, nil
	}
	return rtree.ClipIntersect, fmt.Errorf("clip op %q", s)
}
