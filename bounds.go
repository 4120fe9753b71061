package rtree

import (
	"errors"

	"github.com/gogpu/rtree/geom"
	"github.com/gogpu/rtree/text"
)

// BoundingBox returns the smallest axis-aligned rectangle, in root
// coordinates, that covers everything t draws. It returns false when t
// draws nothing visible.
//
// Results are memoized: structurally equal trees share one cache entry.
func (e *Engine) BoundingBox(t Tree) (geom.Rect, bool) {
	if IsEmpty(t) {
		return geom.Rect{}, false
	}

	computed := false
	r, err := e.bounds.GetOrTryCreate(NewKey(t), func() (geom.Rect, error) {
		computed = true
		r, ok := e.computeBounds(t)
		if !ok {
			return geom.Rect{}, ErrNoBounds
		}
		return r, nil
	})

	log := Logger()
	switch {
	case errors.Is(err, ErrNoBounds):
		log.Debug("rtree: bounding box", "result", "none")
		return geom.Rect{}, false
	case err != nil:
		return geom.Rect{}, false
	}
	if computed {
		log.Debug("rtree: bounding box cache miss", "rect", r)
	} else {
		log.Debug("rtree: bounding box cache hit", "rect", r)
	}
	return r, true
}

// computeBounds runs the uncached bounding-box walk. OnTop rects are
// unioned in even when the main walk has no bounds.
func (e *Engine) computeBounds(t Tree) (geom.Rect, bool) {
	w := boundsWalker{e: e}
	r, ok := w.walk(t, geom.Identity())
	for _, top := range w.onTop {
		if ok {
			r = r.Union(top)
		} else {
			r, ok = top, true
		}
	}
	return r, ok
}

// boundsWalker accumulates the rectangles of OnTop subtrees alongside
// the main walk.
type boundsWalker struct {
	e     *Engine
	onTop []geom.Rect
}

func (w *boundsWalker) walk(t Tree, m geom.Matrix) (geom.Rect, bool) {
	switch n := t.(type) {
	case nil, Empty:
		return geom.Rect{}, false

	case Node:
		r, ok := w.e.commandBounds(n.Command)
		if !ok {
			return geom.Rect{}, false
		}
		return r.Transform(m), true

	case Children:
		var acc geom.Rect
		found := false
		for _, c := range n {
			r, ok := w.walk(c, m)
			if !ok {
				continue
			}
			if found {
				acc = acc.Union(r)
			} else {
				acc, found = r, true
			}
		}
		return acc, found

	case TranslateNode:
		return w.walk(n.Child, m.Multiply(geom.Translate(n.X, n.Y)))
	case ScaleNode:
		return w.walk(n.Child, m.Multiply(geom.Scale(n.X, n.Y)))
	case RotateNode:
		return w.walk(n.Child, m.Multiply(geom.Rotate(n.Angle)))
	case TransformNode:
		return w.walk(n.Child, m.Multiply(n.Matrix))
	case AbsoluteNode:
		return w.walk(n.Child, geom.Translate(n.X, n.Y))

	case ClipNode:
		inner, ok := w.walk(n.Child, m)
		if !ok {
			return geom.Rect{}, false
		}
		clip, clipOK := w.e.backend.Bounds(n.Path, nil)
		if clipOK {
			clip = clip.Transform(m)
		}
		if n.Op == ClipDifference {
			return clipDifference(inner, clip, clipOK)
		}
		if !clipOK {
			return geom.Rect{}, false
		}
		return inner.Intersect(clip)

	case OnTopNode:
		r, ok := w.walk(n.Child, m)
		if ok {
			w.onTop = append(w.onTop, r)
		}
		return r, ok

	case MouseCursorNode:
		return w.walk(n.Child, m)
	case WithIDNode:
		return w.walk(n.Child, m)
	}
	return geom.Rect{}, false
}

// clipDifference bounds what remains of inner after cutting clip out of
// it. The result is the minimal rectangle over the corners of both
// rectangles that lie outside (or on) clip and inside (or on) inner.
func clipDifference(inner, clip geom.Rect, clipOK bool) (geom.Rect, bool) {
	if !clipOK {
		return inner, true
	}
	if inner == clip {
		return geom.Rect{}, false
	}

	ic, cc := inner.Corners(), clip.Corners()
	pts := make([]geom.Point, 0, 8)
	for _, p := range append(ic[:], cc[:]...) {
		outsideClip := clip.IsOutside(p) || clip.IsOnBorder(p)
		if outsideClip && inner.Contains(p) {
			pts = append(pts, p)
		}
	}

	r, ok := geom.RectFromPoints(pts...)
	if !ok {
		Logger().Debug("rtree: difference clip kept no corner, using inner bounds",
			"inner", inner, "clip", clip)
		return inner, true
	}
	return r, true
}

// commandBounds returns the local bounds of a draw command.
func (e *Engine) commandBounds(c DrawCommand) (geom.Rect, bool) {
	switch cmd := c.(type) {
	case PathCommand:
		return e.backend.Bounds(cmd.Path, &cmd.Paint)
	case TextCommand:
		return e.textBounds(cmd)
	case ImageCommand:
		if cmd.Paint == nil {
			return cmd.Rect, true
		}
		paint := imagePaint(cmd.Paint)
		return e.backend.Bounds(cmd.Rect.ToPath(), &paint)
	}
	return geom.Rect{}, false
}

// imagePaint returns the paint used for an image rectangle. Images
// always cover their rectangle, so only the mask filter of the paint
// carries over.
func imagePaint(p *geom.Paint) geom.Paint {
	paint := *p
	paint.Style = geom.Fill
	paint.FillRule = geom.FillRuleNonZero
	return paint
}

// textBounds lays cmd out into lines and returns the union of their ink
// rectangles. Each line spans its advance width horizontally and its
// glyph ink vertically.
func (e *Engine) textBounds(cmd TextCommand) (geom.Rect, bool) {
	m := e.measurer
	para := text.NewParagraph(cmd.Text, cmd.Font, cmd.MaxWidth, m)
	metrics := m.Metrics(cmd.Font)

	lineHeight := cmd.LineHeight
	if lineHeight <= 0 {
		lineHeight = metrics.LineHeight()
	}

	n := para.Len()
	top := cmd.Y + text.MultilineBaselineOffset(cmd.Baseline, lineHeight, n) +
		text.BaselineShift(cmd.Baseline, metrics)

	var acc geom.Rect
	found := false
	for i, line := range para.All() {
		glyphs := m.GlyphBounds(line, cmd.Font)
		if len(glyphs) == 0 {
			continue
		}

		minY, maxY := glyphs[0].Min.Y, glyphs[0].Max.Y
		for _, g := range glyphs[1:] {
			minY = min(minY, g.Min.Y)
			maxY = max(maxY, g.Max.Y)
		}

		width := text.Width(m, line, cmd.Font)
		x := text.LeftInAlign(cmd.X, cmd.Align, width)
		y := top + float64(i)*lineHeight

		r := geom.LTRB(x, y+minY, x+width, y+maxY)
		if found {
			acc = acc.Union(r)
		} else {
			acc, found = r, true
		}
	}
	return acc, found
}
