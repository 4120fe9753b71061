package rtree

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/gogpu/rtree/geom"
)

// Variant tags written ahead of each node so that differently shaped
// trees with the same field values hash apart.
const (
	tagEmpty byte = iota + 1
	tagNode
	tagChildren
	tagTranslate
	tagScale
	tagRotate
	tagTransform
	tagClip
	tagAbsolute
	tagOnTop
	tagMouseCursor
	tagWithID

	tagPathCommand
	tagTextCommand
	tagImageCommand

	tagMoveTo
	tagLineTo
	tagQuadTo
	tagCubicTo
	tagClose
)

// Hash returns a 64-bit structural hash of t. Equal trees hash alike.
func Hash(t Tree) uint64 {
	h := hasher{d: xxhash.New()}
	h.tree(t)
	return h.d.Sum64()
}

type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (h *hasher) byte(b byte) {
	h.buf[0] = b
	_, _ = h.d.Write(h.buf[:1])
}

func (h *hasher) uint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) float(f float64) {
	if f == 0 {
		// -0 == +0
		f = 0
	}
	h.uint64(math.Float64bits(f))
}

func (h *hasher) point(p geom.Point) {
	h.float(p.X)
	h.float(p.Y)
}

func (h *hasher) string(s string) {
	h.uint64(uint64(len(s)))
	_, _ = h.d.WriteString(s)
}

func (h *hasher) tree(t Tree) {
	switch n := t.(type) {
	case nil, Empty:
		h.byte(tagEmpty)
	case Node:
		h.byte(tagNode)
		h.command(n.Command)
	case Children:
		h.byte(tagChildren)
		h.uint64(uint64(len(n)))
		for _, c := range n {
			h.tree(c)
		}
	case TranslateNode:
		h.byte(tagTranslate)
		h.float(n.X)
		h.float(n.Y)
		h.tree(n.Child)
	case ScaleNode:
		h.byte(tagScale)
		h.float(n.X)
		h.float(n.Y)
		h.tree(n.Child)
	case RotateNode:
		h.byte(tagRotate)
		h.float(n.Angle)
		h.tree(n.Child)
	case TransformNode:
		h.byte(tagTransform)
		h.matrix(n.Matrix)
		h.tree(n.Child)
	case ClipNode:
		h.byte(tagClip)
		h.byte(byte(n.Op))
		h.path(n.Path)
		h.tree(n.Child)
	case AbsoluteNode:
		h.byte(tagAbsolute)
		h.float(n.X)
		h.float(n.Y)
		h.tree(n.Child)
	case OnTopNode:
		h.byte(tagOnTop)
		h.tree(n.Child)
	case MouseCursorNode:
		h.byte(tagMouseCursor)
		h.byte(byte(n.Cursor))
		h.tree(n.Child)
	case WithIDNode:
		h.byte(tagWithID)
		_, _ = h.d.Write(n.ID[:])
		h.tree(n.Child)
	}
}

func (h *hasher) matrix(m geom.Matrix) {
	for _, v := range [...]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		h.float(v)
	}
}

func (h *hasher) command(c DrawCommand) {
	switch cmd := c.(type) {
	case PathCommand:
		h.byte(tagPathCommand)
		h.path(cmd.Path)
		h.paint(&cmd.Paint)
	case TextCommand:
		h.byte(tagTextCommand)
		h.string(cmd.Text)
		h.string(cmd.Font.Family)
		h.float(cmd.Font.Size)
		h.float(cmd.X)
		h.float(cmd.Y)
		h.byte(byte(cmd.Align))
		h.byte(byte(cmd.Baseline))
		h.float(cmd.MaxWidth)
		h.float(cmd.LineHeight)
		h.paint(&cmd.Paint)
	case ImageCommand:
		h.byte(tagImageCommand)
		h.point(cmd.Rect.Min)
		h.point(cmd.Rect.Max)
		h.string(cmd.Source)
		h.byte(byte(cmd.Fit))
		h.paint(cmd.Paint)
	}
}

func (h *hasher) paint(p *geom.Paint) {
	if p == nil {
		h.byte(0)
		return
	}
	h.byte(1)
	h.float(p.Color.R)
	h.float(p.Color.G)
	h.float(p.Color.B)
	h.float(p.Color.A)
	h.byte(byte(p.Style))
	h.float(p.StrokeWidth)
	h.byte(byte(p.StrokeCap))
	h.byte(byte(p.StrokeJoin))
	h.float(p.StrokeMiter)
	h.byte(byte(p.FillRule))
	h.float(p.Blur)
}

func (h *hasher) path(p *geom.Path) {
	elems := p.Elements()
	h.uint64(uint64(len(elems)))
	for _, e := range elems {
		switch el := e.(type) {
		case geom.MoveTo:
			h.byte(tagMoveTo)
			h.point(el.Point)
		case geom.LineTo:
			h.byte(tagLineTo)
			h.point(el.Point)
		case geom.QuadTo:
			h.byte(tagQuadTo)
			h.point(el.Control)
			h.point(el.Point)
		case geom.CubicTo:
			h.byte(tagCubicTo)
			h.point(el.Control1)
			h.point(el.Control2)
			h.point(el.Point)
		case geom.Close:
			h.byte(tagClose)
		}
	}
}

// Equal reports whether a and b are structurally identical. Nil and
// Empty are equal.
func Equal(a, b Tree) bool {
	if IsEmpty(a) || IsEmpty(b) {
		return IsEmpty(a) && IsEmpty(b)
	}

	switch x := a.(type) {
	case Node:
		y, ok := b.(Node)
		return ok && equalCommand(x.Command, y.Command)
	case Children:
		y, ok := b.(Children)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case TranslateNode:
		y, ok := b.(TranslateNode)
		return ok && x.X == y.X && x.Y == y.Y && Equal(x.Child, y.Child)
	case ScaleNode:
		y, ok := b.(ScaleNode)
		return ok && x.X == y.X && x.Y == y.Y && Equal(x.Child, y.Child)
	case RotateNode:
		y, ok := b.(RotateNode)
		return ok && x.Angle == y.Angle && Equal(x.Child, y.Child)
	case TransformNode:
		y, ok := b.(TransformNode)
		return ok && x.Matrix == y.Matrix && Equal(x.Child, y.Child)
	case ClipNode:
		y, ok := b.(ClipNode)
		return ok && x.Op == y.Op && x.Path.Equal(y.Path) && Equal(x.Child, y.Child)
	case AbsoluteNode:
		y, ok := b.(AbsoluteNode)
		return ok && x.X == y.X && x.Y == y.Y && Equal(x.Child, y.Child)
	case OnTopNode:
		y, ok := b.(OnTopNode)
		return ok && Equal(x.Child, y.Child)
	case MouseCursorNode:
		y, ok := b.(MouseCursorNode)
		return ok && x.Cursor == y.Cursor && Equal(x.Child, y.Child)
	case WithIDNode:
		y, ok := b.(WithIDNode)
		return ok && x.ID == y.ID && Equal(x.Child, y.Child)
	}
	return false
}

func equalCommand(a, b DrawCommand) bool {
	switch x := a.(type) {
	case PathCommand:
		y, ok := b.(PathCommand)
		return ok && x.Paint == y.Paint && x.Path.Equal(y.Path)
	case TextCommand:
		y, ok := b.(TextCommand)
		return ok && x == y
	case ImageCommand:
		y, ok := b.(ImageCommand)
		if !ok || x.Rect != y.Rect || x.Source != y.Source || x.Fit != y.Fit {
			return false
		}
		if x.Paint == nil || y.Paint == nil {
			return x.Paint == nil && y.Paint == nil
		}
		return *x.Paint == *y.Paint
	}
	return false
}

// Key adapts a Tree for use as a cache key. The hash is computed once.
type Key struct {
	Tree Tree
	hash uint64
}

// NewKey returns a cache key for t.
func NewKey(t Tree) Key {
	return Key{Tree: t, hash: Hash(t)}
}

// Hash returns the structural hash of the tree.
func (k Key) Hash() uint64 { return k.hash }

// Equal reports whether both keys hold structurally equal trees.
func (k Key) Equal(other Key) bool {
	return k.hash == other.hash && Equal(k.Tree, other.Tree)
}
