package rtree

import (
	"github.com/google/uuid"

	"github.com/gogpu/rtree/geom"
)

// Wrap combines trees into one. Empty entries are dropped; no survivors
// give Empty, a single survivor is returned as is, and several survivors
// become a Children list in their original order.
func Wrap(trees ...Tree) Tree {
	var kept Children
	for _, t := range trees {
		if !IsEmpty(t) {
			kept = append(kept, t)
		}
	}

	switch len(kept) {
	case 0:
		return Empty{}
	case 1:
		return kept[0]
	default:
		return kept
	}
}

// Path returns a leaf drawing path with paint.
func Path(path *geom.Path, paint geom.Paint) Tree {
	return Node{Command: PathCommand{Path: path, Paint: paint}}
}

// Text returns a leaf drawing a text command.
func Text(cmd TextCommand) Tree {
	return Node{Command: cmd}
}

// Image returns a leaf drawing an image into rect.
func Image(rect geom.Rect, source string, fit ImageFit, paint *geom.Paint) Tree {
	return Node{Command: ImageCommand{Rect: rect, Source: source, Fit: fit, Paint: paint}}
}

// Translate moves t by (x, y).
func Translate(x, y float64, t Tree) Tree {
	if IsEmpty(t) {
		return Empty{}
	}
	return TranslateNode{X: x, Y: y, Child: t}
}

// Scale scales t by (x, y) about the origin.
func Scale(x, y float64, t Tree) Tree {
	if IsEmpty(t) {
		return Empty{}
	}
	return ScaleNode{X: x, Y: y, Child: t}
}

// Rotate rotates t by angle radians about the origin.
func Rotate(angle float64, t Tree) Tree {
	if IsEmpty(t) {
		return Empty{}
	}
	return RotateNode{Angle: angle, Child: t}
}

// Transform applies m to t.
func Transform(m geom.Matrix, t Tree) Tree {
	if IsEmpty(t) {
		return Empty{}
	}
	return TransformNode{Matrix: m, Child: t}
}

// Clip restricts t to the inside (ClipIntersect) or outside
// (ClipDifference) of path.
func Clip(path *geom.Path, op ClipOp, t Tree) Tree {
	if IsEmpty(t) {
		return Empty{}
	}
	return ClipNode{Path: path, Op: op, Child: t}
}

// Absolute places t at (x, y) in root coordinates.
func Absolute(x, y float64, t Tree) Tree {
	if IsEmpty(t) {
		return Empty{}
	}
	return AbsoluteNode{X: x, Y: y, Child: t}
}

// OnTop lifts t above everything else and out of enclosing clips.
func OnTop(t Tree) Tree {
	if IsEmpty(t) {
		return Empty{}
	}
	return OnTopNode{Child: t}
}

// MouseCursor shows cursor while the pointer is over t.
func MouseCursor(cursor Cursor, t Tree) Tree {
	if IsEmpty(t) {
		return Empty{}
	}
	return MouseCursorNode{Cursor: cursor, Child: t}
}

// WithID tags t with id.
func WithID(id uuid.UUID, t Tree) Tree {
	if IsEmpty(t) {
		return Empty{}
	}
	return WithIDNode{ID: id, Child: t}
}
