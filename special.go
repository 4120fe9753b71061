package rtree

import (
	"github.com/google/uuid"

	"github.com/gogpu/rtree/geom"
)

// Special is a node that wraps exactly one subtree with a modifier.
type Special interface {
	Tree
	// Inner returns the wrapped subtree.
	Inner() Tree
}

// TranslateNode moves its subtree by (X, Y).
type TranslateNode struct {
	X, Y  float64
	Child Tree
}

// ScaleNode scales its subtree about the origin.
type ScaleNode struct {
	X, Y  float64
	Child Tree
}

// RotateNode rotates its subtree about the origin by Angle radians,
// clockwise on screen.
type RotateNode struct {
	Angle float64
	Child Tree
}

// TransformNode applies an arbitrary affine matrix to its subtree.
type TransformNode struct {
	Matrix geom.Matrix
	Child  Tree
}

// ClipOp selects how a clip path restricts its subtree.
type ClipOp uint8

const (
	// ClipIntersect keeps only what lies inside the clip path.
	ClipIntersect ClipOp = iota
	// ClipDifference keeps only what lies outside the clip path.
	ClipDifference
)

// String returns the operation name.
func (op ClipOp) String() string {
	if op == ClipDifference {
		return "difference"
	}
	return "intersect"
}

// ClipNode clips its subtree to Path.
type ClipNode struct {
	Path  *geom.Path
	Op    ClipOp
	Child Tree
}

// AbsoluteNode positions its subtree at (X, Y) in root coordinates,
// discarding every transform above it.
type AbsoluteNode struct {
	X, Y  float64
	Child Tree
}

// OnTopNode draws its subtree above everything else. Clips above an
// OnTopNode do not apply to its subtree when hit testing.
type OnTopNode struct {
	Child Tree
}

// MouseCursorNode selects the cursor shown while hovering its subtree.
type MouseCursorNode struct {
	Cursor Cursor
	Child  Tree
}

// WithIDNode tags its subtree for input dispatch.
type WithIDNode struct {
	ID    uuid.UUID
	Child Tree
}

func (TranslateNode) isTree()   {}
func (ScaleNode) isTree()       {}
func (RotateNode) isTree()      {}
func (TransformNode) isTree()   {}
func (ClipNode) isTree()        {}
func (AbsoluteNode) isTree()    {}
func (OnTopNode) isTree()       {}
func (MouseCursorNode) isTree() {}
func (WithIDNode) isTree()      {}

func (n TranslateNode) Inner() Tree   { return n.Child }
func (n ScaleNode) Inner() Tree       { return n.Child }
func (n RotateNode) Inner() Tree      { return n.Child }
func (n TransformNode) Inner() Tree   { return n.Child }
func (n ClipNode) Inner() Tree        { return n.Child }
func (n AbsoluteNode) Inner() Tree    { return n.Child }
func (n OnTopNode) Inner() Tree       { return n.Child }
func (n MouseCursorNode) Inner() Tree { return n.Child }
func (n WithIDNode) Inner() Tree      { return n.Child }
