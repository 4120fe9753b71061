package rtree

// Tree is an immutable rendering tree.
//
// The variants are Empty, Node, Children and the special nodes
// (TranslateNode, ScaleNode, RotateNode, TransformNode, ClipNode,
// AbsoluteNode, OnTopNode, MouseCursorNode and WithIDNode). A nil Tree
// is treated as Empty.
//
// Values placed in a tree, including paths, must not be modified
// afterwards.
type Tree interface {
	isTree()
}

// Empty draws nothing.
type Empty struct{}

// Node is a leaf carrying one draw command.
type Node struct {
	Command DrawCommand
}

// Children is an ordered list of subtrees. Later entries draw above
// earlier ones.
type Children []Tree

func (Empty) isTree()    {}
func (Node) isTree()     {}
func (Children) isTree() {}

// IsEmpty reports whether t is Empty or nil.
func IsEmpty(t Tree) bool {
	if t == nil {
		return true
	}
	_, ok := t.(Empty)
	return ok
}
