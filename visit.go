package rtree

import "github.com/gogpu/rtree/geom"

// VisitControl tells Visit whether to keep walking.
type VisitControl uint8

const (
	// Continue proceeds with the next node.
	Continue VisitControl = iota
	// Stop ends the traversal.
	Stop
)

// Ancestors is the chain of nodes above a visited node, root first.
type Ancestors []Tree

// Visit walks t in reverse post-order, the order in which input events
// reach drawn content: children are visited last to first, each subtree
// before its parent. fn receives every node, including Empty ones,
// together with its ancestors.
//
// The ancestors slice is shared between calls and only valid until fn
// returns. Copy it to retain it.
func Visit(t Tree, fn func(node Tree, ancestors Ancestors) VisitControl) {
	stack := make(Ancestors, 0, 16)
	visit(t, &stack, fn)
}

func visit(t Tree, stack *Ancestors, fn func(Tree, Ancestors) VisitControl) VisitControl {
	if t == nil {
		t = Empty{}
	}

	*stack = append(*stack, t)
	ctl := Continue
	switch n := t.(type) {
	case Children:
		for i := len(n) - 1; i >= 0 && ctl == Continue; i-- {
			ctl = visit(n[i], stack, fn)
		}
	case Special:
		ctl = visit(n.Inner(), stack, fn)
	}
	*stack = (*stack)[:len(*stack)-1]

	if ctl == Stop {
		return Stop
	}
	return fn(t, *stack)
}

// ToLocal maps a point from root coordinates into the frame below the
// last ancestor.
func (a Ancestors) ToLocal(p geom.Point) geom.Point {
	origin := p
	for _, t := range a {
		switch n := t.(type) {
		case TranslateNode:
			p = geom.Pt(p.X-n.X, p.Y-n.Y)
		case ScaleNode:
			p = p.Div(n.X, n.Y)
		case RotateNode:
			p = p.Rotate(-n.Angle)
		case TransformNode:
			if !n.Matrix.IsInvertible() {
				Logger().Debug("rtree: singular transform, mapping as identity", "matrix", n.Matrix)
			}
			p = n.Matrix.Invert().TransformPoint(p)
		case AbsoluteNode:
			p = geom.Pt(origin.X-n.X, origin.Y-n.Y)
		}
	}
	return p
}

// ToGlobal maps a point from the frame below the last ancestor back into
// root coordinates. It inverts ToLocal for invertible transforms.
func (a Ancestors) ToGlobal(p geom.Point) geom.Point {
	for i := len(a) - 1; i >= 0; i-- {
		switch n := a[i].(type) {
		case TranslateNode:
			p = geom.Pt(p.X+n.X, p.Y+n.Y)
		case ScaleNode:
			p = geom.Pt(p.X*n.X, p.Y*n.Y)
		case RotateNode:
			p = p.Rotate(n.Angle)
		case TransformNode:
			p = n.Matrix.TransformPoint(p)
		case AbsoluteNode:
			return geom.Pt(p.X+n.X, p.Y+n.Y)
		}
	}
	return p
}

// Parent returns the nearest ancestor, or nil at the root.
func (a Ancestors) Parent() Tree {
	if len(a) == 0 {
		return nil
	}
	return a[len(a)-1]
}

// Clone returns a copy that stays valid after a Visit callback returns.
func (a Ancestors) Clone() Ancestors {
	if a == nil {
		return nil
	}
	return append(Ancestors(nil), a...)
}
