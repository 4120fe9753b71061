package rtree

import (
	"github.com/google/uuid"

	"github.com/gogpu/rtree/geom"
)

// Hit is the topmost leaf under a point.
type Hit struct {
	// Node is the leaf that was hit.
	Node Node
	// Ancestors is the chain from the root down to Node's parent.
	Ancestors Ancestors
	// Local is the point in Node's coordinate frame.
	Local geom.Point
}

// IDs returns the WithID tags enclosing the hit leaf, nearest first.
func (h Hit) IDs() []uuid.UUID {
	var ids []uuid.UUID
	for i := len(h.Ancestors) - 1; i >= 0; i-- {
		if n, ok := h.Ancestors[i].(WithIDNode); ok {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// Cursor returns the cursor of the nearest enclosing MouseCursor node.
func (h Hit) Cursor() (Cursor, bool) {
	for i := len(h.Ancestors) - 1; i >= 0; i-- {
		if n, ok := h.Ancestors[i].(MouseCursorNode); ok {
			return n.Cursor, true
		}
	}
	return CursorDefault, false
}

// Contains reports whether p, in root coordinates, lands on anything t
// draws.
func (e *Engine) Contains(t Tree, p geom.Point) bool {
	_, ok := e.Topmost(t, p)
	return ok
}

// Topmost returns the leaf that receives an event at p: the first leaf in
// reverse post-order that contains p and is not clipped away.
func (e *Engine) Topmost(t Tree, p geom.Point) (Hit, bool) {
	var hit Hit
	found := false
	Visit(t, func(node Tree, ancestors Ancestors) VisitControl {
		leaf, ok := node.(Node)
		if !ok {
			return Continue
		}
		local := ancestors.ToLocal(p)
		if !e.commandContains(leaf.Command, local) || !e.passesClips(ancestors, p) {
			return Continue
		}
		hit = Hit{Node: leaf, Ancestors: ancestors.Clone(), Local: local}
		found = true
		return Stop
	})
	return hit, found
}

// passesClips walks the ancestors from nearest to farthest and checks p
// against each clip. An OnTop ancestor lifts the leaf out of every clip
// above it.
func (e *Engine) passesClips(ancestors Ancestors, p geom.Point) bool {
	for i := len(ancestors) - 1; i >= 0; i-- {
		switch n := ancestors[i].(type) {
		case OnTopNode:
			return true
		case ClipNode:
			local := ancestors[:i].ToLocal(p)
			inside := e.backend.Contains(n.Path, nil, local)
			if inside != (n.Op == ClipIntersect) {
				return false
			}
		}
	}
	return true
}

func (e *Engine) commandContains(c DrawCommand, p geom.Point) bool {
	switch cmd := c.(type) {
	case PathCommand:
		return e.backend.Contains(cmd.Path, &cmd.Paint, p)
	case TextCommand:
		r, ok := e.textBounds(cmd)
		return ok && r.Contains(p)
	case ImageCommand:
		if cmd.Paint == nil {
			return cmd.Rect.Contains(p)
		}
		paint := imagePaint(cmd.Paint)
		return e.backend.Contains(cmd.Rect.ToPath(), &paint, p)
	}
	return false
}

// LocalPoint maps p from root coordinates into the frame in which the
// first node structurally equal to target is drawn, searching in reverse
// post-order. It returns false when t holds no such node.
func LocalPoint(t, target Tree, p geom.Point) (geom.Point, bool) {
	var local geom.Point
	found := false
	Visit(t, func(node Tree, ancestors Ancestors) VisitControl {
		if !Equal(node, target) {
			return Continue
		}
		local = ancestors.ToLocal(p)
		found = true
		return Stop
	})
	return local, found
}
