// Package rtree is a retained-mode 2D scene graph for geometry queries.
//
// A frame is described by an immutable Tree: leaves carry draw commands
// (paths, text, images), Children holds an ordered list of subtrees, and
// special nodes wrap a single subtree with a modifier such as a
// translation, a clip or an on-top marker. Later siblings draw above
// earlier ones.
//
// Two questions can be asked of a tree:
//
//   - Engine.BoundingBox returns the smallest axis-aligned rectangle
//     enclosing everything the tree draws, honoring transforms and clips.
//   - Engine.Contains and Engine.Topmost report whether a point hits
//     drawn content, testing the topmost content first. A clip hides
//     content outside of it from hit testing unless an OnTop node sits
//     between the clip and the content.
//
// # Construction
//
// Trees are built with Wrap and the constructor functions:
//
//	tree := rtree.Wrap(
//	    rtree.Path(geom.NewPath().Rectangle(0, 0, 100, 100), geom.NewPaint()),
//	    rtree.Translate(50, 50, rtree.Path(circle, stroke)),
//	)
//
// Constructors collapse to Empty when given Empty, so a decorated empty
// tree is indistinguishable from an empty one.
//
// # Geometry
//
// Path geometry is delegated to a geom.Backend and text measurement to a
// text.Measurer. Both are injected into the Engine, together with the
// cache that memoizes bounding boxes.
//
// # Batches
//
// Engine.TopmostAll and Engine.BoundingBoxes spread large batches over a
// worker pool sized by WithWorkers. Call Engine.Close to stop the pool.
package rtree
