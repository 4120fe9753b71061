package rtree

import "errors"

// ErrNoBounds is reported when a tree draws nothing and therefore has no
// bounding box.
var ErrNoBounds = errors.New("rtree: tree has no bounds")
