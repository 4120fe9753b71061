package rtree

import (
	"github.com/gogpu/rtree/geom"
	"github.com/gogpu/rtree/internal/parallel"
)

// minParallelBatch is the batch size below which work stays on the
// calling goroutine.
const minParallelBatch = 8

// PointHit is the result of hit-testing one point of a batch.
type PointHit struct {
	Point geom.Point
	Hit   Hit
	OK    bool
}

// TopmostAll hit-tests every point against t and returns the results in
// the order of pts. Large batches are spread over the engine's worker
// pool.
func (e *Engine) TopmostAll(t Tree, pts []geom.Point) []PointHit {
	return mapBatch(e, pts, func(p geom.Point) PointHit {
		hit, ok := e.Topmost(t, p)
		return PointHit{Point: p, Hit: hit, OK: ok}
	})
}

// BoundingBoxes computes the bounding box of every tree. Trees without
// bounds yield ok[i] == false.
func (e *Engine) BoundingBoxes(trees []Tree) (rects []geom.Rect, ok []bool) {
	type result struct {
		r  geom.Rect
		ok bool
	}
	results := mapBatch(e, trees, func(t Tree) result {
		r, ok := e.BoundingBox(t)
		return result{r, ok}
	})

	rects = make([]geom.Rect, len(results))
	ok = make([]bool, len(results))
	for i, res := range results {
		rects[i], ok[i] = res.r, res.ok
	}
	return rects, ok
}

func mapBatch[T, R any](e *Engine, in []T, fn func(T) R) []R {
	if len(in) >= minParallelBatch {
		if pool := e.workerPool(); pool != nil {
			return parallel.Map(pool, in, fn)
		}
	}
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func (e *Engine) workerPool() *parallel.WorkerPool {
	e.poolOnce.Do(func() {
		e.pool = parallel.NewWorkerPool(e.workers)
	})
	return e.pool
}

// Close stops the engine's worker pool, if one was started. The engine
// stays usable and later batches run on the calling goroutine.
func (e *Engine) Close() {
	e.poolOnce.Do(func() {})
	if e.pool != nil {
		e.pool.Close()
	}
}
