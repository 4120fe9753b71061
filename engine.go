package rtree

import (
	"sync"

	"github.com/gogpu/rtree/cache"
	"github.com/gogpu/rtree/geom"
	"github.com/gogpu/rtree/internal/parallel"
	"github.com/gogpu/rtree/text"
)

// Engine answers geometric queries about rendering trees: bounding boxes,
// hit tests and coordinate mapping.
//
// An Engine is safe for concurrent use. Trees passed to it must not be
// mutated.
type Engine struct {
	backend  geom.Backend
	measurer text.Measurer
	bounds   *cache.Cache[Key, geom.Rect]

	workers  int
	poolOnce sync.Once
	pool     *parallel.WorkerPool
}

// Option configures an Engine.
type Option func(*Engine)

// WithBackend sets the geometry backend used for paths.
func WithBackend(b geom.Backend) Option {
	return func(e *Engine) {
		e.backend = b
	}
}

// WithMeasurer sets the text measurer.
func WithMeasurer(m text.Measurer) Option {
	return func(e *Engine) {
		e.measurer = m
	}
}

// WithCache sets the bounding-box cache. Several engines may share one
// cache as long as they use equivalent backends and measurers.
func WithCache(c *cache.Cache[Key, geom.Rect]) Option {
	return func(e *Engine) {
		e.bounds = c
	}
}

// WithWorkers sets the number of workers used by batch queries.
// Zero or negative means GOMAXPROCS. The pool starts on first use.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// NewEngine creates an engine. Unset options default to
// geom.NewDefaultBackend, a text.Library with the built-in font and a
// cache of cache.DefaultCapacity entries.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	if e.backend == nil {
		e.backend = geom.NewDefaultBackend(0)
	}
	if e.measurer == nil {
		e.measurer = text.NewLibrary()
	}
	if e.bounds == nil {
		e.bounds = cache.New[Key, geom.Rect](cache.DefaultCapacity)
	}
	return e
}

// Backend returns the geometry backend.
func (e *Engine) Backend() geom.Backend {
	return e.backend
}

// Measurer returns the text measurer.
func (e *Engine) Measurer() text.Measurer {
	return e.measurer
}

// Cache returns the bounding-box cache.
func (e *Engine) Cache() *cache.Cache[Key, geom.Rect] {
	return e.bounds
}
