// Package pool provides a reusable scratch-board arena. Detectors and the
// exchange evaluator make many short-lived board copies per analysed move;
// renting from the pool keeps that off the allocator.
package pool

import (
	"sync"

	"chess-tactics/internal/chess"
)

// BoardPool is a concurrency-safe pool of scratch boards. The zero value is
// not usable; create one with New. A pool is owned by an analysis context
// and passed down, never a package-level singleton.
type BoardPool struct {
	inner sync.Pool
}

// New creates an empty board pool.
func New() *BoardPool {
	return &BoardPool{
		inner: sync.Pool{
			New: func() interface{} {
				return chess.NewBoard()
			},
		},
	}
}

// Rent returns a scratch board initialised to a copy of src. The caller may
// mutate it freely and must hand it back with Release on every exit path.
// A nil pool still works and simply allocates.
func (p *BoardPool) Rent(src *chess.Board) *chess.Board {
	if p == nil {
		return src.Copy()
	}
	b := p.inner.Get().(*chess.Board)
	src.CopyInto(b)
	return b
}

// Release returns a scratch board to the pool. The board must not be used
// after release.
func (p *BoardPool) Release(b *chess.Board) {
	if p == nil || b == nil {
		return
	}
	p.inner.Put(b)
}

// WithScratch rents a copy of src, runs fn on it and guarantees the release,
// panics included.
func (p *BoardPool) WithScratch(src *chess.Board, fn func(*chess.Board)) {
	b := p.Rent(src)
	defer p.Release(b)
	fn(b)
}
