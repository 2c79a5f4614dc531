package pool

import (
	"sync"
	"testing"

	"chess-tactics/internal/chess"
)

func TestRentCopiesSource(t *testing.T) {
	src := chess.NewBoard()
	src.Set('e', '4', chess.W(chess.Knight))

	p := New()
	scratch := p.Rent(src)
	defer p.Release(scratch)

	if got := scratch.Get('e', '4'); got != chess.W(chess.Knight) {
		t.Errorf("scratch e4 = %v, want the copied knight", got)
	}

	// Mutating the scratch board must not touch the source.
	scratch.Set('e', '4', chess.B(chess.Queen))
	if got := src.Get('e', '4'); got != chess.W(chess.Knight) {
		t.Errorf("source mutated through scratch: e4 = %v", got)
	}
}

func TestReleasedBoardIsReinitialised(t *testing.T) {
	p := New()

	src := chess.NewBoard()
	src.Set('a', '1', chess.W(chess.Rook))
	b := p.Rent(src)
	b.Set('h', '8', chess.B(chess.King))
	p.Release(b)

	// A later rent from a different source must carry no stale state.
	clean := chess.NewBoard()
	b2 := p.Rent(clean)
	defer p.Release(b2)
	if got := b2.Get('a', '1'); got != chess.Empty {
		t.Errorf("stale a1 = %v after re-rent, want Empty", got)
	}
	if got := b2.Get('h', '8'); got != chess.Empty {
		t.Errorf("stale h8 = %v after re-rent, want Empty", got)
	}
}

func TestNilPoolAllocates(t *testing.T) {
	src := chess.NewBoard()
	src.Set('d', '4', chess.W(chess.Pawn))

	var p *BoardPool
	b := p.Rent(src)
	if got := b.Get('d', '4'); got != chess.W(chess.Pawn) {
		t.Errorf("nil pool rent = %v, want copied pawn", got)
	}
	p.Release(b) // must not panic
}

func TestWithScratchReleasesOnPanic(t *testing.T) {
	p := New()
	src := chess.NewBoard()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the panic to propagate")
			}
		}()
		p.WithScratch(src, func(b *chess.Board) {
			panic("boom")
		})
	}()

	// The pool is still usable afterwards.
	b := p.Rent(src)
	p.Release(b)
}

func TestConcurrentRentRelease(t *testing.T) {
	p := New()
	src := chess.NewBoard()
	src.Set('e', '1', chess.W(chess.King))
	src.Set('e', '8', chess.B(chess.King))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				b := p.Rent(src)
				if got := b.Get('e', '1'); got != chess.W(chess.King) {
					t.Errorf("scratch corrupted: e1 = %v", got)
				}
				b.Set('e', '4', chess.W(chess.Queen))
				p.Release(b)
			}
		}()
	}
	wg.Wait()
}
