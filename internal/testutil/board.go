package testutil

import (
	"testing"

	"chess-tactics/internal/chess"
)

// BoardWith builds a board holding exactly the given pieces, keyed by
// algebraic square name ("e4"). Side to move defaults to White.
func BoardWith(t *testing.T, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for sq, piece := range pieces {
		if len(sq) != 2 {
			t.Fatalf("bad square name %q", sq)
		}
		col := chess.Col(sq[0])
		rank := chess.Rank(sq[1])
		if !chess.OnBoard(col, rank) {
			t.Fatalf("square %q is off the board", sq)
		}
		b.Set(col, rank, piece)
	}
	return b
}
