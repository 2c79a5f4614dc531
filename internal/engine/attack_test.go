package engine

import (
	"testing"

	"chess-tactics/internal/chess"
	"chess-tactics/internal/testutil"
)

func TestPieceAttacks(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]chess.Piece
		piece  chess.Piece
		from   string
		to     string
		want   bool
	}{
		{"knight jump", nil, chess.W(chess.Knight), "g1", "f3", true},
		{"knight bad geometry", nil, chess.W(chess.Knight), "g1", "g3", false},
		{"knight ignores blockers", map[string]chess.Piece{"f2": chess.W(chess.Pawn)}, chess.W(chess.Knight), "g1", "e2", true},
		{"rook open file", nil, chess.W(chess.Rook), "a1", "a8", true},
		{"rook blocked file", map[string]chess.Piece{"a4": chess.B(chess.Pawn)}, chess.W(chess.Rook), "a1", "a8", false},
		{"rook not diagonal", nil, chess.W(chess.Rook), "a1", "b2", false},
		{"bishop open diagonal", nil, chess.W(chess.Bishop), "c1", "h6", true},
		{"bishop blocked diagonal", map[string]chess.Piece{"e3": chess.W(chess.Pawn)}, chess.W(chess.Bishop), "c1", "h6", false},
		{"bishop not straight", nil, chess.W(chess.Bishop), "c1", "c4", false},
		{"queen straight", nil, chess.W(chess.Queen), "d1", "d7", true},
		{"queen diagonal", nil, chess.W(chess.Queen), "d1", "h5", true},
		{"queen knight shape", nil, chess.W(chess.Queen), "d1", "e3", false},
		{"white pawn captures up", nil, chess.W(chess.Pawn), "e4", "d5", true},
		{"white pawn no forward attack", nil, chess.W(chess.Pawn), "e4", "e5", false},
		{"black pawn captures down", nil, chess.B(chess.Pawn), "e5", "f4", true},
		{"black pawn wrong direction", nil, chess.B(chess.Pawn), "e5", "f6", false},
		{"king adjacent", nil, chess.W(chess.King), "e1", "d2", true},
		{"king too far", nil, chess.W(chess.King), "e1", "e3", false},
		{"same square", nil, chess.W(chess.Rook), "d4", "d4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardWith(t, tt.pieces)
			got := PieceAttacks(board, tt.piece,
				chess.Col(tt.from[0]), chess.Rank(tt.from[1]),
				chess.Col(tt.to[0]), chess.Rank(tt.to[1]))
			if got != tt.want {
				t.Errorf("PieceAttacks(%v, %s->%s) = %v, want %v", tt.piece, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCanAttack(t *testing.T) {
	board := testutil.BoardWith(t, map[string]chess.Piece{
		"a1": chess.W(chess.Rook),
		"c4": chess.B(chess.Pawn),
	})

	if !CanAttack(board, 'a', '1', 'a', '8') {
		t.Error("rook on an open file should attack a8")
	}
	if CanAttack(board, 'a', '1', 'c', '4') {
		t.Error("rook has no diagonal reach")
	}
	if CanAttack(board, 'a', '4', 'a', '8') {
		t.Error("an empty square attacks nothing")
	}
}

func TestCanAttackBlocked(t *testing.T) {
	board := testutil.BoardWith(t, map[string]chess.Piece{
		"a1": chess.W(chess.Rook),
		"a4": chess.B(chess.Pawn),
	})
	if CanAttack(board, 'a', '1', 'a', '8') {
		t.Error("rook may not see through the a4 pawn")
	}
	if !CanAttack(board, 'a', '1', 'a', '4') {
		t.Error("the blocker itself is attacked")
	}
}

func TestIsPathClear(t *testing.T) {
	board := testutil.BoardWith(t, map[string]chess.Piece{
		"d4": chess.W(chess.Pawn),
	})

	if !IsPathClear(board, 'a', '1', 'a', '8') {
		t.Error("open file should be clear")
	}
	if IsPathClear(board, 'a', '4', 'h', '4') {
		t.Error("rank through d4 should be blocked")
	}
	if !IsPathClear(board, 'c', '4', 'e', '4') {
		t.Error("endpoints are not part of the path")
	}
	if IsPathClear(board, 'a', '1', 'b', '3') {
		t.Error("squares off any shared line are never clear")
	}
}

func TestAttackersSortedCheapestFirst(t *testing.T) {
	// A black pawn on d5 attacked by a white pawn, knight and queen.
	board := testutil.BoardWith(t, map[string]chess.Piece{
		"d5": chess.B(chess.Pawn),
		"c4": chess.W(chess.Pawn),
		"f4": chess.W(chess.Knight),
		"d1": chess.W(chess.Queen),
	})

	attackers := Attackers(board, 'd', '5', chess.White)
	if len(attackers) != 3 {
		t.Fatalf("got %d attackers, want 3", len(attackers))
	}
	wantValues := []int{1, 3, 9}
	for i, a := range attackers {
		if a.Value() != wantValues[i] {
			t.Errorf("attacker %d has value %d, want %d", i, a.Value(), wantValues[i])
		}
	}
}

func TestAttackersExcludesOccupant(t *testing.T) {
	board := testutil.BoardWith(t, map[string]chess.Piece{
		"d5": chess.W(chess.Rook),
	})
	if got := Attackers(board, 'd', '5', chess.White); len(got) != 0 {
		t.Errorf("occupant counted as its own attacker: %v", got)
	}
}

func TestCountDefenders(t *testing.T) {
	board := testutil.BoardWith(t, map[string]chess.Piece{
		"d5": chess.B(chess.Knight),
		"e6": chess.B(chess.Pawn),
		"d8": chess.B(chess.Rook),
		"c4": chess.W(chess.Pawn),
	})

	// Pawn e6 and rook d8 both cover d5; the white pawn does not count.
	if got := CountDefenders(board, 'd', '5'); got != 2 {
		t.Errorf("CountDefenders(d5) = %d, want 2", got)
	}
	// An empty square has no defenders.
	if got := CountDefenders(board, 'a', '1'); got != 0 {
		t.Errorf("CountDefenders(empty a1) = %d, want 0", got)
	}
}

func TestLowestAttackerValue(t *testing.T) {
	board := testutil.BoardWith(t, map[string]chess.Piece{
		"d5": chess.B(chess.Knight),
		"c4": chess.W(chess.Pawn),
		"d1": chess.W(chess.Queen),
	})
	if got := LowestAttackerValue(board, 'd', '5', chess.White); got != 1 {
		t.Errorf("LowestAttackerValue = %d, want 1", got)
	}
	if got := LowestAttackerValue(board, 'h', '8', chess.White); got != 0 {
		t.Errorf("LowestAttackerValue on unattacked square = %d, want 0", got)
	}
}

func TestLowestDefenderValue(t *testing.T) {
	board := testutil.BoardWith(t, map[string]chess.Piece{
		"d5": chess.B(chess.Knight),
		"e6": chess.B(chess.Pawn),
		"d8": chess.B(chess.Rook),
	})
	// The pawn is the cheapest of the two defenders.
	if got := LowestDefenderValue(board, 'd', '5'); got != 1 {
		t.Errorf("LowestDefenderValue = %d, want 1", got)
	}
	if got := LowestDefenderValue(board, 'd', '8'); got != 0 {
		t.Errorf("LowestDefenderValue of the loose rook = %d, want 0", got)
	}
	if got := LowestDefenderValue(board, 'a', '1'); got != 0 {
		t.Errorf("LowestDefenderValue of an empty square = %d, want 0", got)
	}
}

func TestMoveTargetsPawn(t *testing.T) {
	board := testutil.BoardWith(t, map[string]chess.Piece{
		"e2": chess.W(chess.Pawn),
		"d3": chess.B(chess.Knight),
	})

	targets := MoveTargets(board, 'e', '2')
	want := map[string]bool{"d3": true, "e3": true, "e4": true}
	if len(targets) != len(want) {
		t.Fatalf("got %d targets %v, want %d", len(targets), targets, len(want))
	}
	for _, sq := range targets {
		if !want[sq.Name()] {
			t.Errorf("unexpected target %s", sq.Name())
		}
	}
}

func TestMoveTargetsPawnBlocked(t *testing.T) {
	board := testutil.BoardWith(t, map[string]chess.Piece{
		"e2": chess.W(chess.Pawn),
		"e3": chess.B(chess.Pawn),
	})
	// A blocked pawn with no captures has nowhere to go; the double push
	// is blocked too.
	if targets := MoveTargets(board, 'e', '2'); len(targets) != 0 {
		t.Errorf("blocked pawn has targets %v, want none", targets)
	}
}

func TestMoveTargetsKnightCorner(t *testing.T) {
	board := testutil.BoardWith(t, map[string]chess.Piece{
		"a1": chess.B(chess.Knight),
	})
	targets := MoveTargets(board, 'a', '1')
	want := map[string]bool{"b3": true, "c2": true}
	if len(targets) != len(want) {
		t.Fatalf("got %d targets %v, want %d", len(targets), targets, len(want))
	}
	for _, sq := range targets {
		if !want[sq.Name()] {
			t.Errorf("unexpected target %s", sq.Name())
		}
	}
}

func TestMoveTargetsExcludesOwnPieces(t *testing.T) {
	board := testutil.BoardWith(t, map[string]chess.Piece{
		"a1": chess.W(chess.Rook),
		"a4": chess.W(chess.Pawn),
		"c1": chess.B(chess.Bishop),
	})
	for _, sq := range MoveTargets(board, 'a', '1') {
		if sq.Name() == "a4" {
			t.Error("rook may not land on its own pawn")
		}
		if sq.Name() == "a5" {
			t.Error("rook may not jump over its own pawn")
		}
	}
}
