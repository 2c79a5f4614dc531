package engine

import (
	"testing"

	"chess-tactics/internal/chess"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"rook on open file", "4k3/8/8/8/8/8/4R3/4K3 w - - 0 1", chess.Black, true},
		{"mover not in check", "4k3/8/8/8/8/8/4R3/4K3 w - - 0 1", chess.White, false},
		{"blocked check", "4k3/4n3/8/8/8/8/4R3/4K3 w - - 0 1", chess.Black, false},
		{"bishop diagonal", "4k3/8/8/1B6/8/8/8/4K3 w - - 0 1", chess.Black, true},
		{"knight check", "4k3/8/3N4/8/8/8/8/4K3 w - - 0 1", chess.Black, true},
		{"pawn check", "4k3/3P4/8/8/8/8/8/4K3 w - - 0 1", chess.Black, true},
		{"no king no check", "8/8/8/8/8/8/4R3/4K3 w - - 0 1", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustBoardFromFEN(tt.fen)
			if got := IsInCheck(board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestDoubleCheck(t *testing.T) {
	// Rook on e1 and bishop on b5 both hit the e8 king.
	board := MustBoardFromFEN("4k3/8/8/1B6/8/8/8/4R1K1 w - - 0 1")

	if !GivesDoubleCheck(board, chess.Black) {
		t.Error("two checkers should report double check")
	}
	checkers := CheckingPieces(board, chess.Black)
	if len(checkers) != 2 {
		t.Fatalf("CheckingPieces returned %d, want 2", len(checkers))
	}
	// Cheapest first: bishop before rook.
	if checkers[0].Value() != 3 || checkers[1].Value() != 5 {
		t.Errorf("checker values = %d, %d; want 3, 5", checkers[0].Value(), checkers[1].Value())
	}

	single := MustBoardFromFEN("4k3/8/8/8/8/8/8/4R1K1 w - - 0 1")
	if GivesDoubleCheck(single, chess.Black) {
		t.Error("one checker must not report double check")
	}
}

func TestKingEscapeSquares(t *testing.T) {
	// Black king on h8, white rook on g1 covering the g-file.
	board := MustBoardFromFEN("7k/8/8/8/8/8/8/K5R1 w - - 0 1")

	escapes := KingEscapeSquares(board, chess.Black)
	if len(escapes) != 1 {
		t.Fatalf("escapes = %v, want exactly h7", escapes)
	}
	if escapes[0].Name() != "h7" {
		t.Errorf("escape = %s, want h7", escapes[0].Name())
	}
}

func TestKingEscapeSquaresVacatedSquareDoesNotBlock(t *testing.T) {
	// The king cannot run along the checking rook's line: its own body no
	// longer blocks the ray once it steps away.
	board := MustBoardFromFEN("4k3/8/8/8/8/8/8/K3R3 w - - 0 1")
	for _, sq := range KingEscapeSquares(board, chess.Black) {
		if sq.Name() == "e7" {
			t.Error("e7 stays attacked through the vacated e8 square")
		}
	}
}

func TestIsCheckmate(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		against chess.Colour
		want    bool
	}{
		{
			"back rank mate",
			"3R2k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
			chess.Black, true,
		},
		{
			"back rank with air",
			"3R2k1/5pp1/8/8/8/8/8/6K1 b - - 0 1",
			chess.Black, false,
		},
		{
			"checker can be captured",
			"3R2k1/5ppp/8/8/8/8/8/3r2K1 b - - 0 1",
			chess.Black, false,
		},
		{
			"check can be blocked",
			"3R2k1/5ppp/8/8/8/4r3/8/6K1 b - - 0 1",
			chess.Black, false,
		},
		{
			"smothered mate",
			"6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1",
			chess.Black, true,
		},
		{
			"not even check",
			"6k1/5ppp/8/8/8/8/8/3R2K1 b - - 0 1",
			chess.Black, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustBoardFromFEN(tt.fen)
			if got := IsCheckmate(board, tt.against); got != tt.want {
				t.Errorf("IsCheckmate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanMateInOne(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		by   chess.Colour
		want bool
	}{
		{
			"rook lift to the back rank",
			"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
			chess.White, true,
		},
		{
			"defender has no mate",
			"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
			chess.Black, false,
		},
		{
			"escape square defuses it",
			"6k1/5pp1/8/8/8/8/8/R5K1 w - - 0 1",
			chess.White, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustBoardFromFEN(tt.fen)
			if got := CanMateInOne(board, tt.by); got != tt.want {
				t.Errorf("CanMateInOne(%v) = %v, want %v", tt.by, got, tt.want)
			}
		})
	}
}

func TestLeavesOwnKingInCheck(t *testing.T) {
	// White rook on e4 shields its king from the e8 rook.
	board := MustBoardFromFEN("4r3/8/8/8/4R3/8/8/4K3 w - - 0 1")

	if !LeavesOwnKingInCheck(board, 'e', '4', 'a', '4') {
		t.Error("leaving the e-file must expose the king")
	}
	if LeavesOwnKingInCheck(board, 'e', '4', 'e', '6') {
		t.Error("staying on the e-file keeps the king covered")
	}

	// The probe must not mutate the board.
	if got := board.Get('e', '4'); got != chess.W(chess.Rook) {
		t.Errorf("board mutated by probe: e4 = %v", got)
	}
}
