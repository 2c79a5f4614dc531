package chess

// Board represents a chess position as an 8x8 grid with a hedge of 2
// squares around it so knight offsets never index out of range.
type Board struct {
	// The board squares with a hedge of 2 around for knight move calculation.
	// Squares[col][rank] where col and rank are 0-11 (with hedge).
	Squares [Hedge + BoardSize + Hedge][Hedge + BoardSize + Hedge]Piece

	// Who has the next move.
	ToMove Colour

	// Keep track of where the two kings are for check detection.
	// Zero values mean the king has not been located.
	WKingCol  Col
	WKingRank Rank
	BKingCol  Col
	BKingRank Rank

	// Is an en passant capture possible? If so then EPCol and EPRank have
	// the square on which it can be made.
	EnPassant bool
	EPCol     Col
	EPRank    Rank
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove: White,
	}
	for col := 0; col < Hedge+BoardSize+Hedge; col++ {
		for rank := 0; rank < Hedge+BoardSize+Hedge; rank++ {
			if col >= Hedge && col < Hedge+BoardSize &&
				rank >= Hedge && rank < Hedge+BoardSize {
				b.Squares[col][rank] = Empty
			} else {
				b.Squares[col][rank] = Off
			}
		}
	}
	return b
}

// Get returns the piece at the given coordinates (char coords 'a'-'h', '1'-'8').
// Out-of-range coordinates return Off.
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c == 0 || r == 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates. Out-of-range coordinates
// are ignored.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c != 0 && r != 0 {
		b.Squares[c][r] = piece
		if ExtractPiece(piece) == King {
			if ExtractColour(piece) == White {
				b.WKingCol, b.WKingRank = col, rank
			} else {
				b.BKingCol, b.BKingRank = col, rank
			}
		}
	}
}

// Clear empties a square.
func (b *Board) Clear(col Col, rank Rank) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c != 0 && r != 0 {
		b.Squares[c][r] = Empty
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// CopyInto copies the full board state into dst. Used by the scratch-board
// pool so a rented buffer can be refilled without allocating.
func (b *Board) CopyInto(dst *Board) {
	*dst = *b
}

// KingSquare returns the location of the given colour's king, falling back
// to a full scan when the tracked position is stale or unset. ok is false
// when the board has no such king at all.
func (b *Board) KingSquare(colour Colour) (Col, Rank, bool) {
	var col Col
	var rank Rank
	if colour == White {
		col, rank = b.WKingCol, b.WKingRank
	} else {
		col, rank = b.BKingCol, b.BKingRank
	}
	king := MakeColouredPiece(colour, King)
	if OnBoard(col, rank) && b.Get(col, rank) == king {
		return col, rank, true
	}
	for c := Col(FirstCol); c <= LastCol; c++ {
		for r := Rank(FirstRank); r <= LastRank; r++ {
			if b.Get(c, r) == king {
				return c, r, true
			}
		}
	}
	return 0, 0, false
}

// Find returns every square holding the given coloured piece.
func (b *Board) Find(piece Piece) []Square {
	var found []Square
	for c := Col(FirstCol); c <= LastCol; c++ {
		for r := Rank(FirstRank); r <= LastRank; r++ {
			if b.Get(c, r) == piece {
				found = append(found, Square{Col: c, Rank: r})
			}
		}
	}
	return found
}

// Square names a single board square in char coordinates.
type Square struct {
	Col  Col
	Rank Rank
}

// Name returns the algebraic name of the square.
func (s Square) Name() string {
	return SquareName(s.Col, s.Rank)
}
