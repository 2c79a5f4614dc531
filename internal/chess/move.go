package chess

// Move represents a single move between two squares, decoded from a
// 4-5 character move code such as "e2e4" or "e7e8q".
type Move struct {
	// The original move text.
	Text string

	// Source square.
	FromCol  Col
	FromRank Rank

	// Destination square.
	ToCol  Col
	ToRank Rank

	// The piece being moved (coloured).
	PieceToMove Piece

	// The piece captured (Empty if no capture).
	CapturedPiece Piece

	// The piece promoted to (Empty if not a promotion).
	PromotedPiece Piece
}

// Colour returns the colour of the moving piece.
func (m *Move) Colour() Colour {
	return ExtractColour(m.PieceToMove)
}

// Piece returns the uncoloured type of the moving piece. For promotions the
// pawn is what moves; the promoted type takes over on arrival.
func (m *Move) Piece() Piece {
	return ExtractPiece(m.PieceToMove)
}

// ArrivingPiece returns the uncoloured type occupying the destination after
// the move: the promotion piece for promotions, the mover otherwise.
func (m *Move) ArrivingPiece() Piece {
	if m.PromotedPiece != Empty {
		return m.PromotedPiece
	}
	return m.Piece()
}

// IsCapture returns true if this move is a capture.
func (m *Move) IsCapture() bool {
	return m.CapturedPiece != Empty
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.PromotedPiece != Empty
}

// From returns the source square.
func (m *Move) From() Square {
	return Square{Col: m.FromCol, Rank: m.FromRank}
}

// To returns the destination square.
func (m *Move) To() Square {
	return Square{Col: m.ToCol, Rank: m.ToRank}
}
