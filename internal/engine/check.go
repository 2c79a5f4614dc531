package engine

import "chess-tactics/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board with no such king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	col, rank, ok := board.KingSquare(colour)
	if !ok {
		return false
	}
	return IsAttackedBy(board, col, rank, colour.Opposite())
}

// GivesDoubleCheck reports whether the given colour's king is attacked by
// two or more enemy pieces at once.
func GivesDoubleCheck(board *chess.Board, colour chess.Colour) bool {
	col, rank, ok := board.KingSquare(colour)
	if !ok {
		return false
	}
	return CountAttackers(board, col, rank, colour.Opposite()) >= 2
}

// CheckingPieces returns the enemy pieces currently giving check to the
// given colour's king, cheapest first.
func CheckingPieces(board *chess.Board, colour chess.Colour) []Attacker {
	col, rank, ok := board.KingSquare(colour)
	if !ok {
		return nil
	}
	return Attackers(board, col, rank, colour.Opposite())
}

// KingEscapeSquares returns the adjacent squares the given colour's king
// could legally step to: on the board, not occupied by a friendly piece,
// and not attacked by the enemy once the king has left its current square.
func KingEscapeSquares(board *chess.Board, colour chess.Colour) []chess.Square {
	col, rank, ok := board.KingSquare(colour)
	if !ok {
		return nil
	}
	king := board.Get(col, rank)

	var escapes []chess.Square
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			c := chess.Col(int(col) + dc)
			r := chess.Rank(int(rank) + dr)
			if !chess.OnBoard(c, r) {
				continue
			}
			if chess.IsColour(board.Get(c, r), colour) {
				continue
			}
			// Probe with the king moved so its old square does not
			// block the attacker's ray.
			captured := board.Get(c, r)
			board.Clear(col, rank)
			board.Set(c, r, king)
			attacked := IsAttackedBy(board, c, r, colour.Opposite())
			board.Set(col, rank, king)
			if captured == chess.Empty {
				board.Clear(c, r)
			} else {
				board.Set(c, r, captured)
			}
			if !attacked {
				escapes = append(escapes, chess.Square{Col: c, Rank: r})
			}
		}
	}
	return escapes
}

// IsCheckmate reports whether the given colour is mated on the board right
// now: in check with no escape square, no capture of the single checker and
// no interposition. This is the local mate probe used by the back-rank and
// king-safety detectors, not a general mate verifier for arbitrary search.
func IsCheckmate(board *chess.Board, against chess.Colour) bool {
	if !IsInCheck(board, against) {
		return false
	}
	if len(KingEscapeSquares(board, against)) > 0 {
		return false
	}
	checkers := CheckingPieces(board, against)
	if len(checkers) >= 2 {
		return true // Double check with no king move is mate.
	}
	if len(checkers) == 0 {
		return false
	}
	checker := checkers[0]

	// Can the checker be captured by anything other than the pinned king?
	for _, def := range Attackers(board, checker.Col, checker.Rank, against) {
		if chess.ExtractPiece(def.Piece) == chess.King {
			// King capture already covered by escape squares.
			continue
		}
		if !wouldLeaveKingInCheck(board, def.Col, def.Rank, checker.Col, checker.Rank, against) {
			return false
		}
	}

	// Can the check be blocked?
	kCol, kRank, ok := board.KingSquare(against)
	if !ok {
		return false
	}
	if chess.IsSlider(checker.Piece) {
		stepCol, stepRank, ok := RayDirection(checker.Col, checker.Rank, kCol, kRank)
		if ok {
			c := int(checker.Col) + stepCol
			r := int(checker.Rank) + stepRank
			for c != int(kCol) || r != int(kRank) {
				if canBlockOn(board, chess.Col(c), chess.Rank(r), against) {
					return false
				}
				c += stepCol
				r += stepRank
			}
		}
	}
	return true
}

// canBlockOn reports whether any non-king piece of the given colour can
// legally move to the square (an interposition probe).
func canBlockOn(board *chess.Board, col chess.Col, rank chess.Rank, colour chess.Colour) bool {
	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		for r := chess.Rank(chess.FirstRank); r <= chess.LastRank; r++ {
			piece := board.Get(c, r)
			if !chess.IsColour(piece, colour) || chess.ExtractPiece(piece) == chess.King {
				continue
			}
			for _, sq := range MoveTargets(board, c, r) {
				if sq.Col == col && sq.Rank == rank {
					if !wouldLeaveKingInCheck(board, c, r, col, rank, colour) {
						return true
					}
				}
			}
		}
	}
	return false
}

// CanMateInOne reports whether the given colour, moving next, has a move
// that delivers immediate checkmate. Destinations come from the pseudo-legal
// MoveTargets walk; each candidate is simulated and tested with IsCheckmate.
// Promotions are probed as queens only, which is all a mate threat needs.
func CanMateInOne(board *chess.Board, by chess.Colour) bool {
	scratch := board.Copy()
	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		for r := chess.Rank(chess.FirstRank); r <= chess.LastRank; r++ {
			piece := scratch.Get(c, r)
			if !chess.IsColour(piece, by) {
				continue
			}
			for _, sq := range MoveTargets(scratch, c, r) {
				if wouldLeaveKingInCheck(scratch, c, r, sq.Col, sq.Rank, by) {
					continue
				}
				captured := scratch.Get(sq.Col, sq.Rank)
				arriving := piece
				if chess.ExtractPiece(piece) == chess.Pawn &&
					(sq.Rank == chess.LastRank || sq.Rank == chess.FirstRank) {
					arriving = chess.MakeColouredPiece(by, chess.Queen)
				}
				scratch.Clear(c, r)
				scratch.Set(sq.Col, sq.Rank, arriving)
				mate := IsCheckmate(scratch, by.Opposite())
				scratch.Set(c, r, piece)
				if captured == chess.Empty {
					scratch.Clear(sq.Col, sq.Rank)
				} else {
					scratch.Set(sq.Col, sq.Rank, captured)
				}
				if mate {
					return true
				}
			}
		}
	}
	return false
}

// LeavesOwnKingInCheck simulates moving the piece on the from square to the
// to square and reports whether the mover's own king would be attacked
// afterwards. The board is restored before returning. Empty from squares
// report false.
func LeavesOwnKingInCheck(board *chess.Board, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) bool {
	mover := board.Get(fromCol, fromRank)
	if mover <= chess.Empty {
		return false
	}
	return wouldLeaveKingInCheck(board, fromCol, fromRank, toCol, toRank, chess.ExtractColour(mover))
}

// wouldLeaveKingInCheck simulates moving the piece on (fromCol,fromRank) to
// (toCol,toRank) and reports whether the mover's own king would be attacked
// afterwards. The board is restored before returning.
func wouldLeaveKingInCheck(board *chess.Board, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank, colour chess.Colour) bool {
	mover := board.Get(fromCol, fromRank)
	captured := board.Get(toCol, toRank)

	board.Clear(fromCol, fromRank)
	board.Set(toCol, toRank, mover)
	inCheck := IsInCheck(board, colour)
	board.Set(fromCol, fromRank, mover)
	if captured == chess.Empty {
		board.Clear(toCol, toRank)
	} else {
		board.Set(toCol, toRank, captured)
	}
	return inCheck
}
