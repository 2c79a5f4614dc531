package engine

import "chess-tactics/internal/chess"

// RayDirection returns the unit step from one square towards another when
// the two share a rank, file or diagonal. ok is false otherwise.
func RayDirection(fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) (int, int, bool) {
	dCol := int(toCol) - int(fromCol)
	dRank := int(toRank) - int(fromRank)
	if dCol == 0 && dRank == 0 {
		return 0, 0, false
	}
	if dCol != 0 && dRank != 0 && abs(dCol) != abs(dRank) {
		return 0, 0, false
	}
	return sign(dCol), sign(dRank), true
}

// FirstPieceFrom walks from the given square in the given direction and
// returns the first occupied square found. ok is false when the ray runs
// off the board without hitting anything.
func FirstPieceFrom(board *chess.Board, col chess.Col, rank chess.Rank, stepCol, stepRank int) (Attacker, bool) {
	if stepCol == 0 && stepRank == 0 {
		return Attacker{}, false
	}
	c := int(col) + stepCol
	r := int(rank) + stepRank
	for chess.OnBoard(chess.Col(c), chess.Rank(r)) {
		piece := board.Get(chess.Col(c), chess.Rank(r))
		if piece > chess.Empty {
			return Attacker{Col: chess.Col(c), Rank: chess.Rank(r), Piece: piece}, true
		}
		c += stepCol
		r += stepRank
	}
	return Attacker{}, false
}

// SliderAttacksAlong reports whether the slider type moves along the given
// unit direction: diagonal steps need a bishop or queen, straight steps a
// rook or queen.
func SliderAttacksAlong(pieceType chess.Piece, stepCol, stepRank int) bool {
	diagonal := stepCol != 0 && stepRank != 0
	switch pieceType {
	case chess.Bishop:
		return diagonal
	case chess.Rook:
		return !diagonal
	case chess.Queen:
		return true
	}
	return false
}
