package engine

import (
	"sort"

	"chess-tactics/internal/chess"
)

// Attacker describes one piece bearing on a square.
type Attacker struct {
	Col   chess.Col
	Rank  chess.Rank
	Piece chess.Piece // coloured
}

// Value returns the material value of the attacking piece.
func (a Attacker) Value() int {
	return chess.Value(a.Piece)
}

// knightOffsets are the eight knight move deltas.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// diagonalDirs and straightDirs are the sliding-piece ray directions.
var (
	diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PieceAttacks reports whether the given coloured piece, standing on the
// from square, attacks the to square under pure movement rules. Whose turn
// it is and check legality are ignored; pawns attack diagonally only.
func PieceAttacks(board *chess.Board, piece chess.Piece, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) bool {
	if !chess.OnBoard(fromCol, fromRank) || !chess.OnBoard(toCol, toRank) {
		return false
	}
	if fromCol == toCol && fromRank == toRank {
		return false
	}

	pieceType := chess.ExtractPiece(piece)
	colour := chess.ExtractColour(piece)

	dCol := int(toCol) - int(fromCol)
	dRank := int(toRank) - int(fromRank)

	switch pieceType {
	case chess.Pawn:
		if colour == chess.White {
			return dRank == 1 && (dCol == 1 || dCol == -1)
		}
		return dRank == -1 && (dCol == 1 || dCol == -1)

	case chess.Knight:
		absCol := abs(dCol)
		absRank := abs(dRank)
		return (absCol == 1 && absRank == 2) || (absCol == 2 && absRank == 1)

	case chess.Bishop:
		if abs(dCol) != abs(dRank) {
			return false
		}
		return IsPathClear(board, fromCol, fromRank, toCol, toRank)

	case chess.Rook:
		if dCol != 0 && dRank != 0 {
			return false
		}
		return IsPathClear(board, fromCol, fromRank, toCol, toRank)

	case chess.Queen:
		isDiagonal := abs(dCol) == abs(dRank)
		isStraight := dCol == 0 || dRank == 0
		if !isDiagonal && !isStraight {
			return false
		}
		return IsPathClear(board, fromCol, fromRank, toCol, toRank)

	case chess.King:
		return abs(dCol) <= 1 && abs(dRank) <= 1
	}

	return false
}

// CanAttack reads the piece on the from square and reports whether it
// attacks the to square. Empty or off-board from squares attack nothing.
func CanAttack(board *chess.Board, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) bool {
	piece := board.Get(fromCol, fromRank)
	if piece <= chess.Empty {
		return false
	}
	return PieceAttacks(board, piece, fromCol, fromRank, toCol, toRank)
}

// IsPathClear checks that every square strictly between the two given
// squares is empty. The squares must share a rank, file or diagonal;
// anything else returns false.
func IsPathClear(board *chess.Board, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) bool {
	dCol := int(toCol) - int(fromCol)
	dRank := int(toRank) - int(fromRank)
	if dCol != 0 && dRank != 0 && abs(dCol) != abs(dRank) {
		return false
	}

	stepCol := sign(dCol)
	stepRank := sign(dRank)

	col := int(fromCol) + stepCol
	rank := int(fromRank) + stepRank
	for col != int(toCol) || rank != int(toRank) {
		if board.Get(chess.Col(col), chess.Rank(rank)) != chess.Empty {
			return false
		}
		col += stepCol
		rank += stepRank
	}
	return true
}

// Attackers returns every piece of the given colour bearing on the square,
// sorted cheapest first. The occupant of the square itself is never included.
func Attackers(board *chess.Board, col chess.Col, rank chess.Rank, by chess.Colour) []Attacker {
	if !chess.OnBoard(col, rank) {
		return nil
	}
	var found []Attacker
	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		for r := chess.Rank(chess.FirstRank); r <= chess.LastRank; r++ {
			if c == col && r == rank {
				continue
			}
			piece := board.Get(c, r)
			if !chess.IsColour(piece, by) {
				continue
			}
			if PieceAttacks(board, piece, c, r, col, rank) {
				found = append(found, Attacker{Col: c, Rank: r, Piece: piece})
			}
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Value() < found[j].Value()
	})
	return found
}

// IsAttackedBy reports whether the square is attacked by the given colour.
func IsAttackedBy(board *chess.Board, col chess.Col, rank chess.Rank, by chess.Colour) bool {
	if !chess.OnBoard(col, rank) {
		return false
	}
	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		for r := chess.Rank(chess.FirstRank); r <= chess.LastRank; r++ {
			if c == col && r == rank {
				continue
			}
			piece := board.Get(c, r)
			if !chess.IsColour(piece, by) {
				continue
			}
			if PieceAttacks(board, piece, c, r, col, rank) {
				return true
			}
		}
	}
	return false
}

// CountAttackers counts the pieces of the given colour bearing on a square.
func CountAttackers(board *chess.Board, col chess.Col, rank chess.Rank, by chess.Colour) int {
	return len(Attackers(board, col, rank, by))
}

// CountDefenders counts the defenders of the piece standing on a square:
// own-colour pieces that attack the square, the occupant itself excluded.
// An empty square has no defenders.
func CountDefenders(board *chess.Board, col chess.Col, rank chess.Rank) int {
	occupant := board.Get(col, rank)
	if occupant <= chess.Empty {
		return 0
	}
	return len(Attackers(board, col, rank, chess.ExtractColour(occupant)))
}

// LowestAttackerValue returns the value of the cheapest attacker of the
// given colour on the square, or 0 if there is none.
func LowestAttackerValue(board *chess.Board, col chess.Col, rank chess.Rank, by chess.Colour) int {
	attackers := Attackers(board, col, rank, by)
	if len(attackers) == 0 {
		return 0
	}
	return attackers[0].Value()
}

// LowestDefenderValue returns the value of the cheapest defender of the
// piece on the square, or 0 if there is none.
func LowestDefenderValue(board *chess.Board, col chess.Col, rank chess.Rank) int {
	occupant := board.Get(col, rank)
	if occupant <= chess.Empty {
		return 0
	}
	return LowestAttackerValue(board, col, rank, chess.ExtractColour(occupant))
}

// LeastValuableAttacker returns the cheapest attacker of the given colour
// on the square.
func LeastValuableAttacker(board *chess.Board, col chess.Col, rank chess.Rank, by chess.Colour) (Attacker, bool) {
	attackers := Attackers(board, col, rank, by)
	if len(attackers) == 0 {
		return Attacker{}, false
	}
	return attackers[0], true
}

// MoveTargets returns the pseudo-legal destination squares of the piece on
// the given square: captures plus quiet moves, including pawn pushes. Check
// legality is not considered. This serves the trapped-piece and escape
// detectors; it is not a move generator for search.
func MoveTargets(board *chess.Board, col chess.Col, rank chess.Rank) []chess.Square {
	piece := board.Get(col, rank)
	if piece <= chess.Empty {
		return nil
	}
	colour := chess.ExtractColour(piece)
	pieceType := chess.ExtractPiece(piece)

	var targets []chess.Square
	add := func(c chess.Col, r chess.Rank) {
		targets = append(targets, chess.Square{Col: c, Rank: r})
	}

	if pieceType == chess.Pawn {
		dir := chess.ColourOffset(colour)
		// Captures
		for _, dc := range [2]int{-1, 1} {
			c := chess.Col(int(col) + dc)
			r := chess.Rank(int(rank) + dir)
			if chess.IsColour(board.Get(c, r), colour.Opposite()) {
				add(c, r)
			}
		}
		// Single push
		r := chess.Rank(int(rank) + dir)
		if board.Get(col, r) == chess.Empty {
			add(col, r)
			// Double push from the home rank
			home := chess.Rank('2')
			if colour == chess.Black {
				home = '7'
			}
			r2 := chess.Rank(int(rank) + 2*dir)
			if rank == home && board.Get(col, r2) == chess.Empty {
				add(col, r2)
			}
		}
		return targets
	}

	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		for r := chess.Rank(chess.FirstRank); r <= chess.LastRank; r++ {
			if c == col && r == rank {
				continue
			}
			occupant := board.Get(c, r)
			if chess.IsColour(occupant, colour) {
				continue
			}
			if PieceAttacks(board, piece, col, rank, c, r) {
				add(c, r)
			}
		}
	}
	return targets
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
