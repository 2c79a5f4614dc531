package engine

import (
	"chess-tactics/internal/chess"
	"chess-tactics/internal/pool"
)

// maxExchangeDepth bounds the capture sequence on one square. At most 16
// attackers can bear on a square even in pathological positions.
const maxExchangeDepth = 32

// EvaluateExchange simulates the full rational capture sequence on the
// target square, started by the given coloured attacker moving from the
// source square, and returns the net material swing from the attacking
// side's point of view (positive means the attacker gains).
//
// Each side always recaptures with its least valuable legal attacker. A
// recapture is legal only if it does not leave the recapturing side's own
// king attacked; that one simulation-based test covers both absolutely
// pinned pieces and the rule that a recapture after a checking capture must
// also resolve the check. The sequence stops early once the side to move
// cannot profit from continuing, and the per-depth gains are then propagated
// back so each side stands pat at its own best point.
//
// Inconsistent boards never propagate an error: any internal failure
// resolves to a neutral 0.
func EvaluateExchange(p *pool.BoardPool, board *chess.Board, targetCol chess.Col, targetRank chess.Rank, attacker chess.Piece, fromCol chess.Col, fromRank chess.Rank) (result int) {
	defer func() {
		if r := recover(); r != nil {
			result = 0
		}
	}()

	if !chess.OnBoard(targetCol, targetRank) || !chess.OnBoard(fromCol, fromRank) {
		return 0
	}
	victim := board.Get(targetCol, targetRank)
	if victim <= chess.Empty || attacker <= chess.Empty {
		return 0
	}

	scratch := p.Rent(board)
	defer p.Release(scratch)

	var gain [maxExchangeDepth]int
	depth := 0
	gain[0] = chess.Value(victim)

	// Make the initial capture.
	scratch.Clear(fromCol, fromRank)
	scratch.Set(targetCol, targetRank, attacker)

	occupant := attacker
	sideToMove := chess.ExtractColour(attacker).Opposite()

	for depth < maxExchangeDepth-1 {
		next, ok := legalLeastValuableAttacker(scratch, targetCol, targetRank, sideToMove)
		if !ok {
			break
		}
		depth++
		gain[depth] = chess.Value(occupant) - gain[depth-1]

		// Neither side benefits from continuing.
		if maxInt(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		scratch.Clear(next.Col, next.Rank)
		scratch.Set(targetCol, targetRank, next.Piece)
		occupant = next.Piece
		sideToMove = sideToMove.Opposite()
	}

	// Back-propagate: each side stops the exchange at its best point.
	for d := depth; d > 0; d-- {
		gain[d-1] = -maxInt(-gain[d-1], gain[d])
	}
	return gain[0]
}

// legalLeastValuableAttacker returns the cheapest attacker of the given
// colour whose capture on the target square would not leave its own king
// attacked.
func legalLeastValuableAttacker(board *chess.Board, col chess.Col, rank chess.Rank, by chess.Colour) (Attacker, bool) {
	for _, a := range Attackers(board, col, rank, by) {
		if wouldLeaveKingInCheck(board, a.Col, a.Rank, col, rank, by) {
			continue
		}
		return a, true
	}
	return Attacker{}, false
}

// ExchangeValue evaluates a capture move directly: the SEE result of the
// move's own capture. Non-captures return 0.
func ExchangeValue(p *pool.BoardPool, board *chess.Board, move *chess.Move) int {
	if move == nil || !move.IsCapture() {
		return 0
	}
	return EvaluateExchange(p, board, move.ToCol, move.ToRank, move.PieceToMove, move.FromCol, move.FromRank)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
