package tactics

import (
	"fmt"

	"chess-tactics/internal/chess"
	"chess-tactics/internal/engine"
)

// attackedByMovedPiece reports whether the arriving piece bears on the
// square. Both the trapped and hanging detectors demand this proximity so
// they never report board features the analysed move had no part in.
func (e *Explainer) attackedByMovedPiece(col chess.Col, rank chess.Rank) bool {
	return engine.PieceAttacks(e.Post, e.arriving(), e.Move.ToCol, e.Move.ToRank, col, rank)
}

// detectTrappedPiece fires when an enemy piece newly attacked by the moved
// piece has no safe square left: every pseudo-legal destination is either
// guarded unfavourably or loses material, and staying put loses it too.
func (e *Explainer) detectTrappedPiece() *Finding {
	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		for r := chess.Rank(chess.FirstRank); r <= chess.LastRank; r++ {
			target := e.Post.Get(c, r)
			if !chess.IsColour(target, e.enemy()) {
				continue
			}
			targetType := chess.ExtractPiece(target)
			if targetType == chess.King || targetType == chess.Pawn {
				continue
			}
			if chess.Value(target) < e.Thresholds.ForkTargetMin {
				continue
			}
			if !e.attackedByMovedPiece(c, r) {
				continue
			}
			// Staying must lose material.
			if !e.winnable(c, r) {
				continue
			}
			if e.hasSafeEscape(c, r) {
				continue
			}
			return &Finding{
				Description: fmt.Sprintf("traps the %s", targetType.Name()),
				Importance:  6,
				Category:    CategoryTrap,
			}
		}
	}
	return nil
}

// hasSafeEscape checks whether the enemy piece on the square has any
// destination where it is not lost: unattacked, or favourably defended, or
// a capture that wins back at least its own risk.
func (e *Explainer) hasSafeEscape(col chess.Col, rank chess.Rank) bool {
	piece := e.Post.Get(col, rank)
	pieceValue := chess.Value(piece)

	for _, sq := range engine.MoveTargets(e.Post, col, rank) {
		if engine.LeavesOwnKingInCheck(e.Post, col, rank, sq.Col, sq.Rank) {
			continue
		}
		captured := e.Post.Get(sq.Col, sq.Rank)

		// Probe the destination with the piece moved there.
		scratch := e.Pool.Rent(e.Post)
		scratch.Clear(col, rank)
		scratch.Set(sq.Col, sq.Rank, piece)

		safe := false
		attacker, attacked := engine.LeastValuableAttacker(scratch, sq.Col, sq.Rank, e.Colour)
		switch {
		case !attacked:
			safe = true
		case engine.EvaluateExchange(e.Pool, scratch, sq.Col, sq.Rank, attacker.Piece, attacker.Col, attacker.Rank) <= 0:
			// Taking the escaped piece loses material for the attacker.
			safe = true
		case captured > chess.Empty && chess.Value(captured) >= pieceValue:
			// Desperado: grabbing equal or better material on the way out.
			safe = true
		}
		e.Pool.Release(scratch)
		if safe {
			return true
		}
	}
	return false
}

// detectHangingPiece fires when the moved piece newly attacks an undefended
// enemy piece that cannot step out of the attack.
func (e *Explainer) detectHangingPiece() *Finding {
	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		for r := chess.Rank(chess.FirstRank); r <= chess.LastRank; r++ {
			target := e.Post.Get(c, r)
			if !chess.IsColour(target, e.enemy()) {
				continue
			}
			targetType := chess.ExtractPiece(target)
			if targetType == chess.King {
				continue
			}
			if chess.Value(target) < e.Thresholds.ForkTargetMin {
				continue
			}
			if !e.attackedByMovedPiece(c, r) {
				continue
			}
			if engine.CountDefenders(e.Post, c, r) > 0 {
				continue
			}
			// Newly attacked: the piece was not already loose to this
			// attacker before the move.
			if engine.PieceAttacks(e.Board, e.arriving(), e.Move.FromCol, e.Move.FromRank, c, r) {
				continue
			}
			if e.hasSafeEscape(c, r) {
				continue
			}
			return &Finding{
				Description: fmt.Sprintf("wins the hanging %s", targetType.Name()),
				Importance:  5,
				Category:    CategoryTrap,
			}
		}
	}
	return nil
}
