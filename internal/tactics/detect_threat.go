package tactics

import (
	"fmt"

	"chess-tactics/internal/chess"
	"chess-tactics/internal/engine"
)

// detectForcedMove reports moves the caller marked as the only legal reply,
// or the engine's sole sensible answer to a check. Both signals are supplied
// data; no legal-move enumeration happens here.
func (e *Explainer) detectForcedMove() *Finding {
	if e.ForcedReply {
		return &Finding{Description: "only legal move", Importance: 10, Category: CategoryForced}
	}
	if e.BestMove != "" && e.BestMove == e.Move.Text && engine.IsInCheck(e.Board, e.Colour) {
		return &Finding{Description: "best reply to the check", Importance: 8, Category: CategoryForced}
	}
	return nil
}

// detectCaptureGain explains the material outcome of a capture via SEE.
// An equal trade must read "trades queen", never "wins queen".
func (e *Explainer) detectCaptureGain() *Finding {
	see, ok := e.SEE()
	if !ok {
		return nil
	}
	victim := chess.ExtractPiece(e.Move.CapturedPiece)
	mover := e.Move.Piece()

	if see > 0 {
		return &Finding{
			Description: fmt.Sprintf("wins %s (SEE +%d)", victim.Name(), see),
			Importance:  6 + see,
			Category:    CategoryMaterial,
		}
	}
	if see == 0 && chess.Value(victim) == chess.Value(mover) {
		return &Finding{
			Description: fmt.Sprintf("trades %s", victim.Name()),
			Importance:  2,
			Category:    CategoryMaterial,
		}
	}
	return nil
}

// detectThreat fires when the arriving piece newly attacks a more valuable
// enemy piece and the threat is real: the target is winnable.
func (e *Explainer) detectThreat() *Finding {
	attacker := e.arriving()
	attackerValue := chess.Value(attacker)
	toCol, toRank := e.Move.ToCol, e.Move.ToRank

	var best *Finding
	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		for r := chess.Rank(chess.FirstRank); r <= chess.LastRank; r++ {
			target := e.Post.Get(c, r)
			if !chess.IsColour(target, e.enemy()) {
				continue
			}
			targetType := chess.ExtractPiece(target)
			if targetType == chess.King {
				continue // checks are their own findings
			}
			if chess.Value(target) <= attackerValue {
				continue
			}
			if !engine.PieceAttacks(e.Post, attacker, toCol, toRank, c, r) {
				continue
			}
			// Only new threats count.
			if engine.PieceAttacks(e.Board, attacker, e.Move.FromCol, e.Move.FromRank, c, r) {
				continue
			}
			if !e.winnable(c, r) {
				continue
			}
			f := &Finding{
				Description: fmt.Sprintf("threatens %s with %s", targetType.Name(), e.Move.ArrivingPiece().Name()),
				Importance:  3 + chess.Value(target) - attackerValue,
				Category:    CategoryThreat,
			}
			if best == nil || f.Importance > best.Importance {
				best = f
			}
		}
	}
	return best
}

// detectDoubleCheck fires when the moved piece gives check and a second
// friendly piece's check is revealed at the same time.
func (e *Explainer) detectDoubleCheck() *Finding {
	if !engine.GivesDoubleCheck(e.Post, e.enemy()) {
		return nil
	}
	// The moved piece must be one of the checkers.
	movedChecks := false
	for _, a := range engine.CheckingPieces(e.Post, e.enemy()) {
		if a.Col == e.Move.ToCol && a.Rank == e.Move.ToRank {
			movedChecks = true
		}
	}
	if !movedChecks {
		return nil
	}
	return &Finding{Description: "double check", Importance: 9, Category: CategoryCheck}
}

// detectDiscoveredAttack fires when moving the piece off a line opens a
// friendly slider's attack on a valuable enemy piece or the king.
func (e *Explainer) detectDiscoveredAttack() *Finding {
	fromCol, fromRank := e.Move.FromCol, e.Move.FromRank

	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		for r := chess.Rank(chess.FirstRank); r <= chess.LastRank; r++ {
			slider := e.Post.Get(c, r)
			if !chess.IsColour(slider, e.Colour) || !chess.IsSlider(slider) {
				continue
			}
			if c == e.Move.ToCol && r == e.Move.ToRank {
				continue // the moved piece itself cannot discover
			}
			for tc := chess.Col(chess.FirstCol); tc <= chess.LastCol; tc++ {
				for tr := chess.Rank(chess.FirstRank); tr <= chess.LastRank; tr++ {
					target := e.Post.Get(tc, tr)
					if !chess.IsColour(target, e.enemy()) {
						continue
					}
					targetType := chess.ExtractPiece(target)
					if targetType != chess.King && chess.Value(target) < e.Thresholds.ForkTargetMin {
						continue
					}
					// Open now, blocked before, and the moved piece was the blocker.
					if !engine.PieceAttacks(e.Post, slider, c, r, tc, tr) {
						continue
					}
					if engine.PieceAttacks(e.Board, slider, c, r, tc, tr) {
						continue
					}
					if !onRayBetween(c, r, tc, tr, fromCol, fromRank) {
						continue
					}
					if targetType == chess.King {
						return &Finding{Description: "discovered check", Importance: 8, Category: CategoryDiscovered}
					}
					if !e.winnable(tc, tr) {
						continue
					}
					return &Finding{
						Description: fmt.Sprintf("discovered attack on the %s", targetType.Name()),
						Importance:  6,
						Category:    CategoryDiscovered,
					}
				}
			}
		}
	}
	return nil
}

// detectPlainCheck is the lowest-priority fallback for checking moves.
func (e *Explainer) detectPlainCheck() *Finding {
	if !engine.IsInCheck(e.Post, e.enemy()) {
		return nil
	}
	return &Finding{Description: "gives check", Importance: 1, Category: CategoryCheck}
}

// onRayBetween reports whether (col,rank) lies strictly between the two end
// squares on their shared rank, file or diagonal.
func onRayBetween(fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank, col chess.Col, rank chess.Rank) bool {
	stepCol, stepRank, ok := engine.RayDirection(fromCol, fromRank, toCol, toRank)
	if !ok {
		return false
	}
	c := int(fromCol) + stepCol
	r := int(fromRank) + stepRank
	for c != int(toCol) || r != int(toRank) {
		if chess.Col(c) == col && chess.Rank(r) == rank {
			return true
		}
		c += stepCol
		r += stepRank
	}
	return false
}
