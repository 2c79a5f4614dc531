package tactics

import (
	"fmt"

	"chess-tactics/internal/chess"
	"chess-tactics/internal/engine"
)

// pinLine describes one front/behind pair found on a ray from the moved
// slider: the enemy piece it attacks and the first enemy piece shadowed
// behind it.
type pinLine struct {
	front  engine.Attacker
	behind engine.Attacker
}

// pinLines walks every ray of the arriving slider and collects enemy
// front/behind pairs. Only sliders produce lines; knights, pawns and kings
// never pin or skewer anything.
func (e *Explainer) pinLines() []pinLine {
	piece := e.arriving()
	if !chess.IsSlider(piece) {
		return nil
	}
	col, rank := e.Move.ToCol, e.Move.ToRank

	pieceType := chess.ExtractPiece(piece)

	var lines []pinLine
	for _, dir := range [][2]int{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
	} {
		if !engine.SliderAttacksAlong(pieceType, dir[0], dir[1]) {
			continue
		}
		front, ok := engine.FirstPieceFrom(e.Post, col, rank, dir[0], dir[1])
		if !ok || !chess.IsColour(front.Piece, e.enemy()) {
			continue
		}
		behind, ok := engine.FirstPieceFrom(e.Post, front.Col, front.Rank, dir[0], dir[1])
		if !ok || !chess.IsColour(behind.Piece, e.enemy()) {
			continue
		}
		lines = append(lines, pinLine{front: front, behind: behind})
	}
	return lines
}

// detectPin fires when the moved slider attacks an enemy piece with a more
// valuable enemy piece or the king directly behind it on the same ray.
// Absolute pins (king behind) always report; relative pins only when the
// shielded piece is loose or the exploit is large enough to matter.
func (e *Explainer) detectPin() *Finding {
	for _, line := range e.pinLines() {
		frontType := chess.ExtractPiece(line.front.Piece)
		behindType := chess.ExtractPiece(line.behind.Piece)
		if frontType == chess.King {
			continue // king in front is a skewer, not a pin
		}
		if behindType == chess.King {
			return &Finding{
				Description: fmt.Sprintf("pins %s to the king", frontType.Name()),
				Importance:  7,
				Category:    CategoryPin,
			}
		}
		if chess.Value(line.behind.Piece) <= chess.Value(line.front.Piece) {
			continue
		}
		loose := engine.CountDefenders(e.Post, line.behind.Col, line.behind.Rank) == 0
		gain := chess.Value(line.behind.Piece) - chess.Value(e.arriving())
		if !loose && gain < e.Thresholds.PinGainMin {
			continue
		}
		return &Finding{
			Description: fmt.Sprintf("pins %s to the %s", frontType.Name(), behindType.Name()),
			Importance:  5,
			Category:    CategoryPin,
		}
	}
	return nil
}

// detectSkewer is the mirror of the pin: the more valuable enemy piece
// stands in front and must move, exposing the cheaper piece behind it.
// A king in front always qualifies.
func (e *Explainer) detectSkewer() *Finding {
	for _, line := range e.pinLines() {
		frontType := chess.ExtractPiece(line.front.Piece)
		behindType := chess.ExtractPiece(line.behind.Piece)
		if behindType == chess.King {
			continue
		}
		if frontType == chess.King {
			return &Finding{
				Description: fmt.Sprintf("skewers king, winning %s", behindType.Name()),
				Importance:  8,
				Category:    CategorySkewer,
			}
		}
		if chess.Value(line.front.Piece) <= chess.Value(line.behind.Piece) {
			continue
		}
		// The front piece only has to move if staying loses material.
		if chess.Value(line.front.Piece) <= chess.Value(e.arriving()) {
			continue
		}
		if !skewerGainReal(e, line) {
			continue
		}
		return &Finding{
			Description: fmt.Sprintf("skewers %s, winning %s", frontType.Name(), behindType.Name()),
			Importance:  6,
			Category:    CategorySkewer,
		}
	}
	return nil
}

// skewerGainReal checks that capturing the rear piece once the front one
// moves would actually gain material: loose, or cheaper than the attacker
// with an even exchange at worst.
func skewerGainReal(e *Explainer, line pinLine) bool {
	if engine.CountDefenders(e.Post, line.behind.Col, line.behind.Rank) == 0 {
		return true
	}
	// Probe the exchange with the front piece lifted off the ray.
	scratch := e.Pool.Rent(e.Post)
	defer e.Pool.Release(scratch)
	scratch.Clear(line.front.Col, line.front.Rank)
	attacker := e.arriving()
	return engine.EvaluateExchange(e.Pool, scratch, line.behind.Col, line.behind.Rank,
		attacker, e.Move.ToCol, e.Move.ToRank) > 0
}

// detectXRay fires on the remaining through-piece alignment the pin and
// skewer did not claim: attacking a piece through an enemy piece of equal
// value (rook behind rook, queen behind queen).
func (e *Explainer) detectXRay() *Finding {
	for _, line := range e.pinLines() {
		frontType := chess.ExtractPiece(line.front.Piece)
		behindType := chess.ExtractPiece(line.behind.Piece)
		if frontType == chess.King || behindType == chess.King {
			continue
		}
		if chess.Value(line.front.Piece) != chess.Value(line.behind.Piece) {
			continue
		}
		if chess.Value(line.front.Piece) < e.Thresholds.ForkTargetMin {
			continue
		}
		if !e.winnable(line.front.Col, line.front.Rank) {
			continue
		}
		return &Finding{
			Description: fmt.Sprintf("x-ray attack on the %s", behindType.Name()),
			Importance:  3,
			Category:    CategoryPattern,
		}
	}
	return nil
}
