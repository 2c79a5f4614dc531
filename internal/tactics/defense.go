package tactics

import (
	"fmt"
	"sort"

	"chess-tactics/internal/chess"
	"chess-tactics/internal/engine"
)

// AnalyzeDefenses is the symmetric counterpart of the tactical battery: it
// reports what the move newly protects. At most MaxReasons findings come
// back, highest importance first, deduplicated by description.
func (e *Explainer) AnalyzeDefenses() []Finding {
	var findings []Finding
	for _, d := range []detector{
		{"king-safety", e.detectKingSafety},
		{"escape", e.detectEscape},
		{"interposition", e.detectInterposition},
		{"new-defender", e.detectNewDefender},
	} {
		if f := e.runDetector(d); f != nil {
			findings = append(findings, *f)
		}
	}
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Importance > findings[j].Importance
	})
	findings = dedupe(findings)
	if len(findings) > MaxReasons {
		findings = findings[:MaxReasons]
	}
	return findings
}

// endangered reports whether the piece on the square of the given board is
// genuinely in danger: attacked by something cheaper, or simply outnumbered.
func endangered(board *chess.Board, col chess.Col, rank chess.Rank) bool {
	piece := board.Get(col, rank)
	if piece <= chess.Empty {
		return false
	}
	colour := chess.ExtractColour(piece)
	attackers := engine.CountAttackers(board, col, rank, colour.Opposite())
	if attackers == 0 {
		return false
	}
	lowest := engine.LowestAttackerValue(board, col, rank, colour.Opposite())
	if lowest < chess.Value(piece) {
		return true
	}
	return attackers > engine.CountDefenders(board, col, rank)
}

// detectNewDefender fires when a previously endangered friendly piece is
// adequately covered after the move. The moved piece cannot defend itself,
// so its own square is excluded.
func (e *Explainer) detectNewDefender() *Finding {
	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		for r := chess.Rank(chess.FirstRank); r <= chess.LastRank; r++ {
			if c == e.Move.ToCol && r == e.Move.ToRank {
				continue
			}
			piece := e.Post.Get(c, r)
			if !chess.IsColour(piece, e.Colour) || chess.ExtractPiece(piece) == chess.King {
				continue
			}
			if chess.Value(piece) < e.Thresholds.ForkTargetMin {
				continue
			}
			// Same piece, same square, endangered before, covered now.
			if e.Board.Get(c, r) != piece || !endangered(e.Board, c, r) || endangered(e.Post, c, r) {
				continue
			}
			// The moved piece must be part of the new cover.
			if !engine.PieceAttacks(e.Post, e.arriving(), e.Move.ToCol, e.Move.ToRank, c, r) {
				continue
			}
			return &Finding{
				Description: fmt.Sprintf("defends the %s", chess.ExtractPiece(piece).Name()),
				Importance:  4,
				Category:    CategoryDefense,
			}
		}
	}
	return nil
}

// detectEscape fires when the moved piece itself was genuinely in danger
// and its destination square is safe.
func (e *Explainer) detectEscape() *Finding {
	if !endangered(e.Board, e.Move.FromCol, e.Move.FromRank) {
		return nil
	}
	if endangered(e.Post, e.Move.ToCol, e.Move.ToRank) {
		return nil
	}
	pieceType := e.Move.Piece()
	if pieceType == chess.King || chess.Value(e.Move.PieceToMove) < e.Thresholds.ForkTargetMin {
		return nil
	}
	return &Finding{
		Description: fmt.Sprintf("moves the %s to safety", pieceType.Name()),
		Importance:  3,
		Category:    CategoryDefense,
	}
}

// detectInterposition fires when the move blocks an enemy slider's line to
// a valuable friendly piece or the king.
func (e *Explainer) detectInterposition() *Finding {
	toCol, toRank := e.Move.ToCol, e.Move.ToRank

	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		for r := chess.Rank(chess.FirstRank); r <= chess.LastRank; r++ {
			slider := e.Board.Get(c, r)
			if !chess.IsColour(slider, e.enemy()) || !chess.IsSlider(slider) {
				continue
			}
			for tc := chess.Col(chess.FirstCol); tc <= chess.LastCol; tc++ {
				for tr := chess.Rank(chess.FirstRank); tr <= chess.LastRank; tr++ {
					ward := e.Board.Get(tc, tr)
					if !chess.IsColour(ward, e.Colour) {
						continue
					}
					wardType := chess.ExtractPiece(ward)
					if wardType != chess.King && chess.Value(ward) < e.Thresholds.ForkTargetMin {
						continue
					}
					// Attacked before, blocked by the moved piece now.
					if !engine.PieceAttacks(e.Board, slider, c, r, tc, tr) {
						continue
					}
					if e.Post.Get(c, r) != slider {
						continue // the slider was the capture target
					}
					if engine.PieceAttacks(e.Post, slider, c, r, tc, tr) {
						continue
					}
					if !onRayBetween(c, r, tc, tr, toCol, toRank) {
						continue
					}
					if wardType == chess.King {
						return &Finding{Description: "blocks the check", Importance: 5, Category: CategoryDefense}
					}
					return &Finding{
						Description: fmt.Sprintf("shields the %s", wardType.Name()),
						Importance:  4,
						Category:    CategoryDefense,
					}
				}
			}
		}
	}
	return nil
}

// kingZonePressure counts the squares around the given colour's king that
// the other side attacks.
func kingZonePressure(board *chess.Board, colour chess.Colour) int {
	kCol, kRank, ok := board.KingSquare(colour)
	if !ok {
		return 0
	}
	count := 0
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			c := chess.Col(int(kCol) + dc)
			r := chess.Rank(int(kRank) + dr)
			if !chess.OnBoard(c, r) {
				continue
			}
			if engine.IsAttackedBy(board, c, r, colour.Opposite()) {
				count++
			}
		}
	}
	return count
}

// detectKingSafety covers the king-centric defensive gains: getting out of
// check, defusing a mate in one, or easing serious pressure on the king
// zone.
func (e *Explainer) detectKingSafety() *Finding {
	if engine.IsInCheck(e.Board, e.Colour) && !engine.IsInCheck(e.Post, e.Colour) {
		return &Finding{Description: "escapes the check", Importance: 6, Category: CategoryDefense}
	}
	if engine.CanMateInOne(e.Board, e.enemy()) && !engine.CanMateInOne(e.Post, e.enemy()) {
		return &Finding{Description: "stops the mate threat", Importance: 7, Category: CategoryDefense}
	}
	before := kingZonePressure(e.Board, e.Colour)
	after := kingZonePressure(e.Post, e.Colour)
	if before >= e.Thresholds.KingZoneDanger && after < before {
		return &Finding{Description: "improves king safety", Importance: 3, Category: CategoryDefense}
	}
	return nil
}
