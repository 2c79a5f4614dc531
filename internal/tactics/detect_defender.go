package tactics

import (
	"fmt"

	"chess-tactics/internal/chess"
	"chess-tactics/internal/engine"
)

// guardedSquares returns the enemy pieces a given enemy piece defends,
// looking only at substantial wards (value at or above the fork floor).
func (e *Explainer) guardedSquares(board *chess.Board, col chess.Col, rank chess.Rank) []engine.Attacker {
	guard := board.Get(col, rank)
	if !chess.IsColour(guard, e.enemy()) {
		return nil
	}
	var wards []engine.Attacker
	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		for r := chess.Rank(chess.FirstRank); r <= chess.LastRank; r++ {
			if c == col && r == rank {
				continue
			}
			ward := board.Get(c, r)
			if !chess.IsColour(ward, e.enemy()) {
				continue
			}
			if chess.Value(ward) < e.Thresholds.ForkTargetMin {
				continue
			}
			if engine.PieceAttacks(board, guard, col, rank, c, r) {
				wards = append(wards, engine.Attacker{Col: c, Rank: r, Piece: ward})
			}
		}
	}
	return wards
}

// detectRemovalOfDefender fires when the capture takes a piece that was the
// sole defender of another valuable enemy piece, leaving that piece
// winnable.
func (e *Explainer) detectRemovalOfDefender() *Finding {
	if !e.Move.IsCapture() {
		return nil
	}
	// What did the captured piece defend before the move?
	for _, ward := range e.guardedSquares(e.Board, e.Move.ToCol, e.Move.ToRank) {
		// The ward may have moved squares only on the analysed square set;
		// it is still on its square in the post-move board unless it was
		// the capture target itself.
		if ward.Col == e.Move.ToCol && ward.Rank == e.Move.ToRank {
			continue
		}
		if engine.CountDefenders(e.Post, ward.Col, ward.Rank) > 0 {
			continue
		}
		if engine.CountAttackers(e.Post, ward.Col, ward.Rank, e.Colour) == 0 {
			continue
		}
		return &Finding{
			Description: fmt.Sprintf("removes the defender of the %s", chess.ExtractPiece(ward.Piece).Name()),
			Importance:  6,
			Category:    CategoryDefenderRemoval,
		}
	}
	return nil
}

// detectOverloading fires when the move attacks an enemy piece that is
// already carrying more defensive duties than it can keep: it defends a
// valuable piece (or a square next to its king) that becomes winnable the
// moment it answers the new threat.
func (e *Explainer) detectOverloading() *Finding {
	piece := e.arriving()
	toCol, toRank := e.Move.ToCol, e.Move.ToRank

	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		for r := chess.Rank(chess.FirstRank); r <= chess.LastRank; r++ {
			guard := e.Post.Get(c, r)
			if !chess.IsColour(guard, e.enemy()) || chess.ExtractPiece(guard) == chess.King {
				continue
			}
			if !engine.PieceAttacks(e.Post, piece, toCol, toRank, c, r) {
				continue
			}
			// Attacking it must be a real threat in the first place.
			if !e.winnable(c, r) && chess.Value(guard) <= chess.Value(piece) {
				continue
			}
			wards := e.guardedSquares(e.Post, c, r)
			for _, ward := range wards {
				// Sole defender: take the guard away and the ward hangs.
				if engine.CountDefenders(e.Post, ward.Col, ward.Rank) != 1 {
					continue
				}
				if engine.CountAttackers(e.Post, ward.Col, ward.Rank, e.Colour) == 0 {
					continue
				}
				return &Finding{
					Description: fmt.Sprintf("overloads the %s defending the %s",
						chess.ExtractPiece(guard).Name(), chess.ExtractPiece(ward.Piece).Name()),
					Importance: 5,
					Category:   CategoryDefenderRemoval,
				}
			}
			if e.guardsKingZoneAlone(c, r) {
				return &Finding{
					Description: fmt.Sprintf("overloads the %s guarding the king",
						chess.ExtractPiece(guard).Name()),
					Importance: 5,
					Category:   CategoryDefenderRemoval,
				}
			}
		}
	}
	return nil
}

// guardsKingZoneAlone reports whether the guard on the given square is the
// only enemy piece besides the king covering some square next to the enemy
// king that we could otherwise invade.
func (e *Explainer) guardsKingZoneAlone(col chess.Col, rank chess.Rank) bool {
	guard := e.Post.Get(col, rank)
	kCol, kRank, ok := e.Post.KingSquare(e.enemy())
	if !ok {
		return false
	}
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			sc := chess.Col(int(kCol) + dc)
			sr := chess.Rank(int(kRank) + dr)
			if !chess.OnBoard(sc, sr) || chess.IsColour(e.Post.Get(sc, sr), e.enemy()) {
				continue
			}
			if !engine.PieceAttacks(e.Post, guard, col, rank, sc, sr) {
				continue
			}
			// Entry squares only matter if we actually bear on them.
			if engine.CountAttackers(e.Post, sc, sr, e.Colour) == 0 {
				continue
			}
			covers := 0
			for _, a := range engine.Attackers(e.Post, sc, sr, e.enemy()) {
				if chess.ExtractPiece(a.Piece) != chess.King {
					covers++
				}
			}
			if covers == 1 {
				return true
			}
		}
	}
	return false
}

// detectDecoy fires only with a confirming principal variation: the move
// gives up material on a square, the PV shows the enemy accepting, and the
// line ends well for the mover. Without that lookahead the pattern produces
// false positives, so it stays silent.
func (e *Explainer) detectDecoy() *Finding {
	see, ok := e.SEE()
	if !ok || see >= 0 {
		return nil
	}
	for _, pv := range e.PVs {
		if len(pv.Moves) < 2 {
			continue
		}
		reply := pv.Moves[1]
		if len(reply.Code) < 4 {
			continue
		}
		// The enemy's reply must land on the offered square.
		if chess.Col(reply.Code[2]) != e.Move.ToCol || chess.Rank(reply.Code[3]) != e.Move.ToRank {
			continue
		}
		lineEval := pv.Eval
		if lineEval == nil {
			lineEval = e.EvalAfter
		}
		if lineEval == nil || !lineEval.FavorsMover(e.Thresholds.Decisive) {
			continue
		}
		return &Finding{
			Description: fmt.Sprintf("decoy sacrifice on %s", chess.SquareName(e.Move.ToCol, e.Move.ToRank)),
			Importance:  6,
			Category:    CategoryPattern,
		}
	}
	return nil
}
