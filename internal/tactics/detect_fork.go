package tactics

import (
	"fmt"
	"sort"

	"chess-tactics/internal/chess"
	"chess-tactics/internal/engine"
)

// forkTargets returns the enemy pieces the arriving piece attacks from its
// landing square, most valuable first.
func (e *Explainer) forkTargets(minValue int) []engine.Attacker {
	piece := e.arriving()
	toCol, toRank := e.Move.ToCol, e.Move.ToRank

	var targets []engine.Attacker
	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		for r := chess.Rank(chess.FirstRank); r <= chess.LastRank; r++ {
			target := e.Post.Get(c, r)
			if !chess.IsColour(target, e.enemy()) {
				continue
			}
			if chess.ExtractPiece(target) != chess.King && chess.Value(target) < minValue {
				continue
			}
			if engine.PieceAttacks(e.Post, piece, toCol, toRank, c, r) {
				targets = append(targets, engine.Attacker{Col: c, Rank: r, Piece: target})
			}
		}
	}
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].Value() > targets[j].Value()
	})
	return targets
}

// detectFork fires when the moved piece attacks two or more substantial
// enemy pieces at once. A fork is only real if at least one target is
// actually winnable once recapture of the forking piece is accounted for;
// with a king among the targets the forced king move guarantees it.
func (e *Explainer) detectFork() *Finding {
	targets := e.forkTargets(e.Thresholds.ForkTargetMin)
	if len(targets) < 2 {
		return nil
	}

	hasKing := false
	hasQueen := false
	for _, t := range targets {
		switch chess.ExtractPiece(t.Piece) {
		case chess.King:
			hasKing = true
		case chess.Queen:
			hasQueen = true
		}
	}

	if hasKing {
		// The king must step away, so the other piece falls - unless the
		// forker is simply taken first.
		if !e.forkerSurvives() {
			return nil
		}
		if hasQueen {
			return &Finding{Description: "royal fork: forks king and queen", Importance: 10, Category: CategoryFork}
		}
		other := firstNonKing(targets)
		return &Finding{
			Description: fmt.Sprintf("forks king and %s", other.Name()),
			Importance:  9,
			Category:    CategoryFork,
		}
	}

	// Without a king, at least one target must be winnable for real.
	winnableCount := 0
	for _, t := range targets {
		if e.winnable(t.Col, t.Rank) {
			winnableCount++
		}
	}
	if winnableCount == 0 {
		return nil
	}
	first := chess.ExtractPiece(targets[0].Piece)
	second := chess.ExtractPiece(targets[1].Piece)
	return &Finding{
		Description: fmt.Sprintf("forks %s and %s with %s", first.Name(), second.Name(), e.Move.ArrivingPiece().Name()),
		Importance:  7,
		Category:    CategoryFork,
	}
}

// forkerSurvives checks that the forking piece cannot simply be captured
// favourably on its landing square before the fork cashes in.
func (e *Explainer) forkerSurvives() bool {
	a, ok := engine.LeastValuableAttacker(e.Post, e.Move.ToCol, e.Move.ToRank, e.enemy())
	if !ok {
		return true
	}
	// The enemy recapturing the forker must lose material doing it.
	return engine.EvaluateExchange(e.Pool, e.Post, e.Move.ToCol, e.Move.ToRank,
		a.Piece, a.Col, a.Rank) <= 0
}

// firstNonKing returns the piece type of the most valuable non-king target.
func firstNonKing(targets []engine.Attacker) chess.Piece {
	for _, t := range targets {
		pieceType := chess.ExtractPiece(t.Piece)
		if pieceType != chess.King {
			return pieceType
		}
	}
	return chess.Empty
}

// detectDoubleAttack covers the two-target patterns the fork detector
// passes over: two simultaneously attacked loose pieces where one of them
// is below the fork value floor.
func (e *Explainer) detectDoubleAttack() *Finding {
	targets := e.forkTargets(1)
	if len(targets) < 2 {
		return nil
	}
	var winnable []engine.Attacker
	for _, t := range targets {
		if chess.ExtractPiece(t.Piece) == chess.King {
			continue
		}
		if e.winnable(t.Col, t.Rank) {
			winnable = append(winnable, t)
		}
	}
	if len(winnable) < 2 {
		return nil
	}
	if winnable[0].Value() < e.Thresholds.ForkTargetMin {
		return nil // two loose pawns are not worth a headline
	}
	first := chess.ExtractPiece(winnable[0].Piece)
	second := chess.ExtractPiece(winnable[1].Piece)
	return &Finding{
		Description: fmt.Sprintf("double attack on %s and %s", first.Name(), second.Name()),
		Importance:  4,
		Category:    CategoryThreat,
	}
}
