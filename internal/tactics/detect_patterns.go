package tactics

import (
	"chess-tactics/internal/chess"
	"chess-tactics/internal/engine"
)

// backRank returns the enemy king's home rank and the direction pawns in
// front of it sit.
func (e *Explainer) enemyBackRank() (chess.Rank, int) {
	if e.enemy() == chess.White {
		return '1', 1
	}
	return '8', -1
}

// detectBackRank fires when the enemy king is shut in on its back rank and
// the move puts a rook or queen to work against it. If the mating net is
// already closed this is reported as the stronger mate threat.
func (e *Explainer) detectBackRank() *Finding {
	backRank, forward := e.enemyBackRank()
	kCol, kRank, ok := e.Post.KingSquare(e.enemy())
	if !ok || kRank != backRank {
		return nil
	}

	// The squares in front of the king must all be blocked by its own men.
	blocked := true
	for dc := -1; dc <= 1; dc++ {
		c := chess.Col(int(kCol) + dc)
		r := chess.Rank(int(backRank) + forward)
		if !chess.OnBoard(c, r) {
			continue
		}
		if !chess.IsColour(e.Post.Get(c, r), e.enemy()) {
			blocked = false
		}
	}
	if !blocked {
		return nil
	}

	// The moved piece must be heavy and bearing on the back rank.
	arriving := e.Move.ArrivingPiece()
	if arriving != chess.Rook && arriving != chess.Queen {
		return nil
	}
	bearsOnRank := false
	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		if engine.PieceAttacks(e.Post, e.arriving(), e.Move.ToCol, e.Move.ToRank, c, backRank) {
			bearsOnRank = true
			break
		}
	}
	if !bearsOnRank && e.Move.ToRank != backRank {
		return nil
	}

	if engine.IsCheckmate(e.Post, e.enemy()) {
		return &Finding{Description: "back rank mate", Importance: 10, Category: CategoryPattern}
	}
	if engine.IsInCheck(e.Post, e.enemy()) {
		// The check itself is the story; let the check detectors talk.
		return nil
	}
	// The threatened mate must survive the defence: a guarded back rank
	// (rook ready to recapture on the entry square) is no threat at all.
	if !engine.CanMateInOne(e.Post, e.Colour) {
		return nil
	}
	return &Finding{Description: "back rank mate threat", Importance: 7, Category: CategoryPattern}
}

// detectPromotionThreat fires when after the move a pawn of the moving side
// stands one step from promotion and cannot be stopped for free.
func (e *Explainer) detectPromotionThreat() *Finding {
	seventhRank := chess.Rank('7')
	promotionRank := chess.Rank('8')
	if e.Colour == chess.Black {
		seventhRank = '2'
		promotionRank = '1'
	}

	for c := chess.Col(chess.FirstCol); c <= chess.LastCol; c++ {
		if e.Post.Get(c, seventhRank) != chess.MakeColouredPiece(e.Colour, chess.Pawn) {
			continue
		}
		// Only the pawn involved in the move counts; an old runner is not
		// this move's achievement.
		if c != e.Move.ToCol {
			continue
		}
		if e.Post.Get(c, promotionRank) != chess.Empty {
			continue
		}
		// The promotion square must not be cheaply covered.
		if engine.IsAttackedBy(e.Post, c, promotionRank, e.enemy()) &&
			engine.CountAttackers(e.Post, c, promotionRank, e.Colour) == 0 {
			continue
		}
		return &Finding{Description: "threatens to promote", Importance: 6, Category: CategoryPromotion}
	}
	return nil
}

// detectSmotheredMate fires on the classic pattern: a knight check against
// a king completely boxed in by its own pieces, with no way to remove the
// knight.
func (e *Explainer) detectSmotheredMate() *Finding {
	if e.Move.ArrivingPiece() != chess.Knight {
		return nil
	}
	if !engine.IsInCheck(e.Post, e.enemy()) {
		return nil
	}
	kCol, kRank, ok := e.Post.KingSquare(e.enemy())
	if !ok {
		return nil
	}
	// Every square around the king is occupied by its own pieces.
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
			if !chess.IsColour(e.Post.Get(c, r), e.enemy()) {
				return nil
			}
		}
	}
	if !engine.IsCheckmate(e.Post, e.enemy()) {
		return nil
	}
	return &Finding{Description: "smothered mate", Importance: 10, Category: CategoryPattern}
}
