package tactics

import (
	"fmt"

	"chess-tactics/internal/chess"
	"chess-tactics/internal/engine"
)

// Classification is the material verdict on a capture or sacrifice.
type Classification int

const (
	NoClassification Classification = iota
	FairTrade
	WinningCapture
	ExchangeSacrifice
	Sacrifice
	Brilliant
)

// String returns the classification name.
func (c Classification) String() string {
	names := []string{"none", "fair-trade", "winning-capture", "exchange-sacrifice", "sacrifice", "brilliant"}
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

// Verdict pairs a classification with its display text.
type Verdict struct {
	Classification Classification
	Text           string
}

// ClassifyCapture decides what the analysed move's material story is. Rules
// run in priority order, brilliancy first; the first that applies wins. A
// move that is not a capture and not a recognisable sacrifice yields
// NoClassification.
func (e *Explainer) ClassifyCapture() Verdict {
	see, isCapture := e.SEE()
	if !isCapture {
		return Verdict{Classification: NoClassification}
	}

	moverType := e.Move.Piece()
	victimType := chess.ExtractPiece(e.Move.CapturedPiece)
	moverValue := chess.Value(moverType)
	victimValue := chess.Value(victimType)
	defended := engine.CountDefenders(e.Board, e.Move.ToCol, e.Move.ToRank) > 0

	if e.isBrilliant(see, moverValue, victimValue) {
		return Verdict{
			Classification: Brilliant,
			Text:           fmt.Sprintf("brilliant %s sacrifice", moverType.Name()),
		}
	}

	postFavours := e.EvalAfter != nil && e.EvalAfter.FavorsMover(0)

	// Exchange sacrifice: rook for minor piece, on purpose.
	if moverType == chess.Rook && victimValue == 3 && defended && see < -1 && postFavours {
		return Verdict{Classification: ExchangeSacrifice, Text: "exchange sacrifice"}
	}

	if see <= -e.Thresholds.SacrificeMaterial && defended && postFavours {
		return Verdict{
			Classification: Sacrifice,
			Text:           fmt.Sprintf("%s sacrifice for the initiative", moverType.Name()),
		}
	}

	if see == 0 && moverValue == victimValue {
		return Verdict{
			Classification: FairTrade,
			Text:           fmt.Sprintf("trades %s", victimType.Name()),
		}
	}

	if see > 0 {
		return Verdict{
			Classification: WinningCapture,
			Text:           fmt.Sprintf("wins %s (SEE +%d)", victimType.Name(), see),
		}
	}

	return Verdict{Classification: NoClassification}
}

// isBrilliant applies the brilliancy gate: a deliberate, sound sacrifice of
// a minor piece or better in a position that was not already won and is not
// lost afterwards.
func (e *Explainer) isBrilliant(see, moverValue, victimValue int) bool {
	if see >= 0 || moverValue < 3 {
		return false
	}
	// The captured piece must be worth less than the piece offered.
	if victimValue >= moverValue {
		return false
	}
	// Not already decisively winning before, not losing after.
	if e.EvalBefore == nil || e.EvalAfter == nil {
		return false
	}
	if e.EvalBefore.FavorsMover(e.Thresholds.Decisive) {
		return false
	}
	if e.EvalAfter.Losing(e.Thresholds.BadPosition) {
		return false
	}
	// The piece must really be en prise on arrival: undefended, with no
	// pawn able to pocket it profitably.
	if engine.CountDefenders(e.Post, e.Move.ToCol, e.Move.ToRank) > 0 {
		return false
	}
	for _, a := range engine.Attackers(e.Post, e.Move.ToCol, e.Move.ToRank, e.enemy()) {
		if chess.ExtractPiece(a.Piece) == chess.Pawn {
			return false
		}
	}
	return true
}
