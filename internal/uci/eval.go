// Package uci parses the two pieces of engine output the analyser consumes:
// evaluation strings and principal-variation lines. The engine process
// itself lives outside this module.
package uci

import (
	"fmt"
	"strconv"
	"strings"

	"chess-tactics/internal/errors"
)

// Evaluation is a parsed engine evaluation, always from the point of view
// of the side whose move is being analysed: positive favours the mover.
type Evaluation struct {
	Pawns  float64 // Pawn-unit score; meaningless when IsMate.
	Mate   int     // Mate distance; positive means the mover mates.
	IsMate bool
}

// ParseEvaluation parses either a signed decimal pawn value ("+1.50",
// "-0.75", "1.50") or a mate announcement ("Mate in 3", "Mate in -2").
func ParseEvaluation(s string) (Evaluation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Evaluation{}, errors.Wrap(errors.ErrInvalidEvaluation, "empty text")
	}

	if rest, ok := cutPrefixFold(s, "mate in"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return Evaluation{}, errors.Wrapf(errors.ErrInvalidEvaluation, "mate distance %q", rest)
		}
		return Evaluation{Mate: n, IsMate: true}, nil
	}

	pawns, err := strconv.ParseFloat(strings.TrimPrefix(s, "+"), 64)
	if err != nil {
		return Evaluation{}, errors.Wrapf(errors.ErrInvalidEvaluation, "evaluation %q", s)
	}
	return Evaluation{Pawns: pawns}, nil
}

// cutPrefixFold is strings.CutPrefix with ASCII case folding.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) {
		return s, false
	}
	if strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

// Score collapses the evaluation to a single comparable pawn figure; mates
// dominate any material score.
func (e Evaluation) Score() float64 {
	if !e.IsMate {
		return e.Pawns
	}
	if e.Mate >= 0 {
		return 1000 - float64(e.Mate)
	}
	return -1000 - float64(e.Mate)
}

// FavorsMover reports whether the evaluation is at least the given pawn
// threshold in the mover's favour.
func (e Evaluation) FavorsMover(threshold float64) bool {
	return e.Score() >= threshold
}

// Losing reports whether the evaluation is at least the given pawn
// threshold against the mover.
func (e Evaluation) Losing(threshold float64) bool {
	return e.Score() <= -threshold
}

// String renders the evaluation in the same form it is parsed from.
func (e Evaluation) String() string {
	if e.IsMate {
		return fmt.Sprintf("Mate in %d", e.Mate)
	}
	return fmt.Sprintf("%+.2f", e.Pawns)
}
