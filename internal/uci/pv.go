package uci

import "strings"

// PVMove is one ply of a principal variation.
type PVMove struct {
	Code    string // Bare move code, suffixes stripped.
	IsCheck bool   // Trailing '+' or '#'.
	IsMate  bool   // Trailing '#'.
}

// PVLine is a parsed principal variation: a move sequence with an optional
// trailing parenthesised evaluation.
type PVLine struct {
	Moves []PVMove
	Eval  *Evaluation
}

// ParsePV parses a space-separated PV line such as
// "e4e5+ d7d5 f3g5# (+2.10)". Tokens that do not look like move codes are
// skipped rather than treated as errors; a malformed PV degrades to fewer
// plies, never to a failure.
func ParsePV(line string) PVLine {
	var pv PVLine
	for _, token := range strings.Fields(line) {
		if strings.HasPrefix(token, "(") {
			text := strings.TrimSuffix(strings.TrimPrefix(token, "("), ")")
			if eval, err := ParseEvaluation(text); err == nil {
				pv.Eval = &eval
			}
			continue
		}
		move := PVMove{Code: token}
		if strings.HasSuffix(move.Code, "#") {
			move.IsMate = true
			move.IsCheck = true
			move.Code = strings.TrimSuffix(move.Code, "#")
		} else if strings.HasSuffix(move.Code, "+") {
			move.IsCheck = true
			move.Code = strings.TrimSuffix(move.Code, "+")
		}
		if !looksLikeMoveCode(move.Code) {
			continue
		}
		pv.Moves = append(pv.Moves, move)
	}
	return pv
}

// looksLikeMoveCode checks the 4-5 character from-to[-promotion] shape.
func looksLikeMoveCode(code string) bool {
	if len(code) < 4 || len(code) > 5 {
		return false
	}
	if code[0] < 'a' || code[0] > 'h' || code[2] < 'a' || code[2] > 'h' {
		return false
	}
	if code[1] < '1' || code[1] > '8' || code[3] < '1' || code[3] > '8' {
		return false
	}
	if len(code) == 5 {
		switch code[4] {
		case 'q', 'r', 'b', 'n':
		default:
			return false
		}
	}
	return true
}

// First returns the first move of the line, if any.
func (pv PVLine) First() (PVMove, bool) {
	if len(pv.Moves) == 0 {
		return PVMove{}, false
	}
	return pv.Moves[0], true
}

// IsPerpetualCheck reports whether the line looks like a perpetual: most of
// its plies by the moving side are checks and some check-and-reply pair
// repeats within it. A lone recurring mover move is not enough, since the
// defender may be answering differently each time.
func (pv PVLine) IsPerpetualCheck() bool {
	if len(pv.Moves) < 4 {
		return false
	}

	// The mover plays plies 0, 2, 4, ...
	moverPlies := 0
	checking := 0
	seen := make(map[string]int)
	repeats := false
	for i := 0; i < len(pv.Moves); i += 2 {
		moverPlies++
		if pv.Moves[i].IsCheck {
			checking++
		}
		if i+1 < len(pv.Moves) {
			pair := pv.Moves[i].Code + " " + pv.Moves[i+1].Code
			seen[pair]++
			if seen[pair] >= 2 {
				repeats = true
			}
		}
	}
	return moverPlies >= 2 && checking*2 > moverPlies && repeats
}
