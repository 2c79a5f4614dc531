package uci

import (
	"testing"

	"chess-tactics/internal/testutil"
)

func TestParsePV(t *testing.T) {
	pv := ParsePV("e2e4+ d7d5 f3g5# (+2.10)")

	testutil.AssertEqual(t, pv.Moves, []PVMove{
		{Code: "e2e4", IsCheck: true},
		{Code: "d7d5"},
		{Code: "f3g5", IsCheck: true, IsMate: true},
	})
	if pv.Eval == nil || pv.Eval.Pawns != 2.1 {
		t.Errorf("Eval = %+v, want +2.10", pv.Eval)
	}
}

func TestParsePVSkipsJunk(t *testing.T) {
	pv := ParsePV("e2e4 bestmove ... 99z9 e7e5")
	if len(pv.Moves) != 2 {
		t.Fatalf("got %d moves %v, want the 2 real ones", len(pv.Moves), pv.Moves)
	}
	if pv.Moves[0].Code != "e2e4" || pv.Moves[1].Code != "e7e5" {
		t.Errorf("moves = %v, want e2e4 e7e5", pv.Moves)
	}
}

func TestParsePVPromotionSuffix(t *testing.T) {
	pv := ParsePV("e7e8q b8c6")
	if len(pv.Moves) != 2 || pv.Moves[0].Code != "e7e8q" {
		t.Fatalf("promotion codes must parse: %v", pv.Moves)
	}

	if got := ParsePV("e7e8x"); len(got.Moves) != 0 {
		t.Errorf("bad promotion letter accepted: %v", got.Moves)
	}
}

func TestParsePVEmpty(t *testing.T) {
	pv := ParsePV("")
	if len(pv.Moves) != 0 || pv.Eval != nil {
		t.Errorf("empty line should yield an empty PV, got %+v", pv)
	}
	if _, ok := pv.First(); ok {
		t.Error("First on an empty PV should report no move")
	}
}

func TestIsPerpetualCheck(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{
			"repeating checks",
			"d1h5+ g8f8 h5f7+ f8g8 f7h5+ g8f8 h5f7+ f8g8 f7h5+",
			true,
		},
		{
			"checks without repetition",
			"d1h5+ g8f8 h5e2+ f8g8 e2a6+",
			false,
		},
		{
			"same checks, different replies",
			"d1h5+ g8f8 h5d1+ f8e8 d1h5+ e8f8 h5d1+",
			false,
		},
		{
			"quiet line",
			"e2e4 e7e5 g1f3 b8c6",
			false,
		},
		{
			"too short",
			"d1h5+ g8f8",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pv := ParsePV(tt.line)
			if got := pv.IsPerpetualCheck(); got != tt.want {
				t.Errorf("IsPerpetualCheck = %v, want %v", got, tt.want)
			}
		})
	}
}
