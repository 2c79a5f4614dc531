package tactics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAnalyzeDefensesBlocksCheck(t *testing.T) {
	// The bishop interposes on e6 against the e1 rook's check.
	e := newTestExplainer(t, "2b1k3/8/8/8/8/8/8/4R1K1 b - - 0 1", "c8e6")
	findings := e.AnalyzeDefenses()

	want := []string{"escapes the check", "blocks the check"}
	if diff := cmp.Diff(want, descriptions(findings)); diff != "" {
		t.Errorf("AnalyzeDefenses mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeDefensesEscape(t *testing.T) {
	// The knight on d5 is attacked by the c4 pawn and jumps clear.
	e := newTestExplainer(t, "6k1/8/8/3n4/2P5/8/8/6K1 b - - 0 1", "d5e7")
	findings := e.AnalyzeDefenses()
	assertHasFinding(t, findings, "moves the knight to safety")
}

func TestAnalyzeDefensesStopsMateThreat(t *testing.T) {
	// Before h6 the a1 rook mates on a8; afterwards the king has air.
	e := newTestExplainer(t, "6k1/5ppp/8/8/8/8/8/R5K1 b - - 0 1", "h7h6")
	findings := e.AnalyzeDefenses()
	assertHasFinding(t, findings, "stops the mate threat")
}

func TestAnalyzeDefensesNewDefender(t *testing.T) {
	// The d5 knight is attacked once and defended by nobody until the
	// rook swings to h5.
	e := newTestExplainer(t, "3r2k1/8/8/3N4/8/8/8/6KR w - - 0 1", "h1h5")
	findings := e.AnalyzeDefenses()
	assertHasFinding(t, findings, "defends the knight")
}

func TestAnalyzeDefensesKingSafety(t *testing.T) {
	// Taking the h3 queen clears every attacked square around the king.
	e := newTestExplainer(t, "1k5R/8/8/8/8/7q/8/6K1 w - - 0 1", "h8h3")
	findings := e.AnalyzeDefenses()
	assertHasFinding(t, findings, "improves king safety")
}

func TestAnalyzeDefensesQuietMove(t *testing.T) {
	// Nothing was threatened, so nothing defensive is reported.
	e := newTestExplainer(t, "4k3/8/8/8/8/8/P7/4K3 w - - 0 1", "a2a3")
	if findings := e.AnalyzeDefenses(); len(findings) != 0 {
		t.Errorf("AnalyzeDefenses = %v, want none", descriptions(findings))
	}
}

func TestAnalyzeDefensesAtMostTwoReasons(t *testing.T) {
	e := newTestExplainer(t, "2b1k3/8/8/8/8/8/8/4R1K1 b - - 0 1", "c8e6")
	if findings := e.AnalyzeDefenses(); len(findings) > MaxReasons {
		t.Errorf("got %d findings, want at most %d", len(findings), MaxReasons)
	}
}
