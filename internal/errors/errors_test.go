package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(ErrInvalidFEN, "empty FEN string")
	if !stderrors.Is(err, ErrInvalidFEN) {
		t.Errorf("wrapped error does not match sentinel: %v", err)
	}
	if got := err.Error(); got != "empty FEN string: invalid FEN string" {
		t.Errorf("Error() = %q", got)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrInvalidMove, "move code %q", "zz")
	if !stderrors.Is(err, ErrInvalidMove) {
		t.Errorf("wrapped error does not match sentinel: %v", err)
	}
	if !strings.Contains(err.Error(), `move code "zz"`) {
		t.Errorf("Error() = %q, want the formatted context", err.Error())
	}

	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}
}

func TestAnalysisError(t *testing.T) {
	err := &AnalysisError{
		Err:      ErrNoPiece,
		FEN:      "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		MoveText: "a1a2",
	}

	if !stderrors.Is(err, ErrNoPiece) {
		t.Errorf("AnalysisError does not unwrap to its sentinel: %v", err)
	}
	msg := err.Error()
	for _, want := range []string{`move "a1a2"`, "no piece on source square", "position"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}

	var ae *AnalysisError
	if !stderrors.As(err, &ae) || ae.MoveText != "a1a2" {
		t.Error("errors.As should recover the AnalysisError")
	}
}

func TestAnalysisErrorWithoutContext(t *testing.T) {
	if got := (&AnalysisError{}).Error(); got != "analysis error" {
		t.Errorf("empty AnalysisError.Error() = %q", got)
	}
	if got := (&AnalysisError{Err: ErrInvalidFEN}).Error(); got != "invalid FEN string" {
		t.Errorf("Error() = %q", got)
	}
}
