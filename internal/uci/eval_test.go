package uci

import (
	stderrors "errors"
	"testing"

	"chess-tactics/internal/errors"
)

func TestParseEvaluation(t *testing.T) {
	tests := []struct {
		input  string
		pawns  float64
		mate   int
		isMate bool
	}{
		{"+1.50", 1.5, 0, false},
		{"-0.75", -0.75, 0, false},
		{"1.50", 1.5, 0, false},
		{"0.00", 0, 0, false},
		{"Mate in 3", 0, 3, true},
		{"mate in -2", 0, -2, true},
		{"  +0.25  ", 0.25, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEvaluation(tt.input)
			if err != nil {
				t.Fatalf("ParseEvaluation(%q) error: %v", tt.input, err)
			}
			if got.Pawns != tt.pawns || got.Mate != tt.mate || got.IsMate != tt.isMate {
				t.Errorf("got %+v, want pawns=%v mate=%d isMate=%v", got, tt.pawns, tt.mate, tt.isMate)
			}
		})
	}
}

func TestParseEvaluationInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "Mate in x", "1.2.3"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseEvaluation(input); !stderrors.Is(err, errors.ErrInvalidEvaluation) {
				t.Errorf("ParseEvaluation(%q) error = %v, want ErrInvalidEvaluation", input, err)
			}
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		eval Evaluation
		want float64
	}{
		{"material score", Evaluation{Pawns: 1.5}, 1.5},
		{"mate for the mover beats material", Evaluation{Mate: 3, IsMate: true}, 997},
		{"mate against the mover", Evaluation{Mate: -2, IsMate: true}, -998},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.eval.Score(); got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFavorsMoverAndLosing(t *testing.T) {
	eval := Evaluation{Pawns: 1.2}
	if !eval.FavorsMover(1.0) || eval.FavorsMover(2.0) {
		t.Error("FavorsMover threshold handling is off")
	}

	bad := Evaluation{Pawns: -0.9}
	if !bad.Losing(0.7) || bad.Losing(1.0) {
		t.Error("Losing threshold handling is off")
	}

	mate := Evaluation{Mate: 1, IsMate: true}
	if !mate.FavorsMover(5.0) {
		t.Error("a mate for the mover favours it at any threshold")
	}
}

func TestEvaluationString(t *testing.T) {
	if got := (Evaluation{Pawns: 1.5}).String(); got != "+1.50" {
		t.Errorf("String() = %q, want +1.50", got)
	}
	if got := (Evaluation{Mate: 3, IsMate: true}).String(); got != "Mate in 3" {
		t.Errorf("String() = %q, want Mate in 3", got)
	}
}
