package tactics

// Thresholds collects every tunable cutoff the detectors and the classifier
// use. They are heuristics, not laws of chess; tests probe their boundaries
// by injecting custom values.
type Thresholds struct {
	// Decisive is the pawn advantage at which a position counts as already
	// decisively winning (brilliancy is off the table past this point).
	Decisive float64

	// BadPosition is the pawn disadvantage past which the mover's position
	// counts as losing.
	BadPosition float64

	// SacrificeMaterial is the minimum material deficit (in pawns of SEE)
	// for a capture to count as a sacrifice rather than a misjudged trade.
	SacrificeMaterial int

	// PinGainMin is the minimum exploitable gain for a relative pin to be
	// worth reporting when the shielded piece is defended.
	PinGainMin int

	// ForkTargetMin is the minimum piece value of a fork target.
	ForkTargetMin int

	// KingZoneDanger is the number of attacked squares around the king at
	// which a reduction counts as a king-safety improvement.
	KingZoneDanger int
}

// DefaultThresholds returns the standard cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Decisive:          2.0,
		BadPosition:       0.70,
		SacrificeMaterial: 2,
		PinGainMin:        4,
		ForkTargetMin:     3,
		KingZoneDanger:    2,
	}
}
