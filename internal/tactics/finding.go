// Package tactics contains the detector battery, defense analyzer,
// sacrifice classifier and explanation composer. Every detector is a pure
// function of the pre- and post-move boards built on the engine primitives;
// none of them walks rays or enumerates moves on its own.
package tactics

// Category classifies what kind of observation a finding is.
type Category int

const (
	CategoryNone Category = iota
	CategoryForced
	CategoryMaterial
	CategoryThreat
	CategoryCheck
	CategoryDiscovered
	CategoryPin
	CategorySkewer
	CategoryFork
	CategoryDefenderRemoval
	CategoryTrap
	CategoryPattern
	CategoryPromotion
	CategoryPerpetual
	CategoryDefense
	CategoryEvaluation
)

// String returns the category name.
func (c Category) String() string {
	names := []string{
		"none", "forced", "material", "threat", "check", "discovered",
		"pin", "skewer", "fork", "defender-removal", "trap", "pattern",
		"promotion", "perpetual", "defense", "evaluation",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

// Finding is a single justification for a move: a short human-readable
// description plus an importance used for ordering and deduplication.
type Finding struct {
	Description string
	Importance  int
	Category    Category
}

// MaxReasons is how many findings the composer surfaces per move.
const MaxReasons = 2

// dedupe removes findings whose description already appeared, keeping the
// first (highest-priority) occurrence.
func dedupe(findings []Finding) []Finding {
	seen := make(map[string]bool, len(findings))
	out := findings[:0]
	for _, f := range findings {
		if seen[f.Description] {
			continue
		}
		seen[f.Description] = true
		out = append(out, f)
	}
	return out
}
