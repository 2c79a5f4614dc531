package tactics

import (
	"github.com/rs/zerolog"

	"chess-tactics/internal/chess"
	"chess-tactics/internal/engine"
	"chess-tactics/internal/pool"
	"chess-tactics/internal/uci"
)

// Explainer runs the detector battery over a single analysed move. All
// fields are read-only during Explain; the only mutable state is scratch
// boards rented from the pool, so independent Explainers may run in
// parallel.
type Explainer struct {
	Board  *chess.Board // position before the move
	Post   *chess.Board // position after the move
	Move   *chess.Move
	Colour chess.Colour // the mover

	EvalBefore *uci.Evaluation
	EvalAfter  *uci.Evaluation
	PVs        []uci.PVLine

	// ForcedReply marks a move the caller knows was the only legal reply
	// (supplied data; this core does not enumerate legal moves).
	ForcedReply bool

	// BestMove is the engine's preferred move code, when known.
	BestMove string

	Thresholds Thresholds
	Pool       *pool.BoardPool
	Logger     zerolog.Logger

	seeValue  int
	seeCached bool
}

// NewExplainer builds an Explainer for a move on a board, computing the
// post-move position. Optional inputs (evaluations, PV lines) are set on
// the returned value before calling Explain.
func NewExplainer(board *chess.Board, move *chess.Move) *Explainer {
	return &Explainer{
		Board:      board,
		Post:       engine.ApplyToCopy(board, move),
		Move:       move,
		Colour:     move.Colour(),
		Thresholds: DefaultThresholds(),
		Pool:       pool.New(),
		Logger:     zerolog.Nop(),
	}
}

// detector ties a name to one pattern check for logging and recovery.
type detector struct {
	name string
	run  func() *Finding
}

// battery returns the detectors in their fixed priority order. The order is
// load-bearing: earlier findings suppress later, less specific ones.
func (e *Explainer) battery() []detector {
	return []detector{
		{"forced-move", e.detectForcedMove},
		{"capture-gain", e.detectCaptureGain},
		{"threat", e.detectThreat},
		{"double-check", e.detectDoubleCheck},
		{"discovered-attack", e.detectDiscoveredAttack},
		{"pin", e.detectPin},
		{"skewer", e.detectSkewer},
		{"fork", e.detectFork},
		{"removal-of-defender", e.detectRemovalOfDefender},
		{"overloading", e.detectOverloading},
		{"trapped-piece", e.detectTrappedPiece},
		{"hanging-piece", e.detectHangingPiece},
		{"back-rank", e.detectBackRank},
		{"promotion", e.detectPromotionThreat},
		{"smothered-mate", e.detectSmotheredMate},
		{"x-ray", e.detectXRay},
		{"double-attack", e.detectDoubleAttack},
		{"decoy", e.detectDecoy},
		{"perpetual-check", e.detectPerpetualCheck},
		{"plain-check", e.detectPlainCheck},
	}
}

// Explain runs the battery in priority order, keeps the first MaxReasons
// distinct findings, and falls back to evaluation-derived text when nothing
// fires. It never fails: malformed positions yield generic findings.
func (e *Explainer) Explain() []Finding {
	var findings []Finding
	seen := make(map[string]bool)
	for _, d := range e.battery() {
		if len(findings) >= MaxReasons {
			break
		}
		f := e.runDetector(d)
		if f == nil || seen[f.Description] {
			continue
		}
		seen[f.Description] = true
		findings = append(findings, *f)
	}
	if len(findings) == 0 {
		findings = append(findings, e.evaluationFallback())
	}
	return findings
}

// runDetector invokes one detector, containing any panic inside it. A
// failing detector resolves to "no finding" and the analysis continues.
func (e *Explainer) runDetector(d detector) (f *Finding) {
	defer func() {
		if r := recover(); r != nil {
			e.Logger.Debug().Str("detector", d.name).Interface("panic", r).
				Msg("detector failed; treating as no finding")
			f = nil
		}
	}()
	f = d.run()
	if f != nil {
		e.Logger.Debug().Str("detector", d.name).Str("finding", f.Description).Msg("detector fired")
	}
	return f
}

// SEE returns the static exchange value of the analysed move's capture,
// computed once. Non-captures report ok=false.
func (e *Explainer) SEE() (int, bool) {
	if !e.Move.IsCapture() {
		return 0, false
	}
	if !e.seeCached {
		e.seeValue = engine.ExchangeValue(e.Pool, e.Board, e.Move)
		e.seeCached = true
	}
	return e.seeValue, true
}

// enemy is the side the analysed move plays against.
func (e *Explainer) enemy() chess.Colour {
	return e.Colour.Opposite()
}

// arriving returns the coloured piece standing on the destination square
// after the move (the promotion piece for promotions).
func (e *Explainer) arriving() chess.Piece {
	return chess.MakeColouredPiece(e.Colour, e.Move.ArrivingPiece())
}

// winnable reports whether capturing the enemy piece on the given square of
// the post-move board actually gains material: either it is undefended, or
// the full exchange initiated by the mover's cheapest attacker comes out
// positive. Defended-and-losing targets are not winnable.
func (e *Explainer) winnable(col chess.Col, rank chess.Rank) bool {
	target := e.Post.Get(col, rank)
	if !chess.IsColour(target, e.enemy()) {
		return false
	}
	if engine.CountDefenders(e.Post, col, rank) == 0 &&
		engine.CountAttackers(e.Post, col, rank, e.Colour) > 0 {
		return true
	}
	a, ok := engine.LeastValuableAttacker(e.Post, col, rank, e.Colour)
	if !ok {
		return false
	}
	return engine.EvaluateExchange(e.Pool, e.Post, col, rank, a.Piece, a.Col, a.Rank) > 0
}

// evaluationFallback derives a generic reason from the supplied evaluation
// when no tactical pattern fired.
func (e *Explainer) evaluationFallback() Finding {
	if e.BestMove != "" && e.Move != nil && e.BestMove == e.Move.Text {
		return Finding{Description: "engine's top choice", Importance: 1, Category: CategoryEvaluation}
	}
	if e.EvalAfter == nil {
		return Finding{Description: "solid move", Importance: 0, Category: CategoryEvaluation}
	}
	eval := *e.EvalAfter
	switch {
	case eval.IsMate && eval.Mate >= 0:
		return Finding{Description: "forces mate", Importance: 9, Category: CategoryEvaluation}
	case eval.IsMate:
		return Finding{Description: "delays the mate threat", Importance: 1, Category: CategoryEvaluation}
	case eval.FavorsMover(e.Thresholds.Decisive):
		return Finding{Description: "keeps a winning advantage", Importance: 3, Category: CategoryEvaluation}
	case eval.FavorsMover(e.Thresholds.BadPosition):
		return Finding{Description: "keeps a clear edge", Importance: 2, Category: CategoryEvaluation}
	case eval.Losing(e.Thresholds.BadPosition):
		return Finding{Description: "best practical try", Importance: 1, Category: CategoryEvaluation}
	default:
		return Finding{Description: "maintains the balance", Importance: 1, Category: CategoryEvaluation}
	}
}
