// Package analysis is the top-level entry point for explaining chess moves.
// It turns raw position and engine-output strings into short human-readable
// tactical explanations, hiding board setup, scratch-board pooling and
// detector ordering from callers.
package analysis

import (
	"context"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"chess-tactics/internal/engine"
	"chess-tactics/internal/errors"
	"chess-tactics/internal/pool"
	"chess-tactics/internal/tactics"
	"chess-tactics/internal/uci"
)

// Config controls an Analyzer. The zero value is usable: defaults are
// filled in by New.
type Config struct {
	// Thresholds tunes the tactical detectors. Zero value means defaults.
	Thresholds tactics.Thresholds

	// Logger receives per-detector debug output. Defaults to a no-op logger.
	Logger zerolog.Logger

	// Workers bounds concurrent positions in ExplainAll. Defaults to
	// runtime.GOMAXPROCS(0).
	Workers int
}

// Request describes one move to explain. FEN and Move are required; the
// engine fields are optional and unlock the evaluation-aware detectors.
type Request struct {
	// FEN is the position before the move.
	FEN string

	// Move is the move in coordinate notation, e.g. "e2e4" or "e7e8q".
	Move string

	// EvalBefore and EvalAfter are engine evaluations such as "+1.50" or
	// "Mate in 3", from the mover's point of view. Empty means unknown.
	EvalBefore string
	EvalAfter  string

	// PVs holds principal variation lines from the post-move position.
	PVs []string

	// BestMove is the engine's preferred move in the position, if known.
	BestMove string

	// ForcedReply marks the move as the only legal one.
	ForcedReply bool
}

// Report is the outcome of explaining one move.
type Report struct {
	// Reasons holds at most two short explanation strings, strongest first.
	Reasons []string

	// Verdict is the material classification of the move, if it is a
	// capture or sacrifice.
	Verdict tactics.Verdict

	// SEE is the static exchange value of the move when HasSEE is true.
	SEE    int
	HasSEE bool
}

// Analyzer explains moves. It is safe for concurrent use.
type Analyzer struct {
	cfg  Config
	pool *pool.BoardPool
}

// New builds an Analyzer, filling defaults for unset Config fields.
func New(cfg Config) *Analyzer {
	if cfg.Thresholds == (tactics.Thresholds{}) {
		cfg.Thresholds = tactics.DefaultThresholds()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return &Analyzer{cfg: cfg, pool: pool.New()}
}

// Explain analyses one move. Malformed input never produces an error or a
// panic: it degrades to an empty Report.
func (a *Analyzer) Explain(req Request) Report {
	e, err := a.build(req)
	if err != nil {
		a.cfg.Logger.Debug().Err(err).Str("fen", req.FEN).Str("move", req.Move).
			Msg("explain: unusable input")
		return Report{}
	}

	var rep Report
	findings := e.Explain()
	for _, f := range findings {
		rep.Reasons = append(rep.Reasons, f.Description)
	}
	rep.Verdict = e.ClassifyCapture()
	rep.SEE, rep.HasSEE = e.SEE()
	return rep
}

// ExplainDefense analyses a defensive move, reporting what it parries
// rather than what it attacks.
func (a *Analyzer) ExplainDefense(req Request) Report {
	e, err := a.build(req)
	if err != nil {
		a.cfg.Logger.Debug().Err(err).Str("fen", req.FEN).Str("move", req.Move).
			Msg("explain defense: unusable input")
		return Report{}
	}

	var rep Report
	for _, f := range e.AnalyzeDefenses() {
		rep.Reasons = append(rep.Reasons, f.Description)
	}
	rep.SEE, rep.HasSEE = e.SEE()
	return rep
}

// ExplainAll analyses a batch of moves concurrently, preserving input
// order in the result slice. It stops early only if ctx is cancelled.
func (a *Analyzer) ExplainAll(ctx context.Context, reqs []Request) ([]Report, error) {
	reports := make([]Report, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = a.Explain(req)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// build translates a Request into a ready Explainer.
func (a *Analyzer) build(req Request) (*tactics.Explainer, error) {
	board, err := engine.NewBoardFromFEN(req.FEN)
	if err != nil {
		return nil, &errors.AnalysisError{Err: err, FEN: req.FEN, MoveText: req.Move}
	}
	move, err := engine.ParseMoveCode(board, strings.TrimSpace(req.Move))
	if err != nil {
		return nil, &errors.AnalysisError{Err: err, FEN: req.FEN, MoveText: req.Move}
	}

	e := tactics.NewExplainer(board, move)
	e.Thresholds = a.cfg.Thresholds
	e.Pool = a.pool
	e.Logger = a.cfg.Logger
	e.BestMove = req.BestMove
	e.ForcedReply = req.ForcedReply

	if req.EvalBefore != "" {
		if ev, err := uci.ParseEvaluation(req.EvalBefore); err == nil {
			e.EvalBefore = &ev
		}
	}
	if req.EvalAfter != "" {
		if ev, err := uci.ParseEvaluation(req.EvalAfter); err == nil {
			e.EvalAfter = &ev
		}
	}
	for _, raw := range req.PVs {
		if line := uci.ParsePV(raw); len(line.Moves) > 0 {
			e.PVs = append(e.PVs, line)
		}
	}
	return e, nil
}
