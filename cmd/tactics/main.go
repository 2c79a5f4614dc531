// tactics explains chess moves: given a position, a move and optional engine
// output, it prints up to two short tactical reasons and a material verdict.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"chess-tactics/internal/analysis"
	"chess-tactics/internal/tactics"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("tactics version %s\n", programVersion)
		os.Exit(0)
	}

	analyzer := analysis.New(analysis.Config{
		Logger:  setupLogger(),
		Workers: *workers,
	})

	if *fenFlag != "" && *moveFlag != "" {
		explainOne(analyzer)
		return
	}

	explainBatch(analyzer)
}

// setupLogger builds the debug logger. Without -v all detector chatter is
// discarded.
func setupLogger() zerolog.Logger {
	if !*verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// explainOne analyses the single move given on the command line.
func explainOne(analyzer *analysis.Analyzer) {
	req := analysis.Request{
		FEN:         *fenFlag,
		Move:        *moveFlag,
		EvalBefore:  *evalBefore,
		EvalAfter:   *evalAfter,
		PVs:         pvLines,
		BestMove:    *bestMove,
		ForcedReply: *forcedReply,
	}

	var rep analysis.Report
	if *defenseMode {
		rep = analyzer.ExplainDefense(req)
	} else {
		rep = analyzer.Explain(req)
	}

	printReport(*moveFlag, rep)
}

// explainBatch reads tab-separated lines from stdin, one move per line:
// FEN, move, and optionally eval and post-eval. Lines starting with # are
// skipped.
func explainBatch(analyzer *analysis.Analyzer) {
	var reqs []analysis.Request
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		req, ok := parseBatchLine(line)
		if !ok {
			fmt.Fprintf(os.Stderr, "Skipping malformed line: %s\n", line)
			continue
		}
		reqs = append(reqs, req)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	reports, err := analyzer.ExplainAll(context.Background(), reqs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analysing input: %v\n", err)
		os.Exit(1)
	}

	for i, rep := range reports {
		printReport(reqs[i].Move, rep)
	}
}

// parseBatchLine splits one tab-separated input line into a Request. The
// first two fields are required.
func parseBatchLine(line string) (analysis.Request, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
		return analysis.Request{}, false
	}
	req := analysis.Request{FEN: fields[0], Move: fields[1]}
	if len(fields) > 2 {
		req.EvalBefore = fields[2]
	}
	if len(fields) > 3 {
		req.EvalAfter = fields[3]
	}
	return req, true
}

// printReport writes one move's explanation to stdout.
func printReport(move string, rep analysis.Report) {
	if len(rep.Reasons) == 0 {
		fmt.Printf("%s: no explanation\n", move)
		return
	}
	fmt.Printf("%s: %s\n", move, strings.Join(rep.Reasons, "; "))
	if rep.Verdict.Classification != tactics.NoClassification {
		fmt.Printf("  verdict: %s\n", rep.Verdict.Text)
	}
	if *showSEE && rep.HasSEE {
		fmt.Printf("  see: %+d\n", rep.SEE)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: tactics -fen FEN -move MOVE [options]\n")
	fmt.Fprintf(os.Stderr, "       tactics [options] < moves.tsv\n\n")
	fmt.Fprintf(os.Stderr, "Explains chess moves in plain language.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nBatch input is tab-separated, one move per line:\n")
	fmt.Fprintf(os.Stderr, "  FEN<TAB>move[<TAB>eval[<TAB>post-eval]]\n")
}
