// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"fmt"
	"strings"
)

// pvFlags collects repeated -pv arguments.
type pvFlags []string

func (p *pvFlags) String() string {
	return strings.Join(*p, "; ")
}

func (p *pvFlags) Set(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("empty pv line")
	}
	*p = append(*p, value)
	return nil
}

var (
	// Position and move
	fenFlag  = flag.String("fen", "", "Position before the move in FEN")
	moveFlag = flag.String("move", "", "Move in coordinate notation (e.g. e2e4, e7e8q)")

	// Optional engine data
	evalBefore  = flag.String("eval", "", "Engine evaluation before the move (+1.50, Mate in 3)")
	evalAfter   = flag.String("post-eval", "", "Engine evaluation after the move")
	bestMove    = flag.String("best", "", "Engine's preferred move in the position")
	forcedReply = flag.Bool("forced", false, "Mark the move as the only legal move")
	pvLines     pvFlags

	// Mode and output
	defenseMode = flag.Bool("defense", false, "Explain what the move defends instead of what it attacks")
	showSEE     = flag.Bool("see", false, "Print the static exchange value of the capture")
	workers     = flag.Int("workers", 0, "Worker goroutines for batch input (0 = number of CPUs)")
	verbose     = flag.Bool("v", false, "Enable debug logging of detector activity")
	version     = flag.Bool("version", false, "Print version and exit")
	help        = flag.Bool("help", false, "Show usage information")
)

func init() {
	flag.Var(&pvLines, "pv", "Principal variation after the move (repeatable)")
}
