// Command endgamedemo runs the solver pipeline against one of the
// built-in scenarios and prints a short summary, the trimmed-down
// descendant of the teacher's main.go/main2.go experiment runners
// (stripped of the MCTS-vs-MCTS game loop and speedup-experiment
// machinery, which belonged to a different domain entirely).
package main

import (
	"flag"
	"fmt"
	"os"

	"infinitechess/logsetup"
	"infinitechess/scenario"
	"infinitechess/scenarios"
	"infinitechess/solve"

	"github.com/rs/zerolog/log"
)

func main() {
	name := flag.String("scenario", "three_rooks", "which built-in scenario to solve: three_rooks, two_rooks, or single_queen")
	level := flag.String("log-level", "info", "zerolog level: debug, info, warn, error")
	flag.Parse()

	logsetup.Init(*level)

	s, opts, err := pickScenario(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	result, serr := solve.Solve(s, opts...)
	if serr != nil {
		log.Error().Err(serr).Msg("solve failed")
		os.Exit(1)
	}

	fmt.Printf("scenario %q: %d black nodes, %d white nodes\n", s.Name, len(result.Graph.BNodes), len(result.Graph.WNodes))
	fmt.Printf("inescapable trap: %d states\n", result.Trap.Size())
	if result.Tempo != nil {
		fmt.Printf("tempo trap: %d states\n", result.Tempo.Size())
	}
	if result.ForcedMate != nil {
		fmt.Printf("forced mate winning region: %d states\n", len(result.ForcedMate.WinningBTM))
	}
	if result.Strategy != nil {
		fmt.Printf("stay-in-trap strategy: %d white-to-move nodes covered\n", len(result.Strategy))
	}
}

func pickScenario(name string) (*scenario.Scenario, []solve.Option, error) {
	switch name {
	case "three_rooks":
		return scenarios.ThreeRooksBound2MoveBound1(), []solve.Option{solve.WithTempo(), solve.WithStrategy()}, nil
	case "two_rooks":
		return scenarios.TwoRooksBound7(), nil, nil
	case "single_queen":
		return scenarios.SingleQueenMateInOne(), []solve.Option{solve.WithForcedMate(), solve.WithDistanceToMate()}, nil
	default:
		return nil, nil, fmt.Errorf("unknown scenario %q", name)
	}
}
