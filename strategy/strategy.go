// Package strategy extracts a concrete memoryless "stay in trap"
// strategy for White from an already-solved trap, for demos and
// interactive play. Preferences only break ties among replies that are
// already known to stay inside the trap — they never affect trap
// membership itself. Grounded on
// original_source/search/strategy.rs::extract_white_stay_strategy.
package strategy

import (
	"infinitechess/graph"
	"infinitechess/resource"
	"infinitechess/scenario"
	"infinitechess/searcherr"
	"infinitechess/trapsolver"
)

// Solve builds a map from every white-to-move node reachable from a
// trap member to a chosen black-to-move successor that stays inside
// trap. A W-node with no trap-staying reply is omitted; that should
// never happen for a W-node reached from a B-node that trapsolver kept,
// since trapsolver only keeps B-nodes whose every W-successor has at
// least one such reply.
func Solve(s *scenario.Scenario, g *graph.Graph, trap *trapsolver.Trap, tracker *resource.Tracker) (map[graph.WIndex]graph.BIndex, *searcherr.SearchError) {
	out := make(map[graph.WIndex]graph.BIndex)

	for bi, b := range g.BNodes {
		if !trap.Contains(graph.BIndex(bi)) {
			continue
		}
		if err := tracker.BumpSteps(searcherr.StageTrapFixpoint, 1); err != nil {
			return nil, err
		}

		for _, wi := range b.OutW {
			if _, done := out[wi]; done {
				continue
			}
			w := g.WNodes[wi]

			var stay []graph.BIndex
			for _, replyIdx := range w.OutB {
				if trap.Contains(replyIdx) {
					stay = append(stay, replyIdx)
				}
			}
			if len(stay) == 0 {
				continue
			}

			options := make([]scenario.State, len(stay))
			for i, replyIdx := range stay {
				options[i] = g.BNodes[replyIdx].State
			}
			ranking := s.Preferences.RankWhiteMoves(w.State, options)

			choice := stay[0]
			for _, idx := range ranking {
				if idx >= 0 && idx < len(stay) {
					choice = stay[idx]
					break
				}
			}
			out[wi] = choice
		}
	}

	return out, nil
}
