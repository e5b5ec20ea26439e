// Package candidates produces the seed set of black-to-move states a
// search starts from, dispatching on a scenario.CandidateGeneration mode
// the way original_source/search/trap.rs::initial_candidate_set and
// search/universe.rs do.
package candidates

import (
	"infinitechess/board"
	"infinitechess/resource"
	"infinitechess/rules"
	"infinitechess/scenario"
	"infinitechess/searcherr"
)

// Generate dispatches on s.Candidates.Mode and returns the resulting
// seed set of black-to-move states, already filtered by Rules legality,
// Laws, Domain and (if set) RemoveStalemates.
func Generate(s *scenario.Scenario, tracker *resource.Tracker) ([]scenario.State, *searcherr.SearchError) {
	switch s.Candidates.Mode {
	case scenario.ModeInLinfBound:
		return generateInLinfBound(s, tracker)
	case scenario.ModeInAbsBox:
		return generateInAbsBox(s, tracker)
	case scenario.ModeFromStates:
		return generateFromStates(s, tracker)
	case scenario.ModeReachableFromStart:
		return generateReachableFromStart(s, tracker)
	default:
		return nil, searcherr.Unsupported("unknown candidate generation mode")
	}
}

func acceptCandidate(s *scenario.Scenario, st scenario.State) bool {
	if !s.Rules.IsLegalPosition(st.Pos) {
		return false
	}
	if !s.Laws.AllowState(st) {
		return false
	}
	if !s.Domain.Inside(st) {
		return false
	}
	if s.RemoveStalemates && s.Rules.IsStalemate(st.Pos) {
		return false
	}
	return true
}

func generateInLinfBound(s *scenario.Scenario, tracker *resource.Tracker) ([]scenario.State, *searcherr.SearchError) {
	positions := rules.EnumeratePositionsInBound(s.Rules.Layout, s.Candidates.Bound, s.Candidates.AllowCaptures)
	out := make([]scenario.State, 0, len(positions))
	for _, pos := range positions {
		st := scenario.State{AbsKing: board.Origin, Pos: pos}
		if !acceptCandidate(s, st) {
			continue
		}
		if err := tracker.BumpStates(searcherr.StageEnumerate, 1); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// EnumerateAbsBox lists every (absKing, canonical position) pair in the
// box [-bound,bound]^2, converting absolute piece squares to the
// king-relative frame before handing them to rules.EnumeratePlacements —
// grounded on original_source/search/universe.rs's
// for_each_state_in_abs_box.
func EnumerateAbsBox(layout *board.PieceLayout, bound int32, allowCaptures bool) []scenario.State {
	var out []scenario.State
	for x := -bound; x <= bound; x++ {
		for y := -bound; y <= bound; y++ {
			absKing := board.NewCoord(x, y)
			relSquares := relativeSquaresInBox(bound, absKing)
			for _, pos := range rules.EnumeratePlacements(layout, relSquares, allowCaptures) {
				out = append(out, scenario.State{AbsKing: absKing, Pos: pos})
			}
		}
	}
	return out
}

func relativeSquaresInBox(bound int32, absKing board.Coord) []board.Coord {
	out := make([]board.Coord, 0, int((2*bound+1)*(2*bound+1)))
	for x := -bound; x <= bound; x++ {
		for y := -bound; y <= bound; y++ {
			abs := board.NewCoord(x, y)
			if abs == absKing {
				continue
			}
			out = append(out, abs.Sub(absKing))
		}
	}
	return out
}

func generateInAbsBox(s *scenario.Scenario, tracker *resource.Tracker) ([]scenario.State, *searcherr.SearchError) {
	states := EnumerateAbsBox(s.Rules.Layout, s.Candidates.Bound, s.Candidates.AllowCaptures)
	out := make([]scenario.State, 0, len(states))
	for _, st := range states {
		if !acceptCandidate(s, st) {
			continue
		}
		if err := tracker.BumpStates(searcherr.StageEnumerate, 1); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func generateFromStates(s *scenario.Scenario, tracker *resource.Tracker) ([]scenario.State, *searcherr.SearchError) {
	out := make([]scenario.State, 0, len(s.Candidates.States))
	for _, raw := range s.Candidates.States {
		if !s.TrackAbsKing && raw.AbsKing != board.Origin {
			return nil, searcherr.InvalidScenario("FromStates entry has a non-origin abs_king but track_abs_king is false")
		}
		pos := raw.Pos
		pos.Canonicalize(s.Rules.Layout)
		st := scenario.State{AbsKing: raw.AbsKing, Pos: pos}
		if !acceptCandidate(s, st) {
			continue
		}
		if err := tracker.BumpStates(searcherr.StageEnumerate, 1); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// generateReachableFromStart does a bounded BFS over black-to-move
// states two plies apart (a black move followed by a white reply),
// capped by Candidates.MaxQueue — grounded on
// original_source/search/trap.rs::try_add_reachable_b.
func generateReachableFromStart(s *scenario.Scenario, tracker *resource.Tracker) ([]scenario.State, *searcherr.SearchError) {
	start := s.Start.State
	start.Pos.Canonicalize(s.Rules.Layout)

	visited := map[scenario.State]bool{start: true}
	queue := []scenario.State{start}
	var out []scenario.State

	if acceptCandidate(s, start) {
		out = append(out, start)
	}
	if err := tracker.BumpStates(searcherr.StageEnumerate, 1); err != nil {
		return nil, err
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, delta := range board.KingSteps {
			wPos, ok := s.Rules.BlackMoveTo(cur.Pos, delta)
			if !ok {
				continue
			}
			wState := scenario.State{AbsKing: cur.AbsKing.Add(delta), Pos: wPos}
			if !s.Laws.AllowBlackMove(cur, wState, delta) {
				continue
			}
			allowPass := s.WhiteCanPass && s.Laws.AllowPass(wState)
			for _, bPos := range s.Rules.WhiteMoves(wPos, allowPass) {
				bState := scenario.State{AbsKing: wState.AbsKing, Pos: bPos}
				if !s.Laws.AllowWhiteMove(wState, bState) {
					continue
				}
				if visited[bState] {
					continue
				}
				visited[bState] = true
				if err := tracker.BumpStates(searcherr.StageEnumerate, 1); err != nil {
					return nil, err
				}
				if acceptCandidate(s, bState) {
					out = append(out, bState)
				}
				queue = append(queue, bState)
				if s.Candidates.MaxQueue > 0 && len(queue) > s.Candidates.MaxQueue {
					return nil, searcherr.LimitExceeded(searcherr.StageEnumerate, searcherr.MetricStates, uint64(s.Candidates.MaxQueue), uint64(len(queue)), tracker.Snapshot())
				}
			}
		}
	}
	return out, nil
}
