package graph

import (
	"infinitechess/board"
	"infinitechess/resource"
	"infinitechess/scenario"
	"infinitechess/searcherr"
)

// moveCache memoizes movegen results per scenario.CacheMode, evicting
// arbitrary entries to stay under the resource tracker's cache limits
// rather than failing the build outright — grounded on
// original_source/search/trap.rs::MoveCache's evict_to_fit/evict_one.
type moveCache struct {
	mode  scenario.CacheMode
	black map[scenario.State][]scenario.State
	white map[scenario.State][]scenario.State
}

func newMoveCache(mode scenario.CacheMode) *moveCache {
	return &moveCache{
		mode:  mode,
		black: make(map[scenario.State][]scenario.State),
		white: make(map[scenario.State][]scenario.State),
	}
}

// blackMoves enumerates st's legal black-king steps, re-anchoring each
// successor's AbsKing by the step's delta (AbsKing.Add(delta)) the way
// matesolver.Solve does — a black king step moves the absolute king,
// so a cached mapping keyed only on the resulting position would freeze
// AbsKing at the parent's value and break any BoxDomain/TrackAbsKing
// scenario relying on it.
func (c *moveCache) blackMoves(s *scenario.Scenario, st scenario.State, tracker *resource.Tracker) ([]scenario.State, *searcherr.SearchError) {
	if c.mode != scenario.CacheNone {
		if cached, ok := c.black[st]; ok {
			return cached, nil
		}
	}
	var out []scenario.State
	for _, delta := range board.KingSteps {
		next, ok := s.Rules.BlackMoveTo(st.Pos, delta)
		if !ok {
			continue
		}
		out = append(out, scenario.State{AbsKing: st.AbsKing.Add(delta), Pos: next})
	}
	if c.mode != scenario.CacheNone {
		if err := c.store(c.black, st, out, tracker); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *moveCache) whiteMoves(s *scenario.Scenario, st scenario.State, allowPass bool, tracker *resource.Tracker) ([]scenario.State, *searcherr.SearchError) {
	if c.mode == scenario.CacheBothBounded {
		if cached, ok := c.white[st]; ok {
			return cached, nil
		}
	}
	positions := s.Rules.WhiteMoves(st.Pos, allowPass)
	out := statesFromPositions(st.AbsKing, positions)
	if c.mode == scenario.CacheBothBounded {
		if err := c.store(c.white, st, out, tracker); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func statesFromPositions(absKing board.Coord, positions []board.Position) []scenario.State {
	out := make([]scenario.State, len(positions))
	for i, p := range positions {
		out[i] = scenario.State{AbsKing: absKing, Pos: p}
	}
	return out
}

func (c *moveCache) store(m map[scenario.State][]scenario.State, key scenario.State, moves []scenario.State, tracker *resource.Tracker) *searcherr.SearchError {
	limits := tracker.Limits()
	for limits.MaxCacheEntries > 0 && tracker.Snapshot().CacheEntries >= limits.MaxCacheEntries && len(m) > 0 {
		n := evictOne(m)
		tracker.DecCacheEntries(1)
		tracker.DecCachedMoves(uint64(n))
	}
	for limits.MaxCachedMoves > 0 && tracker.Snapshot().CachedMoves+uint64(len(moves)) > limits.MaxCachedMoves && len(m) > 0 {
		n := evictOne(m)
		tracker.DecCacheEntries(1)
		tracker.DecCachedMoves(uint64(n))
	}

	m[key] = moves
	if err := tracker.BumpCacheEntries(searcherr.StageBuildGraph, 1); err != nil {
		return err
	}
	if err := tracker.BumpCachedMoves(searcherr.StageBuildGraph, uint64(len(moves))); err != nil {
		return err
	}
	return nil
}

func evictOne(m map[scenario.State][]scenario.State) int {
	for k, v := range m {
		delete(m, k)
		return len(v)
	}
	return 0
}
