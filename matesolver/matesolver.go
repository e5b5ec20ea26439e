// Package matesolver computes a bounded forced-mate winning region: the
// black-to-move states from which White can force checkmate in finitely
// many plies, plus (optionally) distance-to-mate. Grounded on
// original_source/search/forced_mate.rs, adapted to this module's own
// scenario/graph vocabulary but kept as a self-contained bounded-universe
// solve rather than routed through the graph package, since "leaving the
// universe" has to be observable at movegen time here.
package matesolver

import (
	"infinitechess/board"
	"infinitechess/candidates"
	"infinitechess/resource"
	"infinitechess/scenario"
	"infinitechess/searcherr"
	"infinitechess/xslices"

	"github.com/rs/zerolog/log"
)

const infDTM = ^uint32(0)

// Result holds the winning black-to-move region and, if requested, a
// distance-to-mate value (in plies) for every state in it.
type Result struct {
	WinningBTM map[scenario.State]bool
	DTM        map[scenario.State]uint32
}

// Solve computes the forced-mate winning region inside s's InAbsBox
// universe. computeDTM additionally fills Result.DTM.
func Solve(s *scenario.Scenario, tracker *resource.Tracker, computeDTM bool) (*Result, *searcherr.SearchError) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Candidates.Mode != scenario.ModeInAbsBox {
		return nil, searcherr.InvalidScenario("matesolver.Solve requires candidates=InAbsBox")
	}

	universe := buildUniverse(s)
	if err := tracker.BumpStates(searcherr.StageForcedMate, uint64(len(universe))); err != nil {
		return nil, err
	}

	idx := make(map[scenario.State]int, len(universe))
	for i, st := range universe {
		idx[st] = i
	}
	n := len(universe)

	bwSucc := make([][]int, n)
	wbSucc := make([][]int, n)
	blackHasEscape := make([]bool, n)

	for i, st := range universe {
		if err := tracker.BumpSteps(searcherr.StageForcedMate, 1); err != nil {
			return nil, err
		}

		var bOut []int
		for _, delta := range board.KingSteps {
			next, ok := s.Rules.BlackMoveTo(st.Pos, delta)
			if !ok {
				continue
			}
			wSt := scenario.State{AbsKing: st.AbsKing.Add(delta), Pos: next}
			if !s.Laws.AllowBlackMove(st, wSt, delta) {
				continue
			}
			j, in := idx[wSt]
			if !in {
				blackHasEscape[i] = true
				continue
			}
			bOut = append(bOut, j)
		}
		bwSucc[i] = xslices.Dedup(bOut)

		allowPass := s.WhiteCanPass && s.Laws.AllowPass(st)
		var wOut []int
		for _, bPos := range s.Rules.WhiteMoves(st.Pos, allowPass) {
			bSt := scenario.State{AbsKing: st.AbsKing, Pos: bPos}
			if !s.Laws.AllowWhiteMove(st, bSt) {
				continue
			}
			if j, in := idx[bSt]; in {
				wOut = append(wOut, j)
			}
		}
		wbSucc[i] = xslices.Dedup(wOut)
	}

	predBOfW := make([][]int, n)
	predWOfB := make([][]int, n)
	for bi := range bwSucc {
		for _, wi := range bwSucc[bi] {
			predBOfW[wi] = append(predBOfW[wi], bi)
		}
	}
	for wi := range wbSucc {
		for _, bi := range wbSucc[wi] {
			predWOfB[bi] = append(predWOfB[bi], wi)
		}
	}

	isMate := make([]bool, n)
	winB := make([]bool, n)
	winW := make([]bool, n)
	remainingNonwinWSucc := make([]int, n)
	for bi := range universe {
		remainingNonwinWSucc[bi] = len(bwSucc[bi])
		if blackHasEscape[bi] {
			remainingNonwinWSucc[bi]++
		}
	}

	type node struct {
		isBlack bool
		idx     int
	}
	var queue []node
	for bi := range universe {
		if blackHasEscape[bi] || len(bwSucc[bi]) > 0 {
			continue
		}
		if s.Rules.IsAttacked(board.Origin, universe[bi].Pos) {
			isMate[bi] = true
			winB[bi] = true
			queue = append(queue, node{true, bi})
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if err := tracker.BumpSteps(searcherr.StageForcedMate, 1); err != nil {
			return nil, err
		}

		if cur.isBlack {
			for _, wi := range predWOfB[cur.idx] {
				if winW[wi] {
					continue
				}
				winW[wi] = true
				queue = append(queue, node{false, wi})
			}
			continue
		}

		for _, bi := range predBOfW[cur.idx] {
			if winB[bi] {
				continue
			}
			if remainingNonwinWSucc[bi] > 0 {
				remainingNonwinWSucc[bi]--
			}
			if remainingNonwinWSucc[bi] == 0 && len(bwSucc[bi]) > 0 {
				winB[bi] = true
				queue = append(queue, node{true, bi})
			}
		}
	}

	result := &Result{WinningBTM: make(map[scenario.State]bool)}
	for bi := range universe {
		if winB[bi] {
			result.WinningBTM[universe[bi]] = true
		}
	}

	if computeDTM {
		dtm, err := computeDTMLayers(tracker, universe, bwSucc, wbSucc, winB, winW, isMate, s)
		if err != nil {
			return nil, err
		}
		result.DTM = dtm
	}

	log.Debug().Msgf("forced mate solved for scenario %q: %d/%d black nodes winning", s.Name, len(result.WinningBTM), n)
	return result, nil
}

func buildUniverse(s *scenario.Scenario) []scenario.State {
	raw := candidates.EnumerateAbsBox(s.Rules.Layout, s.Candidates.Bound, s.Candidates.AllowCaptures)
	out := make([]scenario.State, 0, len(raw))
	for _, st := range raw {
		if !s.Rules.IsLegalPosition(st.Pos) {
			continue
		}
		if !s.Laws.AllowState(st) {
			continue
		}
		if !s.Domain.Inside(st) {
			continue
		}
		out = append(out, st)
	}
	return out
}

func computeDTMLayers(tracker *resource.Tracker, universe []scenario.State, bwSucc, wbSucc [][]int, winB, winW, isMate []bool, s *scenario.Scenario) (map[scenario.State]uint32, *searcherr.SearchError) {
	n := len(universe)
	dtmB := make([]uint32, n)
	dtmW := make([]uint32, n)
	for i := range dtmB {
		dtmB[i] = infDTM
		dtmW[i] = infDTM
	}
	for bi := range universe {
		if winB[bi] && isMate[bi] {
			dtmB[bi] = 0
		}
	}

	for {
		if err := tracker.BumpSteps(searcherr.StageForcedMate, 1); err != nil {
			return nil, err
		}
		changed := false

		for wi := range wbSucc {
			if !winW[wi] {
				continue
			}
			best := infDTM
			for _, bi := range wbSucc[wi] {
				if !winB[bi] {
					continue
				}
				if dtmB[bi] < best {
					best = dtmB[bi]
				}
			}
			cand := infDTM
			if best != infDTM {
				cand = best + 1
			}
			if cand < dtmW[wi] {
				dtmW[wi] = cand
				changed = true
			}
		}

		for bi := range bwSucc {
			if !winB[bi] || isMate[bi] {
				continue
			}
			if len(bwSucc[bi]) == 0 {
				return nil, searcherr.InvalidState("winning non-mate black node has no in-universe moves", nil)
			}
			var maxV uint32
			for _, wi := range bwSucc[bi] {
				if !winW[wi] {
					return nil, searcherr.InvalidState("winning black node has a non-winning white successor", nil)
				}
				v := dtmW[wi]
				if v == infDTM {
					maxV = infDTM
					break
				}
				if v > maxV {
					maxV = v
				}
			}
			cand := infDTM
			if maxV != infDTM {
				cand = maxV + 1
			}
			if cand < dtmB[bi] {
				dtmB[bi] = cand
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	out := make(map[scenario.State]uint32, n)
	for bi := range universe {
		if !winB[bi] {
			continue
		}
		v := dtmB[bi]
		if v == infDTM {
			return nil, searcherr.InvalidState("distance-to-mate did not converge for a winning node", nil)
		}
		out[universe[bi]] = v
	}

	for st, d := range out {
		if d == 0 && !s.Rules.IsAttacked(board.Origin, st.Pos) {
			return nil, searcherr.InvalidState("distance-to-mate map contains a depth-0 node that is not in check", nil)
		}
	}

	return out, nil
}
