package matesolver

import (
	"testing"

	"infinitechess/board"
	"infinitechess/resource"
	"infinitechess/scenario"
	"infinitechess/scenarios"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_RejectsNonAbsBoxCandidates(t *testing.T) {
	s := scenarios.ThreeRooksBound2MoveBound1() // ModeInLinfBound
	tracker := resource.NewTracker(s.Limits)

	_, err := Solve(s, tracker, false)
	require.NotNil(t, err)
	assert.Equal(t, "invalid_scenario", string(err.Kind))
}

func TestSolve_ThreeRooksInSmallAbsBoxHasSomeForcedMates(t *testing.T) {
	s := scenarios.ThreeRooksAbsBox2()
	tracker := resource.NewTracker(s.Limits)

	result, err := Solve(s, tracker, true)
	require.Nil(t, err)
	assert.NotEmpty(t, result.WinningBTM)

	require.NotNil(t, result.DTM)
	var mateTerminals []scenario.State
	for st, d := range result.DTM {
		if d == 0 {
			mateTerminals = append(mateTerminals, st)
		}
	}
	require.NotEmpty(t, mateTerminals)

	for _, st := range mateTerminals {
		assert.True(t, s.Rules.IsAttacked(board.Origin, st.Pos))
		assert.Empty(t, s.Rules.BlackMoves(st.Pos))
	}
}

func TestSolve_TwoRooksHasNoForcedMateRegionInSmallAbsBox(t *testing.T) {
	s := scenarios.TwoRooksAbsBox2()
	tracker := resource.NewTracker(s.Limits)

	result, err := Solve(s, tracker, false)
	require.Nil(t, err)
	assert.Empty(t, result.WinningBTM)
}

func TestSolve_WinningRegionIsClosedUnderOptimalReplies(t *testing.T) {
	s := scenarios.ThreeRooksAbsBox2()
	tracker := resource.NewTracker(s.Limits)

	result, err := Solve(s, tracker, false)
	require.Nil(t, err)

	universe := make(map[scenario.State]bool)
	for _, st := range buildUniverse(s) {
		universe[st] = true
	}

	for b := range result.WinningBTM {
		for _, delta := range board.KingSteps {
			next, ok := s.Rules.BlackMoveTo(b.Pos, delta)
			if !ok {
				continue
			}
			w := scenario.State{AbsKing: b.AbsKing.Add(delta), Pos: next}
			require.True(t, universe[w], "winning black node has an escape move")

			hasReply := false
			for _, bPos := range s.Rules.WhiteMoves(w.Pos, false) {
				reply := scenario.State{AbsKing: w.AbsKing, Pos: bPos}
				if universe[reply] && result.WinningBTM[reply] {
					hasReply = true
					break
				}
			}
			assert.True(t, hasReply, "missing winning reply from a white node")
		}
	}
}
