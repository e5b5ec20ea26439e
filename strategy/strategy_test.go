package strategy

import (
	"testing"

	"infinitechess/candidates"
	"infinitechess/graph"
	"infinitechess/resource"
	"infinitechess/scenarios"
	"infinitechess/trapsolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_EveryChosenReplyStaysInTrap(t *testing.T) {
	s := scenarios.ThreeRooksBound2MoveBound1()
	tracker := resource.NewTracker(s.Limits)

	seeds, cerr := candidates.Generate(s, tracker)
	require.Nil(t, cerr)
	g, gerr := graph.Build(s, seeds, tracker)
	require.Nil(t, gerr)
	trap, terr := trapsolver.Solve(g, tracker)
	require.Nil(t, terr)

	strat, serr := Solve(s, g, trap, tracker)
	require.Nil(t, serr)
	assert.NotEmpty(t, strat)

	for wi, chosen := range strat {
		assert.True(t, trap.Contains(chosen))
		found := false
		for _, replyIdx := range g.WNodes[wi].OutB {
			if replyIdx == chosen {
				found = true
				break
			}
		}
		assert.True(t, found, "chosen reply must be an actual successor of the white-to-move node")
	}
}

func TestSolve_CoversEveryWNodeReachableFromTrap(t *testing.T) {
	s := scenarios.ThreeRooksBound2MoveBound1()
	tracker := resource.NewTracker(s.Limits)

	seeds, cerr := candidates.Generate(s, tracker)
	require.Nil(t, cerr)
	g, gerr := graph.Build(s, seeds, tracker)
	require.Nil(t, gerr)
	trap, terr := trapsolver.Solve(g, tracker)
	require.Nil(t, terr)

	strat, serr := Solve(s, g, trap, tracker)
	require.Nil(t, serr)

	for bi, b := range g.BNodes {
		if !trap.Contains(graph.BIndex(bi)) {
			continue
		}
		for _, wi := range b.OutW {
			_, ok := strat[wi]
			assert.True(t, ok, "every white-to-move node reachable from a trap member should have a chosen reply")
		}
	}
}
