package buchi

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

// TestSolve_SanityGamePrefersAcceptingLoopOverPlainSafety builds the two
// smallest possible inescapable traps by hand: B0 has a reply (W0) that
// passes back to B0 itself, so B0 can be revisited forever with a pass
// available — the tempo trap should keep it. B1's reply (W1) is also a
// safe self-loop, but W1 never has a pass move, so White can stall
// safely there but never gains tempo — the tempo trap should drop it.
func TestSolve_SanityGamePrefersAcceptingLoopOverPlainSafety(t *testing.T) {
	g := &graph.Graph{
		BNodes: []graph.BNode{
			{OutW: []graph.WIndex{0}, InDomain: true},
			{OutW: []graph.WIndex{1}, InDomain: true},
		},
		WNodes: []graph.WNode{
			{OutB: []graph.BIndex{0}, InDomain: true, PassTarget: 0},
			{OutB: []graph.BIndex{1}, InDomain: true, PassTarget: graph.NoBIndex},
		},
	}
	tracker := resource.NewTracker(resource.Limits{})

	trap, terr := trapsolver.Solve(g, tracker)
	require.Nil(t, terr)
	require.True(t, trap.Contains(0))
	require.True(t, trap.Contains(1))

	tempo, berr := Solve(g, trap, tracker)
	require.Nil(t, berr)
	assert.True(t, tempo.Contains(0), "B0's accepting self-loop should survive into the tempo trap")
	assert.False(t, tempo.Contains(1), "B1's non-accepting self-loop should not")
}

func TestSolve_ThreeRooksTempoTrapHas113Members(t *testing.T) {
	s := scenarios.ThreeRooksBound2MoveBound1()
	tracker := resource.NewTracker(s.Limits)

	seeds, cerr := candidates.Generate(s, tracker)
	require.Nil(t, cerr)

	g, gerr := graph.Build(s, seeds, tracker)
	require.Nil(t, gerr)

	trap, terr := trapsolver.Solve(g, tracker)
	require.Nil(t, terr)

	tempo, berr := Solve(g, trap, tracker)
	require.Nil(t, berr)
	assert.Equal(t, 113, tempo.Size())
}

func TestSolve_TempoTrapIsSubsetOfInescapableTrap(t *testing.T) {
	s := scenarios.ThreeRooksBound2MoveBound1()
	tracker := resource.NewTracker(s.Limits)

	seeds, cerr := candidates.Generate(s, tracker)
	require.Nil(t, cerr)
	g, gerr := graph.Build(s, seeds, tracker)
	require.Nil(t, gerr)

	trap, terr := trapsolver.Solve(g, tracker)
	require.Nil(t, terr)
	tempo, berr := Solve(g, trap, tracker)
	require.Nil(t, berr)

	for bi := range g.BNodes {
		if tempo.Contains(graph.BIndex(bi)) {
			assert.True(t, trap.Contains(graph.BIndex(bi)))
		}
	}
}
