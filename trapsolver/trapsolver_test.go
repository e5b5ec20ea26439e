package trapsolver

import (
	"testing"

	"infinitechess/candidates"
	"infinitechess/graph"
	"infinitechess/resource"
	"infinitechess/scenarios"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildThreeRooksGraph(t *testing.T) *graph.Graph {
	t.Helper()
	s := scenarios.ThreeRooksBound2MoveBound1()
	tracker := resource.NewTracker(s.Limits)

	seeds, cerr := candidates.Generate(s, tracker)
	require.Nil(t, cerr)

	g, gerr := graph.Build(s, seeds, tracker)
	require.Nil(t, gerr)
	return g
}

func TestSolve_ThreeRooksTrapHas169Members(t *testing.T) {
	g := buildThreeRooksGraph(t)
	tracker := resource.NewTracker(resource.Limits{})

	trap, err := Solve(g, tracker)
	require.Nil(t, err)
	assert.Equal(t, 169, trap.Size())
}

func TestSolve_CheckmatesHaveNoOutgoingMovesAndAreExcluded(t *testing.T) {
	g := buildThreeRooksGraph(t)
	tracker := resource.NewTracker(resource.Limits{})

	trap, err := Solve(g, tracker)
	require.Nil(t, err)

	for bi, b := range g.BNodes {
		if len(b.OutW) == 0 {
			assert.False(t, trap.Contains(graph.BIndex(bi)), "checkmated black nodes have no black moves and cannot be in the trap")
		}
	}
}

func TestSolve_IsIdempotentOnAlreadySolvedGraph(t *testing.T) {
	g := buildThreeRooksGraph(t)
	tracker := resource.NewTracker(resource.Limits{})

	trap1, err := Solve(g, tracker)
	require.Nil(t, err)
	trap2, err := Solve(g, tracker)
	require.Nil(t, err)

	assert.Equal(t, trap1.Size(), trap2.Size())
}
