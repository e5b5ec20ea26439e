package solve

import (
	"testing"

	"infinitechess/graph"
	"infinitechess/scenarios"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_ThreeRooksTrapAndTempoMatchKnownResults(t *testing.T) {
	s := scenarios.ThreeRooksBound2MoveBound1()

	result, err := Solve(s, WithTempo(), WithStrategy())
	require.Nil(t, err)

	assert.Equal(t, 169, result.Trap.Size())
	assert.Equal(t, 113, result.Tempo.Size())
	assert.NotEmpty(t, result.Strategy)
	assert.Nil(t, result.ForcedMate)
}

func TestSolve_TwoRooksTrapContainsNoCheckmates(t *testing.T) {
	s := scenarios.TwoRooksBound7()

	result, err := Solve(s)
	require.Nil(t, err)

	for bi, b := range result.Graph.BNodes {
		if result.Trap.Contains(graph.BIndex(bi)) {
			assert.False(t, s.Rules.IsCheckmate(b.State.Pos), "two rooks alone can never force checkmate, so no trap member should be one")
		}
	}
}

func TestSolve_ForcedMateRequiresAbsBoxCandidates(t *testing.T) {
	s := scenarios.ThreeRooksBound2MoveBound1() // ModeInLinfBound

	_, err := Solve(s, WithForcedMate())
	require.NotNil(t, err)
	assert.Equal(t, "invalid_scenario", string(err.Kind))
}

func TestSolve_KingAndQueenForcedMateWithDistanceToMate(t *testing.T) {
	s := scenarios.SingleQueenMateInOne()

	result, err := Solve(s, WithForcedMate(), WithDistanceToMate())
	require.Nil(t, err)
	require.NotNil(t, result.ForcedMate)
	assert.NotEmpty(t, result.ForcedMate.WinningBTM)
	assert.NotNil(t, result.ForcedMate.DTM)
}
