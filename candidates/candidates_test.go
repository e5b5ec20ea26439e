package candidates

import (
	"testing"

	"infinitechess/resource"
	"infinitechess/scenario"
	"infinitechess/scenarios"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_InLinfBoundExcludesStalematesWhenRequested(t *testing.T) {
	s := scenarios.ThreeRooksBound2MoveBound1()
	tracker := resource.NewTracker(s.Limits)

	states, err := Generate(s, tracker)
	require.Nil(t, err)
	require.NotEmpty(t, states)

	for _, st := range states {
		assert.False(t, s.Rules.IsStalemate(st.Pos))
	}
}

func TestGenerate_ReachableFromStartRespectsMaxQueue(t *testing.T) {
	s := scenarios.ThreeRooksBound2MoveBound1()
	s.Candidates.Mode = scenario.ModeReachableFromStart
	s.Candidates.MaxQueue = 1
	tracker := resource.NewTracker(s.Limits)

	_, err := Generate(s, tracker)
	require.NotNil(t, err)
}
