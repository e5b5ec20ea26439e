package graph

import (
	"testing"

	"infinitechess/candidates"
	"infinitechess/resource"
	"infinitechess/scenarios"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ThreeRooksProducesNonEmptyGraph(t *testing.T) {
	s := scenarios.ThreeRooksBound2MoveBound1()
	tracker := resource.NewTracker(s.Limits)

	seeds, cerr := candidates.Generate(s, tracker)
	require.Nil(t, cerr)
	require.NotEmpty(t, seeds)

	g, gerr := Build(s, seeds, tracker)
	require.Nil(t, gerr)
	assert.NotEmpty(t, g.BNodes)
	assert.NotEmpty(t, g.WNodes)

	for _, seed := range seeds {
		_, ok := g.IndexOfB(seed)
		assert.True(t, ok)
	}
}

func TestBuild_PassEdgeReachesSameStateAsBNode(t *testing.T) {
	s := scenarios.ThreeRooksBound2MoveBound1()
	tracker := resource.NewTracker(s.Limits)
	seeds, cerr := candidates.Generate(s, tracker)
	require.Nil(t, cerr)

	g, gerr := Build(s, seeds, tracker)
	require.Nil(t, gerr)

	foundPass := false
	for _, w := range g.WNodes {
		if w.PassTarget != NoBIndex {
			foundPass = true
			target := g.BNodes[w.PassTarget]
			assert.Equal(t, w.State, target.State)
		}
	}
	assert.True(t, foundPass, "white_can_pass=true scenario should produce at least one pass edge")
}
