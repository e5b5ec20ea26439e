package rules

import (
	"testing"

	"infinitechess/board"

	"github.com/stretchr/testify/assert"
)

func threeRooksRules() *Rules {
	layout := board.NewPieceLayout(false, 0, 3, 0, 0)
	return &Rules{Layout: layout, MoveBound: 1, MoveBoundMode: MoveBoundInclusive, AllowCaptures: true}
}

func twoRooksRules() *Rules {
	layout := board.NewPieceLayout(false, 0, 2, 0, 0)
	return &Rules{Layout: layout, MoveBound: 7, MoveBoundMode: MoveBoundInclusive, AllowCaptures: true}
}

func TestRules_ThreeRooksHas48CheckmatesInLinfBound2(t *testing.T) {
	r := threeRooksRules()
	positions := EnumeratePositionsInBound(r.Layout, 2, true)

	count := 0
	for _, p := range positions {
		if r.IsCheckmate(p) {
			count++
		}
	}
	assert.Equal(t, 48, count)
}

func TestRules_TwoRooksHasNoCheckmateEvenInLinfBound7(t *testing.T) {
	r := twoRooksRules()
	positions := EnumeratePositionsInBound(r.Layout, 7, true)

	count := 0
	for _, p := range positions {
		if r.IsCheckmate(p) {
			count++
		}
	}
	assert.Equal(t, 0, count)
}

func TestRules_WhiteKingCannotBeAdjacentToBlackKing(t *testing.T) {
	layout := board.NewPieceLayout(true, 0, 1, 0, 0)
	r := &Rules{Layout: layout, MoveBound: 1, MoveBoundMode: MoveBoundInclusive}

	adjacent := board.NewPosition([]board.Square{
		board.FromCoord(board.NewCoord(1, 0)),
		board.FromCoord(board.NewCoord(3, 3)),
	})
	assert.False(t, r.IsLegalPosition(adjacent))

	notAdjacent := board.NewPosition([]board.Square{
		board.FromCoord(board.NewCoord(2, 2)),
		board.FromCoord(board.NewCoord(3, 3)),
	})
	assert.True(t, r.IsLegalPosition(notAdjacent))
}

func TestRules_SliderBlockedByOrigin(t *testing.T) {
	layout := board.NewPieceLayout(false, 0, 1, 0, 0)
	r := &Rules{Layout: layout, MoveBound: 5, MoveBoundMode: MoveBoundInclusive}

	pos := board.NewPosition([]board.Square{board.FromCoord(board.NewCoord(-2, 0))})
	moves := r.WhiteMoves(pos, false)
	for _, m := range moves {
		assert.NotEqual(t, board.FromCoord(board.Origin), m.Squares[0])
		// the rook may not slide past the origin to positive X squares
		assert.False(t, m.Squares[0].Coord().X > 0 && m.Squares[0].Coord().Y == 0)
	}
}

func TestRules_MoveBoundExclusiveIsStrictlyShorter(t *testing.T) {
	layout := board.NewPieceLayout(false, 0, 1, 0, 0)
	inclusive := &Rules{Layout: layout, MoveBound: 3, MoveBoundMode: MoveBoundInclusive}
	exclusive := &Rules{Layout: layout, MoveBound: 3, MoveBoundMode: MoveBoundExclusive}

	pos := board.NewPosition([]board.Square{board.FromCoord(board.NewCoord(5, 5))})
	assert.Greater(t, len(inclusive.WhiteMoves(pos, false)), len(exclusive.WhiteMoves(pos, false)))
}

func TestRules_SelfCheckMoveIsIllegal(t *testing.T) {
	r := threeRooksRules()
	// A single rook at (0,3): black king stepping to a square still
	// attacked by the rook along the same rank/file must be excluded.
	layout := board.NewPieceLayout(false, 0, 1, 0, 0)
	r.Layout = layout
	pos := board.NewPosition([]board.Square{board.FromCoord(board.NewCoord(0, 3))})
	moves := r.BlackMoves(pos)
	for _, m := range moves {
		assert.False(t, r.IsAttacked(board.Origin, m))
	}
}
