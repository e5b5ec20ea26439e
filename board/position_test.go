package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_CanonicalizeIsIdempotent(t *testing.T) {
	layout := NewPieceLayout(false, 0, 3, 0, 0)
	p := NewPosition([]Square{
		FromCoord(NewCoord(2, -2)),
		FromCoord(NewCoord(-2, 2)),
		FromCoord(NewCoord(2, 2)),
	})

	p.Canonicalize(layout)
	once := p

	p.Canonicalize(layout)
	assert.True(t, once.Equal(p))
}

func TestPosition_CanonicalizeCollapsesPermutations(t *testing.T) {
	layout := NewPieceLayout(false, 0, 3, 0, 0)

	a := NewPosition([]Square{
		FromCoord(NewCoord(2, 2)),
		FromCoord(NewCoord(-2, 2)),
		FromCoord(NewCoord(2, -2)),
	})
	b := NewPosition([]Square{
		FromCoord(NewCoord(-2, 2)),
		FromCoord(NewCoord(2, -2)),
		FromCoord(NewCoord(2, 2)),
	})

	a.Canonicalize(layout)
	b.Canonicalize(layout)

	assert.True(t, a.Equal(b))
}

func TestPosition_CanonicalizeSinksCapturedSquares(t *testing.T) {
	layout := NewPieceLayout(false, 0, 3, 0, 0)
	p := NewPosition([]Square{
		NoneSquare,
		FromCoord(NewCoord(1, 1)),
		FromCoord(NewCoord(2, 2)),
	})

	p.Canonicalize(layout)

	assert.False(t, p.Squares[0].IsNone())
	assert.False(t, p.Squares[1].IsNone())
	assert.True(t, p.Squares[2].IsNone())
}

func TestSquare_ShiftedNegRoundTrip(t *testing.T) {
	sq := FromCoord(NewCoord(3, -1))
	delta := NewCoord(1, 1)

	shifted := sq.ShiftedNeg(delta)
	assert.Equal(t, NewCoord(2, -2), shifted.Coord())

	back := shifted.Shifted(delta)
	assert.Equal(t, sq, back)
}

func TestSquare_NoneStaysNoneThroughShifts(t *testing.T) {
	assert.True(t, NoneSquare.Shifted(NewCoord(1, 1)).IsNone())
	assert.True(t, NoneSquare.ShiftedNeg(NewCoord(1, 1)).IsNone())
}
