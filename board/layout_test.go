package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceLayout_RunsGroupIdenticalPieces(t *testing.T) {
	// K R R R B B -> three runs: [0,1) king, [1,4) rooks, [4,6) bishops.
	layout := NewPieceLayout(true, 0, 3, 2, 0)

	runs := layout.Runs()
	assert.Len(t, runs, 3)
	assert.Equal(t, Run{Start: 0, End: 1}, runs[0])
	assert.Equal(t, Run{Start: 1, End: 4}, runs[1])
	assert.Equal(t, Run{Start: 4, End: 6}, runs[2])
}

func TestPieceLayout_KingFirstThenQRBN(t *testing.T) {
	layout := NewPieceLayout(true, 1, 1, 1, 1)
	assert.Equal(t, []PieceKind{King, Queen, Rook, Bishop, Knight}, layout.Kinds)
}

func TestPieceLayout_NoKing(t *testing.T) {
	layout := NewPieceLayout(false, 0, 3, 0, 0)
	assert.False(t, layout.HasWhiteKing())
	assert.Equal(t, "RRR", layout.PieceSummary())
}
