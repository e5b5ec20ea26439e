package board

import "golang.org/x/exp/slices"

// MaxPieces bounds how many white pieces a Position can hold.
const MaxPieces = 16

// Position holds the king-relative squares of every white piece under a
// fixed PieceLayout. A captured piece's slot holds NoneSquare rather
// than being removed, so slot indices stay aligned with the layout.
type Position struct {
	Squares [MaxPieces]Square
	Count   uint8
}

// NewPosition builds a Position from a slice of squares, one per layout
// slot. Extra capacity beyond len(squares) is filled with NoneSquare.
func NewPosition(squares []Square) Position {
	var p Position
	p.Count = uint8(len(squares))
	copy(p.Squares[:], squares)
	for i := len(squares); i < MaxPieces; i++ {
		p.Squares[i] = NoneSquare
	}
	return p
}

// Copy returns an independent copy of p.
func (p Position) Copy() Position {
	return p
}

// IsOccupied reports whether any present piece sits on sq.
func (p *Position) IsOccupied(sq Square) bool {
	for i := 0; i < int(p.Count); i++ {
		if p.Squares[i] == sq {
			return true
		}
	}
	return false
}

// IsOccupiedExcept is IsOccupied but ignores the piece at slot except.
func (p *Position) IsOccupiedExcept(sq Square, except int) bool {
	for i := 0; i < int(p.Count); i++ {
		if i == except {
			continue
		}
		if p.Squares[i] == sq {
			return true
		}
	}
	return false
}

// IterPresent calls fn for every present (non-captured) piece slot.
func (p *Position) IterPresent(fn func(index int, sq Square)) {
	for i := 0; i < int(p.Count); i++ {
		if !p.Squares[i].IsNone() {
			fn(i, p.Squares[i])
		}
	}
}

// Canonicalize sorts the squares within each identical-piece-kind run so
// that permutations of interchangeable pieces collapse to one
// representative Position, with captured (NoneSquare) slots sinking to
// the end of their run. This is the sole normal form the solvers key
// their state maps on.
func (p *Position) Canonicalize(layout *PieceLayout) {
	for _, run := range layout.Runs() {
		slice := p.Squares[run.Start:run.End]
		slices.SortFunc(slice, func(a, b Square) int {
			switch {
			case a == b:
				return 0
			case a.Less(b):
				return -1
			default:
				return 1
			}
		})
	}
}

// Equal reports whether p and other hold identical squares in identical
// slots. Both sides must already be canonicalized under the same layout
// for this to mean "same position" rather than "same slot assignment".
func (p Position) Equal(other Position) bool {
	if p.Count != other.Count {
		return false
	}
	for i := 0; i < int(p.Count); i++ {
		if p.Squares[i] != other.Squares[i] {
			return false
		}
	}
	return true
}
