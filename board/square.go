package board

import "math"

// Square packs a Coord into a single comparable int64: the high 32 bits
// hold X, the low 32 bits hold Y. NoneSquare marks a captured slot.
type Square int64

// NoneSquare is the sentinel value for a captured (absent) piece.
const NoneSquare Square = Square(math.MinInt64)

// FromCoord packs a Coord into a Square.
func FromCoord(c Coord) Square {
	return Square((int64(c.X) << 32) | int64(uint32(c.Y)))
}

// Coord unpacks a Square back into a Coord. Calling this on NoneSquare
// is a programmer error.
func (s Square) Coord() Coord {
	if s == NoneSquare {
		panic("board: Coord() called on NoneSquare")
	}
	v := int64(s)
	return Coord{X: int32(v >> 32), Y: int32(uint32(v))}
}

// IsNone reports whether s represents a captured piece.
func (s Square) IsNone() bool {
	return s == NoneSquare
}

// Shifted returns the square obtained by adding delta to s's coordinate.
// NoneSquare shifted by anything stays NoneSquare.
func (s Square) Shifted(delta Coord) Square {
	if s.IsNone() {
		return NoneSquare
	}
	return FromCoord(s.Coord().Add(delta))
}

// ShiftedNeg is Shifted(delta.Neg()), the operation applied to every
// piece when the black king takes a step (the board recentres on the
// king's new position).
func (s Square) ShiftedNeg(delta Coord) Square {
	if s.IsNone() {
		return NoneSquare
	}
	return FromCoord(s.Coord().Sub(delta))
}

// Less orders squares for canonical-form sorting: NoneSquare sorts after
// every present square, per SPEC_FULL.md's resolution of the ordering
// Open Question. Among present squares, ordering is by (X, Y).
func (s Square) Less(other Square) bool {
	if s.IsNone() && other.IsNone() {
		return false
	}
	if s.IsNone() {
		return false
	}
	if other.IsNone() {
		return true
	}
	sc, oc := s.Coord(), other.Coord()
	if sc.X != oc.X {
		return sc.X < oc.X
	}
	return sc.Y < oc.Y
}
