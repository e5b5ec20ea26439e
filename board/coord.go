// Package board implements the king-relative coordinate system, the
// packed Square representation, piece layouts and canonical positions
// the rest of the solver is built on.
package board

// Coord is a signed 2D offset on the infinite board, always interpreted
// relative to the black king unless stated otherwise.
type Coord struct {
	X, Y int32
}

// Origin is the black king's square in every king-relative frame.
var Origin = Coord{0, 0}

func NewCoord(x, y int32) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Coord) Sub(d Coord) Coord {
	return Coord{X: c.X - d.X, Y: c.Y - d.Y}
}

func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

func (c Coord) Scale(k int32) Coord {
	return Coord{X: c.X * k, Y: c.Y * k}
}

// ChebyshevNorm is the L-infinity distance from the origin, the natural
// metric for king moves on this board.
func (c Coord) ChebyshevNorm() int32 {
	return max32(abs32(c.X), abs32(c.Y))
}

// InLinfBound reports whether c lies within the closed L-infinity ball
// of the given radius around the origin.
func (c Coord) InLinfBound(bound int32) bool {
	return c.ChebyshevNorm() <= bound
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// KingSteps holds the 8 unit offsets a king (or the black king, taking a
// "black move") may step to, in a fixed, deterministic order.
var KingSteps = [8]Coord{
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
}

// RookDirs, BishopDirs and QueenDirs are unit step directions for sliding
// pieces; QueenDirs is their concatenation.
var (
	RookDirs   = [4]Coord{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	BishopDirs = [4]Coord{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	QueenDirs  = [8]Coord{
		{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
		{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1},
	}
)

// KnightDeltas holds the 8 knight-move offsets.
var KnightDeltas = [8]Coord{
	{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: -1}, {X: 1, Y: -2},
	{X: -1, Y: -2}, {X: -2, Y: -1}, {X: -2, Y: 1}, {X: -1, Y: 2},
}
