// Package rules implements pure move generation and attack detection for
// White pieces (King, Queen, Rook, Bishop, Knight) against a lone Black
// king anchored at the board's origin. Nothing here knows about
// scenarios, resource limits or search — it is the same kind of small,
// dependency-free layer the teacher's game.Rules interface occupies,
// generalized to this domain's own movement rules.
package rules

import "infinitechess/board"

// MoveBoundMode controls whether a slider's MoveBound is an inclusive or
// exclusive cap on the number of squares it may travel. Inclusive is the
// default and matches original_source's always-inclusive slider walk;
// exclusive is a SPEC_FULL.md-driven addition.
type MoveBoundMode int

const (
	MoveBoundInclusive MoveBoundMode = iota
	MoveBoundExclusive
)

// Rules bundles everything needed to generate and validate moves for a
// fixed piece layout.
type Rules struct {
	Layout        *board.PieceLayout
	MoveBound     int32
	MoveBoundMode MoveBoundMode
	// AllowCaptures gates whether a black king step may land on (and
	// capture) a white piece at all. See SPEC_FULL.md §4 for why this is
	// distinct from a candidate-generation-level allow_captures flag.
	AllowCaptures bool
}

func (r *Rules) maxSlideSteps() int32 {
	if r.MoveBoundMode == MoveBoundExclusive {
		if r.MoveBound <= 0 {
			return 0
		}
		return r.MoveBound - 1
	}
	return r.MoveBound
}

// IsLegalPosition reports whether pos is a legal arrangement under r's
// layout: no piece on the origin, no two pieces sharing a square, and a
// white king (if present) not adjacent to the black king.
func (r *Rules) IsLegalPosition(pos board.Position) bool {
	originSquare := board.FromCoord(board.Origin)
	seen := make(map[board.Square]struct{}, pos.Count)
	for i := 0; i < int(pos.Count); i++ {
		sq := pos.Squares[i]
		if sq.IsNone() {
			continue
		}
		if sq == originSquare {
			return false
		}
		if _, dup := seen[sq]; dup {
			return false
		}
		seen[sq] = struct{}{}
	}
	if r.Layout.HasWhiteKing() {
		ks := pos.Squares[0]
		if !ks.IsNone() && ks.Coord().ChebyshevNorm() <= 1 {
			return false
		}
	}
	return true
}

// IsAttacked reports whether any white piece in pos attacks target.
func (r *Rules) IsAttacked(target board.Coord, pos board.Position) bool {
	for i := 0; i < int(pos.Count); i++ {
		sq := pos.Squares[i]
		if sq.IsNone() {
			continue
		}
		if r.pieceAttacks(r.Layout.Kinds[i], sq.Coord(), target, pos, i) {
			return true
		}
	}
	return false
}

func (r *Rules) pieceAttacks(kind board.PieceKind, from, target board.Coord, pos board.Position, selfIndex int) bool {
	delta := target.Sub(from)
	switch kind {
	case board.King:
		return delta.ChebyshevNorm() == 1
	case board.Knight:
		for _, d := range board.KnightDeltas {
			if d == delta {
				return true
			}
		}
		return false
	default:
		dirs, slides := kind.SlideDirs()
		if !slides {
			return false
		}
		return riderReaches(dirs, from, target, pos, selfIndex)
	}
}

// riderReaches reports whether a slider at from can reach target along
// one of dirs, blocked by any occupied square strictly between them
// (any piece other than the slider itself, or the black king at the
// origin).
func riderReaches(dirs []board.Coord, from, target board.Coord, pos board.Position, exceptIndex int) bool {
	delta := target.Sub(from)
	for _, dir := range dirs {
		k, ok := scalarAlongDir(delta, dir)
		if !ok || k <= 0 {
			continue
		}
		blocked := false
		for step := int32(1); step < k; step++ {
			mid := from.Add(dir.Scale(step))
			if mid == board.Origin || pos.IsOccupiedExcept(board.FromCoord(mid), exceptIndex) {
				blocked = true
				break
			}
		}
		if !blocked {
			return true
		}
	}
	return false
}

// scalarAlongDir returns k such that from + dir*k == from + delta, when
// delta is a positive integer multiple of dir; ok is false otherwise.
func scalarAlongDir(delta, dir board.Coord) (int32, bool) {
	var kx, ky int32
	okx, oky := true, true
	if dir.X == 0 {
		okx = delta.X == 0
	} else {
		okx = delta.X%dir.X == 0
		if okx {
			kx = delta.X / dir.X
		}
	}
	if dir.Y == 0 {
		oky = delta.Y == 0
	} else {
		oky = delta.Y%dir.Y == 0
		if oky {
			ky = delta.Y / dir.Y
		}
	}
	if !okx || !oky {
		return 0, false
	}
	if dir.X != 0 && dir.Y != 0 {
		if kx != ky {
			return 0, false
		}
		return kx, true
	}
	if dir.X != 0 {
		return kx, true
	}
	return ky, true
}

// BlackMoves enumerates every legal black-king step out of pos, already
// canonicalized. Captures of the white king are never legal; captures of
// any other piece are legal only when r.AllowCaptures is set. A step
// into check (the black king would be attacked at its new square) is
// excluded, matching normal chess self-check rules.
func (r *Rules) BlackMoves(pos board.Position) []board.Position {
	out := make([]board.Position, 0, len(board.KingSteps))
	for _, delta := range board.KingSteps {
		if next, ok := r.BlackMoveTo(pos, delta); ok {
			out = append(out, next)
		}
	}
	return out
}

// BlackMoveTo applies a single black-king step by delta, returning the
// resulting canonical position and whether that step is legal. Split
// out of BlackMoves so callers that need to track the black king's
// absolute square (matesolver's bounded universe) can pair each
// resulting position with the delta that produced it.
func (r *Rules) BlackMoveTo(pos board.Position, delta board.Coord) (board.Position, bool) {
	var kingSq board.Square = board.NoneSquare
	if r.Layout.HasWhiteKing() {
		kingSq = pos.Squares[0]
	}

	target := board.FromCoord(delta)
	if !kingSq.IsNone() && kingSq == target {
		return board.Position{}, false
	}
	if pos.IsOccupied(target) && !r.AllowCaptures {
		return board.Position{}, false
	}

	next := pos
	for i := 0; i < int(next.Count); i++ {
		if next.Squares[i] == target {
			next.Squares[i] = board.NoneSquare
		}
	}
	for i := 0; i < int(next.Count); i++ {
		if !next.Squares[i].IsNone() {
			next.Squares[i] = next.Squares[i].ShiftedNeg(delta)
		}
	}
	next.Canonicalize(r.Layout)

	if !r.IsLegalPosition(next) {
		return board.Position{}, false
	}
	if r.IsAttacked(board.Origin, next) {
		return board.Position{}, false
	}
	return next, true
}

// WhiteMoves enumerates every legal white reply from pos. When
// allowPass is true a "pass" move (the position unchanged) is included
// first.
func (r *Rules) WhiteMoves(pos board.Position, allowPass bool) []board.Position {
	var out []board.Position
	if allowPass {
		out = append(out, pos)
	}

	for i := 0; i < int(pos.Count); i++ {
		sq := pos.Squares[i]
		if sq.IsNone() {
			continue
		}
		from := sq.Coord()
		kind := r.Layout.Kinds[i]

		switch kind {
		case board.King:
			for _, d := range board.KingSteps {
				to := from.Add(d)
				if to.ChebyshevNorm() <= 1 {
					continue
				}
				if pos.IsOccupiedExcept(board.FromCoord(to), i) {
					continue
				}
				next := pos
				next.Squares[i] = board.FromCoord(to)
				next.Canonicalize(r.Layout)
				out = append(out, next)
			}
		case board.Knight:
			for _, d := range board.KnightDeltas {
				to := from.Add(d)
				if to == board.Origin {
					continue
				}
				if pos.IsOccupiedExcept(board.FromCoord(to), i) {
					continue
				}
				next := pos
				next.Squares[i] = board.FromCoord(to)
				next.Canonicalize(r.Layout)
				out = append(out, next)
			}
		default:
			dirs, slides := kind.SlideDirs()
			if !slides {
				continue
			}
			for _, dir := range dirs {
				for step := int32(1); step <= r.maxSlideSteps(); step++ {
					to := from.Add(dir.Scale(step))
					if to == board.Origin {
						break // kings block sliding movement
					}
					if pos.IsOccupiedExcept(board.FromCoord(to), i) {
						break
					}
					next := pos
					next.Squares[i] = board.FromCoord(to)
					next.Canonicalize(r.Layout)
					out = append(out, next)
				}
			}
		}
	}
	return out
}

// IsCheckmate reports whether the black king, to move, is attacked and
// has no legal move.
func (r *Rules) IsCheckmate(pos board.Position) bool {
	return r.IsAttacked(board.Origin, pos) && len(r.BlackMoves(pos)) == 0
}

// IsStalemate reports whether the black king, to move, is not attacked
// but has no legal move.
func (r *Rules) IsStalemate(pos board.Position) bool {
	return !r.IsAttacked(board.Origin, pos) && len(r.BlackMoves(pos)) == 0
}
