package rules

import "infinitechess/board"

// SquaresInLinfBall lists every square within the closed L-infinity ball
// of the given radius around the origin, excluding the origin itself
// (the black king's own square is never available to a white piece).
func SquaresInLinfBall(bound int32) []board.Coord {
	out := make([]board.Coord, 0, (2*bound+1)*(2*bound+1))
	for x := -bound; x <= bound; x++ {
		for y := -bound; y <= bound; y++ {
			c := board.NewCoord(x, y)
			if c == board.Origin {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

// EnumeratePositionsInBound enumerates every canonical Position under
// layout using only squares from the L-infinity ball of the given
// radius. When allowCaptures is true, positions with fewer than the
// full piece count (captured slots) are also enumerated.
func EnumeratePositionsInBound(layout *board.PieceLayout, bound int32, allowCaptures bool) []board.Position {
	return EnumeratePlacements(layout, SquaresInLinfBall(bound), allowCaptures)
}

// EnumeratePlacements enumerates every canonical Position obtainable by
// assigning layout's pieces to distinct squares drawn from candidates,
// honoring the white-king-not-adjacent-to-origin rule. This is the
// combinatorial engine both EnumeratePositionsInBound and the
// candidates package's absolute-box universe enumeration are built on.
func EnumeratePlacements(layout *board.PieceLayout, candidates []board.Coord, allowCaptures bool) []board.Position {
	used := make([]bool, len(candidates))
	slots := make([]board.Square, layout.Len())
	var out []board.Position
	placeRun(layout, candidates, used, slots, layout.Runs(), 0, allowCaptures, &out)
	return out
}

func placeRun(layout *board.PieceLayout, squares []board.Coord, used []bool, slots []board.Square, runs []board.Run, runIdx int, allowCaptures bool, out *[]board.Position) {
	if runIdx == len(runs) {
		pos := board.NewPosition(append([]board.Square(nil), slots...))
		pos.Canonicalize(layout)
		*out = append(*out, pos)
		return
	}

	run := runs[runIdx]
	runLen := run.End - run.Start
	kind := layout.Kinds[run.Start]
	minCount := runLen
	if allowCaptures {
		minCount = 0
	}

	for count := runLen; count >= minCount; count-- {
		chooseCombo(squares, used, kind, count, func(chosen []int) {
			for i, idx := range chosen {
				slots[run.Start+i] = board.FromCoord(squares[idx])
				used[idx] = true
			}
			for i := len(chosen); i < runLen; i++ {
				slots[run.Start+i] = board.NoneSquare
			}
			placeRun(layout, squares, used, slots, runs, runIdx+1, allowCaptures, out)
			for _, idx := range chosen {
				used[idx] = false
			}
		})
	}
}

// chooseCombo calls cb once per combination of count distinct, unused
// indices into squares, skipping squares adjacent to the origin when
// kind is the king.
func chooseCombo(squares []board.Coord, used []bool, kind board.PieceKind, count int, cb func([]int)) {
	if count == 0 {
		cb(nil)
		return
	}
	chosen := make([]int, 0, count)
	var rec func(start int)
	rec = func(start int) {
		if len(chosen) == count {
			cb(chosen)
			return
		}
		remaining := count - len(chosen)
		for i := start; i <= len(squares)-remaining; i++ {
			if used[i] {
				continue
			}
			if kind == board.King && squares[i].ChebyshevNorm() <= 1 {
				continue
			}
			chosen = append(chosen, i)
			rec(i + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	rec(0)
}
