package buchi

import "infinitechess/graph"

// attractorWhite computes, within the node set (inZB, inZW), the least
// fixed point of "already accepting, or some white reply from here lands
// in the set" for W-nodes, and "every black move lands in the set" for
// B-nodes — a monotone reachability-for-White attractor.
func attractorWhite(g *graph.Graph, inZB, inZW, isAcceptW []bool) (bY, wY []bool) {
	bY = make([]bool, len(inZB))
	wY = make([]bool, len(inZW))

	for wi := range wY {
		if inZW[wi] && isAcceptW[wi] {
			wY[wi] = true
		}
	}

	for changed := true; changed; {
		changed = false
		for bi, b := range g.BNodes {
			if !inZB[bi] || bY[bi] {
				continue
			}
			total, allIn := 0, true
			for _, wi := range b.OutW {
				if !inZW[wi] {
					continue
				}
				total++
				if !wY[wi] {
					allIn = false
					break
				}
			}
			if total > 0 && allIn {
				bY[bi] = true
				changed = true
			}
		}
		for wi, w := range g.WNodes {
			if !inZW[wi] || wY[wi] {
				continue
			}
			for _, bi := range w.OutB {
				if inZB[bi] && bY[bi] {
					wY[wi] = true
					changed = true
					break
				}
			}
		}
	}
	return bY, wY
}

// attractorBlack computes the least fixed point of "already in target,
// or some black move from here lands in the set" for B-nodes, and
// "already in target, or every white reply lands in the set" for
// W-nodes — the mirror-image reachability-for-Black attractor.
func attractorBlack(g *graph.Graph, inZB, inZW, targetB, targetW []bool) (bX, wX []bool) {
	bX = make([]bool, len(inZB))
	wX = make([]bool, len(inZW))

	for bi := range bX {
		if inZB[bi] && targetB[bi] {
			bX[bi] = true
		}
	}
	for wi := range wX {
		if inZW[wi] && targetW[wi] {
			wX[wi] = true
		}
	}

	for changed := true; changed; {
		changed = false
		for bi, b := range g.BNodes {
			if !inZB[bi] || bX[bi] {
				continue
			}
			for _, wi := range b.OutW {
				if inZW[wi] && wX[wi] {
					bX[bi] = true
					changed = true
					break
				}
			}
		}
		for wi, w := range g.WNodes {
			if !inZW[wi] || wX[wi] {
				continue
			}
			total, allIn := 0, true
			for _, bi := range w.OutB {
				if !inZB[bi] {
					continue
				}
				total++
				if !bX[bi] {
					allIn = false
					break
				}
			}
			if total > 0 && allIn {
				wX[wi] = true
				changed = true
			}
		}
	}
	return bX, wX
}
