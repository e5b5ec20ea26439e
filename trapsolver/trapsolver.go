// Package trapsolver computes the maximal inescapable trap: the
// greatest fixed point of "every black move leads to a white reply
// White is willing to make, and White has at least one such reply."
// Unlike original_source/search/trap.rs::maximal_inescapable_trap's
// rescan-to-fixed-point loop, this follows spec.md §4.6's incremental
// worklist: a B-node leaves the trap the moment it runs out of good
// replies, and that loss propagates backward through predecessors
// rather than triggering a full rescan.
package trapsolver

import (
	"infinitechess/graph"
	"infinitechess/resource"
	"infinitechess/searcherr"

	"github.com/rs/zerolog/log"
)

// Trap holds the surviving black-to-move nodes of a trap solve.
type Trap struct {
	inTrap []bool
}

// Contains reports whether b is in the trap.
func (t *Trap) Contains(b graph.BIndex) bool {
	return int(b) < len(t.inTrap) && t.inTrap[b]
}

// Size returns the number of black-to-move nodes in the trap.
func (t *Trap) Size() int {
	n := 0
	for _, v := range t.inTrap {
		if v {
			n++
		}
	}
	return n
}

// Solve computes the maximal inescapable trap over g.
//
// A W-node is a "good reply" for its parent B-node as long as at least
// one of its own black-move successors is still in the trap. A B-node
// stays in the trap as long as every one of its black-move successors
// leads to a W-node with at least one good reply. Both counts are
// maintained incrementally: evicting a B-node only touches its direct
// predecessors, never the whole graph.
func Solve(g *graph.Graph, tracker *resource.Tracker) (*Trap, *searcherr.SearchError) {
	nB, nW := len(g.BNodes), len(g.WNodes)

	inTrap := make([]bool, nB)
	outDegree := make([]int32, nB)
	for bi, b := range g.BNodes {
		outDegree[bi] = int32(len(b.OutW))
		inTrap[bi] = b.InDomain && len(b.OutW) > 0
	}

	goodReplies := make([]int32, nW)
	for wi, w := range g.WNodes {
		var count int32
		for _, bi := range w.OutB {
			if inTrap[bi] {
				count++
			}
		}
		goodReplies[wi] = count
	}

	goodBlackMoves := make([]int32, nB)
	for bi, b := range g.BNodes {
		if !inTrap[bi] {
			continue
		}
		var count int32
		for _, wi := range b.OutW {
			if goodReplies[wi] > 0 {
				count++
			}
		}
		goodBlackMoves[bi] = count
	}

	predOfB := make([][]graph.WIndex, nB)
	for wi, w := range g.WNodes {
		for _, bi := range w.OutB {
			predOfB[bi] = append(predOfB[bi], graph.WIndex(wi))
		}
	}
	predOfW := make([][]graph.BIndex, nW)
	for bi, b := range g.BNodes {
		for _, wi := range b.OutW {
			predOfW[wi] = append(predOfW[wi], graph.BIndex(bi))
		}
	}

	inQueue := make([]bool, nB)
	var queue []graph.BIndex
	for bi := 0; bi < nB; bi++ {
		if inTrap[bi] && goodBlackMoves[bi] < outDegree[bi] {
			queue = append(queue, graph.BIndex(bi))
			inQueue[bi] = true
		}
	}

	for len(queue) > 0 {
		bi := queue[0]
		queue = queue[1:]
		inQueue[bi] = false

		if !inTrap[bi] || goodBlackMoves[bi] >= outDegree[bi] {
			continue
		}

		inTrap[bi] = false
		if err := tracker.BumpSteps(searcherr.StageTrapFixpoint, 1); err != nil {
			return nil, err
		}

		for _, wi := range predOfB[bi] {
			goodReplies[wi]--
			if goodReplies[wi] != 0 {
				continue
			}
			for _, bp := range predOfW[wi] {
				if !inTrap[bp] {
					continue
				}
				goodBlackMoves[bp]--
				if goodBlackMoves[bp] < outDegree[bp] && !inQueue[bp] {
					queue = append(queue, bp)
					inQueue[bp] = true
				}
			}
		}
	}

	trap := &Trap{inTrap: inTrap}
	log.Debug().Msgf("trap fixed point: %d/%d black nodes confined", trap.Size(), nB)
	return trap, nil
}
