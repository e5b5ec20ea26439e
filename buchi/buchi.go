// Package buchi computes the tempo trap: the largest subset of an
// inescapable trap from which White can additionally force, again and
// again, a return to a state where passing is available — a nested
// (Büchi) fixed point layered on top of trapsolver's plain safety fixed
// point. Grounded on original_source/search/buchi.rs, including its
// inline sanity-game shape (see buchi_test.go).
package buchi

import (
	"infinitechess/graph"
	"infinitechess/resource"
	"infinitechess/searcherr"
	"infinitechess/trapsolver"

	"github.com/rs/zerolog/log"
)

// TempoTrap holds the surviving black-to-move nodes of a Büchi solve.
type TempoTrap struct {
	inTempo []bool
}

// Contains reports whether b is in the tempo trap.
func (t *TempoTrap) Contains(b graph.BIndex) bool {
	return int(b) < len(t.inTempo) && t.inTempo[b]
}

// Size returns the number of black-to-move nodes in the tempo trap.
func (t *TempoTrap) Size() int {
	n := 0
	for _, v := range t.inTempo {
		if v {
			n++
		}
	}
	return n
}

// Solve computes the tempo trap over g, restricted to the inescapable
// trap. A W-node is accepting iff a pass move is available there and
// its target B-node is (statically) in trap.
func Solve(g *graph.Graph, trap *trapsolver.Trap, tracker *resource.Tracker) (*TempoTrap, *searcherr.SearchError) {
	inZB := make([]bool, len(g.BNodes))
	for bi := range g.BNodes {
		inZB[bi] = trap.Contains(graph.BIndex(bi))
	}
	inZW := make([]bool, len(g.WNodes))
	for bi, b := range g.BNodes {
		if !inZB[bi] {
			continue
		}
		for _, wi := range b.OutW {
			inZW[wi] = true
		}
	}

	isAcceptW := make([]bool, len(g.WNodes))
	for wi, w := range g.WNodes {
		if w.PassTarget != graph.NoBIndex && trap.Contains(w.PassTarget) {
			isAcceptW[wi] = true
		}
	}

	for {
		bY, wY := attractorWhite(g, inZB, inZW, isAcceptW)

		targetB := make([]bool, len(inZB))
		targetW := make([]bool, len(inZW))
		for bi := range inZB {
			targetB[bi] = inZB[bi] && !bY[bi]
		}
		for wi := range inZW {
			targetW[wi] = inZW[wi] && !wY[wi]
		}

		bX, wX := attractorBlack(g, inZB, inZW, targetB, targetW)

		changed := false
		for bi := range inZB {
			if inZB[bi] && bX[bi] {
				inZB[bi] = false
				changed = true
			}
		}
		for wi := range inZW {
			if inZW[wi] && wX[wi] {
				inZW[wi] = false
				changed = true
			}
		}

		if err := tracker.BumpSteps(searcherr.StageBuchi, 1); err != nil {
			return nil, err
		}
		if !changed {
			break
		}
	}

	log.Debug().Msgf("tempo trap fixed point: %d black nodes", countTrue(inZB))
	return &TempoTrap{inTempo: inZB}, nil
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
