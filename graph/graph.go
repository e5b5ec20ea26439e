// Package graph materializes the bipartite black-to-move/white-to-move
// transition structure a scenario's candidate states generate, honoring
// Laws and Domain and tracking resource consumption throughout —
// grounded on original_source/search/movegen.rs and
// search/trap.rs::MoveCache.
package graph

import (
	"infinitechess/resource"
	"infinitechess/scenario"
	"infinitechess/searcherr"

	"github.com/rs/zerolog/log"
)

// BIndex and WIndex index into Graph.BNodes and Graph.WNodes respectively.
type BIndex int32
type WIndex int32

// NoWIndex and NoBIndex mark "no such edge" (used for PassTarget).
const (
	NoWIndex WIndex = -1
	NoBIndex BIndex = -1
)

// BNode is a black-to-move state and its legal replies.
type BNode struct {
	State    scenario.State
	OutW     []WIndex
	InDomain bool
}

// WNode is a white-to-move state and its legal replies. PassTarget
// names the B-node a pass move would land on, or NoBIndex if passing
// is unavailable here.
type WNode struct {
	State      scenario.State
	OutB       []BIndex
	InDomain   bool
	PassTarget BIndex
}

// Graph is the materialized bipartite transition structure.
type Graph struct {
	BNodes []BNode
	WNodes []WNode

	bIndex map[scenario.State]BIndex
	wIndex map[scenario.State]WIndex
}

// IndexOfB returns the BIndex for st, and whether it exists in the graph.
func (g *Graph) IndexOfB(st scenario.State) (BIndex, bool) {
	idx, ok := g.bIndex[st]
	return idx, ok
}

// IndexOfW returns the WIndex for st, and whether it exists in the graph.
func (g *Graph) IndexOfW(st scenario.State) (WIndex, bool) {
	idx, ok := g.wIndex[st]
	return idx, ok
}

func (g *Graph) addBNode(st scenario.State, inDomain bool) BIndex {
	idx := BIndex(len(g.BNodes))
	g.BNodes = append(g.BNodes, BNode{State: st, InDomain: inDomain})
	g.bIndex[st] = idx
	return idx
}

func (g *Graph) addWNode(st scenario.State, inDomain bool) WIndex {
	idx := WIndex(len(g.WNodes))
	g.WNodes = append(g.WNodes, WNode{State: st, InDomain: inDomain, PassTarget: NoBIndex})
	g.wIndex[st] = idx
	return idx
}

func (g *Graph) getOrAddBNode(st scenario.State, inDomain bool) (BIndex, bool) {
	if idx, ok := g.bIndex[st]; ok {
		return idx, false
	}
	return g.addBNode(st, inDomain), true
}

func (g *Graph) getOrAddWNode(st scenario.State, inDomain bool) (WIndex, bool) {
	if idx, ok := g.wIndex[st]; ok {
		return idx, false
	}
	return g.addWNode(st, inDomain), true
}

// Build runs a BFS worklist outward from seeds, adding a B-node's legal
// black-move successors as W-nodes and a W-node's legal white-move
// (and, when enabled, pass) successors as B-nodes. Domain gates further
// expansion symmetrically on both node colors (SPEC_FULL.md's resolution
// of spec.md §4.5's Open Question), so the graph stays finite for any
// bounded Domain. RemoveStalemates drops newly discovered stalemate
// B-nodes rather than adding them.
func Build(s *scenario.Scenario, seeds []scenario.State, tracker *resource.Tracker) (*Graph, *searcherr.SearchError) {
	g := &Graph{
		bIndex: make(map[scenario.State]BIndex),
		wIndex: make(map[scenario.State]WIndex),
	}
	cache := newMoveCache(s.CacheMode)

	var bQueue []BIndex
	for _, st := range seeds {
		if _, ok := g.bIndex[st]; ok {
			continue
		}
		idx := g.addBNode(st, s.Domain.Inside(st))
		if err := tracker.BumpStates(searcherr.StageBuildGraph, 1); err != nil {
			return nil, err
		}
		bQueue = append(bQueue, idx)
	}

	var wQueue []WIndex
	for len(bQueue) > 0 || len(wQueue) > 0 {
		for len(bQueue) > 0 {
			bi := bQueue[0]
			bQueue = bQueue[1:]
			b := &g.BNodes[bi]
			if !b.InDomain {
				continue
			}

			blackMoves, err := cache.blackMoves(s, b.State, tracker)
			if err != nil {
				return nil, err
			}
			for _, wSt := range blackMoves {
				delta := wSt.AbsKing.Sub(b.State.AbsKing)
				if !s.Laws.AllowBlackMove(b.State, wSt, delta) {
					continue
				}
				wi, isNew := g.getOrAddWNode(wSt, s.Domain.Inside(wSt))
				if isNew {
					if err := tracker.BumpStates(searcherr.StageBuildGraph, 1); err != nil {
						return nil, err
					}
					if g.WNodes[wi].InDomain {
						wQueue = append(wQueue, wi)
					}
				}
				b.OutW = append(b.OutW, wi)
				if err := tracker.BumpEdges(searcherr.StageBuildGraph, 1); err != nil {
					return nil, err
				}
			}
		}

		for len(wQueue) > 0 {
			wi := wQueue[0]
			wQueue = wQueue[1:]
			w := &g.WNodes[wi]

			allowPass := s.WhiteCanPass && s.Laws.AllowPass(w.State)
			whiteMoves, err := cache.whiteMoves(s, w.State, allowPass, tracker)
			if err != nil {
				return nil, err
			}
			for _, bSt := range whiteMoves {
				if !s.Laws.AllowWhiteMove(w.State, bSt) {
					continue
				}
				if s.RemoveStalemates && s.Rules.IsStalemate(bSt.Pos) {
					continue
				}
				bi, isNew := g.getOrAddBNode(bSt, s.Domain.Inside(bSt))
				if isNew {
					if err := tracker.BumpStates(searcherr.StageBuildGraph, 1); err != nil {
						return nil, err
					}
					if g.BNodes[bi].InDomain {
						bQueue = append(bQueue, bi)
					}
				}
				w.OutB = append(w.OutB, bi)
				if err := tracker.BumpEdges(searcherr.StageBuildGraph, 1); err != nil {
					return nil, err
				}
				if bSt == w.State {
					w.PassTarget = bi
				}
			}
		}
	}

	log.Debug().Msgf("graph built for scenario %q: %d black nodes, %d white nodes", s.Name, len(g.BNodes), len(g.WNodes))
	return g, nil
}
