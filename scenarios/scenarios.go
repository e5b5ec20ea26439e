// Package scenarios holds the built-in demo scenarios used by tests and
// cmd/endgamedemo, grounded on original_source/scenarios/mod.rs.
package scenarios

import (
	"infinitechess/board"
	"infinitechess/defaults"
	"infinitechess/rules"
	"infinitechess/scenario"
)

// ThreeRooksBound2MoveBound1 is the three-rook endgame used throughout
// spec.md §8's testable properties: 48 checkmates, an inescapable trap
// of size 169 and a tempo trap of size 113.
func ThreeRooksBound2MoveBound1() *scenario.Scenario {
	layout := board.NewPieceLayout(false, 0, 3, 0, 0)
	r := &rules.Rules{
		Layout:        layout,
		MoveBound:     1,
		MoveBoundMode: rules.MoveBoundInclusive,
		AllowCaptures: true,
	}
	start := scenario.StartState{
		ToMove: scenario.Black,
		State: scenario.State{
			AbsKing: board.Origin,
			Pos: board.NewPosition([]board.Square{
				board.FromCoord(board.NewCoord(2, 2)),
				board.FromCoord(board.NewCoord(-2, 2)),
				board.FromCoord(board.NewCoord(2, -2)),
			}),
		},
	}
	start.State.Pos.Canonicalize(layout)

	return scenario.NewScenario(
		"three_rooks_bound2_mb1",
		r,
		scenario.CandidateGeneration{Mode: scenario.ModeInLinfBound, Bound: 2, AllowCaptures: true},
		scenario.WithWhiteCanPass(true),
		scenario.WithRemoveStalemates(true),
		scenario.WithStart(start),
		scenario.WithLimits(defaults.DemoLimits()),
		scenario.WithCacheMode(scenario.CacheBothBounded),
	)
}

// TwoRooksBound7 is the two-rook endgame spec.md §8 uses to demonstrate
// that two rooks alone can never force checkmate against a lone king.
func TwoRooksBound7() *scenario.Scenario {
	layout := board.NewPieceLayout(false, 0, 2, 0, 0)
	r := &rules.Rules{
		Layout:        layout,
		MoveBound:     7,
		MoveBoundMode: rules.MoveBoundInclusive,
		AllowCaptures: true,
	}
	start := scenario.StartState{
		ToMove: scenario.Black,
		State: scenario.State{
			AbsKing: board.Origin,
			Pos: board.NewPosition([]board.Square{
				board.FromCoord(board.NewCoord(1, 3)),
				board.FromCoord(board.NewCoord(-2, -5)),
			}),
		},
	}
	start.State.Pos.Canonicalize(layout)

	return scenario.NewScenario(
		"two_rooks_bound7",
		r,
		scenario.CandidateGeneration{Mode: scenario.ModeInLinfBound, Bound: 7, AllowCaptures: true},
		scenario.WithWhiteCanPass(true),
		scenario.WithRemoveStalemates(true),
		scenario.WithStart(start),
		scenario.WithLimits(defaults.DemoLimits()),
		scenario.WithCacheMode(scenario.CacheBothBounded),
	)
}

// SingleQueenMateInOne is a small forced-mate scenario: a lone white
// queen and king can force checkmate quickly, useful for exercising
// matesolver's distance-to-mate computation on a scenario small enough
// to enumerate by hand.
func SingleQueenMateInOne() *scenario.Scenario {
	layout := board.NewPieceLayout(true, 1, 0, 0, 0)
	r := &rules.Rules{
		Layout:        layout,
		MoveBound:     3,
		MoveBoundMode: rules.MoveBoundInclusive,
		AllowCaptures: false,
	}
	return scenario.NewScenario(
		"single_queen_abs_box",
		r,
		scenario.CandidateGeneration{Mode: scenario.ModeInAbsBox, Bound: 3, AllowCaptures: false},
		scenario.WithTrackAbsKing(true),
		scenario.WithRemoveStalemates(false),
		scenario.WithDomain(scenario.BoxDomain{Bound: 3}),
		scenario.WithLimits(defaults.DemoLimits()),
		scenario.WithCacheMode(scenario.CacheBlackOnly),
	)
}

// ThreeRooksAbsBox2 mirrors original_source's
// three_rooks_in_small_abs_box_has_some_forced_mates: the same
// three-rook material as ThreeRooksBound2MoveBound1, but scoped to a
// bounded absolute box so matesolver can observe pieces "leaving the
// universe" and treat that as an escape.
func ThreeRooksAbsBox2() *scenario.Scenario {
	layout := board.NewPieceLayout(false, 0, 3, 0, 0)
	r := &rules.Rules{
		Layout:        layout,
		MoveBound:     1,
		MoveBoundMode: rules.MoveBoundInclusive,
		AllowCaptures: true,
	}
	return scenario.NewScenario(
		"mate_rrr_abs_box",
		r,
		scenario.CandidateGeneration{Mode: scenario.ModeInAbsBox, Bound: 2, AllowCaptures: true},
		scenario.WithTrackAbsKing(true),
		scenario.WithRemoveStalemates(false),
		scenario.WithDomain(scenario.BoxDomain{Bound: 2}),
		scenario.WithLimits(defaults.DemoLimits()),
		scenario.WithCacheMode(scenario.CacheNone),
	)
}

// TwoRooksAbsBox2 mirrors original_source's
// two_rooks_has_no_forced_mate_region_in_small_abs_box: two rooks alone,
// scoped to the same bounded absolute box, should never force mate.
func TwoRooksAbsBox2() *scenario.Scenario {
	layout := board.NewPieceLayout(false, 0, 2, 0, 0)
	r := &rules.Rules{
		Layout:        layout,
		MoveBound:     1,
		MoveBoundMode: rules.MoveBoundInclusive,
		AllowCaptures: true,
	}
	return scenario.NewScenario(
		"mate_rr_abs_box",
		r,
		scenario.CandidateGeneration{Mode: scenario.ModeInAbsBox, Bound: 2, AllowCaptures: true},
		scenario.WithTrackAbsKing(true),
		scenario.WithRemoveStalemates(false),
		scenario.WithDomain(scenario.BoxDomain{Bound: 2}),
		scenario.WithLimits(defaults.DemoLimits()),
		scenario.WithCacheMode(scenario.CacheNone),
	)
}
