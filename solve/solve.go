// Package solve is the top-level façade: given a scenario, run the
// pipeline (candidate generation, graph construction, trap fixed point,
// and whichever optional refinements were requested) end to end and
// return everything a caller might want, the way the teacher's
// engine.LocalEngine.Run wires together move search, state updates and
// metrics into one call.
package solve

import (
	"infinitechess/buchi"
	"infinitechess/candidates"
	"infinitechess/graph"
	"infinitechess/matesolver"
	"infinitechess/resource"
	"infinitechess/scenario"
	"infinitechess/searcherr"
	"infinitechess/strategy"
	"infinitechess/trapsolver"

	"github.com/rs/zerolog/log"
)

// Result collects everything a Solve call computed. Fields for stages
// that were not requested stay nil.
type Result struct {
	Graph      *graph.Graph
	Trap       *trapsolver.Trap
	Tempo      *buchi.TempoTrap
	ForcedMate *matesolver.Result
	Strategy   map[graph.WIndex]graph.BIndex
	Tracker    *resource.Tracker
}

type config struct {
	computeTempo      bool
	computeForcedMate bool
	computeDTM        bool
	computeStrategy   bool
}

// Option configures which optional refinements a Solve call runs, in
// the teacher's functional-options style (searcher.WithEpisodes, ...).
type Option func(*config)

// WithTempo additionally computes the tempo trap via buchi.Solve.
func WithTempo() Option { return func(c *config) { c.computeTempo = true } }

// WithForcedMate additionally computes a bounded forced-mate winning
// region. Requires the scenario's candidates to be InAbsBox.
func WithForcedMate() Option { return func(c *config) { c.computeForcedMate = true } }

// WithDistanceToMate additionally computes distance-to-mate. It also
// turns on WithForcedMate, so it may be passed on its own.
func WithDistanceToMate() Option {
	return func(c *config) { c.computeForcedMate = true; c.computeDTM = true }
}

// WithStrategy additionally extracts a memoryless "stay in trap"
// strategy for White.
func WithStrategy() Option { return func(c *config) { c.computeStrategy = true } }

// Solve validates s, builds its candidate/graph/trap pipeline, and runs
// whichever optional refinements opts requested.
func Solve(s *scenario.Scenario, opts ...Option) (*Result, *searcherr.SearchError) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	tracker := resource.NewTracker(s.Limits)
	log.Info().Str("scenario", s.Name).Msg("solving")

	seeds, err := candidates.Generate(s, tracker)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("seeds", len(seeds)).Msg("candidates generated")

	g, err := graph.Build(s, seeds, tracker)
	if err != nil {
		return nil, err
	}

	trap, err := trapsolver.Solve(g, tracker)
	if err != nil {
		return nil, err
	}
	log.Info().Int("trap_size", trap.Size()).Msg("trap solved")

	result := &Result{Graph: g, Trap: trap, Tracker: tracker}

	if cfg.computeTempo {
		tempo, err := buchi.Solve(g, trap, tracker)
		if err != nil {
			return nil, err
		}
		log.Info().Int("tempo_size", tempo.Size()).Msg("tempo trap solved")
		result.Tempo = tempo
	}

	if cfg.computeForcedMate {
		mateResult, err := matesolver.Solve(s, tracker, cfg.computeDTM)
		if err != nil {
			return nil, err
		}
		log.Info().Int("winning_btm", len(mateResult.WinningBTM)).Msg("forced mate solved")
		result.ForcedMate = mateResult
	}

	if cfg.computeStrategy {
		strat, err := strategy.Solve(s, g, trap, tracker)
		if err != nil {
			return nil, err
		}
		result.Strategy = strat
	}

	return result, nil
}
