// Package scenario ties a Rules instance to the extra knobs a search
// needs: whose move states track, which candidate/universe states seed
// a search, and the Laws/Domain/Preferences hooks that let a caller
// restrict or bias the search without touching the solvers themselves.
package scenario

import (
	"infinitechess/board"
	"infinitechess/defaults"
	"infinitechess/resource"
	"infinitechess/rules"
	"infinitechess/searcherr"
)

// Side names whose move a State represents.
type Side int

const (
	Black Side = iota
	White
)

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// State is a full position: the black king's absolute square (relevant
// only when a scenario tracks it) plus the canonical, king-relative
// arrangement of white pieces.
type State struct {
	AbsKing board.Coord
	Pos     board.Position
}

// StartState pairs a State with whose move it is.
type StartState struct {
	ToMove Side
	State  State
}

// Laws lets a caller further restrict which states and moves a search
// considers, layered on top of Rules' pure legality. The zero-value
// default, NoLaws, allows everything Rules already allows.
type Laws interface {
	AllowState(s State) bool
	AllowBlackMove(from, to State, delta board.Coord) bool
	AllowWhiteMove(from, to State) bool
	AllowPass(s State) bool
}

// NoLaws imposes no restriction beyond Rules' own legality.
type NoLaws struct{}

func (NoLaws) AllowState(State) bool                      { return true }
func (NoLaws) AllowBlackMove(_, _ State, _ board.Coord) bool { return true }
func (NoLaws) AllowWhiteMove(_, _ State) bool              { return true }
func (NoLaws) AllowPass(State) bool                        { return true }

// Domain restricts which states a search treats as "inside" its region
// of interest; states outside Domain are recorded as external and never
// join an inescapable trap.
type Domain interface {
	Inside(s State) bool
}

// AllDomain treats every state as inside.
type AllDomain struct{}

func (AllDomain) Inside(State) bool { return true }

// BoxDomain restricts a search to states whose absolute black king
// square lies within the closed L-infinity ball of radius Bound, the
// way matesolver's bounded universe is scoped.
type BoxDomain struct{ Bound int32 }

func (d BoxDomain) Inside(s State) bool { return s.AbsKing.InLinfBound(d.Bound) }

// Preferences lets a caller bias which reply a strategy extractor picks
// among several equally winning options, without changing what counts
// as winning. RankWhiteMoves is consumed by strategy.Solve today;
// RankBlackMoves is reserved for a future black-side strategy extractor
// and has no consumer yet.
type Preferences interface {
	RankBlackMoves(from State, options []State) []int
	RankWhiteMoves(from State, options []State) []int
}

// NoPreferences ranks options in their natural (enumeration) order.
type NoPreferences struct{}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

func (NoPreferences) RankBlackMoves(_ State, options []State) []int {
	return identityOrder(len(options))
}

func (NoPreferences) RankWhiteMoves(_ State, options []State) []int {
	return identityOrder(len(options))
}

// CandidateMode selects how the seed set of black-to-move states is
// produced.
type CandidateMode int

const (
	ModeInLinfBound CandidateMode = iota
	ModeInAbsBox
	ModeFromStates
	ModeReachableFromStart
)

// CandidateGeneration configures candidate/universe enumeration. Only
// the fields relevant to Mode are read.
type CandidateGeneration struct {
	Mode          CandidateMode
	Bound         int32
	AllowCaptures bool
	States        []State
	MaxQueue      int
}

// CacheMode selects how aggressively the graph builder memoizes move
// generation results.
type CacheMode int

const (
	CacheNone CacheMode = iota
	CacheBlackOnly
	CacheBothBounded
)

// Scenario bundles a Rules instance with everything a search needs to
// run: which states to start from, which hooks restrict or bias the
// search, and how much resource budget it may spend.
type Scenario struct {
	Name             string
	Rules            *rules.Rules
	WhiteCanPass     bool
	TrackAbsKing     bool
	RemoveStalemates bool
	Start            *StartState
	Candidates       CandidateGeneration
	Domain           Domain
	Laws             Laws
	Preferences      Preferences
	Limits           resource.Limits
	CacheMode        CacheMode
}

// Option configures a Scenario at construction time, in the teacher's
// functional-options style (searcher.WithDuration, WithEpisodes, ...).
type Option func(*Scenario)

func WithWhiteCanPass(v bool) Option     { return func(s *Scenario) { s.WhiteCanPass = v } }
func WithTrackAbsKing(v bool) Option     { return func(s *Scenario) { s.TrackAbsKing = v } }
func WithRemoveStalemates(v bool) Option { return func(s *Scenario) { s.RemoveStalemates = v } }
func WithStart(start StartState) Option  { return func(s *Scenario) { s.Start = &start } }
func WithDomain(d Domain) Option         { return func(s *Scenario) { s.Domain = d } }
func WithLaws(l Laws) Option             { return func(s *Scenario) { s.Laws = l } }
func WithPreferences(p Preferences) Option {
	return func(s *Scenario) { s.Preferences = p }
}
func WithLimits(l resource.Limits) Option { return func(s *Scenario) { s.Limits = l } }
func WithCacheMode(m CacheMode) Option    { return func(s *Scenario) { s.CacheMode = m } }

// NewScenario builds a Scenario with the teacher's usual defaulted,
// then-overridden-by-options construction.
func NewScenario(name string, r *rules.Rules, candidates CandidateGeneration, opts ...Option) *Scenario {
	s := &Scenario{
		Name:        name,
		Rules:       r,
		Candidates:  candidates,
		Domain:      AllDomain{},
		Laws:        NoLaws{},
		Preferences: NoPreferences{},
		Limits:      defaults.DefaultResourceLimits(),
		CacheMode:   CacheBothBounded,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate checks internal consistency the way
// original_source/scenario/mod.rs::validate does: candidate-mode
// prerequisites, start-state legality, and Domain/Laws/bound consistency
// for a supplied start state.
func (s *Scenario) Validate() *searcherr.SearchError {
	if s.Rules == nil {
		return searcherr.InvalidScenario("rules must be set")
	}
	if s.Rules.MoveBound <= 0 {
		return searcherr.InvalidScenario("move_bound must be positive")
	}
	if s.Candidates.Mode == ModeInAbsBox && !s.TrackAbsKing {
		return searcherr.InvalidScenario("InAbsBox candidate generation requires track_abs_king")
	}
	if s.Candidates.Mode == ModeReachableFromStart && s.Start == nil {
		return searcherr.InvalidScenario("ReachableFromStart candidate generation requires a start state")
	}
	if s.Candidates.Mode == ModeFromStates && len(s.Candidates.States) == 0 {
		return searcherr.InvalidScenario("FromStates candidate generation requires at least one state")
	}

	if s.Start == nil {
		return nil
	}
	start := s.Start.State
	if !s.TrackAbsKing && start.AbsKing != board.Origin {
		return searcherr.InvalidScenario("start abs_king must be the origin when track_abs_king is false")
	}
	if !s.Rules.IsLegalPosition(start.Pos) {
		return searcherr.InvalidScenario("start position is not legal under this scenario's rules")
	}
	if !s.Laws.AllowState(start) {
		return searcherr.InvalidScenario("start state is disallowed by laws")
	}
	if !s.Domain.Inside(start) {
		return searcherr.InvalidScenario("start state falls outside domain")
	}
	if s.Candidates.Mode == ModeInLinfBound {
		for i := 0; i < int(start.Pos.Count); i++ {
			sq := start.Pos.Squares[i]
			if sq.IsNone() {
				continue
			}
			if !sq.Coord().InLinfBound(s.Candidates.Bound) {
				return searcherr.InvalidScenario("start position falls outside the candidate bound")
			}
		}
	}
	if s.RemoveStalemates && s.Start.ToMove == Black && s.Rules.IsStalemate(start.Pos) {
		return searcherr.InvalidScenario("start state is a stalemate, disallowed when remove_stalemates is set")
	}
	return nil
}
