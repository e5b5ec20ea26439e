// Package searcherr defines the error taxonomy every search-stage
// operation in this module returns: resource exhaustion, invalid
// scenario configuration, invalid state, and unsupported requests. It
// reconciles spec.md §7's taxonomy with original_source's
// InvalidScenario/LimitExceeded/AllocationFailed/Io shape by folding the
// latter three into ResourceExhaustion's payload fields.
package searcherr

import (
	"fmt"
)

// Kind classifies a SearchError.
type Kind string

const (
	KindResourceExhaustion Kind = "resource_exhaustion"
	KindInvalidScenario    Kind = "invalid_scenario"
	KindInvalidState       Kind = "invalid_state"
	KindUnsupported        Kind = "unsupported"
)

// Stage names the pipeline stage a resource-exhaustion error occurred in.
type Stage string

const (
	StageEnumerate    Stage = "enumerate"
	StageBuildGraph   Stage = "build_graph"
	StageTrapFixpoint Stage = "trap_fixpoint"
	StageBuchi        Stage = "buchi"
	StageForcedMate   Stage = "forced_mate"
)

// Metric names the resource counter a limit was exceeded on.
type Metric string

const (
	MetricStates       Metric = "states"
	MetricEdges        Metric = "edges"
	MetricCacheEntries Metric = "cache_entries"
	MetricCachedMoves  Metric = "cached_moves"
	MetricSteps        Metric = "steps"
)

// Counts is a plain snapshot of resource counters, embedded in a
// ResourceExhaustion error so callers can see the full picture at the
// moment a limit was hit, not just the metric that tipped over.
type Counts struct {
	States       uint64
	Edges        uint64
	CacheEntries uint64
	CachedMoves  uint64
	Steps        uint64
}

// SearchError is the single error type every solver package returns.
type SearchError struct {
	Kind     Kind
	Stage    Stage
	Metric   Metric
	Limit    uint64
	Observed uint64
	Counters Counts
	Reason   string
	cause    error
}

func (e *SearchError) Error() string {
	switch e.Kind {
	case KindResourceExhaustion:
		return fmt.Sprintf("search: resource exhausted at stage %q: %s reached %d (limit %d)", e.Stage, e.Metric, e.Observed, e.Limit)
	default:
		if e.Reason != "" {
			return fmt.Sprintf("search: %s: %s", e.Kind, e.Reason)
		}
		return fmt.Sprintf("search: %s", e.Kind)
	}
}

func (e *SearchError) Unwrap() error {
	return e.cause
}

// LimitExceeded builds a ResourceExhaustion error for the given stage,
// metric and counter snapshot.
func LimitExceeded(stage Stage, metric Metric, limit, observed uint64, counters Counts) *SearchError {
	return &SearchError{
		Kind:     KindResourceExhaustion,
		Stage:    stage,
		Metric:   metric,
		Limit:    limit,
		Observed: observed,
		Counters: counters,
	}
}

// InvalidScenario builds an InvalidScenario error with the given reason.
func InvalidScenario(reason string) *SearchError {
	return &SearchError{Kind: KindInvalidScenario, Reason: reason}
}

// InvalidState builds an InvalidState error. cause is the underlying
// error that surfaced the inconsistency, if any (nil for a solver's own
// internal invariant checks, which have no wrapped error to carry); it
// is reachable through errors.Is/errors.As via Unwrap.
func InvalidState(reason string, cause error) *SearchError {
	return &SearchError{Kind: KindInvalidState, Reason: reason, cause: cause}
}

// Unsupported builds an Unsupported error with the given reason.
func Unsupported(reason string) *SearchError {
	return &SearchError{Kind: KindUnsupported, Reason: reason}
}
