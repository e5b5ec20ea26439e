// Package resource tracks how much of a solver's resource budget has
// been spent, in the style of the teacher's experiments/metrics
// Collector: atomic counters bumped from possibly-concurrent producers,
// checked against a fixed set of limits, snapshotted on demand.
package resource

import (
	"sync/atomic"

	"infinitechess/searcherr"
)

// Limits bounds how large a search may grow before it aborts with a
// ResourceExhaustion error. Zero means "unbounded" for that metric.
type Limits struct {
	MaxStates       uint64
	MaxEdges        uint64
	MaxCacheEntries uint64
	MaxCachedMoves  uint64
	MaxSteps        uint64
}

// Tracker accumulates resource counters against a fixed set of Limits.
// It is safe for concurrent use.
type Tracker struct {
	limits Limits

	states       atomic.Uint64
	edges        atomic.Uint64
	cacheEntries atomic.Uint64
	cachedMoves  atomic.Uint64
	steps        atomic.Uint64
}

func NewTracker(limits Limits) *Tracker {
	return &Tracker{limits: limits}
}

func (t *Tracker) Limits() Limits {
	return t.limits
}

// Snapshot returns a point-in-time copy of every counter, suitable for
// embedding in a SearchError.
func (t *Tracker) Snapshot() searcherr.Counts {
	return searcherr.Counts{
		States:       t.states.Load(),
		Edges:        t.edges.Load(),
		CacheEntries: t.cacheEntries.Load(),
		CachedMoves:  t.cachedMoves.Load(),
		Steps:        t.steps.Load(),
	}
}

func (t *Tracker) bump(counter *atomic.Uint64, limit uint64, stage searcherr.Stage, metric searcherr.Metric, by uint64) *searcherr.SearchError {
	observed := counter.Add(by)
	if limit > 0 && observed > limit {
		return searcherr.LimitExceeded(stage, metric, limit, observed, t.Snapshot())
	}
	return nil
}

func (t *Tracker) BumpStates(stage searcherr.Stage, by uint64) *searcherr.SearchError {
	return t.bump(&t.states, t.limits.MaxStates, stage, searcherr.MetricStates, by)
}

func (t *Tracker) BumpEdges(stage searcherr.Stage, by uint64) *searcherr.SearchError {
	return t.bump(&t.edges, t.limits.MaxEdges, stage, searcherr.MetricEdges, by)
}

func (t *Tracker) BumpCacheEntries(stage searcherr.Stage, by uint64) *searcherr.SearchError {
	return t.bump(&t.cacheEntries, t.limits.MaxCacheEntries, stage, searcherr.MetricCacheEntries, by)
}

func (t *Tracker) DecCacheEntries(by uint64) {
	t.cacheEntries.Add(^(by - 1)) // unsigned decrement
}

func (t *Tracker) BumpCachedMoves(stage searcherr.Stage, by uint64) *searcherr.SearchError {
	return t.bump(&t.cachedMoves, t.limits.MaxCachedMoves, stage, searcherr.MetricCachedMoves, by)
}

func (t *Tracker) DecCachedMoves(by uint64) {
	t.cachedMoves.Add(^(by - 1))
}

func (t *Tracker) BumpSteps(stage searcherr.Stage, by uint64) *searcherr.SearchError {
	return t.bump(&t.steps, t.limits.MaxSteps, stage, searcherr.MetricSteps, by)
}
