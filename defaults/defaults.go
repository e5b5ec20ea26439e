// Package defaults holds named constants for scenario defaults, in the
// style of the teacher's meta package (small, individually documented
// top-level constants rather than a config file).
package defaults

import "infinitechess/resource"

const (
	// MaxStates bounds how many distinct states a search may discover.
	MaxStates = 2_000_000
	// MaxEdges bounds how many graph edges a search may materialize.
	MaxEdges = 50_000_000
	// MaxCacheEntries bounds the movegen cache's total entry count.
	MaxCacheEntries = 250_000
	// MaxCachedMoves bounds the total number of moves held across all
	// cache entries.
	MaxCachedMoves = 15_000_000
	// MaxSteps bounds the number of fixed-point iteration steps a solver
	// may perform before giving up.
	MaxSteps = 200_000_000
)

// DefaultResourceLimits mirrors original_source's
// ResourceLimits::default(), the ceiling a scenario runs under unless it
// overrides individual fields.
func DefaultResourceLimits() resource.Limits {
	return resource.Limits{
		MaxStates:       MaxStates,
		MaxEdges:        MaxEdges,
		MaxCacheEntries: MaxCacheEntries,
		MaxCachedMoves:  MaxCachedMoves,
		MaxSteps:        MaxSteps,
	}
}

// DemoLimits mirrors original_source's scenarios::demo_limits(), a
// smaller ceiling suitable for the bundled demo scenarios and tests.
func DemoLimits() resource.Limits {
	return resource.Limits{
		MaxStates:       1_000_000,
		MaxEdges:        25_000_000,
		MaxCacheEntries: 100_000,
		MaxCachedMoves:  5_000_000,
		MaxSteps:        50_000_000,
	}
}
