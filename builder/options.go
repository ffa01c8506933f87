// SPDX-License-Identifier: MIT
// Package: giftflow/builder
//
// options.go: functional options and the resolved builderConfig.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Later options override earlier ones.

package builder

import (
	"io"
	"log/slog"
)

// UnknownPolicy decides what Build does with a wishlist entry that names no
// declared item.
type UnknownPolicy int

const (
	// RejectUnknown fails Build with ErrUnknownReference.
	RejectUnknown UnknownPolicy = iota
	// IgnoreUnknown drops the entry; the recipient simply has fewer eligible items.
	IgnoreUnknown
)

// Default knob values.
const (
	DefaultPairCapacity int64 = 1
)

// BuilderOption customizes Build by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs read by Build.
type builderConfig struct {
	// rankCost maps wishlist position (0 = most preferred) to edge cost.
	rankCost func(rank int) int64
	// pairCap is the item→recipient capacity; ignored when pairAllotment.
	pairCap int64
	// pairAllotment sets item→recipient capacity to the recipient's allotment.
	pairAllotment bool
	unknown       UnknownPolicy
	logger        *slog.Logger
}

// newBuilderConfig applies opts over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rankCost: zeroCost,
		pairCap:  DefaultPairCapacity,
		unknown:  RejectUnknown,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func zeroCost(int) int64 { return 0 }

// WithRankCost sets the cost of an item→recipient edge from the position of
// the item in the recipient's wishlist. Negative costs are allowed but may
// create negative cycles; see flow.MinCostFlow. Panics on nil.
func WithRankCost(fn func(rank int) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithRankCost(nil)")
	}
	return func(c *builderConfig) { c.rankCost = fn }
}

// WithLinearRankCost charges rank units per allocated item: the first wishlist
// entry costs 0, the second 1, and so on.
func WithLinearRankCost() BuilderOption {
	return WithRankCost(func(rank int) int64 { return int64(rank) })
}

// WithPairCapacity sets the capacity of every item→recipient edge.
// Panics on negative values.
func WithPairCapacity(n int64) BuilderOption {
	if n < 0 {
		panic("builder: WithPairCapacity(n<0)")
	}
	return func(c *builderConfig) {
		c.pairCap = n
		c.pairAllotment = false
	}
}

// WithAllotmentPairCapacity lets a recipient take several units of the same
// item, up to its whole allotment.
func WithAllotmentPairCapacity() BuilderOption {
	return func(c *builderConfig) { c.pairAllotment = true }
}

// WithUnknownReferences selects the policy for undeclared wishlist entries.
func WithUnknownReferences(p UnknownPolicy) BuilderOption {
	if p != RejectUnknown && p != IgnoreUnknown {
		panic("builder: WithUnknownReferences(invalid policy)")
	}
	return func(c *builderConfig) { c.unknown = p }
}

// WithLogger sets the logger receiving Debug records during Build.
// Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}
