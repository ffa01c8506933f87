package flow

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/giftflow/core"
)

// Sentinel errors returned by the solvers.
var (
	// ErrNilNetwork is returned when a nil *core.Network is passed.
	ErrNilNetwork = errors.New("flow: network is nil")

	// ErrDegenerateNetwork is returned when source and sink are the same node.
	ErrDegenerateNetwork = errors.New("flow: source equals sink")

	// ErrBadOption is returned when FlowOptions holds a meaningless value.
	ErrBadOption = errors.New("flow: invalid option")

	// ErrResourceExhausted is returned when the augmentation budget runs out
	// before the flow is maximal. A retry with a larger budget may succeed.
	ErrResourceExhausted = errors.New("flow: augmentation budget exhausted")

	// ErrNegativeCycle is returned by MinCostFlow when a negative-cost cycle is
	// reachable from the source in the residual graph.
	ErrNegativeCycle = errors.New("flow: negative-cost cycle reachable from source")
)

// DefaultEdgeCapacity is the capacity given to edges added with
// core.CapacityUnset unless FlowOptions.DefaultCapacity says otherwise.
const DefaultEdgeCapacity int64 = 1

// FlowOptions configures both solvers.
//   - DefaultCapacity: capacity for edges carrying core.CapacityUnset (≥ 0).
//   - MaxAugmentations: upper bound on augmentations; 0 means unlimited.
//   - Logger: receives one Debug record per augmentation; nil discards.
type FlowOptions struct {
	DefaultCapacity  int64
	MaxAugmentations int
	Logger           *slog.Logger
}

// DefaultOptions returns the production defaults:
//
//	DefaultCapacity  = DefaultEdgeCapacity (1)
//	MaxAugmentations = 0 (unlimited)
//	Logger           = discard
func DefaultOptions() FlowOptions {
	return FlowOptions{
		DefaultCapacity:  DefaultEdgeCapacity,
		MaxAugmentations: 0,
		Logger:           discardLogger(),
	}
}

// resolveOptions returns the defaults for nil, validates explicit values and
// fills a nil Logger.
func resolveOptions(opts *FlowOptions) (FlowOptions, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	o := *opts
	if o.DefaultCapacity < 0 {
		return o, errorf("DefaultCapacity=%d (must be ≥ 0): %w", o.DefaultCapacity, ErrBadOption)
	}
	if o.MaxAugmentations < 0 {
		return o, errorf("MaxAugmentations=%d (must be ≥ 0): %w", o.MaxAugmentations, ErrBadOption)
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}

	return o, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Step is one edge traversal of an augmenting path. Forward is false when the
// path cancelled flow by walking the edge backwards.
type Step struct {
	Edge    core.EdgeID
	Forward bool
}

// Augmentation records one augmenting path found by MinCostFlow.
// UnitCost is the residual cost of the path per unit of flow.
type Augmentation struct {
	Steps    []Step
	Amount   int64
	UnitCost int64
}

// ForwardOnly reports whether every step traverses its edge forwards.
func (a Augmentation) ForwardOnly() bool {
	for _, st := range a.Steps {
		if !st.Forward {
			return false
		}
	}

	return true
}

// Result is the outcome of one solve.
//
// Flow and Capacity are indexed by core.EdgeID. Capacity holds the capacity
// the solver actually used (explicit, or the fallback for CapacityUnset).
// Cost is Σ Flow[e]·cost(e) for both solvers. Augmentations is populated by
// MinCostFlow only.
type Result struct {
	Source        core.NodeID
	Sink          core.NodeID
	Value         int64
	Cost          int64
	Flow          []int64
	Capacity      []int64
	Augmentations []Augmentation
}

// FlowOn returns the flow routed through edge id (0 for unknown ids).
func (r *Result) FlowOn(id core.EdgeID) int64 {
	if id < 0 || int(id) >= len(r.Flow) {
		return 0
	}

	return r.Flow[id]
}

// Residual returns capacity − flow for edge id (0 for unknown ids).
func (r *Result) Residual(id core.EdgeID) int64 {
	if id < 0 || int(id) >= len(r.Flow) {
		return 0
	}

	return r.Capacity[id] - r.Flow[id]
}

// Saturated reports whether edge id carries flow equal to its capacity.
func (r *Result) Saturated(id core.EdgeID) bool {
	return id >= 0 && int(id) < len(r.Flow) && r.Flow[id] == r.Capacity[id]
}
