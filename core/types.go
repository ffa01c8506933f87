// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge and Network types, sentinel errors and edge options.

package core

import "errors"

// Sentinel errors for network construction and lookup.
var (
	// ErrInvalidNode indicates that a node identifier was never allocated.
	ErrInvalidNode = errors.New("core: invalid node")

	// ErrInvalidEdge indicates that an edge identifier was never issued.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("core: negative capacity")
)

// CapacityUnset marks an edge whose capacity is left to the solver's
// fallback policy (see flow.FlowOptions.DefaultCapacity).
const CapacityUnset int64 = -1

// NodeID identifies a node within one Network.
type NodeID int

// EdgeID identifies an edge within one Network.
type EdgeID int

// Fixed identifiers of the two distinguished nodes.
const (
	SourceID NodeID = 0
	SinkID   NodeID = 1
)

// Role is the closed set of logical node roles.
type Role uint8

const (
	// RoleSource marks the network source.
	RoleSource Role = iota
	// RoleSink marks the network sink.
	RoleSink
	// RoleLabeled marks a node carrying a domain name.
	RoleLabeled
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleSource:
		return "Source"
	case RoleSink:
		return "Sink"
	case RoleLabeled:
		return "Labeled"
	default:
		return "Unknown"
	}
}

// Node is a network vertex. Name is empty for Source and Sink.
type Node struct {
	ID   NodeID
	Role Role
	Name string
}

// Edge is a directed connection From→To.
//
// Capacity is the upper bound on flow (or CapacityUnset); Cost is the
// per-unit weight used by min-cost solving. Edges are immutable once added.
type Edge struct {
	ID       EdgeID
	From     NodeID
	To       NodeID
	Capacity int64
	Cost     int64
}

// HasCapacity reports whether the edge carries an explicit capacity.
func (e Edge) HasCapacity() bool { return e.Capacity != CapacityUnset }

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithCost sets the per-unit cost of the edge. The default cost is 0.
func WithCost(cost int64) EdgeOption {
	return func(e *Edge) { e.Cost = cost }
}

// Network is the flow network data structure.
//
// nodes and edges are dense slices indexed by NodeID and EdgeID.
// out[u] lists the edges leaving u, in insertion order.
type Network struct {
	nodes []Node
	edges []Edge
	out   [][]EdgeID
}

// NewNetwork creates a Network holding only the Source and the Sink.
// Complexity: O(1)
func NewNetwork() *Network {
	n := &Network{
		nodes: make([]Node, 0, 2),
		out:   make([][]EdgeID, 0, 2),
	}
	n.push(Node{Role: RoleSource})
	n.push(Node{Role: RoleSink})

	return n
}
