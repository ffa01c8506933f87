// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: node/edge allocation and read-only queries.
// Determinism:
//   - Node and edge ids are issued densely in allocation order.
//   - Edges() and Outgoing() enumerate in insertion order.

package core

import "fmt"

// push appends a node and its empty adjacency bucket, assigning the next id.
func (n *Network) push(node Node) NodeID {
	node.ID = NodeID(len(n.nodes))
	n.nodes = append(n.nodes, node)
	n.out = append(n.out, nil)

	return node.ID
}

// AddNode allocates a fresh labeled node and returns its identifier.
// Names are not required to be unique at this level; package builder
// enforces uniqueness per category.
// Complexity: O(1) amortized.
func (n *Network) AddNode(name string) NodeID {
	return n.push(Node{Role: RoleLabeled, Name: name})
}

// AddEdge registers a directed edge from→to and returns its identifier.
//
// Steps:
//  1. Validate both endpoints were allocated (ErrInvalidNode).
//  2. Validate capacity ≥ 0 or CapacityUnset (ErrNegativeCapacity).
//  3. Build the Edge, apply opts, append to the catalog and to out[from].
//
// Parallel edges are allowed and each gets its own id; nothing is deduplicated.
// Complexity: O(1) amortized.
func (n *Network) AddEdge(from, to NodeID, capacity int64, opts ...EdgeOption) (EdgeID, error) {
	if !n.HasNode(from) {
		return 0, fmt.Errorf("AddEdge(%d→%d): from: %w", from, to, ErrInvalidNode)
	}
	if !n.HasNode(to) {
		return 0, fmt.Errorf("AddEdge(%d→%d): to: %w", from, to, ErrInvalidNode)
	}
	if capacity < 0 && capacity != CapacityUnset {
		return 0, fmt.Errorf("AddEdge(%d→%d, cap=%d): %w", from, to, capacity, ErrNegativeCapacity)
	}

	e := Edge{ID: EdgeID(len(n.edges)), From: from, To: to, Capacity: capacity}
	for _, opt := range opts {
		opt(&e)
	}
	n.edges = append(n.edges, e)
	n.out[from] = append(n.out[from], e.ID)

	return e.ID, nil
}

// Source returns the identifier of the designated source.
func (n *Network) Source() NodeID { return SourceID }

// Sink returns the identifier of the designated sink.
func (n *Network) Sink() NodeID { return SinkID }

// HasNode reports whether id was allocated by this Network.
func (n *Network) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(n.nodes)
}

// NodeCount returns the number of allocated nodes, Source and Sink included.
func (n *Network) NodeCount() int { return len(n.nodes) }

// EdgeCount returns the number of edges.
func (n *Network) EdgeCount() int { return len(n.edges) }

// Node returns the node with the given id.
func (n *Network) Node(id NodeID) (Node, error) {
	if !n.HasNode(id) {
		return Node{}, fmt.Errorf("Node(%d): %w", id, ErrInvalidNode)
	}

	return n.nodes[id], nil
}

// Label returns a display label for id: "Source", "Sink" or the node name.
// Unknown ids yield an empty string.
func (n *Network) Label(id NodeID) string {
	if !n.HasNode(id) {
		return ""
	}
	node := n.nodes[id]
	if node.Role == RoleLabeled {
		return node.Name
	}

	return node.Role.String()
}

// Edge returns the edge with the given id.
func (n *Network) Edge(id EdgeID) (Edge, error) {
	if id < 0 || int(id) >= len(n.edges) {
		return Edge{}, fmt.Errorf("Edge(%d): %w", id, ErrInvalidEdge)
	}

	return n.edges[id], nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E)
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// Outgoing returns the ids of edges leaving id, in insertion order.
// The returned slice is a copy; unknown ids yield nil.
func (n *Network) Outgoing(id NodeID) []EdgeID {
	if !n.HasNode(id) {
		return nil
	}
	ids := make([]EdgeID, len(n.out[id]))
	copy(ids, n.out[id])

	return ids
}
