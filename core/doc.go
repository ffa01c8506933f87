// Package core defines the flow Network: an explicit node identifier space,
// directed edges with capacity and optional per-unit cost, and a designated
// Source and Sink.
//
// Node identifiers are small integers issued in allocation order. The Source
// is always node 0 and the Sink always node 1; every node created with
// AddNode carries a domain label (an item or recipient name). Edge
// identifiers are issued in insertion order as well, and both kinds of
// identifier are stable for the lifetime of the Network and never reused.
//
// Insertion order is part of the contract: Edges() and Outgoing() enumerate
// in the order edges were added, which is what the solvers in package flow
// use to break ties reproducibly.
//
// Errors:
//
//	ErrInvalidNode       - an edge endpoint was never allocated.
//	ErrInvalidEdge       - an edge identifier was never issued.
//	ErrNegativeCapacity  - capacity < 0 (other than CapacityUnset).
//
// Concurrency:
//
//	A Network is built once and then owned by a single solve. It carries no
//	internal locking; independent solves must use independent Networks.
package core
