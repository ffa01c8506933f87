// Package builder translates allocation input (item types with quantities,
// recipients with a wishlist and a maximum allotment) into a *core.Network
// ready for package flow.
//
// Topology (fixed, deterministic):
//
//	Source ──qty──▶ item ──pair──▶ recipient ──allotment──▶ Sink
//
//   - one node per item, one per recipient, plus Source and Sink;
//   - Source → item with capacity = item quantity;
//   - item → recipient for every wishlist match, capacity = pair capacity
//     (1 by default: at most one unit of a given item per recipient),
//     cost = rank cost of the entry (0 by default);
//   - recipient → Sink with capacity = maximum allotment.
//
// Emission order: nodes are Source, Sink, items in input order, recipients in
// input order. Edges are emitted per item in input order (its Source edge,
// then its recipient edges in recipient order), followed by all Sink edges.
// The same input therefore always produces the same node and edge ids.
//
// Names are resolved once, up front, into node ids; nothing downstream
// compares strings.
//
// Errors (sentinels, compare with errors.Is):
//
//	ErrEmptyName        - an item or recipient has an empty name.
//	ErrDuplicateName    - two items, or two recipients, share a name.
//	ErrUnknownReference - a wishlist names an undeclared item (RejectUnknown).
//	core.ErrNegativeCapacity - negative quantity or allotment.
//
// On any error Build returns a nil Allocation; a partially built network is
// never handed out.
package builder
