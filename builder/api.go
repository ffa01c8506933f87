// SPDX-License-Identifier: MIT
// Package: giftflow/builder
//
// api.go: Item/Recipient input types, Build and the Allocation handle.
//
// Contract:
//   • Validation runs to completion before the first node is allocated.
//   • Determinism: same input order and options ⇒ identical node/edge ids.

package builder

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/giftflow/core"
)

const methodBuild = "Build"

// Item is a supply of one item type.
type Item struct {
	Name     string
	Quantity int64
}

// Recipient is a consumer accepting only wishlist items, up to MaxAllotment
// units in total. Wishlist order is preference order (index 0 first).
type Recipient struct {
	Name         string
	Wishlist     []string
	MaxAllotment int64
}

// Allocation is a built network together with the name→node resolution used
// to build it.
type Allocation struct {
	net        *core.Network
	items      []Item
	recipients []Recipient
	itemNode   map[string]core.NodeID
	recipNode  map[string]core.NodeID
}

// Network returns the built flow network.
func (a *Allocation) Network() *core.Network { return a.net }

// Items returns a copy of the item input in build order.
func (a *Allocation) Items() []Item {
	out := make([]Item, len(a.items))
	copy(out, a.items)

	return out
}

// Recipients returns a copy of the recipient input in build order.
func (a *Allocation) Recipients() []Recipient {
	out := make([]Recipient, len(a.recipients))
	for i, r := range a.recipients {
		out[i] = r
		out[i].Wishlist = append([]string(nil), r.Wishlist...)
	}

	return out
}

// ItemNode returns the node of the named item.
func (a *Allocation) ItemNode(name string) (core.NodeID, bool) {
	id, ok := a.itemNode[name]

	return id, ok
}

// RecipientNode returns the node of the named recipient.
func (a *Allocation) RecipientNode(name string) (core.NodeID, bool) {
	id, ok := a.recipNode[name]

	return id, ok
}

// Build constructs the allocation network for items and recipients.
//
// Steps:
//  1. Resolve options.
//  2. Index item names (ErrEmptyName, ErrDuplicateName).
//  3. Index recipient names (same checks).
//  4. Resolve every wishlist to item indices with their rank; duplicates
//     within one wishlist keep the first occurrence; undeclared names follow
//     the UnknownPolicy.
//  5. Allocate nodes, then emit edges in the documented order.
//
// Complexity: O(I + R + W) where W is the total wishlist length, plus
// O(I·R) edge emission in the worst case.
func Build(items []Item, recipients []Recipient, opts ...BuilderOption) (*Allocation, error) {
	// 1) Options
	cfg := newBuilderConfig(opts...)

	// 2) Items
	itemIdx := make(map[string]int, len(items))
	for i, it := range items {
		if it.Name == "" {
			return nil, fmt.Errorf("%s: item #%d: %w", methodBuild, i, ErrEmptyName)
		}
		if _, dup := itemIdx[it.Name]; dup {
			return nil, fmt.Errorf("%s: item %q: %w", methodBuild, it.Name, ErrDuplicateName)
		}
		if it.Quantity < 0 {
			return nil, fmt.Errorf("%s: item %q quantity=%d: %w",
				methodBuild, it.Name, it.Quantity, core.ErrNegativeCapacity)
		}
		itemIdx[it.Name] = i
	}

	// 3) Recipients
	recipIdx := make(map[string]int, len(recipients))
	for j, r := range recipients {
		if r.Name == "" {
			return nil, fmt.Errorf("%s: recipient #%d: %w", methodBuild, j, ErrEmptyName)
		}
		if _, dup := recipIdx[r.Name]; dup {
			return nil, fmt.Errorf("%s: recipient %q: %w", methodBuild, r.Name, ErrDuplicateName)
		}
		if r.MaxAllotment < 0 {
			return nil, fmt.Errorf("%s: recipient %q allotment=%d: %w",
				methodBuild, r.Name, r.MaxAllotment, core.ErrNegativeCapacity)
		}
		recipIdx[r.Name] = j
	}

	// 4) Wishlists: ranks[j][i] = rank of item i for recipient j
	ranks := make([]map[int]int, len(recipients))
	for j, r := range recipients {
		ranks[j] = make(map[int]int, len(r.Wishlist))
		for rank, name := range r.Wishlist {
			i, ok := itemIdx[name]
			if !ok {
				if cfg.unknown == IgnoreUnknown {
					cfg.logger.Debug("ignoring unknown wishlist entry",
						slog.String("recipient", r.Name), slog.String("item", name))
					continue
				}
				return nil, fmt.Errorf("%s: recipient %q wishes for %q: %w",
					methodBuild, r.Name, name, ErrUnknownReference)
			}
			if _, seen := ranks[j][i]; !seen {
				ranks[j][i] = rank
			}
		}
	}

	// 5) Nodes and edges
	a := &Allocation{
		net:        core.NewNetwork(),
		items:      make([]Item, len(items)),
		recipients: make([]Recipient, len(recipients)),
		itemNode:   make(map[string]core.NodeID, len(items)),
		recipNode:  make(map[string]core.NodeID, len(recipients)),
	}
	copy(a.items, items)
	itemIDs := make([]core.NodeID, len(items))
	for i, it := range items {
		itemIDs[i] = a.net.AddNode(it.Name)
		a.itemNode[it.Name] = itemIDs[i]
	}
	recipIDs := make([]core.NodeID, len(recipients))
	for j, r := range recipients {
		a.recipients[j] = r
		a.recipients[j].Wishlist = append([]string(nil), r.Wishlist...)
		recipIDs[j] = a.net.AddNode(r.Name)
		a.recipNode[r.Name] = recipIDs[j]
	}

	for i, it := range items {
		if _, err := a.net.AddEdge(a.net.Source(), itemIDs[i], it.Quantity); err != nil {
			return nil, fmt.Errorf("%s: Source→%s: %w", methodBuild, it.Name, err)
		}
		for j, r := range recipients {
			rank, ok := ranks[j][i]
			if !ok {
				continue
			}
			pc := cfg.pairCap
			if cfg.pairAllotment {
				pc = r.MaxAllotment
			}
			cost := cfg.rankCost(rank)
			if _, err := a.net.AddEdge(itemIDs[i], recipIDs[j], pc, core.WithCost(cost)); err != nil {
				return nil, fmt.Errorf("%s: %s→%s: %w", methodBuild, it.Name, r.Name, err)
			}
		}
	}
	for j, r := range recipients {
		if _, err := a.net.AddEdge(recipIDs[j], a.net.Sink(), r.MaxAllotment); err != nil {
			return nil, fmt.Errorf("%s: %s→Sink: %w", methodBuild, r.Name, err)
		}
	}

	cfg.logger.Debug("network built",
		slog.Int("items", len(items)),
		slog.Int("recipients", len(recipients)),
		slog.Int("nodes", a.net.NodeCount()),
		slog.Int("edges", a.net.EdgeCount()),
	)

	return a, nil
}
