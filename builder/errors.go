// SPDX-License-Identifier: MIT
// Package: giftflow/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached at the call site with %w, never baked into the sentinel.
//   • Build never panics; option constructors panic on meaningless values.

package builder

import "errors"

// ErrEmptyName indicates an item or recipient with an empty name.
var ErrEmptyName = errors.New("builder: empty name")

// ErrDuplicateName indicates two items, or two recipients, sharing a name.
// Names are the join key between wishlists and items, so they must be unique
// within their category.
var ErrDuplicateName = errors.New("builder: duplicate name")

// ErrUnknownReference indicates a wishlist entry that does not resolve to a
// declared item.
var ErrUnknownReference = errors.New("builder: unknown reference")
