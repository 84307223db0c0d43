package btree

import "errors"

// ErrInvariant signals that a structural invariant check failed. It is only
// produced by Check; the engine proper treats invariant violations as
// programming defects and panics via assert instead of recovering.
var ErrInvariant = errors.New("btree: structural invariant violated")
