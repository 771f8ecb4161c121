// Package requisition contains the aggregate root of the supply workflow: a
// requisition moving from submission through approval, packaging, dispatch
// assignment, transit, and settlement.
//
// The package includes:
//   - Status: the finite lifecycle states and the authoritative transition table
//   - Item: an immutable requisition line item with its physical dimensions
//   - Packaging / PackagingItem: the frozen packaging artifact computed once at
//     the approved-to-packaged edge and never recomputed or mutated afterwards
//   - Requisition: the aggregate root owning status, items, packaging snapshot,
//     batch reference, and the write-once lifecycle timestamps
//
// Status is mutated only through the aggregate's guarded transition methods;
// every method validates its edge against the transition table before applying
// any change, so a failed attempt leaves the aggregate untouched.
package requisition
