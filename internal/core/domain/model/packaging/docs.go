// Package packaging holds the read-only reference data that describes how much
// shipping slot capacity a unit of each packaging type consumes.
//
// The package contains:
//   - PackagingType: an enumeration of the supported packaging kinds
//   - SlotCost: the per-slot weight and volume ceilings for one packaging type
//   - Catalog: a validated lookup of SlotCost entries keyed by packaging type
//
// Nothing in this package is owned or mutated by the requisition workflow; the
// catalog is loaded by the caller and passed into the packaging calculator as
// plain input.
package packaging
