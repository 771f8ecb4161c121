// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the requisition system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PackagingCalculator: A pure domain service computing the packaging
//     artifact of a requisition against a slot-cost catalog
//   - RequisitionWorkflow: The single writer of requisition status, driving
//     the lifecycle state machine with guarded, table-checked transitions
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
