// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"requisition/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequisitionRepoFactory provides access to the requisition repository within a transaction.
	RequisitionRepoFactory interface {
		RequisitionRepository() ports.RequisitionRepository
	}

	// CatalogRepoFactory provides access to the slot-cost catalog within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// RequisitionUoW manages transactions for requisition-only operations.
	// Used when commands only modify requisition aggregates.
	RequisitionUoW interface {
		TxManager
		RequisitionRepoFactory
	}

	// RequisitionUoWFactory creates new requisition unit of work instances.
	RequisitionUoWFactory interface {
		Create() RequisitionUoW
	}

	// UoW manages transactions spanning requisition aggregates and catalog
	// reads. Used for commands whose guards consult the slot-cost catalog.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   reqRepo := uow.RequisitionRepository()
	//   catalogRepo := uow.CatalogRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		RequisitionRepoFactory
		CatalogRepoFactory
	}

	// UoWFactory creates new unit of work instances for catalog-aware operations.
	UoWFactory interface {
		Create() UoW
	}
)
