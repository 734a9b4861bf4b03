package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per invocation.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one engine invocation. All reads
// inside it observe a consistent snapshot plus the invocation's own staged
// writes; Commit makes every staged write visible together, Rollback
// discards them all. The engine never caches state across units of work.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit atomically publishes every write staged in this unit of work.
	Commit(ctx context.Context) error

	// Rollback discards all staged writes.
	Rollback(ctx context.Context) error

	// TxID returns the transaction identifier of this unit of work.
	TxID() string

	// Companies returns a CompanyRepository bound to this transaction.
	Companies() CompanyRepository

	// Drugs returns a DrugRepository bound to this transaction.
	Drugs() DrugRepository

	// PurchaseOrders returns a PurchaseOrderRepository bound to this transaction.
	PurchaseOrders() PurchaseOrderRepository

	// Shipments returns a ShipmentRepository bound to this transaction.
	Shipments() ShipmentRepository
}
