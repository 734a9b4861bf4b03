// Package commands contains the write operations of the supply chain
// engine. Implements the Command pattern for the CQRS write side. Every
// handler follows the same shape: validate the command, authorize the
// caller's role, run all reads and state checks inside one unit of work,
// and commit every resulting write together.
package commands

import (
	"context"
	"time"

	"pharmaledger/internal/core/ports"
)

// Clock supplies record timestamps. The embedded server passes time.Now;
// the chaincode adapter passes the transaction timestamp so that every
// endorsing peer computes identical state.
type Clock func() time.Time

// Unit of Work interfaces provide transaction management for command
// handlers. Each command declares the narrowest unit it needs.
type (
	// TxManager handles the transaction lifecycle of one invocation.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		TxID() string
	}

	// CompanyRepoFactory provides access to the company repository within
	// a transaction.
	CompanyRepoFactory interface {
		Companies() ports.CompanyRepository
	}

	// DrugRepoFactory provides access to the drug repository within a
	// transaction.
	DrugRepoFactory interface {
		Drugs() ports.DrugRepository
	}

	// PurchaseOrderRepoFactory provides access to the purchase order
	// repository within a transaction.
	PurchaseOrderRepoFactory interface {
		PurchaseOrders() ports.PurchaseOrderRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository
	// within a transaction.
	ShipmentRepoFactory interface {
		Shipments() ports.ShipmentRepository
	}

	// CompanyUoW manages transactions for company registration.
	CompanyUoW interface {
		TxManager
		CompanyRepoFactory
	}

	// CompanyUoWFactory creates company unit of work instances.
	CompanyUoWFactory interface {
		Create() CompanyUoW
	}

	// DrugUoW manages transactions that touch drug units and the
	// companies they reference. Used by addDrug and retailDrug.
	DrugUoW interface {
		TxManager
		CompanyRepoFactory
		DrugRepoFactory
	}

	// DrugUoWFactory creates drug unit of work instances.
	DrugUoWFactory interface {
		Create() DrugUoW
	}

	// PurchaseOrderUoW manages transactions for purchase order creation.
	PurchaseOrderUoW interface {
		TxManager
		CompanyRepoFactory
		PurchaseOrderRepoFactory
	}

	// PurchaseOrderUoWFactory creates purchase order unit of work
	// instances.
	PurchaseOrderUoWFactory interface {
		Create() PurchaseOrderUoW
	}

	// ShipmentUoW manages transactions that coordinate shipments with the
	// purchase orders, drug units, and companies they involve.
	ShipmentUoW interface {
		TxManager
		CompanyRepoFactory
		DrugRepoFactory
		PurchaseOrderRepoFactory
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}
)
