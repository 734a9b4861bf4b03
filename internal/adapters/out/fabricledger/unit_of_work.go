package fabricledger

import (
	"context"

	"pharmaledger/internal/adapters/out/ledgerrepo/companyrepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/drugrepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/porepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/shipmentrepo"
	"pharmaledger/internal/core/ports"
)

// StubUnitOfWork satisfies the unit of work contract over a chaincode
// invocation. Begin, Commit, and Rollback are no-ops: the peer stages every
// PutState in the transaction's write set and the whole set commits or is
// discarded with the transaction, so atomicity holds without any work here.
// An invocation that returns an error never reaches ordering, which is the
// rollback path.
type StubUnitOfWork struct {
	ledger *StubLedger
}

// NewStubUnitOfWork creates a unit of work over the invocation's ledger.
func NewStubUnitOfWork(ledger *StubLedger) *StubUnitOfWork {
	return &StubUnitOfWork{ledger: ledger}
}

// Begin is a no-op; the transaction is already open.
func (uow *StubUnitOfWork) Begin(_ context.Context) error {
	return nil
}

// Commit is a no-op; the write set commits with the transaction.
func (uow *StubUnitOfWork) Commit(_ context.Context) error {
	return nil
}

// Rollback is a no-op; a failed invocation discards the write set.
func (uow *StubUnitOfWork) Rollback(_ context.Context) error {
	return nil
}

// TxID returns the invoking transaction's identifier.
func (uow *StubUnitOfWork) TxID() string {
	return uow.ledger.TxID()
}

// Companies returns a company repository over the invocation's stub.
func (uow *StubUnitOfWork) Companies() ports.CompanyRepository {
	return companyrepo.NewLedgerCompanyRepository(uow.ledger)
}

// Drugs returns a drug repository over the invocation's stub.
func (uow *StubUnitOfWork) Drugs() ports.DrugRepository {
	return drugrepo.NewLedgerDrugRepository(uow.ledger)
}

// PurchaseOrders returns a purchase order repository over the invocation's
// stub.
func (uow *StubUnitOfWork) PurchaseOrders() ports.PurchaseOrderRepository {
	return porepo.NewLedgerPurchaseOrderRepository(uow.ledger)
}

// Shipments returns a shipment repository over the invocation's stub.
func (uow *StubUnitOfWork) Shipments() ports.ShipmentRepository {
	return shipmentrepo.NewLedgerShipmentRepository(uow.ledger)
}
