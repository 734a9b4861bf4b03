package memledger

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"pharmaledger/internal/adapters/out/ledgerrepo/companyrepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/drugrepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/porepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/shipmentrepo"
	"pharmaledger/internal/core/domain/model/kernel"
	"pharmaledger/internal/core/ports"
)

var (
	errNoActiveTransaction = errors.New("memledger: no active transaction")
	errNoMoreModifications = errors.New("memledger: history iterator is exhausted")
)

// MemUnitOfWorkFactory creates unit of work instances over a shared Store.
type MemUnitOfWorkFactory struct {
	store *Store
}

// NewMemUnitOfWorkFactory creates a factory bound to the given store.
func NewMemUnitOfWorkFactory(store *Store) *MemUnitOfWorkFactory {
	return &MemUnitOfWorkFactory{store: store}
}

// Create produces a fresh unit of work with its own transaction id and
// staging area.
func (f *MemUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &MemUnitOfWork{
		store: f.store,
		txID:  uuid.NewString(),
	}
}

// MemUnitOfWork stages writes against the store and publishes them all at
// once on Commit. Reads within the unit see staged writes first, then the
// committed state, so an invocation observes its own pending changes.
//
// MemUnitOfWork implements ports.Ledger; the shared ledgerrepo codecs run
// directly over it.
type MemUnitOfWork struct {
	store  *Store
	txID   string
	staged map[string][]byte
}

// Begin opens the staging area. Calling Begin on an already begun unit is a
// no-op.
func (uow *MemUnitOfWork) Begin(_ context.Context) error {
	if uow.staged == nil {
		uow.staged = make(map[string][]byte)
	}
	return nil
}

// Commit publishes every staged write to the store atomically.
func (uow *MemUnitOfWork) Commit(_ context.Context) error {
	if uow.staged == nil {
		return errNoActiveTransaction
	}

	uow.store.apply(uow.txID, uow.staged)
	uow.staged = nil
	return nil
}

// Rollback discards all staged writes. Rolling back after Commit, as from a
// deferred call, is a no-op.
func (uow *MemUnitOfWork) Rollback(_ context.Context) error {
	uow.staged = nil
	return nil
}

// TxID returns the transaction identifier of this unit of work.
func (uow *MemUnitOfWork) TxID() string {
	return uow.txID
}

// Companies returns a company repository bound to this transaction.
func (uow *MemUnitOfWork) Companies() ports.CompanyRepository {
	return companyrepo.NewLedgerCompanyRepository(uow)
}

// Drugs returns a drug repository bound to this transaction.
func (uow *MemUnitOfWork) Drugs() ports.DrugRepository {
	return drugrepo.NewLedgerDrugRepository(uow)
}

// PurchaseOrders returns a purchase order repository bound to this
// transaction.
func (uow *MemUnitOfWork) PurchaseOrders() ports.PurchaseOrderRepository {
	return porepo.NewLedgerPurchaseOrderRepository(uow)
}

// Shipments returns a shipment repository bound to this transaction.
func (uow *MemUnitOfWork) Shipments() ports.ShipmentRepository {
	return shipmentrepo.NewLedgerShipmentRepository(uow)
}

// GetState reads a key, honouring this unit's staged writes first.
func (uow *MemUnitOfWork) GetState(_ context.Context, key kernel.Key) ([]byte, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	if value, ok := uow.staged[key.String()]; ok {
		return cloneBytes(value), nil
	}

	value, ok := uow.store.committed(key.String())
	if !ok {
		return nil, nil
	}
	return cloneBytes(value), nil
}

// PutState stages a write; it becomes durable only on Commit.
func (uow *MemUnitOfWork) PutState(_ context.Context, key kernel.Key, value []byte) error {
	if err := key.Validate(); err != nil {
		return err
	}
	if uow.staged == nil {
		return errNoActiveTransaction
	}

	uow.staged[key.String()] = cloneBytes(value)
	return nil
}

// History iterates the committed history of a key; staged writes are not
// part of history until Commit.
func (uow *MemUnitOfWork) History(ctx context.Context, key kernel.Key) (ports.HistoryIterator, error) {
	return uow.store.History(ctx, key)
}
