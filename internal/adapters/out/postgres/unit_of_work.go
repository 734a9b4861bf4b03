package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pharmaledger/internal/adapters/out/ledgerrepo/companyrepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/drugrepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/porepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/shipmentrepo"
	"pharmaledger/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over a gorm database
// connection. Each business operation gets a fresh instance with its own
// database transaction and transaction id, isolated from concurrent
// operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for gorm-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one engine invocation.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:   f.db,
		txID: uuid.NewString(),
	}
}

// GormUnitOfWork coordinates one database transaction per engine
// invocation. The repositories it hands out run over the transaction
// handle, so reads observe the invocation's own writes and Commit
// publishes them all atomically.
type GormUnitOfWork struct {
	db   *gorm.DB
	tx   *gorm.DB
	txID string
}

// Begin initiates the database transaction. Multiple calls to Begin on the
// same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the transaction. After commit
// the unit of work cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the transaction. Rolling back
// after Commit, as from a deferred call, is a no-op.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// TxID returns the transaction identifier of this unit of work.
func (uow *GormUnitOfWork) TxID() string {
	return uow.txID
}

// Companies returns a company repository bound to this transaction.
func (uow *GormUnitOfWork) Companies() ports.CompanyRepository {
	return companyrepo.NewLedgerCompanyRepository(uow.ledger())
}

// Drugs returns a drug repository bound to this transaction.
func (uow *GormUnitOfWork) Drugs() ports.DrugRepository {
	return drugrepo.NewLedgerDrugRepository(uow.ledger())
}

// PurchaseOrders returns a purchase order repository bound to this
// transaction.
func (uow *GormUnitOfWork) PurchaseOrders() ports.PurchaseOrderRepository {
	return porepo.NewLedgerPurchaseOrderRepository(uow.ledger())
}

// Shipments returns a shipment repository bound to this transaction.
func (uow *GormUnitOfWork) Shipments() ports.ShipmentRepository {
	return shipmentrepo.NewLedgerShipmentRepository(uow.ledger())
}

// ledger exposes the transaction as a ports.Ledger for the shared codecs.
// Falls back to the connection when no transaction is open, so read-only
// callers can skip Begin.
func (uow *GormUnitOfWork) ledger() *GormLedger {
	if uow.tx != nil {
		return newGormLedgerWithTxID(uow.tx, uow.txID)
	}
	return newGormLedgerWithTxID(uow.db, uow.txID)
}
