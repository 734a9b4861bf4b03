// Package postgres implements the key-value ledger and its unit of work
// over a relational database. Records live in ledger_records, one row per
// composite key with the serialized entity as jsonb; every committed write
// also appends a row to ledger_history, preserving the full provenance
// trail a blockchain backend would keep natively.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pharmaledger/internal/core/domain/model/kernel"
	"pharmaledger/internal/core/ports"
)

// LedgerRecordDTO is the current state of one ledger key.
type LedgerRecordDTO struct {
	Key       string `gorm:"primaryKey"`
	Namespace string `gorm:"index"`
	Value     []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for current state rows.
func (LedgerRecordDTO) TableName() string {
	return "ledger_records"
}

// LedgerHistoryDTO is one committed version of a ledger key.
type LedgerHistoryDTO struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Key       string `gorm:"index"`
	TxID      string `gorm:"column:tx_id"`
	Value     []byte `gorm:"type:jsonb"`
	Timestamp time.Time
}

// TableName specifies the database table name for history rows.
func (LedgerHistoryDTO) TableName() string {
	return "ledger_history"
}

// Migrate creates the ledger tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&LedgerRecordDTO{}, &LedgerHistoryDTO{})
}

// GormLedger implements ports.Ledger over a gorm connection or transaction
// handle. Writes through a transaction handle become visible to reads on
// the same handle immediately and to everyone else at commit, which is
// exactly the unit-of-work visibility the engine expects.
type GormLedger struct {
	db   *gorm.DB
	txID string
}

// NewGormLedger creates a ledger over the given connection. Each handle is
// tagged with its own transaction id.
func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db, txID: uuid.NewString()}
}

func newGormLedgerWithTxID(db *gorm.DB, txID string) *GormLedger {
	return &GormLedger{db: db, txID: txID}
}

// GetState reads the current value under a key, or (nil, nil) when no row
// exists.
func (l *GormLedger) GetState(ctx context.Context, key kernel.Key) ([]byte, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	var dto LedgerRecordDTO
	if err := l.db.WithContext(ctx).First(&dto, "key = ?", key.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return dto.Value, nil
}

// PutState upserts the current state row and appends a history row under
// this handle's transaction id.
func (l *GormLedger) PutState(ctx context.Context, key kernel.Key, value []byte) error {
	if err := key.Validate(); err != nil {
		return err
	}

	now := time.Now()
	record := LedgerRecordDTO{
		Key:       key.String(),
		Namespace: key.Namespace(),
		Value:     value,
		UpdatedAt: now,
	}

	err := l.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return err
	}

	history := LedgerHistoryDTO{
		Key:       key.String(),
		TxID:      l.txID,
		Value:     value,
		Timestamp: now,
	}
	return l.db.WithContext(ctx).Create(&history).Error
}

// History iterates the committed versions of a key, oldest first.
func (l *GormLedger) History(ctx context.Context, key kernel.Key) (ports.HistoryIterator, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	var dtos []LedgerHistoryDTO
	if err := l.db.WithContext(ctx).
		Where("key = ?", key.String()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	mods := make([]ports.StateModification, 0, len(dtos))
	for _, dto := range dtos {
		mods = append(mods, ports.StateModification{
			TxID:      dto.TxID,
			Value:     dto.Value,
			Timestamp: dto.Timestamp,
		})
	}

	return &sliceIterator{mods: mods}, nil
}

// TxID returns the transaction id writes through this handle are tagged
// with.
func (l *GormLedger) TxID() string {
	return l.txID
}

var errIteratorExhausted = errors.New("postgres: history iterator is exhausted")

type sliceIterator struct {
	mods []ports.StateModification
	next int
}

func (it *sliceIterator) HasNext() bool {
	return it.next < len(it.mods)
}

func (it *sliceIterator) Next() (*ports.StateModification, error) {
	if !it.HasNext() {
		return nil, errIteratorExhausted
	}

	mod := it.mods[it.next]
	it.next++
	return &mod, nil
}

func (it *sliceIterator) Close() error {
	return nil
}
