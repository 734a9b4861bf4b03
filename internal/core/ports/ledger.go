package ports

import (
	"context"
	"time"

	"pharmaledger/internal/core/domain/model/kernel"
)

// Ledger is the key-value ledger collaborator the transition engine writes
// through. Implementations must give read-your-writes consistency within one
// unit of work and durable, atomic commit of that unit's writes.
//
// GetState returns (nil, nil) when no record exists under the key, mirroring
// the Fabric chaincode stub the engine was designed against; callers decide
// whether absence is an error.
type Ledger interface {
	// GetState reads the current value under a composite key.
	GetState(ctx context.Context, key kernel.Key) ([]byte, error)

	// PutState stages a write of value under a composite key. The write
	// becomes visible to GetState within the same unit of work immediately,
	// and to other readers at commit.
	PutState(ctx context.Context, key kernel.Key, value []byte) error

	// History iterates the committed change history of a key, oldest first.
	History(ctx context.Context, key kernel.Key) (HistoryIterator, error)

	// TxID returns the identifier of the transaction this ledger handle is
	// bound to, recorded on created entities for traceability.
	TxID() string
}

// StateModification is one committed change of a key's value.
type StateModification struct {
	TxID      string
	Value     []byte
	Timestamp time.Time
}

// HistoryIterator walks a key's committed history in forward chronological
// order. It is a read-once sequential scan: not restartable, but requesting
// a fresh iterator re-reads from the beginning.
type HistoryIterator interface {
	// HasNext reports whether another modification remains.
	HasNext() bool

	// Next returns the next modification, oldest first.
	Next() (*StateModification, error)

	// Close releases resources held by the scan.
	Close() error
}
