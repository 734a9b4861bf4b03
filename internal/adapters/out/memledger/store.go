// Package memledger provides an in-memory key-value ledger with per-key
// change history and unit-of-work transaction support. It backs local
// development and the application-level tests; the durable deployments use
// the postgres or fabric adapters instead.
package memledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"pharmaledger/internal/core/domain/model/kernel"
	"pharmaledger/internal/core/ports"
)

// Store is an in-memory ledger. It holds the committed state of every key
// plus the full ordered history of committed modifications per key.
//
// Store itself implements ports.Ledger: direct writes commit immediately as
// single-write transactions. Multi-write atomicity goes through a
// MemUnitOfWork created by the factory.
type Store struct {
	mu      sync.RWMutex
	records map[string][]byte
	history map[string][]ports.StateModification

	// now supplies commit timestamps; replaceable in tests
	now func() time.Time
}

// NewStore creates an empty in-memory ledger.
func NewStore() *Store {
	return &Store{
		records: make(map[string][]byte),
		history: make(map[string][]ports.StateModification),
		now:     time.Now,
	}
}

// GetState reads the committed value under a key, or (nil, nil) when the key
// has never been written.
func (s *Store) GetState(_ context.Context, key kernel.Key) ([]byte, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key.String()]
	if !ok {
		return nil, nil
	}
	return cloneBytes(value), nil
}

// PutState commits a single write immediately, under its own transaction id.
func (s *Store) PutState(_ context.Context, key kernel.Key, value []byte) error {
	if err := key.Validate(); err != nil {
		return err
	}

	s.apply(uuid.NewString(), map[string][]byte{key.String(): cloneBytes(value)})
	return nil
}

// History returns an iterator over the committed modifications of a key,
// oldest first. The iterator works on a snapshot taken at call time.
func (s *Store) History(_ context.Context, key kernel.Key) (ports.HistoryIterator, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	mods := s.history[key.String()]
	snapshot := make([]ports.StateModification, len(mods))
	copy(snapshot, mods)

	return &sliceIterator{mods: snapshot}, nil
}

// TxID returns a fresh identifier; direct store writes are each their own
// transaction, so there is no ambient one to report.
func (s *Store) TxID() string {
	return uuid.NewString()
}

// apply commits a batch of writes atomically under one transaction id.
func (s *Store) apply(txID string, writes map[string][]byte) {
	at := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range writes {
		s.records[key] = value
		s.history[key] = append(s.history[key], ports.StateModification{
			TxID:      txID,
			Value:     cloneBytes(value),
			Timestamp: at,
		})
	}
}

// committed reads the committed value without copying; callers copy.
func (s *Store) committed(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key]
	return value, ok
}

type sliceIterator struct {
	mods []ports.StateModification
	next int
}

func (it *sliceIterator) HasNext() bool {
	return it.next < len(it.mods)
}

func (it *sliceIterator) Next() (*ports.StateModification, error) {
	if !it.HasNext() {
		return nil, errNoMoreModifications
	}

	mod := it.mods[it.next]
	it.next++
	return &mod, nil
}

func (it *sliceIterator) Close() error {
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
