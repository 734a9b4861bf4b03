// Package fabricledger implements the key-value ledger over a Hyperledger
// Fabric chaincode stub. State changes written through the stub are staged
// in the transaction's write set and committed by the ordering service, so
// the unit-of-work semantics the engine expects come from Fabric itself.
package fabricledger

import (
	"context"
	"sort"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"pharmaledger/internal/core/domain/model/kernel"
	"pharmaledger/internal/core/ports"
)

// keyPrefix namespaces composite keys on the channel, matching the
// convention the network's records were originally written under.
const keyPrefix = "org.pharma-network.pharmanet."

// StubLedger adapts a chaincode stub to ports.Ledger.
type StubLedger struct {
	stub shim.ChaincodeStubInterface
}

// NewStubLedger creates a ledger over the invocation's stub.
func NewStubLedger(stub shim.ChaincodeStubInterface) *StubLedger {
	return &StubLedger{stub: stub}
}

func (l *StubLedger) compositeKey(key kernel.Key) (string, error) {
	return l.stub.CreateCompositeKey(keyPrefix+key.Namespace(), []string{key.ID()})
}

// GetState reads the current value under a key. The stub returns nil
// without error for absent keys, which matches the port contract directly.
func (l *StubLedger) GetState(_ context.Context, key kernel.Key) ([]byte, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	composite, err := l.compositeKey(key)
	if err != nil {
		return nil, err
	}

	return l.stub.GetState(composite)
}

// PutState stages a write in the transaction's write set.
func (l *StubLedger) PutState(_ context.Context, key kernel.Key, value []byte) error {
	if err := key.Validate(); err != nil {
		return err
	}

	composite, err := l.compositeKey(key)
	if err != nil {
		return err
	}

	return l.stub.PutState(composite, value)
}

// History returns the committed modifications of a key, oldest first. The
// peer does not guarantee an ordering for history scans, so the entries are
// buffered and sorted by commit timestamp.
func (l *StubLedger) History(_ context.Context, key kernel.Key) (ports.HistoryIterator, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	composite, err := l.compositeKey(key)
	if err != nil {
		return nil, err
	}

	iter, err := l.stub.GetHistoryForKey(composite)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = iter.Close()
	}()

	mods := make([]ports.StateModification, 0)
	for iter.HasNext() {
		km, err := iter.Next()
		if err != nil {
			return nil, err
		}
		if km.IsDelete {
			continue
		}

		mods = append(mods, ports.StateModification{
			TxID:      km.TxId,
			Value:     km.Value,
			Timestamp: km.Timestamp.AsTime(),
		})
	}

	sort.SliceStable(mods, func(i, j int) bool {
		return mods[i].Timestamp.Before(mods[j].Timestamp)
	})

	return &sliceIterator{mods: mods}, nil
}

// TxID returns the identifier of the invoking transaction.
func (l *StubLedger) TxID() string {
	return l.stub.GetTxID()
}
