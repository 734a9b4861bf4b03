package fabricledger

import (
	"errors"

	"pharmaledger/internal/core/ports"
)

var errIteratorExhausted = errors.New("fabricledger: history iterator is exhausted")

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
