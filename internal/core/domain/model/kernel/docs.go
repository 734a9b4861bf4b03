// Package kernel contains shared value objects used across the domain model.
// It currently holds the composite ledger Key, the identity scheme every
// entity in the supply chain is addressed by.
package kernel
