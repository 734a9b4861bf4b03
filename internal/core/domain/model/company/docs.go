// Package company contains the Company aggregate and the organisational Role
// enumeration, including the purchase hierarchy ranks that gate purchase
// order creation.
package company
