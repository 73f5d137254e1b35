// Package match ranks known names against a requested one. It backs the
// "did you mean" hints for unknown Go field paths and the wire path search of
// the wirepath CLI.
//
// Names are normalized before comparison (CamelCase split, case folded,
// separators dropped), so "customerID", "customer_id" and "CustomerId" are
// the same name.
package match
