// Package repository provides MongoDB-backed access to prediction and model
// package records.
package repository

import "errors"

// Error kinds surfaced to the transport layer. Repositories wrap these with
// fmt.Errorf("%w: ...") so every failure carries one human-readable message
// and handlers can classify with errors.Is.
var (
	// ErrInvalidID marks a malformed external identifier, caught before any
	// database round-trip.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrNotFound marks a lookup that matched no record, including list
	// calls that yielded zero rows.
	ErrNotFound = errors.New("not found")

	// ErrStore collapses any unexpected persistence failure, without
	// distinguishing cause.
	ErrStore = errors.New("store unavailable")
)
