// Package sweep: sentinel error set, matched via errors.Is.
package sweep

import "errors"

var (
	// ErrBadConfig indicates a configuration that fails validation:
	// non-positive base rates, negative ratios, an unknown topology, or
	// a malformed axis.
	ErrBadConfig = errors.New("sweep: invalid configuration")

	// ErrEmptyResult indicates a nil result or a result with no cells was
	// handed to a reporter or store.
	ErrEmptyResult = errors.New("sweep: empty result")

	// ErrStoreClosed indicates a store operation after Close or before
	// Init.
	ErrStoreClosed = errors.New("sweep: store is not initialized")
)
