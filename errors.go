package dhsvm

import "errors"

// Sentinel errors returned by the topographic index computation.
var (
	// ErrUnsupportedDirs indicates a flow-direction scheme other than the
	// 8-neighbour scheme; no other configuration is supported.
	ErrUnsupportedDirs = errors.New("dhsvm: only the 8-direction flow scheme is supported")
	// ErrAllocation indicates the scratch grids could not be sized.
	ErrAllocation = errors.New("dhsvm: scratch grid allocation failed")
	// ErrBadOrder indicates the supplied cell ordering violates the
	// descending-elevation contract.
	ErrBadOrder = errors.New("dhsvm: invalid descending-elevation cell ordering")
)
