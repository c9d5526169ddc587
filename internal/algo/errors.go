package algo

import "errors"

var (
	// ErrUnknownAlgorithm indicates a lookup for an id that is not registered.
	ErrUnknownAlgorithm = errors.New("algo: unknown algorithm")

	// ErrDuplicateAlgorithm indicates two definitions registered under one id.
	ErrDuplicateAlgorithm = errors.New("algo: duplicate algorithm id")
)
