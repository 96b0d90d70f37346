package models

import "errors"

// Domain errors for retrieval operations
var (
	// ErrBackendUnavailable indicates the relational/vector backend could not be reached.
	// Transient; callers may retry, this package never does.
	ErrBackendUnavailable = errors.New("search backend unavailable")

	// ErrInvalidReference indicates a reference string that does not parse
	// as "Book Chapter:Verse".
	ErrInvalidReference = errors.New("invalid verse reference")

	// ErrReferenceNotFound indicates a well-formed reference absent from the corpus.
	ErrReferenceNotFound = errors.New("verse reference not found")

	// ErrInvalidRange indicates a verse range where start > end.
	ErrInvalidRange = errors.New("invalid verse range")
)
