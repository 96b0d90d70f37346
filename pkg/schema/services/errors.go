package services

import "errors"

// Embedding errors. Callers match with errors.Is and choose their own
// fallback; this package never retries.
var (
	// ErrEmbeddingUnavailable indicates the embedding service was unreachable
	// or timed out.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrEmbeddingMalformed indicates the returned vector does not match the
	// configured dimension.
	ErrEmbeddingMalformed = errors.New("embedding has unexpected dimension")
)
