package repository

import (
	"context"

	"github.com/bible-companion-api/internal/models"
)

// VectorSearchRepository defines operations for vector similarity search
type VectorSearchRepository interface {
	// SearchVersesByEmbedding performs ranked vector similarity search on
	// verses. Results scoring strictly below threshold are excluded; at most
	// limit results are returned, descending by similarity. An empty result
	// is not an error.
	SearchVersesByEmbedding(ctx context.Context, embedding []float64, threshold float64, limit int) ([]models.ScoredVerse, error)
}

// VerseRepository defines exact and range reads keyed by (book, chapter, verse)
type VerseRepository interface {
	// GetByReference returns the verse with the given canonical reference
	// string, or models.ErrReferenceNotFound.
	GetByReference(ctx context.Context, reference string) (*models.Verse, error)

	// GetRange returns verses in [startVerse, endVerse] ascending by verse number.
	GetRange(ctx context.Context, book string, chapter, startVerse, endVerse int) ([]models.Verse, error)

	// GetChapter returns all verses of a chapter ascending by verse number.
	GetChapter(ctx context.Context, book string, chapter int) ([]models.Verse, error)
}

// CrossReferenceRepository defines edge reads keyed by from_reference
type CrossReferenceRepository interface {
	// GetRelated returns outgoing cross-reference edges ordered by votes
	// descending, stable on ties, truncated to limit. A verse with no edges
	// yields an empty slice.
	GetRelated(ctx context.Context, fromReference string, limit int) ([]models.CrossReference, error)
}

// EmotionTagRepository defines tag-set-intersection reads over emotion tags
type EmotionTagRepository interface {
	// SearchByTags returns verses whose stored tag set overlaps any of the
	// given tags, ordered by confidence descending, truncated to limit.
	SearchByTags(ctx context.Context, tags []string, limit int) ([]models.EmotionMatch, error)
}
