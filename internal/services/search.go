package services

import (
	"context"

	"github.com/bible-companion-api/internal/models"
	"github.com/bible-companion-api/internal/repository"
	pkgservices "github.com/bible-companion-api/pkg/schema/services"
)

// SearchService handles semantic verse search: query text is embedded, then
// ranked against pre-computed verse embeddings.
type SearchService struct {
	vectorRepo       repository.VectorSearchRepository
	embeddingsSvc    *pkgservices.EmbeddingsService
	defaultThreshold float64
	defaultLimit     int
}

// NewSearchService creates a new semantic search service
func NewSearchService(
	vectorRepo repository.VectorSearchRepository,
	embeddingsSvc *pkgservices.EmbeddingsService,
	defaultThreshold float64,
	defaultLimit int,
) *SearchService {
	return &SearchService{
		vectorRepo:       vectorRepo,
		embeddingsSvc:    embeddingsSvc,
		defaultThreshold: defaultThreshold,
		defaultLimit:     defaultLimit,
	}
}

// SearchVerses embeds a query and performs ranked similarity search. A zero
// limit or negative threshold selects the configured defaults. Embedding
// failures surface with their distinguishable kinds so callers can degrade
// to emotion or curated search.
func (s *SearchService) SearchVerses(ctx context.Context, query string, threshold float64, limit int) ([]models.ScoredVerse, error) {
	if threshold < 0 {
		threshold = s.defaultThreshold
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	embedding, err := s.embeddingsSvc.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.vectorRepo.SearchVersesByEmbedding(ctx, embedding, threshold, limit)
}
