package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bible-companion-api/pkg/schema/config"
)

// EmbeddingsService turns query text into fixed-dimension vectors using a
// pluggable backend. It owns the per-call deadline and the dimension check;
// it performs no retries.
type EmbeddingsService struct {
	embedder   Embedder
	dimensions int
}

var (
	embeddingsService *EmbeddingsService
	embeddingsOnce    sync.Once
	initErr           error
)

// GetEmbeddingsService returns the singleton embeddings service
func GetEmbeddingsService() *EmbeddingsService {
	embeddingsOnce.Do(func() {
		cfg := config.GetConfig()
		ctx := context.Background()

		var embedder Embedder
		switch cfg.EmbeddingProvider {
		case "vertex":
			var err error
			embedder, err = NewVertexEmbedder(ctx, cfg)
			if err != nil {
				initErr = fmt.Errorf("failed to create Vertex AI embedder: %w", err)
				return
			}
		default:
			embedder = NewCustomEmbedder(cfg)
		}

		embeddingsService = NewEmbeddingsService(embedder, cfg.EmbeddingDimensions)
	})
	return embeddingsService
}

// GetInitError returns any error that occurred during initialization
func GetInitError() error {
	return initErr
}

// NewEmbeddingsService wraps an embedder with the configured dimension contract.
func NewEmbeddingsService(embedder Embedder, dimensions int) *EmbeddingsService {
	return &EmbeddingsService{embedder: embedder, dimensions: dimensions}
}

// EmbedQuery embeds a query for retrieval. Fails with ErrEmbeddingUnavailable
// when the backend cannot be reached and ErrEmbeddingMalformed when the
// vector length is wrong.
func (s *EmbeddingsService) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	return s.embed(ctx, query, TaskTypeQuery)
}

// EmbedVerse embeds a verse as a document for retrieval
func (s *EmbeddingsService) EmbedVerse(ctx context.Context, text string) ([]float64, error) {
	return s.embed(ctx, text, TaskTypeDocument)
}

func (s *EmbeddingsService) embed(ctx context.Context, text string, taskType TaskType) ([]float64, error) {
	if text == "" {
		return nil, fmt.Errorf("embed: text must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, config.GetConfig().EmbeddingTimeout)
	defer cancel()

	vector, err := s.embedder.Embed(ctx, text, taskType)
	if err != nil {
		if errors.Is(err, ErrEmbeddingMalformed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}

	if s.dimensions > 0 && len(vector) != s.dimensions {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrEmbeddingMalformed, len(vector), s.dimensions)
	}
	return vector, nil
}
