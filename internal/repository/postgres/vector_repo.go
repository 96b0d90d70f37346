package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"

	"github.com/bible-companion-api/internal/models"
	"github.com/bible-companion-api/internal/repository"
)

// VectorSearchRepository implements repository.VectorSearchRepository for
// PostgreSQL with pgvector
type VectorSearchRepository struct {
	db *sqlx.DB
}

// NewVectorSearchRepository creates a new PostgreSQL vector search repository
func NewVectorSearchRepository(db *sqlx.DB) repository.VectorSearchRepository {
	return &VectorSearchRepository{db: db}
}

// SearchVersesByEmbedding performs cosine similarity search over verse
// embeddings. The similarity floor is applied in SQL; tie order within equal
// distances is whatever the backend produces and is not re-sorted here.
func (r *VectorSearchRepository) SearchVersesByEmbedding(ctx context.Context, embedding []float64, threshold float64, limit int) ([]models.ScoredVerse, error) {
	vec := pgvector.NewVector(float32Slice(embedding))

	rows, err := r.db.QueryxContext(ctx, `
		SELECT reference, book, chapter, verse, text,
		       1 - (embedding <=> $1::vector) AS similarity
		FROM bible_verses
		WHERE embedding IS NOT NULL
		  AND 1 - (embedding <=> $1::vector) >= $2
		ORDER BY embedding <=> $1::vector
		LIMIT $3
	`, vec, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: vector search verses: %v", models.ErrBackendUnavailable, err)
	}
	defer rows.Close()

	var results []models.ScoredVerse
	for rows.Next() {
		var v models.ScoredVerse
		if err := rows.Scan(&v.Reference, &v.Book, &v.Chapter, &v.Verse, &v.Text, &v.Similarity); err != nil {
			return nil, fmt.Errorf("scan verse result: %w", err)
		}
		results = append(results, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate verse results: %w", err)
	}

	if results == nil {
		results = []models.ScoredVerse{}
	}
	return results, nil
}

// float32Slice converts []float64 to []float32 for pgvector
func float32Slice(f64 []float64) []float32 {
	f32 := make([]float32, len(f64))
	for i, v := range f64 {
		f32[i] = float32(v)
	}
	return f32
}
