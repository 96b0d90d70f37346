package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/bible-companion-api/internal/models"
	"github.com/bible-companion-api/internal/repository"
)

// EmotionTagRepository implements repository.EmotionTagRepository for PostgreSQL
type EmotionTagRepository struct {
	db *sqlx.DB
}

// NewEmotionTagRepository creates a new PostgreSQL emotion tag repository
func NewEmotionTagRepository(db *sqlx.DB) repository.EmotionTagRepository {
	return &EmotionTagRepository{db: db}
}

// SearchByTags returns verses whose jsonb emotion set overlaps any of the
// given tags, ordered by stored confidence descending.
func (r *EmotionTagRepository) SearchByTags(ctx context.Context, tags []string, limit int) ([]models.EmotionMatch, error) {
	if len(tags) == 0 {
		return []models.EmotionMatch{}, nil
	}

	rows, err := r.db.QueryxContext(ctx, `
		SELECT reference, emotions, confidence
		FROM bible_emotion_tags
		WHERE emotions ?| $1
		ORDER BY confidence DESC, id
		LIMIT $2
	`, pq.Array(tags), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: search emotion tags: %v", models.ErrBackendUnavailable, err)
	}
	defer rows.Close()

	var results []models.EmotionMatch
	for rows.Next() {
		var (
			m   models.EmotionMatch
			raw []byte
		)
		if err := rows.Scan(&m.Reference, &raw, &m.Confidence); err != nil {
			return nil, fmt.Errorf("scan emotion tag: %w", err)
		}
		if err := json.Unmarshal(raw, &m.Emotions); err != nil {
			return nil, fmt.Errorf("decode emotions for %q: %w", m.Reference, err)
		}
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate emotion tags: %w", err)
	}

	if results == nil {
		results = []models.EmotionMatch{}
	}
	return results, nil
}
