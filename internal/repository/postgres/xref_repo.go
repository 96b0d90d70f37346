package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bible-companion-api/internal/models"
	"github.com/bible-companion-api/internal/repository"
)

// CrossReferenceRepository implements repository.CrossReferenceRepository for PostgreSQL
type CrossReferenceRepository struct {
	db *sqlx.DB
}

// NewCrossReferenceRepository creates a new PostgreSQL cross-reference repository
func NewCrossReferenceRepository(db *sqlx.DB) repository.CrossReferenceRepository {
	return &CrossReferenceRepository{db: db}
}

// GetRelated returns outgoing edges for a verse, ordered by votes descending.
// Ties keep insertion order via the id tiebreaker.
func (r *CrossReferenceRepository) GetRelated(ctx context.Context, fromReference string, limit int) ([]models.CrossReference, error) {
	var refs []models.CrossReference
	err := r.db.SelectContext(ctx, &refs, `
		SELECT to_reference, votes
		FROM bible_cross_references
		WHERE from_reference = $1
		ORDER BY votes DESC, id
		LIMIT $2
	`, fromReference, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: get cross references for %q: %v", models.ErrBackendUnavailable, fromReference, err)
	}
	if refs == nil {
		refs = []models.CrossReference{}
	}
	return refs, nil
}
