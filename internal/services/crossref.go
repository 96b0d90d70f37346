package services

import (
	"context"

	"github.com/bible-companion-api/internal/models"
	"github.com/bible-companion-api/internal/repository"
)

// CrossRefService ranks pre-computed cross-reference edges by vote weight
type CrossRefService struct {
	xrefRepo     repository.CrossReferenceRepository
	defaultLimit int
}

// NewCrossRefService creates a new cross-reference ranker
func NewCrossRefService(xrefRepo repository.CrossReferenceRepository, defaultLimit int) *CrossRefService {
	return &CrossRefService{xrefRepo: xrefRepo, defaultLimit: defaultLimit}
}

// Related returns outgoing links for a reference, descending by votes. A
// verse with no recorded edges yields an empty slice, not an error.
func (s *CrossRefService) Related(ctx context.Context, reference string, limit int) ([]models.CrossReference, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	parsed, err := ParseReference(reference)
	if err != nil {
		return nil, err
	}
	return s.xrefRepo.GetRelated(ctx, parsed.Reference(), limit)
}
