package services

import (
	"context"
	"strings"

	"github.com/bible-companion-api/internal/emotion"
	"github.com/bible-companion-api/internal/models"
	"github.com/bible-companion-api/internal/repository"
)

// EmotionService searches verses by stored emotion tags, optionally expanding
// loose mood words through the synonym graph first.
type EmotionService struct {
	tagRepo      repository.EmotionTagRepository
	defaultLimit int
}

// NewEmotionService creates a new emotion search service
func NewEmotionService(tagRepo repository.EmotionTagRepository, defaultLimit int) *EmotionService {
	return &EmotionService{tagRepo: tagRepo, defaultLimit: defaultLimit}
}

// SearchByEmotion finds verses whose tag set intersects the expansion of the
// given term, ordered by confidence descending. With expand false only the
// exact canonical tag is matched.
func (s *EmotionService) SearchByEmotion(ctx context.Context, term string, limit int, expand bool) ([]models.EmotionMatch, []string, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	var tags []string
	if expand {
		tags = emotion.Expand(term)
	} else {
		tags = []string{strings.ToLower(strings.TrimSpace(term))}
	}

	matches, err := s.tagRepo.SearchByTags(ctx, tags, limit)
	if err != nil {
		return nil, tags, err
	}
	return matches, tags, nil
}

// AvailableEmotions returns the sorted searchable emotion terms
func (s *EmotionService) AvailableEmotions() []string {
	return emotion.AvailableTerms()
}

// SynonymsOf reports which canonical tags a term expands to
func (s *EmotionService) SynonymsOf(term string) []string {
	return emotion.SynonymsOf(term)
}
