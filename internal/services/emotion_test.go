package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bible-companion-api/internal/models"
)

type fakeEmotionRepo struct {
	tags    []string
	limit   int
	matches []models.EmotionMatch
}

func (r *fakeEmotionRepo) SearchByTags(_ context.Context, tags []string, limit int) ([]models.EmotionMatch, error) {
	r.tags = tags
	r.limit = limit
	if r.matches == nil {
		return []models.EmotionMatch{}, nil
	}
	return r.matches, nil
}

func TestSearchByEmotionExpands(t *testing.T) {
	repo := &fakeEmotionRepo{}
	svc := NewEmotionService(repo, 10)

	_, searched, err := svc.SearchByEmotion(context.Background(), "depression", 0, true)
	require.NoError(t, err)
	assert.Equal(t, repo.tags, searched)
	assert.Contains(t, searched, "sorrow")
	assert.Contains(t, searched, "despair")
	assert.Greater(t, len(searched), 1)
}

func TestSearchByEmotionExactTagOnly(t *testing.T) {
	repo := &fakeEmotionRepo{}
	svc := NewEmotionService(repo, 10)

	_, searched, err := svc.SearchByEmotion(context.Background(), "  Sorrow ", 0, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"sorrow"}, searched)
	assert.Equal(t, []string{"sorrow"}, repo.tags)
}

func TestSearchByEmotionDefaultLimit(t *testing.T) {
	repo := &fakeEmotionRepo{}
	svc := NewEmotionService(repo, 10)

	_, _, err := svc.SearchByEmotion(context.Background(), "fear", 0, true)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.limit)

	_, _, err = svc.SearchByEmotion(context.Background(), "fear", 3, true)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.limit)
}

func TestSearchByEmotionUnknownTerm(t *testing.T) {
	repo := &fakeEmotionRepo{}
	svc := NewEmotionService(repo, 10)

	matches, searched, err := svc.SearchByEmotion(context.Background(), "ennui", 0, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"ennui"}, searched)
	assert.Empty(t, matches)
}

func TestAvailableEmotionsNonEmpty(t *testing.T) {
	svc := NewEmotionService(&fakeEmotionRepo{}, 10)

	terms := svc.AvailableEmotions()
	assert.NotEmpty(t, terms)
	assert.Contains(t, terms, "anxiety")
}
