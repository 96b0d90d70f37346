package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmbedder struct {
	vector   []float64
	err      error
	lastText string
	lastTask TaskType
}

func (e *fakeEmbedder) Embed(_ context.Context, text string, taskType TaskType) ([]float64, error) {
	e.lastText = text
	e.lastTask = taskType
	return e.vector, e.err
}

func (e *fakeEmbedder) EmbedBatch(_ context.Context, texts []string, taskType TaskType) ([][]float64, error) {
	e.lastTask = taskType
	out := make([][]float64, len(texts))
	for i := range texts {
		out[i] = e.vector
	}
	return out, e.err
}

func TestEmbedQuery(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float64{0.1, 0.2, 0.3}}
	svc := NewEmbeddingsService(embedder, 3)

	vector, err := svc.EmbedQuery(context.Background(), "comfort in grief")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, vector)
	assert.Equal(t, "comfort in grief", embedder.lastText)
	assert.Equal(t, TaskTypeQuery, embedder.lastTask)
}

func TestEmbedVerseUsesDocumentTask(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float64{0.1, 0.2, 0.3}}
	svc := NewEmbeddingsService(embedder, 3)

	_, err := svc.EmbedVerse(context.Background(), "The LORD is my shepherd")
	require.NoError(t, err)
	assert.Equal(t, TaskTypeDocument, embedder.lastTask)
}

func TestEmbedQueryEmptyText(t *testing.T) {
	svc := NewEmbeddingsService(&fakeEmbedder{vector: []float64{0.1}}, 1)

	_, err := svc.EmbedQuery(context.Background(), "")
	assert.Error(t, err)
}

func TestEmbedQueryBackendFailure(t *testing.T) {
	svc := NewEmbeddingsService(&fakeEmbedder{err: errors.New("connection refused")}, 3)

	_, err := svc.EmbedQuery(context.Background(), "hope")
	assert.ErrorIs(t, err, ErrEmbeddingUnavailable)
}

func TestEmbedQueryDimensionMismatch(t *testing.T) {
	svc := NewEmbeddingsService(&fakeEmbedder{vector: []float64{0.1, 0.2}}, 3)

	_, err := svc.EmbedQuery(context.Background(), "hope")
	assert.ErrorIs(t, err, ErrEmbeddingMalformed)
	assert.NotErrorIs(t, err, ErrEmbeddingUnavailable)
}

func TestEmbedQueryMalformedPassesThrough(t *testing.T) {
	embedder := &fakeEmbedder{err: fmt.Errorf("%w: bad payload", ErrEmbeddingMalformed)}
	svc := NewEmbeddingsService(embedder, 3)

	_, err := svc.EmbedQuery(context.Background(), "hope")
	assert.ErrorIs(t, err, ErrEmbeddingMalformed)
	assert.NotErrorIs(t, err, ErrEmbeddingUnavailable)
}

func TestEmbedQuerySkipsDimensionCheckWhenUnset(t *testing.T) {
	svc := NewEmbeddingsService(&fakeEmbedder{vector: []float64{0.1, 0.2}}, 0)

	vector, err := svc.EmbedQuery(context.Background(), "hope")
	require.NoError(t, err)
	assert.Len(t, vector, 2)
}
