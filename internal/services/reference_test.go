package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bible-companion-api/internal/models"
)

// fakeVerseRepo serves a single in-memory chapter
type fakeVerseRepo struct {
	book    string
	chapter int
	verses  []models.Verse
}

func newFakeChapter(book string, chapter, verseCount int) *fakeVerseRepo {
	repo := &fakeVerseRepo{book: book, chapter: chapter}
	for v := 1; v <= verseCount; v++ {
		repo.verses = append(repo.verses, models.Verse{
			Reference: referenceString(book, chapter, v),
			Book:      book,
			Chapter:   chapter,
			Verse:     v,
			Text:      "verse text",
		})
	}
	return repo
}

func referenceString(book string, chapter, verse int) string {
	return ParsedReference{Book: book, Chapter: chapter, Verse: verse}.Reference()
}

func (r *fakeVerseRepo) GetByReference(_ context.Context, reference string) (*models.Verse, error) {
	for i := range r.verses {
		if r.verses[i].Reference == reference {
			return &r.verses[i], nil
		}
	}
	return nil, models.ErrReferenceNotFound
}

func (r *fakeVerseRepo) GetRange(_ context.Context, book string, chapter, startVerse, endVerse int) ([]models.Verse, error) {
	var out []models.Verse
	if book != r.book || chapter != r.chapter {
		return []models.Verse{}, nil
	}
	for _, v := range r.verses {
		if v.Verse >= startVerse && v.Verse <= endVerse {
			out = append(out, v)
		}
	}
	if out == nil {
		out = []models.Verse{}
	}
	return out, nil
}

func (r *fakeVerseRepo) GetChapter(ctx context.Context, book string, chapter int) ([]models.Verse, error) {
	return r.GetRange(ctx, book, chapter, 1, len(r.verses))
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		input   string
		want    ParsedReference
		wantErr bool
	}{
		{input: "John 3:16", want: ParsedReference{Book: "John", Chapter: 3, Verse: 16, EndVerse: 16}},
		{input: "1 John 3:16", want: ParsedReference{Book: "1 John", Chapter: 3, Verse: 16, EndVerse: 16}},
		{input: "Song of Solomon 2:1", want: ParsedReference{Book: "Song of Solomon", Chapter: 2, Verse: 1, EndVerse: 1}},
		{input: "Philippians 4:6-7", want: ParsedReference{Book: "Philippians", Chapter: 4, Verse: 6, EndVerse: 7}},
		{input: "  John 3:16 ", want: ParsedReference{Book: "John", Chapter: 3, Verse: 16, EndVerse: 16}},
		{input: "John", wantErr: true},
		{input: "John 3", wantErr: true},
		{input: "John 3:", wantErr: true},
		{input: "John 0:16", wantErr: true},
		{input: "John 3:0", wantErr: true},
		{input: "John 3:16-2", wantErr: true},
		{input: "John x:16", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseReference(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, models.ErrInvalidReference)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetReturnsVerse(t *testing.T) {
	svc := NewReferenceService(newFakeChapter("John", 3, 36))

	verse, err := svc.Get(context.Background(), "John 3:16")
	require.NoError(t, err)
	assert.Equal(t, "John 3:16", verse.Reference)
}

func TestGetWellFormedButAbsent(t *testing.T) {
	svc := NewReferenceService(newFakeChapter("John", 3, 36))

	_, err := svc.Get(context.Background(), "John 99:1")
	assert.ErrorIs(t, err, models.ErrReferenceNotFound)
}

func TestGetMalformed(t *testing.T) {
	svc := NewReferenceService(newFakeChapter("John", 3, 36))

	_, err := svc.Get(context.Background(), "not a reference")
	assert.ErrorIs(t, err, models.ErrInvalidReference)
}

func TestGetRangeValidation(t *testing.T) {
	svc := NewReferenceService(newFakeChapter("Psalms", 23, 6))

	_, err := svc.GetRange(context.Background(), "Psalms", 23, 4, 2)
	assert.ErrorIs(t, err, models.ErrInvalidRange)

	_, err = svc.GetRange(context.Background(), "Psalms", 23, 0, 2)
	assert.ErrorIs(t, err, models.ErrInvalidRange)
}

func TestGetRangeSingleVerse(t *testing.T) {
	svc := NewReferenceService(newFakeChapter("Psalms", 23, 6))

	verses, err := svc.GetRange(context.Background(), "Psalms", 23, 3, 3)
	require.NoError(t, err)
	require.Len(t, verses, 1)
	assert.Equal(t, 3, verses[0].Verse)
}

func TestGetRangeOrdering(t *testing.T) {
	svc := NewReferenceService(newFakeChapter("Psalms", 23, 6))

	verses, err := svc.GetRange(context.Background(), "Psalms", 23, 2, 5)
	require.NoError(t, err)
	require.Len(t, verses, 4)
	for i := 1; i < len(verses); i++ {
		assert.Greater(t, verses[i].Verse, verses[i-1].Verse)
	}
}

func TestGetChapter(t *testing.T) {
	svc := NewReferenceService(newFakeChapter("Psalms", 23, 6))

	verses, err := svc.GetChapter(context.Background(), "Psalms", 23)
	require.NoError(t, err)
	assert.Len(t, verses, 6)
}

func TestGetContextClampsAtChapterStart(t *testing.T) {
	svc := NewReferenceService(newFakeChapter("Psalms", 23, 6))

	verses, err := svc.GetContext(context.Background(), "Psalms 23:1", 3, 2)
	require.NoError(t, err)
	require.NotEmpty(t, verses)
	assert.Equal(t, 1, verses[0].Verse)
	assert.Equal(t, 3, verses[len(verses)-1].Verse)
}

func TestGetContextClipsAtChapterEnd(t *testing.T) {
	svc := NewReferenceService(newFakeChapter("Psalms", 23, 6))

	verses, err := svc.GetContext(context.Background(), "Psalms 23:5", 1, 10)
	require.NoError(t, err)
	require.NotEmpty(t, verses)
	assert.Equal(t, 4, verses[0].Verse)
	assert.Equal(t, 6, verses[len(verses)-1].Verse)
	for _, v := range verses {
		assert.GreaterOrEqual(t, v.Verse, 1)
		assert.LessOrEqual(t, v.Verse, 6)
	}
}

func TestGetContextNegativeWindow(t *testing.T) {
	svc := NewReferenceService(newFakeChapter("Psalms", 23, 6))

	_, err := svc.GetContext(context.Background(), "Psalms 23:3", -1, 2)
	assert.ErrorIs(t, err, models.ErrInvalidRange)
}

func TestGetContextUnknownChapter(t *testing.T) {
	svc := NewReferenceService(newFakeChapter("Psalms", 23, 6))

	_, err := svc.GetContext(context.Background(), "Psalms 99:3", 2, 2)
	assert.ErrorIs(t, err, models.ErrReferenceNotFound)
}
