package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bible-companion-api/internal/models"
	"github.com/bible-companion-api/internal/repository"
)

// VerseRepository implements repository.VerseRepository for PostgreSQL
type VerseRepository struct {
	db *sqlx.DB
}

// NewVerseRepository creates a new PostgreSQL verse repository
func NewVerseRepository(db *sqlx.DB) repository.VerseRepository {
	return &VerseRepository{db: db}
}

// GetByReference returns the verse with the given canonical reference string
func (r *VerseRepository) GetByReference(ctx context.Context, reference string) (*models.Verse, error) {
	var v models.Verse
	err := r.db.GetContext(ctx, &v, `
		SELECT reference, book, chapter, verse, text, translation
		FROM bible_verses
		WHERE reference = $1
		LIMIT 1
	`, reference)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrReferenceNotFound
		}
		return nil, fmt.Errorf("%w: get verse %q: %v", models.ErrBackendUnavailable, reference, err)
	}
	return &v, nil
}

// GetRange returns verses in [startVerse, endVerse] ordered by verse number
func (r *VerseRepository) GetRange(ctx context.Context, book string, chapter, startVerse, endVerse int) ([]models.Verse, error) {
	var verses []models.Verse
	err := r.db.SelectContext(ctx, &verses, `
		SELECT reference, book, chapter, verse, text, translation
		FROM bible_verses
		WHERE book = $1 AND chapter = $2 AND verse BETWEEN $3 AND $4
		ORDER BY verse
	`, book, chapter, startVerse, endVerse)
	if err != nil {
		return nil, fmt.Errorf("%w: get range %s %d:%d-%d: %v", models.ErrBackendUnavailable, book, chapter, startVerse, endVerse, err)
	}
	if verses == nil {
		verses = []models.Verse{}
	}
	return verses, nil
}

// GetChapter returns all verses of a chapter ordered by verse number
func (r *VerseRepository) GetChapter(ctx context.Context, book string, chapter int) ([]models.Verse, error) {
	var verses []models.Verse
	err := r.db.SelectContext(ctx, &verses, `
		SELECT reference, book, chapter, verse, text, translation
		FROM bible_verses
		WHERE book = $1 AND chapter = $2
		ORDER BY verse
	`, book, chapter)
	if err != nil {
		return nil, fmt.Errorf("%w: get chapter %s %d: %v", models.ErrBackendUnavailable, book, chapter, err)
	}
	if verses == nil {
		verses = []models.Verse{}
	}
	return verses, nil
}
