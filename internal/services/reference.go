package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bible-companion-api/internal/models"
	"github.com/bible-companion-api/internal/repository"
)

// ParsedReference is the structured form of "Book Chapter:Verse[-EndVerse]".
// Book names may contain spaces ("1 John", "Song of Solomon").
type ParsedReference struct {
	Book     string
	Chapter  int
	Verse    int
	EndVerse int // equal to Verse for single-verse references
}

// Reference renders the canonical single-verse display form
func (p ParsedReference) Reference() string {
	return fmt.Sprintf("%s %d:%d", p.Book, p.Chapter, p.Verse)
}

// ParseReference parses a canonical reference string. Malformed input fails
// with models.ErrInvalidReference; existence in the corpus is not checked here.
func ParseReference(reference string) (ParsedReference, error) {
	trimmed := strings.TrimSpace(reference)
	idx := strings.LastIndex(trimmed, " ")
	if idx <= 0 || idx == len(trimmed)-1 {
		return ParsedReference{}, fmt.Errorf("%w: %q", models.ErrInvalidReference, reference)
	}

	book := strings.TrimSpace(trimmed[:idx])
	chapterVerse := trimmed[idx+1:]

	parts := strings.SplitN(chapterVerse, ":", 2)
	if len(parts) != 2 {
		return ParsedReference{}, fmt.Errorf("%w: %q", models.ErrInvalidReference, reference)
	}

	chapter, err := strconv.Atoi(parts[0])
	if err != nil || chapter < 1 {
		return ParsedReference{}, fmt.Errorf("%w: %q", models.ErrInvalidReference, reference)
	}

	versePart, endPart, isRange := strings.Cut(parts[1], "-")
	verse, err := strconv.Atoi(versePart)
	if err != nil || verse < 1 {
		return ParsedReference{}, fmt.Errorf("%w: %q", models.ErrInvalidReference, reference)
	}

	endVerse := verse
	if isRange {
		endVerse, err = strconv.Atoi(endPart)
		if err != nil || endVerse < verse {
			return ParsedReference{}, fmt.Errorf("%w: %q", models.ErrInvalidReference, reference)
		}
	}

	return ParsedReference{Book: book, Chapter: chapter, Verse: verse, EndVerse: endVerse}, nil
}

// ReferenceService resolves structured scripture references against the corpus
type ReferenceService struct {
	verseRepo repository.VerseRepository
}

// NewReferenceService creates a new reference resolver
func NewReferenceService(verseRepo repository.VerseRepository) *ReferenceService {
	return &ReferenceService{verseRepo: verseRepo}
}

// Get returns the verse for a reference string. Malformed references fail
// with ErrInvalidReference; well-formed but absent ones with ErrReferenceNotFound.
func (s *ReferenceService) Get(ctx context.Context, reference string) (*models.Verse, error) {
	parsed, err := ParseReference(reference)
	if err != nil {
		return nil, err
	}
	return s.verseRepo.GetByReference(ctx, parsed.Reference())
}

// GetRange returns verses in [startVerse, endVerse] ascending. start > end
// fails with ErrInvalidRange; no partial result is produced.
func (s *ReferenceService) GetRange(ctx context.Context, book string, chapter, startVerse, endVerse int) ([]models.Verse, error) {
	if startVerse > endVerse {
		return nil, fmt.Errorf("%w: %d > %d", models.ErrInvalidRange, startVerse, endVerse)
	}
	if startVerse < 1 {
		return nil, fmt.Errorf("%w: start verse %d", models.ErrInvalidRange, startVerse)
	}
	return s.verseRepo.GetRange(ctx, book, chapter, startVerse, endVerse)
}

// GetChapter returns the full chapter ascending by verse number
func (s *ReferenceService) GetChapter(ctx context.Context, book string, chapter int) ([]models.Verse, error) {
	return s.verseRepo.GetChapter(ctx, book, chapter)
}

// GetContext returns the verses spanning [v-before, v+after] around a
// reference. The window clamps at verse 1 and clips silently at the chapter
// end; overshooting either edge is never an error.
func (s *ReferenceService) GetContext(ctx context.Context, reference string, before, after int) ([]models.Verse, error) {
	if before < 0 || after < 0 {
		return nil, fmt.Errorf("%w: context window must be non-negative", models.ErrInvalidRange)
	}

	parsed, err := ParseReference(reference)
	if err != nil {
		return nil, err
	}

	start := parsed.Verse - before
	if start < 1 {
		start = 1
	}
	// Verses past the chapter's last verse simply do not exist, so the upper
	// bound needs no explicit clamp.
	end := parsed.Verse + after

	verses, err := s.verseRepo.GetRange(ctx, parsed.Book, parsed.Chapter, start, end)
	if err != nil {
		return nil, err
	}
	if len(verses) == 0 {
		return nil, models.ErrReferenceNotFound
	}
	return verses, nil
}
