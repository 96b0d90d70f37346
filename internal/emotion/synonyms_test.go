package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandKnownTerm(t *testing.T) {
	tags := Expand("depression")
	require.NotEmpty(t, tags)
	assert.Equal(t, []string{"sorrow", "despair", "sadness", "grief", "discouragement", "anguish", "hopelessness"}, tags)
}

func TestExpandIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Expand("depression"), Expand("DEPRESSION"))
	assert.Equal(t, Expand("anxious"), Expand("  Anxious "))
}

func TestExpandUnknownTermPassesThrough(t *testing.T) {
	tags := Expand("melancholy")
	assert.Equal(t, []string{"melancholy"}, tags)

	// Never empty, even for odd input
	assert.Equal(t, []string{"zzz unknown"}, Expand("zzz unknown"))
}

func TestExpandReturnsCopy(t *testing.T) {
	first := Expand("fear")
	first[0] = "mutated"
	second := Expand("fear")
	assert.Equal(t, "fear", second[0])
}

func TestEveryExpansionTagIsCanonical(t *testing.T) {
	for _, term := range AvailableTerms() {
		for _, tag := range Expand(term) {
			assert.True(t, IsCanonical(tag), "term %q expands to non-canonical tag %q", term, tag)
		}
	}
}

func TestAvailableTermsSortedAndDerived(t *testing.T) {
	terms := AvailableTerms()
	require.NotEmpty(t, terms)
	assert.IsIncreasing(t, terms)

	// Size comes from the table, and the table covers the known spectrums
	assert.Contains(t, terms, "depression")
	assert.Contains(t, terms, "worship")
	assert.Len(t, terms, len(synonyms))
}

func TestSynonymsOfMatchesExpand(t *testing.T) {
	for _, term := range []string{"depression", "hope", "unknown-term"} {
		assert.Equal(t, Expand(term), SynonymsOf(term))
	}
}

func TestCuratedVerses(t *testing.T) {
	refs := CuratedVerses("anxiety")
	require.NotEmpty(t, refs)
	assert.Contains(t, refs, "Philippians 4:6")

	assert.Nil(t, CuratedVerses("no-such-emotion"))
	assert.Equal(t, CuratedVerses("FEAR"), CuratedVerses("fear"))
}

func TestDetectEmotions(t *testing.T) {
	found := DetectEmotions("I feel so anxious and alone lately")
	assert.Contains(t, found, "anxiety")
	assert.Contains(t, found, "loneliness")

	assert.Empty(t, DetectEmotions("the weather is nice"))
}
