package emotion

import (
	"sort"
	"strings"
)

// curated maps mood keywords to hand-picked verse references. It is the
// zero-cost fallback when embedding search is undesired or unavailable.
var curated = map[string][]string{
	"anxiety": {
		"Philippians 4:6", "Philippians 4:7", "1 Peter 5:7", "Matthew 6:34",
		"Psalms 94:19", "John 14:27", "Isaiah 41:10",
	},
	"fear": {
		"Isaiah 41:10", "Joshua 1:9", "Psalms 23:4", "2 Timothy 1:7",
		"Psalms 27:1", "Deuteronomy 31:6",
	},
	"grief": {
		"Psalms 34:18", "Matthew 5:4", "Revelation 21:4", "Psalms 147:3",
		"John 11:35", "2 Corinthians 1:3",
	},
	"loneliness": {
		"Deuteronomy 31:8", "Psalms 25:16", "Isaiah 43:2", "Matthew 28:20",
		"Psalms 68:6",
	},
	"hopelessness": {
		"Jeremiah 29:11", "Romans 15:13", "Psalms 42:11", "Lamentations 3:22",
		"Isaiah 40:31",
	},
	"guilt": {
		"1 John 1:9", "Psalms 103:12", "Romans 8:1", "Isaiah 1:18",
		"Micah 7:19",
	},
	"anger": {
		"Ephesians 4:26", "James 1:19", "Proverbs 15:1", "Psalms 37:8",
		"Colossians 3:8",
	},
	"gratitude": {
		"1 Thessalonians 5:18", "Psalms 107:1", "Colossians 3:17",
		"Psalms 100:4", "James 1:17",
	},
	"weariness": {
		"Matthew 11:28", "Isaiah 40:29", "Psalms 23:2", "Galatians 6:9",
		"2 Corinthians 12:9",
	},
	"doubt": {
		"Mark 9:24", "James 1:6", "Proverbs 3:5", "Matthew 14:31",
		"Hebrews 11:1",
	},
}

// CuratedVerses returns the hand-picked references for an emotion, or nil
// when none are recorded. Lookup is case-insensitive.
func CuratedVerses(emotion string) []string {
	refs, ok := curated[strings.ToLower(strings.TrimSpace(emotion))]
	if !ok {
		return nil
	}
	out := make([]string, len(refs))
	copy(out, refs)
	return out
}

// CuratedEmotions returns the sorted list of emotions with curated verses.
func CuratedEmotions() []string {
	emotions := make([]string, 0, len(curated))
	for e := range curated {
		emotions = append(emotions, e)
	}
	sort.Strings(emotions)
	return emotions
}

// DetectEmotions scans free text for curated emotion keywords and their
// synonym terms, returning the curated emotions it finds.
func DetectEmotions(text string) []string {
	lowered := strings.ToLower(text)
	var found []string
	seen := make(map[string]bool)
	for _, e := range CuratedEmotions() {
		if seen[e] {
			continue
		}
		if strings.Contains(lowered, e) {
			found = append(found, e)
			seen[e] = true
			continue
		}
		// A synonym term whose expansion includes the curated emotion counts too.
		for _, term := range searchTerms {
			if !strings.Contains(lowered, term) {
				continue
			}
			for _, tag := range synonyms[term] {
				if tag == e {
					found = append(found, e)
					seen[e] = true
					break
				}
			}
			if seen[e] {
				break
			}
		}
	}
	return found
}
