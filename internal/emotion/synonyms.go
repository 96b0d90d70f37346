// Package emotion holds the static emotion-synonym graph and the curated
// verse table. Both are built once at init and never mutated, so they are
// safe for unsynchronized concurrent reads.
package emotion

import (
	"sort"
	"strings"
)

// synonyms maps common search terms to the emotion tags actually stored in
// the database. Every canonical tag that appears in an expansion is a valid
// storage-side tag; terms not present here pass through unchanged.
var synonyms = map[string][]string{
	// Mental health / emotional states
	"depression": {"sorrow", "despair", "sadness", "grief", "discouragement", "anguish", "hopelessness"},
	"depressed":  {"sorrow", "despair", "sadness", "grief", "discouragement", "anguish"},
	"anxiety":    {"anxiety", "fear", "worry", "concern", "dread", "panic"},
	"anxious":    {"anxiety", "fear", "worry", "concern", "nervousness"},
	"worried":    {"worry", "anxiety", "fear", "concern", "uncertainty"},
	"worry":      {"worry", "anxiety", "fear", "concern"},
	"stressed":   {"anxiety", "pressure", "overwhelm", "burden", "weariness"},
	"stress":     {"anxiety", "pressure", "overwhelm", "burden"},
	"overwhelmed": {"overwhelm", "desperation", "weakness", "burden", "weariness"},
	"burnout":    {"weariness", "exhaustion", "weakness", "discouragement"},
	"panic":      {"panic", "fear", "terror", "anxiety", "dread"},

	// Sadness spectrum
	"sad":         {"sorrow", "sadness", "grief", "mourning", "lamentation"},
	"sadness":     {"sorrow", "sadness", "grief", "mourning"},
	"grief":       {"grief", "sorrow", "mourning", "lamentation", "loss"},
	"grieving":    {"grief", "sorrow", "mourning", "lamentation"},
	"mourning":    {"mourning", "grief", "sorrow", "lamentation", "loss"},
	"heartbroken": {"grief", "sorrow", "anguish", "pain", "loss"},
	"hurt":        {"pain", "sorrow", "anguish", "suffering"},
	"pain":        {"pain", "suffering", "anguish", "sorrow"},
	"suffering":   {"suffering", "pain", "anguish", "distress"},

	// Fear spectrum
	"scared":     {"fear", "terror", "dread", "panic", "anxiety"},
	"afraid":     {"fear", "dread", "terror", "anxiety"},
	"fear":       {"fear", "dread", "terror", "anxiety", "foreboding"},
	"terrified":  {"terror", "fear", "dread", "panic", "horror"},
	"frightened": {"fear", "terror", "dread", "alarm"},

	// Anger spectrum
	"angry":      {"anger", "rage", "wrath", "fury", "indignation"},
	"anger":      {"anger", "rage", "wrath", "fury"},
	"mad":        {"anger", "rage", "frustration", "irritation"},
	"furious":    {"fury", "rage", "anger", "wrath"},
	"frustrated": {"frustration", "anger", "irritation", "disappointment"},
	"annoyed":    {"irritation", "annoyance", "frustration", "displeasure"},
	"bitter":     {"bitterness", "resentment", "anger", "disappointment"},
	"resentful":  {"resentment", "bitterness", "anger"},

	// Positive emotions
	"happy":     {"joy", "happiness", "gladness", "delight", "contentment"},
	"happiness": {"joy", "happiness", "gladness", "delight"},
	"joy":       {"joy", "gladness", "delight", "happiness", "rejoicing"},
	"joyful":    {"joy", "gladness", "delight", "happiness"},
	"peaceful":  {"peace", "calm", "serenity", "tranquility", "rest"},
	"peace":     {"peace", "calm", "serenity", "rest", "comfort"},
	"calm":      {"peace", "calm", "serenity", "rest"},
	"content":   {"contentment", "peace", "satisfaction", "rest"},
	"grateful":  {"gratitude", "thankfulness", "appreciation"},
	"thankful":  {"gratitude", "thankfulness", "appreciation", "thanksgiving"},
	"hopeful":   {"hope", "expectation", "anticipation", "optimism"},
	"hope":      {"hope", "expectation", "anticipation", "promise"},
	"loved":     {"love", "affection", "compassion", "care"},
	"love":      {"love", "affection", "compassion", "devotion"},
	"comforted": {"comfort", "peace", "consolation", "relief"},
	"relieved":  {"relief", "comfort", "peace", "gratitude"},

	// Spiritual emotions
	"faithful":  {"faith", "trust", "devotion", "belief"},
	"faith":     {"faith", "trust", "belief", "devotion"},
	"doubtful":  {"doubt", "uncertainty", "questioning", "confusion"},
	"doubt":     {"doubt", "uncertainty", "questioning", "disbelief"},
	"guilty":    {"guilt", "shame", "remorse", "regret"},
	"shame":     {"shame", "guilt", "humiliation", "remorse"},
	"forgiven":  {"forgiveness", "grace", "mercy", "redemption"},
	"repentant": {"repentance", "remorse", "guilt", "sorrow"},

	// Loneliness / isolation
	"lonely":    {"loneliness", "isolation", "abandonment", "alienation"},
	"alone":     {"loneliness", "isolation", "abandonment"},
	"abandoned": {"abandonment", "loneliness", "rejection", "isolation"},
	"rejected":  {"rejection", "abandonment", "loneliness", "hurt"},
	"isolated":  {"isolation", "loneliness", "abandonment", "alienation"},

	// Strength / weakness
	"weak":       {"weakness", "vulnerability", "helplessness", "powerlessness"},
	"weakness":   {"weakness", "vulnerability", "helplessness"},
	"strong":     {"strength", "courage", "determination", "power"},
	"strength":   {"strength", "courage", "determination", "power"},
	"brave":      {"courage", "strength", "determination", "boldness"},
	"courageous": {"courage", "strength", "bravery", "determination"},
	"tired":      {"weariness", "weakness", "exhaustion", "fatigue"},
	"exhausted":  {"weariness", "exhaustion", "weakness", "fatigue"},

	// Confusion / clarity
	"confused":  {"confusion", "uncertainty", "perplexity", "doubt"},
	"lost":      {"confusion", "uncertainty", "loneliness", "despair"},
	"uncertain": {"uncertainty", "doubt", "confusion", "questioning"},
	"clear":     {"clarity", "understanding", "wisdom", "discernment"},

	// Encouragement / discouragement
	"encouraged":  {"encouragement", "hope", "strength", "comfort"},
	"discouraged": {"discouragement", "disappointment", "despair", "hopelessness"},
	"hopeless":    {"despair", "hopelessness", "discouragement", "anguish"},
	"motivated":   {"encouragement", "determination", "zeal", "enthusiasm"},

	// Trust / betrayal
	"trusting":     {"trust", "faith", "confidence", "reliance"},
	"betrayed":     {"betrayal", "hurt", "anger", "disappointment"},
	"disappointed": {"disappointment", "discouragement", "sorrow", "frustration"},

	// Wisdom / guidance
	"wise":     {"wisdom", "understanding", "discernment", "knowledge"},
	"guidance": {"guidance", "wisdom", "direction", "counsel"},
	"seeking":  {"seeking", "searching", "longing", "desire"},

	// Reverence / worship
	"humble":  {"humility", "submission", "reverence", "meekness"},
	"awe":     {"awe", "wonder", "reverence", "amazement"},
	"worship": {"worship", "praise", "adoration", "reverence"},
}

// searchTerms is the sorted list of expandable terms, built once at init.
var searchTerms = func() []string {
	terms := make([]string, 0, len(synonyms))
	for term := range synonyms {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}()

// canonicalTags is the set of every tag reachable through an expansion.
var canonicalTags = func() map[string]bool {
	tags := make(map[string]bool)
	for _, expansion := range synonyms {
		for _, tag := range expansion {
			tags[tag] = true
		}
	}
	return tags
}()

// Expand maps a search term to the emotion tags it should match against.
// Lookup is case-insensitive; unknown terms pass through as a singleton so
// downstream search degrades to a literal tag match instead of failing.
func Expand(term string) []string {
	normalized := strings.ToLower(strings.TrimSpace(term))
	if expansion, ok := synonyms[normalized]; ok {
		out := make([]string, len(expansion))
		copy(out, expansion)
		return out
	}
	return []string{normalized}
}

// SynonymsOf reports which tags a search term maps to. Useful for showing
// users what will actually be searched.
func SynonymsOf(term string) []string {
	return Expand(term)
}

// AvailableTerms returns the sorted list of searchable emotion terms.
// The size is a property of the loaded table, not a constant.
func AvailableTerms() []string {
	out := make([]string, len(searchTerms))
	copy(out, searchTerms)
	return out
}

// IsCanonical reports whether a tag appears in the expansion vocabulary.
func IsCanonical(tag string) bool {
	return canonicalTags[strings.ToLower(strings.TrimSpace(tag))]
}
