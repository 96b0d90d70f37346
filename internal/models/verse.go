package models

// Verse is one verse of the corpus, immutable after load
type Verse struct {
	Reference   string `json:"reference" db:"reference"`
	Book        string `json:"book" db:"book"`
	Chapter     int    `json:"chapter" db:"chapter"`
	Verse       int    `json:"verse" db:"verse"`
	Text        string `json:"text" db:"text"`
	Translation string `json:"translation,omitempty" db:"translation"`
}

// ScoredVerse is a verse with its cosine similarity score
type ScoredVerse struct {
	Reference  string  `json:"reference" db:"reference"`
	Book       string  `json:"book" db:"book"`
	Chapter    int     `json:"chapter" db:"chapter"`
	Verse      int     `json:"verse" db:"verse"`
	Text       string  `json:"text" db:"text"`
	Similarity float64 `json:"similarity" db:"similarity"`
}

// CrossReference is a directed link from one verse to another, weighted by votes
type CrossReference struct {
	FromReference string `json:"from_reference,omitempty" db:"from_reference"`
	ToReference   string `json:"to_reference" db:"to_reference"`
	Votes         int    `json:"votes" db:"votes"`
}

// EmotionMatch is a verse reference matched through its stored emotion tags
type EmotionMatch struct {
	Reference  string   `json:"reference"`
	Emotions   []string `json:"emotions"`
	Confidence float64  `json:"confidence"`
}
