package models

// SemanticSearchRequest is the request for semantic verse search
type SemanticSearchRequest struct {
	Query     string   `json:"query" validate:"required"`
	Limit     int      `json:"limit" validate:"min=0,max=50"`
	Threshold *float64 `json:"threshold,omitempty"`
}

// SemanticSearchResponse is the response for semantic verse search
type SemanticSearchResponse struct {
	Query  string        `json:"query"`
	Verses []ScoredVerse `json:"verses"`
}

// EmotionSearchRequest is the request for emotion-tag search
type EmotionSearchRequest struct {
	Emotion string `json:"emotion" validate:"required"`
	Limit   int    `json:"limit" validate:"min=0,max=50"`
	// Expand defaults to true; set to false for exact canonical-tag matching only
	Expand *bool `json:"expand,omitempty"`
}

// EmotionSearchResponse is the response for emotion-tag search
type EmotionSearchResponse struct {
	Emotion  string         `json:"emotion"`
	Searched []string       `json:"searched_emotions"`
	Results  []EmotionMatch `json:"results"`
}

// ChatRequest is the request for the conversational agent
type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse is the response from the conversational agent
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// CrossReferenceResponse lists ranked cross-references for a verse
type CrossReferenceResponse struct {
	Reference  string           `json:"reference"`
	References []CrossReference `json:"cross_references"`
}

// VerseRangeResponse is the response for range, chapter, and context lookups
type VerseRangeResponse struct {
	Verses []Verse `json:"verses"`
}
