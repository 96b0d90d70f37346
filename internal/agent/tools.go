package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bible-companion-api/internal/emotion"
	"github.com/bible-companion-api/internal/models"
	"github.com/bible-companion-api/internal/services"
	pkgservices "github.com/bible-companion-api/pkg/schema/services"
)

// ToolHandler executes one validated tool call and returns the text fed back
// to the reasoner
type ToolHandler func(ctx context.Context, args json.RawMessage) (string, error)

// registeredTool pairs a schema with its handler
type registeredTool struct {
	schema  ToolSchema
	handler ToolHandler
}

// Registry holds the fixed, closed set of tools exposed to the reasoner.
// Tools are registered once at construction; the registry is read-only
// afterwards and safe for concurrent use.
type Registry struct {
	validate *validator.Validate
	tools    map[string]registeredTool
	order    []string
}

// RegistryDeps are the retrieval services the tools execute against
type RegistryDeps struct {
	Search    *services.SearchService
	Reference *services.ReferenceService
	CrossRefs *services.CrossRefService
}

// NewRegistry builds the tool registry over the retrieval services
func NewRegistry(deps RegistryDeps) *Registry {
	r := &Registry{
		validate: validator.New(),
		tools:    make(map[string]registeredTool),
	}

	r.register(ToolSchema{
		Name:        "search_bible_verses",
		Description: "Search for Bible verses semantically matching a query about feelings, situations, or topics. Use this to find verses relating to what someone is experiencing or asking about.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "A description of the feeling, situation, or topic (e.g., \"feeling anxious about the future\")",
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of verses to return (default: 5)",
				},
			},
			"required": []string{"query"},
		},
	}, r.searchBibleVerses(deps.Search))

	r.register(ToolSchema{
		Name:        "search_curated_verses",
		Description: "Look up curated verses for a specific emotion or feeling. More targeted than semantic search - use it when you know the emotion (anxiety, fear, grief, loneliness, hopelessness, guilt, anger, gratitude, etc.).",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"emotion": map[string]any{
					"type":        "string",
					"description": "The emotion to find verses for (e.g., \"anxiety\", \"fear\", \"grief\")",
				},
			},
			"required": []string{"emotion"},
		},
	}, searchCuratedVerses)

	r.register(ToolSchema{
		Name:        "get_verse_context",
		Description: "Get surrounding verses for context around a specific verse. Use this to show the broader context of a verse or when a reference mentions a range.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"book":         map[string]any{"type": "string", "description": "The book name (e.g., \"Philippians\", \"Psalms\")"},
				"chapter":      map[string]any{"type": "integer", "description": "The chapter number"},
				"verse":        map[string]any{"type": "integer", "description": "The verse number to center on"},
				"context_size": map[string]any{"type": "integer", "description": "Verses before and after to include (default: 2)"},
			},
			"required": []string{"book", "chapter", "verse"},
		},
	}, r.getVerseContext(deps.Reference))

	r.register(ToolSchema{
		Name:        "get_verse_by_reference",
		Description: "Get a specific verse by its reference. Use this when you have an exact verse reference and need its text.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"reference": map[string]any{"type": "string", "description": "The verse reference (e.g., \"John 3:16\")"},
			},
			"required": []string{"reference"},
		},
	}, r.getVerseByReference(deps.Reference))

	r.register(ToolSchema{
		Name:        "get_cross_references",
		Description: "Get related verses that connect to a specific verse, ordered by relevance. Use this to show how a verse connects to other parts of Scripture.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"reference": map[string]any{"type": "string", "description": "The verse reference (e.g., \"Philippians 4:6\")"},
				"limit":     map[string]any{"type": "integer", "description": "Maximum cross-references to return (default: 5)"},
			},
			"required": []string{"reference"},
		},
	}, r.getCrossReferences(deps.CrossRefs))

	return r
}

func (r *Registry) register(schema ToolSchema, handler ToolHandler) {
	r.tools[schema.Name] = registeredTool{schema: schema, handler: handler}
	r.order = append(r.order, schema.Name)
}

// Schemas returns the tool schemas in registration order
func (r *Registry) Schemas() []ToolSchema {
	out := make([]ToolSchema, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name].schema)
	}
	return out
}

// Execute validates and runs one tool call. Unknown tools and schema
// violations return errors for the caller to feed back to the reasoner.
func (r *Registry) Execute(ctx context.Context, call ToolCallRequest) (string, error) {
	tool, ok := r.tools[call.Name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrToolNotFound, call.Name)
	}
	return tool.handler(ctx, call.Arguments)
}

// decodeArgs strictly decodes tool arguments into the input struct and
// validates it; any failure counts as a schema violation.
func (r *Registry) decodeArgs(args json.RawMessage, into any) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(args))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		return fmt.Errorf("%w: %v", ErrToolSchemaViolation, err)
	}
	if err := r.validate.Struct(into); err != nil {
		return fmt.Errorf("%w: %v", ErrToolSchemaViolation, err)
	}
	return nil
}

type searchVersesArgs struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit" validate:"min=0,max=20"`
}

func (r *Registry) searchBibleVerses(search *services.SearchService) ToolHandler {
	return func(ctx context.Context, args json.RawMessage) (string, error) {
		var in searchVersesArgs
		if err := r.decodeArgs(args, &in); err != nil {
			return "", err
		}

		results, err := search.SearchVerses(ctx, in.Query, -1, in.Limit)
		if err != nil {
			if errors.Is(err, pkgservices.ErrEmbeddingUnavailable) || errors.Is(err, pkgservices.ErrEmbeddingMalformed) {
				// Degrade path: steer the reasoner toward the curated lookup.
				return fmt.Sprintf("Semantic search is unavailable right now. Use search_curated_verses with an emotion word instead of retrying '%s'.", in.Query), nil
			}
			return "", err
		}
		if len(results) == 0 {
			return fmt.Sprintf("No verses found matching '%s'. Try rephrasing or using different keywords.", in.Query), nil
		}

		var b strings.Builder
		for _, v := range results {
			fmt.Fprintf(&b, "**%s** (%.0f%% match)\n%s\n\n", v.Reference, v.Similarity*100, v.Text)
		}
		return strings.TrimRight(b.String(), "\n"), nil
	}
}

type curatedArgs struct {
	Emotion string `json:"emotion" validate:"required"`
}

func searchCuratedVerses(_ context.Context, args json.RawMessage) (string, error) {
	var in curatedArgs
	dec := json.NewDecoder(bytes.NewReader(args))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil || in.Emotion == "" {
		return "", fmt.Errorf("%w: emotion is required", ErrToolSchemaViolation)
	}

	verses := emotion.CuratedVerses(in.Emotion)
	if len(verses) == 0 {
		detected := emotion.DetectEmotions(in.Emotion)
		if len(detected) > 2 {
			detected = detected[:2]
		}
		var merged []string
		for _, em := range detected {
			refs := emotion.CuratedVerses(em)
			if len(refs) > 5 {
				refs = refs[:5]
			}
			merged = append(merged, refs...)
		}
		if len(merged) > 0 {
			if len(merged) > 8 {
				merged = merged[:8]
			}
			return fmt.Sprintf("Curated verses for detected emotions (%s):\n%s",
				strings.Join(detected, ", "), strings.Join(merged, "\n")), nil
		}
		return fmt.Sprintf("No curated verses found for '%s'. Try search_bible_verses for a semantic search instead.", in.Emotion), nil
	}

	if len(verses) > 8 {
		verses = verses[:8]
	}
	return fmt.Sprintf("Curated verses for '%s':\n%s", in.Emotion, strings.Join(verses, "\n")), nil
}

type verseContextArgs struct {
	Book        string `json:"book" validate:"required"`
	Chapter     int    `json:"chapter" validate:"min=1"`
	Verse       int    `json:"verse" validate:"min=1"`
	ContextSize int    `json:"context_size" validate:"min=0,max=10"`
}

func (r *Registry) getVerseContext(refs *services.ReferenceService) ToolHandler {
	return func(ctx context.Context, args json.RawMessage) (string, error) {
		var in verseContextArgs
		if err := r.decodeArgs(args, &in); err != nil {
			return "", err
		}
		size := in.ContextSize
		if size == 0 {
			size = 2
		}

		reference := fmt.Sprintf("%s %d:%d", in.Book, in.Chapter, in.Verse)
		verses, err := refs.GetContext(ctx, reference, size, size)
		if err != nil {
			if errors.Is(err, models.ErrReferenceNotFound) || errors.Is(err, models.ErrInvalidReference) {
				return fmt.Sprintf("Could not find context for %s", reference), nil
			}
			return "", err
		}

		var b strings.Builder
		fmt.Fprintf(&b, "**%s %d:%d-%d**\n", in.Book, in.Chapter, verses[0].Verse, verses[len(verses)-1].Verse)
		for _, v := range verses {
			marker := "   "
			if v.Verse == in.Verse {
				marker = ">>>"
			}
			fmt.Fprintf(&b, "%s v%d: %s\n", marker, v.Verse, v.Text)
		}
		return strings.TrimRight(b.String(), "\n"), nil
	}
}

type verseByReferenceArgs struct {
	Reference string `json:"reference" validate:"required"`
}

func (r *Registry) getVerseByReference(refs *services.ReferenceService) ToolHandler {
	return func(ctx context.Context, args json.RawMessage) (string, error) {
		var in verseByReferenceArgs
		if err := r.decodeArgs(args, &in); err != nil {
			return "", err
		}

		verse, err := refs.Get(ctx, in.Reference)
		if err != nil {
			if errors.Is(err, models.ErrReferenceNotFound) || errors.Is(err, models.ErrInvalidReference) {
				return fmt.Sprintf("Could not find verse: %s", in.Reference), nil
			}
			return "", err
		}
		return fmt.Sprintf("**%s**\n%s", verse.Reference, verse.Text), nil
	}
}

type crossReferencesArgs struct {
	Reference string `json:"reference" validate:"required"`
	Limit     int    `json:"limit" validate:"min=0,max=20"`
}

func (r *Registry) getCrossReferences(xrefs *services.CrossRefService) ToolHandler {
	return func(ctx context.Context, args json.RawMessage) (string, error) {
		var in crossReferencesArgs
		if err := r.decodeArgs(args, &in); err != nil {
			return "", err
		}
		limit := in.Limit
		if limit == 0 {
			limit = 5
		}

		results, err := xrefs.Related(ctx, in.Reference, limit)
		if err != nil {
			if errors.Is(err, models.ErrInvalidReference) {
				return fmt.Sprintf("Could not parse reference: %s", in.Reference), nil
			}
			return "", err
		}
		if len(results) == 0 {
			return fmt.Sprintf("No cross-references found for %s", in.Reference), nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "**Verses connected to %s:**\n", in.Reference)
		for _, xref := range results {
			fmt.Fprintf(&b, "- %s (relevance: %d)\n", xref.ToReference, xref.Votes)
		}
		return strings.TrimRight(b.String(), "\n"), nil
	}
}
