package vertex

import (
	"context"
	"fmt"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"github.com/jmoiron/sqlx"
	"google.golang.org/api/option"

	"github.com/bible-companion-api/internal/models"
	"github.com/bible-companion-api/internal/repository"
)

// Ensure VectorSearchRepository implements repository.VectorSearchRepository
var _ repository.VectorSearchRepository = (*VectorSearchRepository)(nil)

// Config holds Vertex AI Vector Search configuration
type Config struct {
	ProjectID            string // GCP project ID
	Location             string // e.g., "us-central1"
	IndexEndpointID      string // Deployed index endpoint ID
	DeployedIndexID      string // The deployed index ID within the endpoint
	PublicEndpointDomain string // Public endpoint domain for queries
}

// VectorSearchRepository implements repository.VectorSearchRepository using
// Vertex AI Vector Search, with verse hydration from PostgreSQL. Datapoint
// ids in the index are canonical verse reference strings.
type VectorSearchRepository struct {
	config      Config
	matchClient *aiplatform.MatchClient
	db          *sqlx.DB
}

// NewVectorSearchRepository creates a new Vertex AI vector search repository
func NewVectorSearchRepository(ctx context.Context, config Config, db *sqlx.DB) (*VectorSearchRepository, error) {
	// For public endpoints, use the public domain; otherwise use regional endpoint
	var endpoint string
	if config.PublicEndpointDomain != "" {
		endpoint = fmt.Sprintf("%s:443", config.PublicEndpointDomain)
	} else {
		endpoint = fmt.Sprintf("%s-aiplatform.googleapis.com:443", config.Location)
	}

	matchClient, err := aiplatform.NewMatchClient(ctx, option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("create match client: %w", err)
	}

	return &VectorSearchRepository{
		config:      config,
		matchClient: matchClient,
		db:          db,
	}, nil
}

// Close closes the Vertex AI client
func (r *VectorSearchRepository) Close() error {
	if r.matchClient != nil {
		return r.matchClient.Close()
	}
	return nil
}

// SearchVersesByEmbedding performs similarity search against the deployed
// index. FindNeighbors has no score floor, so the threshold is applied here
// after converting distances to similarities.
func (r *VectorSearchRepository) SearchVersesByEmbedding(ctx context.Context, embedding []float64, threshold float64, limit int) ([]models.ScoredVerse, error) {
	indexEndpoint := fmt.Sprintf(
		"projects/%s/locations/%s/indexEndpoints/%s",
		r.config.ProjectID,
		r.config.Location,
		r.config.IndexEndpointID,
	)

	featureVector := make([]float32, len(embedding))
	for i, v := range embedding {
		featureVector[i] = float32(v)
	}

	req := &aiplatformpb.FindNeighborsRequest{
		IndexEndpoint:   indexEndpoint,
		DeployedIndexId: r.config.DeployedIndexID,
		Queries: []*aiplatformpb.FindNeighborsRequest_Query{
			{
				Datapoint: &aiplatformpb.IndexDatapoint{
					FeatureVector: featureVector,
				},
				NeighborCount: int32(limit),
			},
		},
	}

	resp, err := r.matchClient.FindNeighbors(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: find neighbors: %v", models.ErrBackendUnavailable, err)
	}

	if len(resp.NearestNeighbors) == 0 || len(resp.NearestNeighbors[0].Neighbors) == 0 {
		return []models.ScoredVerse{}, nil
	}

	// Collect references in relevance order, dropping anything below the floor.
	// Cosine distance converts to similarity as 1 - distance.
	neighbors := resp.NearestNeighbors[0].Neighbors
	references := make([]string, 0, len(neighbors))
	scores := make(map[string]float64, len(neighbors))
	for _, neighbor := range neighbors {
		similarity := float64(1 - neighbor.Distance)
		if similarity < threshold {
			continue
		}
		ref := neighbor.Datapoint.DatapointId
		references = append(references, ref)
		scores[ref] = similarity
	}
	if len(references) == 0 {
		return []models.ScoredVerse{}, nil
	}

	results, err := r.hydrateVerses(ctx, references, scores)
	if err != nil {
		return nil, fmt.Errorf("hydrate verses: %w", err)
	}
	return results, nil
}

// hydrateVerses retrieves verse fields from PostgreSQL for the matched
// references, preserving the index's relevance order
func (r *VectorSearchRepository) hydrateVerses(ctx context.Context, references []string, scores map[string]float64) ([]models.ScoredVerse, error) {
	query, args, err := sqlx.In(`
		SELECT reference, book, chapter, verse, text
		FROM bible_verses
		WHERE reference IN (?)
	`, references)
	if err != nil {
		return nil, fmt.Errorf("build IN query: %w", err)
	}
	query = r.db.Rebind(query)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query verses: %v", models.ErrBackendUnavailable, err)
	}
	defer rows.Close()

	byReference := make(map[string]models.ScoredVerse)
	for rows.Next() {
		var v models.ScoredVerse
		if err := rows.Scan(&v.Reference, &v.Book, &v.Chapter, &v.Verse, &v.Text); err != nil {
			return nil, fmt.Errorf("scan verse: %w", err)
		}
		v.Similarity = scores[v.Reference]
		byReference[v.Reference] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate verses: %w", err)
	}

	results := make([]models.ScoredVerse, 0, len(references))
	for _, ref := range references {
		if v, ok := byReference[ref]; ok {
			results = append(results, v)
		}
	}
	return results, nil
}
