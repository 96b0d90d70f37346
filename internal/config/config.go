package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// API Settings
	APITitle   string
	APIVersion string
	APIPrefix  string
	Port       string

	// CORS
	CORSOrigins []string

	// Vector Search Backend: "pgvector" or "vertex"
	VectorBackend string

	// Vertex AI Vector Search settings (used when VectorBackend = "vertex")
	VertexProjectID            string
	VertexLocation             string
	VertexIndexEndpointID      string
	VertexDeployedIndexID      string
	VertexPublicEndpointDomain string

	// Retrieval defaults
	SimilarityThreshold float64
	SemanticSearchLimit int
	EmotionSearchLimit  int
	CrossRefLimit       int

	// Agent settings
	AgentEnabled      bool
	AgentModel        string
	AgentPersona      string
	AgentSystemPrompt string
	AnthropicAPIKey   string
	// MaxToolCalls has no default; Validate rejects a missing or non-positive value.
	MaxToolCalls int
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		config = loadConfig()
	})
	return config
}

func loadConfig() *Config {
	return &Config{
		APITitle:    getEnv("API_TITLE", "Bible Companion API"),
		APIVersion:  getEnv("API_VERSION", "1.0.0"),
		APIPrefix:   getEnv("API_PREFIX", "/api/v1"),
		Port:        getEnv("PORT", "8081"),
		CORSOrigins: parseCORSOrigins(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),

		// Vector search backend configuration
		VectorBackend: getEnv("VECTOR_BACKEND", "pgvector"), // "pgvector" or "vertex"

		// Vertex AI settings
		VertexProjectID:            getEnv("VERTEX_PROJECT_ID", ""),
		VertexLocation:             getEnv("VERTEX_LOCATION", "us-central1"),
		VertexIndexEndpointID:      getEnv("VERTEX_INDEX_ENDPOINT_ID", ""),
		VertexDeployedIndexID:      getEnv("VERTEX_DEPLOYED_INDEX_ID", ""),
		VertexPublicEndpointDomain: getEnv("VERTEX_PUBLIC_ENDPOINT_DOMAIN", ""),

		// Retrieval defaults
		SimilarityThreshold: getEnvFloat("SIMILARITY_THRESHOLD", 0.3),
		SemanticSearchLimit: getEnvInt("SEMANTIC_SEARCH_LIMIT", 5),
		EmotionSearchLimit:  getEnvInt("EMOTION_SEARCH_LIMIT", 10),
		CrossRefLimit:       getEnvInt("CROSS_REF_LIMIT", 10),

		// Agent settings
		AgentEnabled:      getEnv("AGENT_ENABLED", "true") == "true",
		AgentModel:        getEnv("AGENT_MODEL", "claude-sonnet-4-20250514"),
		AgentPersona:      getEnv("AGENT_PERSONA", "companion"),
		AgentSystemPrompt: getEnv("AGENT_SYSTEM_PROMPT", ""),
		AnthropicAPIKey:   getEnv("ANTHROPIC_API_KEY", ""),
		MaxToolCalls:      getEnvInt("AGENT_MAX_TOOL_CALLS", 0),
	}
}

// Validate checks required configuration. Failures here are fatal at startup.
func (c *Config) Validate() error {
	if c.AgentEnabled {
		if c.MaxToolCalls <= 0 {
			return fmt.Errorf("AGENT_MAX_TOOL_CALLS must be set to a positive integer")
		}
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when the agent is enabled")
		}
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("SIMILARITY_THRESHOLD must be in [0,1], got %v", c.SimilarityThreshold)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return i
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return defaultValue
		}
		return f
	}
	return defaultValue
}

func parseCORSOrigins(value string) []string {
	var origins []string
	if err := json.Unmarshal([]byte(value), &origins); err == nil {
		return origins
	}
	parts := strings.Split(value, ",")
	origins = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
