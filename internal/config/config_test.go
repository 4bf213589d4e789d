package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LLM_PROVIDER", "LLM_MODEL", "QDRANT_URL", "SHUTDOWN_TIMEOUT", "PUBLIC_BASE_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "http://localhost:3000", cfg.Storage.PublicBaseURL)
	assert.Equal(t, uint64(768), cfg.Qdrant.VectorSize)
	assert.False(t, cfg.IndexingEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("PUBLIC_BASE_URL", "https://screener.example.com/")
	t.Setenv("QDRANT_URL", "http://localhost:6334")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "https://screener.example.com", cfg.Storage.PublicBaseURL)
	assert.True(t, cfg.IndexingEnabled())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "openai with key",
			cfg:  Config{LLM: LLMConfig{Provider: ProviderOpenAI, APIKey: "sk"}},
		},
		{
			name:    "openai without key",
			cfg:     Config{LLM: LLMConfig{Provider: ProviderOpenAI}},
			wantErr: "OPENAI_API_KEY is required",
		},
		{
			name:    "gemini without key",
			cfg:     Config{LLM: LLMConfig{Provider: ProviderGemini}},
			wantErr: "GEMINI_API_KEY is required",
		},
		{
			name:    "unknown provider",
			cfg:     Config{LLM: LLMConfig{Provider: "acme"}},
			wantErr: "unsupported LLM_PROVIDER",
		},
		{
			name:    "indexing needs gemini",
			cfg:     Config{LLM: LLMConfig{Provider: ProviderOpenAI, APIKey: "sk"}, Qdrant: QdrantConfig{URL: "http://localhost:6334"}},
			wantErr: "candidate indexing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "resumes", SSLMode: "disable"}}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=resumes sslmode=disable", cfg.GetDatabaseDSN())
}
