package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziebelle/move37/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "gemini", cfg.Extractor.Provider)
	assert.Equal(t, "noop", cfg.Speech.Provider)
	assert.Equal(t, "noop", cfg.Image.Provider)
	assert.Equal(t, "all_manuals_knowledge.json", cfg.Export.CorpusFile)
	assert.Equal(t, 150000, cfg.Export.CorpusMaxBytes)
	assert.Equal(t, 4, cfg.Assets.Concurrency)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MOVE37_DB_HOST", "db.internal")
	t.Setenv("MOVE37_DB_PORT", "5433")
	t.Setenv("MOVE37_EXTRACTOR_API_KEY", "secret")
	t.Setenv("MOVE37_EXPORT_CORPUS_MAX_BYTES", "1000")
	t.Setenv("MOVE37_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, "secret", cfg.Extractor.APIKey)
	assert.Equal(t, 1000, cfg.Export.CorpusMaxBytes)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "9999")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Port)
}

func TestDSN(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "move37", Password: "pw",
		Name: "move37_db", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://move37:pw@localhost:5432/move37_db?sslmode=disable", db.DSN())
}
