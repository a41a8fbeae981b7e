package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("IDENTITY_JWT_SECRET", strings.Repeat("s", 32))
}

func TestLoad_defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, uint(5), cfg.Limiter.RequestsPerSecond)
	assert.Equal(t, 72*time.Hour, cfg.Workflow.DraftTTL)
	assert.False(t, cfg.Workflow.RankUnknownTiersLast)
	assert.Equal(t, ":8080", cfg.GetServerAddr())
}

func TestLoad_corsOrigins(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ALLOW_ORIGIN", "https://a.example, ,https://b.example")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.GetCORSOrigins())
}

func TestLoad_airtableRequiresCredentials(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORE_BACKEND", "airtable")
	t.Setenv("AIRTABLE_API_KEY", "")
	t.Setenv("AIRTABLE_BASE_ID", "")

	_, err := Load()

	assert.ErrorContains(t, err, "AIRTABLE_API_KEY")
}

func TestLoad_invalidBackend(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORE_BACKEND", "sheets")

	_, err := Load()

	assert.ErrorContains(t, err, "invalid STORE_BACKEND")
}

func TestLoad_shortSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("IDENTITY_JWT_SECRET", "short")

	_, err := Load()

	assert.ErrorContains(t, err, "IDENTITY_JWT_SECRET")
}
