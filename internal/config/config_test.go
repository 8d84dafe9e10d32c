package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/jobboard")

	cfg := MustLoad()

	assert.Equal(t, "NextHire", cfg.ProjectName)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.False(t, cfg.DebugMode)
	assert.EqualValues(t, 1000, cfg.MaxJobPostings)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins())
}

func TestMustLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db:5432/jobboard")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DEBUG_MODE", "true")
	t.Setenv("MAX_JOB_POSTINGS", "50")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := MustLoad()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.True(t, cfg.DebugMode)
	assert.EqualValues(t, 50, cfg.MaxJobPostings)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestMustLoadRequiresDatabaseURL(t *testing.T) {
	// t.Setenv registers the restore; the variable must be absent, not empty.
	t.Setenv("DATABASE_URL", "placeholder")
	os.Unsetenv("DATABASE_URL")

	require.Panics(t, func() { MustLoad() })
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "http://a.example, https://b.example ,, "}
	assert.Equal(t, []string{"http://a.example", "https://b.example"}, cfg.CORSOrigins())
}
