package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestLoad_Defaults verifies that Load produces working defaults when no
// environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"LCPP_REDIS_URL", "LCPP_REDIS_PREFIX", "LCPP_SOURCE_LANG",
		"LCPP_TARGET_LANG", "LCPP_HTTP_TIMEOUT", "LCPP_BATCH_MAX",
		"LCPP_MAX_RETRIES", "LCPP_LOG_LEVEL", "LCPP_LOG_PRETTY",
	} {
		// t.Setenv registers the restore; Unsetenv makes the variable
		// truly absent so the defaults apply.
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	cfg := Load()
	assert.Equal(t, "", cfg.RedisURL)
	assert.Equal(t, "en", cfg.SourceLang)
	assert.Equal(t, "pl", cfg.TargetLang)
	assert.Equal(t, 3800, cfg.BatchMaxLen)
	assert.Equal(t, 5, cfg.MaxRetries)
}

// TestLoad_EnvOverrides verifies that set environment variables win over
// defaults, including typed parsing.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LCPP_REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("LCPP_SOURCE_LANG", "auto")
	t.Setenv("LCPP_HTTP_TIMEOUT", "5s")
	t.Setenv("LCPP_BATCH_MAX", "1200")
	t.Setenv("LCPP_LOG_PRETTY", "false")

	cfg := Load()
	assert.Equal(t, "redis://localhost:6379/1", cfg.RedisURL)
	assert.Equal(t, "auto", cfg.SourceLang)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 1200, cfg.BatchMaxLen)
	assert.False(t, cfg.LogPretty)
}

// TestLoad_MalformedValuesFallBack verifies that unparseable typed values
// fall back to defaults instead of failing.
func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("LCPP_BATCH_MAX", "not-a-number")
	t.Setenv("LCPP_HTTP_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, 3800, cfg.BatchMaxLen)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}
