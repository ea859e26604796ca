package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/simplify_test")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:5173")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/simplify_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_TTL", "24h")
	t.Setenv("ALLOWED_ORIGINS", "https://app.simplify.test,https://admin.simplify.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"https://app.simplify.test", "https://admin.simplify.test"}, cfg.AllowedOrigins)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/simplify_test")
	// t.Setenv registers the restore; the parser must see the variable as
	// genuinely unset, not set-but-empty.
	t.Setenv("JWT_SECRET", "x")
	os.Unsetenv("JWT_SECRET")

	_, err := Load()
	assert.Error(t, err)
}
