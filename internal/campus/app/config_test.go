package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "TOKEN_TTL", "MAX_UPLOAD_BYTES", "RESULTS_PASS_MARK", "CORS_ALLOWED_ORIGINS", "DRAFT_OFFLINE_FALLBACK"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.EqualValues(t, 10<<20, cfg.MaxUploadBytes)
	require.Equal(t, 4, cfg.PassMark)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	require.False(t, cfg.DraftFallback)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("TOKEN_TTL", "30")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "bogus")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.edu, ,https://b.edu ")
	t.Setenv("DRAFT_OFFLINE_FALLBACK", "true")

	cfg := LoadConfig()
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, []string{"https://a.edu", "https://b.edu"}, cfg.CORSAllowedOrigins)
	require.True(t, cfg.DraftFallback)
}
