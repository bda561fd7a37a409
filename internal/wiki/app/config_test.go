package app

import (
	"testing"
	"time"

	"github.com/auswiki/auswiki/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_RequiredVars(t *testing.T) {
	t.Setenv("AUWIKI_JWT_SECRET", "")
	t.Setenv("AUWIKI_DATABASE_FILE", "")

	_, err := LoadConfig()
	require.ErrorContains(t, err, "AUWIKI_JWT_SECRET")

	t.Setenv("AUWIKI_JWT_SECRET", "s3cret")
	_, err = LoadConfig()
	require.ErrorContains(t, err, "AUWIKI_DATABASE_FILE")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("AUWIKI_JWT_SECRET", "s3cret")
	t.Setenv("AUWIKI_DATABASE_FILE", "auwiki.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "auwiki", cfg.Issuer)
	require.Equal(t, jwtx.DefaultSessionTTL, cfg.TokenTTL)
	require.Equal(t, "json", cfg.LogFormat)
	require.Nil(t, cfg.AllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("AUWIKI_JWT_SECRET", "s3cret")
	t.Setenv("AUWIKI_DATABASE_FILE", "auwiki.db")
	t.Setenv("AUWIKI_PORT", "9090")
	t.Setenv("AUWIKI_TOKEN_TTL", "45m")
	t.Setenv("AUWIKI_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 45*time.Minute, cfg.TokenTTL)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("AUWIKI_JWT_SECRET", "s3cret")
	t.Setenv("AUWIKI_DATABASE_FILE", "auwiki.db")
	t.Setenv("AUWIKI_PORT", "70000")

	_, err := LoadConfig()
	require.ErrorContains(t, err, "AUWIKI_PORT")
}
