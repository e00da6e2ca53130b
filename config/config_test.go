package config

import (
	"testing"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.False(t, cfg.IsDev)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "http://localhost:3000", cfg.HTTP.UpstreamURL)
	assert.Equal(t, CredentialModeCookie, cfg.Gate.Mode)
	assert.Equal(t, "access_token", cfg.Gate.TokenCookie)
	assert.Equal(t, "user_role", cfg.Gate.RoleCookie)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "session:", cfg.Redis.KeyPrefix)
}

func TestAppConfig_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("UPSTREAM_URL", "http://web:3000")
	t.Setenv("GATE_CREDENTIAL_MODE", "session")
	t.Setenv("GATE_TOKEN_COOKIE", "qp_session")
	t.Setenv("GATE_EXTRA_PUBLIC", "/promo;/docs")
	t.Setenv("GATE_EXTRA_EXCLUDED", "/metrics")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "3")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "http://web:3000", cfg.HTTP.UpstreamURL)
	assert.Equal(t, CredentialModeSession, cfg.Gate.Mode)
	assert.Equal(t, "qp_session", cfg.Gate.TokenCookie)
	assert.Equal(t, []string{"/promo", "/docs"}, cfg.Gate.ExtraPublic)
	assert.Equal(t, []string{"/metrics"}, cfg.Gate.ExtraExcluded)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestCredentialMode_UnmarshalText(t *testing.T) {
	var m CredentialMode
	require.NoError(t, m.UnmarshalText([]byte("SESSION")))
	assert.Equal(t, CredentialModeSession, m)

	require.NoError(t, m.UnmarshalText([]byte("cookie")))
	assert.Equal(t, CredentialModeCookie, m)

	err := m.UnmarshalText([]byte("jwt"))
	assert.ErrorContains(t, err, "invalid CredentialMode")
}

func TestSanitize_FillsBlanks(t *testing.T) {
	cfg := AppConfig{}
	cfg.Sanitize()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, CredentialModeCookie, cfg.Gate.Mode)
	assert.Equal(t, "access_token", cfg.Gate.TokenCookie)
	assert.Equal(t, "user_role", cfg.Gate.RoleCookie)
}
