package config

import (
	"fmt"
	"strings"
)

// CredentialMode selects how per-request credentials are read.
type CredentialMode string

const (
	// CredentialModeCookie reads the token and role straight from cookies.
	CredentialModeCookie CredentialMode = "cookie"
	// CredentialModeSession treats the token cookie as a session ID and
	// resolves the role from the Redis session store.
	CredentialModeSession CredentialMode = "session"
)

// UnmarshalText implements encoding.TextUnmarshaler for CredentialMode.
func (m *CredentialMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "cookie", "session":
		*m = CredentialMode(v)
		return nil
	default:
		return fmt.Errorf("invalid CredentialMode: %q (valid options: cookie, session)", v)
	}
}

// GateConfig contains request gate configuration.
type GateConfig struct {
	// Mode determines which credential source to use.
	Mode CredentialMode `env:"CREDENTIAL_MODE" envDefault:"cookie"`

	// TokenCookie is the name of the access token cookie.
	TokenCookie string `env:"TOKEN_COOKIE" envDefault:"access_token"`

	// RoleCookie is the name of the role cookie (cookie mode only).
	RoleCookie string `env:"ROLE_COOKIE" envDefault:"user_role"`

	// ExtraPublic holds deployment-specific public path prefixes appended
	// to the built-in route table.
	ExtraPublic []string `env:"EXTRA_PUBLIC" envSeparator:";"`

	// ExtraExcluded holds deployment-specific excluded path prefixes
	// appended to the built-in route table.
	ExtraExcluded []string `env:"EXTRA_EXCLUDED" envSeparator:";"`
}

// Sanitize applies guardrails to gate configuration values.
func (g *GateConfig) Sanitize() {
	if g.Mode == "" {
		g.Mode = CredentialModeCookie
	}
	if g.TokenCookie == "" {
		g.TokenCookie = "access_token"
	}
	if g.RoleCookie == "" {
		g.RoleCookie = "user_role"
	}
}
