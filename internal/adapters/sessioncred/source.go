// Package sessioncred resolves the access token cookie against a server-side
// session store. The raw token doubles as the session ID and the role comes
// from the stored session, so the user_role cookie cannot be tampered with.
// The gate's decision contract is unchanged: the source only produces
// Credentials, and a token whose session is gone surfaces as the
// token-present/role-absent state the gate already self-heals.
package sessioncred

import (
	"log/slog"
	"net/http"

	"github.com/quickplate/ui-gate/internal/adapters/cookiecred"
	"github.com/quickplate/ui-gate/internal/domain/auth"
	apperrors "github.com/quickplate/ui-gate/internal/errors"
	"github.com/quickplate/ui-gate/internal/ports"
)

// Source reads the token cookie and resolves the role from a session store.
type Source struct {
	Store       ports.SessionStore
	TokenCookie string
	Logger      *slog.Logger
}

// New creates a session credential source. A blank tokenCookie falls back to
// the default token cookie name.
func New(store ports.SessionStore, tokenCookie string, logger *slog.Logger) Source {
	if tokenCookie == "" {
		tokenCookie = cookiecred.DefaultTokenCookie
	}
	if logger == nil {
		logger = slog.Default()
	}
	return Source{Store: store, TokenCookie: tokenCookie, Logger: logger}
}

// Read extracts credentials from r. Store lookup failures are reported as an
// absent role rather than an error: the gate converts that state into a
// credential-clearing redirect, which is the desired recovery for both stale
// sessions and store outages.
func (s Source) Read(r *http.Request) auth.Credentials {
	c, err := r.Cookie(s.TokenCookie)
	if err != nil || c.Value == "" {
		return auth.Credentials{}
	}

	creds := auth.Credentials{Token: c.Value}

	sess, err := s.Store.Get(r.Context(), c.Value)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			s.Logger.ErrorContext(r.Context(), "session lookup failed", "error", err)
		}
		return creds
	}

	if role, ok := auth.ParseRole(string(sess.Role)); ok {
		creds.Role = role
	}
	return creds
}
