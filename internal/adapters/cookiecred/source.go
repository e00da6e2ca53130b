// Package cookiecred reads credentials straight from the request cookie jar.
// This is the default source: the token cookie is trusted on presence alone
// and the role cookie is parsed fail-closed.
package cookiecred

import (
	"net/http"

	"github.com/quickplate/ui-gate/internal/domain/auth"
)

// DefaultTokenCookie and DefaultRoleCookie name the credential cookies the
// Quickplate web application sets at login.
const (
	DefaultTokenCookie = "access_token"
	DefaultRoleCookie  = "user_role"
)

// Source reads credentials from two named cookies.
type Source struct {
	TokenCookie string
	RoleCookie  string
}

// New creates a cookie credential source, applying the default cookie names
// for any blank field.
func New(tokenCookie, roleCookie string) Source {
	if tokenCookie == "" {
		tokenCookie = DefaultTokenCookie
	}
	if roleCookie == "" {
		roleCookie = DefaultRoleCookie
	}
	return Source{TokenCookie: tokenCookie, RoleCookie: roleCookie}
}

// Read extracts credentials from r. A missing or empty token cookie means no
// token; a role cookie that does not parse to a known role means no role.
func (s Source) Read(r *http.Request) auth.Credentials {
	var creds auth.Credentials
	if c, err := r.Cookie(s.TokenCookie); err == nil && c.Value != "" {
		creds.Token = c.Value
	}
	if c, err := r.Cookie(s.RoleCookie); err == nil {
		if role, ok := auth.ParseRole(c.Value); ok {
			creds.Role = role
		}
	}
	return creds
}
