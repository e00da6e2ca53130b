// Package ports defines interfaces (hexagonal ports) for credential and
// session behavior. Implementations live in internal/adapters; the pure
// decision logic in internal/domain/gate depends on neither.
package ports

import (
	"context"
	"net/http"

	"github.com/quickplate/ui-gate/internal/domain/auth"
)

// CredentialSource reads the per-request credential values the gate decides
// on. The gate never learns how credentials were obtained. Sources fail
// closed: anything missing or unrecognized is reported as a zero field.
type CredentialSource interface {
	Read(r *http.Request) auth.Credentials
}

// SessionStore persists and retrieves sessions for the session-backed
// credential source.
type SessionStore interface {
	Save(ctx context.Context, sess auth.Session) error
	Get(ctx context.Context, id string) (auth.Session, error)
	Delete(ctx context.Context, id string) error
}
