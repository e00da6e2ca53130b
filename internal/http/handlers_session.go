package httpx

import (
	"net/http"

	"github.com/quickplate/ui-gate/internal/ports"
)

// SessionHandlers exposes the gate's view of the current credentials so the
// frontend can render role-aware navigation without guessing at cookies.
type SessionHandlers struct {
	Source ports.CredentialSource
}

// Session handles GET /gate/session. It reports whether the request carries
// a complete credential pair and, if so, which role. The token value itself
// is never echoed back.
func (h *SessionHandlers) Session(w http.ResponseWriter, r *http.Request) {
	creds := h.Source.Read(r)
	if !creds.HasToken() || !creds.HasRole() {
		WriteJSON(w, http.StatusOK, map[string]any{
			"authenticated": false,
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"role":          creds.Role,
	})
}
