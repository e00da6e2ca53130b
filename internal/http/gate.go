package httpx

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/quickplate/ui-gate/internal/domain/gate"
	"github.com/quickplate/ui-gate/internal/ports"
)

// GateOptions groups the dependencies of the gate middleware.
type GateOptions struct {
	Table        gate.RouteTable
	Source       ports.CredentialSource
	CookieDomain string
	TokenCookie  string
	RoleCookie   string
	Logger       *slog.Logger
}

// Gate returns the middleware that evaluates the request gate and applies
// its Decision: pass the request on, redirect, or redirect while deleting
// both credential cookies.
func Gate(opts GateOptions) func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			creds := opts.Source.Read(r)
			decision := gate.Decide(opts.Table, r.URL.Path, creds)

			switch decision.Action {
			case gate.ActionAllow:
				next.ServeHTTP(w, r)

			case gate.ActionRedirect:
				http.Redirect(w, r, redirectTarget(decision.Target, r), http.StatusFound)

			case gate.ActionRedirectClear:
				// Clearing both cookies converts the corrupted credential
				// state into a clean unauthenticated one, so the follow-up
				// request cannot loop back here.
				clearCookie(w, r, opts.TokenCookie, opts.CookieDomain)
				clearCookie(w, r, opts.RoleCookie, opts.CookieDomain)
				logger.InfoContext(r.Context(), "cleared corrupted credentials",
					"path", r.URL.Path,
					"request_id", r.Header.Get(requestIDHeader),
				)
				http.Redirect(w, r, redirectTarget(decision.Target, r), http.StatusFound)
			}
		})
	}
}

// redirectTarget carries the original query string over to the redirect
// target. The target paths produced by the gate never contain a query of
// their own.
func redirectTarget(target string, r *http.Request) string {
	if q := r.URL.RawQuery; q != "" {
		return target + "?" + q
	}
	return target
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when the
// application sets cookies, to maximize compatibility across browsers
// during deletion.
func clearCookie(w http.ResponseWriter, r *http.Request, name, domain string) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
