package httpx

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/quickplate/ui-gate/internal/domain/gate"
	"github.com/quickplate/ui-gate/internal/ports"
)

// RouterServices holds all the dependencies needed by the HTTP router.
type RouterServices struct {
	Table        gate.RouteTable
	Source       ports.CredentialSource
	Upstream     *url.URL
	CookieDomain string
	TokenCookie  string
	RoleCookie   string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router. Health and session-info
// endpoints are served locally; everything else runs through the gate and,
// when allowed, is forwarded to the upstream application.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	sessionHandlers := &SessionHandlers{Source: services.Source}
	mux.Handle("GET /gate/session", http.HandlerFunc(sessionHandlers.Session))

	forwarder := NewForwarder(services.Upstream, services.Logger)
	gated := Gate(GateOptions{
		Table:        services.Table,
		Source:       services.Source,
		CookieDomain: services.CookieDomain,
		TokenCookie:  services.TokenCookie,
		RoleCookie:   services.RoleCookie,
		Logger:       services.Logger,
	})(forwarder)
	mux.Handle("/", gated)

	return mux
}
