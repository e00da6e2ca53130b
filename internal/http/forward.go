package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
)

// NewForwarder returns the handler that proxies gate-approved requests to
// the upstream web application. The proxy preserves the request as-is; the
// gate middleware has already decided the request may pass.
func NewForwarder(upstream *url.URL, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	proxy := httputil.NewSingleHostReverseProxy(upstream)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.ErrorContext(r.Context(), "upstream request failed",
			"upstream", upstream.Host,
			"path", r.URL.Path,
			"error", err,
		)
		WriteError(w, ErrorParams{
			Code:    http.StatusBadGateway,
			ErrCode: "upstream_unavailable",
			Err:     errors.New("upstream application is unavailable"),
		})
	}

	return proxy
}
