package config

// HTTPConfig contains HTTP server and upstream configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// UpstreamURL is the base URL of the web application the gate fronts.
	// Gate-approved requests are proxied here.
	UpstreamURL string `env:"UPSTREAM_URL" envDefault:"http://localhost:3000"`

	// CookieDomain is the domain attribute used when deleting credential
	// cookies. Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.Addr == "" {
		h.Addr = ":8080"
	}
}
