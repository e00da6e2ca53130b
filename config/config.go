package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - gate.go: Request gate configuration
//   - http.go: HTTP server and upstream configuration
//   - redis.go: Redis configuration (session credential mode)
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, relaxed
	// upstream checks). Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Gate configuration
	Gate GateConfig `envPrefix:"GATE_"`

	// Redis configuration (used when Gate.Mode is "session")
	Redis RedisConfig `envPrefix:"REDIS_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment
// variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Gate.Sanitize()
}
