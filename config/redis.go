package config

// RedisConfig contains Redis configuration for the session credential mode.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`

	// KeyPrefix is prepended to session keys, matching the prefix the web
	// application uses when it writes sessions at login.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"session:"`
}
