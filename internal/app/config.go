package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port                int           `envconfig:"PORT" default:"8080"`
	Env                 string        `envconfig:"ENV" default:"dev"`
	LogLevel            string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat           string        `envconfig:"LOG_FORMAT" default:"json"`
	ShutdownGracePeriod time.Duration `envconfig:"SHUTDOWN_GRACE_PERIOD" default:"10s"`

	// DatabaseFile is the path to the SQLite database file.
	DatabaseFile string `envconfig:"PARLEY_DATABASE_FILE" default:"parley.db"`

	// PepperFile is the path to the password hashing pepper. Created on first
	// use if it does not exist.
	PepperFile string `envconfig:"PARLEY_PEPPER_FILE" default:"pepper"`

	// TokenSecret signs session tokens. Leaving it empty generates a random
	// secret at boot, which invalidates all outstanding tokens on restart.
	TokenSecret string `envconfig:"PARLEY_TOKEN_SECRET"`

	// Issuer is stamped into the token "iss" claim and enforced on verify.
	Issuer string `envconfig:"PARLEY_ISSUER" default:"parley"`

	AccessTTL  time.Duration `envconfig:"PARLEY_ACCESS_TTL" default:"15m"`
	RefreshTTL time.Duration `envconfig:"PARLEY_REFRESH_TTL" default:"168h"`

	// CORSOrigins is a comma-separated list of allowed browser origins.
	CORSOrigins []string `envconfig:"PARLEY_CORS_ORIGINS" default:"*"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
