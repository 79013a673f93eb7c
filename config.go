package edgesaved

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/edgesaved/pkg/cookie"
	"github.com/dmitrymomot/edgesaved/pkg/logger"
)

// Config is the application configuration read from the environment.
type Config struct {
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	Secret          string        `env:"APP_SECRET"`
	CookieMaxAge    int           `env:"COOKIE_MAX_AGE" envDefault:"2592000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	// CatalogDir overrides the embedded catalogue with a directory of markdown files.
	CatalogDir string `env:"CATALOG_DIR"`

	Log logger.Config
}

// LoadConfig reads an optional env file, named by ENV_FILE and ".env" by
// default, then parses the environment.
// Variables already set in the process win over the file.
// A missing APP_SECRET is not an error here; see Config.Validate.
func LoadConfig() (Config, error) {
	file := os.Getenv("ENV_FILE")
	if file == "" {
		file = ".env"
	}
	if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", file, err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// ErrNoSecret reports a configuration without APP_SECRET.
var ErrNoSecret = errors.New("edgesaved: APP_SECRET is not set")

// Validate reports configuration problems that leave the service degraded.
func (c Config) Validate() error {
	var errs []error
	if c.Secret == "" {
		errs = append(errs, ErrNoSecret)
	}
	if c.CookieMaxAge <= 0 {
		errs = append(errs, fmt.Errorf("edgesaved: COOKIE_MAX_AGE must be positive, got %d", c.CookieMaxAge))
	}
	return errors.Join(errs...)
}

// cookieMaxAge returns the configured lifetime, or the default when unset.
func (c Config) cookieMaxAge() int {
	if c.CookieMaxAge > 0 {
		return c.CookieMaxAge
	}
	return cookie.DefaultMaxAge
}
