package apicheck

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/apicheck/core/config"
)

// Defaults applied by New to zero-valued Config fields.
const (
	DefaultEndpoint   = "https://api.apicheck.nl"
	DefaultAPIVersion = "v1"
	DefaultTimeout    = 10 * time.Second
)

const envAPIKey = "APICHECK_API_KEY"

// Config holds the client settings. The API key is the only field without a default.
type Config struct {
	APIKey     string        `env:"APICHECK_API_KEY,required" validate:"required"`
	Endpoint   string        `env:"APICHECK_ENDPOINT" envDefault:"https://api.apicheck.nl" validate:"required,url"`
	APIVersion string        `env:"APICHECK_API_VERSION" envDefault:"v1" validate:"required,alphanum"`
	Timeout    time.Duration `env:"APICHECK_TIMEOUT" envDefault:"10s" validate:"gte=0s"`
}

// validate is safe for concurrent use and caches struct metadata.
var validate = playground.New()

// Validate reports the first problem with the configuration. A missing API
// key is always reported as ErrMissingAPIKey.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}

	if err := validate.Struct(c); err != nil {
		var fieldErrs playground.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: %s failed on the '%s' rule (%v)", ErrConfiguration, fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return nil
}

func (c Config) withDefaults() Config {
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.Endpoint = strings.TrimRight(strings.TrimSpace(c.Endpoint), "/")
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// ConfigFromEnv loads the configuration from APICHECK_* environment
// variables (and a .env file, if present).
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		var unset env.VarIsNotSetError
		if errors.As(err, &unset) && unset.Key == envAPIKey {
			return Config{}, fmt.Errorf("%w: %w", ErrMissingAPIKey, err)
		}
		return Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
