// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/apicheck/core/config"
//
//	type ClientConfig struct {
//		APIKey   string        `env:"APICHECK_API_KEY,required"`
//		Endpoint string        `env:"APICHECK_ENDPOINT" envDefault:"https://api.apicheck.nl"`
//		Timeout  time.Duration `env:"APICHECK_TIMEOUT" envDefault:"10s"`
//	}
//
//	func main() {
//		var cfg ClientConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process lifetime. Changing
// the environment after the first Load has no effect for that type; different
// types are cached independently.
package config
