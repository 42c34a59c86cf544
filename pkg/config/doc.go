// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment
//     (the default `.env` is loaded once automatically before the first Load).
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per type, so each configuration is parsed once.
//   - Structs implementing Validator are checked right after parsing. The
//     Validate hook is the natural place for guard checks:
//
//	type ServerConfig struct {
//	    Port int    `env:"PORT" envDefault:"8080"`
//	    Env  string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	func (c ServerConfig) Validate() error {
//	    _, portErr := guard.CheckIsInsideRange(c.Port, 1, 65535, "PORT")
//	    _, envErr := guard.CheckIsInWhitelist(c.Env, []string{"development", "production"}, "APP_ENV")
//	    return errors.Join(portErr, envErr)
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// # Error Handling
//
// Errors can be matched with `errors.Is`:
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrInvalidConfig: the Validate hook failed. Guard errors returned by the
//     hook stay reachable with errors.Is and errors.As.
//   - ErrLoadingEnvFile: a `.env` file could not be read.
//   - ErrNilPointer: a nil pointer was passed to Load.
//
// Failed loads are never cached.
//
// # Testing Helpers
//
// ResetCache clears every cached configuration and ForceReloadConfig re-parses
// a single type after the environment changed.
package config
