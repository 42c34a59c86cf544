package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/guard"
)

// Validator is implemented by configuration structs that check their own
// values after they were parsed from the environment.
type Validator interface {
	Validate() error
}

// configCache stores parsed configuration values keyed by type name.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
	}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v and caches the result per type.
//
// The default .env file is loaded once before the first parse. If *T implements
// Validator, Validate runs after parsing and its error is joined with
// ErrInvalidConfig. Configurations that fail parsing or validation are not cached,
// so a later call with a fixed environment succeeds.
//
// Example:
//
//	type ServerConfig struct {
//		Port int    `env:"PORT" envDefault:"8080"`
//		Env  string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	func (c ServerConfig) Validate() error {
//		_, err := guard.CheckIsInsideRange(c.Port, 1, 65535, "PORT")
//		return err
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if _, err := guard.CheckIsNotNull(v, "v"); err != nil {
		return errors.Join(ErrNilPointer, err)
	}

	typeName := getTypeName[T]()

	globalCache.mu.RLock()
	cached, ok := globalCache.values[typeName]
	globalCache.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	// Another goroutine may have finished parsing while we waited for the lock.
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := parse(&parsed); err != nil {
		return err
	}

	globalCache.values[typeName] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig parses v again, ignoring and replacing the cached value.
func ForceReloadConfig[T any](v *T) error {
	if _, err := guard.CheckIsNotNull(v, "v"); err != nil {
		return errors.Join(ErrNilPointer, err)
	}

	typeName := getTypeName[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	delete(globalCache.values, typeName)

	var parsed T
	if err := parse(&parsed); err != nil {
		return err
	}

	globalCache.values[typeName] = parsed
	*v = parsed
	return nil
}

// LoadEnv loads the given .env files into the process environment.
// Without arguments it loads .env from the working directory.
// Existing environment variables are not overridden.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
}

func parse[T any](v *T) error {
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if validator, ok := any(v).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}
	return nil
}

// getTypeName returns a string identifier for the generic type T.
func getTypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
