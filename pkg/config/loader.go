package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option customises a single Load call.
type Option func(*env.Options)

// WithPrefix restricts parsing to variables starting with prefix, e.g.
// "REFINEGEN_". Field tags are written without it.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment parses from vars instead of the process environment.
// Tests use it to avoid touching global state.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// Load parses environment variables into v using its `env` struct tags.
//
// On first use it also loads ./.env into the process environment, if the
// file exists. Variables already set are never overridden.
//
// Any field implementing encoding.TextUnmarshaler is decoded through it, so
// refined kinds can be used directly and are validated on load:
//
//	type Config struct {
//		Workers refined.PosInt `env:"WORKERS" envDefault:"4"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("APP_")); err != nil {
//		// APP_WORKERS=0 ends up here
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// The default .env is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}
	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the given .env files into the process environment. Unlike
// the implicit ./.env load, every file must exist.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
