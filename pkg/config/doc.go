// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for struct-tag parsing:
//
//	type Config struct {
//	    Manifest string `env:"MANIFEST" envDefault:"kinds.yaml"`
//	    Workers  int    `env:"WORKERS" envDefault:"4"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("REFINEGEN_")); err != nil {
//	    return err
//	}
//
// The first Load call reads ./.env when present. LoadEnv loads additional
// files explicitly and fails when one is missing. Process variables always
// win over file values.
//
// Fields whose type implements encoding.TextUnmarshaler are decoded through
// it. Every kind in pkg/refined does, so a `refined.PosInt` field rejects
// zero or negative input at load time.
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig: the environment could not be parsed into the struct.
//   - ErrLoadingEnvFile: an explicit .env file could not be loaded.
//   - ErrNilPointer: nil pointer passed to Load or MustLoad.
package config
