// Package config loads settings structs from the process environment,
// optionally seeded from .env files.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing `env` / `envDefault` struct tags.
// Variables already present in the environment take precedence over values
// from .env files.
//
// # Usage
//
//	type Settings struct {
//		Corpus []string `env:"NAMEGEN_CORPUS" envSeparator:","`
//		Count  int      `env:"NAMEGEN_COUNT" envDefault:"10"`
//		Gen    namegen.Config
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
//
// Load without file arguments reads ./.env when it exists and silently skips
// it otherwise. Files passed explicitly must exist.
//
// # Errors
//
//   - ErrNilPointer: a nil pointer was passed.
//   - ErrLoadingEnvFile: an explicitly listed .env file could not be read.
//   - ErrParsingConfig: the environment could not be parsed into the struct.
package config
