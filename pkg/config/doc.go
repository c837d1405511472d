// Package config loads configuration structs from environment variables,
// optionally seeded from `.env` files.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//	type CLIConfig struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	    Output   string `env:"OUTPUT" envDefault:"text"`
//	}
//
//	if err := config.LoadEnv(); err != nil {
//	    return err
//	}
//	var cfg CLIConfig
//	if err := config.Load(&cfg, config.WithPrefix("TRVALIDATE_")); err != nil {
//	    return err
//	}
//
// Variables already present in the process environment always win over
// values from `.env` files.
//
// # Error Handling
//
//   - ErrParsingConfig – env vars could not be parsed into the struct.
//   - ErrNilPointer    – nil pointer passed to Load.
//   - ErrLoadingEnv    – an explicitly named `.env` file could not be read.
package config
