package config

import (
	"github.com/juhorosq/pwgen/internal/logger"
)

// Built-in defaults, applied before any file, environment or flag input.
const (
	DefaultCount    = 1
	DefaultLength   = 8
	DefaultSeedFile = "/dev/urandom"
)

// Config overall data structure.
type Config struct {
	Count    int        `toml:"count" validate:"gte=1"`  // how many random strings to generate
	Length   int        `toml:"length" validate:"gte=1"` // the length of each generated string
	SeedFile string     `toml:"seedFile"`                // file whence the random seed is read
	Sets     []string   `toml:"sets"`                    // symbol sets selected into the pool, in order
	Literals []string   `toml:"-" json:"-"`              // literal tokens spliced into the pool after the sets
	Log      logger.Log `toml:"log"`
}

// Default returns the built-in configuration: one string of eight
// characters, seeded from the system randomness device, diagnostics at
// warning level on the console.
func Default() Config {
	return Config{
		Count:    DefaultCount,
		Length:   DefaultLength,
		SeedFile: DefaultSeedFile,
		Log: logger.Log{
			LogLevel: "warn",
			Console:  logger.Console{Enabled: true},
		},
	}
}
