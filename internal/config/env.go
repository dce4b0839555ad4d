// Package config loads environment defaults for the CLI.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds settings that rarely change between runs. Flags override them.
type Env struct {
	BufferKB   int           `env:"RUSTOVEVA_BUFFER_KB" envDefault:"64"`
	Sample     int           `env:"RUSTOVEVA_SAMPLE" envDefault:"64"`
	StartDelay time.Duration `env:"RUSTOVEVA_START_DELAY" envDefault:"0s"`
	NoBanner   bool          `env:"RUSTOVEVA_NO_BANNER" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Env and checks its bounds.
func Load() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return e, err
	}
	if e.BufferKB <= 0 {
		return e, fmt.Errorf("RUSTOVEVA_BUFFER_KB must be > 0, got %d", e.BufferKB)
	}
	if e.Sample < 0 {
		return e, fmt.Errorf("RUSTOVEVA_SAMPLE must be >= 0, got %d", e.Sample)
	}
	if e.StartDelay < 0 {
		return e, fmt.Errorf("RUSTOVEVA_START_DELAY must be >= 0, got %s", e.StartDelay)
	}
	return e, nil
}

// BufferSize is the write buffer in bytes.
func (e Env) BufferSize() int { return e.BufferKB << 10 }
