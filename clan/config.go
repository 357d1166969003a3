package clan

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config describes a clan. Env tags are read by LoadConfigFromEnv.
type Config struct {
	// Empty => a generated "The <Adjective> <Noun>" name
	Name string `env:"DRAGONCLAN_NAME"`

	// RNG seed (0 => time-based)
	Seed int64 `env:"DRAGONCLAN_SEED"`

	InitialDragons int `env:"DRAGONCLAN_DRAGONS" envDefault:"5"`

	// Random dragons get an age uniformly drawn from [MinAge, MaxAge]
	MinAge int `env:"DRAGONCLAN_MIN_AGE" envDefault:"1"`
	MaxAge int `env:"DRAGONCLAN_MAX_AGE" envDefault:"15"`

	// Avoid handing two random dragons the same name
	UniqueNames bool `env:"DRAGONCLAN_UNIQUE_NAMES" envDefault:"true"`
}

// DefaultConfig matches the env defaults.
func DefaultConfig() Config {
	return Config{
		InitialDragons: 5,
		MinAge:         1,
		MaxAge:         15,
		UniqueNames:    true,
	}
}

// LoadConfigFromEnv reads DRAGONCLAN_* variables over the defaults.
func LoadConfigFromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("load clan config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.InitialDragons < 0 {
		return fmt.Errorf("InitialDragons must be >= 0")
	}
	if c.MinAge < 0 {
		return fmt.Errorf("MinAge must be >= 0")
	}
	if c.MinAge > c.MaxAge {
		return fmt.Errorf("MinAge must be <= MaxAge: min=%d max=%d", c.MinAge, c.MaxAge)
	}
	return nil
}
