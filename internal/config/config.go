// Package config loads runtime settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every tunable of the gwynt command.
type Config struct {
	DeckFile    string `env:"GWYNT_DECK_FILE"    envDefault:"data/cards.csv"`
	FactionOne  string `env:"GWYNT_FACTION_ONE"  envDefault:"Northern Realms"`
	FactionTwo  string `env:"GWYNT_FACTION_TWO"  envDefault:"Nilfgaard"`
	Shuffle     bool   `env:"GWYNT_SHUFFLE"      envDefault:"true"`
	Seed        int64  `env:"GWYNT_SEED"         envDefault:"0"`
	OpeningHand uint8  `env:"GWYNT_OPENING_HAND" envDefault:"7"`
	LogLevel    string `env:"GWYNT_LOG_LEVEL"    envDefault:"warn"`
	NoColor     bool   `env:"GWYNT_NO_COLOR"     envDefault:"false"`
	DatabaseURL string `env:"GWYNT_DATABASE_URL"`
	RedisURL    string `env:"GWYNT_REDIS_URL"`
}

// Load reads envFile (if it exists) into the environment and parses Config.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	return parse(env.Options{})
}

// FromMap parses Config from the given variables only, ignoring the process
// environment.
func FromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot start a match.
func (c Config) Validate() error {
	if strings.TrimSpace(c.FactionOne) == "" || strings.TrimSpace(c.FactionTwo) == "" {
		return errors.New("config: both factions must be set")
	}
	if strings.EqualFold(strings.TrimSpace(c.FactionOne), strings.TrimSpace(c.FactionTwo)) {
		return fmt.Errorf("config: factions must differ, both are %q", c.FactionOne)
	}
	if c.OpeningHand == 0 {
		return errors.New("config: GWYNT_OPENING_HAND must be at least 1")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the parsed log level. Validate has already checked it.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}
