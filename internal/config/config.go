// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvSeed         = "MUSHTARA_SEED"
	EnvThinkDelay   = "MUSHTARA_THINK_DELAY"
	EnvSpecialDeals = "MUSHTARA_SPECIAL_DEALS"
	EnvLogLevel     = "MUSHTARA_LOG_LEVEL"
	EnvSimWorkers   = "MUSHTARA_SIM_WORKERS"
	EnvSimMatches   = "MUSHTARA_SIM_MATCHES"
	EnvSimMaxRounds = "MUSHTARA_SIM_MAX_ROUNDS"
)

// Config holds the settings for the CLI and the simulator.
type Config struct {
	Seed         uint64        // 0 picks a seed from the clock
	ThinkDelay   time.Duration // pause before each automated decision
	SpecialDeals bool
	LogLevel     logrus.Level

	SimWorkers   int
	SimMatches   int
	SimMaxRounds int // rounds after which a simulated match is abandoned
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Seed:         0,
		ThinkDelay:   1200 * time.Millisecond,
		SpecialDeals: true,
		LogLevel:     logrus.InfoLevel,
		SimWorkers:   runtime.GOMAXPROCS(0),
		SimMatches:   1000,
		SimMaxRounds: 200,
	}
}

// Load reads the given .env files (".env" when none are named; missing files
// are ignored) and then overlays environment variables on Default.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv overlays the MUSHTARA_* environment variables on Default.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if v := getenv(EnvSeed); v != "" {
		if cfg.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	if v := getenv(EnvThinkDelay); v != "" {
		if cfg.ThinkDelay, err = time.ParseDuration(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvThinkDelay, err)
		}
		if cfg.ThinkDelay < 0 {
			return Config{}, fmt.Errorf("%s: must not be negative", EnvThinkDelay)
		}
	}
	if v := getenv(EnvSpecialDeals); v != "" {
		if cfg.SpecialDeals, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSpecialDeals, err)
		}
	}
	if v := getenv(EnvLogLevel); v != "" {
		if cfg.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	if cfg.SimWorkers, err = positiveInt(EnvSimWorkers, cfg.SimWorkers); err != nil {
		return Config{}, err
	}
	if cfg.SimMatches, err = positiveInt(EnvSimMatches, cfg.SimMatches); err != nil {
		return Config{}, err
	}
	if cfg.SimMaxRounds, err = positiveInt(EnvSimMaxRounds, cfg.SimMaxRounds); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getenv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func positiveInt(key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", key, n)
	}
	return n, nil
}
