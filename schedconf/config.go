package schedconf

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds cmd/schedbench's tunables.
type Config struct {
	Rooms    int    `toml:"rooms"`
	Slots    int    `toml:"slots"`
	Restarts int    `toml:"restarts"`
	Workers  int    `toml:"workers"`
	LogLevel string `toml:"log_level"`
}

// Default returns the compiled-in baseline, overridden by file/env/flag
// layers in that order.
func Default() Config {
	return Config{
		Rooms:    4,
		Slots:    6,
		Restarts: 10,
		Workers:  0, // 0 means runtime.GOMAXPROCS(0)
		LogLevel: "info",
	}
}

// Load builds a Config by layering, in increasing precedence: Default,
// an optional TOML file (skipped if path is empty), then
// SCHEDBENCH_-prefixed environment variables. Flags are applied
// separately by the caller via Override, since flag.FlagSet parsing
// happens in cmd/schedbench's main, not here.
func Load(tomlPath string) (Config, error) {
	cfg := Default()

	if tomlPath != "" {
		if _, err := toml.DecodeFile(tomlPath, &cfg); err != nil {
			return Config{}, fmt.Errorf("schedconf: load: decode %s: %w", tomlPath, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("schedconf: load: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("SCHEDBENCH_ROOMS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SCHEDBENCH_ROOMS: %w", err)
		}
		cfg.Rooms = n
	}
	if v, ok := os.LookupEnv("SCHEDBENCH_SLOTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SCHEDBENCH_SLOTS: %w", err)
		}
		cfg.Slots = n
	}
	if v, ok := os.LookupEnv("SCHEDBENCH_RESTARTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SCHEDBENCH_RESTARTS: %w", err)
		}
		cfg.Restarts = n
	}
	if v, ok := os.LookupEnv("SCHEDBENCH_WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SCHEDBENCH_WORKERS: %w", err)
		}
		cfg.Workers = n
	}
	if v, ok := os.LookupEnv("SCHEDBENCH_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return nil
}

// FlagOverrides carries the subset of flags the caller actually set
// (as opposed to their zero-value defaults), so Override only
// clobbers fields the operator explicitly passed on the command line.
type FlagOverrides struct {
	Rooms    *int
	Slots    *int
	Restarts *int
	Workers  *int
	LogLevel *string
}

// Override applies explicitly-set flags over cfg, the highest
// precedence layer.
func Override(cfg Config, flags FlagOverrides) Config {
	if flags.Rooms != nil {
		cfg.Rooms = *flags.Rooms
	}
	if flags.Slots != nil {
		cfg.Slots = *flags.Slots
	}
	if flags.Restarts != nil {
		cfg.Restarts = *flags.Restarts
	}
	if flags.Workers != nil {
		cfg.Workers = *flags.Workers
	}
	if flags.LogLevel != nil {
		cfg.LogLevel = *flags.LogLevel
	}
	return cfg
}
