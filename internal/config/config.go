package config

import (
	"log/slog"
	"os"
	"skeet-sim/internal/simulation"
	"strconv"
	"strings"
)

// Config holds the runtime settings of the simulator, read from SKEET_* environment variables.
type Config struct {
	Width         int
	Height        int
	Seed          int64 // 0 picks a time-based seed
	TPS           int
	SpawnInterval int // frames between launches
	Headless      bool
	Frames        int // frames to run when headless
	Autopilot     bool
	LogLevel      slog.Level
}

// Load reads the configuration from the environment, falling back to defaults for unset or malformed values.
func Load() Config {
	cfg := Config{
		Width:         getEnvInt("SKEET_WIDTH", 800),
		Height:        getEnvInt("SKEET_HEIGHT", 600),
		Seed:          int64(getEnvInt("SKEET_SEED", 0)),
		TPS:           getEnvInt("SKEET_TPS", 60),
		SpawnInterval: getEnvInt("SKEET_SPAWN_INTERVAL", 90),
		Headless:      getEnvBool("SKEET_HEADLESS", false),
		Frames:        getEnvInt("SKEET_FRAMES", 1800),
		Autopilot:     getEnvBool("SKEET_AUTOPILOT", false),
		LogLevel:      getEnvLevel("SKEET_LOG_LEVEL", slog.LevelInfo),
	}
	return cfg
}

// Bounds returns the screen size as simulation bounds.
func (c Config) Bounds() simulation.Bounds {
	return simulation.NewBounds(float64(c.Width), float64(c.Height))
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvLevel(key string, fallback slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(strings.ToUpper(v))); err == nil {
			return l
		}
	}
	return fallback
}
