package config

import (
	"log/slog"
	"os"
	"strings"
)

// Settings holds ambient runtime configuration.
type Settings struct {
	// Logging
	LogFile  string
	LogLevel slog.Level

	// Optional site decay-data file (sqlite). Empty means the built-in
	// wallet-card table is used.
	DecayDataPath string
}

// Load reads ambient settings from environment variables.
func Load() Settings {
	return Settings{
		LogFile:       getEnv("FOILPLAN_LOG_FILE", "/tmp/foilplan.log"),
		LogLevel:      parseLogLevel(getEnv("FOILPLAN_LOG_LEVEL", "INFO")),
		DecayDataPath: getEnv("FOILPLAN_DECAY_DATA", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
