// Package config loads runtime tunables for the fan-out service from
// environment variables, accumulating validation problems into one
// descriptive error rather than failing on the first bad value.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultAddr is the default gRPC listen address.
	DefaultAddr = ":10000"
	// DefaultChannelCapacity is the per-subscriber outbound queue depth.
	DefaultChannelCapacity = 100000
	// DefaultFilterMaxLabels bounds labels per SubscribeRequest kind.
	DefaultFilterMaxLabels = 64
	// DefaultFilterMaxPubkeys bounds pubkeys per filter criteria entry.
	DefaultFilterMaxPubkeys = 256
	// DefaultUpdateRateWindow is the sliding window for filter-update limiting.
	DefaultUpdateRateWindow = time.Second
	// DefaultUpdateRateBurst is the max filter updates allowed per window.
	DefaultUpdateRateBurst = 20

	// DefaultLogLevel controls log verbosity.
	DefaultLogLevel = "info"
	// DefaultLogPath is where structured logs are written.
	DefaultLogPath = "geyser-fanout.log"
	// DefaultLogMaxSizeMB caps a single log file before rotation.
	DefaultLogMaxSizeMB = 100
	// DefaultLogMaxBackups limits retained rotated log files.
	DefaultLogMaxBackups = 10
	// DefaultLogMaxAgeDays controls how long rotated log files are kept.
	DefaultLogMaxAgeDays = 7
	// DefaultLogCompress toggles gzip compression for rotated log files.
	DefaultLogCompress = true
)

// Config captures all runtime tunables for the fan-out service.
type Config struct {
	Addr             string
	ChannelCapacity  int
	FilterMaxLabels  int
	FilterMaxPubkeys int
	UpdateRateWindow time.Duration
	UpdateRateBurst  int
	AdminAddr        string
	AdminAuthSecret  string
	Logging          LoggingConfig
}

// LoggingConfig captures structured logging configuration options.
type LoggingConfig struct {
	Level      string
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Load reads the service configuration from environment variables, applying
// defaults and returning a descriptive error for invalid overrides.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:             getString("GEYSER_ADDR", DefaultAddr),
		ChannelCapacity:  DefaultChannelCapacity,
		FilterMaxLabels:  DefaultFilterMaxLabels,
		FilterMaxPubkeys: DefaultFilterMaxPubkeys,
		UpdateRateWindow: DefaultUpdateRateWindow,
		UpdateRateBurst:  DefaultUpdateRateBurst,
		AdminAddr:        strings.TrimSpace(os.Getenv("GEYSER_ADMIN_ADDR")),
		AdminAuthSecret:  strings.TrimSpace(os.Getenv("GEYSER_ADMIN_AUTH_SECRET")),
		Logging: LoggingConfig{
			Level:      strings.TrimSpace(getString("GEYSER_LOG_LEVEL", DefaultLogLevel)),
			Path:       strings.TrimSpace(getString("GEYSER_LOG_PATH", DefaultLogPath)),
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
			Compress:   DefaultLogCompress,
		},
	}

	var problems []string

	if raw := strings.TrimSpace(os.Getenv("GEYSER_CHANNEL_CAPACITY")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("GEYSER_CHANNEL_CAPACITY must be a positive integer, got %q", raw))
		} else {
			cfg.ChannelCapacity = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("GEYSER_FILTER_MAX_LABELS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("GEYSER_FILTER_MAX_LABELS must be a positive integer, got %q", raw))
		} else {
			cfg.FilterMaxLabels = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("GEYSER_FILTER_MAX_PUBKEYS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("GEYSER_FILTER_MAX_PUBKEYS must be a positive integer, got %q", raw))
		} else {
			cfg.FilterMaxPubkeys = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("GEYSER_UPDATE_RATE_WINDOW")); raw != "" {
		duration, err := time.ParseDuration(raw)
		if err != nil || duration <= 0 {
			problems = append(problems, fmt.Sprintf("GEYSER_UPDATE_RATE_WINDOW must be a positive duration, got %q", raw))
		} else {
			cfg.UpdateRateWindow = duration
		}
	}

	if raw := strings.TrimSpace(os.Getenv("GEYSER_UPDATE_RATE_BURST")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("GEYSER_UPDATE_RATE_BURST must be a positive integer, got %q", raw))
		} else {
			cfg.UpdateRateBurst = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("GEYSER_LOG_MAX_SIZE_MB")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("GEYSER_LOG_MAX_SIZE_MB must be a positive integer, got %q", raw))
		} else {
			cfg.Logging.MaxSizeMB = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("GEYSER_LOG_MAX_BACKUPS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			problems = append(problems, fmt.Sprintf("GEYSER_LOG_MAX_BACKUPS must be a non-negative integer, got %q", raw))
		} else {
			cfg.Logging.MaxBackups = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("GEYSER_LOG_MAX_AGE_DAYS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			problems = append(problems, fmt.Sprintf("GEYSER_LOG_MAX_AGE_DAYS must be a non-negative integer, got %q", raw))
		} else {
			cfg.Logging.MaxAgeDays = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("GEYSER_LOG_COMPRESS")); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("GEYSER_LOG_COMPRESS must be a boolean value, got %q", raw))
		} else {
			cfg.Logging.Compress = value
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf(strings.Join(problems, "; "))
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
