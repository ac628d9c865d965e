package config

import (
	"strings"
	"testing"
	"time"
)

func clearGeyserEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GEYSER_ADDR",
		"GEYSER_CHANNEL_CAPACITY",
		"GEYSER_FILTER_MAX_LABELS",
		"GEYSER_FILTER_MAX_PUBKEYS",
		"GEYSER_UPDATE_RATE_WINDOW",
		"GEYSER_UPDATE_RATE_BURST",
		"GEYSER_ADMIN_ADDR",
		"GEYSER_ADMIN_AUTH_SECRET",
		"GEYSER_LOG_LEVEL",
		"GEYSER_LOG_PATH",
		"GEYSER_LOG_MAX_SIZE_MB",
		"GEYSER_LOG_MAX_BACKUPS",
		"GEYSER_LOG_MAX_AGE_DAYS",
		"GEYSER_LOG_COMPRESS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearGeyserEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Addr != DefaultAddr {
		t.Fatalf("expected default addr %q, got %q", DefaultAddr, cfg.Addr)
	}
	if cfg.ChannelCapacity != DefaultChannelCapacity {
		t.Fatalf("expected default channel capacity %d, got %d", DefaultChannelCapacity, cfg.ChannelCapacity)
	}
	if cfg.FilterMaxLabels != DefaultFilterMaxLabels {
		t.Fatalf("expected default filter max labels %d, got %d", DefaultFilterMaxLabels, cfg.FilterMaxLabels)
	}
	if cfg.FilterMaxPubkeys != DefaultFilterMaxPubkeys {
		t.Fatalf("expected default filter max pubkeys %d, got %d", DefaultFilterMaxPubkeys, cfg.FilterMaxPubkeys)
	}
	if cfg.UpdateRateWindow != DefaultUpdateRateWindow {
		t.Fatalf("expected default update rate window %v, got %v", DefaultUpdateRateWindow, cfg.UpdateRateWindow)
	}
	if cfg.UpdateRateBurst != DefaultUpdateRateBurst {
		t.Fatalf("expected default update rate burst %d, got %d", DefaultUpdateRateBurst, cfg.UpdateRateBurst)
	}
	if cfg.AdminAddr != "" {
		t.Fatalf("expected admin addr to be empty by default, got %q", cfg.AdminAddr)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Fatalf("expected default log level %q, got %q", DefaultLogLevel, cfg.Logging.Level)
	}
	if cfg.Logging.Path != DefaultLogPath {
		t.Fatalf("expected default log path %q, got %q", DefaultLogPath, cfg.Logging.Path)
	}
	if cfg.Logging.MaxSizeMB != DefaultLogMaxSizeMB {
		t.Fatalf("expected default log max size %d, got %d", DefaultLogMaxSizeMB, cfg.Logging.MaxSizeMB)
	}
	if cfg.Logging.MaxBackups != DefaultLogMaxBackups {
		t.Fatalf("expected default log max backups %d, got %d", DefaultLogMaxBackups, cfg.Logging.MaxBackups)
	}
	if cfg.Logging.MaxAgeDays != DefaultLogMaxAgeDays {
		t.Fatalf("expected default log max age %d, got %d", DefaultLogMaxAgeDays, cfg.Logging.MaxAgeDays)
	}
	if cfg.Logging.Compress != DefaultLogCompress {
		t.Fatalf("expected default log compress %t, got %t", DefaultLogCompress, cfg.Logging.Compress)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearGeyserEnv(t)

	t.Setenv("GEYSER_ADDR", "127.0.0.1:9000")
	t.Setenv("GEYSER_CHANNEL_CAPACITY", "5000")
	t.Setenv("GEYSER_FILTER_MAX_LABELS", "8")
	t.Setenv("GEYSER_FILTER_MAX_PUBKEYS", "16")
	t.Setenv("GEYSER_UPDATE_RATE_WINDOW", "2s")
	t.Setenv("GEYSER_UPDATE_RATE_BURST", "5")
	t.Setenv("GEYSER_ADMIN_ADDR", "127.0.0.1:8090")
	t.Setenv("GEYSER_LOG_LEVEL", "debug")
	t.Setenv("GEYSER_LOG_PATH", "/var/log/geyser-fanout.log")
	t.Setenv("GEYSER_LOG_MAX_SIZE_MB", "512")
	t.Setenv("GEYSER_LOG_MAX_BACKUPS", "4")
	t.Setenv("GEYSER_LOG_MAX_AGE_DAYS", "2")
	t.Setenv("GEYSER_LOG_COMPRESS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Addr != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if cfg.ChannelCapacity != 5000 {
		t.Fatalf("expected channel capacity 5000, got %d", cfg.ChannelCapacity)
	}
	if cfg.FilterMaxLabels != 8 {
		t.Fatalf("expected filter max labels 8, got %d", cfg.FilterMaxLabels)
	}
	if cfg.FilterMaxPubkeys != 16 {
		t.Fatalf("expected filter max pubkeys 16, got %d", cfg.FilterMaxPubkeys)
	}
	if cfg.UpdateRateWindow != 2*time.Second {
		t.Fatalf("expected update rate window 2s, got %v", cfg.UpdateRateWindow)
	}
	if cfg.UpdateRateBurst != 5 {
		t.Fatalf("expected update rate burst 5, got %d", cfg.UpdateRateBurst)
	}
	if cfg.AdminAddr != "127.0.0.1:8090" {
		t.Fatalf("unexpected admin addr %q", cfg.AdminAddr)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected overridden log level debug, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Path != "/var/log/geyser-fanout.log" {
		t.Fatalf("unexpected log path %q", cfg.Logging.Path)
	}
	if cfg.Logging.MaxSizeMB != 512 {
		t.Fatalf("expected log max size 512, got %d", cfg.Logging.MaxSizeMB)
	}
	if cfg.Logging.MaxBackups != 4 {
		t.Fatalf("expected log max backups 4, got %d", cfg.Logging.MaxBackups)
	}
	if cfg.Logging.MaxAgeDays != 2 {
		t.Fatalf("expected log max age 2, got %d", cfg.Logging.MaxAgeDays)
	}
	if cfg.Logging.Compress {
		t.Fatalf("expected log compression disabled")
	}
}

func TestLoadReturnsValidationErrors(t *testing.T) {
	clearGeyserEnv(t)

	t.Setenv("GEYSER_CHANNEL_CAPACITY", "-5")
	t.Setenv("GEYSER_FILTER_MAX_LABELS", "abc")
	t.Setenv("GEYSER_FILTER_MAX_PUBKEYS", "0")
	t.Setenv("GEYSER_UPDATE_RATE_WINDOW", "not-a-duration")
	t.Setenv("GEYSER_UPDATE_RATE_BURST", "-1")
	t.Setenv("GEYSER_LOG_MAX_SIZE_MB", "-1")
	t.Setenv("GEYSER_LOG_MAX_BACKUPS", "-2")
	t.Setenv("GEYSER_LOG_MAX_AGE_DAYS", "-3")
	t.Setenv("GEYSER_LOG_COMPRESS", "notabool")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error from invalid configuration, got nil")
	}

	for _, want := range []string{
		"GEYSER_CHANNEL_CAPACITY",
		"GEYSER_FILTER_MAX_LABELS",
		"GEYSER_FILTER_MAX_PUBKEYS",
		"GEYSER_UPDATE_RATE_WINDOW",
		"GEYSER_UPDATE_RATE_BURST",
		"GEYSER_LOG_MAX_SIZE_MB",
		"GEYSER_LOG_MAX_BACKUPS",
		"GEYSER_LOG_MAX_AGE_DAYS",
		"GEYSER_LOG_COMPRESS",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error to mention %s, got %q", want, err.Error())
		}
	}
}

func TestLoadAllowsZeroLogBackupsAndAge(t *testing.T) {
	clearGeyserEnv(t)

	t.Setenv("GEYSER_LOG_MAX_BACKUPS", "0")
	t.Setenv("GEYSER_LOG_MAX_AGE_DAYS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Logging.MaxBackups != 0 {
		t.Fatalf("expected zero to disable backup retention limit, got %d", cfg.Logging.MaxBackups)
	}
	if cfg.Logging.MaxAgeDays != 0 {
		t.Fatalf("expected zero to disable age retention limit, got %d", cfg.Logging.MaxAgeDays)
	}
}

func TestLoadTrimsAdminAddr(t *testing.T) {
	clearGeyserEnv(t)

	t.Setenv("GEYSER_ADMIN_ADDR", "  127.0.0.1:9100  ")
	t.Setenv("GEYSER_ADMIN_AUTH_SECRET", "  s3cret  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.AdminAddr != "127.0.0.1:9100" {
		t.Fatalf("expected trimmed admin addr, got %q", cfg.AdminAddr)
	}
	if cfg.AdminAuthSecret != "s3cret" {
		t.Fatalf("expected trimmed admin auth secret, got %q", cfg.AdminAuthSecret)
	}
}
