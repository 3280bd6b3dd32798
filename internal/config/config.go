// Package config loads environment configuration for FlashGestures.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultListenAddr   = "127.0.0.1:8790"
	defaultDataDir      = "./data"
	defaultAutoInstall  = true
	defaultTray         = false
	defaultNoticeBuffer = 64
	defaultLoginPerMin  = 10
	defaultClassCache   = 512
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr   string
	ControlToken string
	DataDir      string
	PrefsPath    string
	StaticDir    string
	AutoInstall  bool
	Tray         bool
	NoticeBuffer int
	LoginPerMin  int
	ClassCache   int
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:   defaultListenAddr,
		DataDir:      defaultDataDir,
		PrefsPath:    filepath.Join(defaultDataDir, "prefs.yaml"),
		AutoInstall:  defaultAutoInstall,
		Tray:         defaultTray,
		NoticeBuffer: defaultNoticeBuffer,
		LoginPerMin:  defaultLoginPerMin,
		ClassCache:   defaultClassCache,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.PrefsPath = envString("PREFS_PATH", filepath.Join(cfg.DataDir, "prefs.yaml"))
	cfg.StaticDir = envString("STATIC_DIR", "")
	cfg.ControlToken = strings.TrimSpace(os.Getenv("CONTROL_TOKEN"))
	cfg.AutoInstall = envBool("AUTO_INSTALL", cfg.AutoInstall)
	cfg.Tray = envBool("TRAY", cfg.Tray)

	noticeBuffer, err := envInt("NOTICE_BUFFER", cfg.NoticeBuffer)
	if err != nil {
		return Config{}, err
	}
	if noticeBuffer <= 0 {
		return Config{}, fmt.Errorf("NOTICE_BUFFER must be > 0")
	}
	cfg.NoticeBuffer = noticeBuffer

	loginPerMin, err := envInt("LOGIN_PER_MIN", cfg.LoginPerMin)
	if err != nil {
		return Config{}, err
	}
	if loginPerMin <= 0 {
		return Config{}, fmt.Errorf("LOGIN_PER_MIN must be > 0")
	}
	cfg.LoginPerMin = loginPerMin

	classCache, err := envInt("CLASS_CACHE", cfg.ClassCache)
	if err != nil {
		return Config{}, err
	}
	if classCache < 0 {
		return Config{}, fmt.Errorf("CLASS_CACHE must be >= 0")
	}
	cfg.ClassCache = classCache

	if cfg.ControlToken == "" {
		return Config{}, errors.New("CONTROL_TOKEN is required")
	}

	return cfg, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file without overriding
// variables already set in the environment.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
