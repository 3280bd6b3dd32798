package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every key Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LISTEN_ADDR", "DATA_DIR", "PREFS_PATH", "CONTROL_TOKEN", "AUTO_INSTALL",
		"TRAY", "NOTICE_BUFFER", "LOGIN_PER_MIN", "CLASS_CACHE", "STATIC_DIR",
	} {
		t.Setenv(k, "")
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// TestLoad_Defaults verifies defaults apply when only the token is set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTROL_TOKEN", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:8790" || cfg.DataDir != "./data" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.PrefsPath != filepath.Join("./data", "prefs.yaml") {
		t.Fatalf("unexpected prefs path %q", cfg.PrefsPath)
	}
	if cfg.StaticDir != "" {
		t.Fatalf("expected embedded assets by default, got %q", cfg.StaticDir)
	}
	if !cfg.AutoInstall || cfg.Tray || cfg.NoticeBuffer != 64 || cfg.LoginPerMin != 10 || cfg.ClassCache != 512 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

// TestLoad_MissingToken verifies the control token is required.
func TestLoad_MissingToken(t *testing.T) {
	clearEnv(t)
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without CONTROL_TOKEN")
	}
}

// TestLoad_Overrides verifies environment variables override defaults.
func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTROL_TOKEN", "secret")
	t.Setenv("DATA_DIR", "/var/fg")
	t.Setenv("AUTO_INSTALL", "off")
	t.Setenv("TRAY", "yes")
	t.Setenv("NOTICE_BUFFER", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PrefsPath != filepath.Join("/var/fg", "prefs.yaml") {
		t.Fatalf("expected prefs under data dir, got %q", cfg.PrefsPath)
	}
	if cfg.AutoInstall || !cfg.Tray || cfg.NoticeBuffer != 8 {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
}

// TestLoad_BadInteger verifies integer parse errors name the key.
func TestLoad_BadInteger(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTROL_TOKEN", "secret")
	t.Setenv("NOTICE_BUFFER", "many")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if got := err.Error(); len(got) < len("NOTICE_BUFFER") || got[:len("NOTICE_BUFFER")] != "NOTICE_BUFFER" {
		t.Fatalf("expected key in error, got %q", got)
	}
}

// TestLoad_NonPositiveBuffer verifies the notice buffer must be positive.
func TestLoad_NonPositiveBuffer(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTROL_TOKEN", "secret")
	t.Setenv("NOTICE_BUFFER", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero buffer")
	}
}

// TestLoad_EnvFile verifies .env values apply without overriding the environment.
func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	if err := os.MkdirAll("data", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	env := "# comment\nexport CONTROL_TOKEN=\"from-file\"\nLISTEN_ADDR=127.0.0.1:9999\n"
	if err := os.WriteFile(filepath.Join("data", ".env"), []byte(env), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("LISTEN_ADDR", "127.0.0.1:1234")
	os.Unsetenv("CONTROL_TOKEN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ControlToken != "from-file" {
		t.Fatalf("expected token from .env, got %q", cfg.ControlToken)
	}
	if cfg.ListenAddr != "127.0.0.1:1234" {
		t.Fatalf("expected environment to win, got %q", cfg.ListenAddr)
	}
}

// TestParseEnvLine verifies comments and malformed lines are skipped.
func TestParseEnvLine(t *testing.T) {
	if _, _, ok := parseEnvLine("# x=1"); ok {
		t.Fatalf("expected comment skipped")
	}
	if _, _, ok := parseEnvLine("novalue"); ok {
		t.Fatalf("expected line without = skipped")
	}
	k, v, ok := parseEnvLine(" KEY = 'v' ")
	if !ok || k != "KEY" || v != "v" {
		t.Fatalf("unexpected parse %q %q %v", k, v, ok)
	}
}
