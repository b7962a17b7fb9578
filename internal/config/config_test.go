package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json5"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg.HTTP.Addr != ":8090" {
		t.Errorf("unexpected addr %q", cfg.HTTP.Addr)
	}
	if cfg.Store.Backend != "file" || cfg.Memory.MaxTurns != 15 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Store.Path != filepath.Join(cfg.DataDir, "users.json") {
		t.Errorf("store path not derived from data dir: %q", cfg.Store.Path)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayclaw.json5")
	body := `{
		// comments are allowed
		logLevel: "debug",
		http: { addr: ":9999", token: "hush" },
		provider: { name: "dashscope", model: "qwen3-max" },
		memory: { maxTurns: 5 },
		reminders: { morningCron: "30 7 * * *" },
	}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.HTTP.Addr != ":9999" || cfg.HTTP.Token != "hush" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Provider.Name != "dashscope" || cfg.Provider.Model != "qwen3-max" {
		t.Errorf("provider section not applied: %+v", cfg.Provider)
	}
	if cfg.Memory.MaxTurns != 5 {
		t.Errorf("maxTurns = %d", cfg.Memory.MaxTurns)
	}
	if cfg.Reminders.MorningCron != "30 7 * * *" {
		t.Errorf("morning cron = %q", cfg.Reminders.MorningCron)
	}
	// Untouched sections keep defaults.
	if cfg.Store.Backend != "file" {
		t.Errorf("store backend = %q", cfg.Store.Backend)
	}
}

func TestLoad_BadSyntaxErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json5")
	if err := os.WriteFile(path, []byte("{ logLevel: "), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayclaw.json5")
	if err := os.WriteFile(path, []byte(`{ provider: { apiKey: "from-file" } }`), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DAYCLAW_API_KEY", "from-env")
	t.Setenv("DAYCLAW_HTTP_TOKEN", "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Provider.APIKey != "from-env" {
		t.Errorf("env must win over the file, got %q", cfg.Provider.APIKey)
	}
	if cfg.HTTP.Token != "env-token" {
		t.Errorf("http token = %q", cfg.HTTP.Token)
	}
}

func TestLoad_TelegramTokenEnvEnablesChannel(t *testing.T) {
	t.Setenv("DAYCLAW_TELEGRAM_TOKEN", "123:abc")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Telegram.Enabled || cfg.Telegram.Token != "123:abc" {
		t.Errorf("telegram env not applied: %+v", cfg.Telegram)
	}
}

func TestLoad_RedisURLEnvSwitchesBackend(t *testing.T) {
	t.Setenv("DAYCLAW_REDIS_URL", "redis://localhost:6379/0")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Store.Backend != "redis" {
		t.Errorf("backend = %q", cfg.Store.Backend)
	}
	if !strings.HasPrefix(cfg.Store.RedisURL, "redis://") {
		t.Errorf("redis url = %q", cfg.Store.RedisURL)
	}
}

func TestDefaultPath_UnderHome(t *testing.T) {
	p := DefaultPath()
	if !strings.HasSuffix(p, filepath.Join(".dayclaw", "dayclaw.json5")) {
		t.Errorf("unexpected default path %q", p)
	}
}
