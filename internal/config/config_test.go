package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvServer, EnvAddr, EnvScratch, EnvCheckM, EnvDB, EnvLogLevel, EnvLogFormat, EnvAuthToken, EnvCallbackURL, "MSUITE_MAX_RETRIES", "MSUITE_REQUIRE_AUTH", "MSUITE_TEST_SCRATCH"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":5000" {
		t.Errorf("Addr = %q, want :5000", cfg.Server.Addr)
	}
	if cfg.Client.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Client.Timeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoad_MissingFilesIgnored(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "nope.yaml"), filepath.Join(dir, ".env")); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}

func TestLoad_FileEnvFileAndEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "msuite.yaml")
	yamlText := `server:
  addr: ":9000"
  scratch: ${MSUITE_TEST_SCRATCH}
client:
  server: http://example.org/rpc
  max_retries: 1
log:
  level: debug
`
	if err := os.WriteFile(cfgPath, []byte(yamlText), 0o644); err != nil {
		t.Fatal(err)
	}
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("MSUITE_TEST_SCRATCH=/work\nKB_AUTH_TOKEN=from-dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Load(cfgPath, envPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("MSUITE_TEST_SCRATCH")
		os.Unsetenv(EnvAuthToken)
	})

	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", cfg.Server.Addr)
	}
	if cfg.Server.ScratchDir != "/work" {
		t.Errorf("ScratchDir = %q, want /work", cfg.Server.ScratchDir)
	}
	if cfg.Server.CheckM != "checkm" {
		t.Errorf("CheckM = %q, default should survive", cfg.Server.CheckM)
	}
	if cfg.Client.Server != "http://example.org/rpc" || cfg.Client.MaxRetries != 1 {
		t.Errorf("Client = %+v", cfg.Client)
	}
	if cfg.Client.Token != "from-dotenv" {
		t.Errorf("Token = %q, want from-dotenv", cfg.Client.Token)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, ""); err == nil {
		t.Error("Load() expected parse error")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDB, "none")
	t.Setenv(EnvCheckM, " /opt/checkm ")
	t.Setenv("MSUITE_REQUIRE_AUTH", "true")
	t.Setenv("MSUITE_MAX_RETRIES", "-1")

	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.DBPath != "none" {
		t.Errorf("DBPath = %q, want none", cfg.Server.DBPath)
	}
	if cfg.Server.CheckM != "/opt/checkm" {
		t.Errorf("CheckM = %q, want trimmed value", cfg.Server.CheckM)
	}
	if !cfg.Server.RequireAuth {
		t.Error("RequireAuth = false, want true")
	}
	if cfg.Client.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, negative values are ignored", cfg.Client.MaxRetries)
	}
}
