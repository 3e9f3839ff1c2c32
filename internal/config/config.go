// Package config loads msuite server and CLI settings from an optional YAML
// file, an optional .env file and the environment, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvServer      = "MSUITE_SERVER"
	EnvAddr        = "MSUITE_ADDR"
	EnvScratch     = "MSUITE_SCRATCH"
	EnvCheckM      = "MSUITE_CHECKM"
	EnvDB          = "MSUITE_DB"
	EnvLogLevel    = "MSUITE_LOG_LEVEL"
	EnvLogFormat   = "MSUITE_LOG_FORMAT"
	EnvAuthToken   = "KB_AUTH_TOKEN"
	EnvCallbackURL = "SDK_CALLBACK_URL"
)

// ServerConfig holds configuration for the msuite server.
type ServerConfig struct {
	Addr        string `yaml:"addr"`         // Listen address (default ":5000")
	ScratchDir  string `yaml:"scratch"`      // Root for planned input and output folders
	CheckM      string `yaml:"checkm"`       // checkm binary name or path
	DBPath      string `yaml:"db"`           // Run history database (default ~/.msuite/msuite.db, "none" disables)
	CallbackURL string `yaml:"callback_url"` // SDK callback URL, reported only
	RequireAuth bool   `yaml:"require_auth"` // Reject run methods without an Authorization header
	GitURL      string `yaml:"git_url"`
	GitCommit   string `yaml:"git_commit_hash"`
}

// ClientConfig holds configuration for the msuite CLI.
type ClientConfig struct {
	Server     string        `yaml:"server"` // JSON-RPC endpoint
	Token      string        `yaml:"token"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Config is the full configuration file.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Client ClientConfig `yaml:"client"`
	Log    LogConfig    `yaml:"log"`
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:       ":5000",
		ScratchDir: os.TempDir(),
		CheckM:     "checkm",
		GitURL:     "https://github.com/kbaseapps/kb_Msuite",
	}
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Server:     "http://localhost:5000/rpc",
		Timeout:    30 * time.Second,
		MaxRetries: 3,
	}
}

// Default returns a Config with every section at its defaults.
func Default() *Config {
	return &Config{
		Server: DefaultServerConfig(),
		Client: DefaultClientConfig(),
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty or the file does not exist), the .env file at envPath
// (same rule) and finally the process environment. ${VAR} references in
// the YAML file are expanded after the .env file is loaded.
func Load(path, envPath string) (*Config, error) {
	cfg := Default()

	if err := loadDotEnv(envPath); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
// Variables already set in the environment win.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Client.Server, EnvServer)
	setString(&cfg.Client.Token, EnvAuthToken)
	setString(&cfg.Server.Addr, EnvAddr)
	setString(&cfg.Server.ScratchDir, EnvScratch)
	setString(&cfg.Server.CheckM, EnvCheckM)
	setString(&cfg.Server.DBPath, EnvDB)
	setString(&cfg.Server.CallbackURL, EnvCallbackURL)
	setString(&cfg.Log.Level, EnvLogLevel)
	setString(&cfg.Log.Format, EnvLogFormat)

	if v := strings.TrimSpace(os.Getenv("MSUITE_REQUIRE_AUTH")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Server.RequireAuth = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("MSUITE_MAX_RETRIES")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Client.MaxRetries = n
		}
	}
}

func setString(dst *string, env string) {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		*dst = v
	}
}
