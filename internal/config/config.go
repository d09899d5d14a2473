// Package config loads the tracker configuration. Settings come from an
// optional YAML file; a handful of SLIMDOWN_* environment variables
// override it. Fields map 1:1 to config.example.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultAddr      = ":8080"
	DefaultWebDir    = "web"
	DefaultStorePath = "slimdown.json"
	DefaultUsersPath = "slimdown-users.json"
	DefaultCalcMode  = "auto"
	DefaultCalcPath  = "slimcalc"
	DefaultLogLevel  = "info"
)

// Config is the top-level configuration.
type Config struct {
	Store      StoreConfig      `yaml:"store"`
	Server     ServerConfig     `yaml:"server"`
	Calculator CalculatorConfig `yaml:"calculator"`
	Log        LogConfig        `yaml:"log"`
}

// StoreConfig selects and parameterizes the roster storage backend.
type StoreConfig struct {
	// Driver is one of: file | postgres | memory.
	Driver string `yaml:"driver"`

	// Path is the roster document location for the file driver.
	Path string `yaml:"path"`

	// UsersPath is the organizer account store for the file driver.
	UsersPath string `yaml:"users_path"`

	// DSNEnv is the name of the environment variable that holds the
	// postgres connection string.
	DSNEnv string `yaml:"dsn_env"`
}

// DSN returns the postgres connection string resolved from the environment.
func (s StoreConfig) DSN() string {
	if s.DSNEnv == "" {
		return ""
	}
	return os.Getenv(s.DSNEnv)
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address (host:port).
	Addr string `yaml:"addr"`

	// WebDir is the directory served as the web UI.
	WebDir string `yaml:"web_dir"`

	// Auth configures organizer authentication.
	Auth AuthConfig `yaml:"auth"`
}

// AuthConfig configures API authentication.
type AuthConfig struct {
	// Mode is one of: none | password. The default is none.
	Mode string `yaml:"mode"`

	// SSO optionally layers an OIDC login flow on top of password mode.
	SSO SSOConfig `yaml:"sso"`
}

// Enabled reports whether session checks apply to the API.
func (a AuthConfig) Enabled() bool {
	return a.Mode == "password"
}

// SSOConfig holds the OIDC provider settings.
type SSOConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Issuer   string `yaml:"issuer"`
	ClientID string `yaml:"client_id"`

	// ClientSecretEnv is the name of the environment variable that holds
	// the client secret.
	ClientSecretEnv string `yaml:"client_secret_env"`

	RedirectURL string `yaml:"redirect_url"`
}

// ClientSecret returns the OIDC client secret resolved from the environment.
func (s SSOConfig) ClientSecret() string {
	if s.ClientSecretEnv == "" {
		return ""
	}
	return os.Getenv(s.ClientSecretEnv)
}

// CalculatorConfig selects how derived values are computed.
type CalculatorConfig struct {
	// Mode is one of: auto | exec | inprocess. auto uses the external
	// binary when it is on PATH and falls back to in-process otherwise.
	Mode string `yaml:"mode"`

	// Path is the calculator binary invoked by the exec modes.
	Path string `yaml:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`
}

// Load reads the YAML config file at path. A missing file is not an error;
// it yields the defaults. Environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Store: StoreConfig{
			Driver:    "file",
			Path:      DefaultStorePath,
			UsersPath: DefaultUsersPath,
			DSNEnv:    "DATABASE_URL",
		},
		Server: ServerConfig{
			Addr:   DefaultAddr,
			WebDir: DefaultWebDir,
			Auth:   AuthConfig{Mode: "none"},
		},
		Calculator: CalculatorConfig{
			Mode: DefaultCalcMode,
			Path: DefaultCalcPath,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// applyEnv lets the usual deployment knobs override the file.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SLIMDOWN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SLIMDOWN_WEB_DIR"); v != "" {
		cfg.Server.WebDir = v
	}
	if v := os.Getenv("SLIMDOWN_STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv("SLIMDOWN_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("SLIMDOWN_CALC_MODE"); v != "" {
		cfg.Calculator.Mode = v
	}
	if v := os.Getenv("SLIMDOWN_CALC_PATH"); v != "" {
		cfg.Calculator.Path = v
	}
	if v := os.Getenv("SLIMDOWN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	switch cfg.Store.Driver {
	case "file", "postgres", "memory":
	default:
		return fmt.Errorf("store.driver: unknown driver %q", cfg.Store.Driver)
	}
	if cfg.Store.Driver == "file" && cfg.Store.Path == "" {
		return fmt.Errorf("store.path is required for the file driver")
	}
	if cfg.Store.Driver == "postgres" && cfg.Store.DSNEnv == "" {
		return fmt.Errorf("store.dsn_env is required for the postgres driver")
	}

	switch cfg.Server.Auth.Mode {
	case "none", "password", "":
	default:
		return fmt.Errorf("server.auth.mode: unknown mode %q", cfg.Server.Auth.Mode)
	}
	if cfg.Server.Auth.SSO.Enabled {
		if !cfg.Server.Auth.Enabled() {
			return fmt.Errorf("server.auth.sso requires auth mode %q", "password")
		}
		if cfg.Server.Auth.SSO.Issuer == "" || cfg.Server.Auth.SSO.ClientID == "" {
			return fmt.Errorf("server.auth.sso: issuer and client_id are required")
		}
	}

	switch cfg.Calculator.Mode {
	case "auto", "exec", "inprocess":
	default:
		return fmt.Errorf("calculator.mode: unknown mode %q", cfg.Calculator.Mode)
	}
	if cfg.Calculator.Mode == "exec" && cfg.Calculator.Path == "" {
		return fmt.Errorf("calculator.path is required for exec mode")
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "warning", "error", "":
	default:
		return fmt.Errorf("log.level: unknown level %q", cfg.Log.Level)
	}
	return nil
}
