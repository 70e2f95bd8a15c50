// Package config provides configuration loading for the docforge daemon.
// Settings come from an optional YAML file with DOCFORGE_* environment
// overrides; every field has a working default.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/intelliforge/docforge/internal/assets"
	"github.com/intelliforge/docforge/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// init loads environment variables from .env files when they exist.
// godotenv.Load does not override already-set variables, preserving
// OS env > .env precedence. Production deployments rely on real
// environment variables only.
func init() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load .env file: %v\n", err)
		}
	}
	if _, err := os.Stat(".env.local"); err == nil {
		if err := godotenv.Load(".env.local"); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load .env.local file: %v\n", err)
		}
	}
}

// Config holds all daemon configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Pool        PoolConfig        `yaml:"pool"`
	Certificate CertificateConfig `yaml:"certificate"`
}

// ServerConfig defines the HTTP listener.
type ServerConfig struct {
	Address       string `yaml:"address"`       // e.g. ":8000"
	AllowedOrigin string `yaml:"allowedOrigin"` // CORS origin, "*" = any (development default)
}

// PoolConfig defines browser pool sizing and render limits.
type PoolConfig struct {
	Workers              int `yaml:"workers"`              // 0 = derive from GOMAXPROCS
	RenderTimeoutSeconds int `yaml:"renderTimeoutSeconds"` // per-render budget
}

// CertificateConfig selects the certificate skeleton.
type CertificateConfig struct {
	Theme string `yaml:"theme"` // embedded theme name
}

// Defaults used when neither file nor environment provides a value.
const (
	defaultAddress          = ":8000"
	defaultAllowedOrigin    = "*"
	defaultRenderTimeout    = 30
	maxRenderTimeoutSeconds = 600
)

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:       defaultAddress,
			AllowedOrigin: defaultAllowedOrigin,
		},
		Pool: PoolConfig{
			Workers:              0,
			RenderTimeoutSeconds: defaultRenderTimeout,
		},
		Certificate: CertificateConfig{
			Theme: assets.DefaultTheme,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then DOCFORGE_* environment overrides. The result is
// validated before being returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- config path is operator-provided
		if err != nil {
			if os.IsNotExist(err) {
				return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyEnv overrides config fields from DOCFORGE_* environment variables.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("DOCFORGE_ADDR"); ok {
		cfg.Server.Address = v
	}
	if v, ok := os.LookupEnv("DOCFORGE_ALLOWED_ORIGIN"); ok {
		cfg.Server.AllowedOrigin = v
	}
	if v, ok := os.LookupEnv("DOCFORGE_CERT_THEME"); ok {
		cfg.Certificate.Theme = v
	}
	if v, ok := os.LookupEnv("DOCFORGE_WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DOCFORGE_WORKERS: %w", err)
		}
		cfg.Pool.Workers = n
	}
	if v, ok := os.LookupEnv("DOCFORGE_RENDER_TIMEOUT_SECONDS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DOCFORGE_RENDER_TIMEOUT_SECONDS: %w", err)
		}
		cfg.Pool.RenderTimeoutSeconds = n
	}
	return nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server.address: cannot be empty")
	}
	if c.Server.AllowedOrigin == "" {
		return fmt.Errorf("server.allowedOrigin: cannot be empty (use \"*\" for any)")
	}
	if c.Pool.Workers < 0 {
		return fmt.Errorf("pool.workers: must be >= 0, got %d", c.Pool.Workers)
	}
	if c.Pool.RenderTimeoutSeconds <= 0 || c.Pool.RenderTimeoutSeconds > maxRenderTimeoutSeconds {
		return fmt.Errorf("pool.renderTimeoutSeconds: must be in (0, %d], got %d",
			maxRenderTimeoutSeconds, c.Pool.RenderTimeoutSeconds)
	}
	if !assets.KnownTheme(c.Certificate.Theme) {
		return fmt.Errorf("certificate.theme: unknown theme %q (available: %v)",
			c.Certificate.Theme, assets.CertificateThemes())
	}
	return nil
}

// RenderTimeout returns the per-render budget as a duration.
func (c *Config) RenderTimeout() time.Duration {
	return time.Duration(c.Pool.RenderTimeoutSeconds) * time.Second
}
