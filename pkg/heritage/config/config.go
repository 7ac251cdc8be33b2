// Package config loads Heritage Pulse settings from a TOML file, a .env
// file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/constants"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/locale"
	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Language    string   `toml:"language"`
	LogLevel    string   `toml:"log_level"`
	LogPath     string   `toml:"log_path"`
	History     bool     `toml:"history"`
	SplashDelay Duration `toml:"splash_delay"`
	Theme       string   `toml:"theme"`
}

// Duration decodes TOML strings such as "1.5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Language:    "en",
		LogLevel:    "error",
		SplashDelay: Duration{constants.DefaultSplashDelay},
		Theme:       "light",
	}
}

// Load reads path (a missing file is not an error), then .env, then the
// environment. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: %s: %w", path, err)
		case len(md.Undecoded()) > 0:
			return nil, fmt.Errorf("config: %s: unknown key %s", path, md.Undecoded()[0])
		}
	}

	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if constants.IsDevMode() {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	c.Language = getEnv(constants.LanguageEnvVar, c.Language)
	c.LogLevel = getEnv(constants.LogLevelEnvVar, c.LogLevel)
	c.LogPath = getEnv(constants.LogPathEnvVar, c.LogPath)
	c.Theme = getEnv(constants.ThemeEnvVar, c.Theme)

	if v := os.Getenv(constants.HistoryEnvVar); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", constants.HistoryEnvVar, err)
		}
		c.History = b
	}
	return nil
}

// Validate rejects values the application cannot run with. Unsupported
// languages are not an error; they render in the base language.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	switch c.Theme {
	case "light", "dark":
	default:
		return fmt.Errorf("config: unknown theme %q", c.Theme)
	}
	if c.SplashDelay.Duration < 0 {
		return fmt.Errorf("config: negative splash delay")
	}
	return nil
}

// LanguageCode returns the configured language resolved to a supported code.
func (c *Config) LanguageCode() string {
	return locale.Code(locale.Resolve(c.Language))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
