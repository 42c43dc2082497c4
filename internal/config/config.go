// Package config reads the server settings from an optional TOML file and
// the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Addr    string `toml:"addr"`
	DataDir string `toml:"data_dir"`
	// FontPath is an optional TrueType font used instead of the bundled one.
	// The bundled Go Bold has no CJK glyphs; Chinese, Japanese or Korean
	// help lists need a font such as Noto Sans CJK here.
	FontPath  string `toml:"font_path"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	FetchTimeoutSeconds int   `toml:"fetch_timeout_seconds"`
	MaxFetchBytes       int64 `toml:"max_fetch_bytes"`
	MaxBodyBytes        int64 `toml:"max_body_bytes"`
}

func Default() Config {
	return Config{
		Addr:                ":8080",
		DataDir:             "data",
		LogLevel:            "info",
		LogFormat:           "text",
		FetchTimeoutSeconds: 10,
		MaxFetchBytes:       8 << 20,
		MaxBodyBytes:        32 << 20,
	}
}

// Load returns the defaults overlaid with the file at path (if path is not
// empty) and then with PORT and HELPCARD_DATA from the environment.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(raw, &c); err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	c.applyEnv(os.Getenv)
	if err := c.validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if port := getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	if dir := getenv("HELPCARD_DATA"); dir != "" {
		c.DataDir = dir
	}
}

func (c Config) validate() error {
	if c.FetchTimeoutSeconds <= 0 {
		return fmt.Errorf("fetch_timeout_seconds must be positive, got %d", c.FetchTimeoutSeconds)
	}
	if c.MaxFetchBytes <= 0 || c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_fetch_bytes and max_body_bytes must be positive")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Logger builds the process logger writing to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
