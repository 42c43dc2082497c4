package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "helpcard.toml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HELPCARD_DATA", "")
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, 10*time.Second, c.FetchTimeout())
}

func TestLoadFileAndEnv(t *testing.T) {
	p := writeConfig(t, `
addr = ":9000"
data_dir = "/srv/help"
font_path = "/fonts/cjk.ttf"
log_level = "debug"
fetch_timeout_seconds = 3
`)
	t.Setenv("PORT", "")
	t.Setenv("HELPCARD_DATA", "")
	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.Addr)
	assert.Equal(t, "/srv/help", c.DataDir)
	assert.Equal(t, "/fonts/cjk.ttf", c.FontPath)
	assert.Equal(t, 3*time.Second, c.FetchTimeout())
	// untouched keys keep their defaults
	assert.Equal(t, Default().MaxBodyBytes, c.MaxBodyBytes)

	t.Setenv("PORT", "7070")
	t.Setenv("HELPCARD_DATA", "/tmp/lists")
	c, err = Load(p)
	require.NoError(t, err)
	assert.Equal(t, ":7070", c.Addr)
	assert.Equal(t, "/tmp/lists", c.DataDir)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "addr = "))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `log_level = "loud"`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `fetch_timeout_seconds = 0`))
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	c := Default()
	c.LogFormat = "json"
	c.LogLevel = "warn"
	log := c.Logger(&buf)

	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	log.Warn("careful", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"careful"`)
}
