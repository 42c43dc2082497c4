package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youruser/helpcard/internal/argb"
	"github.com/youruser/helpcard/internal/help"
)

const botTOML = `
title = "Bot"

[theme]
background_color = "#102030"
title_color = "#fff"

[[group]]
name = "Basic"

  [[group.item]]
  name = "ping"
  desc = "check latency"
  icon = "icons/ping.svg"

  [[group.item]]
  name = "echo"
  desc = "repeat text"

[[group]]
name = "Admin"

  [[group.item]]
  name = "ban"
  desc = "remove a user"
`

const pingSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10"/></svg>`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func testDir(t *testing.T) string {
	dir := t.TempDir()
	writeFile(t, dir, "bot.toml", botTOML)
	writeFile(t, dir, "icons/ping.svg", pingSVG)
	writeFile(t, dir, "mini.toml", "title = \"Mini\"\n[[group]]\nname = \"Only\"\n")
	return dir
}

func TestLoadDir(t *testing.T) {
	c, err := LoadDir(testDir(t))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	l, ok := c.Get("bot")
	require.True(t, ok)
	assert.Equal(t, "Bot", l.Title)
	assert.Equal(t, help.ColorBackground{Color: argb.New(255, 16, 32, 48)}, l.Theme.Background)
	require.NotNil(t, l.Theme.TitleColor)
	assert.Equal(t, argb.White, *l.Theme.TitleColor)

	require.Len(t, l.Groups, 2)
	assert.Equal(t, "Basic", l.Groups[0].Name)
	require.Len(t, l.Groups[0].Items, 2)
	assert.Equal(t, []byte(pingSVG), l.Groups[0].Items[0].Icon)
	assert.Nil(t, l.Groups[0].Items[1].Icon)

	assert.Equal(t, []Entry{
		{Name: "bot", Title: "Bot", Items: 3},
		{Name: "mini", Title: "Mini", Items: 0},
	}, c.Entries())

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestLoadDirErrors(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	assert.Error(t, err)

	dir := t.TempDir()
	writeFile(t, dir, "bad.toml", "title = ")
	_, err = LoadDir(dir)
	assert.Error(t, err)

	dir = t.TempDir()
	writeFile(t, dir, "missing.toml", "[[group]]\nname = \"g\"\n[[group.item]]\nname = \"x\"\nicon = \"nope.png\"\n")
	_, err = LoadDir(dir)
	assert.Error(t, err)

	dir = t.TempDir()
	writeFile(t, dir, "escape.toml", "[theme]\nbackground_image = \"../secret.png\"\n")
	_, err = LoadDir(dir)
	assert.Error(t, err)
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Entries())
	_, ok := c.Get("bot")
	assert.False(t, ok)
}

func TestCatalogRenders(t *testing.T) {
	c, err := LoadDir(testDir(t))
	require.NoError(t, err)
	l, _ := c.Get("bot")
	_, err = help.Render(l)
	assert.NoError(t, err)
}
