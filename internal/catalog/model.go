// Package catalog loads help lists defined in TOML files from a data
// directory.
package catalog

import (
	"sort"

	"github.com/youruser/helpcard/internal/help"
)

// File is the on-disk shape of one help list. Asset paths are relative to
// the data directory.
type File struct {
	Title  string      `toml:"title"`
	Theme  ThemeFile   `toml:"theme"`
	Groups []GroupFile `toml:"group"`
}

type ThemeFile struct {
	BackgroundImage string `toml:"background_image"`
	BackgroundColor string `toml:"background_color"`
	TitleColor      string `toml:"title_color"`
}

type GroupFile struct {
	Name  string     `toml:"name"`
	Items []ItemFile `toml:"item"`
}

type ItemFile struct {
	Name string `toml:"name"`
	Desc string `toml:"desc"`
	Icon string `toml:"icon"`
}

// Catalog is a read-only set of help lists keyed by file name without
// extension. It holds raw asset bytes; nothing is decoded until render.
type Catalog struct {
	lists map[string]*help.HelpList
}

type Entry struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Items int    `json:"items"`
}

func (c *Catalog) Get(name string) (*help.HelpList, bool) {
	if c == nil {
		return nil, false
	}
	l, ok := c.lists[name]
	return l, ok
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.lists)
}

// Entries lists the catalog sorted by name.
func (c *Catalog) Entries() []Entry {
	out := []Entry{}
	if c == nil {
		return out
	}
	for name, l := range c.lists {
		n := 0
		for _, g := range l.Groups {
			n += len(g.Items)
		}
		out = append(out, Entry{Name: name, Title: l.Title, Items: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
