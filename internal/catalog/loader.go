package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/youruser/helpcard/internal/help"
	"github.com/youruser/helpcard/internal/util"
)

// LoadDir loads every *.toml file in dataDir. Referenced icons and
// background images are read from paths relative to dataDir.
func LoadDir(dataDir string) (*Catalog, error) {
	files, err := filepath.Glob(filepath.Join(dataDir, "*.toml"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no help lists found in %s", dataDir)
	}

	c := &Catalog{lists: map[string]*help.HelpList{}}
	for _, f := range files {
		l, err := loadFile(dataDir, f)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
		name := strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
		c.lists[name] = l
	}
	return c, nil
}

func loadFile(dataDir, path string) (*help.HelpList, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return f.HelpList(dataDir)
}

// HelpList converts f, reading its assets from dataDir.
func (f *File) HelpList(dataDir string) (*help.HelpList, error) {
	var bg []byte
	if f.Theme.BackgroundImage != "" {
		b, err := util.ReadFileIn(dataDir, f.Theme.BackgroundImage)
		if err != nil {
			return nil, fmt.Errorf("background image: %w", err)
		}
		bg = b
	}

	l := &help.HelpList{
		Title: f.Title,
		Theme: help.NewTheme(bg, f.Theme.BackgroundColor, f.Theme.TitleColor),
	}
	for _, g := range f.Groups {
		hg := help.HelpGroup{Name: g.Name}
		for _, it := range g.Items {
			item := help.HelpItem{Name: it.Name, Desc: it.Desc}
			if it.Icon != "" {
				b, err := util.ReadFileIn(dataDir, it.Icon)
				if err != nil {
					return nil, fmt.Errorf("icon of %q: %w", it.Name, err)
				}
				item.Icon = b
			}
			hg.Items = append(hg.Items, item)
		}
		l.Groups = append(l.Groups, hg)
	}
	return l, nil
}
