package api

import (
	"context"
	"fmt"

	"github.com/youruser/helpcard/internal/help"
)

// helpRequest is the JSON body of POST /api/help/render. Byte fields are
// base64; URLs are fetched only when the matching byte field is absent.
type helpRequest struct {
	Title string         `json:"title"`
	Theme *themeRequest  `json:"theme"`
	List  []groupRequest `json:"list"`
}

type themeRequest struct {
	BackgroundImage []byte `json:"background_image"`
	BackgroundURL   string `json:"background_url"`
	BackgroundColor string `json:"background_color"`
	TitleColor      string `json:"title_color"`
}

type groupRequest struct {
	Name string        `json:"name"`
	List []itemRequest `json:"list"`
}

type itemRequest struct {
	Name    string `json:"name"`
	Desc    string `json:"desc"`
	Icon    []byte `json:"icon"`
	IconURL string `json:"icon_url"`
}

type fetchFunc func(ctx context.Context, url string) ([]byte, error)

func (r *helpRequest) helpList(ctx context.Context, fetch fetchFunc) (*help.HelpList, error) {
	l := &help.HelpList{Title: r.Title}
	if t := r.Theme; t != nil {
		bg := t.BackgroundImage
		if bg == nil && t.BackgroundURL != "" {
			b, err := fetch(ctx, t.BackgroundURL)
			if err != nil {
				return nil, fmt.Errorf("fetch background: %w", err)
			}
			bg = b
		}
		l.Theme = help.NewTheme(bg, t.BackgroundColor, t.TitleColor)
	}

	for _, g := range r.List {
		hg := help.HelpGroup{Name: g.Name}
		for _, it := range g.List {
			icon := it.Icon
			if len(icon) == 0 && it.IconURL != "" {
				b, err := fetch(ctx, it.IconURL)
				if err != nil {
					return nil, fmt.Errorf("fetch icon of %q: %w", it.Name, err)
				}
				icon = b
			}
			hg.Items = append(hg.Items, help.HelpItem{Name: it.Name, Desc: it.Desc, Icon: icon})
		}
		l.Groups = append(l.Groups, hg)
	}
	return l, nil
}
