// Package help lays out a help list as a grid of frosted cards and renders
// it to PNG.
package help

import "github.com/youruser/helpcard/internal/argb"

// HelpList is the document to render.
type HelpList struct {
	Title  string
	Theme  Theme
	Groups []HelpGroup
}

// HelpGroup is a titled section. Items fill the grid in order.
type HelpGroup struct {
	Name  string
	Items []HelpItem
}

// HelpItem is one card. Icon holds encoded SVG or raster bytes; empty means
// no icon.
type HelpItem struct {
	Name string
	Desc string
	Icon []byte
}

type Theme struct {
	// Background is nil for the default background colour.
	Background Background
	// TitleColor is nil for the default title colour.
	TitleColor *argb.Color
}

// Background is either an ImageBackground or a ColorBackground.
type Background interface {
	isBackground()
}

type ImageBackground struct {
	Data []byte
}

type ColorBackground struct {
	Color argb.Color
}

func (ImageBackground) isBackground() {}
func (ColorBackground) isBackground() {}

// NewTheme builds a theme from boundary values. A non-nil image wins over
// bgColor; empty colour strings mean "use the default".
func NewTheme(image []byte, bgColor, titleColor string) Theme {
	var t Theme
	switch {
	case image != nil:
		t.Background = ImageBackground{Data: image}
	case bgColor != "":
		t.Background = ColorBackground{Color: argb.Parse(bgColor)}
	}
	if titleColor != "" {
		c := argb.Parse(titleColor)
		t.TitleColor = &c
	}
	return t
}

// background resolves the theme to the compositor inputs: image bytes (may
// be empty) and the solid fill used when there are none.
func (t Theme) background() ([]byte, argb.Color) {
	switch b := t.Background.(type) {
	case ImageBackground:
		return b.Data, DefaultBackground
	case ColorBackground:
		return nil, b.Color
	}
	return nil, DefaultBackground
}

func (t Theme) titleColor() argb.Color {
	if t.TitleColor != nil {
		return *t.TitleColor
	}
	return DefaultTitleColor
}
