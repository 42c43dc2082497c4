package imagepkg

import (
	"fmt"
	"unicode"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
)

// DefaultFamily names the bundled Go Bold face. It covers Latin, Greek and
// Cyrillic only; CJK text needs a font registered from a file.
const DefaultFamily = "Go Bold"

// FontSet maps family names to parsed TrueType fonts. Register every family
// before the set is shared between goroutines.
type FontSet struct {
	fonts map[string]*truetype.Font
}

// NewFontSet returns a set holding only the bundled font.
func NewFontSet() *FontSet {
	s := &FontSet{fonts: map[string]*truetype.Font{}}
	if err := s.Register(DefaultFamily, gobold.TTF); err != nil {
		panic(err)
	}
	return s
}

// Register parses ttf and makes it available as family.
func (s *FontSet) Register(family string, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", family, err)
	}
	s.fonts[family] = f
	return nil
}

func (s *FontSet) Has(family string) bool {
	_, ok := s.fonts[family]
	return ok
}

// Missing returns the distinct printable runes of text that family (after
// fallback) has no glyph for, in order of appearance.
func (s *FontSet) Missing(family, text string) []rune {
	f := s.lookup(family)
	if f == nil {
		return nil
	}
	var out []rune
	seen := map[rune]bool{}
	for _, r := range text {
		if seen[r] || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			continue
		}
		seen[r] = true
		if f.Index(r) == 0 {
			out = append(out, r)
		}
	}
	return out
}

// lookup resolves family, falling back to the bundled font.
func (s *FontSet) lookup(family string) *truetype.Font {
	if s == nil {
		return nil
	}
	if f, ok := s.fonts[family]; ok {
		return f
	}
	return s.fonts[DefaultFamily]
}

type faceKey struct {
	family string
	size   float64
}

// faceCache holds the faces of one render. truetype faces cache glyphs
// internally and must not be shared between goroutines.
type faceCache struct {
	fonts *FontSet
	faces map[faceKey]font.Face
}

func (c *faceCache) face(family string, size float64) font.Face {
	k := faceKey{family, size}
	if f, ok := c.faces[k]; ok {
		return f
	}
	var face font.Face = basicfont.Face7x13
	if f := c.fonts.lookup(family); f != nil {
		face = truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingNone})
	}
	if c.faces == nil {
		c.faces = map[faceKey]font.Face{}
	}
	c.faces[k] = face
	return face
}

func (c *faceCache) close() {
	for _, f := range c.faces {
		f.Close()
	}
	c.faces = nil
}
