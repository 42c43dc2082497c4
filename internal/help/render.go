package help

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	imagepkg "github.com/youruser/helpcard/internal/image"
)

// Renderer turns help lists into PNG images. It is safe for concurrent use
// once built; every Render owns its own surface and font faces.
type Renderer struct {
	fonts  *imagepkg.FontSet
	family string
	log    *slog.Logger
}

type Option func(*Renderer)

// WithFonts sets the font set text is drawn from.
func WithFonts(fs *imagepkg.FontSet) Option {
	return func(r *Renderer) { r.fonts = fs }
}

// WithFamily selects the font family. Unknown families fall back to the
// bundled font.
func WithFamily(family string) Option {
	return func(r *Renderer) { r.family = family }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		family: imagepkg.DefaultFamily,
		log:    slog.New(discardHandler{}),
	}
	for _, o := range opts {
		o(r)
	}
	if r.fonts == nil {
		r.fonts = imagepkg.NewFontSet()
	}
	return r
}

var defaultRenderer = sync.OnceValue(func() *Renderer { return NewRenderer() })

// Render renders l with the bundled font.
func Render(l *HelpList) ([]byte, error) {
	return defaultRenderer().Render(l)
}

// Render lays out l and returns it as PNG. Any icon or background that fails
// to decode aborts the whole render with imagepkg.ErrDecode; surface or PNG
// failures return imagepkg.ErrEncode.
func (r *Renderer) Render(l *HelpList) ([]byte, error) {
	height := CanvasHeight(l)
	cv, err := imagepkg.NewCanvas(Width, height, Scale, r.fonts)
	if err != nil {
		r.log.Warn("allocate canvas", "height", height, "err", err)
		return nil, err
	}
	defer cv.Close()
	r.checkGlyphs(l)

	data, fill := l.Theme.background()
	backdrop, err := cv.DrawBackground(data, fill)
	if err != nil {
		r.log.Warn("draw background", "err", err)
		return nil, err
	}

	titleColor := l.Theme.titleColor()
	cv.DrawText(l.Title, imagepkg.TextParams{
		Rect:     imagepkg.Rect{X: 0, Y: Padding, W: Width, H: MainTitleSize},
		FontSize: MainTitleSize,
		Color:    titleColor,
		Family:   r.family,
		Align:    imagepkg.AlignCenter,
	})

	y := Padding + mainTitleHeight
	for gi, g := range l.Groups {
		cv.DrawText(g.Name, imagepkg.TextParams{
			Rect:     imagepkg.Rect{X: Padding, Y: y, W: Width - 2*Padding, H: GroupTitleSize},
			FontSize: GroupTitleSize,
			Color:    titleColor,
			Family:   r.family,
			Align:    imagepkg.AlignLeft,
		})

		top := y + groupHeaderHeight
		for i, item := range g.Items {
			if err := r.drawItem(cv, item, Cell(i, top), backdrop); err != nil {
				r.log.Warn("draw item", "group", gi, "item", i, "name", item.Name, "err", err)
				return nil, err
			}
		}
		y += GroupHeight(len(g.Items))
	}

	out, err := cv.EncodePNG()
	if err != nil {
		return nil, err
	}
	r.log.Debug("rendered help list", "groups", len(l.Groups), "height", height, "bytes", len(out))
	return out, nil
}

// checkGlyphs warns when the font cannot show some of l's text, which then
// renders as empty boxes.
func (r *Renderer) checkGlyphs(l *HelpList) {
	texts := []string{l.Title}
	for _, g := range l.Groups {
		texts = append(texts, g.Name)
		for _, it := range g.Items {
			texts = append(texts, it.Name, it.Desc)
		}
	}
	if missing := r.fonts.Missing(r.family, strings.Join(texts, " ")); len(missing) > 0 {
		r.log.Warn("font has no glyphs for some characters; configure font_path",
			"family", r.family, "missing", len(missing), "sample", string(missing[:min(len(missing), 8)]))
	}
}

func (r *Renderer) drawItem(cv *imagepkg.Canvas, item HelpItem, cell imagepkg.Rect, bd *imagepkg.Backdrop) error {
	cv.DrawCard(cell, CardColor, bd, cardStyle)

	contentY := cell.Y + CardPadding
	nameX := cell.X + CardPadding
	if len(item.Icon) > 0 {
		icon, err := imagepkg.NormalizeIcon(item.Icon, int(IconSize*Scale))
		if err != nil {
			return err
		}
		dst := imagepkg.Rect{X: nameX, Y: contentY, W: IconSize, H: IconSize}
		if err := cv.DrawIcon(icon, dst); err != nil {
			return err
		}
		nameX += IconSize + IconTextGap
	}

	textW := cell.W - 2*CardPadding
	cv.DrawText(item.Name, imagepkg.TextParams{
		Rect:     imagepkg.Rect{X: nameX, Y: contentY, W: textW, H: NameSize},
		FontSize: NameSize,
		Color:    NameColor,
		Family:   r.family,
		Align:    imagepkg.AlignLeft,
		Clip:     cell,
	})

	desc := imagepkg.TextParams{
		Rect:     imagepkg.Rect{X: cell.X + CardPadding, Y: contentY + NameSize + DescOffset, W: textW, H: DescSize},
		FontSize: DescSize,
		Color:    DescColor,
		Family:   r.family,
		Align:    imagepkg.AlignLeft,
		Clip:     cell,
	}
	cv.DrawText(item.Desc, desc)
	if r.log.Enabled(context.Background(), slog.LevelDebug) {
		if _, h := cv.MeasureText(item.Desc, desc); desc.Rect.Y+h > cell.Bottom() {
			r.log.Debug("description overflows card", "item", item.Name, "height", h)
		}
	}
	return nil
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
