package help

import (
	"github.com/youruser/helpcard/internal/argb"
	imagepkg "github.com/youruser/helpcard/internal/image"
)

// Layout constants, in logical units.
const (
	Width          = 600
	Padding        = 24.0
	MainTitleSize  = 32.0
	GroupTitleSize = 26.0
	NameSize       = 14.0
	DescSize       = 12.0
	DescOffset     = 8.0
	IconSize       = 20.0
	IconTextGap    = 8.0
	CardHeight     = 72.0
	CardGap        = 12.0
	CardPadding    = 12.0
	CardRadius     = 12.0
	Columns        = 3
	Scale          = 2.0
	BlurSigma      = 20.0
	ShadowBlur     = 8.0
)

var (
	DefaultBackground = argb.New(255, 245, 245, 250)
	DefaultTitleColor = argb.New(255, 0, 0, 0)
	CardColor         = argb.New(180, 255, 255, 255)
	NameColor         = argb.New(255, 50, 50, 60)
	DescColor         = argb.New(200, 80, 80, 90)
	ShadowColor       = argb.New(30, 0, 0, 0)
)

const (
	mainTitleHeight   = MainTitleSize + Padding
	groupHeaderHeight = GroupTitleSize + Padding
)

var cardStyle = imagepkg.CardStyle{
	Radius:     CardRadius,
	BlurSigma:  BlurSigma,
	ShadowBlur: ShadowBlur,
	Shadow:     ShadowColor,
}

// CardWidth is the width shared by every card.
func CardWidth() float64 {
	return (Width - 2*Padding - (Columns-1)*CardGap) / Columns
}

// Rows is the number of grid rows n items occupy.
func Rows(n int) int {
	return (n + Columns - 1) / Columns
}

// CardsHeight is the height of a group's card grid; zero for no items.
func CardsHeight(n int) float64 {
	rows := Rows(n)
	if rows == 0 {
		return 0
	}
	return float64(rows)*(CardHeight+CardGap) - CardGap
}

// GroupHeight is the vertical space one group takes, trailing padding
// included.
func GroupHeight(n int) float64 {
	return groupHeaderHeight + CardsHeight(n) + Padding
}

// CanvasHeight is the logical canvas height for l.
func CanvasHeight(l *HelpList) int {
	h := Padding + mainTitleHeight
	for _, g := range l.Groups {
		h += GroupHeight(len(g.Items))
	}
	return int(h)
}

// Cell is the card rectangle of the i-th item of a group whose grid starts
// at top.
func Cell(i int, top float64) imagepkg.Rect {
	col, row := i%Columns, i/Columns
	w := CardWidth()
	return imagepkg.Rect{
		X: Padding + float64(col)*(w+CardGap),
		Y: top + float64(row)*(CardHeight+CardGap),
		W: w,
		H: CardHeight,
	}
}
