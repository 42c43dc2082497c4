package argb

import (
	"math"
	"strconv"
	"strings"
)

// Parse reads a colour string in one of the forms #RGB, #RRGGBB, #AARRGGBB,
// rgb(r, g, b) or rgba(r, g, b, a) where a is in 0..1. Malformed channels
// read as 0 and anything unrecognised is opaque black.
func Parse(s string) Color {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "rgb") {
		return parseFunc(s)
	}

	hex := strings.TrimLeft(s, "#")
	switch len(hex) {
	case 3:
		return Color{
			A: 0xff,
			R: hexByte(hex[0:1], 0) * 17,
			G: hexByte(hex[1:2], 0) * 17,
			B: hexByte(hex[2:3], 0) * 17,
		}
	case 6:
		return Color{
			A: 0xff,
			R: hexByte(hex[0:2], 0),
			G: hexByte(hex[2:4], 0),
			B: hexByte(hex[4:6], 0),
		}
	case 8:
		return Color{
			A: hexByte(hex[0:2], 0xff),
			R: hexByte(hex[2:4], 0),
			G: hexByte(hex[4:6], 0),
			B: hexByte(hex[6:8], 0),
		}
	}
	return Black
}

func parseFunc(s string) Color {
	inner := strings.TrimPrefix(s, "rgba")
	inner = strings.TrimPrefix(inner, "rgb")
	inner = strings.TrimPrefix(inner, "(")
	inner = strings.TrimSuffix(inner, ")")

	parts := strings.Split(inner, ",")
	if len(parts) < 3 {
		return Black
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	c := Color{
		A: 0xff,
		R: decByte(parts[0]),
		G: decByte(parts[1]),
		B: decByte(parts[2]),
	}
	if len(parts) >= 4 {
		c.A = alphaByte(parts[3])
	}
	return c
}

func hexByte(s string, def uint8) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return def
	}
	return uint8(v)
}

func decByte(s string) uint8 {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// alphaByte scales a 0..1 alpha to 0..255, truncating toward zero.
func alphaByte(s string) uint8 {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		f = 1
	}
	v := f * 255
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 0xff
	}
	return uint8(v)
}
