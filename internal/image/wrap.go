package imagepkg

import (
	"strings"
	"unicode"
)

// wrapLines breaks text into lines no wider than width as reported by
// measure. Breaks fall after spaces and hyphens and around CJK characters;
// a word that is wider than the whole line is split between characters.
// Hard newlines are kept.
func wrapLines(text string, width float64, measure func(string) float64) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, width, measure)...)
	}
	return lines
}

func wrapParagraph(para string, width float64, measure func(string) float64) []string {
	runes := []rune(para)
	if len(runes) == 0 || width <= 0 {
		return []string{para}
	}

	var lines []string
	start := 0
	for start < len(runes) {
		end := lineEnd(runes, start, width, measure)
		lines = append(lines, strings.TrimRightFunc(string(runes[start:end]), unicode.IsSpace))
		start = end
		for start < len(runes) && unicode.IsSpace(runes[start]) {
			start++
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// lineEnd returns the rune index where the line starting at start ends.
func lineEnd(runes []rune, start int, width float64, measure func(string) float64) int {
	lastBreak := -1
	for i := start + 1; i <= len(runes); i++ {
		line := strings.TrimRightFunc(string(runes[start:i]), unicode.IsSpace)
		if measure(line) > width {
			switch {
			case i-1 == start:
				// a single character wider than the line still takes one line
				return i
			case lastBreak > start:
				return lastBreak
			}
			return i - 1
		}
		if i < len(runes) && canBreakBefore(runes, i) {
			lastBreak = i
		}
	}
	return len(runes)
}

// canBreakBefore reports a break opportunity between runes[i-1] and runes[i].
func canBreakBefore(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	switch {
	case isClosing(cur) || isOpening(prev):
		return false
	case unicode.IsSpace(prev):
		return !unicode.IsSpace(cur)
	case prev == '-' && cur != '-':
		return true
	case isCJK(cur) || isCJK(prev):
		return !unicode.IsSpace(cur)
	}
	return false
}

func isOpening(r rune) bool {
	return strings.ContainsRune("([{“‘《「『【（", r)
}

func isClosing(r rune) bool {
	return strings.ContainsRune(")]}”’、。》」』】），！：；？", r)
}

func isCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) ||
		(r >= 0x3000 && r <= 0x303F) || // CJK symbols and punctuation
		(r >= 0xFF00 && r <= 0xFFEF) // fullwidth forms
}
