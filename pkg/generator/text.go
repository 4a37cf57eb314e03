package generator

import (
	"math"
	"unicode/utf8"
)

// Text measurement is approximated with fixed multipliers.
const (
	glyphWidth        = 0.55 // average advance per character, in em
	headingLineHeight = 1.2
	bodyLineHeight    = 1.5
	bodyLines         = 4
)

// MeasureText estimates the box of text set at fontSize, wrapping at maxWidth.
// The width never drops below two em so very short strings stay legible.
func MeasureText(text string, fontSize, lineHeight, maxWidth float64) (w, h float64) {
	raw := float64(utf8.RuneCountInString(text)) * fontSize * glyphWidth
	raw = max(raw, 2*fontSize)
	lines := 1.0
	if raw > maxWidth && maxWidth > 0 {
		lines = math.Ceil(raw / maxWidth)
		raw = maxWidth
	}
	return raw, lines * fontSize * lineHeight
}
