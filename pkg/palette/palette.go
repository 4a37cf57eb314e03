// Package palette parses CSS-style color strings and computes WCAG relative
// luminance and contrast ratios.
//
// Supported forms are "#rgb", "#rrggbb" and "rgb(r, g, b)" / "rgba(r, g, b, a)"
// with 0-255 channels. Alpha is ignored for contrast purposes.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Black is the color unparseable inputs degrade to in the lenient helpers.
var Black = colorful.Color{}

// Parse converts a CSS color string to a colorful.Color.
func Parse(s string) (colorful.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) != 4 && len(s) != 7 {
			return colorful.Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		return colorful.Hex(s)
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		return parseRGB(s)
	}
	return colorful.Color{}, fmt.Errorf("unsupported color format %q", s)
}

func parseRGB(s string) (colorful.Color, error) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return colorful.Color{}, fmt.Errorf("invalid rgb color %q", s)
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) < 3 || len(parts) > 4 {
		return colorful.Color{}, fmt.Errorf("invalid rgb color %q", s)
	}
	var ch [3]float64
	for i := range 3 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || v < 0 || v > 255 {
			return colorful.Color{}, fmt.Errorf("invalid rgb channel %q in %q", parts[i], s)
		}
		ch[i] = v / 255
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Valid reports whether s parses as a supported color.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Luminance returns the WCAG relative luminance of c in [0,1].
func Luminance(c colorful.Color) float64 {
	r, g, b := c.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG contrast ratio between two colors, in [1,21].
func Contrast(a, b colorful.Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ContrastRatio parses both strings and returns their contrast ratio.
// Unparseable colors are treated as black so scoring never fails.
func ContrastRatio(fg, bg string) float64 {
	return Contrast(orBlack(fg), orBlack(bg))
}

func orBlack(s string) colorful.Color {
	c, err := Parse(s)
	if err != nil {
		return Black
	}
	return c
}
