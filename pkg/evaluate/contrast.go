package evaluate

import (
	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/palette"
)

// WCAG thresholds.
const (
	MinContrast      = 4.5
	MinContrastLarge = 3.0
	EnhancedContrast = 7.0
	LargeTextSize    = 18 // px
)

const (
	shortfallCost = 15
	enhancedBonus = 5
	focalCost     = 20
)

// Contrast scores text legibility against background.
//
// Each text element whose contrast ratio is under 4.5:1 (3:1 at 18px and
// above) costs 15 and each reaching 7:1 earns 5. The single most important
// element additionally costs 20 when its own ratio is under 4.5:1.
// Unparseable colors are treated as black.
func Contrast(elements []layout.Element, background string) float64 {
	score := 100.0
	var focal *layout.Element
	for i := range elements {
		e := &elements[i]
		if focal == nil || e.Importance > focal.Importance {
			focal = e
		}
		if !e.Type.IsText() {
			continue
		}
		ratio := palette.ContrastRatio(e.Color, background)
		threshold := MinContrast
		if e.FontSize >= LargeTextSize {
			threshold = MinContrastLarge
		}
		if ratio < threshold {
			score -= shortfallCost
		}
		if ratio >= EnhancedContrast {
			score += enhancedBonus
		}
	}
	if focal != nil && palette.ContrastRatio(focal.Color, background) < MinContrast {
		score -= focalCost
	}
	return clamp(score)
}
