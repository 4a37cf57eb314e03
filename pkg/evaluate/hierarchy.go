package evaluate

import (
	"cmp"
	"math"
	"slices"

	"github.com/matzehuels/vibegrid/pkg/layout"
)

// HarmonicRatios are the area ratios between hierarchy levels that read as
// intentional.
var HarmonicRatios = []float64{1, 1.5, 2, 3}

const (
	inversionTolerance = 0.9 // a more important element may be 10% smaller
	ratioTolerance     = 0.3

	inversionPenalty = 10
	ratioPenalty     = 5
	fontPenalty      = 8
)

// ByImportance returns a copy of elements sorted by importance, highest
// first. Equal importance keeps input order.
func ByImportance(elements []layout.Element) []layout.Element {
	sorted := slices.Clone(elements)
	slices.SortStableFunc(sorted, func(a, b layout.Element) int {
		return cmp.Compare(b.Importance, a.Importance)
	})
	return sorted
}

// Hierarchy scores how well element size follows importance.
//
// Every pair where the more important element is smaller than 90% of the
// less important one costs 10. Every adjacent pair in importance order
// whose area ratio is more than 0.3 from the nearest harmonic ratio costs
// 5, and adjacent text pairs where the more important element does not use
// a strictly larger font cost 8.
func Hierarchy(elements []layout.Element) float64 {
	sorted := ByImportance(elements)
	score := 100.0

	for i, a := range sorted {
		for _, b := range sorted[i+1:] {
			if a.Importance > b.Importance && a.Area() < inversionTolerance*b.Area() {
				score -= inversionPenalty
			}
		}
	}

	for i := 0; i+1 < len(sorted); i++ {
		a, b := sorted[i], sorted[i+1]
		if a.Importance <= b.Importance {
			continue
		}
		if b.Area() > 0 {
			ratio := a.Area() / b.Area()
			if math.Abs(ratio-nearest(ratio, HarmonicRatios)) > ratioTolerance {
				score -= ratioPenalty
			}
		}
		if a.Type.IsText() && b.Type.IsText() && a.FontSize <= b.FontSize {
			score -= fontPenalty
		}
	}
	return clamp(score)
}

func nearest(v float64, candidates []float64) float64 {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if math.Abs(v-c) < math.Abs(v-best) {
			best = c
		}
	}
	return best
}
