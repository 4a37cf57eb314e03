package scoring

import (
	"math"

	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/vibe"
)

const (
	excessElementCost     = 5
	densityMismatchCost   = 10
	missingDecorationCost = 10
	strayDecorationCost   = 15
	strictSymmetryCost    = 20
	asymmetryCost         = 15
	crampedPairCost       = 5

	strictCenteredMin     = 0.5
	asymmetricCenteredMax = 0.7
	centerTolerance       = 0.05 // share of canvas width
)

// densityRange is the element count a density class expects, inclusive.
var densityRange = map[vibe.Density][2]int{
	vibe.DensitySparse:   {1, 4},
	vibe.DensityModerate: {3, 6},
	vibe.DensityDense:    {5, math.MaxInt},
}

// CenteredRatio returns the share of elements whose horizontal center lies
// within 5% of the canvas width from the canvas center.
func CenteredRatio(elements []layout.Element, canvas layout.Dimensions) float64 {
	if len(elements) == 0 {
		return 0
	}
	mid, tol := canvas.Width/2, canvas.Width*centerTolerance
	n := 0
	for _, e := range elements {
		if math.Abs(e.Center().X-mid) <= tol {
			n++
		}
	}
	return float64(n) / float64(len(elements))
}

// VibeAdherence scores how closely a candidate matches the structural
// expectations of its vibe:
//
//   - 5 per element over MaxElements
//   - 10 when the element count falls outside the density class
//   - 10 when decoration is expected but absent, 15 when present but
//     unexpected
//   - 20 for a strict vibe with fewer than half its elements centered, 15
//     for an asymmetric vibe with more than 70% centered
//   - 5 per element pair closer than MinElementSpacing
//
// An empty candidate skips the density and symmetry checks.
func VibeAdherence(elements []layout.Element, canvas layout.Dimensions, c vibe.Constraints) float64 {
	score := 100.0
	n := len(elements)

	if excess := n - c.MaxElements; excess > 0 {
		score -= float64(excess * excessElementCost)
	}

	if r, ok := densityRange[c.Preferences.ElementDensity]; ok && n > 0 && (n < r[0] || n > r[1]) {
		score -= densityMismatchCost
	}

	decorated := false
	for _, e := range elements {
		if e.Type.IsDecorative() {
			decorated = true
			break
		}
	}
	switch {
	case c.Preferences.DecorativeElements && !decorated:
		score -= missingDecorationCost
	case !c.Preferences.DecorativeElements && decorated:
		score -= strayDecorationCost
	}

	if n > 0 {
		centered := CenteredRatio(elements, canvas)
		switch {
		case c.Symmetry == vibe.SymmetryStrict && centered < strictCenteredMin:
			score -= strictSymmetryCost
		case c.Symmetry == vibe.SymmetryAsymmetric && centered > asymmetricCenteredMax:
			score -= asymmetryCost
		}
	}

	for i, a := range elements {
		for _, b := range elements[i+1:] {
			if layout.Gap(a, b) < c.MinElementSpacing {
				score -= crampedPairCost
			}
		}
	}
	return math.Max(0, math.Min(100, score))
}
