package evaluate

import (
	"github.com/matzehuels/vibegrid/pkg/layout"
)

// DefaultMinWhitespace applies when the vibe does not set a minimum.
const DefaultMinWhitespace = 30

const (
	maxWhitespace    = 80
	deficitFactor    = 2
	excessFactor     = 1.5
	minSideSpacing   = 8
	tightSpacingCost = 5
	groupDistance    = 200
	crowdingDistance = 40
	scatteredCost    = 5
	crowdedCost      = 3
)

// WhitespaceRatio returns the free share of the canvas in percent. Element
// areas are summed without subtracting overlaps.
func WhitespaceRatio(elements []layout.Element, canvas layout.Dimensions) float64 {
	total := canvas.Area()
	if total <= 0 {
		return 0
	}
	used := 0.0
	for _, e := range elements {
		used += e.Area()
	}
	return (total - used) / total * 100
}

// Whitespace scores the free canvas share. Falling below minWhitespace
// (DefaultMinWhitespace when <= 0) costs twice the deficit, exceeding 80%
// costs 1.5x the excess, and every element with less than 8px of spacing on
// any side costs 5. A canvas without area scores 0.
func Whitespace(elements []layout.Element, canvas layout.Dimensions, minWhitespace float64) float64 {
	if canvas.Area() <= 0 {
		return 0
	}
	if minWhitespace <= 0 {
		minWhitespace = DefaultMinWhitespace
	}

	ratio := WhitespaceRatio(elements, canvas)
	score := 100.0
	if ratio < minWhitespace {
		score -= deficitFactor * (minWhitespace - ratio)
	}
	if ratio > maxWhitespace {
		score -= excessFactor * (ratio - maxWhitespace)
	}
	for _, e := range elements {
		if e.Spacing.Min() < minSideSpacing {
			score -= tightSpacingCost
		}
	}
	return clamp(score)
}

// Proximity scores grouping. Each pair of same-type elements whose centers
// are more than 200px apart costs 5; each pair of different-type elements
// whose centers are closer than 40px costs 3.
func Proximity(elements []layout.Element) float64 {
	score := 100.0
	for i, a := range elements {
		for _, b := range elements[i+1:] {
			d := layout.Distance(a.Center(), b.Center())
			switch {
			case a.Type == b.Type && d > groupDistance:
				score -= scatteredCost
			case a.Type != b.Type && d < crowdingDistance:
				score -= crowdedCost
			}
		}
	}
	return clamp(score)
}
