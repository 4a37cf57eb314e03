package evaluate

import (
	"math"

	"github.com/matzehuels/vibegrid/pkg/layout"
)

// NeutralThirds is the rule-of-thirds score of vibes that do not use it.
const NeutralThirds = 50

const (
	offGridCost      = 5 // per axis, at the worst offset of half a gutter
	edgeMatchBonus   = 2
	edgeMatchEpsilon = 1 // px
	balanceThreshold = 0.6
	thirdsRadius     = 50 // px
	thirdsBaseline   = 50
	thirdsBonus      = 15
	focalImportance  = 7
)

// Alignment scores grid snapping and edge coincidence.
//
// Each element loses up to 5 points per axis in proportion to how far its
// origin sits from the nearest gutter multiple, normalized by half a gutter.
// Every pair of elements sharing a left edge, right edge or horizontal
// center (within 1px) earns 2 points per shared line.
func Alignment(elements []layout.Element, grid layout.GridSystem) float64 {
	score := 100.0
	for _, e := range elements {
		score -= offGridCost * offGrid(e.Position.X, grid.GutterX)
		score -= offGridCost * offGrid(e.Position.Y, grid.GutterY)
	}
	for i, a := range elements {
		for _, b := range elements[i+1:] {
			if near(a.Left(), b.Left()) {
				score += edgeMatchBonus
			}
			if near(a.Right(), b.Right()) {
				score += edgeMatchBonus
			}
			if near(a.Center().X, b.Center().X) {
				score += edgeMatchBonus
			}
		}
	}
	return clamp(score)
}

// offGrid returns the distance of v from the nearest multiple of unit as a
// fraction of half a unit, in [0, 1]. A non-positive unit is never off grid.
func offGrid(v, unit float64) float64 {
	if unit <= 0 {
		return 0
	}
	d := math.Abs(v - math.Round(v/unit)*unit)
	return math.Min(1, d/(unit/2))
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= edgeMatchEpsilon
}

// Balance scores the distribution of visual weight (area x importance)
// across the vertical and horizontal midlines. Elements straddling a
// midline contribute to both sides in proportion to their extent on each.
// An axis scores 100 when the lighter side carries more than 60% of the
// heavier side's weight and scales linearly to 0 below that; the result is
// the mean of both axes.
func Balance(elements []layout.Element, canvas layout.Dimensions) float64 {
	midX, midY := canvas.Width/2, canvas.Height/2
	var left, right, top, bottom float64
	for _, e := range elements {
		w := e.Area() * float64(e.Importance)
		l := split(e.Left(), e.Right(), midX)
		t := split(e.Top(), e.Bottom(), midY)
		left += w * l
		right += w * (1 - l)
		top += w * t
		bottom += w * (1 - t)
	}
	return (axisBalance(left, right) + axisBalance(top, bottom)) / 2
}

// split returns the share of [lo, hi] that lies before mid.
func split(lo, hi, mid float64) float64 {
	if hi <= lo {
		if lo < mid {
			return 1
		}
		return 0
	}
	return math.Max(0, math.Min(1, (mid-lo)/(hi-lo)))
}

func axisBalance(a, b float64) float64 {
	heavy := math.Max(a, b)
	if heavy <= 0 {
		return 100
	}
	ratio := math.Min(a, b) / heavy
	if ratio > balanceThreshold {
		return 100
	}
	return clamp(ratio / balanceThreshold * 100)
}

// ThirdsPoints returns the four rule-of-thirds intersections of canvas.
func ThirdsPoints(canvas layout.Dimensions) [4]layout.Point {
	x1, x2 := canvas.Width/3, canvas.Width*2/3
	y1, y2 := canvas.Height/3, canvas.Height*2/3
	return [4]layout.Point{{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x1, Y: y2}, {X: x2, Y: y2}}
}

// RuleOfThirds scores focal placement: starting from 50, every element of
// importance 7 or more whose center is within 50px of a thirds
// intersection earns 15.
func RuleOfThirds(elements []layout.Element, canvas layout.Dimensions) float64 {
	points := ThirdsPoints(canvas)
	score := float64(thirdsBaseline)
	for _, e := range elements {
		if e.Importance < focalImportance {
			continue
		}
		c := e.Center()
		for _, p := range points {
			if layout.Distance(c, p) <= thirdsRadius {
				score += thirdsBonus
				break
			}
		}
	}
	return clamp(score)
}
