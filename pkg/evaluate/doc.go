// Package evaluate implements the design-principle evaluators.
//
// Each evaluator is a pure function from a candidate's elements (plus the
// grid, canvas or background color it needs) to a sub-score in [0, 100].
// Evaluators never fail: an empty element list yields a defined score
// (100 for the penalty-based evaluators, 50 for [RuleOfThirds]).
//
// # Evaluators
//
//   - [Hierarchy]: more important elements should be larger, with area
//     ratios close to the harmonic steps 1, 1.5, 2 and 3.
//   - [Whitespace]: free canvas share against the vibe minimum.
//   - [Alignment]: grid snapping and shared left/right/center edges.
//   - [Balance]: visual weight (area x importance) on each side of the
//     canvas midlines.
//   - [Proximity]: like elements close together, unlike ones apart.
//   - [Contrast]: WCAG contrast ratio of text against the background.
//   - [RuleOfThirds]: important elements near the thirds intersections.
//
// Combining the sub-scores into a total is the job of package scoring.
package evaluate

import "math"

// clamp bounds a raw score to [0, 100].
func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
