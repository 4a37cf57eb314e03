// Package scoring combines the design-principle evaluators into a single
// weighted [layout.Score].
//
// The aggregator runs the seven evaluators from package evaluate, adds a
// vibe adherence check, weights the sub-scores (balance scaled by the
// vibe's balance weight, rule of thirds weighted up when the vibe uses it),
// renormalizes the weights to sum to one and rounds the weighted sum.
// Sub-scores below a fixed threshold produce an issue and a paired
// suggestion.
package scoring

import (
	"math"

	"github.com/matzehuels/vibegrid/pkg/evaluate"
	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/vibe"
)

// Base weights before renormalization.
const (
	WeightHierarchy     = 0.18
	WeightWhitespace    = 0.15
	WeightAlignment     = 0.12
	WeightBalance       = 0.15 // scaled by the vibe's balance weight
	WeightProximity     = 0.10
	WeightContrast      = 0.15
	WeightThirdsUsed    = 0.10
	WeightThirdsUnused  = 0.05
	WeightVibeAdherence = 0.15
)

// Weights returns the normalized weight of every sub-score for a vibe, in
// the field order of [layout.Breakdown].
func Weights(c vibe.Constraints) layout.Breakdown {
	thirds := WeightThirdsUnused
	if c.UseRuleOfThirds {
		thirds = WeightThirdsUsed
	}
	w := layout.Breakdown{
		Hierarchy:     WeightHierarchy,
		Whitespace:    WeightWhitespace,
		Alignment:     WeightAlignment,
		Balance:       WeightBalance * c.BalanceWeight,
		Proximity:     WeightProximity,
		Contrast:      WeightContrast,
		RuleOfThirds:  thirds,
		VibeAdherence: WeightVibeAdherence,
	}
	sum := w.Hierarchy + w.Whitespace + w.Alignment + w.Balance +
		w.Proximity + w.Contrast + w.RuleOfThirds + w.VibeAdherence
	w.Hierarchy /= sum
	w.Whitespace /= sum
	w.Alignment /= sum
	w.Balance /= sum
	w.Proximity /= sum
	w.Contrast /= sum
	w.RuleOfThirds /= sum
	w.VibeAdherence /= sum
	return w
}

// Breakdown runs every evaluator on a candidate.
func Breakdown(elements []layout.Element, grid layout.GridSystem, canvas layout.Dimensions, c vibe.Constraints, background string) layout.Breakdown {
	thirds := float64(evaluate.NeutralThirds)
	if c.UseRuleOfThirds {
		thirds = evaluate.RuleOfThirds(elements, canvas)
	}
	return layout.Breakdown{
		Hierarchy:     evaluate.Hierarchy(elements),
		Whitespace:    evaluate.Whitespace(elements, canvas, c.MinWhitespace),
		Alignment:     evaluate.Alignment(elements, grid),
		Balance:       evaluate.Balance(elements, canvas),
		Proximity:     evaluate.Proximity(elements),
		Contrast:      evaluate.Contrast(elements, background),
		RuleOfThirds:  thirds,
		VibeAdherence: VibeAdherence(elements, canvas, c),
	}
}

// Evaluate scores a candidate against a vibe. It never fails; an empty
// candidate gets the evaluators' neutral scores.
func Evaluate(elements []layout.Element, grid layout.GridSystem, canvas layout.Dimensions, c vibe.Constraints, background string) layout.Score {
	b := Breakdown(elements, grid, canvas, c, background)
	issues, suggestions := Feedback(b)
	return layout.Score{
		Total:       Total(b, Weights(c)),
		Breakdown:   b,
		Issues:      issues,
		Suggestions: suggestions,
	}
}

// Total returns the rounded weighted sum of b, clamped to [0, 100].
func Total(b, w layout.Breakdown) int {
	sum := b.Hierarchy*w.Hierarchy +
		b.Whitespace*w.Whitespace +
		b.Alignment*w.Alignment +
		b.Balance*w.Balance +
		b.Proximity*w.Proximity +
		b.Contrast*w.Contrast +
		b.RuleOfThirds*w.RuleOfThirds +
		b.VibeAdherence*w.VibeAdherence
	return int(math.Max(0, math.Min(100, math.Round(sum))))
}
