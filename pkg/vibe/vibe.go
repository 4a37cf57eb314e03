// Package vibe holds the static catalog of stylistic profiles ("vibes").
//
// Each vibe bundles the numeric and policy constraints that steer candidate
// generation and scoring: whitespace minimum, element budget, spacing, grid
// snap unit, symmetry mode, balance weighting, golden-ratio and
// rule-of-thirds flags, and density/decoration preferences.
//
// The catalog is built once at package initialization and never modified.
// [Get] is total: unknown ids resolve to the [DefaultID] profile. Callers
// receive copies, so mutating a returned [Constraints] has no effect on the
// catalog.
package vibe

import (
	"slices"
	"strings"
)

// Symmetry is the symmetry policy of a vibe.
type Symmetry string

// Symmetry modes.
const (
	SymmetryStrict     Symmetry = "strict"
	SymmetryLoose      Symmetry = "loose"
	SymmetryAsymmetric Symmetry = "asymmetric"
)

// Density is the expected element density class.
type Density string

// Density classes.
const (
	DensitySparse   Density = "sparse"
	DensityModerate Density = "moderate"
	DensityDense    Density = "dense"
)

// Preferences captures structural layout preferences of a vibe.
type Preferences struct {
	PreferredColumns   []int   `json:"preferred_columns"`
	PreferredRows      []int   `json:"preferred_rows"`
	ElementDensity     Density `json:"element_density"`
	DecorativeElements bool    `json:"decorative_elements"`
}

// Constraints is the full tuning bundle for one vibe.
type Constraints struct {
	ID                string      `json:"vibe_id"`
	Name              string      `json:"vibe_name"`
	MinWhitespace     float64     `json:"min_whitespace"` // percent of canvas
	MaxElements       int         `json:"max_elements"`
	MinElementSpacing float64     `json:"min_element_spacing"` // px
	ScaleRatios       []float64   `json:"scale_ratios"`        // preferred area-ratio steps
	AlignmentGrid     float64     `json:"alignment_grid"`      // snap unit, px
	Symmetry          Symmetry    `json:"symmetry"`
	BalanceWeight     float64     `json:"balance_weight"` // 0-1
	UseGoldenRatio    bool        `json:"use_golden_ratio"`
	UseRuleOfThirds   bool        `json:"use_rule_of_thirds"`
	Preferences       Preferences `json:"layout_preferences"`
}

// clone returns a deep copy so callers cannot reach the catalog's slices.
func (c Constraints) clone() Constraints {
	c.ScaleRatios = slices.Clone(c.ScaleRatios)
	c.Preferences.PreferredColumns = slices.Clone(c.Preferences.PreferredColumns)
	c.Preferences.PreferredRows = slices.Clone(c.Preferences.PreferredRows)
	return c
}

// DefaultID is the profile unknown vibe ids resolve to.
const DefaultID = "modern"

// Get returns the constraints for id. Lookup is case-insensitive; unknown
// ids yield the default profile.
func Get(id string) Constraints {
	if c, ok := Lookup(id); ok {
		return c
	}
	return catalog[DefaultID].clone()
}

// Lookup returns the constraints for id and whether id is a registered vibe
// or alias.
func Lookup(id string) (Constraints, bool) {
	c, ok := catalog[Resolve(id)]
	if !ok {
		return Constraints{}, false
	}
	return c.clone(), true
}

// Resolve maps an id (or alias) to its canonical catalog id. Unknown ids are
// returned normalized but unchanged.
func Resolve(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if target, ok := aliases[id]; ok {
		return target
	}
	return id
}

// Known reports whether id is a registered vibe or alias.
func Known(id string) bool {
	_, ok := catalog[Resolve(id)]
	return ok
}

// IDs returns every registered id, aliases included, in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(catalog)+len(aliases))
	for id := range catalog {
		ids = append(ids, id)
	}
	for id := range aliases {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// All returns the canonical profiles sorted by id. Aliases are not repeated.
func All() []Constraints {
	out := make([]Constraints, 0, len(catalog))
	for _, c := range catalog {
		out = append(out, c.clone())
	}
	slices.SortFunc(out, func(a, b Constraints) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// AliasOf returns the canonical id that alias points to.
func AliasOf(alias string) (string, bool) {
	target, ok := aliases[strings.ToLower(strings.TrimSpace(alias))]
	return target, ok
}
