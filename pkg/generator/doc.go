// Package generator builds grid systems and stochastically places layout
// elements for one search candidate.
//
// Placement is driven by a vibe's constraints and a seeded [rng.LCG], so a
// given (config, constraints, seed) triple always yields the same elements.
// The generator does not validate its output: candidates may overflow the
// canvas or overlap, and the search loop discards those.
//
// Placement order:
//
//  1. Heading: rule-of-thirds vibes center it on the 1/3 or 2/3 vertical
//     line, strict-symmetry vibes center it at 25% height, others place it
//     uniformly in the safe area.
//  2. Subheading: stacked under the heading with the heading's alignment,
//     or placed in the upper 40% when there is no heading.
//  3. Body: stacked under the last element, 60-80% of the safe width,
//     four lines tall.
//  4. Up to two decorative elements (shape, divider, pattern) when the vibe
//     expects decoration. A decoration that overlaps earlier elements is
//     dropped, never retried.
//
// All positions are snapped to the nearest gutter multiple.
package generator
