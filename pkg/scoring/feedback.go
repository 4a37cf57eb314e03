package scoring

import "github.com/matzehuels/vibegrid/pkg/layout"

// Sub-scores under these thresholds produce feedback.
const (
	IssueThreshold        = 70
	BalanceIssueThreshold = 60
)

type check struct {
	score      func(layout.Breakdown) float64
	threshold  float64
	issue      string
	suggestion string
}

// checks is ordered; issues are reported in this order.
var checks = []check{
	{
		score:      func(b layout.Breakdown) float64 { return b.Hierarchy },
		threshold:  IssueThreshold,
		issue:      "Visual hierarchy is unclear: important elements are not clearly larger",
		suggestion: "Scale headings up relative to supporting text using steps of 1.5x, 2x or 3x",
	},
	{
		score:      func(b layout.Breakdown) float64 { return b.Whitespace },
		threshold:  IssueThreshold,
		issue:      "Whitespace is out of balance for this vibe",
		suggestion: "Adjust element sizes or spacing to bring free space within the vibe's range",
	},
	{
		score:      func(b layout.Breakdown) float64 { return b.Alignment },
		threshold:  IssueThreshold,
		issue:      "Elements are not aligned to the grid",
		suggestion: "Snap elements to the grid and share left, right or center edges",
	},
	{
		score:      func(b layout.Breakdown) float64 { return b.Balance },
		threshold:  BalanceIssueThreshold,
		issue:      "Visual weight is lopsided",
		suggestion: "Redistribute elements so both halves of the canvas carry similar weight",
	},
	{
		score:      func(b layout.Breakdown) float64 { return b.Contrast },
		threshold:  IssueThreshold,
		issue:      "Text contrast is too low for comfortable reading",
		suggestion: "Darken text colors or lighten the background to reach at least 4.5:1",
	},
	{
		score:      func(b layout.Breakdown) float64 { return b.VibeAdherence },
		threshold:  IssueThreshold,
		issue:      "Layout does not match the selected vibe",
		suggestion: "Review element count, decoration and symmetry against the vibe's profile",
	},
}

// Feedback returns the issues and paired suggestions for every sub-score
// under its threshold. Both slices are non-nil and have equal length.
func Feedback(b layout.Breakdown) (issues, suggestions []string) {
	issues, suggestions = []string{}, []string{}
	for _, c := range checks {
		if c.score(b) < c.threshold {
			issues = append(issues, c.issue)
			suggestions = append(suggestions, c.suggestion)
		}
	}
	return issues, suggestions
}
