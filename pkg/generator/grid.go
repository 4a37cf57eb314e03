package generator

import (
	"math"

	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/vibe"
)

const (
	defaultColumns = 3
	defaultRows    = 4
)

// Grid derives the grid system for a canvas: the vibe's first preferred
// column and row counts (3x4 when unset), gutters equal to the alignment
// unit, and margins of two gutters on every side.
func Grid(canvas layout.Dimensions, c vibe.Constraints) layout.GridSystem {
	cols, rows := defaultColumns, defaultRows
	if len(c.Preferences.PreferredColumns) > 0 {
		cols = c.Preferences.PreferredColumns[0]
	}
	if len(c.Preferences.PreferredRows) > 0 {
		rows = c.Preferences.PreferredRows[0]
	}
	gutter := c.AlignmentGrid
	return layout.GridSystem{
		Columns: cols,
		Rows:    rows,
		GutterX: gutter,
		GutterY: gutter,
		Margin:  layout.Uniform(2 * gutter),
	}
}

// safeArea is the canvas region inside the grid margins.
type safeArea struct {
	left, top     float64
	width, height float64
	canvas        layout.Dimensions
}

func newSafeArea(canvas layout.Dimensions, grid layout.GridSystem) safeArea {
	m := grid.Margin
	return safeArea{
		left:   m.Left,
		top:    m.Top,
		width:  canvas.Width - m.Left - m.Right,
		height: canvas.Height - m.Top - m.Bottom,
		canvas: canvas,
	}
}

func (a safeArea) right() float64  { return a.left + a.width }
func (a safeArea) bottom() float64 { return a.top + a.height }

// clampX keeps a box of width w horizontally inside the safe area where
// possible, preferring the left edge when it cannot fit.
func (a safeArea) clampX(x, w float64) float64 {
	return max(a.left, min(x, a.right()-w))
}

// snap rounds v to the nearest multiple of unit.
func snap(v, unit float64) float64 {
	if unit <= 0 {
		return v
	}
	return math.Round(v/unit) * unit
}

// snapUp rounds v up to the next multiple of unit.
func snapUp(v, unit float64) float64 {
	if unit <= 0 {
		return v
	}
	return math.Ceil(v/unit) * unit
}

func snapPoint(p layout.Point, grid layout.GridSystem) layout.Point {
	return layout.Point{X: snap(p.X, grid.GutterX), Y: snap(p.Y, grid.GutterY)}
}
