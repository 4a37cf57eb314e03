package evaluate

import (
	"math"
	"testing"

	"github.com/matzehuels/vibegrid/pkg/layout"
)

func el(t layout.ElementType, importance int, x, y, w, h float64) layout.Element {
	return layout.Element{
		ID:         string(t),
		Type:       t,
		Importance: importance,
		Position:   layout.Point{X: x, Y: y},
		Dimensions: layout.Dimensions{Width: w, Height: h},
		Spacing:    layout.Uniform(16),
	}
}

func text(t layout.ElementType, importance int, fontSize float64, color string, x, y, w, h float64) layout.Element {
	e := el(t, importance, x, y, w, h)
	e.FontSize = fontSize
	e.Color = color
	return e
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestEmptyElements(t *testing.T) {
	canvas := layout.Dimensions{Width: 100, Height: 100}
	grid := layout.GridSystem{GutterX: 8, GutterY: 8}
	scores := map[string]float64{
		"hierarchy":    Hierarchy(nil),
		"alignment":    Alignment(nil, grid),
		"balance":      Balance(nil, canvas),
		"proximity":    Proximity(nil),
		"contrast":     Contrast(nil, "#ffffff"),
		"ruleOfThirds": RuleOfThirds(nil, canvas),
		"whitespace":   Whitespace(nil, canvas, 30),
	}
	want := map[string]float64{
		"hierarchy": 100, "alignment": 100, "balance": 100, "proximity": 100,
		"contrast": 100, "ruleOfThirds": 50, "whitespace": 70,
	}
	for name, got := range scores {
		if got != want[name] {
			t.Errorf("%s(empty) = %v, want %v", name, got, want[name])
		}
	}
}

func TestHierarchy(t *testing.T) {
	tests := []struct {
		name     string
		elements []layout.Element
		want     float64
	}{
		{
			"harmonic",
			[]layout.Element{
				text(layout.TypeHeading, 10, 60, "", 0, 0, 200, 100),
				text(layout.TypeSubheading, 7, 30, "", 0, 0, 200, 50),
			},
			100,
		},
		{
			"inverted",
			[]layout.Element{
				text(layout.TypeHeading, 10, 20, "", 0, 0, 100, 50),
				text(layout.TypeSubheading, 7, 30, "", 0, 0, 200, 50),
			},
			77, // inversion 10, ratio 0.5 off by 0.5, font 8
		},
		{
			"off ratio",
			[]layout.Element{
				el(layout.TypeShape, 2, 0, 0, 250, 100),
				el(layout.TypePattern, 1, 0, 0, 100, 100),
			},
			95,
		},
		{
			"equal importance is not a hierarchy",
			[]layout.Element{
				text(layout.TypeBody, 5, 16, "", 0, 0, 10, 10),
				text(layout.TypeBody, 5, 20, "", 0, 0, 100, 100),
			},
			100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hierarchy(tt.elements); got != tt.want {
				t.Errorf("Hierarchy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestByImportanceStable(t *testing.T) {
	in := []layout.Element{
		{ID: "a", Importance: 1},
		{ID: "b", Importance: 5},
		{ID: "c", Importance: 1},
		{ID: "d", Importance: 10},
	}
	got := ByImportance(in)
	want := []string{"d", "b", "a", "c"}
	for i, e := range got {
		if e.ID != want[i] {
			t.Fatalf("order = %v, want %v", ids(got), want)
		}
	}
	if in[0].ID != "a" {
		t.Error("ByImportance mutated its input")
	}
}

func ids(els []layout.Element) []string {
	out := make([]string, len(els))
	for i, e := range els {
		out[i] = e.ID
	}
	return out
}

func TestWhitespace(t *testing.T) {
	canvas := layout.Dimensions{Width: 100, Height: 100}
	tight := el(layout.TypeBody, 5, 0, 0, 90, 100)
	tight.Spacing = layout.Spacing{}

	tests := []struct {
		name     string
		elements []layout.Element
		min      float64
		want     float64
	}{
		{"comfortable", []layout.Element{el(layout.TypeBody, 5, 0, 0, 50, 100)}, 30, 100},
		{"too empty", nil, 30, 70},
		{"crowded and tight", []layout.Element{tight}, 30, 55},
		{"default minimum", []layout.Element{el(layout.TypeBody, 5, 0, 0, 80, 100)}, 0, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Whitespace(tt.elements, canvas, tt.min); !approx(got, tt.want) {
				t.Errorf("Whitespace() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := Whitespace(nil, layout.Dimensions{}, 30); got != 0 {
		t.Errorf("Whitespace(zero canvas) = %v, want 0", got)
	}
}

func TestAlignment(t *testing.T) {
	grid := layout.GridSystem{GutterX: 8, GutterY: 8}
	tests := []struct {
		name     string
		elements []layout.Element
		want     float64
	}{
		{"snapped", []layout.Element{el(layout.TypeBody, 5, 8, 16, 100, 10)}, 100},
		{"half gutter off", []layout.Element{el(layout.TypeBody, 5, 4, 0, 100, 10)}, 95},
		{"quarter gutter off", []layout.Element{el(layout.TypeBody, 5, 2, 8, 100, 10)}, 97.5},
		{
			"shared edges reward",
			[]layout.Element{
				el(layout.TypeHeading, 10, 4, 0, 100, 10),
				el(layout.TypeBody, 5, 4, 96, 100, 10),
			},
			96, // two half-gutter offsets, three shared lines
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Alignment(tt.elements, grid); !approx(got, tt.want) {
				t.Errorf("Alignment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name     string
		canvas   layout.Dimensions
		elements []layout.Element
		want     float64
	}{
		{
			"all on the left",
			layout.Dimensions{Width: 200, Height: 100},
			[]layout.Element{el(layout.TypeShape, 1, 0, 0, 50, 100)},
			50,
		},
		{
			"mirrored",
			layout.Dimensions{Width: 200, Height: 100},
			[]layout.Element{
				el(layout.TypeShape, 1, 10, 10, 50, 30),
				el(layout.TypeShape, 1, 140, 60, 50, 30),
			},
			100,
		},
		{
			"lighter side at 30%",
			layout.Dimensions{Width: 220, Height: 10},
			[]layout.Element{
				el(layout.TypeShape, 1, 0, 0, 30, 10),
				el(layout.TypeShape, 1, 110, 0, 100, 10),
			},
			75,
		},
		{
			"straddler split by extent",
			layout.Dimensions{Width: 200, Height: 100},
			[]layout.Element{el(layout.TypeShape, 1, 70, 0, 100, 100)},
			600.0 / 7, // 30/70 horizontally, even vertically
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Balance(tt.elements, tt.canvas); !approx(got, tt.want) {
				t.Errorf("Balance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProximity(t *testing.T) {
	far := []layout.Element{
		el(layout.TypeShape, 1, 0, 0, 10, 10),
		el(layout.TypeShape, 1, 300, 0, 10, 10),
	}
	if got := Proximity(far); got != 95 {
		t.Errorf("Proximity(scattered) = %v, want 95", got)
	}
	crowded := []layout.Element{
		el(layout.TypeHeading, 10, 0, 0, 10, 10),
		el(layout.TypeBody, 5, 20, 0, 10, 10),
	}
	if got := Proximity(crowded); got != 97 {
		t.Errorf("Proximity(crowded) = %v, want 97", got)
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		name     string
		elements []layout.Element
		bg       string
		want     float64
	}{
		{
			"black on white",
			[]layout.Element{text(layout.TypeHeading, 10, 60, "#000000", 0, 0, 10, 10)},
			"#ffffff",
			100,
		},
		{
			"gray focal element",
			[]layout.Element{text(layout.TypeHeading, 10, 60, "#777777", 0, 0, 10, 10)},
			"#ffffff",
			80, // passes the large-text threshold, fails the focal check
		},
		{
			"small gray body",
			[]layout.Element{
				text(layout.TypeHeading, 10, 60, "#000000", 0, 0, 10, 10),
				text(layout.TypeBody, 5, 16, "#777777", 0, 0, 10, 10),
			},
			"#ffffff",
			90,
		},
		{
			"invalid color reads as black",
			[]layout.Element{text(layout.TypeHeading, 10, 60, "nope", 0, 0, 10, 10)},
			"#000000",
			65,
		},
		{
			"decorations are not text",
			[]layout.Element{
				text(layout.TypeHeading, 10, 60, "#000000", 0, 0, 10, 10),
				el(layout.TypeShape, 2, 0, 0, 10, 10),
			},
			"#ffffff",
			100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contrast(tt.elements, tt.bg); got != tt.want {
				t.Errorf("Contrast() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRuleOfThirds(t *testing.T) {
	canvas := layout.Dimensions{Width: 900, Height: 600}
	onPoint := el(layout.TypeHeading, 10, 250, 180, 100, 40) // center (300, 200)
	minor := el(layout.TypeBody, 5, 550, 380, 100, 40)       // center (600, 400)

	if got := RuleOfThirds([]layout.Element{onPoint}, canvas); got != 65 {
		t.Errorf("focal on intersection = %v, want 65", got)
	}
	if got := RuleOfThirds([]layout.Element{minor}, canvas); got != 50 {
		t.Errorf("minor element on intersection = %v, want 50", got)
	}

	var many []layout.Element
	for _, p := range ThirdsPoints(canvas) {
		many = append(many, el(layout.TypeHeading, 10, p.X-5, p.Y-5, 10, 10))
	}
	if got := RuleOfThirds(many, canvas); got != 100 {
		t.Errorf("four focal elements = %v, want clamped 100", got)
	}
}
