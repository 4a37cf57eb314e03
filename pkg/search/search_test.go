package search

import (
	"context"
	"reflect"
	"testing"

	"github.com/matzehuels/vibegrid/pkg/errors"
	"github.com/matzehuels/vibegrid/pkg/evaluate"
	"github.com/matzehuels/vibegrid/pkg/generator"
	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/vibe"
)

func minimalConfig() layout.Config {
	return layout.Config{
		ContentType: layout.ContentWeb,
		VibeID:      "minimal",
		Colors: layout.Colors{
			Primary:    "#000000",
			Secondary:  "#404040",
			Accent:     "#808080",
			Background: "#ffffff",
			Text:       "#000000",
		},
		Content:    layout.Content{Heading: "Simplicity", Subheading: "Less is more"},
		CanvasSize: layout.Dimensions{Width: 1200, Height: 800},
	}.WithSeed(0.42)
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := minimalConfig()
	a, b := Generate(cfg), Generate(cfg)

	if len(a.Elements) != len(b.Elements) {
		t.Fatalf("element counts differ: %d vs %d", len(a.Elements), len(b.Elements))
	}
	if len(a.Elements) > vibe.Get("minimal").MaxElements {
		t.Errorf("%d elements exceed the minimal budget", len(a.Elements))
	}
	if a.Score.Total != b.Score.Total {
		t.Errorf("totals differ: %d vs %d", a.Score.Total, b.Score.Total)
	}
	if !reflect.DeepEqual(a.Elements, b.Elements) {
		t.Error("elements differ between runs")
	}
	if a.ID != b.ID || a.Metadata.Seed != 0.42 {
		t.Errorf("ids %s/%s, seed %v", a.ID, b.ID, a.Metadata.Seed)
	}
}

func TestGenerateBestNeverWorse(t *testing.T) {
	for _, id := range []string{"minimal", "modern", "bold", "brutalist"} {
		cfg := minimalConfig()
		cfg.VibeID = id
		single := Generate(cfg)
		best, err := GenerateBest(context.Background(), cfg, 10)
		if err != nil {
			t.Fatalf("%s: GenerateBest: %v", id, err)
		}
		if best.Score.Total < single.Score.Total {
			t.Errorf("%s: best-of-10 scored %d, single draw %d", id, best.Score.Total, single.Score.Total)
		}
	}
}

func TestGenerateBestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := GenerateBest(ctx, minimalConfig(), 5); err == nil {
		t.Error("expected an error from a cancelled context")
	}
}

func TestFallbackGuarantee(t *testing.T) {
	cfg := minimalConfig()
	l := Generate(cfg, WithMaxIterations(0))

	if l.Metadata.Iterations != 0 || !l.Metadata.Fallback {
		t.Errorf("metadata = %+v, want zero iterations and fallback", l.Metadata)
	}
	c := vibe.Get("minimal")
	want := generator.Fallback(cfg, c, generator.Grid(cfg.CanvasSize, c))
	if !reflect.DeepEqual(l.Elements, want) {
		t.Errorf("elements = %+v, want the centered stack", l.Elements)
	}
	if l.Score.Total < 0 || l.Score.Total > 100 {
		t.Errorf("fallback total %d out of range", l.Score.Total)
	}
}

func TestAcceptedCandidatesAreValid(t *testing.T) {
	content := layout.Content{
		Heading:    "Launch day",
		Subheading: "Everything ships tonight",
		Body:       "Join us for the release and a walkthrough of what is new.",
	}
	for _, id := range vibe.IDs() {
		for seed := range 10 {
			cfg := minimalConfig()
			cfg.VibeID = id
			cfg.Content = content
			l := Generate(cfg.WithSeed(float64(seed * 97)))
			if l.Metadata.Fallback {
				continue
			}
			if !layout.ValidCandidate(l.Elements, l.Canvas) {
				t.Errorf("%s seed %d: accepted candidate overlaps or leaves the canvas", id, seed)
			}
			if l.Metadata.Iterations < 1 || l.Metadata.Iterations > DefaultMaxIterations {
				t.Errorf("%s seed %d: iterations = %d", id, seed, l.Metadata.Iterations)
			}
		}
	}
}

func TestEarlyStop(t *testing.T) {
	cfg := minimalConfig()
	c := vibe.Get("minimal")
	grid := generator.Grid(cfg.CanvasSize, c)

	firstValid := -1
	for i := range DefaultMaxIterations {
		if layout.ValidCandidate(generator.Elements(cfg, c, grid, *cfg.Seed+float64(i)), cfg.CanvasSize) {
			firstValid = i
			break
		}
	}
	if firstValid < 0 {
		t.Skip("no valid candidate for this seed")
	}

	if got := Generate(cfg, WithMinScore(0)).Metadata.Iterations; got != firstValid+1 {
		t.Errorf("min score 0: iterations = %d, want %d", got, firstValid+1)
	}
	if got := Generate(cfg, WithMinScore(101)).Metadata.Iterations; got != DefaultMaxIterations {
		t.Errorf("unreachable min score: iterations = %d, want %d", got, DefaultMaxIterations)
	}
}

func TestHierarchyMonotonicity(t *testing.T) {
	for _, id := range vibe.IDs() {
		for seed := range 20 {
			cfg := minimalConfig()
			cfg.VibeID = id
			l := Generate(cfg.WithSeed(float64(seed)))
			// A single inversion costs 10, so anything above 90 has none.
			if l.Score.Breakdown.Hierarchy <= 90 {
				continue
			}
			sorted := evaluate.ByImportance(l.Elements)
			for i := 0; i+1 < len(sorted); i++ {
				a, b := sorted[i], sorted[i+1]
				if a.Importance > b.Importance && a.Area() < 0.9*b.Area() {
					t.Errorf("%s seed %d: %s (%v) smaller than %s (%v)", id, seed, a.ID, a.Area(), b.ID, b.Area())
				}
			}
		}
	}
}

func TestCreateLayoutDispatch(t *testing.T) {
	cfg := minimalConfig()
	cfg.ContentType = layout.ContentBusinessCard
	cfg.Content.ContactInfo = []string{"jane@example.com"}
	if l := CreateLayout(cfg); l.Type != layout.ContentBusinessCard || l.Metadata.Iterations != 1 {
		t.Errorf("business card dispatch: type %s, iterations %d", l.Type, l.Metadata.Iterations)
	}

	cfg.ContentType = ""
	if l := CreateLayout(cfg); l.Type != layout.ContentWeb {
		t.Errorf("empty content type dispatched to %s, want web", l.Type)
	}
}

func TestUnknownVibeFallsBack(t *testing.T) {
	cfg := minimalConfig()
	cfg.VibeID = "does-not-exist"
	if l := Generate(cfg); l.VibeID != vibe.DefaultID {
		t.Errorf("vibe = %q, want %q", l.VibeID, vibe.DefaultID)
	}
}

func TestQuickConfig(t *testing.T) {
	cfg := QuickConfig("bold", layout.ContentWeb, layout.Content{Heading: "Mine"})
	if cfg.Content.Heading != "Mine" || cfg.Content.Body != DefaultContent.Body {
		t.Errorf("content = %+v", cfg.Content)
	}
	if cfg.Content.ContactInfo != nil {
		t.Error("web quick config should not carry contact info")
	}
	if cfg.CanvasSize != DefaultCanvas || cfg.Colors != layout.DefaultColors {
		t.Error("quick config should use the default canvas and palette")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("quick config does not validate: %v", err)
	}

	cfg = QuickConfig("bold", "poster", layout.Content{})
	if cfg.ContentType != layout.ContentWeb {
		t.Errorf("unknown content type = %q, want web", cfg.ContentType)
	}

	card := QuickConfig("bold", layout.ContentBusinessCard, layout.Content{})
	if len(card.Content.ContactInfo) != len(DefaultContent.ContactInfo) {
		t.Error("business card quick config should carry default contacts")
	}
	card.Content.ContactInfo[0] = "changed"
	if DefaultContent.ContactInfo[0] == "changed" {
		t.Error("QuickConfig aliased the default contacts")
	}
}

func TestQuickGenerate(t *testing.T) {
	l := QuickGenerate("playful", layout.ContentWeb, layout.Content{}, WithMaxIterations(5))
	if l.Type != layout.ContentWeb || l.Canvas != DefaultCanvas {
		t.Errorf("type %s canvas %+v", l.Type, l.Canvas)
	}
	if l.Metadata.Iterations > 5 {
		t.Errorf("iterations = %d, want at most 5", l.Metadata.Iterations)
	}
}

func TestBetter(t *testing.T) {
	withScore := func(total, elements int) layout.GeneratedLayout {
		return layout.GeneratedLayout{Score: layout.Score{Total: total}, Elements: make([]layout.Element, elements)}
	}
	tests := []struct {
		name string
		a, b layout.GeneratedLayout
		want bool
	}{
		{"higher score", withScore(80, 5), withScore(70, 3), true},
		{"lower score", withScore(60, 1), withScore(70, 3), false},
		{"tie, fewer elements", withScore(70, 2), withScore(70, 3), true},
		{"full tie keeps earlier", withScore(70, 3), withScore(70, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := better(tt.a, tt.b); got != tt.want {
				t.Errorf("better() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	o := NewOptions()
	if o.MaxIterations != DefaultMaxIterations || o.MinScore != DefaultMinScore || o.UseGeneticAlgorithm {
		t.Errorf("defaults = %+v", o)
	}
	if o := NewOptions(WithMaxIterations(-3)); o.MaxIterations != 0 {
		t.Errorf("negative iterations = %d, want 0", o.MaxIterations)
	}

	zero := 0
	o = NewOptions(Params{MaxIterations: &zero}.Options()...)
	if o.MaxIterations != 0 {
		t.Errorf("explicit zero iterations lost: %d", o.MaxIterations)
	}
	o = NewOptions(Params{UseGeneticAlgorithm: true}.Options()...)
	if !o.UseGeneticAlgorithm || o.PopulationSize != DefaultPopulationSize {
		t.Errorf("genetic params = %+v", o)
	}
}

func TestParamsValidate(t *testing.T) {
	neg, big := -1, 101
	rate := 1.5
	dpi := 0.0
	tests := []struct {
		name    string
		p       Params
		wantErr bool
	}{
		{"empty", Params{}, false},
		{"negative iterations", Params{MaxIterations: &neg}, true},
		{"min score above 100", Params{MinScore: &big}, true},
		{"mutation rate above 1", Params{MutationRate: &rate}, true},
		{"zero dpi", Params{DPI: &dpi}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidOptions) {
				t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidOptions)
			}
		})
	}
}
