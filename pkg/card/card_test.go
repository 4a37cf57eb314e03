package card

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/rng"
	"github.com/matzehuels/vibegrid/pkg/vibe"
)

func cardConfig(vibeID string, contacts int) layout.Config {
	cfg := layout.Config{
		ContentType: layout.ContentBusinessCard,
		VibeID:      vibeID,
		Colors:      layout.DefaultColors,
		Content: layout.Content{
			Heading:    "Jane Doe",
			Subheading: "Product Designer",
		},
	}
	for i := range contacts {
		cfg.Content.ContactInfo = append(cfg.Content.ContactInfo, fmt.Sprintf("contact line %d", i+1))
	}
	return cfg.WithSeed(0.42)
}

func TestUnits(t *testing.T) {
	if got := MMToPx(25.4, 300); math.Abs(got-300) > 1e-9 {
		t.Errorf("MMToPx(25.4, 300) = %v, want 300", got)
	}
	if got := PtToPx(72, 300); got != 300 {
		t.Errorf("PtToPx(72, 300) = %v, want 300", got)
	}
	c := Canvas(DefaultDPI)
	if math.Abs(c.Width-1050) > 1e-6 || math.Abs(c.Height-600) > 1e-6 {
		t.Errorf("Canvas(300) = %+v, want 1050x600", c)
	}
}

func TestGrid(t *testing.T) {
	g := Grid(DefaultDPI)
	if g.Columns != 3 || g.Rows != 3 {
		t.Errorf("grid = %dx%d, want 3x3", g.Columns, g.Rows)
	}
	if want := MMToPx(SafeZoneMM, DefaultDPI); g.Margin != layout.Uniform(want) {
		t.Errorf("margin = %+v, want uniform %v", g.Margin, want)
	}
}

func TestSafeZone(t *testing.T) {
	for _, id := range []string{"minimal", "modern", "bold", "luxury"} {
		for _, contacts := range []int{0, 3, 12} {
			for _, dpi := range []float64{150, 300, 600} {
				cfg := cardConfig(id, contacts)
				l := Generate(cfg, Options{DPI: dpi})
				margin := layout.Uniform(MMToPx(SafeZoneMM, dpi))
				for _, e := range l.Elements {
					if !layout.Inset(e, l.Canvas, margin) {
						t.Errorf("%s/%d contacts/%v dpi: %s at %+v %+v leaves the safe zone",
							id, contacts, dpi, e.ID, e.Position, e.Dimensions)
					}
				}
				if !layout.ValidCandidate(l.Elements, l.Canvas) {
					t.Errorf("%s/%d contacts/%v dpi: elements overlap", id, contacts, dpi)
				}
			}
		}
	}
}

func TestGenerate(t *testing.T) {
	cfg := cardConfig("corporate", 3)
	l := Generate(cfg, Options{})

	if l.Type != layout.ContentBusinessCard {
		t.Errorf("type = %s, want business-card", l.Type)
	}
	if l.Metadata.Iterations != 1 || l.Metadata.Seed != 0.42 {
		t.Errorf("metadata = %+v, want one iteration with seed 0.42", l.Metadata)
	}
	if l.Score.Total < 0 || l.Score.Total > 100 {
		t.Errorf("total %d out of range", l.Score.Total)
	}

	want := []string{IDName, IDTitle, "contact-1", "contact-2", "contact-3"}
	got := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		got[i] = e.ID
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ids = %v, want %v (corporate has no logo)", got, want)
	}

	name, _ := l.Element(IDName)
	title, _ := l.Element(IDTitle)
	contact, _ := l.Element("contact-1")
	if !(name.FontSize > title.FontSize && title.FontSize > contact.FontSize) {
		t.Errorf("font sizes not descending: %v %v %v", name.FontSize, title.FontSize, contact.FontSize)
	}
	if gap := title.Top() - name.Bottom(); math.Abs(gap-MMToPx(GapMM, DefaultDPI)) > 1e-9 {
		t.Errorf("gap between name and title = %v, want 2mm", gap)
	}
}

func TestDeterministic(t *testing.T) {
	cfg := cardConfig("modern", 4)
	a, b := Generate(cfg, Options{}), Generate(cfg, Options{})
	if !reflect.DeepEqual(a.Elements, b.Elements) || a.Score.Total != b.Score.Total || a.ID != b.ID {
		t.Error("same seed produced different cards")
	}
}

func TestOverflowColumn(t *testing.T) {
	cfg := cardConfig("modern", 10)
	c := vibe.Get("modern")
	els := Elements(cfg, c, DefaultDPI, 0.42)
	canvas := Canvas(DefaultDPI)

	secondColumn := 0
	contacts := 0
	for _, e := range els {
		if e.Type != layout.TypeBody {
			continue
		}
		contacts++
		if e.Left() >= canvas.Width/2-1e-9 && e.Top() >= canvas.Height/2-1e-9 {
			secondColumn++
		}
	}
	if secondColumn == 0 {
		t.Error("expected overflowing contacts to continue in a second column")
	}
	if contacts >= 10 {
		t.Errorf("placed %d contacts, expected the last ones to be dropped", contacts)
	}
}

func TestLogo(t *testing.T) {
	seen := false
	for seed := range 30 {
		cfg := cardConfig("modern", 2).WithSeed(float64(seed))
		for _, e := range Generate(cfg, Options{}).Elements {
			if e.ID == IDLogo {
				seen = true
				if e.Type != layout.TypeLogo {
					t.Errorf("logo type = %s", e.Type)
				}
			}
		}
	}
	if !seen {
		t.Error("modern cards never got a logo")
	}

	for _, e := range Generate(cardConfig("minimal", 2), Options{}).Elements {
		if e.ID == IDLogo {
			t.Error("minimal vibe should not place a logo")
		}
	}
}

// seedForAnchor returns the first seed whose logo lands on anchor.
func seedForAnchor(t *testing.T, anchor string) float64 {
	t.Helper()
	for seed := range 1000 {
		if rng.Pick(rng.New(float64(seed)), LogoPositions) == anchor {
			return float64(seed)
		}
	}
	t.Fatalf("no seed picks the %s anchor", anchor)
	return 0
}

func TestLogoDroppedOnCollision(t *testing.T) {
	c := vibe.Get("modern")
	if !c.Preferences.DecorativeElements {
		t.Fatal("modern should allow decorations")
	}
	seed := seedForAnchor(t, "center")
	canvas := Canvas(DefaultDPI)
	safe := MMToPx(SafeZoneMM, DefaultDPI)

	// A full-width text stack runs through the middle of the card.
	cfg := cardConfig("modern", 0)
	for i := range 4 {
		cfg.Content.ContactInfo = append(cfg.Content.ContactInfo,
			fmt.Sprintf("%d %s", i, strings.Repeat("studio.example.com ", 3)))
	}
	els := Elements(cfg, c, DefaultDPI, seed)

	logo, ok := placeLogo(canvas, safe, MMToPx(LogoMM, DefaultDPI), cfg.Colors.Accent, rng.New(seed))
	if !ok {
		t.Fatal("placeLogo refused a logo that fits")
	}
	var text []layout.Element
	for _, e := range els {
		if e.ID != IDLogo {
			text = append(text, e)
		}
	}
	if !layout.OverlapsAny(logo, text) {
		t.Fatalf("centered logo at %+v does not meet the text stack", logo.Position)
	}
	for _, e := range els {
		if e.ID == IDLogo {
			t.Errorf("colliding logo kept at %+v", e.Position)
		}
	}

	// Same seed, short copy: the anchor is free and the logo stays.
	short := cardConfig("modern", 0)
	short.Content.Subheading = ""
	kept := false
	for _, e := range Elements(short, c, DefaultDPI, seed) {
		kept = kept || e.ID == IDLogo
	}
	if !kept {
		t.Error("logo dropped although the center anchor was free")
	}
}

func TestElementsNeverOverlap(t *testing.T) {
	for _, v := range vibe.All() {
		for seed := range 50 {
			for contacts := range 6 {
				els := Elements(cardConfig(v.ID, contacts), v, DefaultDPI, float64(seed))
				if !layout.ValidCandidate(els, Canvas(DefaultDPI)) {
					t.Fatalf("%s seed %d contacts %d: elements overlap or leave the card", v.ID, seed, contacts)
				}
			}
		}
	}
}
