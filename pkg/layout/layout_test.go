package layout

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/matzehuels/vibegrid/pkg/errors"
)

func box(x, y, w, h float64) Element {
	return Element{
		Type:       TypeShape,
		Position:   Point{X: x, Y: y},
		Dimensions: Dimensions{Width: w, Height: h},
	}
}

func TestHasOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Element
		want bool
	}{
		{"disjoint horizontally", box(0, 0, 10, 10), box(20, 0, 10, 10), false},
		{"disjoint vertically", box(0, 0, 10, 10), box(0, 30, 10, 10), false},
		{"touching right edge", box(0, 0, 10, 10), box(10, 0, 10, 10), false},
		{"touching bottom edge", box(0, 0, 10, 10), box(0, 10, 10, 10), false},
		{"touching corner", box(0, 0, 10, 10), box(10, 10, 10, 10), false},
		{"partial overlap", box(0, 0, 10, 10), box(5, 5, 10, 10), true},
		{"contained", box(0, 0, 100, 100), box(10, 10, 5, 5), true},
		{"identical", box(3, 3, 4, 4), box(3, 3, 4, 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("HasOverlap() = %v, want %v", got, tt.want)
			}
			if got := HasOverlap(tt.b, tt.a); got != tt.want {
				t.Errorf("HasOverlap() not symmetric: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsWithinBounds(t *testing.T) {
	canvas := Dimensions{Width: 100, Height: 50}
	tests := []struct {
		name string
		e    Element
		want bool
	}{
		{"inside", box(10, 10, 20, 20), true},
		{"exact fit", box(0, 0, 100, 50), true},
		{"negative x", box(-1, 0, 10, 10), false},
		{"negative y", box(0, -1, 10, 10), false},
		{"past right", box(95, 0, 10, 10), false},
		{"past bottom", box(0, 45, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWithinBounds(tt.e, canvas); got != tt.want {
				t.Errorf("IsWithinBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidCandidate(t *testing.T) {
	canvas := Dimensions{Width: 100, Height: 100}
	ok := []Element{box(0, 0, 10, 10), box(10, 0, 10, 10), box(50, 50, 20, 20)}
	if !ValidCandidate(ok, canvas) {
		t.Error("non-overlapping in-bounds elements should be valid")
	}
	if ValidCandidate(append(ok, box(55, 55, 5, 5)), canvas) {
		t.Error("overlapping elements should be invalid")
	}
	if ValidCandidate([]Element{box(90, 90, 20, 20)}, canvas) {
		t.Error("out-of-bounds element should be invalid")
	}
	if !ValidCandidate(nil, canvas) {
		t.Error("empty candidate should be valid")
	}
}

func TestInset(t *testing.T) {
	canvas := Dimensions{Width: 100, Height: 100}
	margin := Uniform(10)
	if !Inset(box(10, 10, 80, 80), canvas, margin) {
		t.Error("box on the margin line should be inset")
	}
	if Inset(box(5, 10, 20, 20), canvas, margin) {
		t.Error("box crossing the left margin should not be inset")
	}
}

func TestGap(t *testing.T) {
	tests := []struct {
		name string
		a, b Element
		want float64
	}{
		{"overlapping", box(0, 0, 10, 10), box(5, 5, 10, 10), 0},
		{"horizontal gap", box(0, 0, 10, 10), box(15, 0, 10, 10), 5},
		{"vertical gap", box(0, 0, 10, 10), box(0, 18, 10, 10), 8},
		{"diagonal gap", box(0, 0, 10, 10), box(13, 14, 10, 10), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gap(tt.a, tt.b); got != tt.want {
				t.Errorf("Gap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElementTypeClassification(t *testing.T) {
	for _, et := range ElementTypes {
		if !et.Valid() {
			t.Errorf("%s should be valid", et)
		}
	}
	if ElementType("sticker").Valid() {
		t.Error("unknown type should be invalid")
	}
	if !TypeHeading.IsText() || TypeShape.IsText() {
		t.Error("IsText misclassifies heading/shape")
	}
	if !TypePattern.IsDecorative() || TypeLogo.IsDecorative() {
		t.Error("IsDecorative misclassifies pattern/logo")
	}
}

func validConfig() Config {
	return Config{
		ContentType: ContentWeb,
		VibeID:      "minimal",
		Colors:      DefaultColors,
		Content:     Content{Heading: "Simplicity", Subheading: "Less is more"},
		CanvasSize:  Dimensions{Width: 1200, Height: 800},
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   errors.Code
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown vibe is fine", func(c *Config) { c.VibeID = "whatever" }, ""},
		{"zero width", func(c *Config) { c.CanvasSize.Width = 0 }, errors.ErrCodeInvalidCanvas},
		{"negative height", func(c *Config) { c.CanvasSize.Height = -1 }, errors.ErrCodeInvalidCanvas},
		{"business card ignores canvas", func(c *Config) {
			c.ContentType = ContentBusinessCard
			c.CanvasSize = Dimensions{}
		}, ""},
		{"bad content type", func(c *Config) { c.ContentType = "poster" }, errors.ErrCodeInvalidContentType},
		{"bad color", func(c *Config) { c.Colors.Accent = "chartreuse" }, errors.ErrCodeInvalidColor},
		{"bad vibe id", func(c *Config) { c.VibeID = "two words" }, errors.ErrCodeInvalidVibe},
		{"control char content", func(c *Config) { c.Content.Body = "a\x00b" }, errors.ErrCodeInvalidInput},
		{"control char contact", func(c *Config) { c.Content.ContactInfo = []string{"\x01"} }, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestFingerprintIgnoresSeed(t *testing.T) {
	a := validConfig().WithSeed(1)
	b := validConfig().WithSeed(2)
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("fingerprint should not depend on seed")
	}
	c := validConfig()
	c.Content.Heading = "Other"
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("fingerprint should depend on content")
	}
	if *a.Seed != 1 {
		t.Error("Fingerprint must not clear the caller's seed")
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := GeneratedLayout{
		ID:     "abc",
		Type:   ContentWeb,
		VibeID: "minimal",
		Canvas: Dimensions{Width: 100, Height: 100},
		Elements: []Element{{
			ID: "heading", Type: TypeHeading, Importance: 10,
			Position: Point{X: 8, Y: 8}, Dimensions: Dimensions{Width: 40, Height: 20},
		}},
		Score: Score{Total: 77, Issues: []string{}, Suggestions: []string{}},
	}

	path := filepath.Join(t.TempDir(), "layout.json")
	if err := WriteFile(l, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.ID != l.ID || len(got.Elements) != 1 || got.Elements[0] != l.Elements[0] || got.Score.Total != 77 {
		t.Errorf("round trip mismatch: %+v", got)
	}

	var buf bytes.Buffer
	if err := Write(l, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"type": "heading"`)) {
		t.Errorf("element type not serialized as string: %s", buf.String())
	}
}

func TestUnmarshalRejectsUnknownType(t *testing.T) {
	data := []byte(`{"elements":[{"id":"x","type":"sticker"}]}`)
	if _, err := Unmarshal(data); err == nil {
		t.Error("expected error for unknown element type")
	}
}

func TestNewID(t *testing.T) {
	fp := validConfig().Fingerprint()
	a, b := NewID(fp, 0.42), NewID(fp, 0.42)
	if a != b {
		t.Errorf("NewID not stable: %s != %s", a, b)
	}
	if a == NewID(fp, 0.43) {
		t.Error("NewID should depend on the seed")
	}
	if len(a) != 36 {
		t.Errorf("NewID = %q, want a UUID string", a)
	}
}
