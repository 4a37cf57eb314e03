package layout

import (
	"github.com/matzehuels/vibegrid/pkg/errors"
	"github.com/matzehuels/vibegrid/pkg/palette"
)

// ContentType selects which generator handles a request.
type ContentType string

// Content types.
const (
	ContentWeb          ContentType = "web"
	ContentBusinessCard ContentType = "business-card"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	return t == ContentWeb || t == ContentBusinessCard
}

// Colors is the five-color palette of a request.
type Colors struct {
	Primary    string `json:"primary" bson:"primary" toml:"primary"`
	Secondary  string `json:"secondary" bson:"secondary" toml:"secondary"`
	Accent     string `json:"accent" bson:"accent" toml:"accent"`
	Background string `json:"background" bson:"background" toml:"background"`
	Text       string `json:"text" bson:"text" toml:"text"`
}

// DefaultColors is the palette used by convenience entry points.
var DefaultColors = Colors{
	Primary:    "#1a1a2e",
	Secondary:  "#16213e",
	Accent:     "#e94560",
	Background: "#ffffff",
	Text:       "#1a1a1a",
}

// Content holds the optional text payload. Missing fields omit the
// corresponding element.
type Content struct {
	Heading     string   `json:"heading,omitempty" bson:"heading,omitempty" toml:"heading"`
	Subheading  string   `json:"subheading,omitempty" bson:"subheading,omitempty" toml:"subheading"`
	Body        string   `json:"body,omitempty" bson:"body,omitempty" toml:"body"`
	ContactInfo []string `json:"contact_info,omitempty" bson:"contact_info,omitempty" toml:"contact_info"`
}

// Config is a layout generation request.
//
// Seed is optional: nil means a fresh random seed per call, so the result is
// not reproducible. CanvasSize must have positive sides; the generator does
// not guard this, callers should run [Config.Validate] first.
type Config struct {
	ContentType ContentType `json:"content_type" bson:"content_type" toml:"content_type"`
	VibeID      string      `json:"vibe_id" bson:"vibe_id" toml:"vibe_id"`
	Colors      Colors      `json:"colors" bson:"colors" toml:"colors"`
	Content     Content     `json:"content" bson:"content" toml:"content"`
	CanvasSize  Dimensions  `json:"canvas_size" bson:"canvas_size" toml:"canvas_size"`
	Seed        *float64    `json:"seed,omitempty" bson:"seed,omitempty" toml:"seed"`
}

// WithSeed returns a copy of c with the seed set.
func (c Config) WithSeed(seed float64) Config {
	c.Seed = &seed
	return c
}

// Validate checks the request for the preconditions the core relies on.
// Unknown vibe ids are accepted (they resolve to the default profile).
func (c *Config) Validate() error {
	if c.ContentType != "" && !c.ContentType.Valid() {
		return errors.New(errors.ErrCodeInvalidContentType,
			"invalid content_type: %q (must be one of: web, business-card)", c.ContentType)
	}
	if err := errors.ValidateVibeID(c.VibeID); err != nil {
		return err
	}
	// Business cards derive their canvas from physical dimensions.
	if c.ContentType != ContentBusinessCard {
		if err := errors.ValidateDimension("width", c.CanvasSize.Width); err != nil {
			return err
		}
		if err := errors.ValidateDimension("height", c.CanvasSize.Height); err != nil {
			return err
		}
	}
	colors := []struct{ name, value string }{
		{"primary", c.Colors.Primary},
		{"secondary", c.Colors.Secondary},
		{"accent", c.Colors.Accent},
		{"background", c.Colors.Background},
		{"text", c.Colors.Text},
	}
	for _, col := range colors {
		if col.value != "" && !palette.Valid(col.value) {
			return errors.New(errors.ErrCodeInvalidColor, "invalid %s color: %q", col.name, col.value)
		}
	}
	fields := []struct{ name, value string }{
		{"heading", c.Content.Heading},
		{"subheading", c.Content.Subheading},
		{"body", c.Content.Body},
	}
	for _, f := range fields {
		if err := errors.ValidateContent(f.name, f.value); err != nil {
			return err
		}
	}
	for _, line := range c.Content.ContactInfo {
		if err := errors.ValidateContent("contact_info", line); err != nil {
			return err
		}
	}
	return nil
}
