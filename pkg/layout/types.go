package layout

import (
	"math"
	"time"
)

// =============================================================================
// Geometry
// =============================================================================

// Point is a position in canvas pixels, origin top-left.
type Point struct {
	X float64 `json:"x" bson:"x" toml:"x"`
	Y float64 `json:"y" bson:"y" toml:"y"`
}

// Dimensions is a width/height pair in pixels.
type Dimensions struct {
	Width  float64 `json:"width" bson:"width" toml:"width"`
	Height float64 `json:"height" bson:"height" toml:"height"`
}

// Area returns Width*Height.
func (d Dimensions) Area() float64 { return d.Width * d.Height }

// Valid reports whether both sides are strictly positive.
func (d Dimensions) Valid() bool { return d.Width > 0 && d.Height > 0 }

// Spacing holds per-side distances, used both for element breathing room and
// grid margins.
type Spacing struct {
	Top    float64 `json:"top" bson:"top" toml:"top"`
	Right  float64 `json:"right" bson:"right" toml:"right"`
	Bottom float64 `json:"bottom" bson:"bottom" toml:"bottom"`
	Left   float64 `json:"left" bson:"left" toml:"left"`
}

// Uniform returns a Spacing with the same value on every side.
func Uniform(v float64) Spacing { return Spacing{Top: v, Right: v, Bottom: v, Left: v} }

// Min returns the smallest of the four sides.
func (s Spacing) Min() float64 { return min(s.Top, s.Right, s.Bottom, s.Left) }

// =============================================================================
// Element
// =============================================================================

// ElementType is the closed set of element kinds a layout may contain.
type ElementType string

// Element types.
const (
	TypeHeading    ElementType = "heading"
	TypeSubheading ElementType = "subheading"
	TypeBody       ElementType = "body"
	TypeImage      ElementType = "image"
	TypeLogo       ElementType = "logo"
	TypeButton     ElementType = "button"
	TypeDivider    ElementType = "divider"
	TypeShape      ElementType = "shape"
	TypePattern    ElementType = "pattern"
)

// ElementTypes lists every valid element type in declaration order.
var ElementTypes = []ElementType{
	TypeHeading, TypeSubheading, TypeBody, TypeImage, TypeLogo,
	TypeButton, TypeDivider, TypeShape, TypePattern,
}

// Valid reports whether t is one of the declared element types.
func (t ElementType) Valid() bool {
	switch t {
	case TypeHeading, TypeSubheading, TypeBody, TypeImage, TypeLogo,
		TypeButton, TypeDivider, TypeShape, TypePattern:
		return true
	}
	return false
}

// IsText reports whether elements of this type carry readable text and are
// therefore subject to contrast and font-size hierarchy checks.
func (t ElementType) IsText() bool {
	switch t {
	case TypeHeading, TypeSubheading, TypeBody:
		return true
	}
	return false
}

// IsDecorative reports whether t is a purely decorative type.
func (t ElementType) IsDecorative() bool {
	switch t {
	case TypeDivider, TypeShape, TypePattern:
		return true
	}
	return false
}

// Alignment is the horizontal text alignment hint for an element.
type Alignment string

// Alignments.
const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Element is one placed visual unit. Elements are values: the search loop
// replaces whole candidates rather than mutating elements in place.
type Element struct {
	ID         string      `json:"id" bson:"id"`
	Type       ElementType `json:"type" bson:"type"`
	Position   Point       `json:"position" bson:"position"`
	Dimensions Dimensions  `json:"dimensions" bson:"dimensions"`
	Spacing    Spacing     `json:"spacing" bson:"spacing"`
	FontSize   float64     `json:"font_size,omitempty" bson:"font_size,omitempty"`
	FontWeight int         `json:"font_weight,omitempty" bson:"font_weight,omitempty"`
	Color      string      `json:"color,omitempty" bson:"color,omitempty"`
	Alignment  Alignment   `json:"alignment,omitempty" bson:"alignment,omitempty"`
	ZIndex     int         `json:"z_index" bson:"z_index"`
	Content    string      `json:"content,omitempty" bson:"content,omitempty"`
	Importance int         `json:"importance" bson:"importance"`
}

// Area returns the element's box area.
func (e Element) Area() float64 { return e.Dimensions.Area() }

// Left returns the left edge x coordinate.
func (e Element) Left() float64 { return e.Position.X }

// Right returns the right edge x coordinate.
func (e Element) Right() float64 { return e.Position.X + e.Dimensions.Width }

// Top returns the top edge y coordinate.
func (e Element) Top() float64 { return e.Position.Y }

// Bottom returns the bottom edge y coordinate.
func (e Element) Bottom() float64 { return e.Position.Y + e.Dimensions.Height }

// Center returns the center point of the element's box.
func (e Element) Center() Point {
	return Point{
		X: e.Position.X + e.Dimensions.Width/2,
		Y: e.Position.Y + e.Dimensions.Height/2,
	}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Gap returns the shortest distance between the boxes of a and b, or 0 when
// their boxes touch or intersect.
func Gap(a, b Element) float64 {
	dx := max(0, b.Left()-a.Right(), a.Left()-b.Right())
	dy := max(0, b.Top()-a.Bottom(), a.Top()-b.Bottom())
	return math.Hypot(dx, dy)
}

// =============================================================================
// Grid
// =============================================================================

// GridSystem describes the column/row structure a candidate was placed on.
type GridSystem struct {
	Columns int     `json:"columns" bson:"columns"`
	Rows    int     `json:"rows" bson:"rows"`
	GutterX float64 `json:"gutter_x" bson:"gutter_x"`
	GutterY float64 `json:"gutter_y" bson:"gutter_y"`
	Margin  Spacing `json:"margin" bson:"margin"`
}

// =============================================================================
// Score
// =============================================================================

// Breakdown holds one 0-100 sub-score per design principle.
type Breakdown struct {
	Hierarchy     float64 `json:"hierarchy" bson:"hierarchy"`
	Whitespace    float64 `json:"whitespace" bson:"whitespace"`
	Alignment     float64 `json:"alignment" bson:"alignment"`
	Balance       float64 `json:"balance" bson:"balance"`
	Proximity     float64 `json:"proximity" bson:"proximity"`
	Contrast      float64 `json:"contrast" bson:"contrast"`
	RuleOfThirds  float64 `json:"rule_of_thirds" bson:"rule_of_thirds"`
	VibeAdherence float64 `json:"vibe_adherence" bson:"vibe_adherence"`
}

// Score is the aggregated evaluation of one candidate.
type Score struct {
	Total       int       `json:"total" bson:"total"`
	Breakdown   Breakdown `json:"breakdown" bson:"breakdown"`
	Issues      []string  `json:"issues" bson:"issues"`
	Suggestions []string  `json:"suggestions" bson:"suggestions"`
}

// =============================================================================
// Generated layout
// =============================================================================

// Metadata records how a layout was produced.
type Metadata struct {
	GeneratedAt time.Time `json:"generated_at" bson:"generated_at"`
	Seed        float64   `json:"seed" bson:"seed"`
	Iterations  int       `json:"iterations" bson:"iterations"`
	Fallback    bool      `json:"fallback,omitempty" bson:"fallback,omitempty"`
}

// GeneratedLayout is the final artifact returned to callers.
type GeneratedLayout struct {
	ID       string      `json:"id" bson:"id"`
	Type     ContentType `json:"type" bson:"type"`
	VibeID   string      `json:"vibe_id" bson:"vibe_id"`
	Canvas   Dimensions  `json:"canvas" bson:"canvas"`
	Elements []Element   `json:"elements" bson:"elements"`
	Grid     GridSystem  `json:"grid" bson:"grid"`
	Score    Score       `json:"score" bson:"score"`
	Metadata Metadata    `json:"metadata" bson:"metadata"`
}

// Element returns the element with the given id.
func (l *GeneratedLayout) Element(id string) (Element, bool) {
	for _, e := range l.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}
