// Package card generates print business card layouts.
//
// Unlike web layouts, a card is not searched: the canvas comes from the
// physical card size at a given DPI, the safe zone becomes the grid margin,
// and text is stacked by importance (name, title, contact lines) with a
// fixed gap. When the stack would cross the bottom safe zone it continues in
// a second column starting at mid-height. An optional logo is placed at one
// of seven canonical positions chosen with the seeded generator and dropped
// if it collides with text. The result is scored once.
package card

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/matzehuels/vibegrid/pkg/generator"
	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/rng"
	"github.com/matzehuels/vibegrid/pkg/scoring"
	"github.com/matzehuels/vibegrid/pkg/vibe"
)

// Font scale relative to the base size.
const (
	BaseFontPt   = 10
	NameScale    = 2.0
	TitleScale   = 1.2
	ContactScale = 0.9
	lineHeight   = 1.2
)

// Element ids.
const (
	IDName  = "name"
	IDTitle = "title"
	IDLogo  = "logo"
)

// Options tunes card generation.
type Options struct {
	// DPI is the print resolution. Zero means DefaultDPI.
	DPI float64 `json:"dpi,omitempty"`
}

func (o *Options) setDefaults() {
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
}

// Canvas returns the card size in pixels at dpi.
func Canvas(dpi float64) layout.Dimensions {
	return layout.Dimensions{Width: MMToPx(WidthMM, dpi), Height: MMToPx(HeightMM, dpi)}
}

// Grid returns the fixed 3x3 card grid with safe-zone margins.
func Grid(dpi float64) layout.GridSystem {
	gutter := MMToPx(GutterMM, dpi)
	return layout.GridSystem{
		Columns: 3,
		Rows:    3,
		GutterX: gutter,
		GutterY: gutter,
		Margin:  layout.Uniform(MMToPx(SafeZoneMM, dpi)),
	}
}

// Generate builds and scores a business card layout. cfg.CanvasSize is
// ignored. The seed only affects logo placement; when cfg.Seed is nil a
// random one is drawn.
func Generate(cfg layout.Config, opts Options) layout.GeneratedLayout {
	opts.setDefaults()
	c := vibe.Get(cfg.VibeID)
	seed := float64(rand.IntN(rng.Modulus))
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	canvas := Canvas(opts.DPI)
	grid := Grid(opts.DPI)
	elements := Elements(cfg, c, opts.DPI, seed)

	return layout.GeneratedLayout{
		ID:       layout.NewID(cfg.Fingerprint(), seed),
		Type:     layout.ContentBusinessCard,
		VibeID:   c.ID,
		Canvas:   canvas,
		Elements: elements,
		Grid:     grid,
		Score:    scoring.Evaluate(elements, grid, canvas, c, cfg.Colors.Background),
		Metadata: layout.Metadata{
			GeneratedAt: time.Now().UTC(),
			Seed:        seed,
			Iterations:  1,
		},
	}
}

// column is a vertical text stack.
type column struct {
	left, width, y float64
}

// Elements places the card's elements. Every element lies inside the
// safe zone; text that does not fit is dropped.
//
// When the stack overflows the bottom margin it continues once in a second
// column at mid-height. That column starts at the left margin plus half the
// safe width, not at the left margin, so it cannot overlap text already
// placed in the upper half.
func Elements(cfg layout.Config, c vibe.Constraints, dpi float64, seed float64) []layout.Element {
	canvas := Canvas(dpi)
	safe := MMToPx(SafeZoneMM, dpi)
	gap := MMToPx(GapMM, dpi)
	base := PtToPx(BaseFontPt, dpi)
	bottom := canvas.Height - safe
	safeWidth := canvas.Width - 2*safe

	align := layout.AlignLeft
	if c.Symmetry == vibe.SymmetryStrict {
		align = layout.AlignCenter
	}

	col := column{left: safe, width: safeWidth, y: safe}
	overflowed := false
	var out []layout.Element

	place := func(e layout.Element, text string, fs float64) {
		w, h := generator.MeasureText(text, fs, lineHeight, col.width)
		if col.y+h > bottom && !overflowed {
			overflowed = true
			col = column{left: safe + safeWidth/2, width: safeWidth / 2, y: canvas.Height / 2}
			w, h = generator.MeasureText(text, fs, lineHeight, col.width)
		}
		if col.y+h > bottom {
			return
		}
		x := col.left
		if align == layout.AlignCenter {
			x += (col.width - w) / 2
		}
		e.Position = layout.Point{X: x, Y: col.y}
		e.Dimensions = layout.Dimensions{Width: w, Height: h}
		e.FontSize = fs
		e.Alignment = align
		e.Content = text
		e.Spacing = layout.Uniform(gap)
		if layout.OverlapsAny(e, out) {
			return
		}
		out = append(out, e)
		col.y += h + gap
	}

	if cfg.Content.Heading != "" {
		place(layout.Element{
			ID: IDName, Type: layout.TypeHeading, FontWeight: 700,
			Color: cfg.Colors.Primary, ZIndex: 3, Importance: 10,
		}, cfg.Content.Heading, base*NameScale)
	}
	if cfg.Content.Subheading != "" {
		place(layout.Element{
			ID: IDTitle, Type: layout.TypeSubheading, FontWeight: 500,
			Color: cfg.Colors.Secondary, ZIndex: 2, Importance: 7,
		}, cfg.Content.Subheading, base*TitleScale)
	}
	for i, line := range cfg.Content.ContactInfo {
		if line == "" {
			continue
		}
		place(layout.Element{
			ID: contactID(i), Type: layout.TypeBody, FontWeight: 400,
			Color: cfg.Colors.Text, ZIndex: 1, Importance: 4,
		}, line, base*ContactScale)
	}

	if c.Preferences.DecorativeElements {
		if logo, ok := placeLogo(canvas, safe, MMToPx(LogoMM, dpi), cfg.Colors.Accent, rng.New(seed)); ok && !layout.OverlapsAny(logo, out) {
			out = append(out, logo)
		}
	}
	return out
}

func contactID(i int) string {
	return fmt.Sprintf("contact-%d", i+1)
}

// LogoPositions names the seven canonical logo anchors.
var LogoPositions = []string{
	"top-left", "top-right", "bottom-left", "bottom-right",
	"center", "top-center", "bottom-center",
}

// placeLogo positions a size x size logo at a randomly chosen anchor
// inside the safe zone.
func placeLogo(canvas layout.Dimensions, safe, size float64, color string, r *rng.LCG) (layout.Element, bool) {
	if size <= 0 || canvas.Width-2*safe < size || canvas.Height-2*safe < size {
		return layout.Element{}, false
	}
	left, top := safe, safe
	right, bottom := canvas.Width-safe-size, canvas.Height-safe-size
	cx, cy := (canvas.Width-size)/2, (canvas.Height-size)/2

	var p layout.Point
	switch rng.Pick(r, LogoPositions) {
	case "top-left":
		p = layout.Point{X: left, Y: top}
	case "top-right":
		p = layout.Point{X: right, Y: top}
	case "bottom-left":
		p = layout.Point{X: left, Y: bottom}
	case "bottom-right":
		p = layout.Point{X: right, Y: bottom}
	case "center":
		p = layout.Point{X: cx, Y: cy}
	case "top-center":
		p = layout.Point{X: cx, Y: top}
	default:
		p = layout.Point{X: cx, Y: bottom}
	}
	return layout.Element{
		ID:         IDLogo,
		Type:       layout.TypeLogo,
		Position:   p,
		Dimensions: layout.Dimensions{Width: size, Height: size},
		Color:      color,
		Importance: 3,
	}, true
}
