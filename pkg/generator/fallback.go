package generator

import (
	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/vibe"
)

// Fixed sizes of the fallback stack.
const (
	fallbackHeadingSize    = 56
	fallbackSubheadingSize = 28
	fallbackBodySize       = 18
	fallbackBodyWidth      = 0.6
)

// Fallback builds the deterministic centered stack used when a search
// produced no valid candidate: heading, subheading and body centered
// horizontally from 25% of the canvas height, fixed font sizes, no
// decorative elements.
func Fallback(cfg layout.Config, c vibe.Constraints, grid layout.GridSystem) []layout.Element {
	a := newSafeArea(cfg.CanvasSize, grid)
	spacing := c.MinElementSpacing
	y := max(a.top, cfg.CanvasSize.Height*0.25)

	var out []layout.Element
	push := func(e layout.Element) {
		e.Position = layout.Point{
			X: snap((cfg.CanvasSize.Width-e.Dimensions.Width)/2, grid.GutterX),
			Y: snapUp(y, grid.GutterY),
		}
		e.Alignment = layout.AlignCenter
		e.Spacing = layout.Uniform(spacing)
		out = append(out, e)
		y = e.Bottom() + spacing
	}

	if cfg.Content.Heading != "" {
		w, h := MeasureText(cfg.Content.Heading, fallbackHeadingSize, headingLineHeight, a.width*0.8)
		push(layout.Element{
			ID:         IDHeading,
			Type:       layout.TypeHeading,
			Dimensions: layout.Dimensions{Width: w, Height: h},
			FontSize:   fallbackHeadingSize,
			FontWeight: 700,
			Color:      cfg.Colors.Primary,
			ZIndex:     3,
			Content:    cfg.Content.Heading,
			Importance: importanceHead,
		})
	}
	if cfg.Content.Subheading != "" {
		w, h := MeasureText(cfg.Content.Subheading, fallbackSubheadingSize, headingLineHeight, a.width*0.7)
		push(layout.Element{
			ID:         IDSubheading,
			Type:       layout.TypeSubheading,
			Dimensions: layout.Dimensions{Width: w, Height: h},
			FontSize:   fallbackSubheadingSize,
			FontWeight: 500,
			Color:      cfg.Colors.Secondary,
			ZIndex:     2,
			Content:    cfg.Content.Subheading,
			Importance: importanceSub,
		})
	}
	if cfg.Content.Body != "" {
		push(layout.Element{
			ID:   IDBody,
			Type: layout.TypeBody,
			Dimensions: layout.Dimensions{
				Width:  a.width * fallbackBodyWidth,
				Height: bodyLines * fallbackBodySize * bodyLineHeight,
			},
			FontSize:   fallbackBodySize,
			FontWeight: 400,
			Color:      cfg.Colors.Text,
			ZIndex:     1,
			Content:    cfg.Content.Body,
			Importance: importanceBody,
		})
	}
	return out
}
