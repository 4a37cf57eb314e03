package generator

import (
	"fmt"

	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/rng"
	"github.com/matzehuels/vibegrid/pkg/vibe"
)

// Element budget and importance ladder.
const (
	hardElementCap  = 10
	maxDecorations  = 2
	importanceHead  = 10
	importanceSub   = 7
	importanceBody  = 5
	importanceShape = 2
	importanceLine  = 1
)

// Element ids are stable across candidates so that results can be diffed.
const (
	IDHeading    = "heading"
	IDSubheading = "subheading"
	IDBody       = "body"
)

var decorativeTypes = []layout.ElementType{layout.TypeShape, layout.TypeDivider, layout.TypePattern}

// placer carries the per-candidate state of one Elements call.
type placer struct {
	cfg      layout.Config
	c        vibe.Constraints
	grid     layout.GridSystem
	area     safeArea
	r        *rng.LCG
	limit    int
	elements []layout.Element
}

// Elements places the elements of one candidate. The result is a pure
// function of its arguments.
func Elements(cfg layout.Config, c vibe.Constraints, grid layout.GridSystem, seed float64) []layout.Element {
	p := &placer{
		cfg:   cfg,
		c:     c,
		grid:  grid,
		area:  newSafeArea(cfg.CanvasSize, grid),
		r:     rng.New(seed),
		limit: min(c.MaxElements, hardElementCap),
	}

	if cfg.Content.Heading != "" {
		p.add(p.heading())
	}
	if cfg.Content.Subheading != "" {
		p.add(p.subheading())
	}
	if cfg.Content.Body != "" {
		p.add(p.body())
	}
	if c.Preferences.DecorativeElements {
		p.decorations()
	}
	return p.elements
}

func (p *placer) add(e layout.Element) {
	if len(p.elements) >= p.limit {
		return
	}
	e.Position = snapPoint(e.Position, p.grid)
	p.elements = append(p.elements, e)
}

func (p *placer) last() (layout.Element, bool) {
	if len(p.elements) == 0 {
		return layout.Element{}, false
	}
	return p.elements[len(p.elements)-1], true
}

func (p *placer) heading() layout.Element {
	a := p.area
	fs := p.r.Range(48, 80)
	w, h := MeasureText(p.cfg.Content.Heading, fs, headingLineHeight, a.width*0.8)

	var pos layout.Point
	align := layout.AlignLeft
	switch {
	case p.c.UseRuleOfThirds:
		third := 1.0 / 3
		if p.r.Bool() {
			third = 2.0 / 3
		}
		cx := a.left + a.width*third
		pos.X = a.clampX(cx-w/2, w)
		pos.Y = max(a.top, p.cfg.CanvasSize.Height/3-h/2+p.r.Range(-16, 16))
		align = layout.AlignCenter
	case p.c.Symmetry == vibe.SymmetryStrict:
		pos.X = (p.cfg.CanvasSize.Width - w) / 2
		pos.Y = max(a.top, p.cfg.CanvasSize.Height*0.25-h/2)
		align = layout.AlignCenter
	default:
		pos.X = a.left + p.r.Float64()*max(0, a.width-w)
		pos.Y = a.top + p.r.Float64()*max(0, a.height-h)
	}

	return layout.Element{
		ID:         IDHeading,
		Type:       layout.TypeHeading,
		Position:   pos,
		Dimensions: layout.Dimensions{Width: w, Height: h},
		Spacing:    layout.Uniform(p.c.MinElementSpacing),
		FontSize:   fs,
		FontWeight: 700,
		Color:      p.cfg.Colors.Primary,
		Alignment:  align,
		ZIndex:     3,
		Content:    p.cfg.Content.Heading,
		Importance: importanceHead,
	}
}

func (p *placer) subheading() layout.Element {
	a := p.area
	fs := p.r.Range(24, 36)
	w, h := MeasureText(p.cfg.Content.Subheading, fs, headingLineHeight, a.width*0.7)

	var pos layout.Point
	align := layout.AlignLeft
	if head, ok := p.last(); ok && head.Type == layout.TypeHeading {
		align = head.Alignment
		pos.X = a.clampX(alignedX(head, w, align), w)
		pos.Y = snapUp(head.Bottom()+p.c.MinElementSpacing, p.grid.GutterY)
	} else {
		pos.X = a.left + p.r.Float64()*max(0, a.width-w)
		pos.Y = a.top + p.r.Float64()*max(0, p.cfg.CanvasSize.Height*0.4-a.top-h)
	}

	return layout.Element{
		ID:         IDSubheading,
		Type:       layout.TypeSubheading,
		Position:   pos,
		Dimensions: layout.Dimensions{Width: w, Height: h},
		Spacing:    layout.Uniform(p.c.MinElementSpacing),
		FontSize:   fs,
		FontWeight: 500,
		Color:      p.cfg.Colors.Secondary,
		Alignment:  align,
		ZIndex:     2,
		Content:    p.cfg.Content.Subheading,
		Importance: importanceSub,
	}
}

func (p *placer) body() layout.Element {
	a := p.area
	fs := p.r.Range(16, 20)
	w := a.width * p.r.Range(0.6, 0.8)
	h := bodyLines * fs * bodyLineHeight

	var pos layout.Point
	align := layout.AlignLeft
	if prev, ok := p.last(); ok {
		align = prev.Alignment
		pos.X = a.clampX(alignedX(prev, w, align), w)
		pos.Y = snapUp(prev.Bottom()+p.c.MinElementSpacing, p.grid.GutterY)
	} else {
		pos.X = a.left
		pos.Y = a.top + p.r.Float64()*a.height*0.4
	}

	return layout.Element{
		ID:         IDBody,
		Type:       layout.TypeBody,
		Position:   pos,
		Dimensions: layout.Dimensions{Width: w, Height: h},
		Spacing:    layout.Uniform(p.c.MinElementSpacing),
		FontSize:   fs,
		FontWeight: 400,
		Color:      p.cfg.Colors.Text,
		Alignment:  align,
		ZIndex:     1,
		Content:    p.cfg.Content.Body,
		Importance: importanceBody,
	}
}

// decorations places 0-2 decorative elements. Colliding ones are dropped.
func (p *placer) decorations() {
	a := p.area
	n := p.r.Intn(maxDecorations + 1)
	placed := 0
	for range n {
		if len(p.elements) >= p.limit {
			return
		}
		kind := rng.Pick(p.r, decorativeTypes)
		w, h := p.decorationSize(kind)
		w, h = min(w, a.width), min(h, a.height)
		pos := layout.Point{
			X: a.left + p.r.Float64()*(a.width-w),
			Y: a.top + p.r.Float64()*(a.height-h),
		}
		e := layout.Element{
			ID:         fmt.Sprintf("decoration-%d", placed+1),
			Type:       kind,
			Position:   snapPoint(pos, p.grid),
			Dimensions: layout.Dimensions{Width: w, Height: h},
			Spacing:    layout.Uniform(p.c.MinElementSpacing / 2),
			Color:      p.cfg.Colors.Accent,
			ZIndex:     decorationZ(kind),
			Importance: decorationImportance(kind),
		}
		if layout.OverlapsAny(e, p.elements) {
			continue
		}
		p.elements = append(p.elements, e)
		placed++
	}
}

func (p *placer) decorationSize(kind layout.ElementType) (w, h float64) {
	switch kind {
	case layout.TypeDivider:
		return p.r.Range(100, 300), p.r.Range(2, 4)
	case layout.TypePattern:
		s := p.r.Range(100, 300)
		return s, s
	default:
		s := p.r.Range(40, 160)
		return s, s
	}
}

func decorationZ(kind layout.ElementType) int {
	if kind == layout.TypePattern {
		return 0
	}
	return 1
}

func decorationImportance(kind layout.ElementType) int {
	if kind == layout.TypeShape {
		return importanceShape
	}
	return importanceLine
}

// alignedX positions a box of width w under anchor according to align.
func alignedX(anchor layout.Element, w float64, align layout.Alignment) float64 {
	switch align {
	case layout.AlignCenter:
		return anchor.Center().X - w/2
	case layout.AlignRight:
		return anchor.Right() - w
	default:
		return anchor.Left()
	}
}
