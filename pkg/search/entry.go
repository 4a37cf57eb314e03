package search

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/vibegrid/pkg/card"
	"github.com/matzehuels/vibegrid/pkg/layout"
)

// Defaults filled in by QuickGenerate.
var (
	DefaultCanvas  = layout.Dimensions{Width: 1200, Height: 800}
	DefaultContent = layout.Content{
		Heading:     "Your Headline Here",
		Subheading:  "A short supporting line",
		Body:        "Describe what you offer in a sentence or two so visitors know why it matters.",
		ContactInfo: []string{"hello@example.com", "+1 555 0100", "example.com"},
	}
)

// CreateLayout generates a layout for cfg, dispatching on its content type.
// Business cards run the card generator; anything else runs the web search.
func CreateLayout(cfg layout.Config, opts ...Option) layout.GeneratedLayout {
	o := NewOptions(opts...)
	if cfg.ContentType == layout.ContentBusinessCard {
		return card.Generate(cfg, card.Options{DPI: o.DPI})
	}
	return generate(cfg, baseSeed(cfg), o)
}

// GenerateBest runs count independent searches and returns the highest
// scoring layout. Run k uses base seed+k*BestSeedStride, so run 0 is the
// single search CreateLayout would perform with the same seed. Ties go to
// the layout with fewer elements, then to the earlier run. count is clamped
// to [1, MaxBestCount].
//
// Searches run concurrently. The only error is ctx's, when it is cancelled
// before every run started.
func GenerateBest(ctx context.Context, cfg layout.Config, count int, opts ...Option) (layout.GeneratedLayout, error) {
	count = min(max(count, 1), MaxBestCount)
	seed := baseSeed(cfg)
	results := make([]layout.GeneratedLayout, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k := range count {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			run := cfg.WithSeed(seed + float64(k*BestSeedStride))
			results[k] = CreateLayout(run, opts...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return layout.GeneratedLayout{}, err
	}

	best := results[0]
	for _, l := range results[1:] {
		if better(l, best) {
			best = l
		}
	}
	return best, nil
}

func better(a, b layout.GeneratedLayout) bool {
	if a.Score.Total != b.Score.Total {
		return a.Score.Total > b.Score.Total
	}
	return len(a.Elements) < len(b.Elements)
}

// QuickGenerate fills the default palette, canvas and content around
// partial and creates a layout. Non-empty fields of partial win.
func QuickGenerate(vibeID string, contentType layout.ContentType, partial layout.Content, opts ...Option) layout.GeneratedLayout {
	return CreateLayout(QuickConfig(vibeID, contentType, partial), opts...)
}

// QuickConfig builds the config QuickGenerate uses.
func QuickConfig(vibeID string, contentType layout.ContentType, partial layout.Content) layout.Config {
	if !contentType.Valid() {
		contentType = layout.ContentWeb
	}
	content := DefaultContent
	content.ContactInfo = append([]string(nil), DefaultContent.ContactInfo...)
	if partial.Heading != "" {
		content.Heading = partial.Heading
	}
	if partial.Subheading != "" {
		content.Subheading = partial.Subheading
	}
	if partial.Body != "" {
		content.Body = partial.Body
	}
	if len(partial.ContactInfo) > 0 {
		content.ContactInfo = append([]string(nil), partial.ContactInfo...)
	}
	if contentType == layout.ContentWeb {
		content.ContactInfo = nil
	}
	return layout.Config{
		ContentType: contentType,
		VibeID:      vibeID,
		Colors:      layout.DefaultColors,
		Content:     content,
		CanvasSize:  DefaultCanvas,
	}
}
