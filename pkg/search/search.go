// Package search drives layout generation: a bounded generate-and-test loop
// over seeded candidates, dispatch by content type, best-of-N and the
// default-filling convenience entry point.
//
// # Search
//
// [Generate] tries up to MaxIterations candidates with seeds baseSeed+i.
// A candidate that overlaps or leaves the canvas is discarded unscored; it
// still uses up an iteration. The first candidate reaching MinScore ends
// the search, otherwise the best valid candidate wins. When no candidate
// was valid the deterministic centered fallback is scored and returned, so
// every entry point always yields a layout.
//
// A call is a pure function of its config and seed. Calls share no state
// and may run concurrently; [GenerateBest] does exactly that.
package search

import (
	"math/rand/v2"
	"time"

	"github.com/matzehuels/vibegrid/pkg/generator"
	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/rng"
	"github.com/matzehuels/vibegrid/pkg/scoring"
	"github.com/matzehuels/vibegrid/pkg/vibe"
)

// NewSeed draws a fresh base seed.
func NewSeed() float64 {
	return float64(rand.IntN(rng.Modulus))
}

// baseSeed returns the config's seed or a fresh one.
func baseSeed(cfg layout.Config) float64 {
	if cfg.Seed != nil {
		return *cfg.Seed
	}
	return NewSeed()
}

// Generate runs the web layout search for cfg. cfg.CanvasSize must be
// valid; see [layout.Config.Validate].
func Generate(cfg layout.Config, opts ...Option) layout.GeneratedLayout {
	o := NewOptions(opts...)
	return generate(cfg, baseSeed(cfg), o)
}

func generate(cfg layout.Config, seed float64, o Options) layout.GeneratedLayout {
	c := vibe.Get(cfg.VibeID)
	grid := generator.Grid(cfg.CanvasSize, c)

	var (
		best       []layout.Element
		bestScore  layout.Score
		found      bool
		iterations int
	)
	for i := range o.MaxIterations {
		iterations = i + 1
		els := generator.Elements(cfg, c, grid, seed+float64(i))
		if !layout.ValidCandidate(els, cfg.CanvasSize) {
			continue
		}
		s := scoring.Evaluate(els, grid, cfg.CanvasSize, c, cfg.Colors.Background)
		if !found || s.Total > bestScore.Total {
			best, bestScore, found = els, s, true
		}
		if s.Total >= o.MinScore {
			break
		}
	}

	if !found {
		best = generator.Fallback(cfg, c, grid)
		bestScore = scoring.Evaluate(best, grid, cfg.CanvasSize, c, cfg.Colors.Background)
	}

	return layout.GeneratedLayout{
		ID:       layout.NewID(cfg.Fingerprint(), seed),
		Type:     layout.ContentWeb,
		VibeID:   c.ID,
		Canvas:   cfg.CanvasSize,
		Elements: best,
		Grid:     grid,
		Score:    bestScore,
		Metadata: layout.Metadata{
			GeneratedAt: time.Now().UTC(),
			Seed:        seed,
			Iterations:  iterations,
			Fallback:    !found,
		},
	}
}
