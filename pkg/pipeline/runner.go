package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vibegrid/pkg/cache"
	"github.com/matzehuels/vibegrid/pkg/card"
	"github.com/matzehuels/vibegrid/pkg/generator"
	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/observability"
	"github.com/matzehuels/vibegrid/pkg/scoring"
	"github.com/matzehuels/vibegrid/pkg/search"
	"github.com/matzehuels/vibegrid/pkg/vibe"
)

// Runner executes requests with caching, logging and hooks. It holds no
// per-request state, so one Runner can serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// means cache.DefaultKeyer and a nil logger means log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLLayout,
	}
}

// Generate runs one search or best-of-N, depending on opts.Count.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)
	cfg := opts.Config
	mode := opts.Mode()
	start := time.Now()

	hooks := observability.Generation()
	hooks.OnGenerateStart(ctx, string(cfg.ContentType), vibe.Get(cfg.VibeID).ID)

	key := ""
	if opts.cacheable() {
		key = r.Keyer.LayoutKey(cfg.Fingerprint(), layoutKeyOpts(opts))
		if !opts.Refresh {
			if l, ok := r.lookup(ctx, logger, key); ok {
				res := &Result{Layout: l, Mode: mode, CacheHit: true, Duration: time.Since(start)}
				r.complete(ctx, logger, cfg, res, nil)
				return res, nil
			}
		}
	}

	searchOpts := opts.Search.Options()
	var (
		l   layout.GeneratedLayout
		err error
	)
	if mode == ModeBest {
		l, err = search.GenerateBest(ctx, cfg, opts.Count, searchOpts...)
	} else {
		l = search.CreateLayout(cfg, searchOpts...)
	}
	res := &Result{Layout: l, Mode: mode, Duration: time.Since(start)}
	if err != nil {
		r.complete(ctx, logger, cfg, res, err)
		return nil, fmt.Errorf("generate: %w", err)
	}

	if key != "" {
		r.store(ctx, logger, key, l)
	}
	r.complete(ctx, logger, cfg, res, nil)
	return res, nil
}

// Score re-evaluates an existing layout against its vibe. A layout without
// a grid gets the grid its content type would have been generated with.
func (r *Runner) Score(ctx context.Context, req ScoreRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	l := req.Layout
	c := vibe.Get(l.VibeID)
	if l.Grid.Columns == 0 {
		l.Grid = defaultGrid(l, c)
	}
	l.VibeID = c.ID
	l.Score = scoring.Evaluate(l.Elements, l.Grid, l.Canvas, c, req.Background)

	res := &Result{Layout: l, Mode: ModeScore, Duration: time.Since(start)}
	observability.Generation().OnGenerateComplete(ctx, observability.GenerationResult{
		ContentType: string(l.Type),
		VibeID:      l.VibeID,
		Mode:        ModeScore,
		Score:       l.Score.Total,
		Duration:    res.Duration,
	})
	r.Logger.Debug("scored layout",
		"vibe", l.VibeID,
		"elements", len(l.Elements),
		"score", l.Score.Total)
	return res, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) lookup(ctx context.Context, logger *log.Logger, key string) (layout.GeneratedLayout, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
		return layout.GeneratedLayout{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "layout")
		return layout.GeneratedLayout{}, false
	}
	l, err := layout.Unmarshal(data)
	if err != nil {
		logger.Warn("discarding unreadable cache entry", "err", err)
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, "layout")
		return layout.GeneratedLayout{}, false
	}
	observability.Cache().OnCacheHit(ctx, "layout")
	return l, true
}

func (r *Runner) store(ctx context.Context, logger *log.Logger, key string, l layout.GeneratedLayout) {
	data, err := layout.Marshal(l)
	if err != nil {
		logger.Warn("cache encode failed", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "layout", len(data))
}

func (r *Runner) complete(ctx context.Context, logger *log.Logger, cfg layout.Config, res *Result, err error) {
	l := res.Layout
	observability.Generation().OnGenerateComplete(ctx, observability.GenerationResult{
		ContentType: string(cfg.ContentType),
		VibeID:      vibe.Get(cfg.VibeID).ID,
		Mode:        res.Mode,
		Iterations:  l.Metadata.Iterations,
		Score:       l.Score.Total,
		Fallback:    l.Metadata.Fallback,
		CacheHit:    res.CacheHit,
		Duration:    res.Duration,
		Err:         err,
	})
	if err != nil {
		logger.Error("generation failed", "vibe", cfg.VibeID, "mode", res.Mode, "err", err)
		return
	}
	logger.Info("generated layout",
		"vibe", l.VibeID,
		"type", l.Type,
		"mode", res.Mode,
		"seed", l.Metadata.Seed,
		"iterations", l.Metadata.Iterations,
		"score", l.Score.Total,
		"fallback", l.Metadata.Fallback,
		"cached", res.CacheHit,
		"duration", res.Duration)
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

func layoutKeyOpts(opts Options) cache.LayoutKeyOpts {
	o := search.NewOptions(opts.Search.Options()...)
	k := cache.LayoutKeyOpts{
		Seed:          *opts.Config.Seed,
		Count:         opts.Count,
		MaxIterations: o.MaxIterations,
		MinScore:      o.MinScore,
	}
	if opts.Config.ContentType == layout.ContentBusinessCard {
		k.DPI = o.DPI
	}
	return k
}

func defaultGrid(l layout.GeneratedLayout, c vibe.Constraints) layout.GridSystem {
	if l.Type == layout.ContentBusinessCard {
		dpi := l.Canvas.Width / card.WidthMM * 25.4
		return card.Grid(dpi)
	}
	return generator.Grid(l.Canvas, c)
}
