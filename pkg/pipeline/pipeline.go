// Package pipeline is the shared entry point of the CLI and the HTTP API.
//
// It wraps the pure generators in [search] and [card] with what a service
// needs around them: request validation, a layout cache, structured logging
// and observability hooks. By centralizing this logic every surface
// validates, caches and reports the same way.
//
// # Modes
//
//   - [ModeSingle]: one search, dispatched by content type.
//   - [ModeBest]: best-of-N over independent seeds.
//   - [ModeScore]: re-score an existing layout without generating.
//
// # Caching
//
// A request with an explicit seed is deterministic, so its result is
// memoized under [cache.Keyer.LayoutKey] of the config fingerprint and the
// search settings. Unseeded requests always generate. Cache failures are
// logged and never fail a request.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Generate(ctx, pipeline.Options{Config: cfg, Count: 10})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Layout.Score.Total)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vibegrid/pkg/errors"
	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/palette"
	"github.com/matzehuels/vibegrid/pkg/search"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultCount is the number of searches per request.
	DefaultCount = 1

	// DefaultMaxCount caps best-of-N requests. It is lower than
	// search.MaxBestCount so a single API call stays cheap.
	DefaultMaxCount = 32
)

// Generation modes, reported to hooks and in logs.
const (
	ModeSingle = "single"
	ModeBest   = "best"
	ModeScore  = "score"
)

// =============================================================================
// Options - Request Configuration
// =============================================================================

// Options is one generation request.
type Options struct {
	Config layout.Config `json:"config" toml:"config"`
	Search search.Params `json:"options,omitzero" toml:"options"`

	// Count > 1 runs best-of-N.
	Count int `json:"count,omitempty" toml:"count"`

	// Refresh skips the cache lookup but still stores the result.
	Refresh bool `json:"refresh,omitempty" toml:"refresh"`

	// MaxCount caps Count; zero means DefaultMaxCount.
	MaxCount int         `json:"-" toml:"-"`
	Logger   *log.Logger `json:"-" toml:"-"`

	validated bool
}

// Mode reports which generation mode the options select.
func (o *Options) Mode() string {
	if o.Count > 1 {
		return ModeBest
	}
	return ModeSingle
}

// SetDefaults fills zero values.
func (o *Options) SetDefaults() {
	if o.Count <= 0 {
		o.Count = DefaultCount
	}
	if o.MaxCount <= 0 {
		o.MaxCount = DefaultMaxCount
	}
	if o.Config.ContentType == "" {
		o.Config.ContentType = layout.ContentWeb
	}
}

// Validate checks the request.
func (o *Options) Validate() error {
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if err := o.Search.Validate(); err != nil {
		return err
	}
	if o.Count > o.MaxCount {
		return errors.New(errors.ErrCodeInvalidOptions, "count must be <= %d, got %d", o.MaxCount, o.Count)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and validates once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// cacheable reports whether the result is deterministic.
func (o *Options) cacheable() bool {
	return o.Config.Seed != nil
}

// ScoreRequest re-scores an existing layout. Background is the color text
// contrast is measured against; empty means white.
type ScoreRequest struct {
	Layout     layout.GeneratedLayout `json:"layout"`
	Background string                 `json:"background,omitempty"`
}

// DefaultBackground is used when a ScoreRequest names none.
const DefaultBackground = "#ffffff"

// Validate checks the request.
func (r *ScoreRequest) Validate() error {
	if !r.Layout.Canvas.Valid() {
		return errors.New(errors.ErrCodeInvalidCanvas,
			"canvas must have positive sides, got %vx%v", r.Layout.Canvas.Width, r.Layout.Canvas.Height)
	}
	if r.Background == "" {
		r.Background = DefaultBackground
	}
	if !palette.Valid(r.Background) {
		return errors.New(errors.ErrCodeInvalidColor, "invalid background color: %q", r.Background)
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result is the outcome of a runner call.
type Result struct {
	Layout   layout.GeneratedLayout `json:"layout"`
	Mode     string                 `json:"mode"`
	CacheHit bool                   `json:"cache_hit"`
	Duration time.Duration          `json:"duration_ns"`
}
