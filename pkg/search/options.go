package search

import (
	"github.com/matzehuels/vibegrid/pkg/card"
	"github.com/matzehuels/vibegrid/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultMaxIterations is the candidate budget of one search.
	DefaultMaxIterations = 50

	// DefaultMinScore stops a search at the first candidate reaching it.
	DefaultMinScore = 80

	// DefaultPopulationSize and DefaultMutationRate are reserved for a
	// genetic search and currently have no effect.
	DefaultPopulationSize = 20
	DefaultMutationRate   = 0.1

	// BestSeedStride separates the seed ranges of best-of-N runs so their
	// iterations never share a seed.
	BestSeedStride = 1000

	// MaxBestCount bounds GenerateBest fan-out.
	MaxBestCount = 100

	maxDPI = 2400
)

// =============================================================================
// Options
// =============================================================================

// Options controls a layout search. Build it with [NewOptions] so unset
// fields get their defaults while explicit zeros are kept.
type Options struct {
	MaxIterations int
	MinScore      int

	// Reserved: accepted and carried, but the search is always plain
	// random restart.
	UseGeneticAlgorithm bool
	PopulationSize      int
	MutationRate        float64

	// DPI is used for business cards only.
	DPI float64
}

// Option configures Options.
type Option func(*Options)

// NewOptions returns the defaults with opts applied in order.
func NewOptions(opts ...Option) Options {
	o := Options{
		MaxIterations:  DefaultMaxIterations,
		MinScore:       DefaultMinScore,
		PopulationSize: DefaultPopulationSize,
		MutationRate:   DefaultMutationRate,
		DPI:            card.DefaultDPI,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxIterations sets the candidate budget. Zero skips straight to the
// fallback layout; negative values are treated as zero.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = max(0, n) }
}

// WithMinScore sets the early-exit threshold.
func WithMinScore(score int) Option {
	return func(o *Options) { o.MinScore = score }
}

// WithGeneticAlgorithm records the reserved genetic-search settings.
func WithGeneticAlgorithm(populationSize int, mutationRate float64) Option {
	return func(o *Options) {
		o.UseGeneticAlgorithm = true
		o.PopulationSize = populationSize
		o.MutationRate = mutationRate
	}
}

// WithPopulationSize sets the reserved genetic population size.
func WithPopulationSize(n int) Option {
	return func(o *Options) { o.PopulationSize = n }
}

// WithMutationRate sets the reserved genetic mutation rate.
func WithMutationRate(rate float64) Option {
	return func(o *Options) { o.MutationRate = rate }
}

// WithDPI sets the business card print resolution.
func WithDPI(dpi float64) Option {
	return func(o *Options) { o.DPI = dpi }
}

// =============================================================================
// Params - serializable options
// =============================================================================

// Params is the wire form of the search options used by request files and
// the HTTP API. Nil fields keep their defaults.
type Params struct {
	MaxIterations       *int     `json:"max_iterations,omitempty" toml:"max_iterations"`
	MinScore            *int     `json:"min_score,omitempty" toml:"min_score"`
	UseGeneticAlgorithm bool     `json:"use_genetic_algorithm,omitempty" toml:"use_genetic_algorithm"`
	PopulationSize      *int     `json:"population_size,omitempty" toml:"population_size"`
	MutationRate        *float64 `json:"mutation_rate,omitempty" toml:"mutation_rate"`
	DPI                 *float64 `json:"dpi,omitempty" toml:"dpi"`
}

// Validate checks the explicitly set fields.
func (p Params) Validate() error {
	if p.MaxIterations != nil && *p.MaxIterations < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "max_iterations must be >= 0, got %d", *p.MaxIterations)
	}
	if p.MinScore != nil && (*p.MinScore < 0 || *p.MinScore > 100) {
		return errors.New(errors.ErrCodeInvalidOptions, "min_score must be within [0, 100], got %d", *p.MinScore)
	}
	if p.PopulationSize != nil && *p.PopulationSize < 1 {
		return errors.New(errors.ErrCodeInvalidOptions, "population_size must be >= 1, got %d", *p.PopulationSize)
	}
	if p.MutationRate != nil && (*p.MutationRate < 0 || *p.MutationRate > 1) {
		return errors.New(errors.ErrCodeInvalidOptions, "mutation_rate must be within [0, 1], got %v", *p.MutationRate)
	}
	if p.DPI != nil && !(*p.DPI > 0 && *p.DPI <= maxDPI) {
		return errors.New(errors.ErrCodeInvalidOptions, "dpi must be within (0, %d], got %v", maxDPI, *p.DPI)
	}
	return nil
}

// Options converts the set fields to functional options.
func (p Params) Options() []Option {
	var opts []Option
	if p.MaxIterations != nil {
		opts = append(opts, WithMaxIterations(*p.MaxIterations))
	}
	if p.MinScore != nil {
		opts = append(opts, WithMinScore(*p.MinScore))
	}
	if p.UseGeneticAlgorithm {
		size, rate := DefaultPopulationSize, DefaultMutationRate
		if p.PopulationSize != nil {
			size = *p.PopulationSize
		}
		if p.MutationRate != nil {
			rate = *p.MutationRate
		}
		opts = append(opts, WithGeneticAlgorithm(size, rate))
	}
	if p.DPI != nil {
		opts = append(opts, WithDPI(*p.DPI))
	}
	return opts
}
