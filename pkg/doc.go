// Package pkg provides the core libraries for vibegrid layout generation.
//
// # Overview
//
// vibegrid places a heading, subheading, body copy, contact lines and
// decorations on a canvas so that the result follows a chosen "vibe"
// (minimal, bold, corporate, ...), and scores each candidate against
// classical design principles. The pkg directory is organized into three
// areas:
//
//  1. Domain logic: [vibe], [generator], [card], [evaluate], [scoring], [search]
//  2. Data: [layout], [palette], [rng], [errors]
//  3. Infrastructure: [cache], [pipeline], [io], [observability], [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	layout.Config (vibe, palette, content, canvas, seed)
//	         ↓
//	    [vibe] constraints + [generator] grid
//	         ↓
//	    [generator] seeded candidates (web) or [card] placement
//	         ↓
//	    [evaluate] seven principle scores → [scoring] weighted total
//	         ↓
//	    [search] best valid candidate / best-of-N
//	         ↓
//	    layout.GeneratedLayout (JSON)
//
// # Quick Start
//
//	cfg := search.QuickConfig("minimal", layout.ContentWeb, layout.Content{
//	    Heading: "Simplicity",
//	})
//	l := search.CreateLayout(cfg.WithSeed(42), search.WithMinScore(85))
//	fmt.Println(l.Score.Total, len(l.Elements))
//
// Best-of-N with caching goes through the pipeline runner:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := runner.Generate(ctx, pipeline.Options{Config: cfg, Count: 10})
//
// # Determinism
//
// A layout is a pure function of its config and seed. Generation keeps no
// global state, so searches run concurrently; best-of-N does exactly that.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/search/...             # Specific package
//
// Redis and MongoDB cache tests run when VIBEGRID_TEST_REDIS_URL or
// VIBEGRID_TEST_MONGO_URI point at a live server.
//
// [vibe]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/vibe
// [generator]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/generator
// [card]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/card
// [evaluate]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/evaluate
// [scoring]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/scoring
// [search]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/search
// [layout]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/layout
// [palette]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/palette
// [rng]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/rng
// [errors]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/errors
// [cache]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/vibegrid/pkg/buildinfo
package pkg
