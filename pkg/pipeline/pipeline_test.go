package pipeline

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vibegrid/pkg/cache"
	verrors "github.com/matzehuels/vibegrid/pkg/errors"
	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/observability"
	"github.com/matzehuels/vibegrid/pkg/search"
)

// memCache is an in-memory cache that counts calls and can be made to fail.
type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	gets    int
	sets    int
	failGet bool
	failSet bool
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failGet {
		return nil, false, errors.New("backend down")
	}
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.failSet {
		return errors.New("backend down")
	}
	c.data[key] = data
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

type recordingHooks struct {
	observability.NoopGenerationHooks
	mu      sync.Mutex
	starts  int
	results []observability.GenerationResult
}

func (h *recordingHooks) OnGenerateStart(context.Context, string, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts++
}

func (h *recordingHooks) OnGenerateComplete(_ context.Context, r observability.GenerationResult) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.results = append(h.results, r)
}

func quietLogger() *log.Logger {
	return log.New(&bytes.Buffer{})
}

func seededConfig() layout.Config {
	return layout.Config{
		ContentType: layout.ContentWeb,
		VibeID:      "minimal",
		Colors:      layout.DefaultColors,
		Content:     layout.Content{Heading: "Simplicity", Subheading: "Less is more"},
		CanvasSize:  layout.Dimensions{Width: 1200, Height: 800},
	}.WithSeed(0.42)
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{Config: seededConfig()}
	o.Config.ContentType = ""
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if o.Count != DefaultCount || o.MaxCount != DefaultMaxCount || o.Config.ContentType != layout.ContentWeb {
		t.Errorf("defaults = count %d, max %d, type %q", o.Count, o.MaxCount, o.Config.ContentType)
	}
	if o.Mode() != ModeSingle {
		t.Errorf("mode = %s", o.Mode())
	}
}

func TestOptionsValidate(t *testing.T) {
	neg := -1
	tests := []struct {
		name string
		opts Options
		code verrors.Code
	}{
		{"bad canvas", Options{Config: layout.Config{VibeID: "minimal"}}, verrors.ErrCodeInvalidCanvas},
		{"bad color", Options{Config: func() layout.Config {
			c := seededConfig()
			c.Colors.Text = "not-a-color"
			return c
		}()}, verrors.ErrCodeInvalidColor},
		{"bad search params", Options{Config: seededConfig(), Search: search.Params{MaxIterations: &neg}}, verrors.ErrCodeInvalidOptions},
		{"count too high", Options{Config: seededConfig(), Count: DefaultMaxCount + 1}, verrors.ErrCodeInvalidOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !verrors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRunnerGenerateCaches(t *testing.T) {
	mc := newMemCache()
	r := NewRunner(mc, nil, quietLogger())
	ctx := context.Background()

	first, err := r.Generate(ctx, Options{Config: seededConfig()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if first.CacheHit || mc.sets != 1 {
		t.Errorf("first call: hit %v, sets %d", first.CacheHit, mc.sets)
	}

	second, err := r.Generate(ctx, Options{Config: seededConfig()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !second.CacheHit {
		t.Error("second seeded call missed the cache")
	}
	if second.Layout.ID != first.Layout.ID || second.Layout.Score.Total != first.Layout.Score.Total {
		t.Errorf("cached layout differs: %s/%d vs %s/%d",
			second.Layout.ID, second.Layout.Score.Total, first.Layout.ID, first.Layout.Score.Total)
	}
	if len(second.Layout.Elements) != len(first.Layout.Elements) {
		t.Error("cached layout lost elements")
	}

	refreshed, _ := r.Generate(ctx, Options{Config: seededConfig(), Refresh: true})
	if refreshed.CacheHit || mc.sets != 2 {
		t.Errorf("refresh: hit %v, sets %d", refreshed.CacheHit, mc.sets)
	}
}

func TestRunnerUnseededBypassesCache(t *testing.T) {
	mc := newMemCache()
	r := NewRunner(mc, nil, quietLogger())
	cfg := seededConfig()
	cfg.Seed = nil

	if _, err := r.Generate(context.Background(), Options{Config: cfg}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mc.gets != 0 || mc.sets != 0 {
		t.Errorf("unseeded request touched the cache: %d gets, %d sets", mc.gets, mc.sets)
	}
}

func TestRunnerSurvivesCacheFailure(t *testing.T) {
	mc := newMemCache()
	mc.failGet, mc.failSet = true, true
	r := NewRunner(mc, nil, quietLogger())

	res, err := r.Generate(context.Background(), Options{Config: seededConfig()})
	if err != nil {
		t.Fatalf("cache failure failed the request: %v", err)
	}
	if res.CacheHit || len(res.Layout.Elements) == 0 {
		t.Errorf("result = %+v", res)
	}
}

func TestRunnerDiscardsCorruptEntry(t *testing.T) {
	mc := newMemCache()
	r := NewRunner(mc, nil, quietLogger())
	opts := Options{Config: seededConfig()}
	_ = opts.ValidateAndSetDefaults()
	key := r.Keyer.LayoutKey(opts.Config.Fingerprint(), layoutKeyOpts(opts))
	mc.data[key] = []byte("{broken")

	res, err := r.Generate(context.Background(), Options{Config: seededConfig()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.CacheHit {
		t.Error("corrupt entry served as a hit")
	}
	if _, err := layout.Unmarshal(mc.data[key]); err != nil {
		t.Errorf("corrupt entry was not replaced: %v", err)
	}
}

func TestRunnerCacheKeySeparatesSettings(t *testing.T) {
	base := Options{Config: seededConfig()}
	_ = base.ValidateAndSetDefaults()

	best := Options{Config: seededConfig(), Count: 5}
	_ = best.ValidateAndSetDefaults()

	iters := 10
	limited := Options{Config: seededConfig(), Search: search.Params{MaxIterations: &iters}}
	_ = limited.ValidateAndSetDefaults()

	k := cache.NewDefaultKeyer()
	fp := base.Config.Fingerprint()
	a := k.LayoutKey(fp, layoutKeyOpts(base))
	if a == k.LayoutKey(fp, layoutKeyOpts(best)) {
		t.Error("best-of-N shares a key with a single search")
	}
	if a == k.LayoutKey(fp, layoutKeyOpts(limited)) {
		t.Error("iteration budget does not change the key")
	}
}

func TestRunnerBestOfN(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	ctx := context.Background()

	single, err := r.Generate(ctx, Options{Config: seededConfig()})
	if err != nil {
		t.Fatal(err)
	}
	best, err := r.Generate(ctx, Options{Config: seededConfig(), Count: 8})
	if err != nil {
		t.Fatal(err)
	}
	if best.Mode != ModeBest {
		t.Errorf("mode = %s, want %s", best.Mode, ModeBest)
	}
	if best.Layout.Score.Total < single.Layout.Score.Total {
		t.Errorf("best-of-8 scored %d, single %d", best.Layout.Score.Total, single.Layout.Score.Total)
	}
}

func TestRunnerBusinessCard(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	cfg := seededConfig()
	cfg.ContentType = layout.ContentBusinessCard
	cfg.CanvasSize = layout.Dimensions{}
	cfg.Content.ContactInfo = []string{"jane@example.com", "+1 555 0100"}

	res, err := r.Generate(context.Background(), Options{Config: cfg})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Layout.Type != layout.ContentBusinessCard {
		t.Errorf("type = %s", res.Layout.Type)
	}
}

func TestRunnerHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetGenerationHooks(h)
	defer observability.Reset()

	r := NewRunner(newMemCache(), nil, quietLogger())
	ctx := context.Background()
	_, _ = r.Generate(ctx, Options{Config: seededConfig()})
	_, _ = r.Generate(ctx, Options{Config: seededConfig()})

	if h.starts != 2 || len(h.results) != 2 {
		t.Fatalf("starts %d, completions %d", h.starts, len(h.results))
	}
	if h.results[0].CacheHit || !h.results[1].CacheHit {
		t.Errorf("cache hit flags = %v, %v", h.results[0].CacheHit, h.results[1].CacheHit)
	}
	if h.results[0].VibeID != "minimal" || h.results[0].Mode != ModeSingle {
		t.Errorf("result = %+v", h.results[0])
	}
}

func TestRunnerGenerateCancelled(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Generate(ctx, Options{Config: seededConfig(), Count: 4}); err == nil {
		t.Error("expected an error for a cancelled best-of-N request")
	}
}

func TestRunnerScore(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	ctx := context.Background()

	gen, err := r.Generate(ctx, Options{Config: seededConfig()})
	if err != nil {
		t.Fatal(err)
	}

	res, err := r.Score(ctx, ScoreRequest{Layout: gen.Layout, Background: seededConfig().Colors.Background})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Mode != ModeScore || res.Layout.Score.Total != gen.Layout.Score.Total {
		t.Errorf("rescored %d, generated %d", res.Layout.Score.Total, gen.Layout.Score.Total)
	}

	stripped := gen.Layout
	stripped.Grid = layout.GridSystem{}
	res, err = r.Score(ctx, ScoreRequest{Layout: stripped})
	if err != nil {
		t.Fatalf("Score without grid: %v", err)
	}
	if res.Layout.Grid != gen.Layout.Grid {
		t.Errorf("derived grid %+v, want %+v", res.Layout.Grid, gen.Layout.Grid)
	}

	if _, err := r.Score(ctx, ScoreRequest{}); !verrors.Is(err, verrors.ErrCodeInvalidCanvas) {
		t.Errorf("empty layout: err = %v", err)
	}
	if _, err := r.Score(ctx, ScoreRequest{Layout: gen.Layout, Background: "nope"}); !verrors.Is(err, verrors.ErrCodeInvalidColor) {
		t.Errorf("bad background: err = %v", err)
	}
}
