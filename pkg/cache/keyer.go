package cache

// Keyer derives cache keys. Implementations must be deterministic.
type Keyer interface {
	// LayoutKey returns the key of a generated layout.
	LayoutKey(fingerprint string, opts LayoutKeyOpts) string
}

// LayoutKeyOpts are the generation settings that change the output of a
// request with a given fingerprint.
type LayoutKeyOpts struct {
	Seed          float64 `json:"seed"`
	Count         int     `json:"count"` // best-of-N runs; 1 for a single search
	MaxIterations int     `json:"max_iterations"`
	MinScore      int     `json:"min_score"`
	DPI           float64 `json:"dpi,omitempty"`
}

// DefaultKeyer hashes the fingerprint and options into "layout:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(fingerprint string, opts LayoutKeyOpts) string {
	return hashKey("layout", fingerprint, opts)
}
