package cache

// ScopedKeyer wraps a Keyer with a prefix so tenants sharing a backend get
// separate namespaces.
//
//	teamKeyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "team:design:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// the default one.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed layout key.
func (k *ScopedKeyer) LayoutKey(fingerprint string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(fingerprint, opts)
}
