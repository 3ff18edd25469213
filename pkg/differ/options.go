package differ

// Option is a functional option for configuring a Differ.
type Option func(*differ)

// WithIgnoreKeys sets object keys to skip at every depth during comparison.
// Ignored keys produce no diff node at all.
func WithIgnoreKeys(keys ...string) Option {
	return func(d *differ) {
		for _, key := range keys {
			d.ignoreKeys[key] = true
		}
	}
}
