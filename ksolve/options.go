package ksolve

// LoadOption customizes Load's behavior before parsing begins.
type LoadOption func(*loadConfig)

type loadConfig struct {
	maxGeneratorOrder int
}

func newLoadConfig() *loadConfig {
	return &loadConfig{
		// 1,000,000 matches spec.md's "default generator power cap";
		// a generator whose move class never returns to identity within
		// this many applications almost certainly indicates a malformed
		// transformation rather than a legitimately large puzzle.
		maxGeneratorOrder: 1_000_000,
	}
}

// WithMaxGeneratorOrder overrides the cap on a single generator's move
// class order. Panics if n <= 0.
func WithMaxGeneratorOrder(n int) LoadOption {
	if n <= 0 {
		panic("ksolve: WithMaxGeneratorOrder(n<=0)")
	}
	return func(c *loadConfig) {
		c.maxGeneratorOrder = n
	}
}
