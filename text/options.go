package text

// EngineOption configures Engine creation.
type EngineOption func(*engineConfig)

// engineConfig holds configuration for Engine.
type engineConfig struct {
	cache  CacheConfig
	layout LayoutOptions
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() engineConfig {
	return engineConfig{
		cache:  DefaultCacheConfig(),
		layout: DefaultLayoutOptions(),
	}
}

// WithRowWidth sets the number of scalars per packing row.
// The width must be positive and even.
func WithRowWidth(n int) EngineOption {
	return func(c *engineConfig) {
		c.cache.RowWidth = n
	}
}

// WithLayoutOptions sets the text preprocessing options.
func WithLayoutOptions(o LayoutOptions) EngineOption {
	return func(c *engineConfig) {
		c.layout = o
	}
}
