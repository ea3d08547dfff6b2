package spline

// Config holds smoothing spline settings.
type Config struct {
	Degree    int
	Smoothing float64
	Weights   []float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a cubic interpolating configuration.
func DefaultConfig() Config {
	return Config{
		Degree:    3,
		Smoothing: 0,
	}
}

// WithDegree sets the spline degree k.
func WithDegree(k int) Option {
	return func(cfg *Config) {
		cfg.Degree = k
	}
}

// WithSmoothing sets the upper bound s on the weighted residual sum of
// squares.
func WithSmoothing(s float64) Option {
	return func(cfg *Config) {
		cfg.Smoothing = s
	}
}

// WithWeights sets per-sample weights. The slice is not copied.
func WithWeights(w []float64) Option {
	return func(cfg *Config) {
		cfg.Weights = w
	}
}

// ApplyOptions applies opts to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
