package peak

// Config controls the peak fit.
type Config struct {
	// HalfWidth is the number of samples taken each side of the maximum.
	HalfWidth int
	// Degree of the fitted polynomial.
	Degree int
	// Samples is the number of points the fitted polynomial is resampled at.
	Samples int
	// SearchLimit restricts the maximum search and the fit window to
	// trace[:SearchLimit] when positive.
	SearchLimit int
	// Refine enables stationary-point polishing.
	Refine bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used for zero-order calibration.
func DefaultConfig() Config {
	return Config{
		HalfWidth: 20,
		Degree:    7,
		Samples:   100,
	}
}

// WithHalfWidth sets the window half-width in samples.
func WithHalfWidth(w int) Option {
	return func(cfg *Config) {
		cfg.HalfWidth = w
	}
}

// WithDegree sets the polynomial degree.
func WithDegree(d int) Option {
	return func(cfg *Config) {
		cfg.Degree = d
	}
}

// WithSamples sets the dense resample count.
func WithSamples(n int) Option {
	return func(cfg *Config) {
		cfg.Samples = n
	}
}

// WithSearchLimit restricts the maximum search and the fit window to the
// first n samples.
// Non-positive values search the whole trace.
func WithSearchLimit(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.SearchLimit = n
		}
	}
}

// WithRefine enables polishing the resampled maximum with the roots of the
// polynomial's derivative.
func WithRefine() Option {
	return func(cfg *Config) {
		cfg.Refine = true
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
