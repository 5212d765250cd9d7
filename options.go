package reasonify

import (
	"time"
)

// ProcessOptions holds options for detection and rendering.
type ProcessOptions struct {
	Pairs     []MarkerPair
	Clock     func() time.Time
	Config    *RenderConfig
	KeepEmpty bool
}

// Option is a function that configures ProcessOptions.
type Option func(*ProcessOptions)

// WithPairs replaces the marker pair table.
func WithPairs(pairs ...MarkerPair) Option {
	return func(opts *ProcessOptions) {
		opts.Pairs = pairs
	}
}

// WithClock sets the wall-clock sampler used for span timestamps.
func WithClock(now func() time.Time) Option {
	return func(opts *ProcessOptions) {
		opts.Clock = now
	}
}

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ProcessOptions) {
		opts.Config = config
	}
}

// WithKeepEmpty renders spans with blank content as empty blocks
// instead of only removing them from the visible text.
func WithKeepEmpty(keep bool) Option {
	return func(opts *ProcessOptions) {
		opts.KeepEmpty = keep
	}
}

// defaultProcessOptions returns the default options.
func defaultProcessOptions() *ProcessOptions {
	return &ProcessOptions{
		Pairs:  DefaultMarkerPairs(),
		Clock:  time.Now,
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ProcessOptions {
	options := defaultProcessOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Config == nil {
		options.Config = DefaultConfig()
	}
	return options
}

// renderConfig returns the config to render with, honouring KeepEmpty
// without mutating the shared default.
func (o *ProcessOptions) renderConfig() *RenderConfig {
	if !o.KeepEmpty || !o.Config.SkipEmpty {
		return o.Config
	}
	cfg := *o.Config
	cfg.SkipEmpty = false
	return &cfg
}
