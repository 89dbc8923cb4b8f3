package ziphdr

import (
	"log/slog"
	"runtime"
	"time"
)

// normalizeConfig holds configuration for Normalize.
type normalizeConfig struct {
	utc            bool
	store          bool
	level          int
	dataDescriptor bool
	now            func() time.Time
	logger         *slog.Logger
}

// defaultLevel leaves the compression choice to the caller's engine.
const defaultLevel = -1

func newNormalizeConfig(opts []Option) *normalizeConfig {
	cfg := &normalizeConfig{
		level:          defaultLevel,
		dataDescriptor: true,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// log returns the logger, falling back to a discard logger if nil.
func (c *normalizeConfig) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// Option configures Normalize.
type Option func(*normalizeConfig)

// WithUTC packs timestamps from their UTC calendar fields instead of the
// local zone.
func WithUTC(utc bool) Option {
	return func(cfg *normalizeConfig) {
		cfg.utc = utc
	}
}

// WithStore records every entry as stored (uncompressed), as if each Entry
// set Store.
func WithStore(store bool) Option {
	return func(cfg *normalizeConfig) {
		cfg.store = store
	}
}

// WithCompressionLevel passes the engine's deflate level. Level 0 means no
// compression and selects MethodStore; any other level keeps MethodDeflate.
func WithCompressionLevel(level int) Option {
	return func(cfg *normalizeConfig) {
		cfg.level = level
	}
}

// WithDataDescriptor controls flag bit 3, which tells readers that CRC and
// sizes follow the entry data. It is on by default since the local header
// is written before the data. Disable it when the engine knows the results
// up front and calls Header.Complete before encoding the local header.
func WithDataDescriptor(enabled bool) Option {
	return func(cfg *normalizeConfig) {
		cfg.dataDescriptor = enabled
	}
}

// WithClock sets the time source used for entries without a timestamp.
// If nil, time.Now is used.
func WithClock(now func() time.Time) Option {
	return func(cfg *normalizeConfig) {
		if now == nil {
			now = time.Now
		}
		cfg.now = now
	}
}

// WithLogger sets a logger for normalization.
// If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *normalizeConfig) {
		cfg.logger = logger
	}
}

// directoryConfig holds configuration for a Directory.
type directoryConfig struct {
	concurrency int
	logger      *slog.Logger
}

func (c *directoryConfig) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// DirectoryOption configures a Directory.
type DirectoryOption func(*directoryConfig)

// DirectoryWithConcurrency limits how many central directory records are
// encoded in parallel. Values below 1 use runtime.GOMAXPROCS(0).
func DirectoryWithConcurrency(n int) DirectoryOption {
	return func(cfg *directoryConfig) {
		cfg.concurrency = n
	}
}

// DirectoryWithLogger sets a logger for the directory.
// If nil, a discard logger is used (default behavior).
func DirectoryWithLogger(logger *slog.Logger) DirectoryOption {
	return func(cfg *directoryConfig) {
		cfg.logger = logger
	}
}

func newDirectoryConfig(opts []DirectoryOption) directoryConfig {
	var cfg directoryConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.concurrency < 1 {
		cfg.concurrency = runtime.GOMAXPROCS(0)
	}
	return cfg
}
