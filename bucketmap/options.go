package bucketmap

import (
	"log/slog"

	"github.com/amp-labs/bucketmap/hashing"
)

const (
	// defaultCapacity is the bucket count a map starts with when no capacity
	// option is given.
	defaultCapacity = 8

	// defaultLoadFactor is the growth threshold: the map doubles its bucket
	// count when the entry count exceeds loadFactor entries per bucket. The
	// default lets average bucket length reach ~4 before growing, which is a
	// deliberate tunable, not a bound on correctness.
	defaultLoadFactor = 4
)

// Options is used to configure a map at construction time.
type Options struct {
	capacity   int
	loadFactor int
	hash       hashing.Hash64
	logger     *slog.Logger
}

// Option is a functional option for configuring a map via New.
type Option func(*Options)

// WithCapacity requests at least n buckets initially. The bucket count is
// rounded up to the next power of two so bitmask indexing stays valid; the
// exact count is never exposed as a settable value. New fails with
// errors.ErrInvalidCapacity when n < 1.
func WithCapacity(n int) Option {
	return func(o *Options) {
		o.capacity = n
	}
}

// WithLoadFactor sets the growth threshold to f entries per bucket.
// The map doubles its bucket count when Len() exceeds f times the bucket
// count. New fails with errors.ErrInvalidLoadFactor when f < 1.
func WithLoadFactor(f int) Option {
	return func(o *Options) {
		o.loadFactor = f
	}
}

// WithHash sets the hash function used to route keys to buckets.
// The function must be deterministic for equal keys. Defaults to
// hashing.XXHash64.
func WithHash(h hashing.Hash64) Option {
	return func(o *Options) {
		o.hash = h
	}
}

// WithLogger sets a logger for debug-level structural events (currently
// bucket-array grows). A nil logger disables logging, which is the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}

func defaultOptions() Options {
	return Options{
		capacity:   defaultCapacity,
		loadFactor: defaultLoadFactor,
		hash:       hashing.XXHash64,
	}
}
