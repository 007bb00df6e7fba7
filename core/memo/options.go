package memo

import "log/slog"

type options struct {
	logger       *slog.Logger
	observer     Observer
	store        any // Store[K], checked against the key type in New
	retryOnError bool
}

// Option configures a Memo.
type Option func(*options)

// WithLogger sets the logger for cache lifecycle messages.
// Misses, settlements and abandonments are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver attaches an Observer that receives cache lifecycle events.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithStore replaces the default unbounded store.
// A store that evicts entries trades the at-most-once guarantee for bounded
// memory: an evicted key is recomputed on its next Get.
//
// K must be the key type of the Memo the option is passed to; New panics
// otherwise.
func WithStore[K comparable](s Store[K]) Option {
	return func(o *options) {
		if s != nil {
			o.store = s
		}
	}
}

// WithRetryOnError drops an entry as soon as its producer fails, so the next
// Get for the key calls the wrapped function again. Subscribers already
// attached still receive the error.
//
// By default failures are cached for the life of the Memo and every later
// caller with the same key observes the same error.
func WithRetryOnError() Option {
	return func(o *options) {
		o.retryOnError = true
	}
}
