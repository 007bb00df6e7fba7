package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Helpers return an empty Attr for zero inputs, which slog drops, so call
// sites never need nil checks: log.Debug("settled", logger.Error(err)).

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Errors
// ============================================================================

// Errors groups the non-nil errors under "errors", keyed by their position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an "error" attribute. Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Cache
// ============================================================================

// CacheKey formats a cache key under "cache_key".
func CacheKey(key any) slog.Attr {
	if key == nil {
		return slog.Attr{}
	}
	if s, ok := key.(string); ok {
		return slog.String("cache_key", s)
	}
	return slog.String("cache_key", fmt.Sprint(key))
}

// Outcome records how a pending entry ended: value, error or cancelled.
func Outcome(outcome string) slog.Attr {
	return slog.String("outcome", outcome)
}

// Removed records whether an operation dropped a cache entry.
func Removed(removed bool) slog.Attr {
	return slog.Bool("removed", removed)
}

// ============================================================================
// Timing
// ============================================================================

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed logs the time passed since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// ============================================================================
// Transport
// ============================================================================

// RequestID creates an attribute for request IDs.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Endpoint creates an attribute for a remote endpoint URL or address.
func Endpoint(url string) slog.Attr {
	if url == "" {
		return slog.Attr{}
	}
	return slog.String("endpoint", url)
}

// Operation names a remote operation, such as a GraphQL query name.
func Operation(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("operation", name)
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Attempt records a 1-based retry attempt number.
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// ============================================================================
// Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for event names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Count creates a counter attribute under key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
