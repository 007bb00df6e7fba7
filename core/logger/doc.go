// Package logger provides slog construction and attribute helpers shared by the
// memo packages.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/memo/core/logger"
//
//	log := logger.New(
//		logger.WithDevelopment("search"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	users := memo.New(fetchUser, memo.KeyOf(userID), memo.WithLogger(log))
//
// Production setups usually want JSON:
//
//	log := logger.New(
//		logger.WithProduction("search"),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Context Values
//
// Extractors add attributes taken from the context to every *Context call:
//
//	log := logger.New(
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "query sent")
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, and slog skips
// empty attributes, so they are safe to pass unconditionally:
//
//	log.Debug("memo: settled",
//		logger.CacheKey(key),
//		logger.Outcome("error"),
//		logger.Error(err),
//	)
//
//	log.Warn("graphql: request failed",
//		logger.Operation("IsSearchContextAvailable"),
//		logger.StatusCode(502),
//		logger.Elapsed(start),
//	)
package logger
