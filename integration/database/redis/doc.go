// Package redis connects to Redis and provides a Redis-backed response store
// for the GraphQL client.
//
// # Connecting
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Connect validates the URL (redis:// or rediss://), then pings up to
// RetryAttempts times, doubling RetryInterval after each failure, all within
// ConnectTimeout. Configuration comes from the environment:
//
//	REDIS_URL              redis://localhost:6379/0
//	REDIS_RETRY_ATTEMPTS   3
//	REDIS_RETRY_INTERVAL   5s
//	REDIS_CONNECT_TIMEOUT  30s
//	REDIS_KEY_PREFIX       memo:
//
// Healthcheck returns a probe suitable for readiness endpoints:
//
//	check := redis.Healthcheck(client)
//	if err := check(ctx); err != nil {
//		// ErrHealthcheckFailed
//	}
//
// # Response Store
//
// ResponseStore implements graphql.ResponseStore, so GraphQL payloads are
// shared between processes and survive restarts:
//
//	store := redis.NewResponseStore(client, cfg.KeyPrefix)
//	gql, err := graphql.New(gqlCfg, graphql.WithResponseStore(store))
//
// The in-process memo still deduplicates concurrent callers; the store only
// saves the network round trip for the first caller in each process.
//
// # Errors
//
//   - ErrEmptyConnectionURL: no URL configured
//   - ErrFailedToParseRedisConnString: malformed URL or unsupported scheme
//   - ErrRedisNotReady: no successful ping within the retry budget
//   - ErrHealthcheckFailed: probe ping failed
//   - ErrStoreFailed: Redis read or write failed in ResponseStore
package redis
