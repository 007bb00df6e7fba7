// Package graphql is a small GraphQL-over-HTTP client.
//
// It sends POST requests with a JSON {query, variables} body, applies a
// client-side rate limit, and can cache successful "data" payloads in a
// ResponseStore such as the Redis store in integration/database/redis.
//
//	client, err := graphql.New(graphql.Config{
//		Endpoint: "https://sourcegraph.example.com/.api/graphql",
//		Token:    os.Getenv("SRC_ACCESS_TOKEN"),
//		Timeout:  10 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	var out struct {
//		Available bool `json:"isSearchContextAvailable"`
//	}
//	err = client.Do(ctx, graphql.Request{
//		Name:      "IsSearchContextAvailable",
//		Query:     `query IsSearchContextAvailable($spec: String!) { isSearchContextAvailable(spec: $spec) }`,
//		Variables: map[string]any{"spec": "global"},
//	}, &out)
//
// Query wraps a request in a lazy producer, which is what memo expects:
//
//	p := graphql.Query[result](client, req) // nothing sent yet
//	v, err := producer.Await(ctx, p)
//
// # Errors
//
// Non-200 responses return *HTTPError, GraphQL "errors" arrays return
// *QueryError. Both can be inspected with errors.As:
//
//	var qe *graphql.QueryError
//	if errors.As(err, &qe) {
//		log.Warn("query rejected", logger.Error(err))
//	}
package graphql
