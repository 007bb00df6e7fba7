// Package searchcontext checks whether search context specs exist on a
// Sourcegraph-style GraphQL API.
//
// Every lookup is memoized by spec for the lifetime of the Service, so any
// number of concurrent callers asking about the same spec share one request:
//
//	client, _ := graphql.New(cfg)
//	svc := searchcontext.New(client, searchcontext.WithLogger(log))
//
//	ok, err := producer.Await(ctx, svc.IsSpecAvailable("@alice/work"))
//
//	spec, err := producer.Await(ctx, svc.AvailableSpecOrDefault("@alice/work", "global"))
//
// Results, including failures, stay cached. Bound the caches with
// WithMemoOptions(memo.WithStore(...)) or retry failures with
// WithMemoOptions(memo.WithRetryOnError()).
package searchcontext
