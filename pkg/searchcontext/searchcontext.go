package searchcontext

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/memo/core/memo"
	"github.com/dmitrymomot/memo/pkg/graphql"
	"github.com/dmitrymomot/memo/pkg/producer"
)

const isAvailableQuery = `query IsSearchContextAvailable($spec: String!) {
	isSearchContextAvailable(spec: $spec)
}`

type availableResult struct {
	Available bool `json:"isSearchContextAvailable"`
}

type fallback struct {
	Spec        string
	DefaultSpec string
}

// Service answers search context availability questions, sharing one backend
// request per spec across all callers.
type Service struct {
	available   *memo.Memo[string, string, bool]
	withDefault *memo.Memo[fallback, string, string]
	client      graphql.Doer
}

// Option configures a Service.
type Option func(*serviceOptions)

type serviceOptions struct {
	logger *slog.Logger
	memo   []memo.Option
}

// WithLogger sets the logger passed down to both memos.
func WithLogger(l *slog.Logger) Option {
	return func(o *serviceOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMemoOptions forwards extra options, such as memo.WithStore, to both memos.
func WithMemoOptions(opts ...memo.Option) Option {
	return func(o *serviceOptions) { o.memo = append(o.memo, opts...) }
}

// New creates a Service backed by client.
func New(client graphql.Doer, opts ...Option) *Service {
	o := serviceOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	memoOpts := append([]memo.Option{memo.WithLogger(o.logger)}, o.memo...)

	s := &Service{client: client}
	s.available = memo.New(s.isAvailable, memo.KeyOf(specKey), memoOpts...)
	s.withDefault = memo.New(s.specOrDefault, memo.KeyOf(fallbackKey), memoOpts...)
	return s
}

// IsSpecAvailable reports whether spec names an existing search context.
func (s *Service) IsSpecAvailable(spec string) producer.Producer[bool] {
	return s.available.Get(spec)
}

// AvailableSpecOrDefault emits spec if it is available and defaultSpec otherwise.
func (s *Service) AvailableSpecOrDefault(spec, defaultSpec string) producer.Producer[string] {
	return s.withDefault.Get(fallback{Spec: spec, DefaultSpec: defaultSpec})
}

// Stats returns memo statistics for both lookups.
func (s *Service) Stats() (available, specOrDefault memo.Stats) {
	return s.available.Stats(), s.withDefault.Stats()
}

// isAvailable builds an uncached query. specOrDefault calls it directly so the
// two memos never share entries.
func (s *Service) isAvailable(spec string) producer.Producer[bool] {
	return producer.Map(
		graphql.Query[availableResult](s.client, graphql.Request{
			Name:      "IsSearchContextAvailable",
			Query:     isAvailableQuery,
			Variables: map[string]any{"spec": spec},
		}),
		func(r availableResult) bool { return r.Available },
	)
}

func (s *Service) specOrDefault(f fallback) producer.Producer[string] {
	return producer.Map(s.isAvailable(f.Spec), func(ok bool) string {
		if ok {
			return f.Spec
		}
		return f.DefaultSpec
	})
}

// Specs are used as given. An empty spec is queried like any other and is
// reported unavailable by the backend, so the fallback yields the default.
func specKey(spec string) string {
	return spec
}

func fallbackKey(f fallback) string {
	return f.Spec + ":" + f.DefaultSpec
}
