package graphql

import "time"

// Config holds connection settings for a GraphQL endpoint.
type Config struct {
	Endpoint          string        `env:"GRAPHQL_ENDPOINT,required"`
	Token             string        `env:"GRAPHQL_TOKEN"`
	Timeout           time.Duration `env:"GRAPHQL_TIMEOUT" envDefault:"30s"`
	RequestsPerSecond float64       `env:"GRAPHQL_RPS" envDefault:"0"` // 0 disables the limit
	Burst             int           `env:"GRAPHQL_BURST" envDefault:"10"`
	CacheTTL          time.Duration `env:"GRAPHQL_CACHE_TTL" envDefault:"5m"`
}
