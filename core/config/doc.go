// Package config loads env-tagged structs, caching the result per type.
//
// A .env file in the working directory is loaded once on first use; variables
// already set in the process environment win. Parsing uses caarlos0/env.
//
//	import "github.com/dmitrymomot/memo/core/config"
//
//	var gql graphql.Config
//	if err := config.Load(&gql); err != nil {
//		log.Fatal(err)
//	}
//
//	var rdb redis.Config
//	config.MustLoad(&rdb)
//
// Each type is parsed once; later loads of the same type return the cached
// value even if the environment changed in between.
package config
