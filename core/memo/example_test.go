package memo_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/memo/core/memo"
	"github.com/dmitrymomot/memo/pkg/producer"
)

func ExampleNew() {
	calls := 0
	upper := memo.New(func(s string) producer.Producer[string] {
		calls++
		return producer.Just(strings.ToUpper(s))
	}, memo.KeyOf(func(s string) string { return s }))

	ctx := context.Background()
	a, _ := producer.Await(ctx, upper.Get("go"))
	b, _ := producer.Await(ctx, upper.Get("go"))

	fmt.Println(a, b, calls)
	// Output: GO GO 1
}

func ExampleMemoize() {
	type query struct {
		Spec  string
		Trace bool
	}

	calls := 0
	lookup := func(q query) producer.Producer[bool] {
		calls++
		return producer.Just(q.Spec == "global")
	}
	lookup = memo.Memoize(lookup, memo.KeyOf(func(q query) string { return q.Spec }))

	ctx := context.Background()
	v1, _ := producer.Await(ctx, lookup(query{Spec: "global"}))
	v2, _ := producer.Await(ctx, lookup(query{Spec: "global", Trace: true}))

	fmt.Println(v1, v2, calls)
	// Output: true true 1
}
