package graphql

import (
	"context"

	"github.com/dmitrymomot/memo/pkg/producer"
)

// Query returns a lazy producer that sends req on every subscription and
// emits the decoded data. Unsubscribing cancels the in-flight request.
func Query[T any](d Doer, req Request) producer.Producer[T] {
	return producer.Func(func(ctx context.Context) (T, error) {
		var out T
		err := d.Do(ctx, req, &out)
		return out, err
	})
}
