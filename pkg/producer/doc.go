// Package producer defines lazy, single-emission asynchronous producers.
//
// A Producer[T] describes work that, once subscribed to, yields exactly one
// value or one error. Subscribing returns a Subscription whose Unsubscribe
// cancels interest in the outcome and, for producers built with Func, cancels
// the context the work runs with.
//
//	p := producer.Func(func(ctx context.Context) (*User, error) {
//		return repo.FindUser(ctx, id)
//	})
//
//	sub := p.Subscribe(
//		func(u *User) { log.Println("loaded", u.ID) },
//		func(err error) { log.Println("failed", err) },
//	)
//	defer sub.Unsubscribe()
//
// Most callers just want the result and use Await, which blocks until the
// producer emits or the context is done:
//
//	user, err := producer.Await(ctx, p)
//
// Just and Fail build producers that emit synchronously, and Map transforms a
// value without subscribing early:
//
//	names := producer.Map(p, func(u *User) string { return u.Name })
//
// Every subscription to a Func producer starts its own run. Use the memo
// package to share one run between many subscribers.
package producer
