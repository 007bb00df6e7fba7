// Package async provides a generic settle-once Future and helpers for
// coordinating several of them.
//
// A Future[T] holds the single outcome of an asynchronous computation: a value
// or an error. It can be settled by the computation itself (see Go) or by any
// code holding it (Resolve, Reject). Only the first settle counts, which makes a
// Future a safe place to store a result that many goroutines read:
//
//	f := async.NewFuture[User]()
//
//	go func() {
//		user, err := fetchUser(ctx, 123)
//		if err != nil {
//			f.Reject(err)
//			return
//		}
//		f.Resolve(user)
//	}()
//
//	user, err := f.Await()
//
// Running a function asynchronously:
//
//	future := async.Go(ctx, 123, fetchUser)
//
//	// Do other work...
//
//	user, err := future.AwaitContext(ctx)
//
// Waiting with a deadline:
//
//	user, err := future.AwaitWithTimeout(50 * time.Millisecond)
//	if errors.Is(err, async.ErrTimeout) {
//		log.Println("still running")
//	}
//
// # Coordination
//
// WaitAll collects every result in order and fails fast on the first error:
//
//	users, err := async.WaitAll(ctx,
//		async.Go(ctx, 1, fetchUser),
//		async.Go(ctx, 2, fetchUser),
//	)
//
// WaitAny returns as soon as one future settles:
//
//	index, user, err := async.WaitAny(futures...)
//
// # Concurrency Safety
//
// All methods are safe for concurrent use. Settling is guarded by sync.Once and
// readers synchronize on a closed channel, so a settled Future never changes.
package async
