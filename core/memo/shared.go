package memo

import (
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/memo/pkg/async"
	"github.com/dmitrymomot/memo/pkg/producer"
)

// shared multicasts one upstream run to every subscriber and replays the
// settled outcome to late subscribers. Upstream is subscribed when the first
// subscriber arrives and cancelled when the last one leaves before settlement.
type shared[T any] struct {
	resolve func() producer.Producer[T]
	source  producer.Producer[T]
	once    sync.Once

	outcome   *async.Future[T]
	onSettle  func(s *shared[T], err error)
	onAbandon func(s *shared[T])
	onRevive  func(s *shared[T])

	mu       sync.Mutex
	subs     []*subscriber[T]
	upstream producer.Subscription
	running  bool
	gen      uint64
}

type subscriber[T any] struct {
	onValue func(T)
	onError func(error)
	done    atomic.Bool
}

func newShared[T any](resolve func() producer.Producer[T]) *shared[T] {
	return &shared[T]{
		resolve:   resolve,
		outcome:   async.NewFuture[T](),
		onSettle:  func(*shared[T], error) {},
		onAbandon: func(*shared[T]) {},
		onRevive:  func(*shared[T]) {},
	}
}

// init obtains the upstream producer exactly once.
func (s *shared[T]) init() producer.Producer[T] {
	s.once.Do(func() {
		s.source = s.resolve()
		s.resolve = nil
	})
	return s.source
}

// Subscribe implements producer.Producer.
func (s *shared[T]) Subscribe(onValue func(T), onError func(error)) producer.Subscription {
	if onValue == nil {
		onValue = func(T) {}
	}
	if onError == nil {
		onError = func(error) {}
	}

	source := s.init()

	s.mu.Lock()
	if s.outcome.IsComplete() {
		s.mu.Unlock()
		replay(s.outcome, onValue, onError)
		return producer.Noop
	}

	sub := &subscriber[T]{onValue: onValue, onError: onError}
	s.subs = append(s.subs, sub)

	start := !s.running
	if start {
		s.running = true
		s.gen++
	}
	gen := s.gen
	// Generation 1 is the first run; anything later restarts an abandoned producer.
	revive := start && gen > 1
	s.mu.Unlock()

	if revive {
		s.onRevive(s)
	}
	if start {
		s.connect(source, gen)
	}

	return producer.SubscriptionFunc(func() { s.unsubscribe(sub) })
}

// connect subscribes upstream for generation gen. Upstream may emit
// synchronously, or every subscriber may leave, before Subscribe returns.
func (s *shared[T]) connect(source producer.Producer[T], gen uint64) {
	up := source.Subscribe(
		func(v T) { s.settle(gen, v, nil) },
		func(err error) {
			var zero T
			s.settle(gen, zero, err)
		},
	)

	s.mu.Lock()
	if s.running && s.gen == gen {
		s.upstream = up
		up = nil
	}
	s.mu.Unlock()

	if up != nil {
		up.Unsubscribe()
	}
}

func (s *shared[T]) settle(gen uint64, v T, err error) {
	s.mu.Lock()
	if !s.running || s.gen != gen || s.outcome.IsComplete() {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.outcome.Reject(err)
	} else {
		s.outcome.Resolve(v)
	}
	subs := s.subs
	s.subs = nil
	s.running = false
	s.upstream = nil
	s.mu.Unlock()

	s.onSettle(s, err)

	for _, sub := range subs {
		if sub.done.CompareAndSwap(false, true) {
			replay(s.outcome, sub.onValue, sub.onError)
		}
	}
}

func (s *shared[T]) unsubscribe(sub *subscriber[T]) {
	if !sub.done.CompareAndSwap(false, true) {
		return
	}

	s.mu.Lock()
	for i, cur := range s.subs {
		if cur == sub {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			break
		}
	}
	if len(s.subs) > 0 || !s.running || s.outcome.IsComplete() {
		s.mu.Unlock()
		return
	}

	s.running = false
	s.gen++
	up := s.upstream
	s.upstream = nil
	s.mu.Unlock()

	if up != nil {
		up.Unsubscribe()
	}
	s.onAbandon(s)
}

// idle reports whether s has no upstream run and no outcome, which is the
// state left behind by abandonment.
func (s *shared[T]) idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.running && !s.outcome.IsComplete()
}

func replay[T any](f *async.Future[T], onValue func(T), onError func(error)) {
	v, err := f.Await()
	if err != nil {
		onError(err)
		return
	}
	onValue(v)
}
