package memo

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Observer receives cache lifecycle events. Implementations must be safe for
// concurrent use: events are emitted from whichever goroutine caused them.
type Observer interface {
	On(EventData)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(EventData)

// On calls f.
func (f ObserverFunc) On(e EventData) { f(e) }

// Event is a cache lifecycle event type.
type Event int

const (
	// EventHit is emitted when Get returns an existing entry.
	EventHit Event = iota
	// EventMiss is emitted when Get creates an entry and calls the wrapped function.
	EventMiss
	// EventSettled is emitted when an entry's producer emits a value.
	EventSettled
	// EventFailed is emitted when an entry's producer emits an error.
	EventFailed
	// EventAbandoned is emitted when every subscriber left before settlement.
	EventAbandoned
	// EventKeyError is emitted when key derivation fails.
	EventKeyError
)

func (e Event) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventSettled:
		return "settled"
	case EventFailed:
		return "failed"
	case EventAbandoned:
		return "abandoned"
	case EventKeyError:
		return "key_error"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// EventData carries the details of a cache event.
type EventData struct {
	ID    string
	Event Event
	Key   string // empty for EventKeyError
	Err   error  // set for EventFailed and EventKeyError
	At    time.Time
}

func (m *Memo[A, K, T]) emit(event Event, key any, err error) {
	if m.observer == nil {
		return
	}

	var k string
	if key != nil {
		k = fmt.Sprint(key)
	}
	m.observer.On(EventData{
		ID:    uuid.NewString(),
		Event: event,
		Key:   k,
		Err:   err,
		At:    time.Now(),
	})
}
