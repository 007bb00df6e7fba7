package producer

import "errors"

var (
	// ErrPanic wraps a panic recovered from a producer's work function.
	ErrPanic = errors.New("producer panicked")

	// ErrNilProducer is returned when awaiting a nil producer.
	ErrNilProducer = errors.New("nil producer")
)
