package memo

import "errors"

var (
	// ErrKey wraps failures of the key function. Nothing is cached for such calls.
	ErrKey = errors.New("memo: key derivation failed")

	// ErrProducer wraps a panic or nil result from the wrapped function.
	// It is cached as the entry's terminal error.
	ErrProducer = errors.New("memo: producer function failed")
)
