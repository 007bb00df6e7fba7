package memo

// Stats is a point-in-time snapshot of a Memo's counters.
type Stats struct {
	Hits        int64 // Get calls served by an existing entry
	Misses      int64 // Get calls that created an entry
	Invocations int64 // calls to the wrapped function
	Settled     int64 // entries settled with a value
	Failed      int64 // entries settled with an error
	Abandoned   int64 // pending entries dropped after every subscriber left
	KeyErrors   int64 // Get calls whose key derivation failed
	Entries     int   // entries currently stored
}
