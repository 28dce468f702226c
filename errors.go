package semchunk

import "errors"

var (
	// ErrInvalidChunkSize is returned by New when the chunk size is not a
	// positive number of tokens.
	ErrInvalidChunkSize = errors.New("semchunk: chunk size must be positive")
	// ErrNilCounter is returned by New when no token counter is supplied.
	ErrNilCounter = errors.New("semchunk: token counter is nil")
	// ErrNegativeCount is returned when a token counter violates its contract
	// by reporting a negative count.
	ErrNegativeCount = errors.New("semchunk: token counter returned a negative count")
)
