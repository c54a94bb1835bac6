package llm

import "errors"

var (
	// ErrUnavailable indicates the completion server is unreachable.
	ErrUnavailable = errors.New("generation server unavailable")

	// ErrTimeout indicates the generation request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrInvalidOutput indicates the raw response contained no parseable
	// JSON object after fence stripping.
	ErrInvalidOutput = errors.New("invalid generator output format")
)
