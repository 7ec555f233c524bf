package llm

import "errors"

var (
	// ErrDisabled indicates the LLM subsystem is turned off by configuration.
	ErrDisabled = errors.New("llm disabled")

	// ErrUnavailable indicates the Ollama endpoint could not be reached.
	ErrUnavailable = errors.New("ollama unavailable")

	// ErrTimeout indicates the call exceeded its deadline.
	ErrTimeout = errors.New("llm call timed out")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structure.
	ErrInvalidOutput = errors.New("invalid llm output")

	// ErrRetryExhausted indicates all retry attempts failed.
	ErrRetryExhausted = errors.New("llm retries exhausted")
)
