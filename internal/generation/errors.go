package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when the LLM call fails for any
	// general reason.
	ErrGenerationFailed = errors.New("failed to generate content")

	// ErrInvalidResponse is returned when the LLM response is empty or
	// cannot be interpreted.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrInvalidConfig is returned when the generator configuration is
	// invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
