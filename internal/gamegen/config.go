package gamegen

import "time"

// Config controls the behavior of the Generator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxAttempts is the total number of backend invocations allowed
	// per generation before giving up.
	MaxAttempts int

	// RetryDelay is the fixed pause between attempts.
	RetryDelay time.Duration

	// MaxDocumentChars caps how much of the document is sent to the
	// model.
	MaxDocumentChars int
}

// DefaultConfig returns the recommended generator configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:        4096,
		Temperature:      0.8,
		MaxAttempts:      2,
		RetryDelay:       time.Second,
		MaxDocumentChars: 4000,
	}
}
