package gamegen

import "fmt"

// OverloadedMessage is shown to the player when generation fails after all
// attempts. The underlying backend error is never surfaced.
const OverloadedMessage = "The AI model is currently overloaded. Please try again in a few moments."

// GenerationError is returned when a session could not be generated. Message
// is safe to show to the player; Err carries the last backend failure for
// logs.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ImageError is returned when one of a session's images could not be
// generated.
type ImageError struct {
	Word string
	Err  error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("generate image for %q: %v", e.Word, e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// HintError is returned when a hint could not be generated. Hints are
// best-effort and never retried.
type HintError struct {
	Word string
	Err  error
}

func (e *HintError) Error() string {
	return fmt.Sprintf("generate hint for %q: %v", e.Word, e.Err)
}

func (e *HintError) Unwrap() error {
	return e.Err
}
