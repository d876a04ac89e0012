package llm

import (
	"context"
)

// SampleOptions configures stochastic decoding for one Sample call.
type SampleOptions struct {
	// Count is the number of return sequences requested.
	Count int
	// MaxTokens bounds the generated length of each sequence.
	MaxTokens int
	// TopK restricts sampling to the K most likely tokens. Zero disables it.
	TopK int
	// TopP is the nucleus cutoff. Zero leaves the provider default.
	TopP float32
	// Temperature scales the sampling distribution. Zero leaves the provider default.
	Temperature float32
	// StopEarly ends a sequence at its first terminal token.
	StopEarly bool
}

// Sampler draws candidate completions for a prompt from a loaded model.
// Implementations may return fewer than opts.Count sequences per call.
// A Sampler is created once and shared by all requests.
type Sampler interface {
	Sample(ctx context.Context, prompt string, opts SampleOptions) ([]string, error)
	Name() string
}

// Passthrough is implemented by samplers whose output is the input sentence
// itself. Their candidates are returned without echo or duplicate filtering.
type Passthrough interface {
	Passthrough() bool
}

// IsPassthrough reports whether s asks to bypass result filtering.
func IsPassthrough(s Sampler) bool {
	p, ok := s.(Passthrough)
	return ok && p.Passthrough()
}
