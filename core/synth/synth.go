package synth

import (
	"context"

	"github.com/mkerrigan/figgen/core/providers"
)

// Options tune the backend call.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// DefaultOptions returns the settings used by the generate flow.
func DefaultOptions() Options {
	return Options{
		Temperature: 0.2,
		MaxTokens:   8192,
	}
}

// Synthesizer drives one generation round trip: prompt assembly, backend
// call, fence stripping, validation.
type Synthesizer struct {
	provider providers.Provider
	opts     Options
}

// NewSynthesizer builds a Synthesizer over any provider.
func NewSynthesizer(provider providers.Provider, opts Options) *Synthesizer {
	return &Synthesizer{provider: provider, opts: opts}
}

// Generate produces validated markup for the request. The raw backend
// response never escapes this function unvalidated.
func (s *Synthesizer) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return "", err
	}

	raw, err := s.provider.Synthesize(ctx, &providers.Request{
		System:      SystemInstruction,
		Prompt:      prompt,
		Model:       s.opts.Model,
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	markup := StripFences(raw)
	if err := Validate(markup); err != nil {
		return "", err
	}
	return markup, nil
}
