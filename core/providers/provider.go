// Package providers wraps the supported generative backends behind one
// text-in/text-out capability. The two backends are interchangeable at
// this interface; everything above it is provider-agnostic.
package providers

import "context"

// ProviderType identifies the backend.
type ProviderType string

const (
	ProviderTypeAnthropic ProviderType = "anthropic"
	ProviderTypeOpenAI    ProviderType = "openai"
)

// Request is one synthesis call. The response is free text; callers must
// not assume any structure beyond that.
type Request struct {
	// System is the system-level instruction. Anthropic carries it in a
	// dedicated field; OpenAI receives it as the first message of a flat
	// list. The contract is identical either way.
	System string

	// Prompt is the user instruction.
	Prompt string

	// Model overrides the provider's configured default when set.
	Model string

	// Temperature is the sampling temperature.
	Temperature float64

	// MaxTokens caps the output length.
	MaxTokens int
}

// Provider is the generative backend capability.
type Provider interface {
	Name() string
	Synthesize(ctx context.Context, req *Request) (string, error)
}
