package providers

import (
	"fmt"
	"sync"
)

// Registry manages provider instances and selects one by type, so
// provider dispatch happens here rather than branching through the
// pipeline.
type Registry struct {
	mu sync.RWMutex

	providers map[ProviderType]Provider
	default_  ProviderType
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[ProviderType]Provider),
	}
}

// Register adds a provider. The first registered provider becomes the
// default.
func (r *Registry) Register(providerType ProviderType, provider Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers[providerType] = provider
	if len(r.providers) == 1 {
		r.default_ = providerType
	}
}

// RegisterAnthropic creates and registers an Anthropic provider.
func (r *Registry) RegisterAnthropic(config Config) error {
	provider, err := NewAnthropicProvider(config)
	if err != nil {
		return err
	}
	r.Register(ProviderTypeAnthropic, provider)
	return nil
}

// RegisterOpenAI creates and registers an OpenAI provider.
func (r *Registry) RegisterOpenAI(config Config) error {
	provider, err := NewOpenAIProvider(config)
	if err != nil {
		return err
	}
	r.Register(ProviderTypeOpenAI, provider)
	return nil
}

// Get returns a provider by type.
func (r *Registry) Get(providerType ProviderType) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[providerType]
	if !ok {
		return nil, fmt.Errorf("provider not registered: %s", providerType)
	}
	return provider, nil
}

// Default returns the default provider.
func (r *Registry) Default() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.default_ == "" {
		return nil, fmt.Errorf("no default provider set")
	}
	return r.providers[r.default_], nil
}

// SetDefault sets the default provider.
func (r *Registry) SetDefault(providerType ProviderType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[providerType]; !ok {
		return fmt.Errorf("provider not registered: %s", providerType)
	}
	r.default_ = providerType
	return nil
}

// Has checks if a provider type is registered.
func (r *Registry) Has(providerType ProviderType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[providerType]
	return ok
}
