package skincfg

import (
	"sync"

	"go.uber.org/zap"
)

// Texture is an opaque handle to a named skin texture. Decoding texture data
// is out of this package's hands; stores hand back whatever handle their
// backing representation uses.
type Texture interface {
	TextureName() string
}

// Sample is an opaque handle to a named skin audio sample.
type Sample interface {
	SampleName() string
}

// Component is an opaque handle to a named renderable skin component.
type Component interface {
	ComponentName() string
}

// TextureStore supplies named textures.
type TextureStore interface {
	LookupTexture(name string) (Texture, bool)
}

// SampleStore supplies named audio samples.
type SampleStore interface {
	LookupSample(name string) (Sample, bool)
}

// ComponentStore supplies named renderable components.
type ComponentStore interface {
	LookupComponent(name string) (Component, bool)
}

// Provider is the single entry point consumers use for skin capabilities.
// Configuration lookups are forwarded to the current resolution chain;
// texture, sample and component retrieval are plain single-store delegation
// with no resolution logic.
//
// The chain reference is swapped wholesale by SetSources when the provider
// hierarchy recomposes; a resolve call in flight keeps the chain it started
// with.
type Provider struct {
	mu    sync.RWMutex
	chain *Chain
	log   *zap.Logger

	textures   TextureStore
	samples    SampleStore
	components ComponentStore
}

// NewProvider creates a provider over the given sources, most specific
// first.
func NewProvider(sources ...*Source) *Provider {
	p := &Provider{log: zap.NewNop()}
	p.chain = newChain(p.log, sources...)
	return p
}

// SetSources replaces the provider's resolution chain with a freshly built
// one over the given sources. Lookups started before the swap complete
// against the old chain.
func (p *Provider) SetSources(sources ...*Source) {
	chain := newChain(p.log, sources...)
	p.mu.Lock()
	p.chain = chain
	p.mu.Unlock()
}

// Chain returns the provider's current resolution chain.
func (p *Provider) Chain() *Chain {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.chain
}

// Texture retrieves a named texture from the configured texture store.
func (p *Provider) Texture(name string) (Texture, bool) {
	if p.textures == nil {
		return nil, false
	}
	return p.textures.LookupTexture(name)
}

// Sample retrieves a named audio sample from the configured sample store.
func (p *Provider) Sample(name string) (Sample, bool) {
	if p.samples == nil {
		return nil, false
	}
	return p.samples.LookupSample(name)
}

// Component retrieves a named renderable component from the configured
// component store.
func (p *Provider) Component(name string) (Component, bool) {
	if p.components == nil {
		return nil, false
	}
	return p.components.LookupComponent(name)
}

// GetConfig resolves a typed lookup through the provider's current chain and
// wraps the result in a fresh observable container. A nil return means no
// source had the value and no category fallback applied.
func GetConfig[V any](p *Provider, lookup Lookup) *Bindable[V] {
	return Resolve[V](p.Chain(), lookup)
}
