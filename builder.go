package skincfg

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ValidatorFunc validates a fully assembled Provider. It receives the built
// provider and should return an error if validation fails.
type ValidatorFunc func(p *Provider) error

// Builder provides a fluent interface for assembling a Provider. Layers are
// added most specific first, matching chain search order.
type Builder struct {
	layers     []builderLayer
	log        *zap.Logger
	textures   TextureStore
	samples    SampleStore
	components ComponentStore
	decodeOpts DecodeOptions
	validators []ValidatorFunc
}

// builderLayer is either a ready store or a file still to be decoded.
type builderLayer struct {
	name  string
	store *SkinStore
	path  string
}

// NewBuilder creates a new provider builder.
func NewBuilder() *Builder {
	return &Builder{
		decodeOpts: DefaultDecodeOptions(),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithStore adds a layer backed by an already populated store.
func (b *Builder) WithStore(name string, store *SkinStore) *Builder {
	b.layers = append(b.layers, builderLayer{name: name, store: store})
	return b
}

// WithSource adds a layer backed by an existing source.
func (b *Builder) WithSource(src *Source) *Builder {
	b.layers = append(b.layers, builderLayer{name: src.Name(), store: src.Store()})
	return b
}

// WithFile adds a layer decoded from a skin definition file at Build time.
// A missing file is not fatal: the layer is skipped and Build reports
// ErrSkinNotFound alongside the assembled provider.
func (b *Builder) WithFile(name, path string) *Builder {
	b.layers = append(b.layers, builderLayer{name: name, path: path})
	return b
}

// WithLogger sets the logger used by the decoder and the resolution chain.
func (b *Builder) WithLogger(log *zap.Logger) *Builder {
	b.log = log
	return b
}

// WithDecodeOptions overrides the decode options used for file layers.
func (b *Builder) WithDecodeOptions(opts DecodeOptions) *Builder {
	b.decodeOpts = opts
	return b
}

// WithTextures sets the texture store the provider delegates to.
func (b *Builder) WithTextures(s TextureStore) *Builder {
	b.textures = s
	return b
}

// WithSamples sets the sample store the provider delegates to.
func (b *Builder) WithSamples(s SampleStore) *Builder {
	b.samples = s
	return b
}

// WithComponents sets the component store the provider delegates to.
func (b *Builder) WithComponents(s ComponentStore) *Builder {
	b.components = s
	return b
}

// WithValidator adds a validation function run at the end of the build.
// Multiple validators execute in the order they are added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build assembles the Provider. File layers are decoded in order; a missing
// file skips its layer and is reported through the returned error, which is
// ErrSkinNotFound (possibly joined) when that is the only problem.
func (b *Builder) Build() (*Provider, error) {
	log := b.log
	if log == nil {
		log = zap.NewNop()
	}

	opts := b.decodeOpts
	if opts.Logger == nil {
		opts.Logger = log
	}

	var buildErrors []error
	sources := make([]*Source, 0, len(b.layers))

	for _, layer := range b.layers {
		store := layer.store
		if store == nil {
			decoded, err := DecodeFile(layer.path, opts)
			if err != nil {
				if errors.Is(err, ErrSkinNotFound) {
					buildErrors = append(buildErrors, err)
					continue
				}
				return nil, fmt.Errorf("failed to decode skin layer %q: %w", layer.name, err)
			}
			store = decoded
		}
		sources = append(sources, NewSource(layer.name, store))
	}

	p := &Provider{
		log:        log,
		textures:   b.textures,
		samples:    b.samples,
		components: b.components,
	}
	p.chain = newChain(log, sources...)

	for _, validator := range b.validators {
		if err := validator(p); err != nil {
			return nil, fmt.Errorf("provider validation failed: %w", err)
		}
	}

	// nil, or joined ErrSkinNotFound
	return p, errors.Join(buildErrors...)
}

// MustBuild is like Build but panics on error. ErrSkinNotFound is tolerated,
// since a provider can operate with the remaining layers.
func (b *Builder) MustBuild() *Provider {
	p, err := b.Build()
	if err != nil && !errors.Is(err, ErrSkinNotFound) {
		panic(fmt.Sprintf("provider build failed: %v", err))
	}
	return p
}
