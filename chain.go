package skincfg

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Chain is an immutable ordered list of sources, most specific first (e.g. a
// per-beatmap override ahead of the user default). A chain owns no mutable
// state: when the set of active sources changes, the composing context builds
// a new chain instead of patching this one, so an in-flight resolve never
// observes a membership change.
type Chain struct {
	sources []*Source
	log     *zap.Logger
}

// NewChain builds a chain over the given sources, most specific first.
func NewChain(sources ...*Source) *Chain {
	return newChain(nil, sources...)
}

func newChain(log *zap.Logger, sources ...*Source) *Chain {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chain{sources: slices.Clone(sources), log: log}
}

// Sources returns a copy of the chain's source list in search order.
func (c *Chain) Sources() []*Source {
	return slices.Clone(c.sources)
}

// Len returns the number of sources in the chain.
func (c *Chain) Len() int {
	return len(c.sources)
}

// Resolve searches the chain for a typed value. The first source that yields
// a usable value wins; later sources are never consulted even if their values
// differ. A source whose stored value cannot be coerced is skipped silently,
// since a present-but-bad value is still "no usable value here".
//
// On total exhaustion two lookup categories apply a fallback policy:
//
//   - combo colours receive the built-in default palette unless any source in
//     the chain opts out via AllowDefaultComboColoursFallback, in which case
//     the absence propagates,
//   - the legacy version falls back to LatestVersion.
//
// Every other exhausted lookup returns nil, which callers can distinguish
// from a non-nil Bindable holding an explicitly null value.
func Resolve[V any](c *Chain, lookup Lookup) *Bindable[V] {
	for _, src := range c.sources {
		res := tryGetLocal[V](src, lookup)
		switch res.state {
		case statusFound:
			return newBindable(res.value, res.null)
		case statusFailed:
			c.log.Debug("skipping source with unusable value",
				zap.String("source", src.name),
				zap.Any("lookup", lookup),
				zap.Error(res.err))
		}
	}

	// Second pass, reached only on total exhaustion: category fallbacks.
	// Keeping this separate from the search keeps the ordering of "check
	// emptiness" versus "check opt-out flag" auditable.
	switch lookup.(type) {
	case ComboColoursKey:
		for _, src := range c.sources {
			if !src.store.AllowDefaultComboColoursFallback {
				c.log.Debug("default combo colour fallback disallowed",
					zap.String("source", src.name))
				return nil
			}
		}
		var probe V
		value, ok := any(DefaultComboColours()).(V)
		if !ok {
			contractViolation(lookup, fmt.Sprintf("%T", probe))
		}
		return newBindable(value, false)

	case VersionKey:
		var probe V
		value, ok := any(LatestVersion).(V)
		if !ok {
			contractViolation(lookup, fmt.Sprintf("%T", probe))
		}
		return newBindable(value, false)
	}

	return nil
}
