package skincfg

import (
	"fmt"
	"slices"
)

// status classifies what a single source knows about a lookup.
type status int

const (
	statusAbsent status = iota // key not defined here, chain continues
	statusFound                // usable typed value, chain stops
	statusFailed               // value present but not coercible, chain continues
)

// localResult is the outcome of asking one source for a lookup.
type localResult[V any] struct {
	value V
	null  bool
	state status
	err   error
}

// Source wraps exactly one SkinStore and answers whether it directly holds a
// typed value for a lookup key. Sources are immutable references; when the
// set of active sources changes, the chain is rebuilt rather than mutated.
type Source struct {
	name  string
	store *SkinStore
}

// NewSource creates a source over the given store. The name only identifies
// the layer in logs (e.g. "beatmap", "user").
func NewSource(name string, store *SkinStore) *Source {
	return &Source{name: name, store: store}
}

// Name returns the identifying layer name.
func (s *Source) Name() string { return s.name }

// Store returns the wrapped store.
func (s *Source) Store() *SkinStore { return s.store }

// tryGetLocal dispatches on the lookup variant and reports whether this
// source alone can satisfy it. A present-but-uncoercible value is terminal
// for this source but not for the chain; an absent key defers to the next
// source without error.
func tryGetLocal[V any](src *Source, lookup Lookup) localResult[V] {
	switch l := lookup.(type) {
	case SettingKey:
		raw, present := src.store.Settings[string(l)]
		if !present {
			return localResult[V]{state: statusAbsent}
		}
		value, null, err := coerce[V](lookup, raw)
		if err != nil {
			return localResult[V]{state: statusFailed, err: err}
		}
		return localResult[V]{value: value, null: null, state: statusFound}

	case ColourKey:
		c, present := src.store.CustomColours[string(l)]
		if !present {
			return localResult[V]{state: statusAbsent}
		}
		value, ok := any(c).(V)
		if !ok {
			contractViolation(lookup, fmt.Sprintf("%T", value))
		}
		return localResult[V]{value: value, state: statusFound}

	case ComboColoursKey:
		// An empty palette is "not defined here"; the chain-level fallback
		// policy decides what happens on total exhaustion.
		if len(src.store.ComboColours) == 0 {
			return localResult[V]{state: statusAbsent}
		}
		value, ok := any(slices.Clone(src.store.ComboColours)).(V)
		if !ok {
			contractViolation(lookup, fmt.Sprintf("%T", value))
		}
		return localResult[V]{value: value, state: statusFound}

	case VersionKey:
		if src.store.LegacyVersion == nil {
			return localResult[V]{state: statusAbsent}
		}
		value, ok := any(*src.store.LegacyVersion).(V)
		if !ok {
			contractViolation(lookup, fmt.Sprintf("%T", value))
		}
		return localResult[V]{value: value, state: statusFound}

	default:
		// A structured key this store does not model.
		return localResult[V]{state: statusAbsent}
	}
}
