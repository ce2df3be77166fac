package skincfg

// SkinStore is the per-source configuration storage: freeform settings kept
// as raw strings, named custom colours, the combo colour palette, and a small
// set of strongly typed fields with their own default policies.
//
// A store belongs to exactly one Source and is mutated only by the context
// that owns it. The resolution chain takes no locks: a lookup racing an
// owner-side mutation observes either the old or the new value of an entry,
// which is sufficient since no cross-entry atomicity is required.
type SkinStore struct {
	// Settings maps free-text names to raw string values. A nil pointer is
	// an explicitly null value, which is distinct from the key being absent
	// from the map entirely.
	Settings map[string]*string

	// CustomColours maps colour names to their values.
	CustomColours map[string]Colour

	// ComboColours is the ordered combo palette. An empty palette means
	// "not defined here" and defers to the chain-level fallback policy.
	ComboColours []Colour

	// AllowDefaultComboColoursFallback controls whether the built-in default
	// palette may substitute for a chain-wide missing combo palette. A store
	// that sets this to false makes the absence propagate instead.
	AllowDefaultComboColoursFallback bool

	// LegacyVersion is nil when this store defers to the next source in the
	// chain (or the LatestVersion fallback). Stores populated by the decoder
	// from a versionless definition receive FirstVersion instead.
	LegacyVersion *float64
}

// NewSkinStore creates an empty store with default policies: no settings or
// colours, default-palette fallback allowed, no version.
func NewSkinStore() *SkinStore {
	return &SkinStore{
		Settings:                         make(map[string]*string),
		CustomColours:                    make(map[string]Colour),
		AllowDefaultComboColoursFallback: true,
	}
}

// SetSetting stores a raw string value for a free-text setting name.
func (s *SkinStore) SetSetting(name, value string) {
	s.Settings[name] = &value
}

// SetNullSetting stores an explicitly null value for a setting name. The key
// is present but carries no value, which resolves to a present-but-null
// result rather than continuing down the chain.
func (s *SkinStore) SetNullSetting(name string) {
	s.Settings[name] = nil
}

// SetCustomColour stores a named colour.
func (s *SkinStore) SetCustomColour(name string, c Colour) {
	s.CustomColours[name] = c
}

// SetVersion sets the legacy version marker.
func (s *SkinStore) SetVersion(v float64) {
	s.LegacyVersion = &v
}
