package skincfg

// Lookup identifies a single configuration value to resolve. The set of
// variants is closed: free-text setting names, named custom colours, the
// global combo colour palette, and the legacy version marker. All variants
// are comparable and usable as map keys.
type Lookup interface {
	isLookup()
}

// SettingKey is a free-text setting name looked up in a store's settings
// table. Well-known settings are declared as typed constants of this type so
// call sites stay greppable.
type SettingKey string

func (SettingKey) isLookup() {}

// ColourKey is the name of a custom colour looked up in a store's colour
// table.
type ColourKey string

func (ColourKey) isLookup() {}

// ComboColoursKey requests the ordered combo colour palette. Resolution
// applies the default-palette fallback policy described on Chain.
type ComboColoursKey struct{}

func (ComboColoursKey) isLookup() {}

// VersionKey requests the legacy version marker. Resolution falls back to
// LatestVersion when no source in the chain carries a version.
type VersionKey struct{}

func (VersionKey) isLookup() {}

// Version constants for the legacy version marker.
const (
	// FirstVersion is the baseline assigned to stores decoded from a
	// definition that does not declare a version.
	FirstVersion = 1.0

	// LatestVersion is the ultimate fallback when no source in a chain
	// declares a version at all.
	LatestVersion = 2.7
)
