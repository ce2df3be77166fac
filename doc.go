// Package skincfg resolves typed skin configuration lookups across an
// ordered chain of configuration sources, each backed by its own store of
// raw string settings and pre-typed colour and version fields.
//
// Features:
//   - Ordered most-specific-first resolution: the first source with a usable
//     value wins, and later sources are never consulted
//   - Lookup-time type coercion (string, numeric, boolean, enum via
//     encoding.TextUnmarshaler) with silent skip-to-next-source on failure
//   - Category fallback policies: a built-in default combo colour palette
//     with per-source opt-out, and legacy version defaulting
//   - Observable results: each lookup returns a fresh Bindable container
//     distinguishing absent, explicitly null, and present values
//   - Skin definition decoding from INI, TOML, and YAML with format
//     auto-detection
//   - Builder pattern for assembling providers from stores and files
//   - Polling file watcher for live skin reload
//
// Quick Start:
//
//	beatmap := skincfg.NewSkinStore()
//	beatmap.SetSetting("CursorExpand", "1")
//
//	user, err := skincfg.DecodeFile("skin.ini", skincfg.DefaultDecodeOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	provider := skincfg.NewBuilder().
//	    WithStore("beatmap", beatmap).
//	    WithStore("user", user).
//	    MustBuild()
//
//	expand := skincfg.GetConfig[bool](provider, skincfg.SettingKey("CursorExpand"))
//	colours := skincfg.GetConfig[[]skincfg.Colour](provider, skincfg.ComboColoursKey{})
//
// Resolution outcomes:
//   - a nil Bindable means no source defined the value and no fallback
//     applied,
//   - a non-nil Bindable whose Value reports ok=false means a source defined
//     the key with an explicitly null value,
//   - a structurally impossible lookup/type pairing (e.g. a colour requested
//     as an int) panics with a ContractError, since that is a caller bug
//     rather than bad skin data.
//
// Concurrency:
// Resolution is synchronous and lock-free. Stores are mutated only by their
// owning context, and chains are immutable: recomposition builds a new chain
// rather than patching one in place.
package skincfg
