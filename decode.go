package skincfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Skin definition formats accepted by the decoder.
const (
	FormatAuto = "auto"
	FormatINI  = "ini"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Reserved keys recognised by the decoder regardless of section.
const (
	versionKey        = "Version"
	comboPrefix       = "Combo"
	coloursSection    = "Colours"
	allowFallbackKey  = "AllowDefaultComboColoursFallback"
	latestVersionWord = "latest"
)

// DecodeOptions configures how a skin definition is decoded into a store.
type DecodeOptions struct {
	// Format selects the definition format. FormatAuto detects it from the
	// file extension, falling back to content sniffing.
	Format string

	// Logger receives warnings about malformed entries the decoder skips.
	Logger *zap.Logger
}

// DefaultDecodeOptions returns the standard decode options.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{Format: FormatAuto}
}

// DecodeFile reads a skin definition file and decodes it into a fresh store.
// A missing file yields ErrSkinNotFound.
func DecodeFile(path string, opts DecodeOptions) (*SkinStore, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrSkinNotFound
		}
		return nil, fmt.Errorf("failed to stat skin definition '%s': %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skin definition '%s': %w", path, err)
	}

	if opts.Format == "" || opts.Format == FormatAuto {
		if format := detectFileFormat(path); format != "" {
			opts.Format = format
		}
	}

	return Decode(data, opts)
}

// Decode parses a serialized skin definition into a fresh store. All scalar
// entries outside the colours section land in Settings as raw strings; typing
// happens at lookup time, not here. A definition with no version field
// receives FirstVersion, so that a versionless parse still resolves
// deterministically.
func Decode(data []byte, opts DecodeOptions) (*SkinStore, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	format := opts.Format
	if format == "" || format == FormatAuto {
		format = detectFormatFromContent(data)
		if format == "" {
			return nil, ErrUnknownFormat
		}
	}

	d := &decoder{store: NewSkinStore(), log: log}

	switch format {
	case FormatINI:
		if err := d.decodeINI(data); err != nil {
			return nil, fmt.Errorf("failed to parse INI skin definition: %w", err)
		}
	case FormatTOML:
		sections := make(map[string]any)
		if err := toml.Unmarshal(data, &sections); err != nil {
			return nil, fmt.Errorf("failed to parse TOML skin definition: %w", err)
		}
		d.decodeSections(sections)
	case FormatYAML:
		sections := make(map[string]any)
		if err := yaml.Unmarshal(data, &sections); err != nil {
			return nil, fmt.Errorf("failed to parse YAML skin definition: %w", err)
		}
		d.decodeSections(sections)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	d.finish()
	return d.store, nil
}

// decoder accumulates one store while walking a parsed definition.
type decoder struct {
	store      *SkinStore
	log        *zap.Logger
	sawVersion bool
	combos     []indexedColour
}

type indexedColour struct {
	index  int
	colour Colour
}

// decodeINI walks a classic INI-style definition. The parser accepts both
// "Key: Value" and "Key = Value" delimiters.
func (d *decoder) decodeINI(data []byte) error {
	file, err := ini.LoadSources(ini.LoadOptions{
		SkipUnrecognizableLines: true,
	}, data)
	if err != nil {
		return err
	}

	for _, section := range file.Sections() {
		isColours := section.Name() == coloursSection
		for _, key := range section.Keys() {
			if isColours {
				d.setColourEntry(key.Name(), key.Value())
				continue
			}
			d.setEntry(key.Name(), key.Value())
		}
	}
	return nil
}

// decodeSections walks a section map produced by the TOML or YAML parsers.
// Top-level scalars are treated as bare settings; nested tables below a
// section are flattened with dotted names relative to that section.
func (d *decoder) decodeSections(sections map[string]any) {
	for name, value := range sections {
		nested, isMap := asStringMap(value)
		if !isMap {
			d.setAnyEntry(name, value)
			continue
		}

		if name == coloursSection || name == strings.ToLower(coloursSection) {
			for colourName, colourValue := range nested {
				raw, ok := scalarString(colourValue)
				if !ok {
					d.log.Warn("skipping non-scalar colour entry", zap.String("key", colourName))
					continue
				}
				d.setColourEntry(colourName, raw)
			}
			continue
		}

		for key, entry := range flattenSection(nested, "") {
			d.setAnyEntry(key, entry)
		}
	}
}

// setEntry records one raw settings entry, routing reserved keys to their
// typed store fields.
func (d *decoder) setEntry(key, value string) {
	switch key {
	case versionKey:
		d.setVersion(value)
	case allowFallbackKey:
		d.setAllowFallback(value)
	default:
		d.store.SetSetting(key, value)
	}
}

// setAnyEntry records an entry whose parsed value may not be a string.
// Explicit nulls (YAML "key:") keep the key with no value; everything else is
// rendered back to its raw string form so coercion stays a lookup-time
// concern.
func (d *decoder) setAnyEntry(key string, value any) {
	if value == nil {
		d.store.SetNullSetting(key)
		return
	}
	raw, ok := scalarString(value)
	if !ok {
		d.log.Warn("skipping non-scalar setting", zap.String("key", key))
		return
	}
	d.setEntry(key, raw)
}

// setColourEntry records one entry from the colours section: ComboN keys
// build the ordered palette, the fallback flag is routed to the store, and
// everything else is a named custom colour.
func (d *decoder) setColourEntry(name, raw string) {
	if name == allowFallbackKey {
		d.setAllowFallback(raw)
		return
	}

	colour, err := ParseColour(raw)
	if err != nil {
		d.log.Warn("skipping malformed colour",
			zap.String("key", name),
			zap.String("value", raw),
			zap.Error(err))
		return
	}

	if index, ok := comboIndex(name); ok {
		d.combos = append(d.combos, indexedColour{index: index, colour: colour})
		return
	}

	d.store.SetCustomColour(name, colour)
}

func (d *decoder) setVersion(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == latestVersionWord {
		d.store.SetVersion(LatestVersion)
		d.sawVersion = true
		return
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// An unparsable version is treated as if the field were absent.
		d.log.Warn("ignoring malformed version", zap.String("value", raw), zap.Error(err))
		return
	}

	d.store.SetVersion(v)
	d.sawVersion = true
}

func (d *decoder) setAllowFallback(raw string) {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		d.log.Warn("ignoring malformed fallback flag", zap.String("value", raw), zap.Error(err))
		return
	}
	d.store.AllowDefaultComboColoursFallback = v
}

// finish applies end-of-document policies: combo colours are ordered by
// index, and a definition that never declared a version defaults to the
// legacy baseline rather than deferring down the chain.
func (d *decoder) finish() {
	sort.SliceStable(d.combos, func(i, j int) bool {
		return d.combos[i].index < d.combos[j].index
	})
	for _, c := range d.combos {
		d.store.ComboColours = append(d.store.ComboColours, c.colour)
	}

	if !d.sawVersion {
		d.store.SetVersion(FirstVersion)
	}
}

// comboIndex extracts N from a "ComboN" key name.
func comboIndex(name string) (int, bool) {
	if !strings.HasPrefix(name, comboPrefix) {
		return 0, false
	}
	index, err := strconv.Atoi(name[len(comboPrefix):])
	if err != nil {
		return 0, false
	}
	return index, true
}

// detectFileFormat determines the definition format from the file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini", ".skin":
		return FormatINI
	case ".toml", ".tml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// detectFormatFromContent attempts detection by parsing. TOML is strictest,
// so it goes first; the INI parser accepts almost anything, so it goes last.
func detectFormatFromContent(data []byte) string {
	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil && yamlTest != nil {
		return FormatYAML
	}

	if _, err := ini.Load(data); err == nil {
		return FormatINI
	}

	return ""
}
