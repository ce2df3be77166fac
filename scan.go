package skincfg

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// ScanSettings merges the chain's free-text settings and decodes them into
// the target struct or map using the "skin" struct tag. Merging follows
// resolve semantics: the first source defining a key claims it, and an
// explicitly null value claims its key while leaving the target field at its
// zero value. The target must be a non-nil pointer.
func ScanSettings(c *Chain, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of ScanSettings must be a non-nil pointer, got %T", target)
	}

	merged := make(map[string]*string)
	for _, src := range c.sources {
		for key, raw := range src.store.Settings {
			if _, seen := merged[key]; seen {
				continue
			}
			merged[key] = raw
		}
	}

	decodable := make(map[string]any, len(merged))
	for key, raw := range merged {
		if raw == nil {
			continue
		}
		decodable[key] = *raw
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "skin",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create settings decoder: %w", err)
	}

	if err := decoder.Decode(decodable); err != nil {
		return fmt.Errorf("failed to decode merged settings into %T: %w", target, err)
	}

	return nil
}
