package skincfg

import "strconv"

// String returns a pointer to the given string. Convenient for populating
// SkinStore.Settings directly.
func String(s string) *string { return &s }

// Float returns a pointer to the given float64. Convenient for populating
// SkinStore.LegacyVersion directly.
func Float(v float64) *float64 { return &v }

// asStringMap reports whether a parsed value is a nested section map.
func asStringMap(value any) (map[string]any, bool) {
	m, ok := value.(map[string]any)
	return m, ok
}

// scalarString renders a parsed scalar back to its raw string form. Decoded
// stores hold strings only; typing is deferred to lookup-time coercion.
func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	default:
		return "", false
	}
}

// flattenSection converts a nested section map to flat dot-notation keys
// relative to the section root.
func flattenSection(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if nestedMap, isMap := asStringMap(value); isMap {
			for subPath, subValue := range flattenSection(nestedMap, path) {
				flat[subPath] = subValue
			}
		} else {
			flat[path] = value
		}
	}

	return flat
}
