package skincfg

import (
	"encoding"
	"fmt"
	"strconv"
)

// coerce converts a raw stored string into the requested value type V using
// locale-invariant parsing. Outcomes:
//
//   - nil raw with a string target succeeds as an explicitly null value,
//   - nil raw with any other target is not convertible,
//   - parse failures wrap ErrNotConvertible; callers treat them as "this
//     source has no usable value", never as hard errors,
//   - string targets receive the raw value unchanged,
//   - enum targets are supported through encoding.TextUnmarshaler, which is
//     expected to match member names case-sensitively,
//   - a target type with no storage representation at all is a caller bug
//     and panics with a ContractError.
func coerce[V any](lookup Lookup, raw *string) (value V, null bool, err error) {
	if raw == nil {
		if _, ok := any(value).(string); ok {
			return value, true, nil
		}
		return value, false, fmt.Errorf("%w: null value requested as %T", ErrNotConvertible, value)
	}

	s := *raw
	switch out := any(&value).(type) {
	case *string:
		*out = s
	case *int:
		v, perr := strconv.ParseInt(s, 10, 0)
		if perr != nil {
			return value, false, notConvertible(s, value)
		}
		*out = int(v)
	case *int64:
		v, perr := strconv.ParseInt(s, 10, 64)
		if perr != nil {
			return value, false, notConvertible(s, value)
		}
		*out = v
	case *float32:
		v, perr := strconv.ParseFloat(s, 32)
		if perr != nil {
			return value, false, notConvertible(s, value)
		}
		*out = float32(v)
	case *float64:
		v, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			return value, false, notConvertible(s, value)
		}
		*out = v
	case *bool:
		v, perr := strconv.ParseBool(s)
		if perr != nil {
			return value, false, notConvertible(s, value)
		}
		*out = v
	default:
		if tu, ok := any(&value).(encoding.TextUnmarshaler); ok {
			if uerr := tu.UnmarshalText([]byte(s)); uerr != nil {
				return value, false, notConvertible(s, value)
			}
			return value, false, nil
		}
		contractViolation(lookup, fmt.Sprintf("%T", value))
	}

	return value, false, nil
}

func notConvertible(raw string, target any) error {
	return fmt.Errorf("%w: cannot parse %q as %T", ErrNotConvertible, raw, target)
}
