package skincfg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour is a four-channel colour value. The RGB channels are carried by
// go-colorful (normalized to [0, 1]); Alpha is kept alongside since skin
// palettes allow translucent entries.
type Colour struct {
	colorful.Color
	Alpha float64
}

// RGB builds an opaque Colour from 8-bit channel values.
func RGB(r, g, b uint8) Colour {
	return RGBA(r, g, b, 255)
}

// RGBA builds a Colour from 8-bit channel values.
func RGBA(r, g, b, a uint8) Colour {
	return Colour{
		Color: colorful.Color{
			R: float64(r) / 255,
			G: float64(g) / 255,
			B: float64(b) / 255,
		},
		Alpha: float64(a) / 255,
	}
}

// ParseColour parses a colour from its skin definition representation.
// Two forms are accepted: comma-separated 8-bit components ("255,192,0"
// with an optional fourth alpha component) and hex notation ("#ffc000").
func ParseColour(s string) (Colour, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Colour{}, fmt.Errorf("empty colour value")
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Colour{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		return Colour{Color: c, Alpha: 1}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Colour{}, fmt.Errorf("colour %q must have 3 or 4 components", s)
	}

	channels := make([]uint8, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Colour{}, fmt.Errorf("invalid colour component %q in %q: %w", p, s, err)
		}
		channels[i] = uint8(v)
	}

	if len(channels) == 4 {
		return RGBA(channels[0], channels[1], channels[2], channels[3]), nil
	}
	return RGB(channels[0], channels[1], channels[2]), nil
}

// DefaultComboColours returns the built-in combo colour palette applied when
// no source in a resolution chain defines its own and none opts out of the
// fallback. A fresh slice is returned on each call so callers cannot alias
// the built-in palette.
func DefaultComboColours() []Colour {
	return []Colour{
		RGB(255, 192, 0),
		RGB(0, 202, 0),
		RGB(18, 124, 255),
		RGB(242, 24, 57),
	}
}
