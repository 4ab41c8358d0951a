package svgraster

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// ParseColor reads a color given as #rgb, #rrggbb or
// as an SVG color keyword (such as "gray").
// "none" and "transparent" return color.Transparent.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "none", "transparent":
		return color.Transparent, nil
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[s]
		if !ok {
			return nil, errors.Errorf("unknown color name %q", s)
		}
		return c, nil
	}

	hex := s[1:]
	switch len(hex) {
	case 3: // #rgb is #rrggbb
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return nil, errors.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errors.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
