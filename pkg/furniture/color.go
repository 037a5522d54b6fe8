package furniture

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Saturation and lightness used for every generated tile; only the hue varies.
const (
	DefaultSaturation = 0.70
	DefaultLightness  = 0.60
)

// HSLHex returns the hex form of an HSL color. h is in degrees, s and l in [0,1].
func HSLHex(h, s, l float64) string {
	return colorful.Hsl(h, s, l).Clamped().Hex()
}

// ParseColor parses "#rrggbb", "#rgb" or "hsl(h, s%, l%)".
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) == 4 {
			s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
		}
		return colorful.Hex(s)
	case strings.HasPrefix(strings.ToLower(s), "hsl("):
		var h, sat, l float64
		body := strings.ReplaceAll(s[4:], " ", "")
		if _, err := fmt.Sscanf(body, "%g,%g%%,%g%%)", &h, &sat, &l); err != nil {
			return colorful.Color{}, fmt.Errorf("parse hsl %q: %w", s, err)
		}
		return colorful.Hsl(h, sat/100, l/100).Clamped(), nil
	default:
		return colorful.Color{}, fmt.Errorf("unsupported color %q", s)
	}
}

// Magnitude reduces a color to its packed 24-bit RGB value (0xRRGGBB).
func Magnitude(s string) (int, error) {
	c, err := ParseColor(s)
	if err != nil {
		return 0, err
	}
	r, g, b := c.RGB255()
	return int(r)<<16 | int(g)<<8 | int(b), nil
}
