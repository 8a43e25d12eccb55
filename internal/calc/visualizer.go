package calc

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// RGB is an 8-bit color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex accepts #RGB and #RRGGBB, case-insensitive, leading # optional.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, errors.New("invalid hex color")
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(s), "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, errors.New("invalid hex color")
	}
	return RGB{R: r, G: g, B: b}, nil
}

// Overlay blends a paint color over a base surface color at the given
// opacity (0..1), the flat fill the visualizer paints walls with.
func Overlay(base, paint RGB, opacity float64) RGB {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	blend := func(b, p uint8) uint8 {
		v := float64(b)*(1-opacity) + float64(p)*opacity
		return uint8(math.Round(v))
	}
	return RGB{
		R: blend(base.R, paint.R),
		G: blend(base.G, paint.G),
		B: blend(base.B, paint.B),
	}
}

// VisualizeWall parses both colors and returns the blended wall color as a
// hex string. Invalid input errors out rather than painting garbage.
func VisualizeWall(baseHex, paintHex string, opacity float64) (string, error) {
	base, err := ParseHex(baseHex)
	if err != nil {
		return "", fmt.Errorf("base: %w", err)
	}
	paint, err := ParseHex(paintHex)
	if err != nil {
		return "", fmt.Errorf("paint: %w", err)
	}
	return Overlay(base, paint, opacity).Hex(), nil
}
