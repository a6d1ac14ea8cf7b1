package themes

import (
	"fmt"
	"image/color"
	"strings"
)

// Accent is one of the fixed accent colors selectable for cards and charts.
type Accent struct {
	Name string
	Hex  string
}

// Palette is the fixed accent palette. The first entry is the default.
var Palette = []Accent{
	{Name: "WK Pink", Hex: "#ff00aa"},
	{Name: "WK Blue", Hex: "#00aaff"},
	{Name: "WK Purple", Hex: "#a100ff"},
	{Name: "Sunset", Hex: "#ff5f00"},
	{Name: "Emerald", Hex: "#00d47e"},
	{Name: "Golden", Hex: "#ffb800"},
}

// DefaultAccent returns the palette default (WK Pink).
func DefaultAccent() Accent { return Palette[0] }

// ParseAccent resolves s as a palette name (case-insensitive) or a hex color
// ("#rrggbb" or "rrggbb").
func ParseAccent(s string) (Accent, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultAccent(), nil
	}
	for _, a := range Palette {
		if strings.EqualFold(a.Name, s) || strings.EqualFold(a.Hex, s) ||
			strings.EqualFold(strings.TrimPrefix(a.Hex, "#"), s) {
			return a, nil
		}
	}
	hex := strings.TrimPrefix(strings.ToLower(s), "#")
	if len(hex) == 6 && isHex(hex) {
		return Accent{Hex: "#" + hex}, nil
	}
	return Accent{}, fmt.Errorf("unknown accent color %q", s)
}

func isHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// Color converts the accent to an opaque RGBA color.
func (a Accent) Color() color.RGBA {
	hex := strings.TrimPrefix(a.Hex, "#")
	if len(hex) != 6 {
		hex = "ff00aa"
	}
	return color.RGBA{R: hexByte(hex[0:2]), G: hexByte(hex[2:4]), B: hexByte(hex[4:6]), A: 0xff}
}

func hexByte(s string) uint8 {
	var v uint8
	for i := 0; i < 2; i++ {
		v <<= 4
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v |= c - '0'
		case c >= 'a' && c <= 'f':
			v |= c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v |= c - 'A' + 10
		}
	}
	return v
}
