package validate

import (
	"encoding/hex"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

const identAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789_"

// LengthBetween returns true if n is within [min,max].
func LengthBetween(s string, min, max int) bool {
	n := len(s)
	return n >= min && n <= max
}

// IsAlphabet returns true if all characters in s are in allowed set.
func IsAlphabet(s, allowed string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(allowed, rune(s[i])) {
			return false
		}
	}
	return true
}

// IsHex returns true if s is valid hex.
func IsHex(s string) bool {
	if s == "" || len(s)%2 == 1 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// IsIdentifier reports whether s is a lower snake_case id such as
// "thermal_lng" or "axis_power".
func IsIdentifier(s string) bool {
	if !LengthBetween(s, 1, 64) || s[0] == '_' {
		return false
	}
	return IsAlphabet(s, identAlphabet)
}

// IsHexColor accepts #rrggbb and the #rgb shorthand, either case.
func IsHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	body := s[1:]
	switch len(body) {
	case 6:
		return IsHex(body)
	case 3:
		return IsHex(body + "0")
	default:
		return false
	}
}

// ParseColor resolves a chart color value. Hex strings are parsed directly;
// anything else must be a CSS named color.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colorful.Color{}, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(s, "#") {
		if !IsHexColor(s) {
			return colorful.Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		return colorful.Hex(strings.ToLower(s))
	}
	rgba, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("unknown color name %q", s)
	}
	c, _ := colorful.MakeColor(rgba)
	return c, nil
}

// IsColor reports whether s is a hex color or a CSS color name.
func IsColor(s string) bool {
	_, err := ParseColor(s)
	return err == nil
}

// ToHex normalizes a color value to upper-case #RRGGBB.
func ToHex(s string) (string, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(c.Hex()), nil
}
