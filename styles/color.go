package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a resolved color value. Set is false when the theme left
// the corresponding field empty; the engine treats drawing with an
// unset color as a configuration error rather than inventing a
// default.
type Color struct {
	R, G, B int
	Alpha   float64 // 0..1, 1 when the token carried no alpha suffix
	Set     bool
}

// Opaque reports whether the color needs no alpha blending.
func (c Color) Opaque() bool {
	return c.Alpha >= 1
}

// named colors accepted as tokens, matching the CSS basic set plus the
// handful of extended names themes actually use.
var namedColors = map[string]Color{
	"black":   {R: 0, G: 0, B: 0, Alpha: 1, Set: true},
	"white":   {R: 255, G: 255, B: 255, Alpha: 1, Set: true},
	"red":     {R: 255, G: 0, B: 0, Alpha: 1, Set: true},
	"green":   {R: 0, G: 128, B: 0, Alpha: 1, Set: true},
	"blue":    {R: 0, G: 0, B: 255, Alpha: 1, Set: true},
	"yellow":  {R: 255, G: 255, B: 0, Alpha: 1, Set: true},
	"orange":  {R: 255, G: 165, B: 0, Alpha: 1, Set: true},
	"purple":  {R: 128, G: 0, B: 128, Alpha: 1, Set: true},
	"teal":    {R: 0, G: 128, B: 128, Alpha: 1, Set: true},
	"navy":    {R: 0, G: 0, B: 128, Alpha: 1, Set: true},
	"maroon":  {R: 128, G: 0, B: 0, Alpha: 1, Set: true},
	"olive":   {R: 128, G: 128, B: 0, Alpha: 1, Set: true},
	"gray":    {R: 128, G: 128, B: 128, Alpha: 1, Set: true},
	"grey":    {R: 128, G: 128, B: 128, Alpha: 1, Set: true},
	"silver":  {R: 192, G: 192, B: 192, Alpha: 1, Set: true},
	"gold":    {R: 255, G: 215, B: 0, Alpha: 1, Set: true},
	"crimson": {R: 220, G: 20, B: 60, Alpha: 1, Set: true},
	"coral":   {R: 255, G: 127, B: 80, Alpha: 1, Set: true},
	"ivory":   {R: 255, G: 255, B: 240, Alpha: 1, Set: true},
	"beige":   {R: 245, G: 245, B: 220, Alpha: 1, Set: true},
}

// ParseColor resolves a theme color token. Accepted forms are named
// colors, #RGB, #RRGGBB, and #RRGGBBAA (alpha suffix). An empty token
// resolves to the unset Color without error; a malformed token is a
// configuration error.
func ParseColor(token string) (Color, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Color{}, nil
	}

	if c, ok := namedColors[strings.ToLower(token)]; ok {
		return c, nil
	}

	if !strings.HasPrefix(token, "#") {
		return Color{}, fmt.Errorf("styles: unknown color token %q", token)
	}
	hex := token[1:]

	switch len(hex) {
	case 3:
		var expanded strings.Builder
		for _, ch := range hex {
			expanded.WriteRune(ch)
			expanded.WriteRune(ch)
		}
		hex = expanded.String()
	case 6, 8:
		// handled below
	default:
		return Color{}, fmt.Errorf("styles: malformed hex color %q", token)
	}

	parse := func(s string) (int, error) {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("styles: malformed hex color %q", token)
		}
		return int(v), nil
	}

	r, err := parse(hex[0:2])
	if err != nil {
		return Color{}, err
	}
	g, err := parse(hex[2:4])
	if err != nil {
		return Color{}, err
	}
	b, err := parse(hex[4:6])
	if err != nil {
		return Color{}, err
	}

	alpha := 1.0
	if len(hex) == 8 {
		a, err := parse(hex[6:8])
		if err != nil {
			return Color{}, err
		}
		alpha = float64(a) / 255
	}

	return Color{R: r, G: g, B: b, Alpha: alpha, Set: true}, nil
}
