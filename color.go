package tokenlint

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a parsed color with channel values in [0,255].
type RGB struct {
	R, G, B int
}

// Hex returns the six-digit lowercase hex form, e.g. "#0f172a".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsBlack reports whether the color is pure black.
func (c RGB) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// ParseHex parses a literal hex color token into an RGB value.
//
// Accepted forms are #RGB (each digit duplicated per channel) and #RRGGBB.
// Everything else - named colors, rgb(), hsl(), hex without '#' - is
// unparseable by design: the token grammar is hex-only so that stray forms
// surface as faults instead of being silently accepted.
func ParseHex(s string) (RGB, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return RGB{}, false
	}
	hex := s[1:]

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
		// two digits per channel
	default:
		return RGB{}, false
	}

	r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return RGB{}, false
	}

	return RGB{R: int(r), G: int(g), B: int(b)}, true
}

// Luminance computes WCAG 2.1 relative luminance for a color, in [0,1].
//
// Channels are normalized to [0,1] and linearized with the piecewise sRGB
// transform WCAG 2.1 defines (cutoff 0.03928, exponent 2.4), then weighted
// 0.2126/0.7152/0.0722. go-colorful's LinearRgb uses the sRGB 0.04045
// cutoff, which diverges from WCAG in the low-luminance region, so the
// transform is implemented here exactly as the guideline states it.
func Luminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel int) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio between two colors, in
// [1,21]. Symmetric in its arguments by construction.
func ContrastRatio(a, b RGB) float64 {
	la, lb := Luminance(a), Luminance(b)
	l1, l2 := math.Max(la, lb), math.Min(la, lb)
	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastHex computes the contrast ratio between two hex color literals.
// Returns false when either literal fails ParseHex.
func ContrastHex(a, b string) (float64, bool) {
	ca, ok := ParseHex(a)
	if !ok {
		return 0, false
	}
	cb, ok := ParseHex(b)
	if !ok {
		return 0, false
	}
	return ContrastRatio(ca, cb), true
}

// SuggestTextColor searches for a replacement text color that clears
// minRatio against bg, keeping the original hue and saturation and walking
// lightness away from the background. Returns the hex form of the first
// candidate that passes, or false when no lightness in range does.
func SuggestTextColor(text, bg RGB, minRatio float64) (string, bool) {
	col := colorful.Color{
		R: float64(text.R) / 255,
		G: float64(text.G) / 255,
		B: float64(text.B) / 255,
	}
	h, s, l := col.Hsl()

	// Light backgrounds want darker text and vice versa.
	step := 0.02
	if Luminance(bg) > 0.5 {
		step = -0.02
	}

	for i := 0; i < 60; i++ {
		l += step
		if l < 0 || l > 1 {
			return "", false
		}
		cand := colorful.Hsl(h, s, l).Clamped()
		rgb := RGB{
			R: int(cand.R*255 + 0.5),
			G: int(cand.G*255 + 0.5),
			B: int(cand.B*255 + 0.5),
		}
		if ContrastRatio(rgb, bg) >= minRatio {
			return cand.Hex(), true
		}
	}

	return "", false
}
