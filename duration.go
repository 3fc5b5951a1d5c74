package tokenlint

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// durationPattern matches one duration field: "150ms", "0.15s".
	durationPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)(ms|s)$`)

	// pixelPattern matches a pixel dimension: "4px", "1.5px".
	pixelPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)px$`)
)

// ParseDuration parses a literal timing token into milliseconds.
//
// A number followed by "ms" is taken as-is; a number followed by "s" is
// multiplied by 1000. Composite shorthands such as "150ms ease" are scanned
// field by field, left to right, and the first field matching a duration
// form wins; non-duration fields are ignored. Returns false when no field
// matches.
func ParseDuration(raw string) (float64, bool) {
	for _, field := range strings.Fields(raw) {
		m := durationPattern.FindStringSubmatch(field)
		if m == nil {
			continue
		}
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if m[2] == "s" {
			n *= 1000
		}
		return n, true
	}
	return 0, false
}

// ParsePixels parses a pixel dimension token into a float64 pixel count.
// A bare "0" is accepted; zero is customarily written unitless.
func ParsePixels(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "0" {
		return 0, true
	}
	m := pixelPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
