package tokenlint

import (
	"regexp"
	"strings"
)

// referencePattern matches a raw value that is exactly one variable
// reference, e.g. "var(--color-accent)". Fallback values are not part of the
// token files' grammar and are deliberately not matched; such values stay
// non-literal and fail downstream parsing instead.
var referencePattern = regexp.MustCompile(`^var\(\s*(--[\w-]+)\s*\)$`)

// IsReference reports whether a raw value is a variable reference.
func IsReference(raw string) bool {
	return referencePattern.MatchString(strings.TrimSpace(raw))
}

// ReferenceName returns the custom-property name a reference points at,
// e.g. "var(--color-accent)" -> "--color-accent".
func ReferenceName(raw string) (string, bool) {
	m := referencePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Resolve dereferences a possibly-referencing raw value to a concrete one.
// Lookups prefer the value's own scope and fall back to the root scope, so
// mode overrides win inside their scope.
//
// Chains of references are followed until a literal is reached. An unknown
// name or a cycle stops resolution and returns the last reference text
// unchanged, so callers see the unresolved var() and can report it; notably
// Resolve("var(--missing)", ...) returns "var(--missing)" verbatim.
func Resolve(raw string, scope, root VariableMap) string {
	current := raw
	seen := make(map[string]bool)

	for {
		name, ok := ReferenceName(current)
		if !ok {
			return current
		}
		if seen[name] {
			// reference cycle
			return current
		}
		seen[name] = true

		if d, ok := scope[name]; ok {
			current = d.Value
			continue
		}
		if d, ok := root[name]; ok {
			current = d.Value
			continue
		}
		return current
	}
}
