package tokenlint

import (
	"bytes"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is a single custom-property declaration found in a scope block.
type Declaration struct {
	Name  string // "--color-bg-primary"
	Value string // raw declared value, verbatim (whitespace-trimmed)
	Line  int    // 1-based line of the declaration in the source
}

// VariableMap maps custom-property names to their declarations for one
// (stylesheet, selector) pair. A fresh map is produced per extraction and is
// never mutated afterwards.
type VariableMap map[string]Declaration

// Value returns the raw declared value for a custom-property name.
func (m VariableMap) Value(name string) (string, bool) {
	d, ok := m[name]
	return d.Value, ok
}

// NamesWithPrefix returns all declared names starting with prefix, sorted.
func (m VariableMap) NamesWithPrefix(prefix string) []string {
	var names []string
	for name := range m {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ExtractVariables returns every custom-property declaration inside blocks
// introduced by selector. The selector is matched verbatim against the
// whitespace-normalized selector text, not evaluated as a CSS selector.
//
// Nesting is tracked by brace depth, so a matched block containing nested
// rules is scanned to its true closing brace; declarations inside nested
// rules are included, matching a flat scan of the block text. Multiple
// occurrences of the selector accumulate into one map, last write wins per
// name. Malformed CSS yields a partial or empty map, never a panic.
func ExtractVariables(stylesheet, selector string) VariableMap {
	want := normalizeSelector(selector)
	vars := make(VariableMap)

	lexer := css.NewLexer(parse.NewInputString(stylesheet))

	var selBuf strings.Builder
	depth := 0      // current brace nesting depth
	matchDepth := 0 // depth at which a matched block opened; 0 = not inside one
	line := 1

	// The lexer delivers a declaration as CustomPropertyName, Colon, then the
	// value as a run of plain tokens up to the terminating semicolon or brace.
	// The value text accumulates in pendingValue until a terminator flushes it.
	var pendingName string
	var pendingLine int
	var pendingValue []string
	inValue := false

	flush := func() {
		if pendingName != "" && inValue {
			value := strings.TrimSpace(strings.Join(pendingValue, ""))
			if value != "" {
				vars[pendingName] = Declaration{
					Name:  pendingName,
					Value: value,
					Line:  pendingLine,
				}
			}
		}
		pendingName = ""
		pendingValue = nil
		inValue = false
	}

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal; an unterminated declaration still
			// counts
			flush()
			break
		}

		switch tt {
		case css.LeftBraceToken:
			flush()
			depth++
			if matchDepth == 0 && normalizeSelector(selBuf.String()) == want {
				matchDepth = depth
			}
			selBuf.Reset()

		case css.RightBraceToken:
			flush()
			if depth > 0 {
				depth--
			}
			if matchDepth > 0 && depth < matchDepth {
				matchDepth = 0
			}
			selBuf.Reset()

		case css.SemicolonToken:
			flush()
			selBuf.Reset()

		case css.CustomPropertyNameToken:
			// A custom-property name inside a value, as in var(--x), is
			// value text, not a new declaration.
			if inValue {
				pendingValue = append(pendingValue, string(data))
			} else if matchDepth > 0 {
				pendingName = string(data)
				pendingLine = line
			} else {
				selBuf.Write(data)
			}

		case css.ColonToken:
			if inValue {
				pendingValue = append(pendingValue, string(data))
			} else if pendingName != "" {
				inValue = true
			} else if matchDepth == 0 {
				selBuf.Write(data)
			}

		case css.WhitespaceToken:
			if inValue {
				pendingValue = append(pendingValue, string(data))
			} else if matchDepth == 0 {
				selBuf.WriteByte(' ')
			}

		case css.CommentToken:
			// comments contribute to neither selector text nor values

		default:
			if inValue {
				pendingValue = append(pendingValue, string(data))
			} else if matchDepth == 0 {
				selBuf.Write(data)
			}
		}

		line += bytes.Count(data, []byte{'\n'})
	}

	return vars
}

// normalizeSelector collapses runs of whitespace so "  .dark " and ".dark"
// compare equal.
func normalizeSelector(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
