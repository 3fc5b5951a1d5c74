package tokenlint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

func TestExtractVariables(t *testing.T) {
	tests := []struct {
		name       string
		stylesheet string
		selector   string
		expected   map[string]string
	}{
		{
			name:       "single declaration round-trip",
			stylesheet: `:root { --x: V; }`,
			selector:   ":root",
			expected:   map[string]string{"--x": "V"},
		},
		{
			name: "values are verbatim, trimmed",
			stylesheet: `:root {
				--color-bg-primary:   #f8fafc  ;
				--font-sans: "Inter", system-ui, sans-serif;
			}`,
			selector: ":root",
			expected: map[string]string{
				"--color-bg-primary": "#f8fafc",
				"--font-sans":        `"Inter", system-ui, sans-serif`,
			},
		},
		{
			name: "nested rule does not terminate the scan early",
			stylesheet: `:root {
				--before: 1px;
				@media (prefers-reduced-motion: reduce) {
					--inside: 2px;
				}
				--after: 3px;
			}`,
			selector: ":root",
			expected: map[string]string{
				"--before": "1px",
				"--inside": "2px",
				"--after":  "3px",
			},
		},
		{
			name:       "declarations before, inside, and after a nested rule",
			stylesheet: `:root { --x: V; @media (x) { --n: 1px; } --y: W; }`,
			selector:   ":root",
			expected:   map[string]string{"--x": "V", "--n": "1px", "--y": "W"},
		},
		{
			name: "scope selectors are disjoint namespaces",
			stylesheet: `:root { --color-bg-primary: #ffffff; }
			.dark { --color-bg-primary: #0f172a; }`,
			selector: ".dark",
			expected: map[string]string{"--color-bg-primary": "#0f172a"},
		},
		{
			name: "repeated selector accumulates, last write wins",
			stylesheet: `:root { --a: 1px; --b: 2px; }
			:root { --b: 3px; --c: 4px; }`,
			selector: ":root",
			expected: map[string]string{"--a": "1px", "--b": "3px", "--c": "4px"},
		},
		{
			name:       "selector matched verbatim, not as a substring",
			stylesheet: `.darker { --x: 1px; } .dark { --y: 2px; }`,
			selector:   ".dark",
			expected:   map[string]string{"--y": "2px"},
		},
		{
			name:       "var() references preserved as raw values",
			stylesheet: `:root { --color-accent-default: var(--color-accent); }`,
			selector:   ":root",
			expected:   map[string]string{"--color-accent-default": "var(--color-accent)"},
		},
		{
			name:       "missing selector yields empty map",
			stylesheet: `:root { --x: 1px; }`,
			selector:   ".dark",
			expected:   map[string]string{},
		},
		{
			name:       "ordinary declarations are not custom properties",
			stylesheet: `:root { color: red; --x: 1px; background: blue; }`,
			selector:   ":root",
			expected:   map[string]string{"--x": "1px"},
		},
		{
			name: "selector nested under an at-rule still matches",
			stylesheet: `@media (min-width: 600px) {
				:root { --wide: 16px; }
			}`,
			selector: ":root",
			expected: map[string]string{"--wide": "16px"},
		},
		{
			name:       "malformed stylesheet yields partial result without panic",
			stylesheet: `:root { --x: 1px; --y`,
			selector:   ":root",
			expected:   map[string]string{"--x": "1px"},
		},
		{
			name:       "empty input",
			stylesheet: "",
			selector:   ":root",
			expected:   map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := ExtractVariables(tt.stylesheet, tt.selector)

			require.Len(t, vars, len(tt.expected))
			for name, want := range tt.expected {
				got, ok := vars.Value(name)
				require.True(t, ok, "expected %s to be declared", name)
				assert.Equal(t, want, got)
			}
		})
	}
}

// TestExtractVariables_TokenStreamShape pins the lexer's declaration shape:
// the value after CustomPropertyName and Colon arrives as a run of plain
// tokens, which is what the extraction loop accumulates.
func TestExtractVariables_TokenStreamShape(t *testing.T) {
	lexer := css.NewLexer(parse.NewInputString(":root { --x: V; }"))

	var tokens []css.TokenType
	for {
		tt, _ := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		tokens = append(tokens, tt)
	}

	nameIdx := -1
	for i, tt := range tokens {
		if tt == css.CustomPropertyNameToken {
			nameIdx = i
			break
		}
	}
	require.NotEqual(t, -1, nameIdx, "expected a CustomPropertyName token for --x")

	assert.Equal(t, []css.TokenType{
		css.ColonToken,
		css.WhitespaceToken,
		css.IdentToken,
		css.SemicolonToken,
		css.WhitespaceToken,
		css.RightBraceToken,
	}, tokens[nameIdx+1:])
}

func TestExtractVariables_LineNumbers(t *testing.T) {
	stylesheet := ":root {\n" + // line 1
		"  --first: 1px;\n" + // line 2
		"\n" +
		"  --second: 2px;\n" + // line 4
		"}\n"

	vars := ExtractVariables(stylesheet, ":root")
	require.Len(t, vars, 2)
	assert.Equal(t, 2, vars["--first"].Line)
	assert.Equal(t, 4, vars["--second"].Line)
}

func TestVariableMap_NamesWithPrefix(t *testing.T) {
	stylesheet := `:root {
		--spacing-0: 0;
		--spacing-4: 4px;
		--spacing-8: 8px;
		--color-accent: #1d4ed8;
	}`

	vars := ExtractVariables(stylesheet, ":root")
	assert.Equal(t, []string{"--spacing-0", "--spacing-4", "--spacing-8"},
		vars.NamesWithPrefix("--spacing-"))
	assert.Empty(t, vars.NamesWithPrefix("--duration-"))
}
