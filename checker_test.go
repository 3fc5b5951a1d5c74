package tokenlint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cleanTokens declares the full token contract with every invariant holding:
// a complete base-4 spacing scale, three in-range transition variants, both
// scopes fully populated, and every contrast pair clearing 4.5:1.
const cleanTokens = `:root {
  --color-bg-primary: #f8fafc;
  --color-bg-secondary: #f1f5f9;
  --color-bg-tertiary: #e2e8f0;
  --color-text-primary: #0f172a;
  --color-text-secondary: #334155;
  --color-text-muted: #475569;
  --color-border-subtle: #e2e8f0;
  --color-border-default: #cbd5e1;
  --color-accent: #1d4ed8;
  --color-accent-light: #3b82f6;
  --color-accent-default: var(--color-accent);
  --color-accent-dark: #1e40af;
  --color-success: #15803d;
  --color-warning: #a16207;
  --color-error: #b91c1c;
  --color-info: #0369a1;

  --spacing-0: 0;
  --spacing-4: 4px;
  --spacing-8: 8px;
  --spacing-12: 12px;
  --spacing-16: 16px;
  --spacing-24: 24px;
  --spacing-32: 32px;
  --spacing-48: 48px;
  --spacing-64: 64px;
  --spacing-96: 96px;

  --transition-fast: 150ms;
  --transition-default: 200ms ease;
  --transition-slow: 300ms;
  --duration-fast: 150ms;
  --duration-default: 0.2s;
  --duration-slow: 300ms;
}

.dark {
  --color-bg-primary: #0f172a;
  --color-bg-secondary: #1e293b;
  --color-bg-tertiary: #334155;
  --color-text-primary: #f8fafc;
  --color-text-secondary: #e2e8f0;
  --color-text-muted: #94a3b8;
  --color-border-subtle: #334155;
  --color-border-default: #475569;
  --color-accent: #3b82f6;
  --color-accent-light: #60a5fa;
  --color-accent-default: var(--color-accent);
  --color-accent-dark: #2563eb;
  --color-success: #4ade80;
  --color-warning: #facc15;
  --color-error: #f87171;
  --color-info: #38bdf8;
}
`

func checkString(t *testing.T, stylesheet string) *CheckResult {
	t.Helper()
	return Check(stylesheet, "tokens.css", DefaultCheckConfig())
}

// withoutLine drops one declaration from the clean fixture.
func withoutLine(t *testing.T, line string) string {
	t.Helper()
	require.Contains(t, cleanTokens, line)
	return strings.Replace(cleanTokens, line, "", 1)
}

// withReplaced swaps one declaration in the clean fixture.
func withReplaced(t *testing.T, oldDecl, newDecl string) string {
	t.Helper()
	require.Contains(t, cleanTokens, oldDecl)
	return strings.Replace(cleanTokens, oldDecl, newDecl, 1)
}

func TestCheck_CleanFixture(t *testing.T) {
	result := checkString(t, cleanTokens)

	assert.Empty(t, result.Issues)
	assert.True(t, result.Pass())
	assert.Zero(t, result.ErrorCount)
	assert.Zero(t, result.WarningCount)
	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 48, result.TokensChecked)

	for _, rep := range result.Reports {
		assert.True(t, rep.Pass, "invariant %s (%s) should pass", rep.Invariant, rep.Scope)
		assert.Zero(t, rep.Failed())
	}
}

func TestCheck_SpacingOffGrid(t *testing.T) {
	result := checkString(t, cleanTokens+"\n:root { --spacing-7: 7px; }\n")

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Contains(t, issue.Text, "not a multiple of 4px")
	assert.Contains(t, issue.Text, "--spacing-7")
	assert.Equal(t, []string{"--spacing-7: 7px;"}, issue.SourceLines)
	assert.Equal(t, "tokens.css", issue.Pos.Filename)
	assert.Greater(t, issue.Pos.Line, 0)
	assert.Equal(t, 1, issue.Pos.Column)
}

func TestCheck_SpacingOffScale(t *testing.T) {
	result := checkString(t, cleanTokens+"\n:root { --spacing-20: 20px; }\n")

	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityError, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Text, "not a step of the spacing scale")
}

func TestCheck_SpacingScaleGap(t *testing.T) {
	result := checkString(t, withoutLine(t, "  --spacing-48: 48px;\n"))

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Contains(t, issue.Text, "no 48px step")
	assert.Contains(t, issue.Text, "--spacing-48")
	assert.Zero(t, issue.Pos.Line)
}

func TestCheck_SpacingUnresolvedReference(t *testing.T) {
	result := checkString(t, cleanTokens+"\n:root { --spacing-gutter: var(--missing); }\n")

	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityWarning, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Text, "undeclared variable")

	// Warnings fail the invariant but do not count as errors.
	assert.False(t, result.Pass())
	assert.Zero(t, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
}

func TestCheck_DurationOutOfRange(t *testing.T) {
	result := checkString(t, cleanTokens+"\n:root { --duration-enter: 500ms; }\n")

	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityError, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Text, "outside the 150-300ms range")
}

func TestCheck_DurationVariantMismatch(t *testing.T) {
	// 100ms breaks both the fast=150ms variant expectation and the lower
	// bound; the variant fault is the one reported.
	result := checkString(t, withReplaced(t,
		"--transition-fast: 150ms;", "--transition-fast: 100ms;"))

	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, "expected 150ms")
}

func TestCheck_DurationVariantAppliesToDurationFamily(t *testing.T) {
	result := checkString(t, withReplaced(t,
		"--duration-slow: 300ms;", "--duration-slow: 250ms;"))

	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, "--duration-slow")
	assert.Contains(t, result.Issues[0].Text, "expected 300ms")
}

func TestCheck_TransitionCount(t *testing.T) {
	result := checkString(t, cleanTokens+"\n:root { --transition-enter: 250ms; }\n")

	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, "found 4 --transition-* variants, expected exactly 3")
}

func TestCheck_UnparseableDuration(t *testing.T) {
	result := checkString(t, withReplaced(t,
		"--transition-slow: 300ms;", "--transition-slow: slow;"))

	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityWarning, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Text, "unparseable duration")
}

func TestCheck_DarkBackgroundPureBlack(t *testing.T) {
	result := checkString(t, withReplaced(t,
		"--color-bg-primary: #0f172a;", "--color-bg-primary: #000;"))

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Contains(t, issue.Text, "pure black")
	assert.Contains(t, issue.Text, "--color-bg-primary")
}

func TestCheck_DarkBackgroundResolvedReference(t *testing.T) {
	// A reference that resolves to black is still black.
	stylesheet := withReplaced(t,
		"--color-bg-primary: #0f172a;", "--color-bg-primary: var(--shadow);")
	stylesheet += "\n:root { --shadow: #000000; }\n"

	result := checkString(t, stylesheet)

	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, "pure black")
}

func TestCheck_MissingRequiredToken(t *testing.T) {
	result := checkString(t, withoutLine(t, "  --color-info: #0369a1;\n"))

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Contains(t, issue.Text, "--color-info")
	assert.Contains(t, issue.Text, `":root"`)

	for _, rep := range result.Reports {
		if rep.Invariant == "mode-completeness" {
			assert.False(t, rep.Pass)
			assert.Equal(t, 1, rep.Failed())
		}
	}
}

func TestCheck_MissingTokenReportedPerScope(t *testing.T) {
	stylesheet := withoutLine(t, "  --color-info: #0369a1;\n")
	stylesheet = strings.Replace(stylesheet, "  --color-info: #38bdf8;\n", "", 1)

	result := checkString(t, stylesheet)

	require.Len(t, result.Issues, 2)
	assert.Contains(t, result.Issues[0].Text, `":root"`)
	assert.Contains(t, result.Issues[1].Text, `".dark"`)
}

func TestCheck_LowContrast(t *testing.T) {
	// Light gray text on a near-white background is roughly 1.4:1.
	result := checkString(t, withReplaced(t,
		"--color-text-muted: #475569;", "--color-text-muted: #cbd5e1;"))

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Contains(t, issue.Text, "--color-text-muted")
	assert.Contains(t, issue.Text, "--color-bg-primary")
	assert.Contains(t, issue.Text, "below 4.5:1")

	// The fix suggestion must itself clear the threshold.
	require.NotNil(t, issue.Replacement)
	suggested, ok := ParseHex(issue.Replacement.NewText)
	require.True(t, ok)
	bg, _ := ParseHex("#f8fafc")
	assert.GreaterOrEqual(t, ContrastRatio(suggested, bg), 4.5)
}

func TestCheck_ContrastUnparseableColor(t *testing.T) {
	result := checkString(t, withReplaced(t,
		"--color-text-muted: #475569;", "--color-text-muted: slategray;"))

	require.NotEmpty(t, result.Issues)
	assert.Equal(t, SeverityWarning, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Text, "unparseable color")
	assert.False(t, result.Pass())
}

func TestCheck_ContrastUsesScopeOverrides(t *testing.T) {
	// Failing only the dark override must not implicate the root pair.
	result := checkString(t, withReplaced(t,
		"--color-text-muted: #94a3b8;", "--color-text-muted: #334155;"))

	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, "below 4.5:1")

	for _, rep := range result.Reports {
		if rep.Invariant == "contrast" && rep.Scope == ":root" {
			assert.True(t, rep.Pass)
		}
		if rep.Invariant == "contrast" && rep.Scope == ".dark" {
			assert.False(t, rep.Pass)
		}
	}
}

func TestCheck_PartialFailureKeepsOtherInvariants(t *testing.T) {
	// One broken spacing token must not stop duration or contrast checks.
	result := checkString(t, cleanTokens+"\n:root { --spacing-7: 7px; }\n")

	assert.False(t, result.Pass())

	invariants := make(map[string]bool)
	for _, rep := range result.Reports {
		invariants[rep.Invariant] = true
		if rep.Invariant != "spacing-scale" {
			assert.True(t, rep.Pass, "invariant %s should be unaffected", rep.Invariant)
		}
	}
	for _, want := range []string{"spacing-scale", "duration-bounds", "dark-backgrounds", "mode-completeness", "contrast"} {
		assert.True(t, invariants[want], "missing invariant %s", want)
	}
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{Text: "a"}, {Text: "a"}, {Text: "a"},
		{Text: "b"}, {Text: "b"},
		{Text: "c"},
	}

	kept, truncated := LimitIssues(issues, 0, 0)
	assert.Len(t, kept, 6)
	assert.Zero(t, truncated)

	kept, truncated = LimitIssues(issues, 4, 0)
	assert.Len(t, kept, 4)
	assert.Equal(t, 2, truncated)

	kept, truncated = LimitIssues(issues, 0, 2)
	assert.Len(t, kept, 5)
	assert.Equal(t, 1, truncated)

	kept, truncated = LimitIssues(issues, 3, 1)
	assert.Len(t, kept, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{kept[0].Text, kept[1].Text, kept[2].Text})
	assert.Equal(t, 3, truncated)
}
