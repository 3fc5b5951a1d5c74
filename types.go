package tokenlint

import "fmt"

// ContrastPair names a text-color token checked against a background-color
// token within one scope.
type ContrastPair struct {
	Text       string // "--color-text-primary"
	Background string // "--color-bg-primary"
}

// CheckConfig holds checker configuration
type CheckConfig struct {
	RootSelector string // default scope selector, ":root"
	DarkSelector string // override scope selector, ".dark"

	SpacingScale []float64 // the exact expected pixel scale

	MinDurationMs    float64            // lower transition bound, inclusive
	MaxDurationMs    float64            // upper transition bound, inclusive
	DurationVariants map[string]float64 // variant suffix -> expected ms
	TransitionCount  int                // exact number of --transition-* tokens

	MinContrast    float64        // WCAG AA threshold for normal text
	RequiredTokens []string       // semantic names required in both scopes
	ContrastPairs  []ContrastPair // text/background pairs checked per scope
}

// DefaultCheckConfig returns the configuration matching the design system's
// documented token contract.
func DefaultCheckConfig() CheckConfig {
	return CheckConfig{
		RootSelector: ":root",
		DarkSelector: ".dark",

		SpacingScale: []float64{0, 4, 8, 12, 16, 24, 32, 48, 64, 96},

		MinDurationMs: 150,
		MaxDurationMs: 300,
		DurationVariants: map[string]float64{
			"fast":    150,
			"default": 200,
			"slow":    300,
		},
		TransitionCount: 3,

		MinContrast: 4.5,
		RequiredTokens: []string{
			"--color-bg-primary",
			"--color-bg-secondary",
			"--color-bg-tertiary",
			"--color-text-primary",
			"--color-text-secondary",
			"--color-text-muted",
			"--color-border-subtle",
			"--color-border-default",
			"--color-accent",
			"--color-accent-light",
			"--color-accent-default",
			"--color-accent-dark",
			"--color-success",
			"--color-warning",
			"--color-error",
			"--color-info",
		},
		ContrastPairs: []ContrastPair{
			{Text: "--color-text-primary", Background: "--color-bg-primary"},
			{Text: "--color-text-primary", Background: "--color-bg-secondary"},
			{Text: "--color-text-primary", Background: "--color-bg-tertiary"},
			{Text: "--color-text-secondary", Background: "--color-bg-primary"},
			{Text: "--color-text-secondary", Background: "--color-bg-secondary"},
			{Text: "--color-text-muted", Background: "--color-bg-primary"},
		},
	}
}

// TokenResult is one per-token judgment within an invariant.
type TokenResult struct {
	Name   string // token name, e.g. "--spacing-4"
	Value  string // resolved value the judgment was made on
	Pass   bool
	Reason string // empty on pass
}

// InvariantReport collects the per-token judgments for one invariant.
type InvariantReport struct {
	Invariant string // "spacing-scale", "duration-bounds", ...
	File      string
	Scope     string // selector the invariant ran against; empty when both
	Results   []TokenResult
	Pass      bool // aggregate: every result passed
}

// Failed counts the failing results.
func (r InvariantReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Pass {
			n++
		}
	}
	return n
}

// CheckResult contains the outcome of checking one or more stylesheets.
type CheckResult struct {
	Reports []InvariantReport
	Issues  []Issue

	// IssuesByCategory groups issues by severity for stats
	IssuesByCategory map[string][]Issue

	TokensChecked  int
	FilesScanned   int
	ErrorCount     int
	WarningCount   int
	TruncatedCount int

	// TokensByCategory counts root-scope tokens per category
	TokensByCategory map[TokenCategory]int

	// seenIssues deduplicates issues by text and position; scope fallback
	// means two contrast passes can trip over the same root declaration
	seenIssues map[string]bool
}

// Pass reports whether every invariant passed.
func (r *CheckResult) Pass() bool {
	for _, rep := range r.Reports {
		if !rep.Pass {
			return false
		}
	}
	return true
}

func (r *CheckResult) addIssue(issue Issue) {
	key := fmt.Sprintf("%s:%d:%s", issue.Pos.Filename, issue.Pos.Line, issue.Text)
	if r.seenIssues == nil {
		r.seenIssues = make(map[string]bool)
	}
	if r.seenIssues[key] {
		return
	}
	r.seenIssues[key] = true

	r.Issues = append(r.Issues, issue)
	if r.IssuesByCategory == nil {
		r.IssuesByCategory = make(map[string][]Issue)
	}
	r.IssuesByCategory[issue.Severity] = append(r.IssuesByCategory[issue.Severity], issue)
	switch issue.Severity {
	case SeverityError:
		r.ErrorCount++
	case SeverityWarning:
		r.WarningCount++
	}
}

func (r *CheckResult) addReport(rep InvariantReport) {
	r.Reports = append(r.Reports, rep)
}

// merge folds another result into this one; used when checking many files.
func (r *CheckResult) merge(other *CheckResult) {
	r.Reports = append(r.Reports, other.Reports...)
	for _, issue := range other.Issues {
		r.addIssue(issue)
	}
	r.TokensChecked += other.TokensChecked
	if r.TokensByCategory == nil {
		r.TokensByCategory = make(map[TokenCategory]int)
	}
	for cat, n := range other.TokensByCategory {
		r.TokensByCategory[cat] += n
	}
}
