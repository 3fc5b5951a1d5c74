package tokenlint

// Issue represents a single token violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "tokenlint"
	Text        string       `json:"Text"`        // "spacing token \"--spacing-7\" is 7px, not a multiple of 4px"
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Declaration text for context
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "styles/tokens.css"
	Line     int    `json:"Line"`     // 1-based; 0 when the fault is a missing declaration
	Column   int    `json:"Column"`
}

// Replacement provides an automated fix suggestion (future --fix flag)
type Replacement struct {
	NewText string // "#475569"
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue message templates matching checker categories. Missing declarations,
// unparseable literals, and unresolved references are distinct faults and
// keep distinct messages.
const (
	IssueMissingToken        = "required token %s is not declared in scope %q"
	IssueUnresolvedReference = "token %s references undeclared variable %q"
	IssueUnparseableColor    = "token %s has unparseable color value %q (expected #RGB or #RRGGBB)"
	IssueUnparseableDuration = "token %s has unparseable duration value %q"
	IssueUnparseableSpacing  = "token %s has unparseable spacing value %q"
	IssueSpacingOffGrid      = "spacing token %s is %s, not a multiple of 4px"
	IssueSpacingOffScale     = "spacing token %s is %s, which is not a step of the spacing scale"
	IssueSpacingScaleGap     = "spacing scale has no %gpx step (expected token %s)"
	IssueDurationOutOfRange  = "duration token %s is %gms, outside the %g-%gms range"
	IssueDurationVariant     = "duration token %s is %gms, expected %gms"
	IssueTransitionCount     = "found %d --transition-* variants, expected exactly %d"
	IssueDarkBackgroundBlack = "dark mode background %s resolves to pure black"
	IssueContrastTooLow      = "contrast ratio %.2f:1 between %s and %s is below %.1f:1"
)

// LimitIssues truncates the issue list according to maxTotal and maxSame
// (repeats of the same message template, keyed by text up to the first
// format boundary are approximated by the full text here). Zero means
// unlimited. Returns the kept issues and the number removed.
func LimitIssues(issues []Issue, maxTotal, maxSame int) ([]Issue, int) {
	if maxTotal <= 0 && maxSame <= 0 {
		return issues, 0
	}

	kept := make([]Issue, 0, len(issues))
	perText := make(map[string]int)

	for _, issue := range issues {
		if maxTotal > 0 && len(kept) >= maxTotal {
			break
		}
		if maxSame > 0 && perText[issue.Text] >= maxSame {
			continue
		}
		perText[issue.Text]++
		kept = append(kept, issue)
	}

	return kept, len(issues) - len(kept)
}
