// Package report renders check results: golangci-lint style issue listings,
// statistics views, and JSON export.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/yacobolo/tokenlint"
)

// Options controls issue rendering.
type Options struct {
	PrintIssuedLines bool // Show declaration text with issues
	PrintLinterName  bool // Show (tokenlint) suffix
	UseColors        bool // Force color output (default: auto-detect)
}

// Reporter handles formatting and outputting issues
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given options
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(opts),
		printLines:      opts.PrintIssuedLines,
		printLinterName: opts.PrintLinterName,
	}
}

// UseColors reports whether color output is enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(opts Options) bool {
	// Explicit flag wins
	if opts.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []tokenlint.Issue) {
	// Sort issues by file, then line, then text for stable output
	sorted := make([]tokenlint.Issue, len(issues))
	copy(sorted, issues)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Pos.Filename != sorted[j].Pos.Filename {
			return sorted[i].Pos.Filename < sorted[j].Pos.Filename
		}
		if sorted[i].Pos.Line != sorted[j].Pos.Line {
			return sorted[i].Pos.Line < sorted[j].Pos.Line
		}
		return sorted[i].Text < sorted[j].Text
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue tokenlint.Issue) {
	// Format: file:line:col: message (linter)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}

	if issue.Replacement != nil {
		fmt.Fprintf(r.w, "\t%s\n",
			RenderStyle(StyleGreen, "suggested: "+issue.Replacement.NewText, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are preserved so alignment survives tab expansion.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}
	prefix := sourceLine[:prefixLen]

	var padding strings.Builder
	for _, ch := range prefix {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result *tokenlint.CheckResult) {
	totalIssues := len(result.Issues)

	if totalIssues == 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "All token invariants hold.", r.useColors))
		return
	}

	fmt.Fprintln(r.w, "")
	switch {
	case result.ErrorCount > 0 && result.WarningCount > 0:
		fmt.Fprintf(r.w, "%d issues (%s, %s)\n",
			totalIssues,
			RenderStyle(StyleRed, fmt.Sprintf("%d errors", result.ErrorCount), r.useColors),
			RenderStyle(StyleYellow, fmt.Sprintf("%d warnings", result.WarningCount), r.useColors))
	case result.ErrorCount > 0:
		fmt.Fprintf(r.w, "%d issues (%s)\n",
			totalIssues,
			RenderStyle(StyleRed, fmt.Sprintf("%d errors", result.ErrorCount), r.useColors))
	default:
		fmt.Fprintf(r.w, "%d issues (%s)\n",
			totalIssues,
			RenderStyle(StyleYellow, fmt.Sprintf("%d warnings", result.WarningCount), r.useColors))
	}

	if result.TruncatedCount > 0 {
		fmt.Fprintf(r.w, "%d issues truncated by output limits\n", result.TruncatedCount)
	}
}
