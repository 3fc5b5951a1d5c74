package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/yacobolo/tokenlint"
)

// VerboseReporter handles detailed statistics and per-invariant breakdowns
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs token set statistics
func (r *VerboseReporter) PrintStatistics(result *tokenlint.CheckResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Token Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------")

	fmt.Fprintf(r.w, "Files Scanned:  %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Tokens Checked: %d\n", result.TokensChecked)
	fmt.Fprintf(r.w, "Errors:         %d\n", result.ErrorCount)
	fmt.Fprintf(r.w, "Warnings:       %d\n", result.WarningCount)

	if len(result.TokensByCategory) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, "Tokens by category:")

		categories := make([]string, 0, len(result.TokensByCategory))
		for cat := range result.TokensByCategory {
			categories = append(categories, string(cat))
		}
		sort.Strings(categories)

		for _, cat := range categories {
			fmt.Fprintf(r.w, "  %-12s %d\n", cat, result.TokensByCategory[tokenlint.TokenCategory(cat)])
		}
	}
}

// PrintInvariants outputs the per-invariant pass/fail table
func (r *VerboseReporter) PrintInvariants(result *tokenlint.CheckResult) {
	if len(result.Reports) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Invariants", r.useColors))
	fmt.Fprintln(r.w, "------------")

	for _, rep := range result.Reports {
		status := RenderStyle(StyleGreen, "ok", r.useColors)
		if !rep.Pass {
			status = RenderStyle(StyleRed, fmt.Sprintf("%d failing", rep.Failed()), r.useColors)
		}

		label := rep.Invariant
		if rep.Scope != "" {
			label = fmt.Sprintf("%s (%s)", rep.Invariant, rep.Scope)
		}

		fmt.Fprintf(r.w, "  %-28s %3d tokens  %s\n", label, len(rep.Results), status)
	}
}

// PrintFailures lists every failing per-token judgment
func (r *VerboseReporter) PrintFailures(result *tokenlint.CheckResult) {
	var lines []string
	for _, rep := range result.Reports {
		for _, res := range rep.Results {
			if res.Pass {
				continue
			}
			line := fmt.Sprintf("  %s: %s (%s)", rep.Invariant, res.Name, res.Reason)
			if res.Value != "" {
				line = fmt.Sprintf("  %s: %s = %s (%s)", rep.Invariant, res.Name, res.Value, res.Reason)
			}
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Failing Tokens", r.useColors))
	fmt.Fprintln(r.w, "----------------")
	for _, line := range lines {
		fmt.Fprintln(r.w, line)
	}
}
