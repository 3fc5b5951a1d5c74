package report

import (
	"io"
	"os"

	"github.com/yacobolo/tokenlint"
)

// OutputFormat represents the output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and the invariant table only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + invariant table
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit --quiet flag wins (exit code only)
	if quiet {
		return OutputIssues // will be suppressed by the caller
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}

	// Following golangci-lint's UX: issues only by default
	return OutputIssues
}

// Write renders the check result in the specified format
func Write(w io.Writer, result *tokenlint.CheckResult, format OutputFormat, opts Options) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)

	case OutputSummary:
		useColors := shouldUseColors(opts)
		verbose := NewVerboseReporter(w, useColors)
		verbose.PrintStatistics(result)
		verbose.PrintInvariants(result)
		verbose.PrintFailures(result)

	case OutputFull:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)

		verbose := NewVerboseReporter(w, reporter.UseColors())
		verbose.PrintStatistics(result)
		verbose.PrintInvariants(result)
		verbose.PrintFailures(result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}
