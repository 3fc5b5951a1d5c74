package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/tokenlint"
	"github.com/yacobolo/tokenlint/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check [patterns...]",
	Short: "Check design-token stylesheets against the token invariants",
	Long: `Check every stylesheet matching the given glob patterns. Patterns default
to "**/*.css" under the current directory; gitignored and minified files
are skipped.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runCheck(args)
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("paths", []string{"**/*.css"}, "Glob patterns for stylesheets to check")
	f.String("root-selector", ":root", "Selector introducing the default token scope")
	f.String("dark-selector", ".dark", "Selector introducing the dark-mode override scope")
	f.Float64("min-contrast", 4.5, "Minimum WCAG contrast ratio for text/background pairs")
	f.Bool("strict", false, "Exit 1 on any issue, warnings included (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show declaration text with issues")
	f.Bool("print-linter-name", true, "Show (tokenlint) suffix on issues")
}

// runCheck is shared between `tokenlint check` and the bare `tokenlint`
// invocation.
func runCheck(args []string) error {
	cfg := buildCheckConfig()

	patterns := args
	if len(patterns) == 0 {
		patterns = getPatterns()
	}

	result, stats, err := tokenlint.CheckFiles(patterns, cfg)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	verbose := getBoolWithFallback("verbose", "verbose", false)
	if verbose && stats.FilesSkipped > 0 {
		fmt.Fprintf(os.Stderr, "Checked %d files (skipped %d minified/ignored files)\n",
			stats.FilesScanned, stats.FilesSkipped)
	}

	maxIssues := getIntWithFallback("max-issues", "check.max-issues", 0)
	maxSame := getIntWithFallback("max-same-issues", "check.max-same-issues", 0)
	if maxIssues > 0 || maxSame > 0 {
		result.Issues, result.TruncatedCount = tokenlint.LimitIssues(result.Issues, maxIssues, maxSame)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := report.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		report.Write(os.Stdout, result, format, buildReportOptions())
	}

	// Exit code logic - "Soft Gate" approach
	strict := getBoolWithFallback("strict", "check.strict", false)
	if strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(result.Issues) > 0 {
			os.Exit(1)
		}
	} else if result.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		os.Exit(1)
	}

	return nil
}
