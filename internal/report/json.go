package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/tokenlint"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version    string          `json:"version"`
	Timestamp  string          `json:"timestamp"`
	Summary    JSONSummary     `json:"summary"`
	Invariants []JSONInvariant `json:"invariants"`
	Issues     []JSONIssue     `json:"issues"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues   int  `json:"total_issues"`
	Errors        int  `json:"errors"`
	Warnings      int  `json:"warnings"`
	FilesScanned  int  `json:"files_scanned"`
	TokensChecked int  `json:"tokens_checked"`
	Pass          bool `json:"pass"`
}

// JSONInvariant represents one invariant's aggregate outcome
type JSONInvariant struct {
	Name    string `json:"name"`
	File    string `json:"file,omitempty"`
	Scope   string `json:"scope,omitempty"`
	Tokens  int    `json:"tokens"`
	Failing int    `json:"failing"`
	Pass    bool   `json:"pass"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Linter     string `json:"linter"`
	Source     string `json:"source,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *tokenlint.CheckResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a CheckResult to the export schema
func buildJSONOutput(result *tokenlint.CheckResult) JSONOutput {
	invariants := make([]JSONInvariant, len(result.Reports))
	for i, rep := range result.Reports {
		invariants[i] = JSONInvariant{
			Name:    rep.Invariant,
			File:    rep.File,
			Scope:   rep.Scope,
			Tokens:  len(rep.Results),
			Failing: rep.Failed(),
			Pass:    rep.Pass,
		}
	}

	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		suggestion := ""
		if issue.Replacement != nil {
			suggestion = issue.Replacement.NewText
		}
		issues[i] = JSONIssue{
			File:       issue.Pos.Filename,
			Line:       issue.Pos.Line,
			Column:     issue.Pos.Column,
			Severity:   issue.Severity,
			Message:    issue.Text,
			Linter:     issue.FromLinter,
			Source:     source,
			Suggestion: suggestion,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:   len(result.Issues),
			Errors:        result.ErrorCount,
			Warnings:      result.WarningCount,
			FilesScanned:  result.FilesScanned,
			TokensChecked: result.TokensChecked,
			Pass:          result.Pass(),
		},
		Invariants: invariants,
		Issues:     issues,
	}
}
