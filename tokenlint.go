// Package tokenlint validates CSS design-token stylesheets.
//
// tokenlint extracts custom-property declarations per scope, resolves var()
// references, and enforces accessibility and scale invariants over the token
// set: WCAG 2.1 contrast thresholds, a base-4 spacing scale, transition
// duration bounds, dark-mode background rules, and mode completeness.
//
// # Checking a stylesheet
//
//	result := tokenlint.Check(css, "tokens.css", tokenlint.DefaultCheckConfig())
//	for _, issue := range result.Issues {
//		fmt.Printf("%s:%d: %s\n", issue.Pos.Filename, issue.Pos.Line, issue.Text)
//	}
//
// # Checking files
//
//	result, stats, err := tokenlint.CheckFiles([]string{"styles/**/*.css"}, cfg)
//
// # CLI Tool
//
// tokenlint also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/tokenlint/cmd/tokenlint@latest
package tokenlint
