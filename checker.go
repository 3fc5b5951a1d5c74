package tokenlint

import (
	"fmt"
	"math"
	"sort"
)

const linterName = "tokenlint"

// Check validates every token invariant over one stylesheet.
//
// Each invariant enumerates its tokens independently and records a per-token
// judgment; a malformed or unresolved token fails that token only and never
// aborts the rest of the run. The returned result collects one
// InvariantReport per invariant plus golangci-style Issues for every fault.
func Check(stylesheet, filename string, cfg CheckConfig) *CheckResult {
	rootVars := ExtractVariables(stylesheet, cfg.RootSelector)
	darkVars := ExtractVariables(stylesheet, cfg.DarkSelector)

	result := &CheckResult{
		FilesScanned:     1,
		TokensChecked:    len(rootVars) + len(darkVars),
		TokensByCategory: CategorizeTokens(rootVars),
	}

	checkSpacingScale(result, rootVars, filename, cfg)
	checkDurations(result, rootVars, filename, cfg)
	checkDarkBackgrounds(result, darkVars, rootVars, filename, cfg)
	checkCompleteness(result, rootVars, darkVars, filename, cfg)
	checkContrast(result, cfg.RootSelector, rootVars, rootVars, filename, cfg)
	checkContrast(result, cfg.DarkSelector, darkVars, rootVars, filename, cfg)

	return result
}

// lookupDecl finds a declaration by name, preferring the own scope and
// falling back to the root scope.
func lookupDecl(name string, scope, root VariableMap) (Declaration, bool) {
	if d, ok := scope[name]; ok {
		return d, true
	}
	d, ok := root[name]
	return d, ok
}

// declIssue builds an issue positioned at a declaration.
func declIssue(filename string, decl Declaration, severity, text string) Issue {
	return Issue{
		FromLinter:  linterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{decl.Name + ": " + decl.Value + ";"},
		Pos: IssuePos{
			Filename: filename,
			Line:     decl.Line,
			Column:   1,
		},
	}
}

// fileIssue builds an issue with no declaration to point at, e.g. a missing
// token.
func fileIssue(filename, severity, text string) Issue {
	return Issue{
		FromLinter: linterName,
		Text:       text,
		Severity:   severity,
		Pos:        IssuePos{Filename: filename},
	}
}

// checkSpacingScale enforces that every --spacing-* token is a pixel
// multiple of 4 and that the declared values form exactly the configured
// scale: no off-scale values, no missing steps.
func checkSpacingScale(result *CheckResult, root VariableMap, filename string, cfg CheckConfig) {
	rep := InvariantReport{Invariant: "spacing-scale", File: filename, Scope: cfg.RootSelector, Pass: true}

	expected := make(map[float64]bool, len(cfg.SpacingScale))
	for _, px := range cfg.SpacingScale {
		expected[px] = true
	}
	seen := make(map[float64]bool)

	for _, name := range root.NamesWithPrefix("--spacing-") {
		decl := root[name]
		value := Resolve(decl.Value, root, root)
		res := TokenResult{Name: name, Value: value, Pass: true}

		if refName, isRef := ReferenceName(value); isRef {
			res.Pass = false
			res.Reason = "unresolved reference"
			result.addIssue(declIssue(filename, decl, SeverityWarning,
				fmt.Sprintf(IssueUnresolvedReference, name, refName)))
		} else if px, ok := ParsePixels(value); !ok {
			res.Pass = false
			res.Reason = "unparseable value"
			result.addIssue(declIssue(filename, decl, SeverityWarning,
				fmt.Sprintf(IssueUnparseableSpacing, name, value)))
		} else if math.Mod(px, 4) != 0 {
			res.Pass = false
			res.Reason = "not a multiple of 4px"
			result.addIssue(declIssue(filename, decl, SeverityError,
				fmt.Sprintf(IssueSpacingOffGrid, name, value)))
		} else if !expected[px] {
			res.Pass = false
			res.Reason = "not on the spacing scale"
			result.addIssue(declIssue(filename, decl, SeverityError,
				fmt.Sprintf(IssueSpacingOffScale, name, value)))
		} else {
			seen[px] = true
		}

		if !res.Pass {
			rep.Pass = false
		}
		rep.Results = append(rep.Results, res)
	}

	// The scale is exact: every configured step must be declared.
	for _, px := range cfg.SpacingScale {
		if seen[px] {
			continue
		}
		name := fmt.Sprintf("--spacing-%d", int(px))
		rep.Pass = false
		rep.Results = append(rep.Results, TokenResult{Name: name, Pass: false, Reason: "missing scale step"})
		result.addIssue(fileIssue(filename, SeverityError,
			fmt.Sprintf(IssueSpacingScaleGap, px, name)))
	}

	result.addReport(rep)
}

// checkDurations enforces the transition-duration bounds and the named
// fast/default/slow variant expectations over --transition-* and
// --duration-* tokens.
func checkDurations(result *CheckResult, root VariableMap, filename string, cfg CheckConfig) {
	rep := InvariantReport{Invariant: "duration-bounds", File: filename, Scope: cfg.RootSelector, Pass: true}

	transitions := root.NamesWithPrefix("--transition-")
	names := append([]string{}, transitions...)
	names = append(names, root.NamesWithPrefix("--duration-")...)
	sort.Strings(names)

	for _, name := range names {
		decl := root[name]
		value := Resolve(decl.Value, root, root)
		res := TokenResult{Name: name, Value: value, Pass: true}

		if refName, isRef := ReferenceName(value); isRef {
			res.Pass = false
			res.Reason = "unresolved reference"
			result.addIssue(declIssue(filename, decl, SeverityWarning,
				fmt.Sprintf(IssueUnresolvedReference, name, refName)))
		} else if ms, ok := ParseDuration(value); !ok {
			res.Pass = false
			res.Reason = "unparseable value"
			result.addIssue(declIssue(filename, decl, SeverityWarning,
				fmt.Sprintf(IssueUnparseableDuration, name, value)))
		} else if want, fixed := durationVariantFor(name, cfg); fixed && ms != want {
			res.Pass = false
			res.Reason = fmt.Sprintf("expected %gms", want)
			result.addIssue(declIssue(filename, decl, SeverityError,
				fmt.Sprintf(IssueDurationVariant, name, ms, want)))
		} else if ms < cfg.MinDurationMs || ms > cfg.MaxDurationMs {
			res.Pass = false
			res.Reason = "out of range"
			result.addIssue(declIssue(filename, decl, SeverityError,
				fmt.Sprintf(IssueDurationOutOfRange, name, ms, cfg.MinDurationMs, cfg.MaxDurationMs)))
		}

		if !res.Pass {
			rep.Pass = false
		}
		rep.Results = append(rep.Results, res)
	}

	if cfg.TransitionCount > 0 && len(transitions) != cfg.TransitionCount {
		rep.Pass = false
		rep.Results = append(rep.Results, TokenResult{
			Name:   "--transition-*",
			Pass:   false,
			Reason: fmt.Sprintf("%d variants declared", len(transitions)),
		})
		result.addIssue(fileIssue(filename, SeverityError,
			fmt.Sprintf(IssueTransitionCount, len(transitions), cfg.TransitionCount)))
	}

	result.addReport(rep)
}

// durationVariantFor returns the fixed expectation for a named variant, if
// the token is one of the fast/default/slow family members.
func durationVariantFor(name string, cfg CheckConfig) (float64, bool) {
	for suffix, ms := range cfg.DurationVariants {
		if name == "--transition-"+suffix || name == "--duration-"+suffix {
			return ms, true
		}
	}
	return 0, false
}

// checkDarkBackgrounds enforces that no background token of the override
// scope resolves to pure black.
func checkDarkBackgrounds(result *CheckResult, dark, root VariableMap, filename string, cfg CheckConfig) {
	rep := InvariantReport{Invariant: "dark-backgrounds", File: filename, Scope: cfg.DarkSelector, Pass: true}

	for _, name := range dark.NamesWithPrefix("--color-bg-") {
		decl := dark[name]
		value := Resolve(decl.Value, dark, root)
		res := TokenResult{Name: name, Value: value, Pass: true}

		if refName, isRef := ReferenceName(value); isRef {
			res.Pass = false
			res.Reason = "unresolved reference"
			result.addIssue(declIssue(filename, decl, SeverityWarning,
				fmt.Sprintf(IssueUnresolvedReference, name, refName)))
		} else if c, ok := ParseHex(value); !ok {
			res.Pass = false
			res.Reason = "unparseable value"
			result.addIssue(declIssue(filename, decl, SeverityWarning,
				fmt.Sprintf(IssueUnparseableColor, name, value)))
		} else if c.IsBlack() {
			res.Pass = false
			res.Reason = "pure black"
			result.addIssue(declIssue(filename, decl, SeverityError,
				fmt.Sprintf(IssueDarkBackgroundBlack, name)))
		}

		if !res.Pass {
			rep.Pass = false
		}
		rep.Results = append(rep.Results, res)
	}

	result.addReport(rep)
}

// checkCompleteness enforces that every required semantic token is declared
// in both the root and override scopes. A missing declaration is a distinct
// fault from a malformed one and gets its own message.
func checkCompleteness(result *CheckResult, root, dark VariableMap, filename string, cfg CheckConfig) {
	rep := InvariantReport{Invariant: "mode-completeness", File: filename, Pass: true}

	scopes := []struct {
		selector string
		vars     VariableMap
	}{
		{cfg.RootSelector, root},
		{cfg.DarkSelector, dark},
	}

	for _, name := range cfg.RequiredTokens {
		for _, scope := range scopes {
			res := TokenResult{Name: name, Pass: true}
			if decl, ok := scope.vars[name]; ok {
				res.Value = decl.Value
			} else {
				res.Pass = false
				res.Reason = "missing in " + scope.selector
				rep.Pass = false
				result.addIssue(fileIssue(filename, SeverityError,
					fmt.Sprintf(IssueMissingToken, name, scope.selector)))
			}
			rep.Results = append(rep.Results, res)
		}
	}

	result.addReport(rep)
}

// checkContrast enforces the WCAG threshold for each configured text/
// background pair within one scope. Pairs whose tokens are not declared at
// all are marked failing here but reported by checkCompleteness, so the
// fault is not double-counted as an issue.
func checkContrast(result *CheckResult, selector string, scope, root VariableMap, filename string, cfg CheckConfig) {
	rep := InvariantReport{Invariant: "contrast", File: filename, Scope: selector, Pass: true}

	for _, pair := range cfg.ContrastPairs {
		pairName := pair.Text + " on " + pair.Background
		res := TokenResult{Name: pairName, Pass: true}

		textDecl, textOK := lookupDecl(pair.Text, scope, root)
		bgDecl, bgOK := lookupDecl(pair.Background, scope, root)
		if !textOK || !bgOK {
			res.Pass = false
			res.Reason = "token not declared"
			rep.Pass = false
			rep.Results = append(rep.Results, res)
			continue
		}

		textVal := Resolve(textDecl.Value, scope, root)
		bgVal := Resolve(bgDecl.Value, scope, root)
		res.Value = textVal + " / " + bgVal

		text, ok := parseContrastColor(result, filename, textDecl, pair.Text, textVal, &res)
		bg, ok2 := parseContrastColor(result, filename, bgDecl, pair.Background, bgVal, &res)
		if ok && ok2 {
			ratio := ContrastRatio(text, bg)
			if ratio < cfg.MinContrast {
				res.Pass = false
				res.Reason = fmt.Sprintf("%.2f:1", ratio)
				issue := declIssue(filename, textDecl, SeverityError,
					fmt.Sprintf(IssueContrastTooLow, ratio, pair.Text, pair.Background, cfg.MinContrast))
				if hex, found := SuggestTextColor(text, bg, cfg.MinContrast); found {
					issue.Replacement = &Replacement{NewText: hex}
				}
				result.addIssue(issue)
			}
		}

		if !res.Pass {
			rep.Pass = false
		}
		rep.Results = append(rep.Results, res)
	}

	result.addReport(rep)
}

// parseContrastColor parses one side of a contrast pair, reporting
// unresolved references and unparseable literals as warnings on the result.
func parseContrastColor(result *CheckResult, filename string, decl Declaration, name, value string, res *TokenResult) (RGB, bool) {
	if refName, isRef := ReferenceName(value); isRef {
		res.Pass = false
		res.Reason = "unresolved reference"
		result.addIssue(declIssue(filename, decl, SeverityWarning,
			fmt.Sprintf(IssueUnresolvedReference, name, refName)))
		return RGB{}, false
	}
	c, ok := ParseHex(value)
	if !ok {
		res.Pass = false
		res.Reason = "unparseable value"
		result.addIssue(declIssue(filename, decl, SeverityWarning,
			fmt.Sprintf(IssueUnparseableColor, name, value)))
		return RGB{}, false
	}
	return c, true
}
