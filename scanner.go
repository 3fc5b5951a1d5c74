package tokenlint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks stylesheet discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually checked (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			// Gracefully degrade - no .gitignore is fine
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// isMinified checks if a file is a minified stylesheet; minified bundles
// are build artifacts, not token sources
func isMinified(path string) bool {
	return strings.HasSuffix(path, ".min.css")
}

// shouldSkipFile determines if a file should be excluded from checking.
//
// Two-layer filtering:
// 1. Pattern check (fast): skip *.min.css files
// 2. Gitignore check: skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if isMinified(path) {
		return true
	}

	// Only apply gitignore to relative paths (paths within the project).
	// Absolute paths (like /tmp/...) should not be affected by project gitignore.
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// DiscoverStylesheets expands glob patterns to stylesheet paths, with
// deduplication, directory filtering, and scan statistics.
func DiscoverStylesheets(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
			} else {
				allFiles = append(allFiles, match)
				seen[match] = true
				stats.FilesScanned++
			}
		}
	}

	return allFiles, stats, nil
}

// CheckFiles discovers stylesheets matching the given patterns and checks
// every token invariant over each. Per-file results are merged into one
// aggregate; a file that cannot be read is reported to stderr and skipped
// rather than failing the run.
func CheckFiles(patterns []string, cfg CheckConfig) (*CheckResult, ScanStats, error) {
	files, stats, err := DiscoverStylesheets(patterns)
	if err != nil {
		return nil, stats, err
	}

	combined := &CheckResult{}
	for _, file := range files {
		content, err := os.ReadFile(file) // #nosec G304 - paths come from user-supplied patterns
		if err != nil {
			fmt.Fprintf(os.Stderr, "tokenlint: skipping %s: %v\n", file, err)
			continue
		}
		combined.merge(Check(string(content), file, cfg))
		combined.FilesScanned++
	}

	return combined, stats, nil
}
