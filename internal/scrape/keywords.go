package scrape

import (
	"fmt"
	"regexp"
)

// DefaultKeywords target intern/SDE postings. Order only decides which
// pattern short-circuits; a line is emitted at most once.
var DefaultKeywords = []string{
	`\bSDE\b`,
	`Software Engineer Intern`,
	`Software Engineering Intern`,
	`SDE Intern`,
	`Summer 2026`,
	`Summer\s*2026`,
	`2026 Summer`,
	`Intern - Software`,
	`Software Intern`,
	`Engineering Intern`,
}

// CompileKeywords compiles each pattern case-insensitively, keeping order.
func CompileKeywords(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return nil, fmt.Errorf("keyword[%d] %q: %w", i, p, err)
		}
		out = append(out, re)
	}
	return out, nil
}
