package extract

import (
	"regexp"
	"strings"
)

var allCapsHeadingRe = regexp.MustCompile(`^[A-Z\s]{3,}$`)

// extractSection returns the first region of text opened by a line
// containing any of the keywords. The opening line is included. The
// region ends after more than maxBlankLines consecutive blank lines, at a
// run of dashes, or at an all-caps sub-heading. Lines are joined with
// single spaces. Returns "" when no keyword line is ever found.
func extractSection(text string, keywordRe *regexp.Regexp, maxBlankLines int) string {
	var sb strings.Builder
	inSection := false
	blanks := 0

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			blanks++
			if blanks > maxBlankLines && inSection {
				break
			}
			continue
		}
		blanks = 0

		switch {
		case keywordRe.MatchString(line):
			inSection = true
			sb.WriteString(line)
			sb.WriteString(" ")
		case inSection && (strings.Contains(line, "----") || allCapsHeadingRe.MatchString(line)):
			return strings.TrimSpace(sb.String())
		case inSection:
			sb.WriteString(line)
			sb.WriteString(" ")
		}
	}
	return strings.TrimSpace(sb.String())
}

// sectionKeywordRe builds the case-insensitive alternation used to open a
// section. Keyword lists are fixed constants, so MustCompile is safe.
func sectionKeywordRe(keywords []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + strings.Join(keywords, "|"))
}
