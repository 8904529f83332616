package extract

import (
	"regexp"
	"strings"
)

var educationSectionKeywords = []string{
	"university", "college", "bachelor", "master", "phd", "degree", "diploma",
	"school", "institute", "academy", "education",
	"b.tech", "m.tech", "b.sc", "m.sc", "mba", "b.e", "m.e",
}

var (
	educationKeywordRe = sectionKeywordRe(educationSectionKeywords)
	institutionRe      = regexp.MustCompile(`(?i)(?:university|college|institute|school|academy|of\s+engineering|of\s+technology|of\s+science)[^a-zA-Z]*\s*([A-Za-z][A-Za-z\s,.'-]+)`)
	yearRe             = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	fieldOfStudyRe     = regexp.MustCompile(`(?i)computer science|engineering|technology|business|arts|science|commerce|information technology`)
	fragmentSplitRe    = regexp.MustCompile(`[\n,;]`)
)

// degreePatterns are tested in order against the whole document; the
// first match supplies the degree for every institution found in the
// keyword pass. A multi-institution résumé can therefore attribute a
// degree to the wrong school. That matches the shipped behavior the rest
// of the platform was tuned against; do not scope this to the
// institution without revisiting stored data.
var degreePatterns = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`(?i)B\.?\s*Tech?`), "B.Tech"},
	{regexp.MustCompile(`(?i)M\.?\s*Tech?`), "M.Tech"},
	{regexp.MustCompile(`(?i)B\.?\s*Sc`), "B.Sc"},
	{regexp.MustCompile(`(?i)M\.?\s*Sc`), "M.Sc"},
	{regexp.MustCompile(`(?i)B\.?\s*E`), "B.E"},
	{regexp.MustCompile(`(?i)M\.?\s*E`), "M.E"},
	{regexp.MustCompile(`(?i)MBA`), "MBA"},
	{regexp.MustCompile(`(?i)PhD`), "PhD"},
	{regexp.MustCompile(`(?i)Bachelor'?s?`), "Bachelor's"},
	{regexp.MustCompile(`(?i)Master'?s?`), "Master's"},
	{regexp.MustCompile(`(?i)Diploma`), "Diploma"},
}

// maxSectionEntries caps how many fragments the section fallback turns
// into entries.
const maxSectionEntries = 5

// yearLookahead is how far past an institution match the year scan peeks,
// enough to cover a trailing ", 2016".
const yearLookahead = 20

// extractEducation first looks for institution-indicating keywords
// anywhere in the document and captures the run of words after them. When
// none produce a usable name it degrades to slicing the education section
// into comma/newline fragments. Entries always carry an institution;
// degree may be empty.
func extractEducation(text string, cfg Config) []EducationEntry {
	if entries := educationFromKeywords(text, cfg); len(entries) > 0 {
		return entries
	}
	return educationFromSection(text, cfg)
}

func educationFromKeywords(text string, cfg Config) []EducationEntry {
	matches := institutionRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) > cfg.MaxEducationEntries {
		matches = matches[:cfg.MaxEducationEntries]
	}

	var entries []EducationEntry
	for _, idx := range matches {
		institution := strings.TrimSpace(text[idx[2]:idx[3]])
		if len(institution) <= 3 || len(institution) >= 80 {
			continue
		}
		// The capture class has no digits, so the year sits just past the
		// institution text.
		vicinity := text[idx[0]:min(len(text), idx[1]+yearLookahead)]
		entry := EducationEntry{
			Institution: institution,
			Degree:      degreeFromDocument(text),
			Field:       fieldOfStudyRe.FindString(institution),
			StartYear:   yearRe.FindString(vicinity),
		}
		entries = append(entries, entry)
	}
	return entries
}

func degreeFromDocument(text string) string {
	for _, dp := range degreePatterns {
		if dp.re.MatchString(text) {
			return dp.label
		}
	}
	return ""
}

func educationFromSection(text string, cfg Config) []EducationEntry {
	section := extractSection(text, educationKeywordRe, cfg.SectionMaxBlankLines)
	if len(section) <= cfg.MinTextLen {
		return nil
	}

	var fragments []string
	for _, part := range fragmentSplitRe.Split(section, -1) {
		trimmed := strings.TrimSpace(part)
		if len(trimmed) > 10 && len(trimmed) < 200 {
			fragments = append(fragments, trimmed)
		}
	}
	if len(fragments) > maxSectionEntries {
		fragments = fragments[:maxSectionEntries]
	}

	var entries []EducationEntry
	for _, frag := range fragments {
		if len(frag) >= 150 {
			continue
		}
		entries = append(entries, EducationEntry{
			Institution: frag,
			Degree:      degreeFromFragment(frag),
			StartYear:   yearRe.FindString(frag),
		})
	}
	return entries
}

// degreeFromFragment maps abbreviation substrings inside a single
// fragment to a broad degree label.
func degreeFromFragment(frag string) string {
	lower := strings.ToLower(frag)
	contains := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(lower, s) {
				return true
			}
		}
		return false
	}
	switch {
	case contains("bachelor", "b.sc", "b.e", "b.tech"):
		return "Bachelor's Degree"
	case contains("master", "m.sc", "m.e", "m.tech", "mba"):
		return "Master's Degree"
	case contains("phd", "doctorate"):
		return "PhD"
	case contains("diploma"):
		return "Diploma"
	}
	return ""
}
