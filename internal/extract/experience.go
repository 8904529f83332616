package extract

import (
	"regexp"
	"strings"
)

var experienceSectionKeywords = []string{
	"experience", "work", "job", "employment", "intern", "developer",
	"engineer", "manager", "analyst", "consultant", "designer", "architect",
	"lead", "senior", "junior", "associate",
}

var (
	experienceKeywordRe = sectionKeywordRe(experienceSectionKeywords)
	expFragmentRe       = regexp.MustCompile(`(?i)\n|experience|work|employment`)
	titleCompanyRe      = regexp.MustCompile(`\s+at\s+|\s+@\s+|\s*,\s*`)
)

// extractExperience isolates the region following experience-indicating
// keywords and splits it into fragments. Fragments of a plausible length
// become entries; the text before the first " at "/" @ "/comma separates
// title from company when possible.
func extractExperience(text string, cfg Config) []ExperienceEntry {
	section := extractSection(text, experienceKeywordRe, cfg.SectionMaxBlankLines)
	if len(section) <= cfg.MinTextLen {
		return nil
	}

	parts := expFragmentRe.Split(section, -1)
	if len(parts) <= 1 {
		return nil
	}
	parts = parts[1:]
	if len(parts) > cfg.MaxExperienceEntries {
		parts = parts[:cfg.MaxExperienceEntries]
	}

	var entries []ExperienceEntry
	for _, part := range parts {
		frag := strings.TrimSpace(part)
		if len(frag) <= 20 || len(frag) >= 300 {
			continue
		}
		entry := ExperienceEntry{
			StartYear:   yearRe.FindString(frag),
			Description: truncate(frag, 200),
		}
		if pieces := titleCompanyRe.Split(frag, -1); len(pieces) > 1 {
			entry.Title = strings.TrimSpace(pieces[0])
			entry.Company = strings.TrimSpace(pieces[1])
		} else {
			entry.Title = truncate(frag, 50)
		}
		entries = append(entries, entry)
	}
	return entries
}
