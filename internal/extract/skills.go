package extract

import (
	"regexp"
	"strings"
)

// Two complementary mechanisms feed one deduplicated skill list: labeled
// sections like "Languages: Python, Go" are split on their delimiters,
// and the canonical dictionary is substring-matched against the whole
// document. Dedup is case-insensitive, output is Title-Cased, order is
// first-discovered.

var skillSectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:languages?|programming|technologies?|tech\s*skills?)\s*[:;][ \t]*([A-Za-z0-9+#&,./() \t-]+)`),
	regexp.MustCompile(`(?i)(?:databases?)\s*[:;][ \t]*([A-Za-z0-9+#&,./() \t-]+)`),
	regexp.MustCompile(`(?i)(?:tools?(?:\s*&\s*tech)?|frameworks?|libraries?)\s*[:;][ \t]*([A-Za-z0-9+#&,./() \t-]+)`),
	regexp.MustCompile(`(?i)(?:web\s*development|web\s*technologies?)\s*[:;][ \t]*([A-Za-z0-9+#&,./() \t-]+)`),
	regexp.MustCompile(`(?i)(?:android|ios|mobile)\s*[:;][ \t]*([A-Za-z0-9+#&,./() \t-]+)`),
}

var (
	skillSplitRe = regexp.MustCompile(`[,;+#&/()]`)
	skillTokenRe = regexp.MustCompile(`^[a-zA-Z0-9+.\s]+$`)
)

// skillSet keeps first-discovered order with case-insensitive dedup.
type skillSet struct {
	seen  map[string]struct{}
	items []string
}

func newSkillSet() *skillSet {
	return &skillSet{seen: make(map[string]struct{})}
}

func (s *skillSet) add(skill string) {
	skill = titleCase(strings.ToLower(strings.TrimSpace(skill)))
	if skill == "" {
		return
	}
	key := strings.ToLower(skill)
	if _, dup := s.seen[key]; dup {
		return
	}
	s.seen[key] = struct{}{}
	s.items = append(s.items, skill)
}

func extractSkills(text string, max int) []string {
	set := newSkillSet()

	for _, re := range skillSectionPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			for _, tok := range splitSkillList(m[1]) {
				set.add(tok)
			}
		}
	}

	lower := strings.ToLower(text)
	for _, skill := range skillDictionary {
		if strings.Contains(lower, skill) {
			set.add(skill)
		}
	}

	if len(set.items) > max {
		set.items = set.items[:max]
	}
	return set.items
}

func splitSkillList(list string) []string {
	var out []string
	for _, tok := range skillSplitRe.Split(list, -1) {
		tok = strings.TrimSpace(tok)
		if len(tok) > 1 && len(tok) < 30 && skillTokenRe.MatchString(tok) {
			out = append(out, tok)
		}
	}
	return out
}
