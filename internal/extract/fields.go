package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Per-field heuristic passes. Each returns (value, ok) so that "nothing
// found" stays a first-class outcome instead of an empty-string sentinel.

var emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// extractEmail prefers the first address that does not look like a
// placeholder, falling back to the first match of any kind.
func extractEmail(text string) (string, bool) {
	matches := emailRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return "", false
	}
	for _, m := range matches {
		lower := strings.ToLower(m)
		if !strings.Contains(lower, "example") && !strings.Contains(lower, "test") {
			return m, true
		}
	}
	return matches[0], true
}

// phonePatterns run most-specific first; the first one that matches
// anywhere in the text wins. No checksum or country validation is done.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\+?91[-.\s]?\d{10}`),
	regexp.MustCompile(`\+?\d{10,12}`),
	regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\d{1,3}[-.\s]\d{3}[-.\s]\d{4}`),
}

var spaceRunRe = regexp.MustCompile(`\s+`)

func extractPhone(text string) (string, bool) {
	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(spaceRunRe.ReplaceAllString(m, " ")), true
		}
	}
	return "", false
}

// Tokens that disqualify a leading line from being the candidate's name:
// document boilerplate, contact markers, job-title words, and section
// headings.
var nameSkipTokens = []string{
	"resume", "cv", "curriculum", "phone", "email", "address", "@", "http",
	"software", "engineer", "developer", "manager", "analyst", "designer",
	"projects", "skills", "education", "certificates", "interests",
	"technologies", "database", "languages",
}

var (
	longDigitRunRe = regexp.MustCompile(`\d{4,}`)
	oddCharRe      = regexp.MustCompile(`[^a-zA-Z\s.\-']`)
)

// extractName is a cascade: scan the leading lines for something shaped
// like a name, then look for a name anchored after common trailing
// section headings ("Interests" first, a format seen on many exported
// résumés), and finally derive one from the uploaded filename. The first
// stage that produces a candidate wins.
func extractName(text, originalName string, window int) (string, bool) {
	if name, ok := nameFromLines(nonEmptyLines(text), window); ok {
		return name, ok
	}
	if name, ok := nameAfterHeading(text, "interests", nil); ok {
		return name, ok
	}
	reject := []string{"project", "skill", "certificate"}
	for _, heading := range []string{"education", "certificates", "projects", "skills"} {
		if name, ok := nameAfterHeading(text, heading, reject); ok {
			return name, ok
		}
	}
	return nameFromFilename(originalName)
}

func nameFromLines(lines []string, window int) (string, bool) {
	if len(lines) > window {
		lines = lines[:window]
	}
outer:
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, tok := range nameSkipTokens {
			if strings.Contains(lower, tok) {
				continue outer
			}
		}
		if longDigitRunRe.MatchString(line) || oddCharRe.MatchString(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 5 {
			continue
		}
		for _, w := range words {
			if unicode.IsLower(rune(w[0])) {
				continue outer
			}
		}
		return line, true
	}
	return "", false
}

// nameAfterHeading looks for 3-5 capitalized words on the line right
// after a section heading.
func nameAfterHeading(text, heading string, reject []string) (string, bool) {
	re := regexp.MustCompile(fmt.Sprintf(`(?i)%s[^a-zA-Z]*\n\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+){2,4})`, heading))
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	candidate := strings.TrimSpace(strings.SplitN(m[1], "\n", 2)[0])
	if len(candidate) <= 3 {
		return "", false
	}
	lower := strings.ToLower(candidate)
	for _, tok := range reject {
		if strings.Contains(lower, tok) {
			return "", false
		}
	}
	return candidate, true
}

var (
	fileExtRe       = regexp.MustCompile(`(?i)\.(pdf|docx?|txt)$`)
	fileSepRe       = regexp.MustCompile(`[-_]+`)
	digitRunRe      = regexp.MustCompile(`\d+`)
	fileNoiseWordRe = regexp.MustCompile(`(?i)\b(resume|cv)\b`)
)

// nameFromFilename strips the extension, separators, digits, and the
// words "resume"/"cv" from the uploaded filename. Casing is kept as
// uploaded.
func nameFromFilename(originalName string) (string, bool) {
	name := fileExtRe.ReplaceAllString(originalName, "")
	name = fileSepRe.ReplaceAllString(name, " ")
	name = digitRunRe.ReplaceAllString(name, "")
	name = fileNoiseWordRe.ReplaceAllString(name, "")
	name = strings.TrimSpace(spaceRunRe.ReplaceAllString(name, " "))
	if len(name) > 2 && len(name) < 50 {
		return name, true
	}
	return "", false
}

var (
	bioContactTokens = []string{"@", "phone", "tel", "fax", "http", "www."}
	allDigitsRe      = regexp.MustCompile(`^\d+$`)
)

// extractBio stitches the first few substantial lines together, skipping
// contact rows, bare numbers, overlong lines, and lines already claimed
// by the skills pass.
func extractBio(lines []string, skills []string, maxLines, maxLen int) (string, bool) {
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	var kept []string
outer:
	for _, line := range lines {
		if len(line) <= 20 || len(line) >= 200 {
			continue
		}
		lower := strings.ToLower(line)
		for _, tok := range bioContactTokens {
			if strings.Contains(lower, tok) {
				continue outer
			}
		}
		if allDigitsRe.MatchString(line) {
			continue
		}
		for _, skill := range skills {
			if strings.Contains(lower, strings.ToLower(skill)) {
				continue outer
			}
		}
		kept = append(kept, line)
	}
	if len(kept) == 0 {
		return "", false
	}
	return truncate(strings.Join(kept, " "), maxLen), true
}

// titlePhrases are scanned in order against the lowercased document; the
// first hit becomes the profile title.
var titlePhrases = []string{
	"software engineer", "web developer", "full stack", "fullstack",
	"front end", "frontend", "back end", "backend", "data scientist",
	"machine learning", "devops", "cloud engineer", "manager", "analyst",
	"designer", "consultant", "architect", "lead", "senior", "junior",
	"associate", "intern",
}

func extractTitle(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, phrase := range titlePhrases {
		if strings.Contains(lower, phrase) {
			return titleCase(phrase), true
		}
	}
	return "", false
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:location|address|city)[:\s]+([A-Za-z\s,]+(?:\d{5})?)`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s*([A-Z]{2})\s*\d{5}`),
	regexp.MustCompile(`([A-Z][a-z]+,\s*[A-Z]{2})`),
}

// extractLocation tries a labeled "location:" pattern, then "City, ST
// 12345", then a bare "City, ST".
func extractLocation(text string) (string, bool) {
	for _, re := range locationPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 && m[1] != "" {
			return strings.TrimSpace(m[1]), true
		}
		return strings.TrimSpace(m[0]), true
	}
	return "", false
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// titleCase uppercases the first letter of each word, leaving the rest of
// the word alone.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
