package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{
			name:  "prefers non-placeholder address",
			text:  "contact jane@example.com or jane.doe@acmecorp.com",
			want:  "jane.doe@acmecorp.com",
			found: true,
		},
		{
			name:  "falls back to placeholder when nothing else",
			text:  "reach me at bob@test.com",
			want:  "bob@test.com",
			found: true,
		},
		{
			name:  "no address",
			text:  "no contact information here",
			want:  "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractEmail(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{
			name:  "international with separators kept verbatim",
			text:  "call +1-415-555-0147 any time",
			want:  "+1-415-555-0147",
			found: true,
		},
		{
			name:  "parenthesized area code",
			text:  "office (415) 555-0147",
			want:  "(415) 555-0147",
			found: true,
		},
		{
			name:  "india format",
			text:  "mobile +91 9876543210",
			want:  "+91 9876543210",
			found: true,
		},
		{
			name:  "short dashed format",
			text:  "ext 55-555-0147",
			want:  "55-555-0147",
			found: true,
		},
		{
			name:  "internal whitespace collapsed",
			text:  "+1\n415 555 0147",
			want:  "+1 415 555 0147",
			found: true,
		},
		{
			name:  "no number",
			text:  "no digits worth dialing",
			want:  "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractPhone(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractName_LeadingLines(t *testing.T) {
	text := "Jane Doe\nSenior Software Engineer\njane.doe@acmecorp.com"
	name, ok := extractName(text, "upload.pdf", 15)
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", name)
}

func TestExtractName_SkipsContactAndHeadingLines(t *testing.T) {
	// Every candidate line carries a denylisted token or long digit run,
	// so the scan must move past them to the real name.
	text := strings.Join([]string{
		"Curriculum Vitae 2024",
		"Email: jane@acmecorp.com",
		"Phone 4155550147",
		"Maria Lopez Garcia",
	}, "\n")
	name, ok := extractName(text, "upload.pdf", 15)
	assert.True(t, ok)
	assert.Equal(t, "Maria Lopez Garcia", name)
}

func TestExtractName_InterestsAnchor(t *testing.T) {
	filler := strings.Repeat("skills and tools\n", 16)
	text := filler + "Interests\nRahul Kumar Sharma"
	name, ok := extractName(text, "upload.pdf", 15)
	assert.True(t, ok)
	assert.Equal(t, "Rahul Kumar Sharma", name)
}

func TestExtractName_HeadingAnchorRejectsNonNames(t *testing.T) {
	filler := strings.Repeat("skills and tools\n", 16)
	text := filler + "Projects\nSkill Matrix Project Board"
	name, ok := extractName(text, "upload.pdf", 15)
	// The candidate contains "project", so the cascade falls through to
	// the filename.
	assert.True(t, ok)
	assert.Equal(t, "upload", name)
}

func TestExtractName_FilenameFallback(t *testing.T) {
	text := "!!!\n???\n12345"
	name, ok := extractName(text, "jane-doe-resume.pdf", 15)
	assert.True(t, ok)
	assert.Equal(t, "jane doe", name)

	_, ok = extractName(text, "a.pdf", 15)
	assert.False(t, ok)
}

func TestExtractBio(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"A curious generalist who enjoys shipping products",
		"Contact: jane@acmecorp.com",
		"Python enthusiast and conference speaker since always",
		"4155550147",
		strings.Repeat("x", 250),
	}
	bio, ok := extractBio(lines, []string{"Python"}, 8, 500)
	assert.True(t, ok)
	assert.Equal(t, "A curious generalist who enjoys shipping products", bio)
}

func TestExtractBio_Truncates(t *testing.T) {
	lines := []string{
		strings.Repeat("a", 190),
		strings.Repeat("b", 190),
		strings.Repeat("c", 190),
	}
	bio, ok := extractBio(lines, nil, 8, 500)
	assert.True(t, ok)
	assert.Len(t, bio, 500)
}

func TestExtractTitle(t *testing.T) {
	title, ok := extractTitle("Worked three years as a senior software engineer at Acme")
	assert.True(t, ok)
	// "software engineer" outranks "senior" in the fixed phrase list.
	assert.Equal(t, "Software Engineer", title)

	_, ok = extractTitle("gardening and pottery")
	assert.False(t, ok)
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{
			name:  "labeled location",
			text:  "Location: Austin, Texas",
			want:  "Austin, Texas",
			found: true,
		},
		{
			name:  "city state zip",
			text:  "lives at Portland, OR 97201",
			want:  "Portland",
			found: true,
		},
		{
			name:  "bare city state",
			text:  "Portland, OR",
			want:  "Portland, OR",
			found: true,
		},
		{
			name:  "nothing",
			text:  "remote only",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractLocation(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}
