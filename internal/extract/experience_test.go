package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperience(t *testing.T) {
	text := "Experience\nSenior Engineer at Acme Corp, 2021\nLed the backend rewrite for two years"
	entries := extractExperience(text, DefaultConfig())

	require.Len(t, entries, 1)
	assert.Equal(t, "Senior Engineer", entries[0].Title)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "2021", entries[0].StartYear)
	assert.Contains(t, entries[0].Description, "Led the backend rewrite")
}

func TestExtractExperience_TitleOnlyFragment(t *testing.T) {
	// No " at "/comma separator: the whole fragment becomes the title,
	// truncated to 50 characters.
	text := "Experience\n" + strings.Repeat("z", 80)
	entries := extractExperience(text, DefaultConfig())

	require.Len(t, entries, 1)
	assert.Len(t, entries[0].Title, 50)
	assert.Empty(t, entries[0].Company)
}

func TestExtractExperience_SkipsImplausibleFragments(t *testing.T) {
	// Fragments under 20 or over 300 characters are discarded.
	text := "Experience\nshort stint\n" + strings.Repeat("w", 350)
	entries := extractExperience(text, DefaultConfig())
	assert.Empty(t, entries)
}

func TestExtractExperience_NoSection(t *testing.T) {
	entries := extractExperience("hobbies only in this text", DefaultConfig())
	assert.Empty(t, entries)
}

func TestExtractExperience_CapsFragments(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Experience\n")
	for i := 0; i < 10; i++ {
		sb.WriteString("worked on something reasonably descriptive here\n")
	}
	entries := extractExperience(sb.String(), DefaultConfig())
	assert.LessOrEqual(t, len(entries), DefaultConfig().MaxExperienceEntries)
}
