package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_LabeledSections(t *testing.T) {
	text := "Databases: MySQL / PostgreSQL & Redis\nTools: Git, Docker"
	skills := extractSkills(text, 20)

	assert.Subset(t, skills, []string{"Mysql", "Postgresql", "Redis", "Git", "Docker"})
	// Labeled-section hits come before dictionary hits.
	assert.Equal(t, "Mysql", skills[0])
}

func TestExtractSkills_CapAndDedup(t *testing.T) {
	text := strings.Join([]string{
		"Python Python Python Python Python",
		"javascript react nodejs java php ruby html css sql mongodb",
		"mysql postgresql redis docker kubernetes aws azure gcp git graphql",
		"angular vue bootstrap django flask",
	}, "\n")
	skills := extractSkills(text, 20)

	assert.LessOrEqual(t, len(skills), 20)
	assert.Contains(t, skills, "Python")

	seen := map[string]bool{}
	for _, s := range skills {
		key := strings.ToLower(s)
		assert.False(t, seen[key], "duplicate skill %q", s)
		seen[key] = true
	}
}

func TestExtractSkills_TitleCased(t *testing.T) {
	skills := extractSkills("Languages: TYPESCRIPT, machine learning", 20)
	assert.Contains(t, skills, "Typescript")
	assert.Contains(t, skills, "Machine Learning")
}

func TestExtractSkills_RejectsOddTokens(t *testing.T) {
	// Tokens with disallowed characters or out-of-range lengths are
	// dropped from labeled sections.
	text := "Languages: x, <script>, " + strings.Repeat("y", 40)
	skills := extractSkills(text, 20)
	for _, s := range skills {
		assert.NotContains(t, s, "<")
		assert.NotEqual(t, "X", s)
	}
}

func TestSplitSkillList(t *testing.T) {
	got := splitSkillList("Python, Go / Rust & C++ (embedded)")
	assert.Equal(t, []string{"Python", "Go", "Rust", "embedded"}, got)
}
