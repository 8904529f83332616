package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
Senior Software Engineer
jane.doe@acmecorp.com
+1-415-555-0147
Languages: Python, Go, TypeScript
Experience
Senior Engineer at Acme Corp, 2021
Led backend rewrite.
Education
B.Tech Computer Science, State University, 2016
`

func TestExtract_EndToEnd(t *testing.T) {
	e := New(DefaultConfig())
	p := e.Extract([]byte(sampleResume), "resume.txt")

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "jane.doe@acmecorp.com", p.Email)
	assert.Equal(t, "+1-415-555-0147", p.Phone)
	assert.Equal(t, "Software Engineer", p.Title)

	assert.Subset(t, p.Skills, []string{"Python", "Go", "Typescript"})

	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Senior Engineer", p.Experience[0].Title)
	assert.Equal(t, "Acme Corp", p.Experience[0].Company)
	assert.Equal(t, "2021", p.Experience[0].StartYear)

	require.NotEmpty(t, p.Education)
	var institutions, degrees []string
	for _, edu := range p.Education {
		institutions = append(institutions, edu.Institution)
		degrees = append(degrees, edu.Degree)
	}
	assert.Contains(t, strings.Join(institutions, "|"), "State University")
	assert.Contains(t, strings.Join(degrees, "|"), "Bachelor")
}

func TestExtract_Deterministic(t *testing.T) {
	e := New(DefaultConfig())
	first := e.Extract([]byte(sampleResume), "resume.txt")
	second := e.Extract([]byte(sampleResume), "resume.txt")
	require.Equal(t, first, second)
}

// Garbage bytes under any extension must still produce a fully shaped
// profile with non-nil slices.
func TestExtract_TotalFunction(t *testing.T) {
	e := New(DefaultConfig())
	garbage := []byte{0x00, 0xff, 0xfe, 0x01, 0x99, 0x42}

	for _, name := range []string{"broken.pdf", "broken.docx", "broken.doc", "broken.txt", "broken.xyz", "noextension"} {
		t.Run(name, func(t *testing.T) {
			p := e.Extract(garbage, name)
			require.NotNil(t, p)
			require.NotNil(t, p.Skills)
			require.NotNil(t, p.Education)
			require.NotNil(t, p.Experience)
		})
	}

	p := e.Extract(nil, "empty.txt")
	require.NotNil(t, p)
}

// A near-empty document still runs the field passes: the filename
// fallback can recover a name from nothing.
func TestExtract_DegradedInputUsesFilename(t *testing.T) {
	e := New(DefaultConfig())
	p := e.Extract([]byte(" "), "jane-doe-resume.pdf")
	assert.Equal(t, "jane doe", p.Name)
	assert.Empty(t, p.Email)
	assert.Empty(t, p.Skills)
}

func TestExtractFile(t *testing.T) {
	e := New(DefaultConfig())

	path := filepath.Join(t.TempDir(), "upload")
	require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0o644))

	p, err := e.ExtractFile(path, "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.Name)
}

// The only fatal error in the subsystem is the file being unreadable at
// the OS level.
func TestExtractFile_MissingFile(t *testing.T) {
	e := New(DefaultConfig())
	_, err := e.ExtractFile(filepath.Join(t.TempDir(), "does-not-exist"), "resume.pdf")
	require.Error(t, err)
}
