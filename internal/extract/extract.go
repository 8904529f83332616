// Package extract recovers a best-effort structured profile from an
// uploaded résumé (PDF, Word, or plain text) using regex and keyword
// heuristics only. Résumés have no common schema, so the contract is
// deliberately loose: never crash, never block on missing data, always
// return a fully populated Profile even when almost nothing could be
// read. The single hard failure is the input file being unreadable at
// the filesystem level.
package extract

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the tuning thresholds of the pipeline. The defaults are
// empirically chosen against real résumé samples; they live here rather
// than inline so they can be adjusted without touching extraction logic.
type Config struct {
	// MinTextLen is the text length below which the pipeline logs a
	// degradation note. Field extraction still runs on whatever text
	// exists, since the filename fallback can recover a name even from
	// an empty document.
	MinTextLen int

	// NameLineWindow is how many leading non-empty lines the name scan
	// inspects.
	NameLineWindow int

	MaxSkills            int
	MaxBioLines          int
	MaxBioLen            int
	SectionMaxBlankLines int
	MaxEducationEntries  int
	MaxExperienceEntries int
}

func DefaultConfig() Config {
	return Config{
		MinTextLen:           10,
		NameLineWindow:       15,
		MaxSkills:            20,
		MaxBioLines:          8,
		MaxBioLen:            500,
		SectionMaxBlankLines: 2,
		MaxEducationEntries:  3,
		MaxExperienceEntries: 7,
	}
}

// Extractor runs the detection → raw text → field heuristics pipeline.
// It holds no mutable state, so one Extractor is safe for concurrent use
// across goroutines.
type Extractor struct {
	cfg Config
}

func New(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// ExtractFile reads the file at path and runs the pipeline over it.
// originalName is the filename the user uploaded under; it drives format
// detection and the name-from-filename fallback. The returned error is
// non-nil only when the file cannot be read at the OS level; every other
// problem degrades to a sparser (but fully populated) Profile.
func (e *Extractor) ExtractFile(path, originalName string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resume file %q: %w", path, err)
	}
	return e.Extract(data, originalName), nil
}

// Extract runs the pipeline over in-memory file bytes. It never fails:
// unreadable document internals yield empty text and the field passes
// work with whatever is left.
func (e *Extractor) Extract(data []byte, originalName string) *Profile {
	text := e.rawText(data, originalName)
	if len(strings.TrimSpace(text)) < e.cfg.MinTextLen {
		log.Printf("resume %q: extracted only %d chars, continuing with available data", originalName, len(strings.TrimSpace(text)))
	}
	return e.fieldPasses(text, originalName)
}

func (e *Extractor) rawText(data []byte, originalName string) string {
	switch DetectFormat(originalName) {
	case FormatPDF:
		return pdfText(data, e.cfg.MinTextLen)
	case FormatWord:
		legacy := strings.EqualFold(filepath.Ext(originalName), ".doc")
		return wordText(data, legacy, e.cfg.MinTextLen)
	default:
		return string(data)
	}
}

// fieldPasses composes the independent per-field heuristics. Skills run
// before bio because the bio pass excludes lines already claimed as
// skills; everything else is order-insensitive.
func (e *Extractor) fieldPasses(text, originalName string) *Profile {
	p := emptyProfile()
	lines := nonEmptyLines(text)

	if email, ok := extractEmail(text); ok {
		p.Email = email
	}
	if phone, ok := extractPhone(text); ok {
		p.Phone = phone
	}
	if name, ok := extractName(text, originalName, e.cfg.NameLineWindow); ok {
		p.Name = name
	}
	if skills := extractSkills(text, e.cfg.MaxSkills); len(skills) > 0 {
		p.Skills = skills
	}
	if bio, ok := extractBio(lines, p.Skills, e.cfg.MaxBioLines, e.cfg.MaxBioLen); ok {
		p.Bio = bio
	}
	if title, ok := extractTitle(text); ok {
		p.Title = title
	}
	if location, ok := extractLocation(text); ok {
		p.Location = location
	}
	p.Education = append(p.Education, extractEducation(text, e.cfg)...)
	p.Experience = append(p.Experience, extractExperience(text, e.cfg)...)
	return p
}
