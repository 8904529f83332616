package extract

import (
	"path/filepath"
	"strings"
)

// Format selects which raw-text extractor handles an uploaded file.
type Format int

const (
	FormatPlaintext Format = iota
	FormatPDF
	FormatWord
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatWord:
		return "word"
	default:
		return "plaintext"
	}
}

// DetectFormat picks a format from the original filename's extension,
// case-insensitive. Unknown extensions fall back to plaintext so the
// bytes are still read literally as a best effort; no extension is ever
// an error at this stage.
func DetectFormat(originalName string) Format {
	switch strings.ToLower(filepath.Ext(originalName)) {
	case ".pdf":
		return FormatPDF
	case ".docx", ".doc":
		return FormatWord
	default:
		return FormatPlaintext
	}
}
