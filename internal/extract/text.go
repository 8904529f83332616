package extract

import (
	"bytes"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Raw text extractors. All of them return a string, possibly empty, and
// never an error: a résumé with unreadable internals should still let the
// user enter data manually downstream, so parse failures are absorbed
// here rather than surfaced.

// pdfText tries whole-document extraction first and falls back to
// stitching pages together one by one when that comes back near-empty.
// The library panics on some malformed files, so the recover is
// load-bearing.
func pdfText(data []byte, minLen int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	if body, err := reader.GetPlainText(); err == nil {
		var sb strings.Builder
		if _, err := io.Copy(&sb, body); err == nil {
			if full := sb.String(); len(strings.TrimSpace(full)) >= minLen {
				return full
			}
		}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String()
}

var (
	docxRunRe = regexp.MustCompile(`(?s)<w:t[^>]*>(.*?)</w:t>`)
	xmlTagRe  = regexp.MustCompile(`<[^>]+>`)
)

// wordText extracts text from Word documents. The strict pass keeps only
// w:t text runs; when that yields almost nothing (heavily styled
// documents sometimes bury text outside plain runs) a permissive pass
// strips markup wholesale. Legacy .doc files are not zip archives, so a
// parse failure there falls back to reading the bytes literally.
func wordText(data []byte, legacy bool, minLen int) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if legacy {
			return string(data)
		}
		return ""
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	text := docxRuns(content)
	if len(strings.TrimSpace(text)) < minLen {
		text = docxPermissive(content)
	}
	return text
}

func docxRuns(content string) string {
	var sb strings.Builder
	for _, block := range strings.Split(content, "</w:p>") {
		for _, m := range docxRunRe.FindAllStringSubmatch(block, -1) {
			sb.WriteString(html.UnescapeString(m[1]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func docxPermissive(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	return html.UnescapeString(xmlTagRe.ReplaceAllString(content, " "))
}
