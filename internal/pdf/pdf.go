// Package pdf is the PDF-to-text collaborator for the extraction
// pipeline. It wraps the ledongthuc/pdf library: pure Go, reads from
// memory, which fits uploads that never touch disk.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document holds per-page text extracted from one PDF. A page that
// yields no text is kept as an empty string so page numbering and
// counts stay stable.
type Document struct {
	Pages []string
}

// PageCount returns the number of pages in the source document.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Text joins every page's text. Pages without text contribute an
// empty segment.
func (d *Document) Text() string {
	return strings.Join(d.Pages, "\n")
}

// TextWithPlaceholder joins page texts, substituting placeholder for
// pages that yielded nothing. Used by the debug endpoint.
func (d *Document) TextWithPlaceholder(placeholder string) string {
	parts := make([]string, len(d.Pages))
	for i, p := range d.Pages {
		if p == "" {
			parts[i] = placeholder
		} else {
			parts[i] = p
		}
	}
	return strings.Join(parts, "\n")
}

// Extractor converts raw PDF bytes into per-page text. The interface
// exists so handlers and the extraction service can be tested with a
// stub instead of real PDF fixtures.
type Extractor interface {
	Extract(data []byte) (*Document, error)
}

// Reader is the ledongthuc/pdf backed Extractor.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Extract parses the PDF structure and pulls plain text page by page.
// Malformed bytes fail the whole call; a page-level text failure only
// blanks that page.
func (r *Reader) Extract(data []byte) (*Document, error) {
	pr, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	doc := &Document{Pages: make([]string, 0, pr.NumPage())}
	for i := 1; i <= pr.NumPage(); i++ {
		page := pr.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			doc.Pages = append(doc.Pages, "")
			continue
		}
		doc.Pages = append(doc.Pages, text)
	}
	return doc, nil
}
