package extract

import (
	"regexp"
	"strings"
)

// SectionSpec locates a bounded text section: the span between the end
// of the start anchor and the start of the earliest boundary match.
type SectionSpec struct {
	Start    *regexp.Regexp
	Boundary *regexp.Regexp
}

// Extract returns the section content, trimmed. Sections lacking a
// boundary run to end of text; an absent start anchor means no section.
func (s SectionSpec) Extract(text string) (string, bool) {
	loc := s.Start.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	rest := text[loc[1]:]
	end := len(rest)
	if s.Boundary != nil {
		if b := s.Boundary.FindStringIndex(rest); b != nil {
			end = b[0]
		}
	}
	return strings.TrimSpace(rest[:end]), true
}

var listSeparator = regexp.MustCompile(`[,\n]`)

// SplitList segments a list-valued section span into items, splitting
// on commas or newlines, trimming each token and dropping empties.
func SplitList(span string) []string {
	items := []string{}
	for _, tok := range listSeparator.Split(span, -1) {
		if tok = strings.TrimSpace(tok); tok != "" {
			items = append(items, tok)
		}
	}
	return items
}
