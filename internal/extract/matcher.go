// Package extract implements the text-to-structured-record pipeline:
// pattern matching over freeform report text, unit normalization,
// section extraction and record assembly. Everything here is pure;
// a pattern miss is a normal outcome, never an error.
package extract

import (
	"regexp"
	"strings"
)

// FirstMatch evaluates patterns in order and returns the first
// successful match's first capture group, trimmed of surrounding
// whitespace. Ordering encodes priority: more specific label variants
// come first in the table and win.
func FirstMatch(text string, patterns []*regexp.Regexp) (string, bool) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}
