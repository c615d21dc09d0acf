package extract

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstMatchPriority(t *testing.T) {
	// Both patterns match; the first in the table must win.
	text := "Patient: Jane Doe\nName: John Smith"

	got, ok := FirstMatch(text, namePatterns)
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", got)
}

func TestFirstMatchFallsThrough(t *testing.T) {
	text := "Name: John Smith"

	got, ok := FirstMatch(text, []*regexp.Regexp{
		regexp.MustCompile(`(?i)Patient Name\s*:?\s*(.*)`),
		regexp.MustCompile(`(?i)Name\s*:?\s*(.*)`),
	})
	assert.True(t, ok)
	assert.Equal(t, "John Smith", got)
}

func TestFirstMatchNoMatch(t *testing.T) {
	got, ok := FirstMatch("nothing relevant here", dobPatterns)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestFirstMatchCaseInsensitive(t *testing.T) {
	got, ok := FirstMatch("PATIENT: Jane Doe", namePatterns)
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", got)
}

func TestFirstMatchTrimsWhitespace(t *testing.T) {
	got, ok := FirstMatch("Patient:   Jane Doe   ", namePatterns)
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", got)
}
