package extraction

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newReportValidator builds the strict phase of the two-phase build.
// The assembler produces a loosely-populated report; this validator
// enforces the required-field constraints on nested records.
func newReportValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// validateReport applies structural constraints to an assembled
// report. A violation yields ok=false and a readable warning; it is
// never allowed to escape as an error or panic.
func (s *Service) validateReport(report interface{}) (warning string, ok bool) {
	err := s.validate.Struct(report)
	if err == nil {
		return "", true
	}

	verrs, isValidation := err.(validator.ValidationErrors)
	if !isValidation {
		// Invalid top-level value passed to the validator. Treat as a
		// validation failure rather than a hard error.
		return err.Error(), false
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: failed %q constraint", fieldPath(fe), fe.Tag()))
	}
	return strings.Join(parts, "; "), false
}

// fieldPath renders the offending field as it appears in the JSON
// payload, e.g. "clinical_notes[0].content".
func fieldPath(fe interface{ Namespace() string }) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(snakeCase(ns))
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' && i > 0 {
			prev := s[i-1]
			if prev != '.' && prev != '[' && !(prev >= 'A' && prev <= 'Z') {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
