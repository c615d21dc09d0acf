package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clinsight/extract-api/internal/model"
	"github.com/clinsight/extract-api/internal/pdf"
)

func newValidatorService() *Service {
	return newTestService(&stubExtractor{doc: &pdf.Document{}}, true)
}

func TestValidateReportAllFieldsMissing(t *testing.T) {
	// Top-level fields are all optional; an empty report is complete.
	svc := newValidatorService()

	warning, ok := svc.validateReport(model.NewMedicalReport())
	assert.True(t, ok)
	assert.Empty(t, warning)
}

func TestValidateReportMissingNoteContent(t *testing.T) {
	svc := newValidatorService()

	report := model.NewMedicalReport()
	report.ClinicalNotes = append(report.ClinicalNotes, model.ClinicalNote{
		NoteType: model.NoteTypeHistory,
	})

	warning, ok := svc.validateReport(report)
	assert.False(t, ok)
	assert.Contains(t, warning, "clinical_notes[0].content")
	assert.Contains(t, warning, "required")
}

func TestValidateReportMissingLabFields(t *testing.T) {
	svc := newValidatorService()

	report := model.NewMedicalReport()
	report.LabResults = append(report.LabResults, model.LabResult{
		TestName: "CBC",
	})

	warning, ok := svc.validateReport(report)
	assert.False(t, ok)
	assert.Contains(t, warning, "lab_results[0].result")
}

func TestValidateReportValidNestedRecords(t *testing.T) {
	svc := newValidatorService()

	report := model.NewMedicalReport()
	report.ClinicalNotes = append(report.ClinicalNotes, model.ClinicalNote{
		NoteType: model.NoteTypePlan,
		Content:  "Continue meds",
	})
	report.LabResults = append(report.LabResults, model.LabResult{
		TestName: "CBC",
		Result:   "normal",
	})

	warning, ok := svc.validateReport(report)
	assert.True(t, ok)
	assert.Empty(t, warning)
}

func TestFieldPathRendering(t *testing.T) {
	assert.Equal(t, "clinical_notes[0].content", fieldPath(fakeFieldError{
		ns: "MedicalReport.ClinicalNotes[0].Content",
	}))
}

// fakeFieldError implements just enough of validator.FieldError for
// fieldPath.
type fakeFieldError struct {
	ns string
}

func (f fakeFieldError) Namespace() string { return f.ns }
