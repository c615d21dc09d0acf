package extract

import (
	"math"
	"strconv"

	"github.com/clinsight/extract-api/internal/model"
)

// ExtractPatientInfo runs the demographic pattern tables over the
// text. Fields with no matching pattern stay nil.
func ExtractPatientInfo(text string) model.PatientInfo {
	var info model.PatientInfo
	if v, ok := FirstMatch(text, namePatterns); ok {
		info.Name = &v
	}
	if v, ok := FirstMatch(text, dobPatterns); ok {
		info.DOB = &v
	}
	if v, ok := FirstMatch(text, genderPatterns); ok {
		info.Gender = &v
	}
	if v, ok := FirstMatch(text, patientIDPatterns); ok {
		info.PatientID = &v
	}
	if v, ok := FirstMatch(text, reportDatePatterns); ok {
		info.DateOfReport = &v
	}
	return info
}

// ExtractVitals pulls vital signs out of the text. Weight and height
// are normalized to metric; BMI is derived only when both height and
// weight were independently extracted and are strictly positive. The
// returned slice holds at most one record, and only when at least one
// sub-field matched.
func ExtractVitals(text string) []model.VitalSigns {
	var (
		vs  model.VitalSigns
		any bool
	)

	if m := bpPattern.FindStringSubmatch(text); m != nil {
		bp := m[1]
		vs.BloodPressure = &bp
		any = true
	}

	if m := tempPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			vs.Temperature = &v
			any = true
			// Unit symbol is recorded but the value is stored as read.
			if unit := m[2]; unit != "" {
				vs.TemperatureUnit = &unit
			}
		}
	}

	if m := hrPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			vs.HeartRate = &v
			any = true
		}
	}

	if m := spo2Pattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			vs.OxygenSat = &v
			any = true
		}
	}

	if m := weightPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			w := NormalizeWeight(v, m[2])
			vs.Weight = &w
			any = true
		}
	}

	if m := heightPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			h := NormalizeHeight(v, m[2])
			vs.Height = &h
			any = true
		}
	}

	if vs.Height != nil && vs.Weight != nil && *vs.Height > 0 && *vs.Weight > 0 {
		bmi := round1(*vs.Weight / math.Pow(*vs.Height/100, 2))
		vs.BMI = &bmi
	}

	if !any {
		return []model.VitalSigns{}
	}
	return []model.VitalSigns{vs}
}

// ExtractClinicalNotes locates the History, Assessment and Plan
// sections. History tries its anchor variants in order and stops at
// the first hit; Assessment and Plan are attempted independently.
// Whatever subset is present is appended in that order.
func ExtractClinicalNotes(text string) []model.ClinicalNote {
	notes := []model.ClinicalNote{}

	for _, spec := range historySections {
		if content, ok := spec.Extract(text); ok {
			notes = append(notes, model.ClinicalNote{
				NoteType: model.NoteTypeHistory,
				Content:  content,
			})
			break
		}
	}

	if content, ok := assessmentSection.Extract(text); ok {
		notes = append(notes, model.ClinicalNote{
			NoteType: model.NoteTypeAssessment,
			Content:  content,
		})
	}

	if content, ok := planSection.Extract(text); ok {
		notes = append(notes, model.ClinicalNote{
			NoteType: model.NoteTypePlan,
			Content:  content,
		})
	}

	return notes
}

// ExtractAllergies returns the allergy list, empty when the section
// is absent.
func ExtractAllergies(text string) []string {
	span, ok := allergySection.Extract(text)
	if !ok {
		return []string{}
	}
	return SplitList(span)
}

// ExtractProblems returns the problem list, empty when the section
// is absent.
func ExtractProblems(text string) []string {
	span, ok := problemSection.Extract(text)
	if !ok {
		return []string{}
	}
	return SplitList(span)
}

// Assemble runs every extractor over one document's text and composes
// the report. Lab results and medications stay empty: reserved
// extension points with no extraction rules yet.
func Assemble(text string) *model.MedicalReport {
	report := model.NewMedicalReport()
	report.PatientInfo = ExtractPatientInfo(text)
	report.VitalSigns = ExtractVitals(text)
	report.ClinicalNotes = ExtractClinicalNotes(text)
	report.Allergies = ExtractAllergies(text)
	report.Problems = ExtractProblems(text)
	return report
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
