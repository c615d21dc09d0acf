package model

import "time"

// PatientInfo holds demographics pulled from the report header. Every
// field is optional; a miss leaves the field nil rather than erroring.
type PatientInfo struct {
	Name         *string `json:"name,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	PatientID    *string `json:"patient_id,omitempty"`
	DateOfReport *string `json:"date_of_report,omitempty"`
}

// VitalSigns is one set of vital measurements. Height and weight are
// metric after normalization (cm, kg). Temperature is stored as read,
// with the detected unit symbol kept alongside when one was present.
type VitalSigns struct {
	Temperature     *float64   `json:"temperature,omitempty"`
	TemperatureUnit *string    `json:"temperature_unit,omitempty"`
	HeartRate       *int       `json:"heart_rate,omitempty"`
	BloodPressure   *string    `json:"blood_pressure,omitempty"`
	RespiratoryRate *int       `json:"respiratory_rate,omitempty"`
	OxygenSat       *float64   `json:"oxygen_saturation,omitempty"`
	Height          *float64   `json:"height,omitempty"`
	Weight          *float64   `json:"weight,omitempty"`
	BMI             *float64   `json:"bmi,omitempty"`
	RecordedTime    *time.Time `json:"recorded_time,omitempty"`
}

// LabResult is a reserved extension point; the current pipeline never
// populates it, but validation constraints apply if one ever appears.
type LabResult struct {
	TestName       string  `json:"test_name" validate:"required"`
	Result         string  `json:"result" validate:"required"`
	Units          *string `json:"units,omitempty"`
	ReferenceRange *string `json:"reference_range,omitempty"`
	Status         *string `json:"status,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// ClinicalNote is one narrative section of the report.
type ClinicalNote struct {
	NoteType string     `json:"note_type" validate:"required"`
	Content  string     `json:"content" validate:"required"`
	Author   *string    `json:"author,omitempty"`
	Datetime *time.Time `json:"datetime,omitempty"`
}

// Note section types produced by the extractor. The set is open:
// consumers must tolerate values outside this list.
const (
	NoteTypeHistory    = "History"
	NoteTypeAssessment = "Assessment"
	NoteTypePlan       = "Plan"
)

// MedicalReport is the full structured result for one document.
// PatientInfo is always present, possibly with all fields nil; the
// list fields default to empty slices, never nil in responses.
type MedicalReport struct {
	PatientInfo   PatientInfo         `json:"patient_info"`
	VitalSigns    []VitalSigns        `json:"vital_signs" validate:"dive"`
	LabResults    []LabResult         `json:"lab_results" validate:"dive"`
	Medications   []map[string]string `json:"medications"`
	Allergies     []string            `json:"allergies"`
	ClinicalNotes []ClinicalNote      `json:"clinical_notes" validate:"dive"`
	Problems      []string            `json:"problems"`
}

// NewMedicalReport returns a report with all collections initialized
// so JSON encoding yields [] instead of null.
func NewMedicalReport() *MedicalReport {
	return &MedicalReport{
		VitalSigns:    []VitalSigns{},
		LabResults:    []LabResult{},
		Medications:   []map[string]string{},
		Allergies:     []string{},
		ClinicalNotes: []ClinicalNote{},
		Problems:      []string{},
	}
}
