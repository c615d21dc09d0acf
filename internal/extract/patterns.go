package extract

import "regexp"

// Candidate pattern tables for patient demographics. Priority order
// matters: the matcher stops at the first hit per field.
var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Patient\s*:?\s*(.*)`),
		regexp.MustCompile(`(?i)Name\s*:?\s*(.*)`),
		regexp.MustCompile(`(?i)Patient Name\s*:?\s*(.*)`),
	}
	dobPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)DOB\s*:?\s*(\d{2}[/-]\d{2}[/-]\d{4})`),
		regexp.MustCompile(`(?i)Date of Birth\s*:?\s*(\d{2}[/-]\d{2}[/-]\d{4})`),
		regexp.MustCompile(`(?i)Birth Date\s*:?\s*(\d{2}[/-]\d{2}[/-]\d{4})`),
	}
	genderPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Sex\s*:?\s*([MF])`),
		regexp.MustCompile(`(?i)Gender\s*:?\s*(Male|Female)`),
		regexp.MustCompile(`(?i)Sex/Gender\s*:?\s*(.*)`),
	}
	patientIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)MRN\s*:?\s*([A-Za-z0-9-]+)`),
		regexp.MustCompile(`(?i)Medical Record\s*:?\s*([A-Za-z0-9-]+)`),
		regexp.MustCompile(`(?i)Patient ID\s*:?\s*([A-Za-z0-9-]+)`),
	}
	reportDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Date\s*:?\s*(\d{2}[/-]\d{2}[/-]\d{4})`),
		regexp.MustCompile(`(?i)Report Date\s*:?\s*(\d{2}[/-]\d{2}[/-]\d{4})`),
		regexp.MustCompile(`(?i)Created On\s*:?\s*(\d{2}[/-]\d{2}[/-]\d{4})`),
	}
)

// Vital sign patterns. Weight and height capture the unit token in
// group 2 for normalization; temperature captures the unit symbol in
// group 2 but the value is stored as read.
var (
	bpPattern     = regexp.MustCompile(`(?i)(?:BP|Blood Pressure)\s*:?\s*(\d{2,3}/\d{2,3})`)
	tempPattern   = regexp.MustCompile(`(?i)(?:Temp|Temperature)\s*:?\s*(\d{2,3}\.?\d*)[ \t]*(°?[ \t]?[CF])?`)
	hrPattern     = regexp.MustCompile(`(?i)(?:HR|Heart Rate)\s*:?\s*(\d{2,3})\s*(?:bpm)?`)
	spo2Pattern   = regexp.MustCompile(`(?i)(?:SpO2|Oxygen Sat)\s*:?\s*(\d{2,3})\s*%?`)
	weightPattern = regexp.MustCompile(`(?i)(?:Weight|WT)\s*:?\s*(\d+\.?\d*)\s*(kg|lbs|lb)?`)
	heightPattern = regexp.MustCompile(`(?i)(?:Height|HT)\s*:?\s*(\d+\.?\d*)\s*(cm|in)?`)
)

// Boundary heuristics for section extraction. Real reports follow a
// "Label:" heading convention; anything else truncates late or early.
var (
	capLabelBoundary  = regexp.MustCompile(`\n\s*[A-Z][a-z]+:`)
	allCapsBoundary   = regexp.MustCompile(`\n\s*[A-Z]+:`)
	historyBoundary   = regexp.MustCompile(`\n\s*Assessment|\n\s*Physical Exam|\n\s*[A-Z][a-z]+:`)
	assessmentBoundary = regexp.MustCompile(`\n\s*Plan|\n\s*[A-Z][a-z]+:`)
)

// Note section specs. History has three anchor variants tried in
// order: first anchor hit wins and the alternates are skipped.
var (
	historySections = []SectionSpec{
		{Start: regexp.MustCompile(`(?i)History[:\s]*`), Boundary: historyBoundary},
		{Start: regexp.MustCompile(`(?i)HISTORY OF PRESENT ILLNESS[:\s]*`), Boundary: allCapsBoundary},
		{Start: regexp.MustCompile(`(?i)HPI[:\s]*`), Boundary: allCapsBoundary},
	}
	assessmentSection = SectionSpec{
		Start:    regexp.MustCompile(`(?i)Assessment[:\s]*`),
		Boundary: assessmentBoundary,
	}
	planSection = SectionSpec{
		Start:    regexp.MustCompile(`(?i)Plan[:\s]*`),
		Boundary: capLabelBoundary,
	}
	allergySection = SectionSpec{
		Start:    regexp.MustCompile(`(?i)Allerg(?:y|ies)[:\s]*`),
		Boundary: capLabelBoundary,
	}
	problemSection = SectionSpec{
		Start:    regexp.MustCompile(`(?i)Problems?[:\s]*`),
		Boundary: capLabelBoundary,
	}
)
