// Package extraction sequences the pipeline for one uploaded
// document: PDF text, field matching, section extraction, assembly,
// validation. The service is stateless apart from a TTL-bound dedupe
// cache, so instances are safe to share across requests.
package extraction

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/patrickmn/go-cache"

	"github.com/clinsight/extract-api/internal/extract"
	"github.com/clinsight/extract-api/internal/model"
	"github.com/clinsight/extract-api/internal/pdf"
	"github.com/clinsight/extract-api/pkg/errors"
	"github.com/clinsight/extract-api/pkg/logger"
	"github.com/clinsight/extract-api/pkg/metrics"
)

// Status tags an extraction outcome. A report that assembles but
// fails structural validation downgrades to partial; it is never
// dropped.
type Status string

const (
	StatusComplete Status = "complete"
	StatusPartial  Status = "partial"
)

const noTextPlaceholder = "<<NO TEXT>>"

const textSampleLimit = 1000

// Result is the outcome of one extraction call.
type Result struct {
	Filename          string               `json:"filename"`
	Report            *model.MedicalReport `json:"report"`
	Status            Status               `json:"status"`
	ValidationWarning string               `json:"validation_warning,omitempty"`
}

// DebugResult is the outcome of a debug text-extraction call.
type DebugResult struct {
	Filename      string          `json:"filename"`
	TextSample    string          `json:"text_sample"`
	PatternChecks map[string]bool `json:"pattern_checks"`
	PageCount     int             `json:"page_count"`
}

// Keyword groups checked by the debug endpoint to hint which
// extraction rules stand a chance against the document.
var debugChecks = map[string]*regexp.Regexp{
	"patient_name": regexp.MustCompile(`(?i)Patient|Name`),
	"dob":          regexp.MustCompile(`(?i)DOB|Date of Birth`),
	"mrn":          regexp.MustCompile(`(?i)MRN|Medical Record`),
	"vitals":       regexp.MustCompile(`(?i)Blood Pressure|Temp|HR|SpO2`),
	"allergies":    regexp.MustCompile(`(?i)Allerg(?:y|ies)`),
}

type Service struct {
	extractor pdf.Extractor
	validate  *validator.Validate
	results   *cache.Cache
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

// Config holds service tuning knobs.
type Config struct {
	CacheTTL      time.Duration
	CacheCleanup  time.Duration
	CacheDisabled bool
}

func NewService(extractor pdf.Extractor, m *metrics.Metrics, log *logger.Logger, cfg Config) *Service {
	var results *cache.Cache
	if !cfg.CacheDisabled {
		results = cache.New(cfg.CacheTTL, cfg.CacheCleanup)
	}
	return &Service{
		extractor: extractor,
		validate:  newReportValidator(),
		results:   results,
		metrics:   m,
		logger:    log.WithComponent("extraction"),
	}
}

// Extract runs the full pipeline over one document's bytes. A decode
// failure is a processing error; validation failure is not an error
// and surfaces as a partial result instead.
func (s *Service) Extract(ctx context.Context, filename string, data []byte) (*Result, error) {
	start := time.Now()

	key := contentKey(data)
	if s.results != nil {
		if cached, found := s.results.Get(key); found {
			s.metrics.CacheHits.Inc()
			result := *cached.(*Result)
			result.Filename = filename
			return &result, nil
		}
	}

	doc, err := s.extractor.Extract(data)
	if err != nil {
		s.metrics.RecordOutcome("error")
		return nil, errors.Processing("Processing error", err)
	}
	s.metrics.PagesExtracted.Add(float64(doc.PageCount()))

	report := extract.Assemble(doc.Text())

	result := &Result{
		Filename: filename,
		Report:   report,
		Status:   StatusComplete,
	}
	if warning, ok := s.validateReport(report); !ok {
		result.Status = StatusPartial
		result.ValidationWarning = warning
		s.logger.Warn("report failed validation, returning partial result",
			"filename", filename, "warning", warning)
	}

	s.metrics.RecordOutcome(string(result.Status))
	s.metrics.ExtractionLatency.Observe(time.Since(start).Seconds())

	if s.results != nil {
		s.results.SetDefault(key, result)
	}
	return result, nil
}

// DebugExtract returns the raw text sample and keyword presence flags
// for one document, without running the structured pipeline.
func (s *Service) DebugExtract(ctx context.Context, filename string, data []byte) (*DebugResult, error) {
	doc, err := s.extractor.Extract(data)
	if err != nil {
		return nil, errors.Processing("Processing error", err)
	}

	text := doc.TextWithPlaceholder(noTextPlaceholder)
	checks := make(map[string]bool, len(debugChecks))
	for name, re := range debugChecks {
		checks[name] = re.MatchString(text)
	}

	return &DebugResult{
		Filename:      filename,
		TextSample:    sampleText(text, textSampleLimit),
		PatternChecks: checks,
		PageCount:     doc.PageCount(),
	}, nil
}

// sampleText truncates to limit runes, marking truncation with an
// ellipsis the way the debug consumers expect.
func sampleText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func contentKey(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
