// Package report exposes the clinical extraction endpoints: one for
// structured extraction, one for debugging what the text layer sees.
package report

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinsight/extract-api/internal/handler"
	"github.com/clinsight/extract-api/internal/service/extraction"
	apperrors "github.com/clinsight/extract-api/pkg/errors"
	"github.com/clinsight/extract-api/pkg/metrics"
)

const pdfContentType = "application/pdf"

type Handler struct {
	service *extraction.Service
	metrics *metrics.Metrics
}

func NewHandler(service *extraction.Service, m *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		metrics: m,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/extract-clinical-data", h.ExtractClinicalData)
	r.POST("/debug-extract-text", h.DebugExtractText)
}

// ExtractClinicalData accepts one PDF upload and returns the
// structured report. A report failing validation still comes back,
// tagged partial with a warning; only a decode failure is an error.
func (h *Handler) ExtractClinicalData(c *gin.Context) {
	filename, data, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.service.Extract(c.Request.Context(), filename, data)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DebugExtractText returns the raw text sample, keyword presence
// flags and page count for one PDF upload.
func (h *Handler) DebugExtractText(c *gin.Context) {
	filename, data, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.service.DebugExtract(c.Request.Context(), filename, data)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// readUpload pulls the multipart "file" field and enforces the PDF
// content type before any bytes are processed.
func (h *Handler) readUpload(c *gin.Context) (string, []byte, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.metrics.UploadsRejected.Inc()
		h.respondError(c, apperrors.MalformedInput("missing file upload", err))
		return "", nil, false
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); ct != pdfContentType {
		h.metrics.UploadsRejected.Inc()
		h.respondError(c, apperrors.MalformedInput("File must be a PDF", nil))
		return "", nil, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.metrics.UploadsRejected.Inc()
		h.respondError(c, apperrors.MalformedInput("failed to read upload", err))
		return "", nil, false
	}

	return header.Filename, data, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if appErr, ok := err.(*apperrors.AppError); ok {
		status = appErr.StatusCode()
	}
	c.JSON(status, handler.NewErrorResponse(err.Error()))
}
