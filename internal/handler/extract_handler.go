package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"polex/internal/service"
)

// ExtractHandler handles policy extraction endpoints.
type ExtractHandler struct {
	extractionService service.ExtractionService
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractionService service.ExtractionService) *ExtractHandler {
	return &ExtractHandler{extractionService: extractionService}
}

// Extract handles POST /extract
// @Summary Extract policy fields from a document
// @Description Upload an insurance policy document (PDF, DOC, DOCX, TXT, PNG, JPG, or JPEG) and receive the extracted fields. The response always contains all 8 fields, with null for anything not found in the document.
// @Tags extraction
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Policy document to process"
// @Success 200 {object} domain.PolicyExtraction "Extracted policy fields"
// @Failure 400 {object} ErrorResponseBody "Missing file, unsupported type, or empty document"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 413 {object} ErrorResponseBody "File too large or too many pages"
// @Failure 429 {object} ErrorResponseBody "Upstream provider rate limited"
// @Failure 502 {object} ErrorResponseBody "OCR or extraction provider failed"
// @Security ApiKeyAuth
// @Router /extract [post]
func (h *ExtractHandler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	extraction, err := h.extractionService.Extract(c.Request.Context(), service.ExtractionInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, extraction)
}

// ExtractText handles POST /extract-text
// @Summary Extract policy fields from raw text
// @Description Extract policy fields from text the caller already has, skipping the OCR stage. Useful when the document text was recognized elsewhere.
// @Tags extraction
// @Accept json
// @Produce json
// @Param request body ExtractTextRequest true "Document text"
// @Success 200 {object} domain.PolicyExtraction "Extracted policy fields"
// @Failure 400 {object} ErrorResponseBody "Missing or empty text"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 429 {object} ErrorResponseBody "Upstream provider rate limited"
// @Failure 502 {object} ErrorResponseBody "Extraction provider failed"
// @Security ApiKeyAuth
// @Router /extract-text [post]
func (h *ExtractHandler) ExtractText(c *gin.Context) {
	var req ExtractTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text field is required")
		return
	}

	extraction, err := h.extractionService.ExtractFromText(c.Request.Context(), req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, extraction)
}
