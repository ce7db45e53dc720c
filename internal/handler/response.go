package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"polex/internal/domain"
	"polex/internal/provider"
)

// APIResponse is the standard envelope for error responses. Successful
// extractions return the extraction object itself so the field contract
// stays flat on the wire.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, doc, docx, txt, png, jpg, jpeg"
	case errors.Is(err, domain.ErrContentTypeMismatch):
		return http.StatusBadRequest, "CONTENT_TYPE_MISMATCH", "file content does not match its extension"
	case errors.Is(err, domain.ErrEmptyFile):
		return http.StatusBadRequest, "EMPTY_FILE", "uploaded file is empty"
	case errors.Is(err, domain.ErrEmptyText):
		return http.StatusBadRequest, "EMPTY_TEXT", "text must not be empty"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrTooManyPages):
		return http.StatusRequestEntityTooLarge, "TOO_MANY_PAGES", "document exceeds maximum page count"
	case errors.Is(err, domain.ErrProviderRateLimited):
		return http.StatusTooManyRequests, "PROVIDER_RATE_LIMITED", "upstream provider rate limited the request; try again later"
	case errors.Is(err, domain.ErrOCRFailed):
		return http.StatusBadGateway, "OCR_FAILED", "document text recognition failed"
	case errors.Is(err, domain.ErrNoTextContent):
		return http.StatusBadGateway, "NO_TEXT_CONTENT", "no text could be recognized in the document"
	case errors.Is(err, domain.ErrExtractionFailed):
		return http.StatusBadGateway, "EXTRACTION_FAILED", "field extraction failed"
	case errors.Is(err, domain.ErrMalformedExtraction):
		return http.StatusBadGateway, "MALFORMED_EXTRACTION", "extracted fields did not match the expected format"
	case errors.Is(err, domain.ErrOCRNotConfigured):
		return http.StatusInternalServerError, "OCR_NOT_CONFIGURED", "document OCR provider is not configured"
	case errors.Is(err, domain.ErrExtractorNotConfigured):
		return http.StatusInternalServerError, "EXTRACTOR_NOT_CONFIGURED", "field extraction provider is not configured"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// Rate-limit errors carry the upstream Retry-After through to the client.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] upstream or internal error: %v", requestID, err)
	}
	var rlErr *provider.RateLimitError
	if errors.As(err, &rlErr) && rlErr.RetryAfter > 0 {
		c.Header("Retry-After", strconv.Itoa(int(rlErr.RetryAfter.Seconds())))
	}
	RespondError(c, status, code, msg)
}
