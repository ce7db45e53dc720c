package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ExtractTextRequest represents the raw-text extraction request body.
type ExtractTextRequest struct {
	Text string `json:"text" binding:"required" example:"Star Health Insurance... Policy No: P/123456/01/2020/012345..."`
}

// --- Response Types ---

// BannerResponse represents the service banner returned at the root path.
type BannerResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"policy-extraction-api"`
	Version string `json:"version" example:"1.0.0"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status              string   `json:"status" example:"healthy"`
	OCRConfigured       bool     `json:"ocr_configured" example:"true"`
	ExtractorConfigured bool     `json:"extractor_configured" example:"true"`
	SupportedFormats    []string `json:"supported_formats"`
}

// --- Generic Response Wrappers ---

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
