package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"polex/internal/config"
	"polex/internal/domain"
)

const (
	serviceName    = "policy-extraction-api"
	serviceVersion = "1.0.0"
)

// HealthHandler handles service info and health check endpoints.
type HealthHandler struct {
	ocrCfg *config.OCRConfig
	extCfg *config.ExtractorConfig
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(ocrCfg *config.OCRConfig, extCfg *config.ExtractorConfig) *HealthHandler {
	return &HealthHandler{ocrCfg: ocrCfg, extCfg: extCfg}
}

// Root handles GET /
// @Summary Service banner
// @Produce json
// @Success 200 {object} BannerResponse "Service name and version"
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, BannerResponse{
		Status:  "ok",
		Service: serviceName,
		Version: serviceVersion,
	})
}

// Health handles GET /health
// @Summary Health check
// @Description Reports whether the OCR and extraction providers are configured. The service is degraded when either key is missing.
// @Produce json
// @Success 200 {object} HealthResponse "Service health"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ocrConfigured := h.ocrCfg.APIKey != ""
	extractorConfigured := h.extCfg.APIKey != ""

	status := "healthy"
	if !ocrConfigured || !extractorConfigured {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:              status,
		OCRConfigured:       ocrConfigured,
		ExtractorConfigured: extractorConfigured,
		SupportedFormats:    domain.SupportedFormats(),
	})
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.ocrCfg.APIKey == "" || h.extCfg.APIKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "provider credentials not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
